package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Raster implements Surface over an *image.RGBA.
type Raster struct {
	img *image.RGBA

	// Background is the color used by Clear. Defaults to white.
	Background color.RGBA

	tr    f64.Aff3
	stack []f64.Aff3

	path   []image.Point
	circle struct {
		set    bool
		cx, cy int
		r      float64
	}
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// NewRaster creates a white raster surface of the given size.
func NewRaster(w, h int) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		Background: color.RGBA{255, 255, 255, 255},
		tr:         identity,
	}
	r.Clear()
	return r
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Size returns the surface dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the surface with the background color and drops any pending
// path.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
	r.path = r.path[:0]
	r.circle.set = false
}

// Save pushes the current transform.
func (r *Raster) Save() { r.stack = append(r.stack, r.tr) }

// Restore pops the transform stack.
func (r *Raster) Restore() {
	if n := len(r.stack); n > 0 {
		r.tr = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

// Scale applies a uniform scale.
func (r *Raster) Scale(f float64) {
	r.tr = mul(r.tr, f64.Aff3{f, 0, 0, 0, f, 0})
}

// Rotate applies a clockwise rotation in degrees.
func (r *Raster) Rotate(deg float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	r.tr = mul(r.tr, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

// Translate moves the origin.
func (r *Raster) Translate(dx, dy float64) {
	r.tr = mul(r.tr, f64.Aff3{1, 0, dx, 0, 1, dy})
}

// MoveTo starts a new path.
func (r *Raster) MoveTo(x, y float64) {
	r.path = r.path[:0]
	r.path = append(r.path, r.device(x, y))
}

// LineTo extends the current path.
func (r *Raster) LineTo(x, y float64) {
	r.path = append(r.path, r.device(x, y))
}

// Stroke draws the path as connected thick line segments. A single-point
// path produces no pixels.
func (r *Raster) Stroke(width float64, col color.Color) {
	thick := r.thickness(width)
	for i := 1; i < len(r.path); i++ {
		a, b := r.path[i-1], r.path[i]
		drawLine(r.img, a.X, a.Y, b.X, b.Y, col, thick)
	}
	r.path = r.path[:0]
}

// Arc records a full circle for the next Fill.
func (r *Raster) Arc(cx, cy, radius float64) {
	p := r.device(cx, cy)
	r.circle.set = true
	r.circle.cx, r.circle.cy = p.X, p.Y
	r.circle.r = radius * r.scaleFactor()
}

// Fill fills the recorded circle.
func (r *Raster) Fill(col color.Color) {
	if !r.circle.set {
		return
	}
	rad := int(math.Round(r.circle.r))
	if rad < 1 {
		rad = 1
	}
	drawFilledCircle(r.img, r.circle.cx, r.circle.cy, rad, col)
	r.circle.set = false
}

// FillText draws text centred at (x, y). The glyphs are rendered at the
// requested point size into a scratch image and composited through the
// current transform so rotation and export scaling both apply.
func (r *Raster) FillText(text string, x, y, size float64, col color.Color) {
	if text == "" {
		return
	}
	face, err := faceForSize(size)
	if err != nil {
		return
	}
	d := &font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	if w == 0 {
		return
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	h := ascent + metrics.Descent.Ceil()

	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = tmp
	d.Src = image.NewUniform(col)
	d.Dot = fixed.P(0, ascent)
	d.DrawString(text)

	// Centre the scratch image on (x, y) before applying the transform.
	m := mul(r.tr, f64.Aff3{1, 0, x - float64(w)/2, 0, 1, y - float64(h)/2})
	xdraw.BiLinear.Transform(r.img, m, tmp, tmp.Bounds(), xdraw.Over, nil)
}

func (r *Raster) device(x, y float64) image.Point {
	dx := r.tr[0]*x + r.tr[1]*y + r.tr[2]
	dy := r.tr[3]*x + r.tr[4]*y + r.tr[5]
	return image.Pt(int(math.Round(dx)), int(math.Round(dy)))
}

// scaleFactor is the length of the transformed unit x vector; with the
// uniform transforms this surface supports it equals the accumulated
// scale.
func (r *Raster) scaleFactor() float64 {
	return math.Hypot(r.tr[0], r.tr[3])
}

func (r *Raster) thickness(width float64) int {
	t := int(math.Round(width * r.scaleFactor()))
	if t < 1 {
		t = 1
	}
	return t
}

// mul composes two affine transforms: a applied after b.
func mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func drawFilledCircle(img *image.RGBA, cx, cy, r int, col color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				px := cx + dx
				py := cy + dy
				if image.Pt(px, py).In(img.Bounds()) {
					img.Set(px, py, col)
				}
			}
		}
	}
}
