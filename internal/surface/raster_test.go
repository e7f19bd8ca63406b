package surface

import (
	"image/color"
	"testing"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestNewRasterStartsCleared(t *testing.T) {
	r := NewRaster(8, 8)
	if got := r.Image().RGBAAt(4, 4); got != white {
		t.Fatalf("expected a fresh surface to be white, got %v", got)
	}
}

func TestClearUsesBackground(t *testing.T) {
	r := NewRaster(8, 8)
	r.Background = color.RGBA{10, 20, 30, 255}
	r.Clear()
	if got := r.Image().RGBAAt(4, 4); (got != color.RGBA{10, 20, 30, 255}) {
		t.Fatalf("expected the background color after clear, got %v", got)
	}
}

func TestStrokeSinglePointLeavesNoMark(t *testing.T) {
	r := NewRaster(20, 20)
	r.Clear()
	r.MoveTo(10, 10)
	r.Stroke(4, black)
	if got := r.Image().RGBAAt(10, 10); got != white {
		t.Fatalf("expected untouched pixel at path point, got %v", got)
	}
}

func TestStrokeDrawsSegment(t *testing.T) {
	r := NewRaster(30, 30)
	r.Clear()
	r.MoveTo(5, 10)
	r.LineTo(25, 10)
	r.Stroke(1, black)
	for _, x := range []int{5, 15, 25} {
		if got := r.Image().RGBAAt(x, 10); got != black {
			t.Fatalf("expected stroke pixel at (%d, 10), got %v", x, got)
		}
	}
	if got := r.Image().RGBAAt(15, 20); got != white {
		t.Fatalf("expected background away from segment, got %v", got)
	}
}

func TestStrokeConsumesPath(t *testing.T) {
	r := NewRaster(20, 20)
	r.Clear()
	r.MoveTo(2, 2)
	r.LineTo(8, 2)
	r.Stroke(1, black)
	// Without a new MoveTo the next Stroke has nothing to draw.
	r.Stroke(1, color.RGBA{255, 0, 0, 255})
	if got := r.Image().RGBAAt(5, 2); got != black {
		t.Fatalf("expected first stroke to remain, got %v", got)
	}
}

func TestScaleMapsGeometryAndThickness(t *testing.T) {
	r := NewRaster(40, 40)
	r.Clear()
	r.Scale(2)
	r.MoveTo(5, 5)
	r.LineTo(15, 5)
	r.Stroke(1, black)
	if got := r.Image().RGBAAt(20, 10); got != black {
		t.Fatalf("expected scaled midpoint pixel at (20, 10), got %v", got)
	}
	// Width 1 at scale 2 spans a pixel above and below the centre line.
	if got := r.Image().RGBAAt(20, 11); got != black {
		t.Fatalf("expected thickness to scale with the transform, got %v", got)
	}
	if got := r.Image().RGBAAt(5, 5); got != white {
		t.Fatalf("expected unscaled coordinate to stay background, got %v", got)
	}
}

func TestSaveRestoreUnwindsTransform(t *testing.T) {
	r := NewRaster(40, 40)
	r.Clear()
	r.Save()
	r.Scale(4)
	r.Restore()
	r.MoveTo(3, 3)
	r.LineTo(9, 3)
	r.Stroke(1, black)
	if got := r.Image().RGBAAt(6, 3); got != black {
		t.Fatalf("expected identity mapping after restore, got %v", got)
	}
	if got := r.Image().RGBAAt(24, 12); got != white {
		t.Fatalf("expected no pixels at the scaled location, got %v", got)
	}
}

func TestTranslateShiftsOrigin(t *testing.T) {
	r := NewRaster(30, 30)
	r.Clear()
	r.Translate(10, 10)
	r.MoveTo(0, 0)
	r.LineTo(5, 0)
	r.Stroke(1, black)
	if got := r.Image().RGBAAt(12, 10); got != black {
		t.Fatalf("expected translated segment pixel, got %v", got)
	}
	if got := r.Image().RGBAAt(2, 0); got != white {
		t.Fatalf("expected origin row untouched, got %v", got)
	}
}

func TestClearResetsPixelsAndPath(t *testing.T) {
	r := NewRaster(20, 20)
	r.Clear()
	r.MoveTo(2, 2)
	r.LineTo(10, 2)
	r.Stroke(2, black)
	r.MoveTo(2, 8)
	r.Clear()
	if got := r.Image().RGBAAt(5, 2); got != white {
		t.Fatalf("expected cleared canvas, got %v", got)
	}
	// The pending MoveTo was dropped, so a lone LineTo cannot stroke.
	r.LineTo(10, 8)
	r.Stroke(2, black)
	if got := r.Image().RGBAAt(6, 8); got != white {
		t.Fatalf("expected no stroke from a dropped path, got %v", got)
	}
}

func TestArcFillDrawsCircle(t *testing.T) {
	r := NewRaster(30, 30)
	r.Clear()
	red := color.RGBA{255, 0, 0, 255}
	r.Arc(15, 15, 4)
	r.Fill(red)
	if got := r.Image().RGBAAt(15, 15); got != red {
		t.Fatalf("expected filled centre, got %v", got)
	}
	if got := r.Image().RGBAAt(15, 25); got != white {
		t.Fatalf("expected background outside the radius, got %v", got)
	}
	// The circle was consumed, so a second Fill is a no-op.
	r.Clear()
	r.Fill(red)
	if got := r.Image().RGBAAt(15, 15); got != white {
		t.Fatalf("expected no fill without a recorded arc, got %v", got)
	}
}

func TestFillTextMarksPixels(t *testing.T) {
	r := NewRaster(60, 60)
	r.Clear()
	r.FillText("X", 30, 30, 24, black)
	marked := false
	for y := 15; y < 45 && !marked; y++ {
		for x := 15; x < 45; x++ {
			if r.Image().RGBAAt(x, y) != white {
				marked = true
				break
			}
		}
	}
	if !marked {
		t.Fatal("expected glyph pixels near the centre")
	}
	r.Clear()
	r.FillText("", 30, 30, 24, black)
	if got := r.Image().RGBAAt(30, 30); got != white {
		t.Fatalf("expected empty text to draw nothing, got %v", got)
	}
}
