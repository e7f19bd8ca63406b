package ui

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

const (
	titleHeight  = 24
	bottomHeight = 24
	canvasMargin = 8
)

var toolbarWidth = 72

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 32, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// toolbarHits holds the buttons laid out by the last toolbar draw, in
// paint order, for pointer hit testing.
var toolbarHits []Button
var hoverHit = -1

var shortcutRects []Shortcut
var hoverShortcut = -1

type frameState struct {
	width, height  int
	canvas         *image.RGBA
	canvasRect     image.Rectangle
	kind           sketch.Kind
	th             *theme.Theme
	message        string
	messageUntil   time.Time
	handleShortcut func(string)
}

func canvasRect(dispW, dispH int) image.Rectangle {
	x0 := toolbarWidth + canvasMargin
	y0 := titleHeight + canvasMargin
	return image.Rect(x0, y0, x0+dispW, y0+dispH)
}

// canvasEvent reports whether a pointer event at p belongs to the canvas
// rather than the window chrome. An open stroke claims every event, so a
// release over the toolbar or status bar still closes it and drag-moves
// there keep extending it.
func canvasEvent(p image.Point, height int, drawing bool) bool {
	if drawing {
		return true
	}
	if p.Y >= height-bottomHeight {
		return false
	}
	if p.X < toolbarWidth && p.Y >= titleHeight {
		return false
	}
	return true
}

// displayZoom picks the integer-friendly zoom that fits the logical canvas
// into the window. Never below 1 so strokes stay visible.
func displayZoom(cw, ch, winW, winH int) float64 {
	availW := winW - toolbarWidth - 2*canvasMargin
	availH := winH - titleHeight - bottomHeight - 2*canvasMargin
	zx := float64(availW) / float64(cw)
	zy := float64(availH) / float64(ch)
	z := zx
	if zy < z {
		z = zy
	}
	if z < 1 {
		z = 1
	}
	return z
}

func drawTitle(dst *image.RGBA, th *theme.Theme, width int) {
	draw.Draw(dst, image.Rect(0, 0, width, titleHeight),
		&image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13,
		Dot: fixed.P(4, 16)}
	d.DrawString("Sketchpad")
}

func drawToolbar(dst *image.RGBA, st frameState, buttons toolbarButtons) {
	draw.Draw(dst, image.Rect(0, titleHeight, toolbarWidth, st.height-bottomHeight),
		&image.Uniform{st.th.ToolbarBackground}, image.Point{}, draw.Src)

	toolbarHits = toolbarHits[:0]
	place := func(c choice, r image.Rectangle) {
		c.btn.SetRect(r)
		state := StateDefault
		if c.selected != nil && c.selected() {
			state = StatePressed
		} else if len(toolbarHits) == hoverHit {
			state = StateHover
		}
		c.btn.Draw(dst, state)
		toolbarHits = append(toolbarHits, c.btn)
	}

	y := titleHeight
	for _, b := range buttons.tools {
		place(b, image.Rect(0, y, toolbarWidth, y+24))
		y += 24
	}
	y += 4

	switch st.kind {
	case sketch.KindMarker:
		for _, b := range buttons.widths {
			place(b, image.Rect(0, y, toolbarWidth, y+16))
			y += 16
		}
		y += 4
		x := 4
		for _, b := range buttons.hues {
			if x+16 > toolbarWidth {
				x = 4
				y += 18
			}
			place(b, image.Rect(x, y, x+16, y+16))
			x += 18
		}
		y += 18
	case sketch.KindSticker:
		for _, b := range buttons.glyphs {
			place(b, image.Rect(0, y, toolbarWidth, y+24))
			y += 24
		}
		y += 4
		for _, b := range buttons.rotations {
			place(b, image.Rect(0, y, toolbarWidth, y+16))
			y += 16
		}
	}
}

func drawStatus(dst *image.RGBA, st frameState) {
	rect := image.Rect(0, st.height-bottomHeight, st.width, st.height)
	draw.Draw(dst, rect, &image.Uniform{st.th.StatusBackground}, image.Point{}, draw.Src)
	shortcutRects = shortcutRects[:0]
	shortcuts := []Shortcut{
		{label: "^Z:undo", th: st.th, action: func() { st.handleShortcut("undo") }},
		{label: "^Y:redo", th: st.th, action: func() { st.handleShortcut("redo") }},
		{label: "^X:clear", th: st.th, action: func() { st.handleShortcut("clear") }},
		{label: "^S:export", th: st.th, action: func() { st.handleShortcut("export") }},
		{label: "^C:copy", th: st.th, action: func() { st.handleShortcut("copy") }},
		{label: "Q:quit", th: st.th, action: func() { st.handleShortcut("quit") }},
	}
	x := toolbarWidth + 4
	y := st.height - bottomHeight + 16
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for i := range shortcuts {
		sc := &shortcuts[i]
		w := meas.MeasureString(sc.label).Ceil()
		sc.SetRect(image.Rect(x-2, y-14, x+w+2, y+4))
		state := StateDefault
		if i == hoverShortcut {
			state = StateHover
		}
		sc.Draw(dst, state)
		shortcutRects = append(shortcutRects, *sc)
		x = sc.rect.Max.X + 8
	}
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st frameState, buttons toolbarButtons) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	draw.Draw(b.RGBA(), b.RGBA().Bounds(), &image.Uniform{st.th.Background}, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	if st.canvas != nil {
		draw.Draw(b.RGBA(), st.canvasRect, st.canvas, st.canvas.Bounds().Min, draw.Src)
		outlineRect(b.RGBA(), st.canvasRect.Inset(-1), st.th.CanvasBorder)
	}
	if ctx.Err() != nil {
		return
	}

	drawTitle(b.RGBA(), st.th, st.width)
	drawToolbar(b.RGBA(), st, buttons)
	drawStatus(b.RGBA(), st)

	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		d := &font.Drawer{Dst: b.RGBA(), Src: image.NewUniform(st.th.Foreground), Face: messageFace}
		wmsg := d.MeasureString(st.message).Ceil()
		ascent := messageFace.Metrics().Ascent.Ceil()
		descent := messageFace.Metrics().Descent.Ceil()
		px := (st.width - wmsg) / 2
		py := (st.height-ascent-descent)/2 + ascent
		rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
		draw.Draw(b.RGBA(), rect, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
		outlineRect(b.RGBA(), rect, st.th.Foreground)
		d.Dot = fixed.P(px, py)
		d.DrawString(st.message)
	}

	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
