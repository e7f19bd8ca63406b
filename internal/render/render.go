// Package render replays a command log onto a drawing surface and produces
// the exported PNG artifact.
package render

import (
	"image/color"

	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/surface"
)

// StickerSize is the glyph point size used for sticker placements.
const StickerSize = 24

var glyphColor = color.RGBA{0, 0, 0, 255}

// Replay clears the surface, draws every committed drawable in commit
// order, then overlays the preview. The preview is skipped while a stroke
// is being drawn so it never shadows the stroke it represents.
func Replay(s surface.Surface, drawables []sketch.Drawable, preview sketch.Drawable, drawing bool) {
	s.Clear()
	for _, d := range drawables {
		drawOne(s, d)
	}
	if preview != nil && !drawing {
		drawOne(s, preview)
	}
}

// drawOne renders a single drawable. Each variant uses only its own data,
// so replay order cannot change how an individual drawable looks.
func drawOne(s surface.Surface, d sketch.Drawable) {
	switch d := d.(type) {
	case *sketch.LineStroke:
		pts := d.Points()
		if len(pts) < 2 {
			// A click with no drag leaves no visible mark.
			return
		}
		s.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			s.LineTo(p.X, p.Y)
		}
		s.Stroke(d.Width, d.Color)
	case *sketch.Sticker:
		drawGlyph(s, d.At, d.Glyph, d.Rotation)
	case *sketch.MarkerPreview:
		r := d.Width / 2
		if r < 1 {
			r = 1
		}
		s.Arc(d.At.X, d.At.Y, r)
		s.Fill(d.Color)
	case *sketch.StickerPreview:
		drawGlyph(s, d.At, d.Glyph, d.Rotation)
	}
}

func drawGlyph(s surface.Surface, at sketch.Point, glyph string, rotation float64) {
	s.Save()
	s.Translate(at.X, at.Y)
	s.Rotate(rotation)
	s.FillText(glyph, 0, 0, StickerSize, glyphColor)
	s.Restore()
}
