package sketch

import (
	"image/color"

	"github.com/google/uuid"
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Drawable is a unit of renderable content that can be replayed onto any
// surface. The set of variants is closed: renderers dispatch with a type
// switch rather than through a draw method so that rendering stays in one
// place.
type Drawable interface {
	isDrawable()
}

// LineStroke is a freehand marker stroke. It grows by Extend while the
// pointer is held down and becomes immutable once closed.
type LineStroke struct {
	ID    string
	Width float64
	Color color.RGBA

	points []Point
	closed bool
}

// NewLineStroke opens a stroke starting at the given point.
func NewLineStroke(start Point, width float64, col color.RGBA) *LineStroke {
	return &LineStroke{
		ID:     uuid.NewString(),
		Width:  width,
		Color:  col,
		points: []Point{start},
	}
}

// Extend appends a point to an open stroke. Extending a closed stroke is a
// no-op; ownership of the open stroke ends at pointer-up and stray events
// must not mutate committed content.
func (s *LineStroke) Extend(p Point) {
	if s.closed {
		return
	}
	s.points = append(s.points, p)
}

// Close freezes the stroke. Further Extend calls are ignored.
func (s *LineStroke) Close() { s.closed = true }

// Closed reports whether the stroke can still grow.
func (s *LineStroke) Closed() bool { return s.closed }

// Points returns the recorded points. The slice is shared with the stroke;
// callers must treat it as read-only.
func (s *LineStroke) Points() []Point { return s.points }

func (s *LineStroke) isDrawable() {}

// Sticker is a glyph placed on the canvas. It is created and frozen
// atomically at pointer-down.
type Sticker struct {
	ID       string
	Glyph    string
	At       Point
	Rotation float64 // degrees
}

// NewSticker places a sticker at the given point.
func NewSticker(at Point, glyph string, rotation float64) *Sticker {
	return &Sticker{
		ID:       uuid.NewString(),
		Glyph:    glyph,
		At:       at,
		Rotation: rotation,
	}
}

func (s *Sticker) isDrawable() {}

// MarkerPreview is the ephemeral cursor preview for the marker tool. It is
// never committed to the log.
type MarkerPreview struct {
	At    Point
	Width float64
	Color color.RGBA
}

func (p *MarkerPreview) isDrawable() {}

// StickerPreview is the ephemeral cursor preview for the sticker tool.
type StickerPreview struct {
	At       Point
	Glyph    string
	Rotation float64
}

func (p *StickerPreview) isDrawable() {}
