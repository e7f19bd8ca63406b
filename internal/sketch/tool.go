package sketch

import (
	"image/color"

	"github.com/example/sketchpad/internal/palette"
)

// Kind identifies the active tool.
type Kind int

const (
	KindMarker Kind = iota
	KindSticker
)

// Tool is the currently selected drawing instrument. Exactly one kind is
// active at a time; the hue and rotation sliders keep their values across
// tool switches the way slider widgets do, but mutate only the matching
// kind while it is active.
type Tool struct {
	kind     Kind
	width    float64
	hue      float64
	glyph    string
	rotation float64
}

// NewTool creates a marker tool with the default palette settings.
func NewTool() *Tool {
	return &Tool{
		kind:  KindMarker,
		width: palette.DefaultWidth(),
		hue:   palette.DefaultHue(),
	}
}

// Kind reports the active tool kind.
func (t *Tool) Kind() Kind { return t.kind }

// SelectMarker makes the marker with the given width the active tool.
func (t *Tool) SelectMarker(width float64) {
	if width < 1 {
		width = 1
	}
	t.kind = KindMarker
	t.width = width
}

// SelectSticker makes the given sticker glyph the active tool.
func (t *Tool) SelectSticker(glyph string) {
	t.kind = KindSticker
	t.glyph = glyph
}

// SetHue adjusts the marker color. Ignored while a sticker is active.
func (t *Tool) SetHue(deg float64) {
	if t.kind != KindMarker {
		return
	}
	t.hue = palette.NormalizeHue(deg)
}

// SetRotation adjusts the sticker rotation in degrees. Ignored while the
// marker is active.
func (t *Tool) SetRotation(deg float64) {
	if t.kind != KindSticker {
		return
	}
	t.rotation = deg
}

// Width returns the marker stroke width.
func (t *Tool) Width() float64 { return t.width }

// Hue returns the marker hue angle.
func (t *Tool) Hue() float64 { return t.hue }

// Glyph returns the selected sticker glyph.
func (t *Tool) Glyph() string { return t.glyph }

// Rotation returns the sticker rotation in degrees.
func (t *Tool) Rotation() float64 { return t.rotation }

// Color returns the marker color derived from the hue.
func (t *Tool) Color() color.RGBA { return palette.HueColor(t.hue) }

// Preview derives the ephemeral cursor drawable for the active tool.
func (t *Tool) Preview(at Point) Drawable {
	switch t.kind {
	case KindSticker:
		return &StickerPreview{At: at, Glyph: t.glyph, Rotation: t.rotation}
	default:
		return &MarkerPreview{At: at, Width: t.width, Color: t.Color()}
	}
}

// Apply creates the committed drawable for a pointer-down at the given
// point: an open stroke for the marker, a frozen sticker otherwise.
func (t *Tool) Apply(at Point) Drawable {
	switch t.kind {
	case KindSticker:
		return NewSticker(at, t.glyph, t.rotation)
	default:
		return NewLineStroke(at, t.width, t.Color())
	}
}
