// Package surface defines the drawing surface capability consumed by the
// renderer: path strokes, filled circles, centre-aligned glyph text, and a
// save/restore transform stack with uniform scaling.
package surface

import "image/color"

// Surface is a 2D drawing target. Implementations are not safe for
// concurrent use; the event model is single-threaded.
type Surface interface {
	// Size returns the surface dimensions in device pixels.
	Size() (w, h int)
	// Clear fills the whole surface with its background color.
	Clear()

	// Save pushes the current transform; Restore pops it. Restore with an
	// empty stack is a no-op.
	Save()
	Restore()
	// Scale applies a uniform scale to the current transform.
	Scale(f float64)
	// Rotate applies a rotation in degrees.
	Rotate(deg float64)
	// Translate moves the origin.
	Translate(dx, dy float64)

	// MoveTo begins a new path at the given point; LineTo extends it.
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke draws the current path and resets it. A path with fewer than
	// two points draws nothing.
	Stroke(width float64, col color.Color)

	// Arc records a circle; Fill fills it and resets it.
	Arc(cx, cy, r float64)
	Fill(col color.Color)

	// FillText draws text centred at (x, y) at the given point size,
	// honouring the current transform including rotation.
	FillText(text string, x, y, size float64, col color.Color)
}
