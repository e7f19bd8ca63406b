package sketch

// PrimaryButton is the pointer button that draws. All other buttons are
// ignored in every state.
const PrimaryButton = 0

// Pad owns the sketch session state: the command log, the active tool,
// the open stroke, and the live preview. It is the single writer; every
// pointer event or UI action runs to completion before the next one, so
// no locking is needed.
type Pad struct {
	log     *Log
	tool    *Tool
	open    *LineStroke
	preview Drawable

	cursor    Point
	hasCursor bool

	onChange func()
}

// NewPad creates a pad with an empty log and the default marker tool.
func NewPad() *Pad {
	p := &Pad{log: NewLog(), tool: NewTool()}
	p.log.OnChange(p.logChanged)
	return p
}

// OnChange registers a callback invoked after any state change that needs
// a repaint.
func (p *Pad) OnChange(fn func()) { p.onChange = fn }

func (p *Pad) notify() {
	if p.onChange != nil {
		p.onChange()
	}
}

// logChanged clears the preview whenever the log mutates; the preview is
// recomputed on the next pointer move.
func (p *Pad) logChanged() {
	p.preview = nil
	p.notify()
}

// Log exposes the command log for replay and inspection.
func (p *Pad) Log() *Log { return p.log }

// Tool exposes the active tool.
func (p *Pad) Tool() *Tool { return p.tool }

// Preview returns the live preview drawable, or nil when none is shown.
func (p *Pad) Preview() Drawable { return p.preview }

// Drawing reports whether a stroke is currently open.
func (p *Pad) Drawing() bool { return p.open != nil }

// PointerDown handles a press. A sticker commits immediately and the pad
// stays idle; a marker opens a stroke, commits it so it renders while it
// grows, and enters the drawing state.
func (p *Pad) PointerDown(at Point, button int) {
	if button != PrimaryButton {
		return
	}
	if p.open != nil {
		// A second press without a release; treat it as a stray event.
		return
	}
	p.cursor, p.hasCursor = at, true
	d := p.tool.Apply(at)
	if stroke, ok := d.(*LineStroke); ok {
		p.open = stroke
	}
	p.log.Commit(d)
}

// PointerMove extends the open stroke, or recomputes the preview while
// idle.
func (p *Pad) PointerMove(at Point) {
	p.cursor, p.hasCursor = at, true
	if p.open != nil {
		p.open.Extend(at)
		p.notify()
		return
	}
	p.preview = p.tool.Preview(at)
	p.notify()
}

// PointerUp closes the open stroke and discards the preview. Releases
// outside the surface and releases without a matching press are handled
// the same way. Callers must forward every primary release, wherever the
// pointer is, or the stroke stays open and later moves keep extending it.
func (p *Pad) PointerUp(button int) {
	if button != PrimaryButton {
		return
	}
	if p.open != nil {
		p.open.Close()
		p.open = nil
	}
	p.preview = nil
	p.notify()
}

// PointerLeave clears the preview while the pointer is off the surface.
func (p *Pad) PointerLeave() {
	p.hasCursor = false
	if p.preview != nil {
		p.preview = nil
		p.notify()
	}
}

// Undo moves the latest drawable to the redo stack.
func (p *Pad) Undo() {
	p.closeOpen()
	p.log.Undo()
}

// Redo restores the most recently undone drawable.
func (p *Pad) Redo() {
	p.closeOpen()
	p.log.Redo()
}

// Clear wipes the canvas and the redo history.
func (p *Pad) Clear() {
	p.closeOpen()
	p.log.Clear()
}

// closeOpen defensively ends a drag when a log action arrives mid-stroke.
func (p *Pad) closeOpen() {
	if p.open != nil {
		p.open.Close()
		p.open = nil
	}
}

// SelectMarker switches to the marker tool and refreshes the preview at
// the last cursor position so the change is visible without a move.
func (p *Pad) SelectMarker(width float64) {
	p.tool.SelectMarker(width)
	p.refreshPreview()
}

// SelectSticker switches to the sticker tool.
func (p *Pad) SelectSticker(glyph string) {
	p.tool.SelectSticker(glyph)
	p.refreshPreview()
}

// SetHue adjusts the marker hue; a no-op while a sticker is active.
func (p *Pad) SetHue(deg float64) {
	p.tool.SetHue(deg)
	p.refreshPreview()
}

// SetRotation adjusts the sticker rotation; a no-op while the marker is
// active.
func (p *Pad) SetRotation(deg float64) {
	p.tool.SetRotation(deg)
	p.refreshPreview()
}

func (p *Pad) refreshPreview() {
	if p.open != nil {
		return
	}
	if p.hasCursor {
		p.preview = p.tool.Preview(p.cursor)
	} else {
		p.preview = nil
	}
	p.notify()
}
