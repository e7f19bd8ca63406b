package sketch

// Log is the ordered sequence of committed drawables plus the redo stack.
// Replay order is always commit order; undo and redo only truncate or
// restore the tail.
type Log struct {
	committed []Drawable
	redo      []Drawable
	onChange  func()
}

// NewLog creates an empty command log.
func NewLog() *Log { return &Log{} }

// OnChange registers a callback invoked after every operation, including
// no-op undo/redo, so the caller can schedule an idempotent repaint.
func (l *Log) OnChange(fn func()) { l.onChange = fn }

func (l *Log) notify() {
	if l.onChange != nil {
		l.onChange()
	}
}

// Commit appends a drawable and invalidates all redo history.
func (l *Log) Commit(d Drawable) {
	l.committed = append(l.committed, d)
	l.redo = l.redo[:0]
	l.notify()
}

// Undo moves the most recent drawable onto the redo stack. Undo on an
// empty log is a no-op.
func (l *Log) Undo() {
	if n := len(l.committed); n > 0 {
		l.redo = append(l.redo, l.committed[n-1])
		l.committed = l.committed[:n-1]
	}
	l.notify()
}

// Redo restores the most recently undone drawable as the new tail of the
// log. Redo with an empty redo stack is a no-op.
func (l *Log) Redo() {
	if n := len(l.redo); n > 0 {
		l.committed = append(l.committed, l.redo[n-1])
		l.redo = l.redo[:n-1]
	}
	l.notify()
}

// Clear empties the log and the redo stack. Clearing cannot be undone.
func (l *Log) Clear() {
	l.committed = nil
	l.redo = nil
	l.notify()
}

// Drawables returns the committed drawables in commit order. The returned
// slice is a copy; the drawables themselves are shared.
func (l *Log) Drawables() []Drawable {
	out := make([]Drawable, len(l.committed))
	copy(out, l.committed)
	return out
}

// Len reports the number of committed drawables.
func (l *Log) Len() int { return len(l.committed) }

// RedoLen reports the number of drawables waiting on the redo stack.
func (l *Log) RedoLen() int { return len(l.redo) }
