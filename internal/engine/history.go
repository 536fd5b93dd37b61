package engine

// History provides linear undo/redo over whole-canvas snapshots.
//
// Record pushes the pre-edit state and drops the redo branch, so redo is
// only ever reachable through an unbroken chain of undos. Undo and Redo
// exchange the caller's current canvas for the popped snapshot through
// the opposite stack; neither touches the rasterizer and neither clears
// the other stack.
//
// Depth is unbounded and every entry is a full canvas copy, so memory
// grows linearly with the number of commits in a session.
type History struct {
	undo []*Canvas
	redo []*Canvas
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Record stores a snapshot of the pre-edit canvas and discards any redo
// states. Call this before mutating the canvas.
func (h *History) Record(pre *Canvas) {
	h.undo = append(h.undo, pre.Snapshot())
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot, saving the current canvas onto the
// redo stack first. Returns false when there is nothing to undo.
func (h *History) Undo(current *Canvas) (*Canvas, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Snapshot())
	return top, true
}

// Redo pops the most recently undone state, saving the current canvas
// onto the undo stack first. Returns false when there is nothing to redo.
func (h *History) Redo(current *Canvas) (*Canvas, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Snapshot())
	return top, true
}

// CanUndo reports whether an undo state exists.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo state exists.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}
