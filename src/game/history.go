package game

// History records executed moves for undo. Undone moves wait on a second
// stack for redo until a new move is pushed.
type History struct {
	done   []*Move
	undone []*Move
}

// Push records an executed move and discards anything waiting for redo.
// Moves that are not currently executed are ignored.
func (h *History) Push(m *Move) bool {
	if m == nil || m.state != executed {
		return false
	}
	h.done = append(h.done, m)
	h.undone = nil
	return true
}

// Undo pops the most recent move and reverses it.
func (h *History) Undo(g *Game) bool {
	if len(h.done) == 0 {
		return false
	}
	m := h.done[len(h.done)-1]
	if !m.Undo(g) {
		return false
	}
	h.done = h.done[:len(h.done)-1]
	h.undone = append(h.undone, m)
	return true
}

// Redo executes the most recently undone move again.
func (h *History) Redo(g *Game) bool {
	if len(h.undone) == 0 {
		return false
	}
	m := h.undone[len(h.undone)-1]
	if !m.Execute(g) {
		return false
	}
	h.undone = h.undone[:len(h.undone)-1]
	h.done = append(h.done, m)
	return true
}

func (h *History) Len() int      { return len(h.done) }
func (h *History) CanUndo() bool { return len(h.done) > 0 }
func (h *History) CanRedo() bool { return len(h.undone) > 0 }
