package document

import "tether/diagram"

// History manages undo/redo using direct struct storage.
type History struct {
	states  []*diagram.Diagram
	current int
	max     int
}

// NewHistory creates a history manager keeping at most max states.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		states:  make([]*diagram.Diagram, 0, max),
		current: -1,
		max:     max,
	}
}

// SaveState saves a deep copy of the diagram as the newest state.
func (h *History) SaveState(d *diagram.Diagram) {
	clone := d.Clone()

	// Truncate any redo states beyond the current position.
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, clone)

	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if there is an earlier state.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if there is a later state.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo goes back one state. Returns nil when there is nothing to undo.
func (h *History) Undo() *diagram.Diagram {
	if !h.CanUndo() {
		return nil
	}
	h.current--

	// Return a clone so callers cannot mutate history in place.
	return h.states[h.current].Clone()
}

// Redo goes forward one state. Returns nil when there is nothing to redo.
func (h *History) Redo() *diagram.Diagram {
	if !h.CanRedo() {
		return nil
	}
	h.current++
	return h.states[h.current].Clone()
}

// Stats returns the current position and total number of states.
func (h *History) Stats() (current, total int) {
	return h.current + 1, len(h.states)
}
