package model

// History remembers recent living-set hashes to spot still lifes and short cycles
type History struct {
	hashes []string
	limit  int
}

// NewHistory keeps up to limit hashes. A non-positive limit keeps the last 5.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 5
	}
	return &History{limit: limit}
}

// Observe records the engine's current state and reports whether it matches
// one of the remembered states
func (h *History) Observe(e *Engine) bool {
	current := e.Hash()

	repeated := false
	for _, prev := range h.hashes {
		if prev == current {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > h.limit {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Clear forgets every recorded state
func (h *History) Clear() {
	h.hashes = nil
}

// Len returns how many states are remembered
func (h *History) Len() int {
	return len(h.hashes)
}
