package model

// defaultHistorySize keeps enough generations to spot period-3 cycles
const defaultHistorySize = 5

// History stores recent grid hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a History that remembers the last size hashes.
// A non-positive size falls back to the default of 5.
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds a hash to the history and maintains its size
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant checks whether hash matches one of the last three recorded states,
// meaning the grid is a still life or in a cycle of period 2 or 3
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == hash {
			return true
		}
	}
	return false
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded hashes
func (h *History) Reset() {
	h.hashes = nil
}
