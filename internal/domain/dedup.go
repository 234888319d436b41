package domain

// DefaultDedupCapacity is the bounded recent-history horizon: duplicates of
// the most recent 100 counted posts are suppressed, older repeats are not.
const DefaultDedupCapacity = 100

// DedupWindow is a bounded most-recent-N membership structure over normalized
// post texts. Appending past capacity evicts the single oldest entry. The
// window is owned by one scan; it is not safe for concurrent use.
type DedupWindow struct {
	capacity int
	order    []string
	members  map[string]int
}

// NewDedupWindow creates an empty window. A capacity of zero or less falls
// back to DefaultDedupCapacity.
func NewDedupWindow(capacity int) *DedupWindow {
	if capacity <= 0 {
		capacity = DefaultDedupCapacity
	}
	return &DedupWindow{
		capacity: capacity,
		members:  make(map[string]int, capacity),
	}
}

// Contains reports whether text is currently inside the window. Equality is
// exact string match; case and whitespace were already folded by
// normalization.
func (w *DedupWindow) Contains(text string) bool {
	return w.members[text] > 0
}

// Record appends text, evicting the oldest entry when the window exceeds
// capacity.
func (w *DedupWindow) Record(text string) {
	w.order = append(w.order, text)
	w.members[text]++
	if len(w.order) <= w.capacity {
		return
	}
	oldest := w.order[0]
	w.order = w.order[1:]
	w.members[oldest]--
	if w.members[oldest] == 0 {
		delete(w.members, oldest)
	}
}

// Len returns the number of entries currently held.
func (w *DedupWindow) Len() int {
	return len(w.order)
}
