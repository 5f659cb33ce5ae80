package qubit

// HistoryCapacity bounds how many snapshots a session retains. Once full,
// the oldest snapshot is discarded to make room.
const HistoryCapacity = 20

// history is a bounded stack of Vector snapshots. It is owned exclusively by
// a Session and never shared; there is no clear operation because a session
// only resets it by being recreated.
type history struct {
	snapshots []Vector
	capacity  int
}

func newHistory(capacity int) *history {
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	return &history{
		snapshots: make([]Vector, 0, capacity),
		capacity:  capacity,
	}
}

// push appends a snapshot, evicting the oldest entry at capacity.
func (h *history) push(v Vector) {
	if len(h.snapshots) >= h.capacity {
		h.snapshots = h.snapshots[1:]
	}
	h.snapshots = append(h.snapshots, v)
}

// pop removes and returns the most recent snapshot. The second return is
// false when the stack is empty.
func (h *history) pop() (Vector, bool) {
	if len(h.snapshots) == 0 {
		return Vector{}, false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, true
}

func (h *history) depth() int {
	return len(h.snapshots)
}
