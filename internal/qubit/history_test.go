package qubit

import "testing"

func TestHistoryPushPop(t *testing.T) {
	h := newHistory(3)
	if _, ok := h.pop(); ok {
		t.Fatalf("empty history must not pop")
	}
	h.push(Vector{X: 1})
	h.push(Vector{Y: 1})
	if h.depth() != 2 {
		t.Fatalf("depth: got %d want 2", h.depth())
	}
	v, ok := h.pop()
	if !ok || v != (Vector{Y: 1}) {
		t.Fatalf("pop order: got %v", v)
	}
}

func TestHistoryEviction(t *testing.T) {
	h := newHistory(2)
	h.push(Vector{X: 1})
	h.push(Vector{Y: 1})
	h.push(Vector{Z: 1})
	if h.depth() != 2 {
		t.Fatalf("depth after eviction: got %d want 2", h.depth())
	}
	v, _ := h.pop()
	if v != (Vector{Z: 1}) {
		t.Fatalf("newest snapshot first: got %v", v)
	}
	v, _ = h.pop()
	if v != (Vector{Y: 1}) {
		t.Fatalf("oldest snapshot must have been evicted: got %v", v)
	}
}

func TestHistoryDefaultCapacity(t *testing.T) {
	h := newHistory(0)
	if h.capacity != HistoryCapacity {
		t.Fatalf("non-positive capacity must fall back to %d, got %d", HistoryCapacity, h.capacity)
	}
}
