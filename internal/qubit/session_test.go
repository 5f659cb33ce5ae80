package qubit

import (
	"math"
	"testing"
)

func TestNewSessionStartsAtZero(t *testing.T) {
	s := NewSession()
	if s.Vector() != (Vector{Z: 1}) {
		t.Fatalf("expected |0⟩ start, got %v", s.Vector())
	}
	if s.ID() == "" {
		t.Fatalf("session id must be set")
	}
	if s.Depth() != 0 {
		t.Fatalf("fresh session must have empty history, depth %d", s.Depth())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := NewSession()
	b := NewSession()
	a.ApplyGate(GateX)
	if b.Vector() != (Vector{Z: 1}) {
		t.Fatalf("mutating one session leaked into another: %v", b.Vector())
	}
	if a.ID() == b.ID() {
		t.Fatalf("sessions must have distinct ids")
	}
}

func TestUndoRestoresSnapshotExactly(t *testing.T) {
	s := NewSession()
	s.ApplyGate(GateH)
	s.ApplyGate(GateT)
	before := s.Vector()
	s.ApplyGate(GateS)
	s.Undo()
	if s.Vector() != before {
		t.Fatalf("undo must restore the stored snapshot bit-for-bit: got %v want %v", s.Vector(), before)
	}
}

func TestUndoOnEmptyHistoryIsNoOp(t *testing.T) {
	s := NewSession()
	notified := 0
	s.Subscribe(func() { notified++ })
	s.Undo()
	if notified != 0 {
		t.Fatalf("empty undo must not notify, got %d", notified)
	}
	if s.Vector() != (Vector{Z: 1}) {
		t.Fatalf("empty undo must not move the vector: %v", s.Vector())
	}
}

func TestHistoryBound(t *testing.T) {
	s := NewSession()
	for i := 0; i < HistoryCapacity+10; i++ {
		s.ApplyGate(GateX)
	}
	if s.Depth() != HistoryCapacity {
		t.Fatalf("history must cap at %d, got %d", HistoryCapacity, s.Depth())
	}
	for i := 0; i < HistoryCapacity; i++ {
		s.Undo()
	}
	moved := false
	s.Subscribe(func() { moved = true })
	s.Undo()
	if moved {
		t.Fatalf("undo past capacity must be a no-op")
	}
}

func TestHistoryEvictsOldestFirst(t *testing.T) {
	s := NewSession(WithHistoryCapacity(2))
	s.ApplyGate(GateH) // snapshot: |0⟩
	s.ApplyGate(GateT) // snapshot: |+⟩
	s.ApplyGate(GateT) // evicts the |0⟩ snapshot
	s.Undo()
	s.Undo()
	if !vecApprox(s.Vector(), Vector{X: 1}) {
		t.Fatalf("oldest snapshot must be evicted, expected to stop at |+⟩, got %v", s.Vector())
	}
}

func TestResetSetsExactPoles(t *testing.T) {
	s := NewSession()
	s.ApplyGate(GateH)
	s.ApplyGate(GateT)
	s.Reset(BasisOne)
	if s.Vector() != (Vector{Z: -1}) {
		t.Fatalf("reset must set the exact pole, got %v", s.Vector())
	}
	s.Reset(BasisZero)
	if s.Vector() != (Vector{Z: 1}) {
		t.Fatalf("reset must set the exact pole, got %v", s.Vector())
	}
	s.Undo()
	if s.Vector() != (Vector{Z: -1}) {
		t.Fatalf("reset must push history, undo landed on %v", s.Vector())
	}
}

func TestUnknownGateIsNoOpButConsumesHistory(t *testing.T) {
	s := NewSession()
	before := s.Vector()
	notified := 0
	s.Subscribe(func() { notified++ })
	s.ApplyGate(Gate("Q"))
	if s.Vector() != before {
		t.Fatalf("unknown gate must not move the vector: %v", s.Vector())
	}
	if s.Depth() != 1 {
		t.Fatalf("unknown gate must still push history, depth %d", s.Depth())
	}
	if notified != 1 {
		t.Fatalf("unknown gate still completes as a command, notified %d", notified)
	}
}

func TestObserverFiresPerMutation(t *testing.T) {
	s := NewSession()
	count := 0
	s.Subscribe(func() { count++ })
	s.ApplyGate(GateH)
	s.Reset(BasisOne)
	s.Undo()
	if count != 3 {
		t.Fatalf("expected 3 notifications, got %d", count)
	}
}

func TestTwoGateCircuitReachesMinusX(t *testing.T) {
	s := NewSession()
	s.ApplyGate(GateX)
	s.ApplyGate(GateH)
	if s.Vector().X >= -0.99 {
		t.Fatalf("X then H from |0⟩ must reach the −X axis, got %v", s.Vector())
	}
}

func TestPolarReadoutThroughSession(t *testing.T) {
	s := NewSession()
	s.ApplyGate(GateH)
	s.ApplyGate(GateS)
	theta, phi := s.Polar()
	if !approx(theta, math.Pi/2) || !approx(phi, math.Pi/2) {
		t.Fatalf("H then S must reach |+i⟩: theta %v phi %v", theta, phi)
	}
}
