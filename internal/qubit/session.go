// internal/qubit/session.go
//
// A Session owns one Bloch vector and its undo history. Sessions are plain
// values constructed per user — nothing in this package is process-global —
// so isolated instances (tests, a future multi-session host) come for free.

package qubit

import "github.com/google/uuid"

// Basis names one of the two computational basis states.
type Basis int

const (
	BasisZero Basis = iota // |0⟩, the north pole (0,0,+1)
	BasisOne               // |1⟩, the south pole (0,0,−1)
)

// Vector returns the exact pole coordinates for the basis state.
func (b Basis) Vector() Vector {
	if b == BasisOne {
		return Vector{Z: -1}
	}
	return Vector{Z: 1}
}

// Observer is notified after every mutating command. It carries no payload:
// the collaborator re-reads Vector() and Polar() itself.
type Observer func()

// Option customizes Session construction.
type Option func(*Session)

// WithBasis chooses the starting basis state. The default is |0⟩.
func WithBasis(b Basis) Option {
	return func(s *Session) { s.vec = b.Vector() }
}

// WithHistoryCapacity overrides the undo depth (primarily for tests).
func WithHistoryCapacity(capacity int) Option {
	return func(s *Session) { s.hist = newHistory(capacity) }
}

// Session is the state engine: the current vector, the bounded undo history,
// and the change observers. Every operation is synchronous and total — the
// command vocabulary is closed, so nothing here can fail.
type Session struct {
	id        string
	vec       Vector
	hist      *history
	observers []Observer
}

// NewSession starts a session at |0⟩ unless an option says otherwise.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:   uuid.NewString(),
		vec:  BasisZero.Vector(),
		hist: newHistory(HistoryCapacity),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ID returns the session identifier used in log entries.
func (s *Session) ID() string {
	return s.id
}

// Subscribe registers an observer fired after every mutating command.
func (s *Session) Subscribe(fn Observer) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// ApplyGate pushes the current vector onto the history, applies the named
// transform, and renormalizes. A gate value outside the fixed set degrades
// to an identity transform but still consumes history capacity; validation
// belongs to ParseGate at untrusted boundaries, not here.
func (s *Session) ApplyGate(g Gate) {
	s.hist.push(s.vec)
	s.vec = transform(g, s.vec).Normalized()
	s.notify()
}

// Reset pushes history and sets the vector to the exact pole coordinates,
// bypassing the gate table.
func (s *Session) Reset(b Basis) {
	s.hist.push(s.vec)
	s.vec = b.Vector()
	s.notify()
}

// Undo restores the most recent snapshot bit-for-bit. With an empty history
// it is a silent no-op; there is no redo.
func (s *Session) Undo() {
	prev, ok := s.hist.pop()
	if !ok {
		return
	}
	s.vec = prev
	s.notify()
}

// Vector returns the current Bloch vector. Read-only, no side effects.
func (s *Session) Vector() Vector {
	return s.vec
}

// Polar returns the (theta, phi) readout for the current vector.
func (s *Session) Polar() (theta, phi float64) {
	return s.vec.Polar()
}

// Depth reports how many undo steps are available.
func (s *Session) Depth() int {
	return s.hist.depth()
}

func (s *Session) notify() {
	for _, fn := range s.observers {
		fn()
	}
}
