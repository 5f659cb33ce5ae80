// internal/challenge/challenge.go
//
// Challenges are guided goals over the live Bloch vector: fixed predicates
// with a hint shown on failure. The evaluator reads the vector handed to it
// and nothing else — no history, no engine internals.

package challenge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qubitlab/blochterm/internal/qubit"
)

// ErrUnknownChallenge reports a lookup for an id that was never registered.
var ErrUnknownChallenge = errors.New("challenge: unknown challenge")

// Predicate decides whether a vector satisfies a challenge goal.
type Predicate func(qubit.Vector) bool

// Challenge is a static goal record. Predicates must be pure.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Hint        string
	Predicate   Predicate
}

// Validate checks that a challenge is complete enough to register.
func (c Challenge) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("challenge: id is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("challenge %s: title is required", c.ID)
	}
	if c.Predicate == nil {
		return fmt.Errorf("challenge %s: predicate is required", c.ID)
	}
	return nil
}

// Result is the outcome of a single check. Hint is populated only on
// failure; a false result is an expected negative, not an error.
type Result struct {
	Passed bool
	Hint   string
}

// Evaluator holds an ordered challenge list: the builtin catalogue plus any
// registered pack challenges.
type Evaluator struct {
	ordered []Challenge
	byID    map[string]int
}

// NewEvaluator seeds an evaluator with the builtin catalogue.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{byID: make(map[string]int)}
	for _, c := range Catalogue() {
		// Builtins are maintained alongside Validate; a failure here is a
		// programming error, not a runtime condition.
		if err := ev.Register(c); err != nil {
			panic(err)
		}
	}
	return ev
}

// Register appends a challenge, rejecting duplicates of any known id.
func (ev *Evaluator) Register(c Challenge) error {
	if err := c.Validate(); err != nil {
		return err
	}
	id := strings.TrimSpace(c.ID)
	if _, ok := ev.byID[id]; ok {
		return fmt.Errorf("challenge: duplicate id %s", id)
	}
	c.ID = id
	ev.byID[id] = len(ev.ordered)
	ev.ordered = append(ev.ordered, c)
	return nil
}

// Challenges returns the registered challenges in display order.
func (ev *Evaluator) Challenges() []Challenge {
	out := make([]Challenge, len(ev.ordered))
	copy(out, ev.ordered)
	return out
}

// Lookup returns the challenge registered under id.
func (ev *Evaluator) Lookup(id string) (Challenge, error) {
	idx, ok := ev.byID[strings.TrimSpace(id)]
	if !ok {
		return Challenge{}, fmt.Errorf("%w: %q", ErrUnknownChallenge, id)
	}
	return ev.ordered[idx], nil
}

// Check evaluates the named challenge against the supplied vector.
// Re-checking a passed challenge is harmless: the predicate re-derives the
// same boolean from the current vector.
func (ev *Evaluator) Check(id string, v qubit.Vector) (Result, error) {
	c, err := ev.Lookup(id)
	if err != nil {
		return Result{}, err
	}
	if c.Predicate(v) {
		return Result{Passed: true}, nil
	}
	return Result{Hint: c.Hint}, nil
}
