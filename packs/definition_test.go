package packs

import (
	"testing"

	"github.com/qubitlab/blochterm/internal/qubit"
)

func validDefinition() ChallengeDefinition {
	return ChallengeDefinition{
		ID:    "southern",
		Title: "Go South",
		Hint:  "Head below the equator.",
		Rules: []Rule{{Axis: "z", Op: "lt", Value: -0.5}},
	}
}

func TestNormalizedTrimsFields(t *testing.T) {
	def := ChallengeDefinition{
		ID:    "  spaced  ",
		Title: " Title ",
		Hint:  " hint ",
		Rules: []Rule{{Axis: " Z ", Op: " LT ", Value: 0}},
	}
	n := def.Normalized()
	if n.ID != "spaced" || n.Title != "Title" || n.Hint != "hint" {
		t.Fatalf("fields not trimmed: %+v", n)
	}
	if n.Rules[0].Axis != "z" || n.Rules[0].Op != "lt" {
		t.Fatalf("rule not normalized: %+v", n.Rules[0])
	}
}

func TestValidateRejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		def  ChallengeDefinition
	}{
		{"missing id", ChallengeDefinition{Title: "x", Hint: "h", Rules: []Rule{{Axis: "x", Op: "gt"}}}},
		{"missing title", ChallengeDefinition{ID: "a", Hint: "h", Rules: []Rule{{Axis: "x", Op: "gt"}}}},
		{"missing hint", ChallengeDefinition{ID: "a", Title: "x", Rules: []Rule{{Axis: "x", Op: "gt"}}}},
		{"no rules", ChallengeDefinition{ID: "a", Title: "x", Hint: "h"}},
		{"bad axis", ChallengeDefinition{ID: "a", Title: "x", Hint: "h", Rules: []Rule{{Axis: "w", Op: "gt"}}}},
		{"bad op", ChallengeDefinition{ID: "a", Title: "x", Hint: "h", Rules: []Rule{{Axis: "x", Op: "ge"}}}},
	}
	for _, tc := range cases {
		if err := tc.def.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
	if err := validDefinition().Validate(); err != nil {
		t.Fatalf("valid definition rejected: %v", err)
	}
}

func TestCompilePredicateConjunction(t *testing.T) {
	def := ChallengeDefinition{
		ID:    "first-quadrant",
		Title: "First Quadrant",
		Hint:  "Both x and y must be positive.",
		Rules: []Rule{
			{Axis: "x", Op: "gt", Value: 0.5},
			{Axis: "y", Op: "gt", Value: 0.5},
		},
	}
	c, err := def.Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !c.Predicate(qubit.Vector{X: 0.7, Y: 0.7}) {
		t.Fatalf("vector in quadrant must pass")
	}
	if c.Predicate(qubit.Vector{X: 0.7, Y: 0.1}) {
		t.Fatalf("one failing clause must fail the whole predicate")
	}
}

func TestCompileAngleRules(t *testing.T) {
	def := ChallengeDefinition{
		ID:    "equator-band",
		Title: "Equator Band",
		Hint:  "Stay near the equator.",
		Rules: []Rule{
			{Axis: "theta", Op: "gt", Value: 1.4},
			{Axis: "theta", Op: "lt", Value: 1.8},
			{Axis: "phi", Op: "gt", Value: 0.5},
		},
	}
	c, err := def.Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !c.Predicate(qubit.Vector{Y: 1}) {
		t.Fatalf("|+i⟩ sits on the equator at phi π/2, expected pass")
	}
	if c.Predicate(qubit.Vector{Z: 1}) {
		t.Fatalf("pole must fail the equator band")
	}
}
