// Package packs loads user-defined challenge packs from .blochterm/packs.
// Packs come in two flavors: plain YAML definitions and Go files interpreted
// with yaegi, both producing the same definition schema.
package packs

import (
	"fmt"
	"strings"

	"github.com/qubitlab/blochterm/internal/challenge"
	"github.com/qubitlab/blochterm/internal/qubit"
)

// Rule is one boundary clause of a pack predicate: an axis or angle compared
// against a threshold. All of a definition's rules must hold (conjunction).
type Rule struct {
	Axis  string  `json:"axis" yaml:"axis"`   // x | y | z | theta | phi
	Op    string  `json:"op" yaml:"op"`       // lt | gt
	Value float64 `json:"value" yaml:"value"` // threshold
}

func (r Rule) normalized() Rule {
	return Rule{
		Axis:  strings.ToLower(strings.TrimSpace(r.Axis)),
		Op:    strings.ToLower(strings.TrimSpace(r.Op)),
		Value: r.Value,
	}
}

func (r Rule) validate() error {
	switch r.Axis {
	case "x", "y", "z", "theta", "phi":
	default:
		return fmt.Errorf("axis must be one of x, y, z, theta, phi; got %q", r.Axis)
	}
	switch r.Op {
	case "lt", "gt":
	default:
		return fmt.Errorf("op must be lt or gt; got %q", r.Op)
	}
	return nil
}

// holds evaluates the clause against a vector.
func (r Rule) holds(v qubit.Vector) bool {
	var val float64
	switch r.Axis {
	case "x":
		val = v.X
	case "y":
		val = v.Y
	case "z":
		val = v.Z
	case "theta":
		val, _ = v.Polar()
	case "phi":
		_, val = v.Polar()
	}
	if r.Op == "lt" {
		return val < r.Value
	}
	return val > r.Value
}

// ChallengeDefinition describes one pack challenge as it appears on disk.
//
// The struct mirrors the schema under .blochterm/packs/*.yaml and is
// intentionally narrow so definitions can be validated before they are
// registered with the evaluator.
type ChallengeDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Hint        string `json:"hint" yaml:"hint"`
	Rules       []Rule `json:"rules" yaml:"rules"`
}

// Normalized returns a trimmed copy of the definition.
func (def ChallengeDefinition) Normalized() ChallengeDefinition {
	clone := ChallengeDefinition{
		ID:          strings.TrimSpace(def.ID),
		Title:       strings.TrimSpace(def.Title),
		Description: strings.TrimSpace(def.Description),
		Hint:        strings.TrimSpace(def.Hint),
	}
	if len(def.Rules) > 0 {
		clone.Rules = make([]Rule, len(def.Rules))
		for i, rule := range def.Rules {
			clone.Rules[i] = rule.normalized()
		}
	}
	return clone
}

// Validate ensures the definition is well-formed.
func (def ChallengeDefinition) Validate() error {
	normalized := def.Normalized()
	if normalized.ID == "" {
		return fmt.Errorf("pack: id is required")
	}
	if normalized.Title == "" {
		return fmt.Errorf("pack %s: title is required", normalized.ID)
	}
	if normalized.Hint == "" {
		return fmt.Errorf("pack %s: hint is required", normalized.ID)
	}
	if len(normalized.Rules) == 0 {
		return fmt.Errorf("pack %s: at least one rule is required", normalized.ID)
	}
	for i, rule := range normalized.Rules {
		if err := rule.validate(); err != nil {
			return fmt.Errorf("pack %s: rules[%d]: %w", normalized.ID, i, err)
		}
	}
	return nil
}

// Compile turns the definition into a registrable challenge whose predicate
// is the conjunction of its rules.
func (def ChallengeDefinition) Compile() (challenge.Challenge, error) {
	if err := def.Validate(); err != nil {
		return challenge.Challenge{}, err
	}
	normalized := def.Normalized()
	rules := normalized.Rules
	return challenge.Challenge{
		ID:          normalized.ID,
		Title:       normalized.Title,
		Description: normalized.Description,
		Hint:        normalized.Hint,
		Predicate: func(v qubit.Vector) bool {
			for _, rule := range rules {
				if !rule.holds(v) {
					return false
				}
			}
			return true
		},
	}, nil
}
