package challenge

import "github.com/qubitlab/blochterm/internal/qubit"

// Catalogue returns the fixed builtin sequence of guided challenges. The
// thresholds are deliberately loose boundary checks (0.99 rather than exact
// equality) so single-precision drift never strands a correct circuit.
func Catalogue() []Challenge {
	return []Challenge{
		{
			ID:          "reach-one",
			Title:       "Reach |1⟩",
			Description: "Send the state from the north pole to the south pole.",
			Hint:        "The X gate flips between the poles.",
			Predicate:   func(v qubit.Vector) bool { return v.Z < -0.99 },
		},
		{
			ID:          "make-superposition",
			Title:       "Reach |+⟩",
			Description: "Put the state into an equal superposition on the +X axis.",
			Hint:        "Hadamard carries |0⟩ onto the equator.",
			Predicate:   func(v qubit.Vector) bool { return v.X > 0.99 },
		},
		{
			ID:          "two-gates",
			Title:       "Reach |−⟩",
			Description: "Reach the −X axis using exactly two gates from |0⟩.",
			Hint:        "Flip to |1⟩ first, then apply Hadamard.",
			Predicate:   func(v qubit.Vector) bool { return v.X < -0.99 },
		},
		{
			ID:          "imaginary-phase",
			Title:       "Reach |+i⟩",
			Description: "Reach the +Y axis, a superposition with a quarter-turn phase.",
			Hint:        "From |+⟩, the S gate quarter-turns about Z.",
			Predicate:   func(v qubit.Vector) bool { return v.Y > 0.99 },
		},
		{
			ID:          "octant-phase",
			Title:       "Split the octant",
			Description: "Park the state on the equator halfway between +X and +Y.",
			Hint:        "T turns an equator state one eighth about Z.",
			Predicate:   func(v qubit.Vector) bool { return v.X > 0.70 && v.Y > 0.70 },
		},
	}
}
