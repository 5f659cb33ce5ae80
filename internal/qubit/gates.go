// internal/qubit/gates.go
//
// The fixed gate set: the three Pauli rotations, Hadamard, and the S and T
// phase gates. Each gate is a pure transform over a Vector. Transforms take
// the vector by value so all three input coordinates are staged before any
// output is computed; writing outputs field-by-field into a shared struct
// would silently corrupt the inputs of later coordinates.

package qubit

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Gate names one of the supported single-qubit gates.
type Gate string

const (
	GateX Gate = "X" // π rotation about the X axis
	GateY Gate = "Y" // π rotation about the Y axis
	GateZ Gate = "Z" // π rotation about the Z axis
	GateH Gate = "H" // π rotation about the (X+Z)/√2 axis
	GateS Gate = "S" // π/2 rotation about the Z axis
	GateT Gate = "T" // π/4 rotation about the Z axis
)

// ErrUnknownGate reports a gate identifier outside the fixed set. Only the
// parsing boundary returns it; Session.ApplyGate stays total.
var ErrUnknownGate = errors.New("qubit: unknown gate")

// Transform rotates a Bloch vector. Implementations must read only the
// argument and return a fresh value.
type Transform func(Vector) Vector

var sqrtHalf = math.Sqrt(0.5)

// gateTable is built once at init and read-only thereafter.
var gateTable = map[Gate]Transform{
	GateX: func(v Vector) Vector { return Vector{X: v.X, Y: -v.Y, Z: -v.Z} },
	GateY: func(v Vector) Vector { return Vector{X: -v.X, Y: v.Y, Z: -v.Z} },
	GateZ: func(v Vector) Vector { return Vector{X: -v.X, Y: -v.Y, Z: v.Z} },
	GateH: func(v Vector) Vector { return Vector{X: v.Z, Y: -v.Y, Z: v.X} },
	GateS: func(v Vector) Vector { return Vector{X: -v.Y, Y: v.X, Z: v.Z} },
	GateT: func(v Vector) Vector {
		return Vector{
			X: v.X*sqrtHalf - v.Y*sqrtHalf,
			Y: v.X*sqrtHalf + v.Y*sqrtHalf,
			Z: v.Z,
		}
	},
}

// gateOrder keeps listings (help panels, blochctl output) deterministic.
var gateOrder = []Gate{GateX, GateY, GateZ, GateH, GateS, GateT}

// Gates returns the supported gate set in display order.
func Gates() []Gate {
	out := make([]Gate, len(gateOrder))
	copy(out, gateOrder)
	return out
}

// ParseGate resolves a case-insensitive gate name. Untrusted inputs (flags,
// pack files) must come through here; the Session itself never validates.
func ParseGate(name string) (Gate, error) {
	g := Gate(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := gateTable[g]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGate, name)
	}
	return g, nil
}

// transform applies the named gate, or the identity when the name is not in
// the table. The caller decides whether unknown names are an error.
func transform(g Gate, v Vector) Vector {
	fn, ok := gateTable[g]
	if !ok {
		return v
	}
	return fn(v)
}
