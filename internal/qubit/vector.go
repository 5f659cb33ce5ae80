// internal/qubit/vector.go
//
// The Bloch vector is the whole data model of blochterm: a unit vector in
// 3-space standing for a single-qubit pure state. The poles (0,0,±1) are the
// computational basis states |0⟩ and |1⟩; equator points are equal
// superpositions distinguished by the azimuthal phase angle.

package qubit

import (
	"fmt"
	"math"
)

// phiEpsilon bounds how close x and y must be to zero before the azimuthal
// angle is pinned to 0. atan2 is undefined at the poles and would otherwise
// jitter between calls.
const phiEpsilon = 1e-10

// Vector is a point on (or, transiently, near) the Bloch sphere.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized rescales the vector back onto the unit sphere. Every gate is a
// rotation, so this only absorbs accumulated floating-point drift; a zero
// vector is returned unchanged rather than divided by zero.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return Vector{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Polar returns the spherical angles (theta, phi) of the vector with the
// pole along Z. Theta is arccos of the clamped Z component; phi is the
// azimuth, defined as exactly 0 at the poles where atan2 has no answer.
func (v Vector) Polar() (theta, phi float64) {
	z := v.Z
	if z > 1 {
		z = 1
	}
	if z < -1 {
		z = -1
	}
	theta = math.Acos(z)
	if math.Abs(v.X) < phiEpsilon && math.Abs(v.Y) < phiEpsilon {
		return theta, 0
	}
	return theta, math.Atan2(v.Y, v.X)
}

// String renders the vector in the 3-decimal form the readout panel shows.
func (v Vector) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
