package qubit

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func vecApprox(a, b Vector) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestNormalizedRestoresUnitLength(t *testing.T) {
	v := Vector{X: 0.1, Y: 0.2, Z: 1.4}.Normalized()
	if !approx(v.Norm(), 1) {
		t.Fatalf("expected unit norm, got %v", v.Norm())
	}
}

func TestNormalizedZeroVectorUnchanged(t *testing.T) {
	v := Vector{}.Normalized()
	if v != (Vector{}) {
		t.Fatalf("zero vector must survive normalization, got %v", v)
	}
}

func TestPolarAtNorthPole(t *testing.T) {
	theta, phi := Vector{Z: 1}.Polar()
	if theta != 0 {
		t.Fatalf("expected theta 0 at |0⟩, got %v", theta)
	}
	if phi != 0 {
		t.Fatalf("expected phi pinned to 0 at the pole, got %v", phi)
	}
	if math.IsNaN(theta) || math.IsNaN(phi) {
		t.Fatalf("polar readout must never be NaN")
	}
}

func TestPolarAtSouthPole(t *testing.T) {
	theta, phi := Vector{Z: -1}.Polar()
	if !approx(theta, math.Pi) {
		t.Fatalf("expected theta π at |1⟩, got %v", theta)
	}
	if phi != 0 {
		t.Fatalf("expected phi 0 at the pole, got %v", phi)
	}
}

func TestPolarClampsDriftedZ(t *testing.T) {
	theta, _ := Vector{Z: 1 + 1e-9}.Polar()
	if math.IsNaN(theta) {
		t.Fatalf("z just past 1 must be clamped, got NaN theta")
	}
}

func TestPolarOnEquator(t *testing.T) {
	_, phi := Vector{X: 0, Y: 1}.Polar()
	if !approx(phi, math.Pi/2) {
		t.Fatalf("expected phi π/2 at |+i⟩, got %v", phi)
	}
	theta, _ := Vector{X: 1}.Polar()
	if !approx(theta, math.Pi/2) {
		t.Fatalf("expected theta π/2 on the equator, got %v", theta)
	}
}

func TestStringUsesThreeDecimals(t *testing.T) {
	got := Vector{X: 1, Y: -0.5, Z: 0.70710678}.String()
	want := "(1.000, -0.500, 0.707)"
	if got != want {
		t.Fatalf("readout format: got %q want %q", got, want)
	}
}
