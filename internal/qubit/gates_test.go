package qubit

import (
	"math/rand"
	"testing"
)

func TestGateEffects(t *testing.T) {
	start := Vector{X: 0.267261, Y: 0.534522, Z: 0.801784} // (1,2,3)/√14
	cases := []struct {
		gate Gate
		want Vector
	}{
		{GateX, Vector{X: start.X, Y: -start.Y, Z: -start.Z}},
		{GateY, Vector{X: -start.X, Y: start.Y, Z: -start.Z}},
		{GateZ, Vector{X: -start.X, Y: -start.Y, Z: start.Z}},
		{GateH, Vector{X: start.Z, Y: -start.Y, Z: start.X}},
		{GateS, Vector{X: -start.Y, Y: start.X, Z: start.Z}},
		{GateT, Vector{
			X: start.X*sqrtHalf - start.Y*sqrtHalf,
			Y: start.X*sqrtHalf + start.Y*sqrtHalf,
			Z: start.Z,
		}},
	}
	for _, tc := range cases {
		got := transform(tc.gate, start)
		if !vecApprox(got, tc.want) {
			t.Fatalf("%s: got %v want %v", tc.gate, got, tc.want)
		}
	}
}

func TestTransformsStageInputs(t *testing.T) {
	// S swaps x and y with a sign; a field-by-field update that wrote x
	// first would feed the new x into y. Check both outputs come from the
	// pre-transform coordinates.
	got := transform(GateS, Vector{X: 0.6, Y: 0.8})
	want := Vector{X: -0.8, Y: 0.6}
	if !vecApprox(got, want) {
		t.Fatalf("S must read pre-mutation coordinates: got %v want %v", got, want)
	}
}

func TestInvolutionLaws(t *testing.T) {
	start := Vector{X: 0.48, Y: -0.6, Z: 0.64}.Normalized()
	cases := []struct {
		gate  Gate
		times int
	}{
		{GateX, 2},
		{GateY, 2},
		{GateZ, 2},
		{GateH, 2},
		{GateS, 4},
		{GateT, 8},
	}
	for _, tc := range cases {
		v := start
		for i := 0; i < tc.times; i++ {
			v = transform(tc.gate, v).Normalized()
		}
		if !vecApprox(v, start) {
			t.Fatalf("%s applied %d times must be identity: got %v want %v", tc.gate, tc.times, v, start)
		}
	}
}

func TestBasisFlipUnderX(t *testing.T) {
	down := transform(GateX, Vector{Z: 1})
	if !vecApprox(down, Vector{Z: -1}) {
		t.Fatalf("X|0⟩ must reach |1⟩, got %v", down)
	}
	up := transform(GateX, Vector{Z: -1})
	if !vecApprox(up, Vector{Z: 1}) {
		t.Fatalf("X|1⟩ must reach |0⟩, got %v", up)
	}
}

func TestHadamardMapsPoleToEquator(t *testing.T) {
	got := transform(GateH, Vector{Z: 1})
	if !vecApprox(got, Vector{X: 1}) {
		t.Fatalf("H|0⟩ must reach |+⟩, got %v", got)
	}
}

func TestXLeavesXAxisInvariant(t *testing.T) {
	got := transform(GateX, Vector{X: 1})
	if !vecApprox(got, Vector{X: 1}) {
		t.Fatalf("X must fix states on its own axis, got %v", got)
	}
}

func TestNormInvariantUnderRandomCircuits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gates := Gates()
	v := Vector{Z: 1}
	for i := 0; i < 2000; i++ {
		g := gates[rng.Intn(len(gates))]
		v = transform(g, v).Normalized()
		if n := v.Norm(); !approx(n, 1) {
			t.Fatalf("norm drifted to %v after %d gates", n, i+1)
		}
	}
}

func TestParseGate(t *testing.T) {
	for _, name := range []string{"x", " h ", "T", "s"} {
		if _, err := ParseGate(name); err != nil {
			t.Fatalf("ParseGate(%q): %v", name, err)
		}
	}
	if _, err := ParseGate("CNOT"); err == nil {
		t.Fatalf("expected unknown gate error for CNOT")
	}
}

func TestGatesReturnsCopy(t *testing.T) {
	first := Gates()
	first[0] = Gate("bogus")
	if Gates()[0] != GateX {
		t.Fatalf("Gates must not expose the internal order slice")
	}
}
