package wavetable

import (
	"math"
	"testing"
)

func framesEqual(t *testing.T, got, want *Frame) {
	t.Helper()
	for i := 0; i < TableSize; i++ {
		if got.Real[i] != want.Real[i] || got.Imag[i] != want.Imag[i] {
			t.Fatalf("frames differ at bin %d: got (%g, %g) want (%g, %g)",
				i, got.Real[i], got.Imag[i], want.Real[i], want.Imag[i])
		}
	}
}

func TestInterpolateIdentityEndpoints(t *testing.T) {
	a := Basic(ShapeSaw)
	b := Basic(ShapeTriangle)
	framesEqual(t, Interpolate(a, b, 0.0), a)
	framesEqual(t, Interpolate(a, b, 1.0), b)
}

func TestInterpolateMidpointMean(t *testing.T) {
	a := Basic(ShapeSaw)
	b := Basic(ShapeSquare)
	mid := Interpolate(a, b, 0.5)
	for i := 0; i < TableSize; i++ {
		want := a.Imag[i]*0.5 + b.Imag[i]*0.5
		if math.Abs(mid.Imag[i]-want) > 1e-15 {
			t.Fatalf("bin %d: got %g want %g", i, mid.Imag[i], want)
		}
	}
}

func TestInterpolateExtrapolates(t *testing.T) {
	// t outside [0,1] is not clamped; extrapolation is the caller's choice.
	a := Basic(ShapeSine)
	b := Basic(ShapeSquare)
	out := Interpolate(a, b, 2.0)
	want := b.Imag[1]*2.0 - a.Imag[1]
	if math.Abs(out.Imag[1]-want) > 1e-15 {
		t.Fatalf("extrapolated bin 1: got %g want %g", out.Imag[1], want)
	}
}

func TestInterpolateDoesNotMutateInputs(t *testing.T) {
	a := Basic(ShapeSaw)
	b := Basic(ShapeSquare)
	aCopy := a.Clone()
	bCopy := b.Clone()
	_ = Interpolate(a, b, 0.37)
	framesEqual(t, a, aCopy)
	framesEqual(t, b, bCopy)
}

func TestInterpolateReturnsIndependentFrame(t *testing.T) {
	a := Basic(ShapeSine)
	b := Basic(ShapeSquare)
	out := Interpolate(a, b, 0.25)
	out.Imag[1] = 42 // caller owns the result
	if a.Imag[1] == 42 || b.Imag[1] == 42 {
		t.Fatal("interpolation result aliases an input buffer")
	}
}
