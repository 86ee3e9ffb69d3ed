package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float64 }{
		{-1, 0}, {0.5, 0.5}, {2, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Expected Clamp(%g) to be %g, got %g", tt.v, tt.want, got)
		}
	}
}

func TestFiniteOr(t *testing.T) {
	if FiniteOr(math.NaN(), 0.5) != 0.5 {
		t.Error("NaN not replaced")
	}
	if FiniteOr(math.Inf(-1), 0.5) != 0.5 {
		t.Error("-Inf not replaced")
	}
	if FiniteOr(0.25, 0.5) != 0.25 {
		t.Error("Finite value replaced")
	}
}

func TestFrac(t *testing.T) {
	if got := Frac(3.75); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Expected Frac(3.75) to be 0.75, got %g", got)
	}
	if got := Frac(2); got != 0 {
		t.Errorf("Expected Frac(2) to be 0, got %g", got)
	}
}

func TestMagSqAndDamp(t *testing.T) {
	v := mgl64.Vec3{1, 2, 2}
	if MagSq(v) != 9 {
		t.Errorf("Expected MagSq to be 9, got %g", MagSq(v))
	}
	d := Damp(v, 5, 0.1)
	want := v.Mul(1 / 1.5)
	if !d.ApproxEqual(want) {
		t.Errorf("Expected Damp to be %v, got %v", want, d)
	}
	if Damp(v, 0, 0.1) != v {
		t.Error("Zero coefficient changed vector")
	}
}
