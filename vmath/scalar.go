package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FiniteOr returns v when finite, fallback otherwise
func FiniteOr(v, fallback float64) float64 {
	if Finite(v) {
		return v
	}
	return fallback
}

// Frac returns the fractional part of a non-negative value, truncating toward zero
func Frac(v float64) float64 {
	return v - math.Trunc(v)
}

// MagSq returns the sum of squared components
func MagSq(v mgl64.Vec3) float64 {
	return v.X()*v.X() + v.Y()*v.Y() + v.Z()*v.Z()
}

// Damp applies rate-based damping over dt, matching 1/(1+dt*c) decay
func Damp(v mgl64.Vec3, coefficient, dt float64) mgl64.Vec3 {
	if coefficient <= 0 {
		return v
	}
	return v.Mul(1.0 / (1.0 + dt*coefficient))
}
