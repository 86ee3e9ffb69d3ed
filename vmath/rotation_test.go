package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

// near compares by distance; mgl64's ApproxEqualThreshold degrades to eps² when a component is exactly zero
func near(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() < tol
}

var (
	leftBlock  = EulerDeg{X: -90, Y: 180, Z: 270}
	rightBlock = EulerDeg{X: -90, Y: 180, Z: -270}
)

func TestLocalUpOfBlockRotation(t *testing.T) {
	up := LocalUp(leftBlock)
	want := mgl64.Vec3{0, 0, -1}
	if !near(up, want, eps) {
		t.Errorf("Expected LocalUp to be %v, got %v", want, up)
	}
}

func TestConfiguredBlocksStartFaceUp(t *testing.T) {
	up := LocalUp(leftBlock)
	for name, e := range map[string]EulerDeg{"left": leftBlock, "right": rightBlock} {
		if y := WorldY(e.Quat(), up); math.Abs(y-1) > eps {
			t.Errorf("Expected %s block world y to be 1, got %g", name, y)
		}
	}
}

func TestEulerQuatSingleAxis(t *testing.T) {
	q := EulerDeg{Z: 90}.Quat()
	got := q.Rotate(AxisX)
	if !near(got, AxisY, eps) {
		t.Errorf("Expected 90deg about Z to map X to %v, got %v", AxisY, got)
	}
	if l := q.Len(); math.Abs(l-1) > eps {
		t.Errorf("Expected quaternion length to be 1, got %g", l)
	}
}

func TestIntegrateRotation(t *testing.T) {
	q := mgl64.QuatIdent()
	w := mgl64.Vec3{0, 0, math.Pi / 2} // quarter turn per second
	for i := 0; i < 1000; i++ {
		q = IntegrateRotation(q, w, 0.001)
	}
	got := q.Rotate(AxisX)
	if !near(got, AxisY, 1e-3) {
		t.Errorf("Expected 1s at pi/2 rad/s to map X to %v, got %v", AxisY, got)
	}
	if l := q.Len(); math.Abs(l-1) > eps {
		t.Errorf("Expected integrated quaternion length to be 1, got %g", l)
	}
}

func TestIntegrateRotationZeroSpin(t *testing.T) {
	q := EulerDeg{X: 30}.Quat()
	if got := IntegrateRotation(q, mgl64.Vec3{}, 1.0/60); got.Sub(q).Len() > eps {
		t.Errorf("Zero spin should not change orientation: %v -> %v", q, got)
	}
}

func TestNearToleratesRoundOffAtZero(t *testing.T) {
	// Components of 1e-16 against an exact zero are float noise, not error
	got := mgl64.Vec3{-1.11e-16, 0, -0.9999999999999999}
	if !near(got, mgl64.Vec3{0, 0, -1}, eps) {
		t.Errorf("Expected %v to be within %g of (0, 0, -1)", got, eps)
	}
	if near(mgl64.Vec3{1e-6, 0, -1}, mgl64.Vec3{0, 0, -1}, eps) {
		t.Error("Expected a 1e-6 offset to exceed the tolerance")
	}
}
