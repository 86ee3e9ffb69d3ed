package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Axis unit vectors
var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// EulerDeg is an intrinsic X-Y-Z rotation in degrees
type EulerDeg struct {
	X, Y, Z float64
}

// Quat composes the rotation as Rx * Ry * Rz
func (e EulerDeg) Quat() mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(e.X), AxisX)
	qy := mgl64.QuatRotate(mgl64.DegToRad(e.Y), AxisY)
	qz := mgl64.QuatRotate(mgl64.DegToRad(e.Z), AxisZ)
	return qx.Mul(qy).Mul(qz).Normalize()
}

// LocalUp returns the body-local direction that maps to world +Y under rotation e
func LocalUp(e EulerDeg) mgl64.Vec3 {
	return e.Quat().Inverse().Rotate(AxisY)
}

// WorldY returns the world-space Y component of local vector v under orientation q
func WorldY(q mgl64.Quat, v mgl64.Vec3) float64 {
	return q.Rotate(v).Y()
}

// IntegrateRotation advances q by angular velocity w (world frame, rad/s) over dt
func IntegrateRotation(q mgl64.Quat, w mgl64.Vec3, dt float64) mgl64.Quat {
	spin := mgl64.Quat{W: 0, V: w}.Mul(q).Scale(0.5 * dt)
	next := q.Add(spin)
	if next.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return next.Normalize()
}
