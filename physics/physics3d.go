package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SupportDepth returns how far a slab extends below its center along world -Y
func SupportDepth(rot mgl64.Quat, half mgl64.Vec3) float64 {
	ax := rot.Rotate(mgl64.Vec3{1, 0, 0})
	ay := rot.Rotate(mgl64.Vec3{0, 1, 0})
	az := rot.Rotate(mgl64.Vec3{0, 0, 1})
	return math.Abs(ax.Y())*half.X() + math.Abs(ay.Y())*half.Y() + math.Abs(az.Y())*half.Z()
}

// LowestPoint returns the offset from center to the lowest support point of a slab
// Axes within tolerance of horizontal contribute nothing, so a flat face yields its center
func LowestPoint(rot mgl64.Quat, half mgl64.Vec3, tolerance float64) mgl64.Vec3 {
	var r mgl64.Vec3
	for i, local := range [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		axis := rot.Rotate(local)
		if math.Abs(axis.Y()) < tolerance {
			continue
		}
		if axis.Y() > 0 {
			r = r.Sub(axis.Mul(half[i]))
		} else {
			r = r.Add(axis.Mul(half[i]))
		}
	}
	return r
}

// ReflectAxis clamps a position component into [lo, hi] and reflects its velocity
// Returns true if the boundary was hit while moving outward
func ReflectAxis(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel * restitution
			return true
		}
		return false
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel * restitution
			return true
		}
	}
	return false
}

// ElasticCollision3D computes post-collision velocities for two spheres
// Returns (newVelA, newVelB, collided)
func ElasticCollision3D(posA, posB, velA, velB mgl64.Vec3, massA, massB, restitution float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	delta := posB.Sub(posA)
	dist := delta.Len()
	if dist == 0 {
		return velA, velB, false
	}
	n := delta.Mul(1.0 / dist)

	vn := velA.Sub(velB).Dot(n)

	// Already separating
	if vn <= 0 {
		return velA, velB, false
	}

	invA := 1.0 / massA
	invB := 1.0 / massB
	invSum := invA + invB
	if invSum == 0 {
		return velA, velB, false
	}

	j := (1.0 + restitution) * vn / invSum

	return velA.Sub(n.Mul(j * invA)), velB.Add(n.Mul(j * invB)), true
}

// SeparateOverlap3D pushes overlapping spheres apart weighted by mass
// Returns (newPosA, newPosB, separated)
func SeparateOverlap3D(posA, posB mgl64.Vec3, radiusA, radiusB, massA, massB float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	delta := posB.Sub(posA)
	dist := delta.Len()
	minDist := radiusA + radiusB

	if dist >= minDist || dist == 0 {
		return posA, posB, false
	}

	overlap := minDist - dist
	n := delta.Mul(1.0 / dist)

	total := massA + massB
	ratioA := massB / total
	ratioB := massA / total

	return posA.Sub(n.Mul(overlap * ratioA)), posB.Add(n.Mul(overlap * ratioB)), true
}

// TipTorque returns the angular acceleration that rolls a resting slab onto its nearest broad face
// The term vanishes when the flat axis is exactly horizontal (balanced on an edge)
func TipTorque(rot mgl64.Quat, flatAxis mgl64.Vec3, stiffness float64) mgl64.Vec3 {
	axis := rot.Rotate(flatAxis)
	up := axis.Y()
	target := mgl64.Vec3{0, 1, 0}
	if up < 0 {
		target = mgl64.Vec3{0, -1, 0}
	}
	return axis.Cross(target).Mul(stiffness * math.Abs(up))
}
