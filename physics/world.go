package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Handle identifies a collider or body inside a World
type Handle uint32

// Reserved static collider handles
const (
	HandleNone  Handle = 0
	HandleFloor Handle = 1
	HandleWalls Handle = 2
)

// Pose is a rigid transform
type Pose struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// Shape describes a slab collider by local half extents
// FlatAxis is the local normal of the two broad faces
type Shape struct {
	HalfExtents mgl64.Vec3
	FlatAxis    mgl64.Vec3
}

// BodyDesc configures a dynamic body at creation
type BodyDesc struct {
	Pose           Pose
	Shape          Shape
	Mass           float64
	LinearDamping  float64
	AngularDamping float64
	GravityScale   float64
	Restitution    float64
	Friction       float64
}

// CollisionEvent reports a contact pair starting or stopping
type CollisionEvent struct {
	A, B    Handle
	Started bool
}

// Body is a handle to a dynamic rigid body owned by a World
type Body interface {
	Handle() Handle

	Translation() mgl64.Vec3
	Rotation() mgl64.Quat
	LinearVelocity() mgl64.Vec3
	AngularVelocity() mgl64.Vec3

	ApplyImpulse(impulse mgl64.Vec3)
	ApplyTorqueImpulse(impulse mgl64.Vec3)

	SetTranslation(t mgl64.Vec3)
	SetRotation(q mgl64.Quat)
	SetLinearVelocity(v mgl64.Vec3)
	SetAngularVelocity(w mgl64.Vec3)
	SetDamping(linear, angular float64)
	SetGravityScale(scale float64)
	Wake()
}

// World is the rigid-body simulation consumed by the toss core
type World interface {
	CreateBody(desc BodyDesc) Body
	Step()
	DrainCollisionEvents() []CollisionEvent
}
