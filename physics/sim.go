package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/vmath"
)

// SimWorld is a small rigid-body world: slab bodies over a walled floor
// Not safe for concurrent use; the frame loop owns it
type SimWorld struct {
	cfg     Config
	bodies  []*simBody
	events  []CollisionEvent
	nextID  Handle
	gravity mgl64.Vec3
}

// NewSimWorld creates an empty world with floor and walls
func NewSimWorld(cfg Config) *SimWorld {
	return &SimWorld{
		cfg:     cfg,
		nextID:  HandleWalls + 1,
		gravity: mgl64.Vec3{0, cfg.Gravity, 0},
	}
}

// CreateBody adds a dynamic slab body
func (w *SimWorld) CreateBody(desc BodyDesc) Body {
	mass := desc.Mass
	if mass <= 0 {
		mass = 1
	}
	h := desc.Shape.HalfExtents
	// Mean principal moment of a solid box; the slab spins isotropically
	inertia := 2 * mass / 9 * vmath.MagSq(h)
	if inertia <= 0 {
		inertia = mass
	}

	rot := desc.Pose.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}

	b := &simBody{
		handle:      w.nextID,
		pos:         desc.Pose.Translation,
		rot:         rot.Normalize(),
		mass:        mass,
		invInertia:  1 / inertia,
		linDamp:     desc.LinearDamping,
		angDamp:     desc.AngularDamping,
		gravity:     desc.GravityScale,
		restitution: desc.Restitution,
		friction:    desc.Friction,
		shape:       desc.Shape,
		radius:      math.Max(h.X(), math.Max(h.Y(), h.Z())),
		contacts:    make(map[Handle]bool),
	}
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// Step advances the world by one fixed step
func (w *SimWorld) Step() {
	dt := w.cfg.Step
	for _, b := range w.bodies {
		if b.sleeping {
			continue
		}
		w.integrate(b, dt)
		w.resolveFloor(b, dt)
		w.resolveWalls(b)
	}
	w.resolvePairs()
	for _, b := range w.bodies {
		w.updateSleep(b)
	}
}

// DrainCollisionEvents returns and clears pending events
func (w *SimWorld) DrainCollisionEvents() []CollisionEvent {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}

func (w *SimWorld) integrate(b *simBody, dt float64) {
	b.linVel = b.linVel.Add(w.gravity.Mul(b.gravity * dt))
	b.linVel = vmath.Damp(b.linVel, b.linDamp, dt)
	b.angVel = vmath.Damp(b.angVel, b.angDamp, dt)
	b.pos = b.pos.Add(b.linVel.Mul(dt))
	b.rot = vmath.IntegrateRotation(b.rot, b.angVel, dt)
}

func (w *SimWorld) resolveFloor(b *simBody, dt float64) {
	depth := SupportDepth(b.rot, b.shape.HalfExtents)
	bottom := b.pos.Y() - depth

	if bottom > w.cfg.FloorY+w.cfg.ContactSlop {
		w.setContact(b, HandleFloor, false)
		return
	}

	if bottom < w.cfg.FloorY {
		b.pos[1] = w.cfg.FloorY + depth
		if b.linVel.Y() < 0 {
			if -b.linVel.Y() > w.cfg.ImpactSpinSpeed {
				w.impactSpin(b)
			}
			vy := -b.linVel.Y() * b.restitution
			if vy < w.cfg.RestingSpeed {
				vy = 0
			}
			b.linVel[1] = vy
		}
	}
	w.setContact(b, HandleFloor, true)

	slide := 1.0 / (1.0 + dt*w.cfg.ContactFriction*b.friction)
	b.linVel[0] *= slide
	b.linVel[2] *= slide

	b.angVel = vmath.Damp(b.angVel, w.cfg.ContactAngularDrag, dt)
	tip := TipTorque(b.rot, b.shape.FlatAxis, w.cfg.TipStiffness)
	b.angVel = b.angVel.Add(tip.Mul(dt))
}

// impactSpin applies the angular part of a floor impulse delivered at the lowest corner
func (w *SimWorld) impactSpin(b *simBody) {
	j := (1 + b.restitution) * b.mass * -b.linVel.Y()
	r := LowestPoint(b.rot, b.shape.HalfExtents, w.cfg.EdgeTolerance)
	spin := r.Cross(mgl64.Vec3{0, j, 0}).Mul(w.cfg.ImpactSpin * b.invInertia)
	b.angVel = b.angVel.Add(spin)
}

func (w *SimWorld) resolveWalls(b *simBody) {
	hitX := ReflectAxis(&b.pos[0], &b.linVel[0], -w.cfg.WallHalfX+b.radius, w.cfg.WallHalfX-b.radius, b.restitution)
	hitZ := ReflectAxis(&b.pos[2], &b.linVel[2], -w.cfg.WallHalfZ+b.radius, w.cfg.WallHalfZ-b.radius, b.restitution)
	w.setContact(b, HandleWalls, hitX || hitZ)
}

func (w *SimWorld) resolvePairs() {
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			a, b := w.bodies[i], w.bodies[j]
			if a.sleeping && b.sleeping {
				continue
			}
			pa, pb, overlapped := SeparateOverlap3D(a.pos, b.pos, a.radius, b.radius, a.mass, b.mass)
			if !overlapped {
				w.setContact(a, b.handle, false)
				continue
			}
			a.pos, b.pos = pa, pb
			va, vb, hit := ElasticCollision3D(a.pos, b.pos, a.linVel, b.linVel, a.mass, b.mass, w.cfg.PairRestitution)
			if hit {
				a.linVel, b.linVel = va, vb
				a.sleeping, b.sleeping = false, false
			}
			w.setContact(a, b.handle, true)
		}
	}
}

func (w *SimWorld) updateSleep(b *simBody) {
	if b.sleeping {
		return
	}
	energy := vmath.MagSq(b.linVel) + vmath.MagSq(b.angVel)
	if energy < w.cfg.SleepEnergy && b.contacts[HandleFloor] {
		b.quiet++
		if b.quiet >= w.cfg.SleepSteps {
			b.sleeping = true
			b.linVel = mgl64.Vec3{}
			b.angVel = mgl64.Vec3{}
		}
		return
	}
	b.quiet = 0
}

// setContact records contact state and emits an event on change
func (w *SimWorld) setContact(b *simBody, other Handle, touching bool) {
	if b.contacts[other] == touching {
		return
	}
	b.contacts[other] = touching
	w.events = append(w.events, CollisionEvent{A: b.handle, B: other, Started: touching})
}

type simBody struct {
	handle Handle

	pos    mgl64.Vec3
	rot    mgl64.Quat
	linVel mgl64.Vec3
	angVel mgl64.Vec3

	mass        float64
	invInertia  float64
	linDamp     float64
	angDamp     float64
	gravity     float64
	restitution float64
	friction    float64

	shape  Shape
	radius float64

	sleeping bool
	quiet    int
	contacts map[Handle]bool
}

func (b *simBody) Handle() Handle              { return b.handle }
func (b *simBody) Translation() mgl64.Vec3     { return b.pos }
func (b *simBody) Rotation() mgl64.Quat        { return b.rot }
func (b *simBody) LinearVelocity() mgl64.Vec3  { return b.linVel }
func (b *simBody) AngularVelocity() mgl64.Vec3 { return b.angVel }

func (b *simBody) ApplyImpulse(impulse mgl64.Vec3) {
	b.linVel = b.linVel.Add(impulse.Mul(1 / b.mass))
	b.Wake()
}

func (b *simBody) ApplyTorqueImpulse(impulse mgl64.Vec3) {
	b.angVel = b.angVel.Add(impulse.Mul(b.invInertia))
	b.Wake()
}

func (b *simBody) SetTranslation(t mgl64.Vec3) { b.pos = t }

func (b *simBody) SetRotation(q mgl64.Quat) {
	if q.Len() == 0 {
		q = mgl64.QuatIdent()
	}
	b.rot = q.Normalize()
}

func (b *simBody) SetLinearVelocity(v mgl64.Vec3)  { b.linVel = v }
func (b *simBody) SetAngularVelocity(v mgl64.Vec3) { b.angVel = v }

func (b *simBody) SetDamping(linear, angular float64) {
	b.linDamp = linear
	b.angDamp = angular
}

func (b *simBody) SetGravityScale(scale float64) { b.gravity = scale }

func (b *simBody) Wake() {
	b.sleeping = false
	b.quiet = 0
}
