package toss

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/fate"
	"github.com/lixenwraith/baebae/parameter"
	"github.com/lixenwraith/baebae/physics"
	"github.com/lixenwraith/baebae/status"
	"github.com/lixenwraith/baebae/vmath"
)

// Orchestrator owns the two block bodies and the fixed-step accumulator
type Orchestrator struct {
	world    physics.World
	left     physics.Body
	right    physics.Body
	rest     [2]physics.Pose
	up       mgl64.Vec3
	feedback Feedback

	accumulator float64
	settleCount int

	statSteps   *atomic.Int64
	statImpacts *atomic.Int64
}

// NewOrchestrator creates both blocks in world at their configured poses
// A nil world yields an orchestrator without bodies; launch and reset become no-ops
func NewOrchestrator(world physics.World, feedback Feedback, reg *status.Registry) *Orchestrator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	o := &Orchestrator{
		world:       world,
		up:          vmath.LocalUp(parameter.BlockLeft.Rotation),
		feedback:    guardFeedback(feedback),
		rest:        [2]physics.Pose{restPose(parameter.BlockLeft), restPose(parameter.BlockRight)},
		statSteps:   reg.Ints.Get("physics.steps"),
		statImpacts: reg.Ints.Get("physics.impacts"),
	}
	if world != nil {
		o.left = world.CreateBody(blockDesc(o.rest[0]))
		o.right = world.CreateBody(blockDesc(o.rest[1]))
	}
	return o
}

func restPose(cfg parameter.BlockConfig) physics.Pose {
	return physics.Pose{
		Translation: mgl64.Vec3(cfg.Position),
		Rotation:    cfg.Rotation.Quat(),
	}
}

func blockDesc(pose physics.Pose) physics.BodyDesc {
	return physics.BodyDesc{
		Pose: pose,
		Shape: physics.Shape{
			HalfExtents: mgl64.Vec3{parameter.BlockHalfLength, parameter.BlockHalfWidth, parameter.BlockHalfDepth},
			FlatAxis:    mgl64.Vec3{0, 0, 1},
		},
		Mass:           parameter.BlockMass,
		LinearDamping:  parameter.RestDamping,
		AngularDamping: parameter.RestDamping,
		GravityScale:   parameter.RestGravityScale,
		Restitution:    parameter.BlockRestitution,
		Friction:       parameter.BlockFriction,
	}
}

// Ready reports whether both bodies exist
func (o *Orchestrator) Ready() bool {
	return o.left != nil && o.right != nil
}

// Up returns the shared local up axis used for classification
func (o *Orchestrator) Up() mgl64.Vec3 {
	return o.up
}

// Bodies returns the left and right bodies, nil when not ready
func (o *Orchestrator) Bodies() (physics.Body, physics.Body) {
	return o.left, o.right
}

// Poses returns the current body transforms; rest poses when not ready
func (o *Orchestrator) Poses() (physics.Pose, physics.Pose) {
	if !o.Ready() {
		return o.rest[0], o.rest[1]
	}
	return poseOf(o.left), poseOf(o.right)
}

func poseOf(b physics.Body) physics.Pose {
	return physics.Pose{Translation: b.Translation(), Rotation: b.Rotation()}
}

// SettleCount returns the consecutive quiet-step count
func (o *Orchestrator) SettleCount() int {
	return o.settleCount
}

// Accumulate adds a clamped, speed-scaled frame delta and returns the number of fixed steps owed
func (o *Orchestrator) Accumulate(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	o.accumulator += dt.Seconds() * parameter.SimulationSpeed

	steps := 0
	// Tolerance absorbs float drift so 100ms at 2x yields exactly 12 steps
	for o.accumulator+1e-9 >= parameter.PhysicsStep {
		o.accumulator -= parameter.PhysicsStep
		steps++
	}
	if o.accumulator < 0 {
		o.accumulator = 0
	}
	return steps
}

// Step advances the world once and dispatches collision feedback
func (o *Orchestrator) Step() {
	if o.world == nil {
		return
	}
	o.world.Step()
	o.statSteps.Add(1)

	for _, ev := range o.world.DrainCollisionEvents() {
		if ev.Started {
			o.impact()
		}
	}
}

// impact samples the left body speed as the collision intensity
func (o *Orchestrator) impact() {
	if o.left == nil {
		return
	}
	speed := o.left.LinearVelocity().Len()
	if speed > parameter.ImpactAudibleSpeed {
		o.statImpacts.Add(1)
		o.feedback.PlayImpact(speed)
	}
	if speed > parameter.ImpactHapticSpeed {
		o.feedback.Vibrate(parameter.ImpactVibration...)
	}
}

// TrackSettle folds one step into the settle counter and reports whether the pair is at rest
func (o *Orchestrator) TrackSettle() bool {
	if !o.Ready() {
		return false
	}
	energy := vmath.MagSq(o.left.LinearVelocity()) + vmath.MagSq(o.right.LinearVelocity())
	if energy < parameter.SettleEnergy {
		o.settleCount++
	} else {
		o.settleCount = 0
	}
	return o.settleCount > parameter.SettleSteps
}

// ApplyLaunch switches both bodies to flight and applies the mirrored impulses
func (o *Orchestrator) ApplyLaunch(p fate.Parameters) {
	if !o.Ready() {
		log.Printf("[toss] launch skipped: bodies not ready")
		return
	}
	o.settleCount = 0

	damping := parameter.FlightDampingBase + p.Friction*parameter.FlightDampingFriction
	for _, b := range []physics.Body{o.left, o.right} {
		b.SetDamping(damping, damping)
		b.SetGravityScale(parameter.FlightGravityScale)
		b.Wake()
		b.ApplyImpulse(mgl64.Vec3{0, p.Force * parameter.LaunchImpulseScale, 0})
	}

	tx := p.Torque.X() * parameter.LaunchTorqueScaleX
	ty := p.Torque.Y() * parameter.LaunchTorqueScaleYZ
	tz := p.Torque.Z() * parameter.LaunchTorqueScaleYZ
	o.left.ApplyTorqueImpulse(mgl64.Vec3{tx * p.Asymmetry.Left, ty, tz})
	o.right.ApplyTorqueImpulse(mgl64.Vec3{tx * p.Asymmetry.Right, -ty, -tz})
}

// Escalate raises damping on both bodies so a lingering toss comes to rest
func (o *Orchestrator) Escalate() {
	if !o.Ready() {
		return
	}
	for _, b := range []physics.Body{o.left, o.right} {
		b.SetDamping(parameter.EscalatedDamping, parameter.EscalatedDamping)
	}
}

// Orientations returns the current body rotations
func (o *Orchestrator) Orientations() (mgl64.Quat, mgl64.Quat) {
	if !o.Ready() {
		return o.rest[0].Rotation, o.rest[1].Rotation
	}
	return o.left.Rotation(), o.right.Rotation()
}

// ResetPose returns both bodies to their configured rest pose
func (o *Orchestrator) ResetPose() {
	o.settleCount = 0
	if !o.Ready() {
		return
	}
	for i, b := range []physics.Body{o.left, o.right} {
		b.SetTranslation(o.rest[i].Translation)
		b.SetRotation(o.rest[i].Rotation)
		b.SetLinearVelocity(mgl64.Vec3{})
		b.SetAngularVelocity(mgl64.Vec3{})
		b.SetGravityScale(parameter.RestGravityScale)
		b.SetDamping(parameter.RestDamping, parameter.RestDamping)
		b.Wake()
	}
}
