package toss

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/config"
	"github.com/lixenwraith/baebae/engine"
	"github.com/lixenwraith/baebae/engine/fsm"
	"github.com/lixenwraith/baebae/fate"
	"github.com/lixenwraith/baebae/physics"
	"github.com/lixenwraith/baebae/status"
	"github.com/lixenwraith/baebae/vmath"
)

// fakeBody holds state set directly by tests; impulses are recorded, not integrated
type fakeBody struct {
	handle  physics.Handle
	pos     mgl64.Vec3
	rot     mgl64.Quat
	linVel  mgl64.Vec3
	angVel  mgl64.Vec3
	linDamp float64
	angDamp float64
	gravity float64
	wakes   int

	impulses []mgl64.Vec3
	torques  []mgl64.Vec3
}

func (b *fakeBody) Handle() physics.Handle             { return b.handle }
func (b *fakeBody) Translation() mgl64.Vec3            { return b.pos }
func (b *fakeBody) Rotation() mgl64.Quat               { return b.rot }
func (b *fakeBody) LinearVelocity() mgl64.Vec3         { return b.linVel }
func (b *fakeBody) AngularVelocity() mgl64.Vec3        { return b.angVel }
func (b *fakeBody) ApplyImpulse(i mgl64.Vec3)          { b.impulses = append(b.impulses, i) }
func (b *fakeBody) ApplyTorqueImpulse(i mgl64.Vec3)    { b.torques = append(b.torques, i) }
func (b *fakeBody) SetTranslation(t mgl64.Vec3)        { b.pos = t }
func (b *fakeBody) SetRotation(q mgl64.Quat)           { b.rot = q }
func (b *fakeBody) SetLinearVelocity(v mgl64.Vec3)     { b.linVel = v }
func (b *fakeBody) SetAngularVelocity(v mgl64.Vec3)    { b.angVel = v }
func (b *fakeBody) SetDamping(linear, angular float64) { b.linDamp, b.angDamp = linear, angular }
func (b *fakeBody) SetGravityScale(scale float64)      { b.gravity = scale }
func (b *fakeBody) Wake()                              { b.wakes++ }

type fakeWorld struct {
	bodies []*fakeBody
	steps  int
	events []physics.CollisionEvent
}

func (w *fakeWorld) CreateBody(desc physics.BodyDesc) physics.Body {
	b := &fakeBody{
		handle:  physics.Handle(10 + len(w.bodies)),
		pos:     desc.Pose.Translation,
		rot:     desc.Pose.Rotation,
		linDamp: desc.LinearDamping,
		angDamp: desc.AngularDamping,
		gravity: desc.GravityScale,
	}
	w.bodies = append(w.bodies, b)
	return b
}

func (w *fakeWorld) Step() { w.steps++ }

func (w *fakeWorld) DrainCollisionEvents() []physics.CollisionEvent {
	out := w.events
	w.events = nil
	return out
}

func (w *fakeWorld) left() *fakeBody  { return w.bodies[0] }
func (w *fakeWorld) right() *fakeBody { return w.bodies[1] }

// setMotion gives both bodies a fixed linear speed along X
func (w *fakeWorld) setMotion(speed float64) {
	for _, b := range w.bodies {
		b.linVel = mgl64.Vec3{speed, 0, 0}
	}
}

// tiltTo returns a rotation whose rotated local up axis has world Y component y
// The local up axis is (0,0,-1); rotating about X by asin(y) lifts it to y
func tiltTo(y float64) mgl64.Quat {
	return mgl64.QuatRotate(math.Asin(y), vmath.AxisX)
}

type recordingPresenter struct {
	results     []Result
	streaks     [][2]int // count, enabled
	transitions [][2]fsm.StateID
	notices     []string
	syncs       int
}

func (p *recordingPresenter) ShowResult(r Result) { p.results = append(p.results, r) }

func (p *recordingPresenter) UpdateStreak(count int, enabled bool) {
	e := 0
	if enabled {
		e = 1
	}
	p.streaks = append(p.streaks, [2]int{count, e})
}

func (p *recordingPresenter) StateChanged(from, to fsm.StateID) {
	p.transitions = append(p.transitions, [2]fsm.StateID{from, to})
}

func (p *recordingPresenter) Notify(title, message string) {
	p.notices = append(p.notices, title)
}

func (p *recordingPresenter) SyncBodies(left, right physics.Pose) { p.syncs++ }

type recordingFeedback struct {
	impacts   []float64
	vibrates  [][]time.Duration
	panicking bool
}

func (f *recordingFeedback) PlayImpact(intensity float64) {
	if f.panicking {
		panic("audio device gone")
	}
	f.impacts = append(f.impacts, intensity)
}

func (f *recordingFeedback) Vibrate(pattern ...time.Duration) {
	if f.panicking {
		panic("no vibrator")
	}
	f.vibrates = append(f.vibrates, pattern)
}

var testStart = time.Date(2026, time.February, 7, 12, 30, 45, 123_000_000, time.UTC)

type harness struct {
	ctrl      *Controller
	world     *fakeWorld
	clock     *engine.ManualClock
	presenter *recordingPresenter
	feedback  *recordingFeedback
	settings  *config.Settings
	status    *status.Registry
}

func newHarness(cfg config.Config) *harness {
	clock := engine.NewManualClock(testStart)
	world := &fakeWorld{}
	fb := &recordingFeedback{}
	pres := &recordingPresenter{}
	settings := config.NewSettings(cfg)
	reg := status.NewRegistry()

	ctrl, err := NewController(Options{
		Fate:         fate.NewEngine(fate.FixedClock(testStart), fate.FixedSpirit(0.25)),
		Orchestrator: NewOrchestrator(world, fb, reg),
		Scheduler:    engine.NewScheduler(clock),
		Clock:        clock,
		Settings:     settings,
		Presenter:    pres,
		Feedback:     fb,
		Status:       reg,
	})
	if err != nil {
		panic(err)
	}
	return &harness{ctrl: ctrl, world: world, clock: clock, presenter: pres, feedback: fb, settings: settings, status: reg}
}

// run advances the mock clock and drives frames of d each
func (h *harness) run(frames int, d time.Duration) {
	for i := 0; i < frames; i++ {
		h.clock.Advance(d)
		h.ctrl.Frame(d)
	}
}

// settle zeroes motion and runs enough frames for the settle counter to conclude
func (h *harness) settle() {
	h.world.setMotion(0)
	h.run(6, 100*time.Millisecond)
}

// toss runs one full toss ending with the given up-axis components, then resets to Ready
func (h *harness) toss(leftY, rightY float64) Result {
	h.ctrl.HandleInteraction()
	h.world.left().rot = tiltTo(leftY)
	h.world.right().rot = tiltTo(rightY)
	h.settle()
	r := h.presenter.results[len(h.presenter.results)-1]
	h.ctrl.HandleInteraction()
	return r
}
