// Package toss drives a moon-block toss from trigger to classified result.
package toss

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/baebae/config"
	"github.com/lixenwraith/baebae/engine"
	"github.com/lixenwraith/baebae/engine/fsm"
	"github.com/lixenwraith/baebae/fate"
	"github.com/lixenwraith/baebae/outcome"
	"github.com/lixenwraith/baebae/parameter"
	"github.com/lixenwraith/baebae/status"
)

// Toss lifecycle states
const (
	StateReady fsm.StateID = iota + 1
	StateTossing
	StateResult
)

// Toss lifecycle events
const (
	EventTrigger fsm.EventType = iota + 1
	EventSettled
	EventTimedOut
)

// Options wires a Controller; nil fields take defaults
type Options struct {
	Fate         *fate.Engine
	Orchestrator *Orchestrator
	Scheduler    *engine.Scheduler
	Clock        engine.Clock
	Settings     *config.Settings
	Texts        outcome.Texts
	Presenter    Presenter
	Feedback     Feedback
	Status       *status.Registry

	// Ambient runs once per frame before stepping (fire-light, idle animation)
	Ambient func(dt time.Duration)
}

// Controller is the toss state machine and frame driver
// All methods must be called from the loop goroutine
type Controller struct {
	machine   *fsm.Machine[*Controller]
	orch      *Orchestrator
	fate      *fate.Engine
	sched     *engine.Scheduler
	clock     engine.Clock
	settings  *config.Settings
	texts     outcome.Texts
	streak    *outcome.Streak
	presenter Presenter
	feedback  Feedback
	ambient   func(dt time.Duration)
	hooks     []ResultHook

	escalation *engine.Task
	timeout    *engine.Task
	milestone  *engine.Task

	params     fate.Parameters
	launchedAt time.Time
	timedOut   bool
	last       *Result

	statTosses   *atomic.Int64
	statSettled  *atomic.Int64
	statTimeouts *atomic.Int64
	statStreak   *atomic.Int64
	statForce    *status.Gauge
	statPeak     *status.Gauge
	statLast     *status.AtomicString
}

// NewController builds the state machine in Ready
func NewController(opts Options) (*Controller, error) {
	if opts.Clock == nil {
		opts.Clock = engine.NewSystemClock()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = engine.NewScheduler(opts.Clock)
	}
	if opts.Fate == nil {
		opts.Fate = fate.NewEngine(nil, nil)
	}
	if opts.Settings == nil {
		opts.Settings = config.NewSettings(config.Config{StreakMode: true})
	}
	if opts.Texts.Playful == nil || opts.Texts.Divination == nil {
		opts.Texts = outcome.DefaultTexts()
	}
	if opts.Presenter == nil {
		opts.Presenter = NopPresenter{}
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	feedback := guardFeedback(opts.Feedback)
	if opts.Orchestrator == nil {
		opts.Orchestrator = NewOrchestrator(nil, feedback, opts.Status)
	}

	c := &Controller{
		machine:      fsm.NewMachine[*Controller](),
		orch:         opts.Orchestrator,
		fate:         opts.Fate,
		sched:        opts.Scheduler,
		clock:        opts.Clock,
		settings:     opts.Settings,
		texts:        opts.Texts,
		streak:       outcome.NewStreak(parameter.StreakThreshold),
		presenter:    opts.Presenter,
		feedback:     feedback,
		ambient:      opts.Ambient,
		statTosses:   opts.Status.Ints.Get("toss.count"),
		statSettled:  opts.Status.Ints.Get("toss.settled"),
		statTimeouts: opts.Status.Ints.Get("toss.timeouts"),
		statStreak:   opts.Status.Ints.Get("toss.streak"),
		statForce:    opts.Status.Floats.Get("toss.force"),
		statPeak:     opts.Status.Floats.Get("toss.force.peak"),
		statLast:     opts.Status.Strings.Get("toss.last"),
	}
	if err := c.buildMachine(); err != nil {
		return nil, fmt.Errorf("toss state machine: %w", err)
	}
	return c, nil
}

func (c *Controller) buildMachine() error {
	m := c.machine
	m.AddState(StateReady, "ready")
	m.AddState(StateTossing, "tossing")
	m.AddState(StateResult, "result")

	transitions := []struct {
		from fsm.StateID
		t    fsm.Transition[*Controller]
	}{
		{StateReady, fsm.Transition[*Controller]{
			Event:    EventTrigger,
			TargetID: StateTossing,
			Guard:    func(c *Controller) bool { return c.orch.Ready() },
			Action:   (*Controller).launch,
		}},
		{StateTossing, fsm.Transition[*Controller]{
			Event:    EventSettled,
			TargetID: StateResult,
			Action:   func(c *Controller) { c.conclude(false) },
		}},
		{StateTossing, fsm.Transition[*Controller]{
			Event:    EventTimedOut,
			TargetID: StateResult,
			Action:   func(c *Controller) { c.conclude(true) },
		}},
		{StateResult, fsm.Transition[*Controller]{
			Event:    EventTrigger,
			TargetID: StateReady,
			Action:   (*Controller).reset,
		}},
	}
	for _, tr := range transitions {
		if err := m.AddTransition(tr.from, tr.t); err != nil {
			return err
		}
	}

	m.OnTransition = func(c *Controller, from, to fsm.StateID) {
		c.presenter.StateChanged(from, to)
	}
	return m.Init()
}

// State returns the active lifecycle state
func (c *Controller) State() fsm.StateID {
	return c.machine.Current()
}

// StateName returns a readable state label
func (c *Controller) StateName() string {
	return c.machine.Name(c.machine.Current())
}

// Streak returns the current streak count
func (c *Controller) Streak() int {
	return c.streak.Count()
}

// LastResult returns the most recent result, nil before the first conclusion
func (c *Controller) LastResult() *Result {
	return c.last
}

// Params returns the parameters of the current or last toss
func (c *Controller) Params() fate.Parameters {
	return c.params
}

// Settings exposes the runtime toggles
func (c *Controller) Settings() *config.Settings {
	return c.settings
}

// Texts returns the active text table
func (c *Controller) Texts() outcome.TextTable {
	return c.texts.Select(c.settings.Divination())
}

// OnResult registers a hook called after every conclusion
func (c *Controller) OnResult(h ResultHook) {
	c.hooks = append(c.hooks, h)
}

// HandleInteraction is the single trigger entry for pointer and shake input
// Ignored while tossing
func (c *Controller) HandleInteraction() bool {
	return c.machine.Fire(c, EventTrigger)
}

// Frame runs timers, the ambient hook and the owed fixed steps, then syncs the presenter
func (c *Controller) Frame(dt time.Duration) {
	c.sched.Poll()

	if c.ambient != nil {
		c.ambient(dt)
	}

	steps := c.orch.Accumulate(dt)
	for i := 0; i < steps; i++ {
		c.orch.Step()
		if c.machine.Current() == StateTossing && c.orch.TrackSettle() {
			c.machine.Fire(c, EventSettled)
		}
	}

	left, right := c.orch.Poses()
	c.presenter.SyncBodies(left, right)
}

// launch generates parameters, applies them and arms the lifecycle timers
func (c *Controller) launch() {
	s := c.settings
	c.params = c.fate.Generate(s.Identifier(), s.Location(), s.UseLocation())
	c.launchedAt = c.clock.Now()
	c.orch.ApplyLaunch(c.params)
	c.feedback.Vibrate(parameter.LaunchVibration...)
	c.statTosses.Add(1)
	c.statForce.Set(c.params.Force)
	c.statPeak.Max(c.params.Force)

	c.escalation.Cancel()
	c.escalation = c.sched.Schedule(parameter.EscalationDelay, c.escalate)
	c.timeout.Cancel()
	c.timeout = c.sched.Schedule(parameter.TossTimeout, c.expire)

	log.Printf("[toss] launch force=%.3f friction=%.3f torque=%v", c.params.Force, c.params.Friction, c.params.Torque)
}

func (c *Controller) escalate() {
	if c.machine.Current() != StateTossing {
		return
	}
	c.orch.Escalate()
}

func (c *Controller) expire() {
	if c.machine.Fire(c, EventTimedOut) {
		log.Printf("[toss] timed out, forcing conclusion")
	}
}

// conclude classifies the resting pair; runs once per toss
func (c *Controller) conclude(timedOut bool) {
	c.escalation.Cancel()
	c.timeout.Cancel()
	c.timedOut = timedOut
	if timedOut {
		c.statTimeouts.Add(1)
	} else {
		c.statSettled.Add(1)
	}

	leftQ, rightQ := c.orch.Orientations()
	up := c.orch.Up()
	left, right := outcome.FaceOf(leftQ, up), outcome.FaceOf(rightQ, up)
	kind := outcome.Resolve(left, right)

	enabled := c.settings.StreakMode()
	update := c.streak.Record(kind, enabled)
	c.statStreak.Store(int64(c.streak.Count()))
	c.statLast.Store(kind.String())

	now := c.clock.Now()
	r := Result{
		ID:         uuid.New(),
		At:         now,
		Duration:   now.Sub(c.launchedAt),
		Kind:       kind,
		Text:       c.Texts().Lookup(kind),
		Left:       left,
		Right:      right,
		Params:     c.params,
		Identifier: c.settings.Identifier(),
		Divination: c.settings.Divination(),
		TimedOut:   timedOut,
		Streak:     update,
	}
	c.last = &r

	c.presenter.ShowResult(r)
	c.presenter.UpdateStreak(update.Count, enabled)
	if update.Milestone {
		c.feedback.Vibrate(parameter.MilestoneVibration...)
		c.milestone.Cancel()
		c.milestone = c.sched.Schedule(parameter.MilestoneDisplay, func() {
			c.presenter.UpdateStreak(c.streak.Count(), c.settings.StreakMode())
		})
	}

	for _, h := range c.hooks {
		h(r)
	}
	log.Printf("[toss] result %s (%s/%s) timeout=%v streak=%d", kind, left, right, timedOut, update.Count)
}

func (c *Controller) reset() {
	c.orch.ResetPose()
}

// SetIdentifier validates and stores the personal identifier
// An invalid value raises a notification and keeps the previous identifier
func (c *Controller) SetIdentifier(id string) error {
	if err := c.settings.SetIdentifier(id); err != nil {
		c.presenter.Notify("日期格式錯誤", "請輸入 8 位數字 (YYYYMMDD) 或留空")
		return err
	}
	return nil
}

// ToggleStreakMode flips streak tracking and clears the current streak
func (c *Controller) ToggleStreakMode() bool {
	enabled := c.settings.ToggleStreak()
	c.streak.Reset()
	c.milestone.Cancel()
	c.statStreak.Store(0)
	c.presenter.UpdateStreak(0, enabled)
	return enabled
}

// ToggleLocation flips location entropy
func (c *Controller) ToggleLocation() bool {
	return c.settings.ToggleLocation()
}

// ToggleDivination flips the text register; the shown result is re-rendered in the new register
func (c *Controller) ToggleDivination() bool {
	enabled := c.settings.ToggleDivination()
	if c.last != nil && c.machine.Current() == StateResult {
		r := *c.last
		r.Text = c.Texts().Lookup(r.Kind)
		r.Divination = enabled
		c.last = &r
		c.presenter.ShowResult(r)
	}
	return enabled
}
