package toss

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/baebae/engine/fsm"
	"github.com/lixenwraith/baebae/fate"
	"github.com/lixenwraith/baebae/outcome"
	"github.com/lixenwraith/baebae/physics"
)

// Result is the concluded toss handed to the presenter and result hooks
type Result struct {
	ID         uuid.UUID
	At         time.Time
	Duration   time.Duration
	Kind       outcome.Kind
	Text       outcome.Text
	Left       outcome.Face
	Right      outcome.Face
	Params     fate.Parameters
	Identifier string
	Divination bool
	TimedOut   bool
	Streak     outcome.StreakUpdate
}

// ResultHook observes concluded tosses (history, metrics)
type ResultHook func(Result)

// Presenter is the scene and overlay surface driven by the controller
type Presenter interface {
	ShowResult(r Result)
	UpdateStreak(count int, enabled bool)
	StateChanged(from, to fsm.StateID)
	Notify(title, message string)
	SyncBodies(left, right physics.Pose)
}

// NopPresenter ignores all presentation calls
type NopPresenter struct{}

func (NopPresenter) ShowResult(Result)                     {}
func (NopPresenter) UpdateStreak(int, bool)                {}
func (NopPresenter) StateChanged(fsm.StateID, fsm.StateID) {}
func (NopPresenter) Notify(string, string)                 {}
func (NopPresenter) SyncBodies(physics.Pose, physics.Pose) {}
