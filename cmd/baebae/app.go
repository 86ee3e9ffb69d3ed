package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/config"
	"github.com/lixenwraith/baebae/input"
	"github.com/lixenwraith/baebae/render"
	"github.com/lixenwraith/baebae/toss"
)

// app routes parsed input to the controller and view
// All methods run on the loop goroutine
type app struct {
	cfg     config.Config
	screen  tcell.Screen
	ctrl    *toss.Controller
	view    *render.View
	machine *input.Machine
	shake   *input.ShakeDetector
	mute    func() bool
	quit    func()
}

// handle processes one terminal event
func (a *app) handle(ev tcell.Event) {
	it := a.machine.Process(ev)
	if it == nil {
		return
	}

	switch it.Type {
	case input.IntentQuit:
		a.quit()

	case input.IntentResize:
		if a.screen != nil {
			a.screen.Sync()
		}
		a.view.Resize()

	case input.IntentTrigger:
		a.ctrl.HandleInteraction()

	case input.IntentShake:
		a.sampleShake(input.SyntheticShake)

	case input.IntentToggleLocation:
		a.toggleLocation()

	case input.IntentToggleStreak:
		a.ctrl.ToggleStreakMode()

	case input.IntentToggleDivination:
		a.ctrl.ToggleDivination()

	case input.IntentToggleMute:
		if a.mute != nil {
			a.view.SetMuted(!a.mute())
		}

	case input.IntentEditIdentifier:
		a.machine.SetBuffer(a.ctrl.Settings().Identifier())
		a.view.SetEditor(true, a.machine.Buffer())

	case input.IntentTextChar, input.IntentTextBackspace:
		a.view.SetEditor(true, a.machine.Buffer())

	case input.IntentTextConfirm:
		a.view.SetEditor(false, "")
		if err := a.ctrl.SetIdentifier(it.Text); err != nil {
			log.Printf("[input] identifier %q rejected: %v", it.Text, err)
		}

	case input.IntentTextCancel:
		a.view.SetEditor(false, "")
	}
}

// sampleShake forwards an accepted shake as a trigger
func (a *app) sampleShake(accel mgl64.Vec3) {
	if a.shake.Sample(accel, a.ctrl.State() == toss.StateReady) {
		a.ctrl.HandleInteraction()
	}
}

// toggleLocation enables location entropy using the configured coordinate as the fix
func (a *app) toggleLocation() {
	settings := a.ctrl.Settings()
	if !a.ctrl.ToggleLocation() {
		a.view.Notify("位置", "已停用位置因子")
		return
	}
	if settings.Location() == nil {
		loc := a.cfg.Location()
		settings.SetLocation(&loc)
	}
	loc := settings.Location()
	a.view.Notify("位置", fmt.Sprintf("已啟用 %.2f, %.2f", loc.Lat, loc.Lng))
}
