// Command baebae is a terminal moon-block toss.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/baebae/audio"
	"github.com/lixenwraith/baebae/config"
	"github.com/lixenwraith/baebae/core"
	"github.com/lixenwraith/baebae/engine"
	"github.com/lixenwraith/baebae/fate"
	"github.com/lixenwraith/baebae/history"
	"github.com/lixenwraith/baebae/input"
	"github.com/lixenwraith/baebae/outcome"
	"github.com/lixenwraith/baebae/parameter"
	"github.com/lixenwraith/baebae/physics"
	"github.com/lixenwraith/baebae/render"
	"github.com/lixenwraith/baebae/service"
	"github.com/lixenwraith/baebae/status"
	"github.com/lixenwraith/baebae/toss"
	"github.com/lixenwraith/baebae/vmath"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "baebae: %v\n", err)
		os.Exit(2)
	}
	if err := applyFlags(&cfg, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "baebae: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "baebae: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.ParseBindings(cfg.Keys)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		keys.Merge(override)
	}

	// Services
	hub := service.NewHub()
	audioSvc := audio.NewService()
	historySvc := history.NewService()
	for _, svc := range []service.Service{audioSvc, historySvc} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	err := hub.InitAll(map[string][]any{
		"audio": {audio.Config{
			Enabled:    cfg.AudioEnabled,
			Volume:     cfg.Volume,
			SampleRate: audio.DefaultConfig().SampleRate,
		}},
		"history": {cfg.HistoryPath, cfg.HistorySize},
	})
	if err != nil {
		return fmt.Errorf("init services: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	defer hub.StopAll()

	// Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashTerminal(screen)

	clock := engine.NewSystemClock()
	reg := status.NewRegistry()
	settings := config.NewSettings(cfg)

	view := render.NewView(render.Options{
		Screen:   screen,
		Clock:    clock,
		Settings: settings,
		Status:   reg,
		Flicker:  render.NewFlicker(time.Now().UnixNano()),
		Up:       vmath.LocalUp(parameter.BlockLeft.Rotation),
		Caption:  cfg.Caption,
	})
	view.SetMuted(!cfg.AudioEnabled || audioSvc.IsDisabled())

	feedback := toss.MultiFeedback{impactSound{audioSvc}, bell{view}}
	world := physics.NewSimWorld(physics.DefaultConfig())

	var spirit fate.Spirit
	if cfg.Seed != 0 {
		spirit = fate.NewSeededSpirit(cfg.Seed)
	}

	ctrl, err := toss.NewController(toss.Options{
		Fate:         fate.NewEngine(nil, spirit),
		Orchestrator: toss.NewOrchestrator(world, feedback, reg),
		Scheduler:    engine.NewScheduler(clock),
		Clock:        clock,
		Settings:     settings,
		Texts:        outcome.DefaultTexts(),
		Presenter:    view,
		Feedback:     feedback,
		Status:       reg,
		Ambient:      view.Ambient,
	})
	if err != nil {
		return err
	}
	ctrl.OnResult(historySvc.Record)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := &app{
		cfg:     cfg,
		screen:  screen,
		ctrl:    ctrl,
		view:    view,
		machine: input.NewMachineWithTable(keys),
		shake:   input.NewShakeDetector(clock),
		mute: func() bool {
			return audioSvc.ToggleMute()
		},
		quit: cancel,
	}

	loop := engine.NewLoop(clock, time.Second/time.Duration(cfg.FPS), func(dt time.Duration) {
		ctrl.Frame(dt)
		view.SetSummary(historySvc.Summary())
		view.Draw()
	})

	// Event forwarder; PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !loop.Post(func() { a.handle(ev) }) {
				log.Printf("[main] input queue full, dropped %T", ev)
			}
		}
	})

	log.Printf("[main] started fps=%d streak=%v divination=%v", cfg.FPS, cfg.StreakMode, cfg.Divination)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("[main] stopped after %d tosses", reg.Ints.Get("toss.count").Load())
	return nil
}
