package audio

import (
	"log"
	"sync/atomic"
)

// Service wraps ImpactPlayer as a service.Service
// Degrades to silent mode when no audio backend is available
type Service struct {
	player   *ImpactPlayer
	disabled atomic.Bool
}

// NewService creates an audio service
func NewService() *Service {
	return &Service{}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: Config, defaults when absent
func (s *Service) Init(args ...any) error {
	cfg := DefaultConfig()
	if len(args) > 0 {
		if c, ok := args[0].(Config); ok {
			cfg = c
		}
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	s.player = NewImpactPlayer(cfg)
	if !cfg.Enabled {
		s.disabled.Store(true)
	}
	return nil
}

// Start implements service.Service
// A speaker failure switches to silent mode; no error is returned
func (s *Service) Start() error {
	if s.disabled.Load() || s.player == nil {
		return nil
	}
	if err := s.player.Initialize(); err != nil {
		log.Printf("[audio] disabled: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.player != nil {
		s.player.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable or turned off
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// PlayImpact plays a knock unless disabled
func (s *Service) PlayImpact(intensity float64) {
	if s.disabled.Load() || s.player == nil {
		return
	}
	s.player.PlayImpact(intensity)
}

// ToggleMute flips mute; returns true if sound is now enabled
// A disabled service stays silent and reports false
func (s *Service) ToggleMute() bool {
	if s.disabled.Load() || s.player == nil {
		return false
	}
	return s.player.ToggleMute()
}
