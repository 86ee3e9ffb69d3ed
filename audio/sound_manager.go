package audio

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ImpactPlayer mixes knock sounds into the speaker
type ImpactPlayer struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
	muted       bool
}

// NewImpactPlayer creates an uninitialized player
func NewImpactPlayer(cfg Config) *ImpactPlayer {
	return &ImpactPlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6b6e6f636b)),
		muted: !cfg.Enabled,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *ImpactPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.cfg.SampleRate, p.cfg.SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences pending sounds and closes the speaker
func (p *ImpactPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// PlayImpact queues one knock; returns false when nothing was queued
func (p *ImpactPlayer) PlayImpact(intensity float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || ImpactGain(intensity) == 0 {
		return false
	}
	s := CreateImpactSound(intensity, p.cfg, p.rng)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips mute and returns true if sound is now enabled
func (p *ImpactPlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// IsMuted returns the mute state
func (p *ImpactPlayer) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// IsInitialized reports whether the speaker is open
func (p *ImpactPlayer) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}
