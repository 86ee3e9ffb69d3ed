package audio

import "github.com/gopxl/beep"

// Config controls the impact synthesizer
type Config struct {
	Enabled    bool
	Volume     float64 // master gain, 0..1
	SampleRate beep.SampleRate
}

// DefaultConfig returns an enabled config at 48kHz
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.8,
		SampleRate: beep.SampleRate(48000),
	}
}
