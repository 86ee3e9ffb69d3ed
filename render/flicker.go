package render

import (
	"time"

	"github.com/ojrac/opensimplex-go"
)

// Fire-light intensity: base plus a slow and a fast noise band
const (
	FireBase = 8.0
	FireSlow = 1.0
	FireFast = 0.5

	fireSlowRate = 3.0
	fireFastRate = 8.0
)

// Flicker drives the ambient fire-light intensity from coherent noise
type Flicker struct {
	noise     opensimplex.Noise
	elapsed   float64
	intensity float64
}

// NewFlicker creates a flicker with a fixed noise seed
func NewFlicker(seed int64) *Flicker {
	return &Flicker{
		noise:     opensimplex.New(seed),
		intensity: FireBase,
	}
}

// Advance moves the flicker forward and returns the new intensity
func (f *Flicker) Advance(dt time.Duration) float64 {
	if dt > 0 {
		f.elapsed += dt.Seconds()
	}
	f.intensity = FireBase +
		f.noise.Eval2(f.elapsed*fireSlowRate, 0)*FireSlow +
		f.noise.Eval2(f.elapsed*fireFastRate, 100)*FireFast
	return f.intensity
}

// Intensity returns the last computed intensity
func (f *Flicker) Intensity() float64 { return f.intensity }

// Factor returns intensity relative to the base, near 1
func (f *Flicker) Factor() float64 { return f.intensity / FireBase }
