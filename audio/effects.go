package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wood knock shape
const (
	knockDuration  = 150 * time.Millisecond
	knockSweep     = 100 * time.Millisecond
	knockBaseFreq  = 150.0
	knockFreqSpan  = 50.0
	knockFloorFreq = 40.0
	knockTailGain  = 0.01
	knockGainScale = 0.8
)

// knock is a triangle oscillator with an exponential pitch drop and gain decay
type knock struct {
	rate     beep.SampleRate
	pos      int
	total    int
	sweep    int
	freqFrom float64
	freqTo   float64
	gainFrom float64
	gainTo   float64
	phase    float64
}

// NewKnock creates a knock starting at freq and falling to the floor pitch
func NewKnock(freq, gain float64, rate beep.SampleRate) beep.Streamer {
	return &knock{
		rate:     rate,
		total:    rate.N(knockDuration),
		sweep:    rate.N(knockSweep),
		freqFrom: freq,
		freqTo:   knockFloorFreq,
		gainFrom: gain,
		gainTo:   knockTailGain,
	}
}

func (k *knock) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if k.pos >= k.total {
			return i, i > 0
		}

		freq := k.freqTo
		if k.pos < k.sweep {
			freq = expRamp(k.freqFrom, k.freqTo, float64(k.pos)/float64(k.sweep))
		}
		gain := expRamp(k.gainFrom, k.gainTo, float64(k.pos)/float64(k.total))

		// Triangle in [-1, 1]
		val := gain * (4*math.Abs(k.phase-0.5) - 1)
		samples[i][0] = val
		samples[i][1] = val

		k.phase += freq / float64(k.rate)
		k.phase -= math.Floor(k.phase)
		k.pos++
	}
	return len(samples), true
}

func (k *knock) Err() error { return nil }

// expRamp interpolates exponentially from a to b; non-positive endpoints fall back to linear
func expRamp(a, b, t float64) float64 {
	if a <= 0 || b <= 0 {
		return a + (b-a)*t
	}
	return a * math.Pow(b/a, t)
}

// ImpactGain maps collision speed to the initial knock gain
func ImpactGain(intensity float64) float64 {
	if math.IsNaN(intensity) || intensity <= 0 {
		return 0
	}
	return math.Min(intensity*knockGainScale, 1)
}

// newVolume wraps s in a log2 volume effect; zero volume is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateImpactSound builds a knock for a collision of the given speed
func CreateImpactSound(intensity float64, cfg Config, rng *rand.Rand) beep.Streamer {
	freq := knockBaseFreq + rng.Float64()*knockFreqSpan
	return newVolume(NewKnock(freq, ImpactGain(intensity), cfg.SampleRate), cfg.Volume)
}
