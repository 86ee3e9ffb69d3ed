package input

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/engine"
	"github.com/lixenwraith/baebae/parameter"
)

// ShakeDetector turns acceleration samples into toss triggers
// A sample counts when any axis magnitude exceeds the threshold and the cooldown has passed
type ShakeDetector struct {
	clock     engine.Clock
	threshold float64
	cooldown  time.Duration
	last      time.Time
	armed     bool
}

// NewShakeDetector creates a detector with the default threshold and cooldown
func NewShakeDetector(clock engine.Clock) *ShakeDetector {
	return &ShakeDetector{
		clock:     clock,
		threshold: parameter.ShakeAcceleration,
		cooldown:  parameter.ShakeCooldown,
	}
}

// Sample reports whether accel should trigger a toss
// ready must reflect whether the toss lifecycle is idle; samples outside Ready never arm the cooldown
func (d *ShakeDetector) Sample(accel mgl64.Vec3, ready bool) bool {
	if !ready {
		return false
	}
	if math.Abs(accel.X()) <= d.threshold &&
		math.Abs(accel.Y()) <= d.threshold &&
		math.Abs(accel.Z()) <= d.threshold {
		return false
	}

	now := d.clock.Now()
	if d.armed && now.Sub(d.last) <= d.cooldown {
		return false
	}
	d.last = now
	d.armed = true
	return true
}

// SyntheticShake is a sample strong enough to pass the default threshold
var SyntheticShake = mgl64.Vec3{0, parameter.ShakeAcceleration * 1.5, 0}
