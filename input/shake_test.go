package input

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/engine"
)

func TestShakeThresholdPerAxis(t *testing.T) {
	tests := []struct {
		name  string
		accel mgl64.Vec3
		want  bool
	}{
		{"still", mgl64.Vec3{0, 9.8, 0}, false},
		{"at threshold", mgl64.Vec3{15, 0, 0}, false},
		{"x", mgl64.Vec3{15.1, 0, 0}, true},
		{"negative y", mgl64.Vec3{0, -16, 0}, true},
		{"z", mgl64.Vec3{0, 0, 20}, true},
		{"combined below", mgl64.Vec3{14, 14, 14}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewShakeDetector(engine.NewManualClock(time.Unix(0, 0)))
			if got := d.Sample(tt.accel, true); got != tt.want {
				t.Errorf("Expected Sample(%v) to be %v, got %v", tt.accel, tt.want, got)
			}
		})
	}
}

func TestShakeCooldown(t *testing.T) {
	clock := engine.NewManualClock(time.Unix(100, 0))
	d := NewShakeDetector(clock)

	if !d.Sample(SyntheticShake, true) {
		t.Fatal("First shake rejected")
	}
	clock.Advance(500 * time.Millisecond)
	if d.Sample(SyntheticShake, true) {
		t.Error("Shake within cooldown accepted")
	}
	clock.Advance(500 * time.Millisecond)
	if d.Sample(SyntheticShake, true) {
		t.Error("Shake at exactly one second accepted")
	}
	clock.Advance(time.Millisecond)
	if !d.Sample(SyntheticShake, true) {
		t.Error("Shake after cooldown rejected")
	}
}

func TestShakeIgnoredUnlessReady(t *testing.T) {
	clock := engine.NewManualClock(time.Unix(100, 0))
	d := NewShakeDetector(clock)

	if d.Sample(SyntheticShake, false) {
		t.Error("Shake accepted while not ready")
	}
	// Rejected samples do not start the cooldown
	if !d.Sample(SyntheticShake, true) {
		t.Error("Shake rejected after ignored sample")
	}
}
