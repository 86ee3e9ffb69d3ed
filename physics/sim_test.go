package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func slabDesc(y float64, rot mgl64.Quat) BodyDesc {
	return BodyDesc{
		Pose:         Pose{Translation: mgl64.Vec3{0, y, 0}, Rotation: rot},
		Shape:        Shape{HalfExtents: mgl64.Vec3{0.9, 0.45, 0.18}, FlatAxis: mgl64.Vec3{0, 0, 1}},
		Mass:         0.5,
		GravityScale: 1,
		Restitution:  0.3,
		Friction:     0.65,
	}
}

func TestDropSettlesOnFloor(t *testing.T) {
	w := NewSimWorld(DefaultConfig())
	flat := mgl64.QuatRotate(math.Pi/2+0.2, mgl64.Vec3{1, 0, 0})
	b := w.CreateBody(slabDesc(3, flat))

	for i := 0; i < 600; i++ {
		w.Step()
	}

	if v := b.LinearVelocity().Len(); v > 0.05 {
		t.Errorf("Body should rest after 10s, still moving at %g", v)
	}
	y := b.Rotation().Rotate(mgl64.Vec3{0, 0, 1}).Y()
	if math.Abs(math.Abs(y)-1) > 0.05 {
		t.Errorf("Body should tip onto a broad face, flat axis y = %g", y)
	}
	if p := b.Translation().Y(); p < 0.1 || p > 0.3 {
		t.Errorf("Expected resting height to be near half depth, got %g", p)
	}
}

func TestFloorContactEvents(t *testing.T) {
	w := NewSimWorld(DefaultConfig())
	b := w.CreateBody(slabDesc(1, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})))

	var started bool
	for i := 0; i < 120 && !started; i++ {
		w.Step()
		for _, ev := range w.DrainCollisionEvents() {
			if ev.A == b.Handle() && ev.B == HandleFloor && ev.Started {
				started = true
			}
		}
	}
	if !started {
		t.Fatal("No floor contact event")
	}
	if evs := w.DrainCollisionEvents(); len(evs) != 0 {
		t.Errorf("Drain should clear events, got %v", evs)
	}
}

func TestZeroGravityBodyHovers(t *testing.T) {
	w := NewSimWorld(DefaultConfig())
	desc := slabDesc(6.5, mgl64.QuatIdent())
	desc.GravityScale = 0
	b := w.CreateBody(desc)
	for i := 0; i < 60; i++ {
		w.Step()
	}
	if y := b.Translation().Y(); y != 6.5 {
		t.Errorf("Hovering body should not move, got y = %g", y)
	}
}

func TestWallsContainBodies(t *testing.T) {
	cfg := DefaultConfig()
	w := NewSimWorld(cfg)
	desc := slabDesc(0.5, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}))
	b := w.CreateBody(desc)
	b.ApplyImpulse(mgl64.Vec3{20, 0, 20})

	for i := 0; i < 300; i++ {
		w.Step()
		p := b.Translation()
		if math.Abs(p.X()) > cfg.WallHalfX || math.Abs(p.Z()) > cfg.WallHalfZ {
			t.Fatalf("Body escaped walls at %v", p)
		}
	}
}

func TestImpulseWakesSleepingBody(t *testing.T) {
	w := NewSimWorld(DefaultConfig())
	b := w.CreateBody(slabDesc(0.18, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})))
	for i := 0; i < 200; i++ {
		w.Step()
	}
	b.ApplyImpulse(mgl64.Vec3{0, 2, 0})
	w.Step()
	if b.Translation().Y() <= 0.18 {
		t.Error("Impulse did not move sleeping body")
	}
}
