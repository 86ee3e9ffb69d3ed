package engine

import (
	"context"
	"time"
)

// FrameFunc receives the wall time elapsed since the previous frame
type FrameFunc func(dt time.Duration)

// Loop drives frames at a fixed interval and serializes external work onto the same goroutine
// Input handlers, timers and the frame callback never run concurrently
type Loop struct {
	clock    Clock
	interval time.Duration
	frame    FrameFunc
	jobs     chan func()
}

// NewLoop creates a frame loop; jobs buffers posted callbacks
func NewLoop(clock Clock, interval time.Duration, frame FrameFunc) *Loop {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Loop{
		clock:    clock,
		interval: interval,
		frame:    frame,
		jobs:     make(chan func(), 64),
	}
}

// Post queues fn to run on the loop goroutine
// Returns false if the queue is full and fn was dropped
func (l *Loop) Post(fn func()) bool {
	select {
	case l.jobs <- fn:
		return true
	default:
		return false
	}
}

// Run blocks until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := l.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.jobs:
			fn()
		case <-ticker.C:
			now := l.clock.Now()
			dt := now.Sub(last)
			last = now
			if l.frame != nil {
				l.frame(dt)
			}
		}
	}
}
