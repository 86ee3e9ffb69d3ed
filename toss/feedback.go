package toss

import (
	"log"
	"time"
)

// Feedback receives audio and haptic cues; implementations may fail silently
type Feedback interface {
	PlayImpact(intensity float64)
	Vibrate(pattern ...time.Duration)
}

// NopFeedback discards all cues
type NopFeedback struct{}

func (NopFeedback) PlayImpact(float64)       {}
func (NopFeedback) Vibrate(...time.Duration) {}

// safeFeedback isolates the toss loop from collaborator panics
type safeFeedback struct {
	inner Feedback
}

// guardFeedback wraps fb so panics are logged and swallowed
func guardFeedback(fb Feedback) Feedback {
	if fb == nil {
		return NopFeedback{}
	}
	if _, ok := fb.(safeFeedback); ok {
		return fb
	}
	return safeFeedback{inner: fb}
}

func (s safeFeedback) PlayImpact(intensity float64) {
	defer recoverFeedback("impact")
	s.inner.PlayImpact(intensity)
}

func (s safeFeedback) Vibrate(pattern ...time.Duration) {
	defer recoverFeedback("vibrate")
	s.inner.Vibrate(pattern...)
}

func recoverFeedback(cue string) {
	if r := recover(); r != nil {
		log.Printf("[toss] %s feedback failed: %v", cue, r)
	}
}

// MultiFeedback fans cues out to several collaborators
type MultiFeedback []Feedback

func (m MultiFeedback) PlayImpact(intensity float64) {
	for _, fb := range m {
		fb.PlayImpact(intensity)
	}
}

func (m MultiFeedback) Vibrate(pattern ...time.Duration) {
	for _, fb := range m {
		fb.Vibrate(pattern...)
	}
}
