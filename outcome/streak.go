package outcome

// StreakUpdate is the result of recording one outcome
type StreakUpdate struct {
	// Count is the streak length including this outcome, before any milestone reset
	Count     int
	Milestone bool
}

// Streak counts consecutive Affirmative outcomes
type Streak struct {
	count     int
	threshold int
}

// NewStreak creates a streak tracker; threshold below 1 is treated as 1
func NewStreak(threshold int) *Streak {
	if threshold < 1 {
		threshold = 1
	}
	return &Streak{threshold: threshold}
}

// Count returns the current streak length
func (s *Streak) Count() int { return s.count }

// Threshold returns the milestone length
func (s *Streak) Threshold() int { return s.threshold }

// Reset clears the streak
func (s *Streak) Reset() { s.count = 0 }

// Record applies one outcome; reaching the threshold reports a milestone and clears the count
func (s *Streak) Record(k Kind, enabled bool) StreakUpdate {
	if !enabled || k != Affirmative {
		s.count = 0
		return StreakUpdate{}
	}
	s.count++
	u := StreakUpdate{Count: s.count}
	if s.count >= s.threshold {
		u.Milestone = true
		s.count = 0
	}
	return u
}
