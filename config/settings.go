package config

import (
	"errors"
	"regexp"

	"github.com/lixenwraith/baebae/fate"
)

// ErrIdentifierFormat rejects identifiers that are not eight digits
var ErrIdentifierFormat = errors.New("identifier must be empty or eight digits (YYYYMMDD)")

var identifierPattern = regexp.MustCompile(`^\d{8}$`)

// ValidIdentifier reports whether s is empty or exactly eight ASCII digits
func ValidIdentifier(s string) bool {
	return s == "" || identifierPattern.MatchString(s)
}

// Settings are the runtime toggles; they are not persisted
// Owned by the loop goroutine, no locking
type Settings struct {
	identifier  string
	useLocation bool
	location    *fate.Location
	streakMode  bool
	divination  bool
}

// NewSettings seeds runtime toggles from startup configuration
// An invalid configured identifier is dropped
func NewSettings(cfg Config) *Settings {
	s := &Settings{
		useLocation: cfg.UseLocation,
		streakMode:  cfg.StreakMode,
		divination:  cfg.Divination,
	}
	if ValidIdentifier(cfg.Identifier) {
		s.identifier = cfg.Identifier
	}
	if cfg.UseLocation {
		loc := cfg.Location()
		s.location = &loc
	}
	return s
}

// Identifier returns the active personal identifier
func (s *Settings) Identifier() string { return s.identifier }

// SetIdentifier stores id if valid; on error the previous identifier stays
func (s *Settings) SetIdentifier(id string) error {
	if !ValidIdentifier(id) {
		return ErrIdentifierFormat
	}
	s.identifier = id
	return nil
}

// UseLocation reports whether location entropy is enabled
func (s *Settings) UseLocation() bool { return s.useLocation }

// Location returns the last known fix, nil if none
func (s *Settings) Location() *fate.Location { return s.location }

// SetLocation records a fix; nil clears it
func (s *Settings) SetLocation(loc *fate.Location) { s.location = loc }

// ToggleLocation flips location entropy and returns the new value
func (s *Settings) ToggleLocation() bool {
	s.useLocation = !s.useLocation
	return s.useLocation
}

// StreakMode reports whether streak tracking is enabled
func (s *Settings) StreakMode() bool { return s.streakMode }

// ToggleStreak flips streak mode and returns the new value
func (s *Settings) ToggleStreak() bool {
	s.streakMode = !s.streakMode
	return s.streakMode
}

// Divination reports whether the solemn text register is active
func (s *Settings) Divination() bool { return s.divination }

// ToggleDivination flips the text register and returns the new value
func (s *Settings) ToggleDivination() bool {
	s.divination = !s.divination
	return s.divination
}
