// Package config loads startup configuration and holds runtime toggles.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/baebae/fate"
)

// Config is the startup configuration read from BAEBAE_* environment variables
// Command-line flags in cmd/baebae override these values
type Config struct {
	Identifier  string  `env:"BAEBAE_IDENTIFIER"`
	UseLocation bool    `env:"BAEBAE_USE_LOCATION"`
	Latitude    float64 `env:"BAEBAE_LATITUDE"     envDefault:"25.03"`
	Longitude   float64 `env:"BAEBAE_LONGITUDE"    envDefault:"121.56"`
	StreakMode  bool    `env:"BAEBAE_STREAK"       envDefault:"true"`
	Divination  bool    `env:"BAEBAE_DIVINATION"`

	AudioEnabled bool    `env:"BAEBAE_AUDIO_ENABLED" envDefault:"true"`
	Volume       float64 `env:"BAEBAE_VOLUME"        envDefault:"0.8"`

	HistoryPath string `env:"BAEBAE_HISTORY_DB"`
	HistorySize int    `env:"BAEBAE_HISTORY_SIZE" envDefault:"10"`

	// Caption lines are drawn on the table floor
	Caption []string `env:"BAEBAE_CAPTION" envSeparator:","`

	// Keys are key=action overrides on top of the default bindings
	Keys []string `env:"BAEBAE_KEYS" envSeparator:","`

	FPS   int    `env:"BAEBAE_FPS"   envDefault:"60"`
	Seed  uint64 `env:"BAEBAE_SEED"` // 0 selects crypto entropy
	Debug bool   `env:"BAEBAE_DEBUG"`
}

// Validation errors
var (
	ErrInvalidFPS      = errors.New("fps must be between 1 and 240")
	ErrInvalidVolume   = errors.New("volume must be between 0 and 1")
	ErrInvalidLocation = errors.New("location out of range")
)

// Load parses the environment and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges; the identifier is validated separately since an invalid one is recoverable
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidVolume, c.Volume)
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: %g,%g", ErrInvalidLocation, c.Latitude, c.Longitude)
	}
	return nil
}

// Location returns the configured coordinate
func (c Config) Location() fate.Location {
	return fate.Location{Lat: c.Latitude, Lng: c.Longitude}
}
