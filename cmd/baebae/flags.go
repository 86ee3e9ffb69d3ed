package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/baebae/config"
)

// applyFlags overrides env-derived configuration with command-line flags
// Flags default to the current cfg values, so only flags present on the command line change it
func applyFlags(cfg *config.Config, args []string, output io.Writer) error {
	fs := flag.NewFlagSet("baebae", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Identifier, "id", cfg.Identifier, "personal identifier, YYYYMMDD")
	fs.BoolVar(&cfg.UseLocation, "location", cfg.UseLocation, "mix location into the toss")
	fs.Float64Var(&cfg.Latitude, "lat", cfg.Latitude, "latitude for location entropy")
	fs.Float64Var(&cfg.Longitude, "lng", cfg.Longitude, "longitude for location entropy")
	fs.BoolVar(&cfg.StreakMode, "streak", cfg.StreakMode, "track consecutive affirmative results")
	fs.BoolVar(&cfg.Divination, "divination", cfg.Divination, "use the solemn result texts")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "impact sound volume, 0 to 1")
	fs.StringVar(&cfg.HistoryPath, "history", cfg.HistoryPath, "SQLite file for toss history, empty disables")
	fs.IntVar(&cfg.HistorySize, "history-size", cfg.HistorySize, "tosses in the history summary")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "spirit seed, 0 for crypto entropy")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to logs/baebae.log")
	mute := fs.Bool("mute", !cfg.AudioEnabled, "disable impact sounds")
	fs.Func("caption", "comma separated floor caption lines", func(s string) error {
		cfg.Caption = strings.Split(s, ",")
		return nil
	})
	fs.Func("keys", "comma separated key=action overrides", func(s string) error {
		cfg.Keys = strings.Split(s, ",")
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	cfg.AudioEnabled = !*mute
	return cfg.Validate()
}
