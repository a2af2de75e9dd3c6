package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/calebcase/qcordic/cordic"
	"github.com/calebcase/qcordic/sweep"
)

const (
	engineReversible = "reversible"
	engineClassical  = "classical"
)

type fileConfig struct {
	InputBits uint   `toml:"input_bits"`
	Points    int    `toml:"points"`
	Workers   int    `toml:"workers"`
	Engine    string `toml:"engine"`
	LogLevel  string `toml:"log_level"`
}

type config struct {
	Sweep    sweep.Config
	Engine   string
	LogLevel zerolog.Level
}

func defaultConfig() config {
	return config{
		Sweep: sweep.Config{
			InputBits: 10,
			Points:    2048,
		},
		Engine:   engineReversible,
		LogLevel: zerolog.InfoLevel,
	}
}

// loadConfig layers the keys set in path over the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("input_bits") {
		cfg.Sweep.InputBits = raw.InputBits
	}

	if meta.IsDefined("points") {
		cfg.Sweep.Points = raw.Points
	}

	if meta.IsDefined("workers") {
		cfg.Sweep.Workers = raw.Workers
	}

	if meta.IsDefined("engine") {
		cfg.Engine = strings.ToLower(strings.TrimSpace(raw.Engine))
	}

	if meta.IsDefined("log_level") {
		lvl, err := parseLevel(raw.LogLevel)
		if err != nil {
			return config{}, err
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log_level: %w", err)
	}

	return lvl, nil
}

func newEngine(name string) (cordic.Engine, error) {
	switch name {
	case engineReversible:
		return cordic.NewReversible(), nil
	case engineClassical:
		return cordic.NewClassical(), nil
	}

	return nil, fmt.Errorf("unknown engine %q (want %s or %s)", name, engineReversible, engineClassical)
}
