package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// SimConfig holds simulation runtime settings.
type SimConfig struct {
	// Seed for the level generator and probabilistic triggers. Zero picks a
	// time-based seed.
	Seed int64 `mapstructure:"seed"`
	// TickRate is the number of ticks per second used by hosts.
	TickRate int `mapstructure:"tick_rate"`
	// StartLevel is the level index the run begins on.
	StartLevel int `mapstructure:"start_level"`
	// LevelDir optionally overrides the embedded .tmx levels.
	LevelDir string `mapstructure:"level_dir"`
}

// HeadlessConfig holds settings for the headless runner.
type HeadlessConfig struct {
	Ticks    int    `mapstructure:"ticks"`
	Snapshot string `mapstructure:"snapshot"`
}

// Settings is the top-level runtime configuration.
type Settings struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Sim      SimConfig      `mapstructure:"sim"`
	Headless HeadlessConfig `mapstructure:"headless"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (s Settings) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[s.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", s.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[s.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", s.Logging.Format))
	}
	if s.Sim.TickRate < 1 || s.Sim.TickRate > 240 {
		errs = append(errs, fmt.Sprintf("sim.tick_rate must be 1-240, got %d", s.Sim.TickRate))
	}
	if s.Sim.StartLevel < 0 || s.Sim.StartLevel >= World.LevelCount {
		errs = append(errs, fmt.Sprintf("sim.start_level must be 0-%d, got %d", World.LevelCount-1, s.Sim.StartLevel))
	}
	if s.Headless.Ticks < 0 {
		errs = append(errs, fmt.Sprintf("headless.ticks must be >= 0, got %d", s.Headless.Ticks))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads settings from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
func Load(path string) (Settings, error) {
	v := viper.New()

	// Environment variable overrides with NIGHTFALL_ prefix
	v.SetEnvPrefix("NIGHTFALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.tick_rate", 60)
	v.SetDefault("sim.start_level", 0)
	v.SetDefault("sim.level_dir", "")

	v.SetDefault("headless.ticks", 600)
	v.SetDefault("headless.snapshot", "")
}
