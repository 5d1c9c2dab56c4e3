package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"sakura/internal/core"
	"sakura/internal/log"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string

	// Viewport the decoration is laid out on
	ViewportWidth  int
	ViewportHeight int

	// Falling petals
	PetalCap      int
	PetalSeed     int
	PetalBatch    int
	PetalInterval time.Duration

	// Mascot
	MascotPlayDuration    time.Duration
	MascotTwitchInterval  time.Duration
	MascotTwitchThreshold float64
	MascotMoveInterval    time.Duration
	MascotMoveThreshold   float64
	MascotTailInterval    time.Duration

	// Animated counters
	CounterSteps int
	CounterTick  time.Duration

	// Dashboard
	SavingsGoal string
}

func defaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	v.SetDefault("VIEWPORT_WIDTH", 1280)
	v.SetDefault("VIEWPORT_HEIGHT", 800)

	v.SetDefault("PETAL_CAP", 50)
	v.SetDefault("PETAL_SEED", 50)
	v.SetDefault("PETAL_BATCH", 5)
	v.SetDefault("PETAL_INTERVAL", 600*time.Millisecond)

	v.SetDefault("MASCOT_PLAY_DURATION", time.Second)
	v.SetDefault("MASCOT_TWITCH_INTERVAL", 3*time.Second)
	v.SetDefault("MASCOT_TWITCH_THRESHOLD", 0.7)
	v.SetDefault("MASCOT_MOVE_INTERVAL", 5*time.Second)
	v.SetDefault("MASCOT_MOVE_THRESHOLD", 0.8)
	v.SetDefault("MASCOT_TAIL_INTERVAL", 50*time.Millisecond)

	v.SetDefault("COUNTER_STEPS", 50)
	v.SetDefault("COUNTER_TICK", 30*time.Millisecond)

	v.SetDefault("SAVINGS_GOAL", "2000")
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	// Load .env file for local development (ignore errors when absent)
	_ = godotenv.Load()

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	return &Config{
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),

		ViewportWidth:  v.GetInt("VIEWPORT_WIDTH"),
		ViewportHeight: v.GetInt("VIEWPORT_HEIGHT"),

		PetalCap:      v.GetInt("PETAL_CAP"),
		PetalSeed:     v.GetInt("PETAL_SEED"),
		PetalBatch:    v.GetInt("PETAL_BATCH"),
		PetalInterval: v.GetDuration("PETAL_INTERVAL"),

		MascotPlayDuration:    v.GetDuration("MASCOT_PLAY_DURATION"),
		MascotTwitchInterval:  v.GetDuration("MASCOT_TWITCH_INTERVAL"),
		MascotTwitchThreshold: v.GetFloat64("MASCOT_TWITCH_THRESHOLD"),
		MascotMoveInterval:    v.GetDuration("MASCOT_MOVE_INTERVAL"),
		MascotMoveThreshold:   v.GetFloat64("MASCOT_MOVE_THRESHOLD"),
		MascotTailInterval:    v.GetDuration("MASCOT_TAIL_INTERVAL"),

		CounterSteps: v.GetInt("COUNTER_STEPS"),
		CounterTick:  v.GetDuration("COUNTER_TICK"),

		SavingsGoal: v.GetString("SAVINGS_GOAL"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if c.ViewportWidth < 1 || c.ViewportHeight < 1 {
		errors = append(errors, fmt.Sprintf("invalid viewport %dx%d: both sides must be at least 1", c.ViewportWidth, c.ViewportHeight))
	}

	if c.PetalCap < 1 {
		errors = append(errors, fmt.Sprintf("invalid petal cap %d: must be at least 1", c.PetalCap))
	}
	if c.PetalBatch < 1 {
		errors = append(errors, fmt.Sprintf("invalid petal batch %d: must be at least 1", c.PetalBatch))
	}
	if c.PetalSeed < 0 {
		errors = append(errors, fmt.Sprintf("invalid petal seed %d: must not be negative", c.PetalSeed))
	} else if c.PetalCap >= 1 && c.PetalBatch >= 1 && c.PetalSeed > c.PetalCap+c.PetalBatch {
		errors = append(errors, fmt.Sprintf("invalid petal seed %d: must be at most cap+batch (%d)", c.PetalSeed, c.PetalCap+c.PetalBatch))
	}
	if c.PetalInterval < 50*time.Millisecond {
		errors = append(errors, fmt.Sprintf("invalid petal interval %v: must be at least 50ms", c.PetalInterval))
	} else if c.PetalInterval > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid petal interval %v: must be at most 1 minute", c.PetalInterval))
	}

	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"mascot play duration", c.MascotPlayDuration},
		{"mascot twitch interval", c.MascotTwitchInterval},
		{"mascot move interval", c.MascotMoveInterval},
		{"mascot tail interval", c.MascotTailInterval},
		{"counter tick", c.CounterTick},
	} {
		if d.value <= 0 {
			errors = append(errors, fmt.Sprintf("invalid %s %v: must be positive", d.name, d.value))
		}
	}
	if c.MascotTwitchThreshold < 0 || c.MascotTwitchThreshold > 1 {
		errors = append(errors, fmt.Sprintf("invalid mascot twitch threshold %v: must be between 0 and 1", c.MascotTwitchThreshold))
	}
	if c.MascotMoveThreshold < 0 || c.MascotMoveThreshold > 1 {
		errors = append(errors, fmt.Sprintf("invalid mascot move threshold %v: must be between 0 and 1", c.MascotMoveThreshold))
	}

	if c.CounterSteps < 1 {
		errors = append(errors, fmt.Sprintf("invalid counter steps %d: must be at least 1", c.CounterSteps))
	}

	if _, err := core.ParseAmount(c.SavingsGoal); err != nil {
		errors = append(errors, fmt.Sprintf("invalid savings goal '%s': %v", c.SavingsGoal, err))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Goal returns the parsed savings goal, or zero when it is invalid.
func (c *Config) Goal() decimal.Decimal {
	goal, err := core.ParseAmount(c.SavingsGoal)
	if err != nil {
		return decimal.Zero
	}
	return goal
}

// Logger builds the application logger described by the configuration.
func (c *Config) Logger() *log.Logger {
	cfg := log.DefaultConfig()
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		cfg.Level = level
	}
	cfg.Format = c.LogFormat
	return log.New(cfg)
}
