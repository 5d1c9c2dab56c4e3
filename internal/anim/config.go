package anim

import (
	"time"

	"sakura/internal/config"
)

// Config bundles the settings of every decoration.
type Config struct {
	Petals       PetalConfig
	Mascot       MascotConfig
	CounterSteps int
	CounterTick  time.Duration
}

func DefaultConfig() Config {
	return Config{
		Petals:       DefaultPetalConfig(),
		Mascot:       DefaultMascotConfig(),
		CounterSteps: 50,
		CounterTick:  30 * time.Millisecond,
	}
}

// FromAppConfig maps the application configuration onto the engine.
func FromAppConfig(c *config.Config) Config {
	cfg := DefaultConfig()

	cfg.Petals.Cap = c.PetalCap
	cfg.Petals.Seed = c.PetalSeed
	cfg.Petals.Batch = c.PetalBatch
	cfg.Petals.Interval = c.PetalInterval
	cfg.Petals.Width = float64(c.ViewportWidth)

	cfg.Mascot.PlayDuration = c.MascotPlayDuration
	cfg.Mascot.TwitchInterval = c.MascotTwitchInterval
	cfg.Mascot.TwitchThreshold = c.MascotTwitchThreshold
	cfg.Mascot.MoveInterval = c.MascotMoveInterval
	cfg.Mascot.MoveThreshold = c.MascotMoveThreshold
	cfg.Mascot.Bounds = Position{X: float64(c.ViewportWidth), Y: float64(c.ViewportHeight)}
	cfg.Mascot.TailInterval = c.MascotTailInterval

	cfg.CounterSteps = c.CounterSteps
	cfg.CounterTick = c.CounterTick
	return cfg
}
