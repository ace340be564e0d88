// Package config provides YAML-based game configuration loading and
// difficulty management for the duck arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DuckHuntConfig contains all configuration for the Duck Hunt game.
type DuckHuntConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Duck       DuckConfig       `yaml:"duck"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Trees      TreesConfig      `yaml:"trees"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the logical playfield size in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DuckConfig defines duck dimensions and speeds (pixels per tick).
type DuckConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	MinSpeed        int `yaml:"min_speed"`
	MaxInitialSpeed int `yaml:"max_initial_speed"`
	MaxSpeed        int `yaml:"max_speed"` // Ceiling applied by difficulty scaling
}

// SpawnConfig defines the spawner period.
type SpawnConfig struct {
	InitialDelayMS int `yaml:"initial_delay_ms"`
	MinDelayMS     int `yaml:"min_delay_ms"`
}

// TreesConfig defines the decorative scenery.
type TreesConfig struct {
	Count int `yaml:"count"`
}

// GameplayConfig defines round rules and simulation timing.
type GameplayConfig struct {
	MaxMissed int `yaml:"max_missed"`
	TickMS    int `yaml:"tick_ms"`
}

// DifficultyConfig defines how score ramps up the game.
type DifficultyConfig struct {
	Enabled          bool `yaml:"enabled"`
	SpawnDelayStepMS int  `yaml:"spawn_delay_step_ms"` // Spawn delay reduction per point
	SpeedDivisor     int  `yaml:"speed_divisor"`       // Speed gain per tick is score / divisor
}

// InitialSpawnDelay returns the spawner period at score zero.
func (c DuckHuntConfig) InitialSpawnDelay() time.Duration {
	return time.Duration(c.Spawn.InitialDelayMS) * time.Millisecond
}

// MinSpawnDelay returns the spawner period floor.
func (c DuckHuntConfig) MinSpawnDelay() time.Duration {
	return time.Duration(c.Spawn.MinDelayMS) * time.Millisecond
}

// TickPeriod returns the simulation step period.
func (c DuckHuntConfig) TickPeriod() time.Duration {
	return time.Duration(c.Gameplay.TickMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c DuckHuntConfig) Validate() error {
	var errs []error

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Duck.Width <= 0 || c.Duck.Height <= 0 {
		errs = append(errs, fmt.Errorf("duck size must be positive, got %dx%d", c.Duck.Width, c.Duck.Height))
	}
	if c.Duck.Width >= c.Canvas.Width {
		errs = append(errs, fmt.Errorf("duck width %d must be smaller than canvas width %d", c.Duck.Width, c.Canvas.Width))
	}
	if c.Duck.MinSpeed <= 0 || c.Duck.MaxInitialSpeed < c.Duck.MinSpeed {
		errs = append(errs, fmt.Errorf("duck speed range [%d, %d] is invalid", c.Duck.MinSpeed, c.Duck.MaxInitialSpeed))
	}
	if c.Duck.MaxSpeed < c.Duck.MaxInitialSpeed {
		errs = append(errs, fmt.Errorf("duck max_speed %d is below max_initial_speed %d", c.Duck.MaxSpeed, c.Duck.MaxInitialSpeed))
	}
	if c.Spawn.MinDelayMS <= 0 || c.Spawn.InitialDelayMS < c.Spawn.MinDelayMS {
		errs = append(errs, fmt.Errorf("spawn delays invalid: initial %dms, min %dms", c.Spawn.InitialDelayMS, c.Spawn.MinDelayMS))
	}
	if c.Trees.Count < 0 {
		errs = append(errs, fmt.Errorf("tree count must not be negative, got %d", c.Trees.Count))
	}
	if c.Gameplay.MaxMissed <= 0 {
		errs = append(errs, fmt.Errorf("max_missed must be positive, got %d", c.Gameplay.MaxMissed))
	}
	if c.Gameplay.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.Gameplay.TickMS))
	}
	if c.Difficulty.Enabled && c.Difficulty.SpeedDivisor <= 0 {
		errs = append(errs, fmt.Errorf("speed_divisor must be positive, got %d", c.Difficulty.SpeedDivisor))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid duckhunt config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists all presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value to a preset. An empty value means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
