package config

import (
	_ "embed"
)

//go:embed defaults/duckhunt.yaml
var defaultDuckHuntYAML []byte

// DefaultDuckHuntConfig returns the default Duck Hunt configuration.
func DefaultDuckHuntConfig() DuckHuntConfig {
	return DuckHuntConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Duck: DuckConfig{
			Width:           40,
			Height:          30,
			MinSpeed:        1,
			MaxInitialSpeed: 3,
			MaxSpeed:        8,
		},
		Spawn: SpawnConfig{
			InitialDelayMS: 2000,
			MinDelayMS:     500,
		},
		Trees: TreesConfig{
			Count: 5,
		},
		Gameplay: GameplayConfig{
			MaxMissed: 10,
			TickMS:    16,
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			SpawnDelayStepMS: 100,
			SpeedDivisor:     5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "duckhunt":
		return defaultDuckHuntYAML
	default:
		return nil
	}
}
