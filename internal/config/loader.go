package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDuckHunt loads Duck Hunt configuration.
// Search order: customPath -> ~/.duckshoot/configs/duckhunt.yaml -> ./configs/duckhunt.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadDuckHunt(customPath string) (DuckHuntConfig, error) {
	cfg := DefaultDuckHuntConfig()

	// Custom path must load; errors are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Discovered files are best effort; a broken one falls through
	candidates := []string{
		userConfigPath("duckhunt.yaml"),
		filepath.Join("configs", "duckhunt.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultDuckHuntConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDuckHuntYAML, &cfg); err != nil {
		return DefaultDuckHuntConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duckshoot", "configs", filename)
}

// ApplyDuckHuntPreset modifies the config based on a difficulty preset.
func ApplyDuckHuntPreset(cfg *DuckHuntConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxMissed = 15
		cfg.Spawn.InitialDelayMS = 2500
	case DifficultyHard:
		cfg.Gameplay.MaxMissed = 5
		cfg.Spawn.InitialDelayMS = 1500
		cfg.Duck.MaxSpeed = 10
	}

	if cfg.Spawn.InitialDelayMS < cfg.Spawn.MinDelayMS {
		cfg.Spawn.InitialDelayMS = cfg.Spawn.MinDelayMS
	}
}
