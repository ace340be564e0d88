package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML DuckHuntConfig
	if err := yaml.Unmarshal(GetDefaultYAML("duckhunt"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultDuckHuntConfig()) {
		t.Errorf("embedded YAML = %+v, want %+v", fromYAML, DefaultDuckHuntConfig())
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultDuckHuntConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.InitialSpawnDelay() != 2*time.Second {
		t.Errorf("InitialSpawnDelay = %v, want 2s", cfg.InitialSpawnDelay())
	}
	if cfg.MinSpawnDelay() != 500*time.Millisecond {
		t.Errorf("MinSpawnDelay = %v, want 500ms", cfg.MinSpawnDelay())
	}
	if cfg.TickPeriod() != 16*time.Millisecond {
		t.Errorf("TickPeriod = %v, want 16ms", cfg.TickPeriod())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DuckHuntConfig)
		want   string
	}{
		{"zero canvas", func(c *DuckHuntConfig) { c.Canvas.Width = 0 }, "canvas size"},
		{"duck wider than canvas", func(c *DuckHuntConfig) { c.Duck.Width = 800 }, "duck width"},
		{"zero min speed", func(c *DuckHuntConfig) { c.Duck.MinSpeed = 0 }, "speed range"},
		{"ceiling below initial", func(c *DuckHuntConfig) { c.Duck.MaxSpeed = 2 }, "max_speed"},
		{"floor above initial", func(c *DuckHuntConfig) { c.Spawn.MinDelayMS = 3000 }, "spawn delays"},
		{"negative trees", func(c *DuckHuntConfig) { c.Trees.Count = -1 }, "tree count"},
		{"zero max missed", func(c *DuckHuntConfig) { c.Gameplay.MaxMissed = 0 }, "max_missed"},
		{"zero tick", func(c *DuckHuntConfig) { c.Gameplay.TickMS = 0 }, "tick_ms"},
		{"zero divisor", func(c *DuckHuntConfig) { c.Difficulty.SpeedDivisor = 0 }, "speed_divisor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDuckHuntConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestZeroDivisorAllowedWhenFixed(t *testing.T) {
	cfg := DefaultDuckHuntConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.SpeedDivisor = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("fixed difficulty should not need a divisor: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyDuckHuntPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantEnabled   bool
		wantMaxMissed int
		wantDelayMS   int
		wantMaxSpeed  int
	}{
		{DifficultyEasy, true, 15, 2500, 8},
		{DifficultyNormal, true, 10, 2000, 8},
		{DifficultyHard, true, 5, 1500, 10},
		{DifficultyFixed, false, 10, 2000, 8},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultDuckHuntConfig()
			ApplyDuckHuntPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Gameplay.MaxMissed != tt.wantMaxMissed {
				t.Errorf("MaxMissed = %d, want %d", cfg.Gameplay.MaxMissed, tt.wantMaxMissed)
			}
			if cfg.Spawn.InitialDelayMS != tt.wantDelayMS {
				t.Errorf("InitialDelayMS = %d, want %d", cfg.Spawn.InitialDelayMS, tt.wantDelayMS)
			}
			if cfg.Duck.MaxSpeed != tt.wantMaxSpeed {
				t.Errorf("MaxSpeed = %d, want %d", cfg.Duck.MaxSpeed, tt.wantMaxSpeed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestLoadDuckHuntCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duckhunt.yaml")
	data := []byte("gameplay:\n  max_missed: 3\ntrees:\n  count: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDuckHunt(path)
	if err != nil {
		t.Fatalf("LoadDuckHunt() failed: %v", err)
	}
	if cfg.Gameplay.MaxMissed != 3 {
		t.Errorf("MaxMissed = %d, want 3", cfg.Gameplay.MaxMissed)
	}
	if cfg.Trees.Count != 0 {
		t.Errorf("Trees.Count = %d, want 0", cfg.Trees.Count)
	}
	// Keys absent from the file keep their defaults
	if cfg.Canvas.Width != 800 || cfg.Spawn.InitialDelayMS != 2000 {
		t.Errorf("unset keys lost defaults: %+v", cfg)
	}
}

func TestLoadDuckHuntCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDuckHunt(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("canvas: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDuckHunt(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  tick_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDuckHunt(invalid); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoadDuckHuntUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".duckshoot", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("spawn:\n  initial_delay_ms: 1000\n")
	if err := os.WriteFile(filepath.Join(dir, "duckhunt.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDuckHunt("")
	if err != nil {
		t.Fatalf("LoadDuckHunt() failed: %v", err)
	}
	if cfg.Spawn.InitialDelayMS != 1000 {
		t.Errorf("InitialDelayMS = %d, want 1000 from user config", cfg.Spawn.InitialDelayMS)
	}
}

func TestLoadDuckHuntFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".duckshoot", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	// A broken discovered file is skipped
	if err := os.WriteFile(filepath.Join(dir, "duckhunt.yaml"), []byte("duck: {width: -1}"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDuckHunt("")
	if err != nil {
		t.Fatalf("LoadDuckHunt() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDuckHuntConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}
