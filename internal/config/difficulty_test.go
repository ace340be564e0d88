package config

import (
	"testing"
	"time"
)

func TestSpawnDelay(t *testing.T) {
	dm := NewDifficultyManager(DefaultDuckHuntConfig().Difficulty)
	initial := 2000 * time.Millisecond
	floor := 500 * time.Millisecond

	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 2000 * time.Millisecond},
		{1, 1900 * time.Millisecond},
		{5, 1500 * time.Millisecond},
		{15, 500 * time.Millisecond},
		{20, 500 * time.Millisecond},
		{100, 500 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := dm.SpawnDelay(initial, floor, tt.score); got != tt.want {
			t.Errorf("SpawnDelay(score=%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestSpeed(t *testing.T) {
	dm := NewDifficultyManager(DefaultDuckHuntConfig().Difficulty)

	tests := []struct {
		speed, score int
		want         int
	}{
		{2, 0, 2},
		{2, 4, 2},
		{2, 5, 3},
		{3, 10, 5},
		{7, 10, 8},
		{8, 50, 8},
	}

	for _, tt := range tests {
		if got := dm.Speed(tt.speed, 8, tt.score); got != tt.want {
			t.Errorf("Speed(%d, score=%d) = %d, want %d", tt.speed, tt.score, got, tt.want)
		}
	}
}

func TestSpeedCompoundsToCeiling(t *testing.T) {
	dm := NewDifficultyManager(DefaultDuckHuntConfig().Difficulty)
	speed := 1
	for i := 0; i < 10; i++ {
		speed = dm.Speed(speed, 8, 10)
	}
	if speed != 8 {
		t.Errorf("speed after repeated scaling = %d, want 8", speed)
	}
}

func TestDisabledDifficulty(t *testing.T) {
	cfg := DefaultDuckHuntConfig()
	ApplyDuckHuntPreset(&cfg, DifficultyFixed)
	dm := NewDifficultyManager(cfg.Difficulty)

	if dm.IsEnabled() {
		t.Fatal("expected disabled")
	}
	if got := dm.SpawnDelay(2*time.Second, 500*time.Millisecond, 50); got != 2*time.Second {
		t.Errorf("SpawnDelay with fixed difficulty = %v, want 2s", got)
	}
	if got := dm.Speed(3, 8, 50); got != 3 {
		t.Errorf("Speed with fixed difficulty = %d, want 3", got)
	}
}
