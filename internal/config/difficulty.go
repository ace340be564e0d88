package config

import "time"

// DifficultyManager calculates dynamic game parameters based on score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// SpawnDelay returns the spawner period for the given score:
// max(floor, initial - score*step). Without progression it stays at initial.
func (d *DifficultyManager) SpawnDelay(initial, floor time.Duration, score int) time.Duration {
	if !d.cfg.Enabled {
		return initial
	}
	delay := initial - time.Duration(score*d.cfg.SpawnDelayStepMS)*time.Millisecond
	if delay < floor {
		delay = floor
	}
	return delay
}

// Speed returns a duck's next speed: min(ceiling, speed + score/divisor).
// The gain compounds because it is applied to the current speed every tick.
func (d *DifficultyManager) Speed(speed, ceiling, score int) int {
	if d.cfg.Enabled && d.cfg.SpeedDivisor > 0 {
		speed += score / d.cfg.SpeedDivisor
	}
	if speed > ceiling {
		speed = ceiling
	}
	return speed
}
