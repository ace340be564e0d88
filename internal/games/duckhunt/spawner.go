package duckhunt

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/core"
)

// Spawner adds a duck to the world every time its timer fires.
// The period starts at the initial delay and is shortened by the simulation as the score rises.
type Spawner struct {
	timer   *core.Timer
	initial time.Duration
	floor   time.Duration
}

// NewSpawner creates a stopped spawner.
func NewSpawner(cfg config.DuckHuntConfig) *Spawner {
	return &Spawner{
		timer:   core.NewTimer(cfg.InitialSpawnDelay()),
		initial: cfg.InitialSpawnDelay(),
		floor:   cfg.MinSpawnDelay(),
	}
}

// Start restarts the spawner at its initial delay.
func (s *Spawner) Start() {
	s.timer.Stop()
	s.timer.SetPeriod(s.initial)
	s.timer.Start()
}

// Stop halts spawning.
func (s *Spawner) Stop() {
	s.timer.Stop()
}

// Running reports whether the spawner is active.
func (s *Spawner) Running() bool {
	return s.timer.Running()
}

// Delay returns the current period between spawns.
func (s *Spawner) Delay() time.Duration {
	return s.timer.Period()
}

// SetDelay changes the period, never going below the floor.
func (s *Spawner) SetDelay(d time.Duration) {
	if d < s.floor {
		d = s.floor
	}
	s.timer.SetPeriod(d)
}

// Advance feeds dt to the timer and appends one duck per firing.
// Returns the number of ducks spawned.
func (s *Spawner) Advance(dt time.Duration, w *World, rng *rand.Rand, cfg config.DuckHuntConfig) int {
	s.timer.Add(dt)
	spawned := 0
	for s.timer.Fire() {
		w.Ducks = append(w.Ducks, newDuck(rng, cfg))
		spawned++
	}
	return spawned
}
