package duckhunt

import (
	"math/rand"

	"github.com/vovakirdan/duckshoot/internal/config"
)

// World is the mutable state of one game: live ducks, scenery and counters.
// Ducks are kept in spawn order, so the last element is the newest duck.
type World struct {
	Ducks   []Duck
	Trees   []Tree
	Score   int
	Missed  int
	Running bool
}

// NewWorld creates an idle world with its scenery placed.
func NewWorld(rng *rand.Rand, cfg config.DuckHuntConfig) *World {
	w := &World{
		Trees: make([]Tree, 0, cfg.Trees.Count),
	}
	for i := 0; i < cfg.Trees.Count; i++ {
		w.Trees = append(w.Trees, newTree(rng, cfg.Canvas.Width, cfg.Canvas.Height))
	}
	return w
}

// begin clears the round state and marks the world running. Trees are kept.
func (w *World) begin() {
	w.Ducks = w.Ducks[:0]
	w.Score = 0
	w.Missed = 0
	w.Running = true
}
