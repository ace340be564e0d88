package duckhunt

import (
	"time"

	"github.com/vovakirdan/duckshoot/internal/config"
)

// TickOutcome reports what one simulation tick did.
type TickOutcome struct {
	Escaped    int           // Ducks that left through the top edge this tick
	GameOver   bool          // The miss limit was reached this tick
	SpawnDelay time.Duration // Spawner period for the current score
}

// Simulate advances the world by one tick. It does nothing unless the world is running.
//
// Order within a tick: move, drop escaped ducks, check the miss limit, then apply
// difficulty scaling to the spawn delay and to every remaining duck's speed.
func Simulate(w *World, cfg config.DuckHuntConfig, dm *config.DifficultyManager) TickOutcome {
	var out TickOutcome
	if !w.Running {
		return out
	}

	for i := range w.Ducks {
		w.Ducks[i].Y -= w.Ducks[i].Speed
	}

	kept := w.Ducks[:0]
	for _, d := range w.Ducks {
		if d.Escaped() {
			out.Escaped++
			continue
		}
		kept = append(kept, d)
	}
	w.Ducks = kept
	w.Missed += out.Escaped

	if w.Missed >= cfg.Gameplay.MaxMissed {
		w.Running = false
		out.GameOver = true
	}

	out.SpawnDelay = dm.SpawnDelay(cfg.InitialSpawnDelay(), cfg.MinSpawnDelay(), w.Score)
	for i := range w.Ducks {
		w.Ducks[i].Speed = dm.Speed(w.Ducks[i].Speed, cfg.Duck.MaxSpeed, w.Score)
	}

	return out
}
