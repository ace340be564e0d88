package duckhunt

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	Missed     int
	Running    bool
	DialogOpen bool
	Spawning   bool
	SpawnDelay time.Duration
	Ducks      []Duck
	Trees      []Tree
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.ticks,
		Phase:      g.shell.phase,
		Score:      g.world.Score,
		Missed:     g.world.Missed,
		Running:    g.world.Running,
		DialogOpen: g.shell.dialog.Open,
		Spawning:   g.spawner.Running(),
		SpawnDelay: g.spawner.Delay(),
		Ducks:      append([]Duck(nil), g.world.Ducks...),
		Trees:      append([]Tree(nil), g.world.Trees...),
	}
}
