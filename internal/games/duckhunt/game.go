// Package duckhunt implements the duck shooting game: ducks rise from the bottom
// of the canvas and the player clicks to shoot them before they escape.
package duckhunt

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/core"
	"github.com/vovakirdan/duckshoot/internal/registry"
)

// Game implements the Duck Hunt game.
type Game struct {
	cfg    config.DuckHuntConfig
	preset config.DifficultyPreset
	dm     *config.DifficultyManager
	rng    *rand.Rand

	world   *World
	spawner *Spawner
	sim     *core.Timer
	shell   shell

	frame time.Duration // Simulated time per Step
	ticks uint64        // Simulation ticks run since Reset

	layout layout
}

// New creates a Duck Hunt game with the default configuration.
func New() *Game {
	cfg := config.DefaultDuckHuntConfig()
	return &Game{
		cfg:    cfg,
		preset: config.DifficultyNormal,
		dm:     config.NewDifficultyManager(cfg.Difficulty),
	}
}

func init() {
	registry.Register("duckhunt", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "duckhunt"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Duck Hunt"
}

// LoadConfig loads the YAML configuration and applies a difficulty preset.
// Takes effect on the next Reset.
func (g *Game) LoadConfig(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadDuckHunt(path)
	if err != nil {
		return err
	}
	config.ApplyDuckHuntPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.preset = preset
	g.dm = config.NewDifficultyManager(cfg.Difficulty)
	return nil
}

// Config returns the active configuration.
func (g *Game) Config() config.DuckHuntConfig {
	return g.cfg
}

// Preset returns the active difficulty preset.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// Reset places the scenery and returns to the idle phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.world = NewWorld(g.rng, g.cfg)
	g.spawner = NewSpawner(g.cfg)
	g.sim = core.NewTimer(g.cfg.TickPeriod())
	g.shell = newShell()
	g.ticks = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)

	g.layout = newLayout(cfg.ScreenW, cfg.ScreenH, g.Controls(), g.shell.dialog)
}

// Step applies the frame's input and then advances both timers by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	emit := func(kind core.EventKind) {
		events = append(events, core.Event{Kind: kind, Score: g.world.Score})
	}

	g.processInput(in, emit)

	for n := g.spawner.Advance(g.frame, g.world, g.rng, g.cfg); n > 0; n-- {
		emit(core.EventSpawn)
	}

	g.sim.Add(g.frame)
	for g.sim.Fire() {
		g.ticks++
		out := Simulate(g.world, g.cfg, g.dm)
		for i := 0; i < out.Escaped; i++ {
			emit(core.EventMiss)
		}
		g.spawner.SetDelay(out.SpawnDelay)
		if out.GameOver {
			g.endRound()
			emit(core.EventGameOver)
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: events,
	}
}

// processInput handles dialog, buttons and then shots, in that order.
func (g *Game) processInput(in core.InputFrame, emit func(core.EventKind)) {
	if g.shell.dialog.Open {
		if in.Has(core.ActionConfirm) {
			g.shell.closeDialog()
		}
		return
	}

	if (in.Has(core.ActionStart) && g.shell.accepts(core.ActionStart)) ||
		(in.Has(core.ActionReplay) && g.shell.accepts(core.ActionReplay)) {
		g.startRound()
		emit(core.EventStart)
	}

	for _, p := range in.Clicks {
		if !g.world.Running {
			break
		}
		emit(core.EventShot)
		if Shoot(g.world, p) {
			emit(core.EventHit)
		}
	}
}

// startRound resets the counters and restarts both timers.
// The simulation timer is reused, so replays never stack extra ticks.
func (g *Game) startRound() {
	g.world.begin()
	g.spawner.Start()
	g.sim.Stop()
	g.sim.Start()
	g.shell.running()
}

func (g *Game) endRound() {
	g.world.Running = false
	g.spawner.Stop()
	g.sim.Stop()
	g.shell.gameOver(g.world.Score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score,
		Missed:   g.world.Missed,
		Running:  g.world.Running,
		GameOver: g.shell.phase == PhaseGameOver,
	}
}

// Phase returns the shell phase.
func (g *Game) Phase() Phase {
	return g.shell.phase
}

// Controls returns the control bar contents.
func (g *Game) Controls() ControlBar {
	bar := g.shell.controls(g.world)
	if !g.dm.IsEnabled() {
		bar.Pace = "Fixed pace"
	}
	return bar
}

// Dialog returns the game over dialog.
func (g *Game) Dialog() Dialog {
	return g.shell.dialog
}

// World returns the live world. Callers must not modify it.
func (g *Game) World() *World {
	return g.world
}

// CanvasSize returns the logical canvas size in pixels.
func (g *Game) CanvasSize() (int, int) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Draw paints the world onto a pixel canvas.
func (g *Game) Draw(c core.Canvas) {
	Draw(g.world, c)
}
