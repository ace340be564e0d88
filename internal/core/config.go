package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the platform steps the game (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Missed   int  // Targets that escaped
	Running  bool // Whether a round is in progress
	GameOver bool // Whether the last round has ended
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventStart    EventKind = iota // A round began
	EventSpawn                     // A target appeared
	EventShot                      // A click landed on the canvas during a round
	EventHit                       // A shot removed a target
	EventMiss                      // A target escaped
	EventGameOver                  // The round ended
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventSpawn:
		return "spawn"
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single notification produced by a step, used by platforms for
// sound effects and logging.
type Event struct {
	Kind  EventKind
	Score int // Score after the event
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
