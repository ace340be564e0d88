package duckhunt

import (
	"fmt"

	"github.com/vovakirdan/duckshoot/internal/core"
)

// Phase is the state of the presentation shell around the world.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first round
	PhaseRunning               // A round is in progress
	PhaseGameOver              // The miss limit was reached
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Button is a control bar button.
type Button struct {
	Label   string
	Action  core.Action
	Enabled bool
}

// ControlBar is what frontends show above the canvas.
type ControlBar struct {
	Score   string // "Score: N"
	Missed  string // "Missed: N"
	Pace    string // Set when difficulty never ramps up
	Buttons []Button
}

// Dialog is the modal summary shown when a round ends.
type Dialog struct {
	Open    bool
	Title   string
	Message string
	Button  string
}

// shell holds the state of the controls around the canvas.
type shell struct {
	phase  Phase
	start  Button
	replay Button
	dialog Dialog
}

func newShell() shell {
	return shell{
		phase:  PhaseIdle,
		start:  Button{Label: "Start", Action: core.ActionStart, Enabled: true},
		replay: Button{Label: "Replay", Action: core.ActionReplay, Enabled: false},
	}
}

// accepts reports whether an action is allowed in the current shell state.
// While the dialog is open only Confirm gets through.
func (s *shell) accepts(a core.Action) bool {
	if s.dialog.Open {
		return a == core.ActionConfirm
	}
	switch a {
	case core.ActionStart:
		return s.start.Enabled
	case core.ActionReplay:
		return s.replay.Enabled
	default:
		return false
	}
}

func (s *shell) running() {
	s.phase = PhaseRunning
	s.dialog = Dialog{}
}

func (s *shell) gameOver(score int) {
	s.phase = PhaseGameOver
	s.dialog = Dialog{
		Open:    true,
		Title:   "Game Over",
		Message: fmt.Sprintf("Game Over! Your score: %d", score),
		Button:  "OK",
	}
}

func (s *shell) closeDialog() {
	s.dialog.Open = false
}

func (s *shell) controls(w *World) ControlBar {
	var score, missed int
	if w != nil {
		score, missed = w.Score, w.Missed
	}
	return ControlBar{
		Score:   fmt.Sprintf("Score: %d", score),
		Missed:  fmt.Sprintf("Missed: %d", missed),
		Buttons: []Button{s.start, s.replay},
	}
}
