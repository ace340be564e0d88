package recorder

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duckshoot/internal/audio"
	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/core"
	"github.com/vovakirdan/duckshoot/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func gameOver(score, missed int) core.StepResult {
	return core.StepResult{
		State:  core.GameState{Score: score, Missed: missed, GameOver: true},
		Events: []core.Event{{Kind: core.EventMiss, Score: score}, {Kind: core.EventGameOver, Score: score}},
	}
}

func TestRecordSavesOnGameOver(t *testing.T) {
	store := openTestStore(t)
	r := New(Options{
		GameID: "duckhunt",
		Preset: config.DifficultyEasy,
		Player: "bob",
		Store:  store,
		Sound:  audio.NewSoundPlayer(true),
	})

	r.Record(core.StepResult{State: core.GameState{Running: true}})
	r.Record(core.StepResult{
		State:  core.GameState{Running: true, Score: 1},
		Events: []core.Event{{Kind: core.EventShot, Score: 1}, {Kind: core.EventHit, Score: 1}},
	})
	r.Record(gameOver(12, 10))

	if r.Saved() != 1 {
		t.Fatalf("Saved = %d, want 1", r.Saved())
	}
	scores, err := store.TopScores("duckhunt", "easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 12 || scores[0].Missed != 10 || scores[0].Player != "bob" {
		t.Errorf("scores = %+v", scores)
	}
}

func TestRecordSkips(t *testing.T) {
	tests := []struct {
		name   string
		store  bool
		result core.StepResult
	}{
		{"zero score", true, gameOver(0, 10)},
		{"no store", false, gameOver(5, 10)},
		{"no game over", true, core.StepResult{
			State:  core.GameState{Score: 5, Running: true},
			Events: []core.Event{{Kind: core.EventHit, Score: 5}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{GameID: "duckhunt"}
			if tt.store {
				opts.Store = openTestStore(t)
			}
			r := New(opts)
			r.Record(tt.result)
			if r.Saved() != 0 {
				t.Errorf("Saved = %d, want 0", r.Saved())
			}
		})
	}
}

func TestRecordDefaultsPreset(t *testing.T) {
	store := openTestStore(t)
	r := New(Options{GameID: "duckhunt", Store: store})
	r.Record(gameOver(3, 10))

	best, err := store.HighScore("duckhunt", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 3 {
		t.Errorf("normal best = %d, want 3", best)
	}
}

func TestRecordLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	r := New(Options{GameID: "duckhunt", Preset: config.DifficultyHard, Logger: logger})
	r.Record(core.StepResult{
		State:  core.GameState{Running: true},
		Events: []core.Event{{Kind: core.EventStart}, {Kind: core.EventSpawn}},
	})
	r.Record(gameOver(4, 11))

	out := buf.String()
	for _, want := range []string{"round started", "spawn", "round over", "preset=hard", "missed=11"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
