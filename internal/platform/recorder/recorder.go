// Package recorder turns the events of each game step into side effects
// shared by every platform: sound, logs and saved scores.
package recorder

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duckshoot/internal/audio"
	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/core"
	"github.com/vovakirdan/duckshoot/internal/storage"
)

// Options configures a Recorder. All services are optional.
type Options struct {
	GameID string
	Preset config.DifficultyPreset
	Player string
	Store  *storage.Store
	Sound  *audio.SoundPlayer
	Logger *log.Logger
}

// Recorder reacts to step results.
type Recorder struct {
	opts   Options
	logger *log.Logger
	saved  int // Number of rounds persisted
}

// New creates a recorder. A missing preset means normal.
func New(opts Options) *Recorder {
	if opts.Preset == "" {
		opts.Preset = config.DifficultyNormal
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		opts:   opts,
		logger: logger.With("game", opts.GameID, "preset", opts.Preset),
	}
}

// Logger returns the recorder's logger with game context attached.
func (r *Recorder) Logger() *log.Logger {
	return r.logger
}

// Saved returns how many rounds have been written to the store.
func (r *Recorder) Saved() int {
	return r.saved
}

// Record handles one step: plays sounds, logs events and saves the score when a round ends.
func (r *Recorder) Record(result core.StepResult) {
	if len(result.Events) == 0 {
		return
	}

	if r.opts.Sound != nil {
		r.opts.Sound.PlayEvents(result.Events)
	}

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventStart:
			r.logger.Info("round started")
		case core.EventGameOver:
			r.logger.Info("round over", "score", e.Score, "missed", result.State.Missed)
			r.save(result.State)
		default:
			r.logger.Debug(e.Kind.String(), "score", e.Score)
		}
	}
}

// save persists a finished round. Zero scores are not recorded.
func (r *Recorder) save(state core.GameState) {
	if r.opts.Store == nil || state.Score <= 0 {
		return
	}
	rec := storage.ScoreRecord{
		GameID: r.opts.GameID,
		Preset: string(r.opts.Preset),
		Player: r.opts.Player,
		Score:  state.Score,
		Missed: state.Missed,
	}
	if _, err := r.opts.Store.SaveScore(rec); err != nil {
		r.logger.Error("failed to save score", "err", err)
		return
	}
	r.saved++
	r.logger.Info("score saved", "score", state.Score, "player", r.opts.Player)
}
