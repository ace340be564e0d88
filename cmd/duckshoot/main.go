// duckshoot is a Duck Hunt arcade game for the terminal and the desktop.
//
// Usage:
//
//	duckshoot play             - Play in the terminal
//	duckshoot window           - Play in a desktop window
//	duckshoot menu             - Pick a difficulty, play, browse scores
//	duckshoot serve            - Start SSH server for remote play
//	duckshoot scores           - Show high scores
//	duckshoot config           - Print the effective game configuration
//	duckshoot list             - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.duckshoot/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckshoot/internal/audio"
	"github.com/vovakirdan/duckshoot/internal/core"
	"github.com/vovakirdan/duckshoot/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/duckshoot/internal/games/duckhunt"
)

const defaultGameID = "duckhunt"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "duckshoot",
	Short:         "Duck Hunt - shoot ducks in your terminal or a window",
	SilenceErrors: true, // main prints them
	SilenceUsage:  true,
	Long: `Duck Hunt is an arcade shooting game. Ducks fly up from the bottom
of the field; click them before they escape. Ten misses end the round.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  duckshoot play
  duckshoot play --difficulty hard
  duckshoot window --mute
  duckshoot serve --ssh :2222
  duckshoot scores --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duckshoot/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from the global flags.
// Without --log-file, logs go to fallback; full-screen commands pass io.Discard.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		path, err := storage.ExpandPath(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "duckshoot",
	})
	return logger, closeFn, nil
}

// runtimeConfig returns the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Failure is reported and play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}

// openSound starts the speaker unless muted. Failure leaves the game silent.
func openSound(muted bool, logger *log.Logger) *audio.SoundPlayer {
	sound := audio.NewSoundPlayer(muted)
	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		logger.Warn("sound disabled", "err", err)
	}
	return sound
}

// currentPlayer names the local player for the scoreboard.
func currentPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
