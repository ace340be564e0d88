package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/platform/tui"
	"github.com/vovakirdan/duckshoot/internal/registry"
)

var (
	flagConfigPath string
	flagDifficulty string
	flagMute       bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Play a round in the terminal.

Controls:
  Mouse click  - Shoot
  S / R        - Start or restart a round
  Enter/Space  - Dismiss the game over dialog
  M            - Toggle sound
  Ctrl+S       - Save a screenshot
  Q / Ctrl+C   - Quit

Examples:
  duckshoot play
  duckshoot play --difficulty hard
  duckshoot play --config ./duckhunt.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that starts a round.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to a duckhunt.yaml override")
	cmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "normal", "Difficulty preset (easy, normal, hard, fixed)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the scoreboard (default: current user)")
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return currentPlayer()
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'duckshoot list' to see available games)", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.CreateConfigured(gameID, flagConfigPath, preset)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(flagMute, logger)
	defer sound.Close()

	err = tui.Run(game, runtimeConfig(width, height), tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Preset: preset,
		Player: playerName(),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
