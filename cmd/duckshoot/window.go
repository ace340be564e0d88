package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/games/duckhunt"
	"github.com/vovakirdan/duckshoot/internal/platform/window"
	"github.com/vovakirdan/duckshoot/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x630 window with the control bar above the playfield.

Controls:
  Mouse click  - Shoot, press Start, dismiss the dialog
  S / R        - Start or restart a round
  Enter/Space  - Dismiss the game over dialog
  Q / Esc      - Close the window

Examples:
  duckshoot window
  duckshoot window --difficulty easy --mute`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := registry.CreateConfigured(defaultGameID, flagConfigPath, preset)
	if err != nil {
		return err
	}
	game, ok := g.(*duckhunt.Game)
	if !ok {
		return fmt.Errorf("game %q cannot run in a window", defaultGameID)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(flagMute, logger)
	defer sound.Close()

	err = window.Run(game, runtimeConfig(0, 0), window.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Preset: preset,
		Player: playerName(),
	})
	if err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
