package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play and browse scores",
	Long: `Start in interactive menu mode.

After a round you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  B / Esc      - Back to the menu (between rounds)
  Q            - Quit

Examples:
  duckshoot menu
  duckshoot menu --fps 30
  duckshoot menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

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

	err = tui.RunSession(tui.SessionOptions{
		GameID:     defaultGameID,
		ConfigPath: flagConfigPath,
		Store:      store,
		Sound:      sound,
		Logger:     logger,
		Player:     playerName(),
		Preset:     preset,
	}, runtimeConfig(width, height))
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
