package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/platform/tui"
	"github.com/vovakirdan/duckshoot/internal/registry"
	"github.com/vovakirdan/duckshoot/internal/storage"
)

var (
	flagScoresDifficulty  string
	flagScoresInteractive bool
	flagScoresClear       bool
	flagScoresExport      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and overall statistics.

Without --difficulty, scores from every preset are ranked together.
With --interactive, browse the full table with one tab per preset.
With --export, print every recorded round as YAML.
With --clear, delete every recorded round of the game.

Examples:
  duckshoot scores
  duckshoot scores --difficulty hard
  duckshoot scores -i
  duckshoot scores --export > scores.yaml
  duckshoot scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVarP(&flagScoresDifficulty, "difficulty", "d", "", "Only show scores for this preset")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().BoolVar(&flagScoresExport, "export", false, "Print all scores as YAML")
	scoresCmd.MarkFlagsMutuallyExclusive("interactive", "clear", "export")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'duckshoot list' to see available games)", gameID)
	}

	preset := ""
	if flagScoresDifficulty != "" {
		p, err := config.ParsePreset(flagScoresDifficulty)
		if err != nil {
			return err
		}
		preset = string(p)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresInteractive:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(gameID, store, width, height)

	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all %s scores.\n", game.Title())
		return nil

	case flagScoresExport:
		entries, err := store.AllScores(gameID)
		if err != nil {
			return err
		}
		return exportScores(out, entries, preset)
	}

	scores, err := store.TopScores(gameID, preset, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	best := 0
	if len(scores) > 0 {
		if best, err = store.HighScore(gameID, preset); err != nil {
			best = scores[0].Score
		}
	}

	writeScores(out, game.Title(), preset, scores, best)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	writeStats(out, stats)
	return nil
}

// writeScores prints a ranked score table.
func writeScores(w io.Writer, title, preset string, scores []storage.ScoreEntry, best int) {
	if preset != "" {
		title = fmt.Sprintf("%s (%s)", title, preset)
	}
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'duckshoot play' to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-12s  %-7s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Missed", "Preset", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-7s  %-6s  %-8s  %s\n", "----", "------", "-----", "------", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-12s  %-7d  %-6d  %-8s  %s\n",
			i+1, player, entry.Score, entry.Missed, entry.Preset, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
}

// writeStats prints totals over every preset. Nothing is printed before the first round.
func writeStats(w io.Writer, stats *storage.GameStats) {
	if stats == nil || stats.GamesCount == 0 {
		return
	}
	fmt.Fprintf(w, "All presets: %d rounds, best %d, average %.1f, %d ducks missed, last played %s\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalMissed,
		stats.LastPlayed.Format("2006-01-02 15:04"))
}

// exportedScore is one round in the YAML export.
type exportedScore struct {
	Player string    `yaml:"player"`
	Preset string    `yaml:"preset"`
	Score  int       `yaml:"score"`
	Missed int       `yaml:"missed"`
	Date   time.Time `yaml:"date"`
}

// exportScores writes every round, best first, optionally limited to one preset.
func exportScores(w io.Writer, entries []storage.ScoreEntry, preset string) error {
	rounds := make([]exportedScore, 0, len(entries))
	for _, e := range entries {
		if preset != "" && e.Preset != preset {
			continue
		}
		rounds = append(rounds, exportedScore{
			Player: e.Player,
			Preset: e.Preset,
			Score:  e.Score,
			Missed: e.Missed,
			Date:   e.CreatedAt,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rounds); err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	return enc.Close()
}
