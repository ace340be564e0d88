package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckshoot/internal/registry"
	"github.com/vovakirdan/duckshoot/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game with how often it has been played
and its best score, when the scores database is available.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, _ []string) {
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}
	writeGameList(cmd.OutOrStdout(), registry.List(), stats)
}

func writeGameList(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rounds", "Best")
	fmt.Fprintf(w, "  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "----")
	for _, g := range games {
		rounds, best := 0, 0
		if s, ok := stats[g.ID]; ok {
			rounds, best = s.GamesCount, s.HighScore
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %-6d  %d\n", maxIDLen, g.ID, maxTitleLen, g.Title, rounds, best)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'duckshoot play <id>' to play a game.")
}
