package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, rec ScoreRecord) {
	t.Helper()
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Score: 7})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("duckhunt", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("high score after reopen = %d, want 7", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Preset: "normal", Player: "alice", Score: 12, Missed: 10})
	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Preset: "normal", Player: "bob", Score: 5, Missed: 10})
	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Preset: "hard", Player: "carol", Score: 20, Missed: 5})
	mustSave(t, store, ScoreRecord{GameID: "other", Score: 99})

	// All presets
	scores, err := store.TopScores("duckhunt", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 12 || scores[2].Score != 5 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}

	top := scores[0]
	if top.Player != "carol" || top.Preset != "hard" || top.Missed != 5 || top.GameID != "duckhunt" {
		t.Errorf("Top entry fields wrong: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	// One preset
	normal, err := store.TopScores("duckhunt", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(normal) != 2 || normal[0].Player != "alice" {
		t.Errorf("normal preset scores = %+v", normal)
	}
}

func TestStoreDefaultPreset(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Score: 3})

	scores, err := store.TopScores("duckhunt", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("empty preset should be stored as normal, got %d rows", len(scores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		mustSave(t, store, ScoreRecord{GameID: "test", Score: (i + 1) * 100})
	}

	// Request only top 3
	scores, err := store.TopScores("test", "", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("test", "", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("duckhunt", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Preset: "easy", Score: 100})
	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Preset: "hard", Score: 300})
	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Preset: "easy", Score: 200})

	tests := []struct {
		preset string
		want   int
	}{
		{"", 300},
		{"easy", 200},
		{"hard", 300},
		{"fixed", 0},
	}
	for _, tt := range tests {
		high, err := store.HighScore("duckhunt", tt.preset)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tt.preset, err)
		}
		if high != tt.want {
			t.Errorf("HighScore(%q) = %d, want %d", tt.preset, high, tt.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Score: 100})
	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Score: 200})
	mustSave(t, store, ScoreRecord{GameID: "other", Score: 300})

	// Clear only duckhunt scores
	if err := store.ClearScores("duckhunt"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("duckhunt", "", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 duckhunt scores after clear, got %d", len(scores))
	}

	// Other games are not affected
	other, _ := store.TopScores("other", "", 10)
	if len(other) != 1 {
		t.Errorf("Other scores should not be affected by clearing duckhunt")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, ScoreRecord{GameID: "test", Score: i * 10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected highest first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("duckhunt")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for unplayed game = %+v", empty)
	}

	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Score: 10, Missed: 10})
	mustSave(t, store, ScoreRecord{GameID: "duckhunt", Score: 20, Missed: 10})
	mustSave(t, store, ScoreRecord{GameID: "other", Score: 1, Missed: 3})

	stats, err := store.GetGameStats("duckhunt")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.TotalScore != 30 || stats.TotalMissed != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 15 {
		t.Errorf("AvgScore = %v, want 15", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["other"].TotalMissed != 3 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.duckshoot/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".duckshoot", "scores.db"); got != want {
		t.Errorf("ExpandPath = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
