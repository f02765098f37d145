package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("pacman", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("pacman", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("pacman", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("pacman_endless", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for pacman
	scores, err := store.TopScores("pacman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for pacman_endless
	endlessScores, err := store.TopScores("pacman_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
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
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("pacman", 100)
	store.SaveScore("pacman", 300)
	store.SaveScore("pacman", 200)

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("pacman", 100)
	store.SaveScore("pacman", 200)
	store.SaveScore("pacman_endless", 300)

	// Clear only classic scores
	err = store.ClearScores("pacman")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Classic should be empty
	classicScores, _ := store.TopScores("pacman", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	// Endless should still have scores
	endlessScores, _ := store.TopScores("pacman_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreDiagnosticsSessions(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	first := []core.Diagnostic{
		{Kind: "collision", Ghost: "blinky", Mode: "frightened", PlayerCell: "(3,4)", GhostCell: "(3,4)", Detail: "ghost eaten", At: at},
		{Kind: "effect", Detail: "power pellet", PlayerCell: "(1,1)", At: at.Add(time.Second)},
	}
	second := []core.Diagnostic{
		{Kind: "collision", Ghost: "pinky", Mode: "chase", Detail: "player eaten", At: at.Add(time.Minute)},
	}

	s1, err := store.SaveDiagnostics("pacman", first)
	if err != nil {
		t.Fatalf("SaveDiagnostics() failed: %v", err)
	}
	s2, err := store.SaveDiagnostics("pacman", second)
	if err != nil {
		t.Fatalf("SaveDiagnostics() failed: %v", err)
	}
	if s1 != 1 || s2 != 2 {
		t.Errorf("sessions = %d, %d, want 1, 2", s1, s2)
	}

	latest, err := store.RecentDiagnostics("pacman", 1)
	if err != nil {
		t.Fatalf("RecentDiagnostics() failed: %v", err)
	}
	if len(latest) != 1 || latest[0].Ghost != "pinky" || latest[0].Session != 2 {
		t.Fatalf("latest session = %+v", latest)
	}

	all, err := store.RecentDiagnostics("pacman", 5)
	if err != nil {
		t.Fatalf("RecentDiagnostics() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[1].Detail != "ghost eaten" || all[2].Detail != "power pellet" {
		t.Errorf("records out of journal order: %q, %q", all[1].Detail, all[2].Detail)
	}
	if !all[1].At.Equal(at) {
		t.Errorf("At = %v, want %v", all[1].At, at)
	}
	if all[1].Mode != "frightened" || all[1].PlayerCell != "(3,4)" {
		t.Errorf("record fields lost: %+v", all[1])
	}
}

func TestStoreDiagnosticsPerGame(t *testing.T) {
	store := openTestStore(t)

	if s, err := store.SaveDiagnostics("pacman", nil); err != nil || s != 0 {
		t.Errorf("empty save = %d, %v, want 0, nil", s, err)
	}

	store.SaveDiagnostics("pacman", []core.Diagnostic{{Kind: "effect", At: time.Now()}})
	s, err := store.SaveDiagnostics("pacman_endless", []core.Diagnostic{{Kind: "effect", At: time.Now()}})
	if err != nil {
		t.Fatalf("SaveDiagnostics() failed: %v", err)
	}
	if s != 1 {
		t.Errorf("sessions are numbered per game, got %d", s)
	}

	if err := store.ClearDiagnostics("pacman"); err != nil {
		t.Fatalf("ClearDiagnostics() failed: %v", err)
	}
	left, _ := store.RecentDiagnostics("pacman", 10)
	if len(left) != 0 {
		t.Errorf("expected no pacman diagnostics, got %d", len(left))
	}
	other, _ := store.RecentDiagnostics("pacman_endless", 10)
	if len(other) != 1 {
		t.Errorf("other game diagnostics should survive, got %d", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("pacman", 100)
	store.SaveScore("pacman", 300)

	stats, err = store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
}
