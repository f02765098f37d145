package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func newTestScoreboard(t *testing.T) ScoreboardModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{50, 200} {
		if _, err := store.SaveScore("fake", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := ScoreboardModel{
		modes: []registry.GameInfo{{ID: "fake", Title: "Fake"}, {ID: "other", Title: "Other"}},
		store: store,
		keys:  DefaultScoreboardKeyMap(),
		width: 80, height: 30,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func TestScoreboardRows(t *testing.T) {
	m := newTestScoreboard(t)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][1] != "200" || rows[0][2] != "100%" {
		t.Errorf("first row = %v, want the best score at 100%%", rows[0])
	}
	if rows[1][2] != "25%" {
		t.Errorf("second row share = %q, want 25%%", rows[1][2])
	}
	if !strings.Contains(m.View(), "2 games") {
		t.Error("view should include the stats line")
	}
}

func TestScoreboardCyclesModes(t *testing.T) {
	m := newTestScoreboard(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.mode != 1 || len(m.scores) != 0 {
		t.Fatalf("mode = %d scores = %d, want the empty second mode", m.mode, len(m.scores))
	}
	if !strings.Contains(m.View(), "No games recorded") {
		t.Error("an empty mode should say so")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.mode != 0 {
		t.Errorf("mode = %d, want wrap back to 0", m.mode)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
