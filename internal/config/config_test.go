package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := parsePacman(GetDefaultYAML("pacman"))
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPacmanConfig()) {
		t.Errorf("embedded defaults drifted from DefaultPacmanConfig:\n%+v\n%+v", cfg, DefaultPacmanConfig())
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no defaults")
	}
}

func TestLoadPacmanCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pacman.yaml")
	data := "gameplay:\n  lives: 7\nghosts:\n  frightened_seconds: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Gameplay.Lives)
	}
	if cfg.Ghosts.FrightenedTime() != 2500*time.Millisecond {
		t.Errorf("frightened time = %v, want 2.5s", cfg.Ghosts.FrightenedTime())
	}
	if cfg.Player.Speed != DefaultPacmanConfig().Player.Speed {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadPacmanErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPacman(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom file")
	}

	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "gameplay: [\n"},
		{"zero lives", "gameplay:\n  lives: 0\n"},
		{"bad mode", "schedule:\n  - {mode: panic, seconds: 3}\n"},
		{"bad clock", "debug:\n  clock: sundial\n"},
		{"bad ladder", "ghosts:\n  ladder: [200, 0]\n"},
		{"bad blink", "ghosts:\n  blink_at: 1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadPacman(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
		initial float64
	}{
		{DifficultyEasy, 5, true, 0.0},
		{DifficultyNormal, 3, true, 0.3},
		{DifficultyHard, 2, true, 0.7},
		{DifficultyFixed, 3, false, 0.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultPacmanConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %v, want 0", got)
	}
	if got := dm.Level(15000, 0); got != 0.5 {
		t.Errorf("Level halfway = %v, want 0.5", got)
	}
	if got := dm.Level(1_000_000, 0); got != 1 {
		t.Errorf("Level past max = %v, want 1", got)
	}

	if got := dm.Speed(8, 30000, 0); got != 10 {
		t.Errorf("Speed at max = %v, want 10", got)
	}
	if got := dm.FrightenedTime(5*time.Second, 30000, 0); got != 2*time.Second {
		t.Errorf("FrightenedTime at max = %v, want 2s", got)
	}
	if got := dm.HouseWait(4*time.Second, 30000, 0); got != 2*time.Second {
		t.Errorf("HouseWait at max = %v, want 2s", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.7)
	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(30000, 0); got != 0.7 {
		t.Errorf("fixed Level = %v, want 0.7", got)
	}
}

func TestFrightenedTimeFloor(t *testing.T) {
	cfg := DefaultPacmanConfig().Difficulty
	cfg.Scaling.FrightenedReduction = 1
	dm := NewDifficultyManager(cfg)
	if got := dm.FrightenedTime(5*time.Second, 30000, 0); got != time.Second {
		t.Errorf("FrightenedTime = %v, want the 1s floor", got)
	}
}
