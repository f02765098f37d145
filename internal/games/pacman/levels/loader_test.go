package levels_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

const tinyMaze = `id: "00-tiny"
name: "Tiny"
wrap: false
scatter:
  blinky: {x: 9, y: -1}
layout: |
  #########
  #o..e..o#
  #.##-##.#
  #.#h2h#.#
  #.#####.#
  #..1S...#
  #########
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestEmbeddedMazes(t *testing.T) {
	lvls, err := levels.Embedded()
	if err != nil {
		t.Fatalf("Embedded failed: %v", err)
	}
	if len(lvls) < 2 {
		t.Fatalf("expected at least 2 embedded mazes, got %d", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}

	classic, err := levels.Find(lvls, "01-classic")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	m, err := classic.Maze(core.DefaultMazeOptions())
	if err != nil {
		t.Fatalf("Maze failed: %v", err)
	}
	if m.Width() != 28 || m.Height() != 30 {
		t.Errorf("classic size = %dx%d, want 28x30", m.Width(), m.Height())
	}
	if !m.Wraps() {
		t.Error("classic maze should wrap through the tunnel")
	}
	if classic.Scatter[core.Blinky] != core.C(25, -3) {
		t.Errorf("blinky scatter = %v, want (25,-3)", classic.Scatter[core.Blinky])
	}
}

func TestEmbeddedMazesRun(t *testing.T) {
	lvls, err := levels.Embedded()
	if err != nil {
		t.Fatalf("Embedded failed: %v", err)
	}

	route := []core.Dir{core.DirLeft, core.DirUp, core.DirRight, core.DirDown}
	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			m, err := lvl.Maze(core.DefaultMazeOptions())
			if err != nil {
				t.Fatalf("Maze failed: %v", err)
			}
			cfg := core.DefaultWorldConfig()
			cfg.Specs = lvl.GhostSpecs(m, cfg.Wait)
			if len(cfg.Specs) != 4 {
				t.Fatalf("ghosts = %d, want 4", len(cfg.Specs))
			}

			clock := core.NewTickClock(time.Unix(0, 0))
			w, err := core.NewWorld(m, cfg, clock, &core.Invariants{Strict: true})
			if err != nil {
				t.Fatalf("NewWorld failed: %v", err)
			}
			for i := 0; i < 30*60; i++ {
				w.Tick(route[(i/45)%len(route)])
			}
			if w.TickCount() == 0 {
				t.Error("world did not advance")
			}
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.yaml", tinyMaze)
	writeFile(t, dir, "broken.yaml", "id: broken\nlayout: |\n  ###\n  #?#\n")
	writeFile(t, dir, "notes.txt", "ignored")

	loader := levels.NewLoader(dir)
	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 1 {
		t.Fatalf("expected 1 valid level, got %d", len(lvls))
	}

	lvl := lvls[0]
	if lvl.ID != "00-tiny" || lvl.Name != "Tiny" {
		t.Errorf("level = %q %q", lvl.ID, lvl.Name)
	}
	if lvl.Wrap {
		t.Error("wrap should be disabled")
	}
	if len(lvl.Layout) != 7 {
		t.Errorf("layout rows = %d, want 7", len(lvl.Layout))
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.yaml", tinyMaze)

	loader := levels.NewLoader(dir)
	if _, err := loader.LoadByID("00-tiny"); err != nil {
		t.Errorf("LoadByID failed: %v", err)
	}
	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected an error for an unknown id")
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "00-tiny" {
		t.Errorf("ids = %v", ids)
	}
}

func TestAllMergesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.yaml", tinyMaze)

	lvls, err := levels.All(dir)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if lvls[0].ID != "00-tiny" {
		t.Errorf("first level = %s, want 00-tiny", lvls[0].ID)
	}

	missing, err := levels.All(filepath.Join(dir, "nope"))
	if err != nil {
		t.Fatalf("All with a missing dir failed: %v", err)
	}
	embedded, _ := levels.Embedded()
	if len(missing) != len(embedded) {
		t.Errorf("missing dir should yield the embedded set")
	}
}

func TestLevelGhostSpecsApplyScatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.yaml", tinyMaze)
	lvl, err := levels.NewLoader(dir).LoadByID("00-tiny")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	m, err := lvl.Maze(core.DefaultMazeOptions())
	if err != nil {
		t.Fatalf("Maze failed: %v", err)
	}

	specs := lvl.GhostSpecs(m, time.Second)
	if len(specs) != 2 {
		t.Fatalf("ghosts = %d, want 2", len(specs))
	}
	if specs[0].Name != core.Blinky || specs[0].Scatter != core.C(9, -1) {
		t.Errorf("blinky = %+v", specs[0])
	}
}
