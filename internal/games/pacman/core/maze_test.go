package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

var tunnelLayout = []string{
	"#########",
	"#o..e..o#",
	"###.-.###",
	"T..#2#..T",
	"#..###..#",
	"#...S...#",
	"#########",
}

func TestParseMaze(t *testing.T) {
	m, err := core.ParseMaze(tunnelLayout, core.DefaultMazeOptions())
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}

	if m.Width() != 9 || m.Height() != 7 {
		t.Errorf("size = %dx%d, want 9x7", m.Width(), m.Height())
	}
	if m.PlayerSpawn() != core.C(4, 5) {
		t.Errorf("player spawn = %v, want (4,5)", m.PlayerSpawn())
	}
	if m.HouseExit() != core.C(4, 1) {
		t.Errorf("house exit = %v, want (4,1)", m.HouseExit())
	}
	if spawn, ok := m.GhostSpawn(1); !ok || spawn != core.C(4, 3) {
		t.Errorf("ghost 1 spawn = %v %v, want (4,3)", spawn, ok)
	}
	if _, ok := m.GhostSpawn(0); ok {
		t.Error("layout has no outside ghost")
	}
	if !m.CellAt(4, 2).IsDoor() || !m.CellAt(4, 2).IsHouse() {
		t.Error("(4,2) should be the house door")
	}
	if m.PickupsLeft() != 22 {
		t.Errorf("PickupsLeft = %d, want 22", m.PickupsLeft())
	}
	if p := m.CellAt(1, 1).Pickup(); p == nil || p.Kind != core.PickupPower || p.Points != 50 {
		t.Errorf("(1,1) pickup = %+v, want power pellet", p)
	}
}

func TestNeighborWrapsOnTunnelRow(t *testing.T) {
	m, err := core.ParseMaze(tunnelLayout, core.DefaultMazeOptions())
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}

	left := m.CellAt(0, 3)
	if !left.IsTunnel() {
		t.Fatal("(0,3) should be a tunnel")
	}
	if n := left.Neighbor(core.DirLeft); n == nil || n.Coord() != core.C(8, 3) {
		t.Errorf("left of (0,3) = %v, want (8,3)", n)
	}
	if n := m.CellAt(4, 0).Neighbor(core.DirUp); n != nil {
		t.Errorf("above the top row should be nil, got %v", n.Coord())
	}

	opts := core.DefaultMazeOptions()
	opts.Wrap = false
	flat, err := core.ParseMaze(tunnelLayout, opts)
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}
	if n := flat.CellAt(0, 3).Neighbor(core.DirLeft); n != nil {
		t.Errorf("non-wrapping maze returned %v", n.Coord())
	}
}

func TestOneWayCells(t *testing.T) {
	layout := []string{
		"#######",
		"#.<e>.#",
		"###-###",
		"##h2h##",
		"#..S..#",
		"#######",
	}
	m, err := core.ParseMaze(layout, core.DefaultMazeOptions())
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}
	onlyLeft := m.CellAt(2, 1)
	if !onlyLeft.Allows(core.DirLeft) || onlyLeft.Allows(core.DirRight) {
		t.Error("(2,1) should only admit agents heading left")
	}
	onlyRight := m.CellAt(4, 1)
	if !onlyRight.Allows(core.DirRight) || onlyRight.Allows(core.DirLeft) {
		t.Error("(4,1) should only admit agents heading right")
	}
}

func TestParseMazeErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		want   error
	}{
		{"empty", nil, core.ErrEmptyLayout},
		{"ragged", []string{"###", "##"}, core.ErrRaggedLayout},
		{"no player", []string{"#e#", "#-#", "#h#"}, core.ErrNoPlayerSpawn},
		{"no exit", []string{"#S#", "#-#", "#h#"}, core.ErrNoHouseExit},
		{"no house", []string{"#Se#", "####"}, core.ErrNoHouse},
		{"unknown glyph", []string{"#S?#"}, core.ErrUnknownGlyph},
		{"two players", []string{"#SS#"}, core.ErrDuplicateGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.ParseMaze(tt.layout, core.DefaultMazeOptions())
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTakePickupIsAtomic(t *testing.T) {
	m, err := core.ParseMaze(tunnelLayout, core.DefaultMazeOptions())
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}
	c := m.CellAt(2, 1)
	if c.TakePickup() == nil {
		t.Fatal("expected a dot")
	}
	if c.TakePickup() != nil {
		t.Error("second take should return nil")
	}

	m.Restock()
	if c.Pickup() == nil {
		t.Error("Restock should put the dot back")
	}
}
