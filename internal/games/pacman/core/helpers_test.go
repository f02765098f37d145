package core

import (
	"math/rand"
	"testing"
	"time"
)

// smallLayout has an outside ghost at (4,3), the house exit at (5,3), the
// door at (5,4) and three house ghosts on row 5.
var smallLayout = []string{
	"###########",
	"#o.......o#",
	"#.##.#.##.#",
	"#...1e....#",
	"#.###-###.#",
	"#.#h234h#.#",
	"#.#######.#",
	"#....S....#",
	"###########",
}

// openLayout is an open field with a tiny house in the bottom row.
var openLayout = []string{
	"#############",
	"#...........#",
	"#...........#",
	"#...........#",
	"#...........#",
	"#...........#",
	"#...........#",
	"#...........#",
	"#...........#",
	"#....Se.....#",
	"######-######",
	"#####h2h#####",
	"#############",
}

func mustMaze(t *testing.T, layout []string) *Maze {
	t.Helper()
	m, err := ParseMaze(layout, DefaultMazeOptions())
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}
	return m
}

func testClock() *TickClock {
	return NewTickClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func strict() *Invariants {
	return &Invariants{Strict: true}
}

func newTestGhost(t *testing.T, m *Maze, spec GhostSpec, clock Clock) *Ghost {
	t.Helper()
	return NewGhost(m, spec, DefaultGhostTuning(), clock, strict(), rand.New(rand.NewSource(7)))
}

// stepGhost advances the clock by dt and moves the ghost once.
func stepGhost(g *Ghost, clock *TickClock, ctx *TickContext) {
	clock.Advance(time.Duration(ctx.DT * float64(time.Second)))
	g.Move(ctx)
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
