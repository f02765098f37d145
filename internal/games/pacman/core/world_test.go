package core

import (
	"reflect"
	"testing"
	"time"
)

// powerLayout puts the player between two power pellets with every ghost
// locked in the house.
var powerLayout = []string{
	"###########",
	"#....e....#",
	"#.###-###.#",
	"#.#h234h#.#",
	"#.#######.#",
	"#...oSo...#",
	"###########",
}

func newTestWorld(t *testing.T, layout []string, cfg WorldConfig) *World {
	t.Helper()
	m := mustMaze(t, layout)
	w, err := NewWorld(m, cfg, testClock(), strict())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestWorldDeterminism(t *testing.T) {
	script := func(tick int) Dir {
		switch {
		case tick < 90:
			return DirLeft
		case tick < 200:
			return DirUp
		case tick < 400:
			return DirRight
		default:
			return DirDown
		}
	}

	run := func() ([]WorldSnapshot, []Event) {
		w := newTestWorld(t, smallLayout, DefaultWorldConfig())
		var snaps []WorldSnapshot
		var events []Event
		for i := 0; i < 900; i++ {
			w.Tick(script(i))
			if i%50 == 0 {
				snaps = append(snaps, w.Snapshot())
			}
			events = append(events, w.Drain()...)
		}
		return snaps, events
	}

	snaps1, events1 := run()
	snaps2, events2 := run()

	if !reflect.DeepEqual(snaps1, snaps2) {
		t.Error("snapshots differ between identical runs")
	}
	if len(events1) != len(events2) {
		t.Fatalf("event counts differ: %d vs %d", len(events1), len(events2))
	}
	for i := range events1 {
		if events1[i].Kind != events2[i].Kind || events1[i].Ghost != events2[i].Ghost {
			t.Fatalf("event %d differs: %+v vs %+v", i, events1[i], events2[i])
		}
	}
}

func TestWorldGhostsFromMaze(t *testing.T) {
	w := newTestWorld(t, smallLayout, DefaultWorldConfig())
	names := []string{Blinky, Pinky, Inky, Clyde}
	if len(w.Ghosts()) != len(names) {
		t.Fatalf("ghosts = %d, want %d", len(w.Ghosts()), len(names))
	}
	for i, g := range w.Ghosts() {
		if g.Name() != names[i] {
			t.Errorf("ghost %d = %s, want %s", i, g.Name(), names[i])
		}
	}
	if w.Ghosts()[0].Mode() != ModeScatter {
		t.Errorf("blinky starts in %v, want scatter", w.Ghosts()[0].Mode())
	}
	for _, g := range w.Ghosts()[1:] {
		if g.Mode() != ModeHouse {
			t.Errorf("%s starts in %v, want house", g.Name(), g.Mode())
		}
	}
}

func lockedGhosts(m *Maze) []GhostSpec {
	specs := DefaultGhostSpecs(m, time.Minute)
	for i := range specs {
		specs[i].Wait = time.Minute
	}
	return specs
}

func TestWorldPowerPelletLatchesHouseGhosts(t *testing.T) {
	m := mustMaze(t, powerLayout)
	cfg := DefaultWorldConfig()
	cfg.Specs = lockedGhosts(m)
	w, err := NewWorld(m, cfg, testClock(), strict())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	for i := 0; i < 10; i++ {
		w.Tick(DirLeft)
	}
	evs := w.Drain()

	if countEvents(evs, EventPowerEaten) != 1 {
		t.Fatalf("events = %v, want one power pellet", evs)
	}
	if n := countEvents(evs, EventFrightenedEntered); n != 3 {
		t.Errorf("frightened_entered = %d, want 3", n)
	}
	for _, g := range w.Ghosts() {
		if g.Mode() != ModeHouse || !g.Latched() {
			t.Errorf("%s: mode=%v latched=%v, want latched in house", g.Name(), g.Mode(), g.Latched())
		}
	}
	if w.Pacman().FrightenedGhosts() != 3 {
		t.Errorf("pacman sees %d frightened ghosts, want 3", w.Pacman().FrightenedGhosts())
	}
	if !w.schedule.Paused() {
		t.Error("schedule should hold while ghosts are frightened")
	}

	for i := 0; i < 6*60; i++ {
		w.Tick(DirNone)
	}
	evs = w.Drain()
	if n := countEvents(evs, EventFrightenedExited); n != 3 {
		t.Errorf("frightened_exited = %d, want 3", n)
	}
	if w.Pacman().FrightenedGhosts() != 0 {
		t.Errorf("pacman sees %d frightened ghosts, want 0", w.Pacman().FrightenedGhosts())
	}
	if w.schedule.Paused() {
		t.Error("schedule should run again once no ghost is frightened")
	}
}

func TestWorldPauseStopsTicks(t *testing.T) {
	w := newTestWorld(t, smallLayout, DefaultWorldConfig())
	w.Tick(DirLeft)
	before := w.Snapshot()

	w.Pause()
	w.Pause()
	for i := 0; i < 30; i++ {
		w.Tick(DirLeft)
	}
	if !reflect.DeepEqual(before, w.Snapshot()) {
		t.Error("paused world changed state")
	}

	w.Resume()
	w.Tick(DirLeft)
	if w.TickCount() != before.Tick+1 {
		t.Errorf("tick = %d, want %d", w.TickCount(), before.Tick+1)
	}
}

func TestWorldResumeKeepsAgentsFrozenWhileDying(t *testing.T) {
	w := newTestWorld(t, smallLayout, DefaultWorldConfig())
	w.Tick(DirLeft)

	w.events.Emit(Event{Kind: EventPlayerEaten, Ghost: Blinky})
	w.drain(nil)
	if !w.Pacman().Dying() {
		t.Fatal("player should be dying")
	}

	w.Pause()
	w.Resume()
	if !w.schedule.Paused() {
		t.Error("schedule resumed during the death spin")
	}
	for _, g := range w.Ghosts() {
		for _, tm := range g.timers() {
			if !tm.Paused() {
				t.Errorf("%s timer resumed during the death spin", g.Name())
			}
		}
	}

	for i := 0; i < 600 && w.Pacman().Dying(); i++ {
		w.Tick(DirNone)
	}
	if w.Pacman().Dying() {
		t.Fatal("death spin never finished")
	}
	if w.schedule.Paused() {
		t.Error("schedule should run again after the round reset")
	}
}

func TestWorldLevelCleared(t *testing.T) {
	layout := []string{
		"#########",
		"#...e.. #",
		"#.##-##.#",
		"#.#h2h#.#",
		"#.#####.#",
		"#   S   #",
		"#########",
	}
	m := mustMaze(t, layout)
	cfg := DefaultWorldConfig()
	cfg.Specs = lockedGhosts(m)
	w, err := NewWorld(m, cfg, testClock(), strict())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	// Only the player remains active; walk the loop until every dot is gone.
	route := []Dir{DirLeft, DirUp, DirRight, DirDown}
	for i := 0; i < 20*60 && !w.Cleared(); i++ {
		w.Tick(route[(i/90)%len(route)])
	}
	if !w.Cleared() {
		t.Fatalf("level not cleared, %d pickups left", m.PickupsLeft())
	}
	if countEvents(w.Drain(), EventLevelCleared) != 1 {
		t.Error("expected one level_cleared event")
	}

	w.ResetLevel()
	if w.Cleared() || m.PickupsLeft() == 0 {
		t.Error("ResetLevel should restock the maze")
	}
}
