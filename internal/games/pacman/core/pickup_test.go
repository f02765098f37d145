package core

import "testing"

func TestDispatcherConsumesOnce(t *testing.T) {
	m := mustMaze(t, smallLayout)
	d := NewDispatcher(testClock(), NewScoreLadder(nil))
	cell := m.CellAt(2, 1)

	eff, ok := d.Consume(cell, cell.Coord().Center(), 4)
	if !ok {
		t.Fatal("expected a dot to be consumed")
	}
	if eff.Kind != PickupDot || eff.Points != 10 {
		t.Errorf("effect = %+v, want dot worth 10", eff)
	}
	if eff.Command.Kind != CommandNone {
		t.Errorf("dot should not issue a command, got %v", eff.Command.Kind)
	}

	for i := 0; i < 3; i++ {
		if _, ok := d.Consume(cell, cell.Coord().Center(), 4); ok {
			t.Fatal("a consumed cell must not dispatch again")
		}
	}
	if n := len(d.History()); n != 1 {
		t.Errorf("len(History) = %d, want 1", n)
	}
}

func TestDispatcherPowerPellet(t *testing.T) {
	m := mustMaze(t, smallLayout)
	ladder := NewScoreLadder(nil)
	d := NewDispatcher(testClock(), ladder)

	ladder.Advance()
	ladder.Advance()

	eff, ok := d.Consume(m.CellAt(1, 1), Vec{1.5, 1.5}, 4)
	if !ok {
		t.Fatal("expected the power pellet to be consumed")
	}
	if eff.Kind != PickupPower || eff.Points != 50 {
		t.Errorf("effect = %+v, want power worth 50", eff)
	}
	if eff.Command.Kind != CommandFrightenAll {
		t.Error("power pellet should frighten every ghost")
	}
	if ladder.Current() != 200 {
		t.Errorf("ladder = %d after power pellet, want 200", ladder.Current())
	}
	if d.ActivePowerPellets() != 1 {
		t.Errorf("ActivePowerPellets = %d, want 1", d.ActivePowerPellets())
	}

	h := d.History()
	if len(h) != 1 || h[0].GhostCount != 4 || h[0].PlayerPos != (Vec{1.5, 1.5}) {
		t.Errorf("history = %+v", h)
	}
}

func TestScoreLadderProgression(t *testing.T) {
	m := mustMaze(t, smallLayout)
	ladder := NewScoreLadder(nil)
	d := NewDispatcher(testClock(), ladder)

	d.Consume(m.CellAt(1, 1), Vec{}, 4)
	if ladder.Current() != 200 {
		t.Fatalf("first ghost worth %d, want 200", ladder.Current())
	}
	d.GhostEaten()
	if ladder.Current() != 400 {
		t.Fatalf("second ghost worth %d, want 400", ladder.Current())
	}
	d.GhostEaten()
	d.GhostEaten()
	d.GhostEaten()
	if ladder.Current() != 1600 {
		t.Errorf("ladder should cap at 1600, got %d", ladder.Current())
	}

	d.Consume(m.CellAt(9, 1), Vec{}, 4)
	if ladder.Current() != 200 {
		t.Errorf("ladder after a fresh power pellet = %d, want 200", ladder.Current())
	}
}

func TestEmptyCellDispatchesNothing(t *testing.T) {
	m := mustMaze(t, smallLayout)
	d := NewDispatcher(testClock(), NewScoreLadder(nil))
	if _, ok := d.Consume(m.CellAt(5, 3), Vec{}, 0); ok {
		t.Error("exit cell holds no pickup")
	}
	if _, ok := d.Consume(nil, Vec{}, 0); ok {
		t.Error("nil cell holds no pickup")
	}
}
