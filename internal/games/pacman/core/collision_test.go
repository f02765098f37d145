package core

import "testing"

func TestCollides(t *testing.T) {
	m := mustMaze(t, openLayout)
	at := func(x, y int) *Cell { return m.CellAt(x, y) }

	tests := []struct {
		name string
		a, b Contact
		want bool
	}{
		{"same cell", Contact{at(3, 3), DirLeft}, Contact{at(3, 3), DirUp}, true},
		{"same cell stopped", Contact{at(3, 3), DirNone}, Contact{at(3, 3), DirNone}, true},
		{"head on", Contact{at(3, 3), DirRight}, Contact{at(4, 3), DirLeft}, true},
		{"head on vertical", Contact{at(3, 3), DirDown}, Contact{at(3, 4), DirUp}, true},
		{"adjacent same heading", Contact{at(3, 3), DirRight}, Contact{at(4, 3), DirRight}, false},
		{"adjacent moving apart", Contact{at(3, 3), DirLeft}, Contact{at(4, 3), DirRight}, false},
		{"far apart", Contact{at(1, 1), DirRight}, Contact{at(5, 5), DirLeft}, false},
		{"nil cell", Contact{nil, DirRight}, Contact{at(4, 3), DirLeft}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Collides(a, b) = %v, want %v", got, tt.want)
			}
			if got := Collides(tt.b, tt.a); got != tt.want {
				t.Errorf("Collides(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	m := mustMaze(t, openLayout)
	ghost := Contact{m.CellAt(3, 3), DirRight}
	player := Contact{m.CellAt(4, 3), DirLeft}

	tests := []struct {
		mode Mode
		want Outcome
	}{
		{ModeFrightened, OutcomeGhostEaten},
		{ModeChase, OutcomePlayerEaten},
		{ModeScatter, OutcomePlayerEaten},
		{ModeHouse, OutcomePlayerEaten},
		{ModeDead, OutcomeNone},
	}
	for _, tt := range tests {
		if got := Classify(ghost, player, tt.mode); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}

	apart := Contact{m.CellAt(8, 8), DirUp}
	if got := Classify(apart, player, ModeChase); got != OutcomeNone {
		t.Errorf("Classify without contact = %v, want none", got)
	}
}

func TestCollisionLogSkipsNone(t *testing.T) {
	clock := testClock()
	l := NewCollisionLog(clock)
	l.Record(OutcomeNone, ModeChase, C(1, 1), C(1, 1))
	l.Record(OutcomePlayerEaten, ModeChase, C(1, 1), C(1, 1))

	h := l.History()
	if len(h) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(h))
	}
	if h[0].Outcome != OutcomePlayerEaten || h[0].GhostMode != ModeChase {
		t.Errorf("record = %+v", h[0])
	}
	if !h[0].At.Equal(clock.Now()) {
		t.Errorf("record time = %v, want %v", h[0].At, clock.Now())
	}

	l.Clear()
	if len(l.History()) != 0 {
		t.Error("history should be empty after Clear")
	}
}
