package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("edges = %d,%d, want 6,5", r.Right(), r.Bottom())
	}
}

func TestRectCenterIn(t *testing.T) {
	tests := []struct {
		name  string
		inner Rect
		outer Rect
		want  Rect
	}{
		{"fits", NewRect(0, 0, 10, 4), NewRect(0, 1, 20, 10), NewRect(5, 4, 10, 4)},
		{"too wide", NewRect(0, 0, 30, 4), NewRect(0, 0, 20, 10), NewRect(0, 3, 30, 4)},
		{"exact", NewRect(7, 7, 20, 10), NewRect(0, 0, 20, 10), NewRect(0, 0, 20, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inner.CenterIn(tt.outer); got != tt.want {
				t.Errorf("CenterIn = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectFollow(t *testing.T) {
	world := NewRect(0, 0, 28, 30)

	tests := []struct {
		name   string
		x, y   int
		wx, wy int
	}{
		{"top-left", 1, 1, 0, 0},
		{"middle", 14, 15, 4, 10},
		{"bottom-right", 27, 29, 8, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := world.Follow(tt.x, tt.y, 20, 10)
			if x != tt.wx || y != tt.wy {
				t.Errorf("Follow = %d,%d, want %d,%d", x, y, tt.wx, tt.wy)
			}
		})
	}

	// A window larger than the area never scrolls.
	if x, y := world.Follow(27, 29, 40, 40); x != 0 || y != 0 {
		t.Errorf("oversized window = %d,%d, want 0,0", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
}
