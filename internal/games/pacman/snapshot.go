package pacman

// Snapshot contains the observable game state for determinism tests.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	Level       int
	MazeID      string
	State       string
	PlayerX     int
	PlayerY     int
	PlayerDir   int
	GlobalMode  int
	PickupsLeft int

	// Each ghost is 4 ints: X, Y, Mode, Latched
	GhostCount int
	GhostData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tickCount,
		Score:  g.score,
		Lives:  g.lives,
		Level:  g.level,
		MazeID: g.Maze().ID,
		State:  g.state,
	}
	if g.world == nil {
		return snap
	}

	ws := g.world.Snapshot()
	snap.PlayerX = ws.PlayerCell.X
	snap.PlayerY = ws.PlayerCell.Y
	snap.PlayerDir = int(ws.PlayerDir)
	snap.GlobalMode = int(ws.GlobalMode)
	snap.PickupsLeft = ws.PickupsLeft

	snap.GhostCount = len(ws.Ghosts)
	snap.GhostData = make([]int, 0, len(ws.Ghosts)*4)
	for _, gs := range ws.Ghosts {
		latched := 0
		if gs.Latched {
			latched = 1
		}
		snap.GhostData = append(snap.GhostData, gs.Cell.X, gs.Cell.Y, int(gs.Mode), latched)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerDir)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GlobalMode)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PickupsLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GhostCount)  //#nosec G115 -- hash computation

	for _, v := range snap.GhostData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for i := 0; i < len(snap.MazeID); i++ {
		h = h*31 + uint64(snap.MazeID[i])
	}
	for i := 0; i < len(snap.State); i++ {
		h = h*31 + uint64(snap.State[i])
	}
	return h
}
