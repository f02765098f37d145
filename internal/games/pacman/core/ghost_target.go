package core

// Chase targets. Each returns the cell a ghost steers toward in chase mode.

// ChaseDirect targets the player's cell.
func ChaseDirect(_ *Ghost, ctx *TickContext) Coord {
	return ctx.Player.Cell
}

// ChaseAhead targets n cells in front of the player.
func ChaseAhead(n int) ChaseFunc {
	return func(_ *Ghost, ctx *TickContext) Coord {
		return ctx.Player.Cell.Step(ctx.Player.Dir, n)
	}
}

// ChaseFlank targets the point mirrored through two cells ahead of the player
// from the leading ghost, which pincers the player together with it.
func ChaseFlank(g *Ghost, ctx *TickContext) Coord {
	pivot := ctx.Player.Cell.Step(ctx.Player.Dir, 2)
	if !ctx.HasLeader {
		return pivot
	}
	return Coord{
		X: 2*pivot.X - ctx.Leader.X,
		Y: 2*pivot.Y - ctx.Leader.Y,
	}
}

// ChaseShy chases the player only while farther than radius cells away, and
// heads for its scatter corner otherwise.
func ChaseShy(radius int) ChaseFunc {
	return func(g *Ghost, ctx *TickContext) Coord {
		if g.Coord().DistSq(ctx.Player.Cell) > radius*radius {
			return ctx.Player.Cell
		}
		return g.spec.Scatter
	}
}

// target resolves the steering target for the active mode.
func (g *Ghost) target(ctx *TickContext) Coord {
	switch g.Mode() {
	case ModeChase:
		if g.spec.Chase != nil {
			return g.spec.Chase(g, ctx)
		}
		return ctx.Player.Cell
	case ModeScatter:
		return g.spec.Scatter
	default:
		return g.deadTarget
	}
}

// canGo reports whether a ghost standing on from may step toward d.
// Neighbors off the grid are never legal. Only dead ghosts may enter the house.
func (g *Ghost) canGo(from *Cell, d Dir) bool {
	if from == nil {
		return false
	}
	return g.passable(from.Neighbor(d), d)
}

func (g *Ghost) passable(next *Cell, d Dir) bool {
	if next == nil || !next.Allows(d) {
		return false
	}
	return g.Mode() == ModeDead || !next.IsHouse()
}

// nextDirection plans the turn to take at the center of the cell after c,
// reached by heading. The reverse of heading is never chosen unless it is the
// only legal move.
func (g *Ghost) nextDirection(c *Cell, heading Dir) Dir {
	if heading == DirNone {
		heading = g.actor.Dir
	}
	from := c.Neighbor(heading)
	if from == nil {
		return heading
	}
	back := heading.Opposite()

	if g.Mode() == ModeFrightened {
		start := g.rng.Intn(len(clockwise))
		for i := range clockwise {
			d := clockwise[(start+i)%len(clockwise)]
			if d != back && g.canGo(from, d) {
				return d
			}
		}
		return g.reverseOrKeep(from, heading)
	}

	target := g.target(g.ctx)
	best, bestDist := DirNone, 0
	for _, d := range targetOrder {
		if d == back || !g.canGo(from, d) {
			continue
		}
		dist := from.Neighbor(d).Coord().DistSq(target)
		if best == DirNone || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if best != DirNone {
		return best
	}
	return g.reverseOrKeep(from, heading)
}

func (g *Ghost) reverseOrKeep(from *Cell, heading Dir) Dir {
	if g.canGo(from, heading.Opposite()) {
		return heading.Opposite()
	}
	g.inv.Violate("ghost has no legal direction", "ghost", g.spec.Name, "cell", from.Coord())
	return heading
}
