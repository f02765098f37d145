package pacman

import (
	"fmt"
	"math"
	"strings"

	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// Visual characters for rendering. Every maze cell is cellW columns wide.
const (
	cellW = 2

	WallChar   = '█'
	DoorChar   = '─'
	DotChar    = '·'
	PowerChar  = '●'
	GhostChar  = 'ᗣ'
	EyesChar   = '"'
	LifeChar   = 'ᗧ'
	powerBlink = 15 // Ticks per power pellet blink phase
	hudRows    = 1
	footerRows = 1
)

// pacmanGlyphs maps the heading to a mouth-open glyph.
var pacmanGlyphs = map[core.Dir]rune{
	core.DirNone:  'ᗧ',
	core.DirRight: 'ᗧ',
	core.DirLeft:  'ᗤ',
	core.DirUp:    'ᗢ',
	core.DirDown:  'ᗜ',
}

// ghostColors gives each ghost its classic color.
var ghostColors = map[string]platformcore.Color{
	core.Blinky: platformcore.ColorRed,
	core.Pinky:  platformcore.ColorBrightMagenta,
	core.Inky:   platformcore.ColorCyan,
	core.Clyde:  platformcore.ColorOrange,
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCenteredColor(dst.Height()/2, "Screen too small!", platformcore.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.world == nil {
		dst.DrawTextCenteredColor(dst.Height()/2-1, "Cannot start Pac-Man", platformcore.ColorRed)
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		}
		return
	}

	view := platformcore.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-footerRows)
	ox, oy := g.origin(view)

	g.drawMaze(dst, view, ox, oy)
	if !g.world.Pacman().Dying() {
		g.drawGhosts(dst, view, ox, oy)
	}
	g.drawPacman(dst, view, ox, oy)
	g.drawHUD(dst)
	g.drawBanner(dst, view)
	g.drawFooter(dst)
}

// origin returns the screen position of maze cell (0, 0). A maze larger
// than the view scrolls to keep the player in sight.
func (g *Game) origin(view platformcore.Rect) (int, int) {
	m := g.world.Maze()
	area := platformcore.NewRect(0, 0, m.Width()*cellW, m.Height())
	placed := area.CenterIn(view)

	p := g.world.Pacman().Coord()
	fx, fy := area.Follow(p.X*cellW, p.Y, view.W, view.H)

	ox, oy := placed.X, placed.Y
	if area.W > view.W {
		ox = view.X - fx
	}
	if area.H > view.H {
		oy = view.Y - fy
	}
	return ox, oy
}

func (g *Game) drawMaze(dst *platformcore.Screen, view platformcore.Rect, ox, oy int) {
	m := g.world.Maze()
	powerOn := (g.tickCount/powerBlink)%2 == 0 || g.state != StatePlaying

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := m.CellAt(x, y)
			sx, sy := ox+x*cellW, oy+y

			switch {
			case c.IsWall():
				color := platformcore.ColorBlue
				if g.state == StateCleared && (g.countdown/10)%2 == 0 {
					color = platformcore.ColorBrightWhite
				}
				put(dst, view, sx, sy, WallChar, color)
				put(dst, view, sx+1, sy, WallChar, color)
			case c.IsDoor():
				put(dst, view, sx, sy, DoorChar, platformcore.ColorMagenta)
				put(dst, view, sx+1, sy, DoorChar, platformcore.ColorMagenta)
			default:
				p := c.Pickup()
				if p == nil {
					continue
				}
				if p.Kind == core.PickupPower {
					if powerOn {
						put(dst, view, sx, sy, PowerChar, platformcore.ColorBrightWhite)
					}
				} else {
					put(dst, view, sx, sy, DotChar, platformcore.ColorWhite)
				}
			}
		}
	}
}

func (g *Game) drawGhosts(dst *platformcore.Screen, view platformcore.Rect, ox, oy int) {
	for _, gh := range g.world.Ghosts() {
		sx, sy := screenPos(gh.Pos(), ox, oy)
		look := gh.Appearance()

		switch look.Look {
		case core.LookScore:
			text := fmt.Sprintf("%d", look.Score)
			for i, r := range text {
				put(dst, view, sx-len(text)/2+i+1, sy, r, platformcore.ColorBrightCyan)
			}
		case core.LookEyes:
			put(dst, view, sx, sy, EyesChar, platformcore.ColorBrightWhite)
		case core.LookFrightened:
			put(dst, view, sx, sy, GhostChar, platformcore.ColorBrightBlue)
		case core.LookFrightenedBlink:
			color := platformcore.ColorBrightBlue
			if (g.tickCount/8)%2 == 0 {
				color = platformcore.ColorBrightWhite
			}
			put(dst, view, sx, sy, GhostChar, color)
		default:
			color, ok := ghostColors[gh.Name()]
			if !ok {
				color = platformcore.ColorGreen
			}
			put(dst, view, sx, sy, GhostChar, color)
		}
	}
}

func (g *Game) drawPacman(dst *platformcore.Screen, view platformcore.Rect, ox, oy int) {
	p := g.world.Pacman()
	sx, sy := screenPos(p.Pos(), ox, oy)
	glyph, ok := pacmanGlyphs[p.Dir()]
	if !ok {
		glyph = LifeChar
	}
	put(dst, view, sx, sy, glyph, platformcore.ColorBrightYellow)
}

func (g *Game) drawHUD(dst *platformcore.Screen) {
	left := fmt.Sprintf("SCORE %d", g.score)
	dst.DrawTextColor(1, 0, left, platformcore.ColorBrightWhite)

	lives := strings.Repeat(string(LifeChar), max(g.lives-1, 0))
	right := fmt.Sprintf("LVL %d %s", g.level, lives)
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, platformcore.ColorBrightYellow)

	mid := g.Maze().Name
	if g.state == StatePlaying || g.state == StatePaused {
		mid += " · " + strings.ToUpper(g.world.GlobalMode().String())
	}
	dst.DrawTextCenteredColor(0, mid, platformcore.ColorGray)
}

func (g *Game) drawBanner(dst *platformcore.Screen, view platformcore.Rect) {
	y := view.Y + view.H/2
	switch g.state {
	case StateReady:
		dst.DrawTextCenteredColor(y, " READY! ", platformcore.ColorBrightYellow)
	case StatePaused:
		box := platformcore.NewRect(dst.Width()/2-8, y-1, 16, 3)
		dst.DrawRect(box, ' ')
		dst.DrawBoxColor(box, platformcore.ColorWhite)
		dst.DrawTextCenteredColor(y, "PAUSED", platformcore.ColorBrightWhite)
	case StateGameOver:
		dst.DrawTextCenteredColor(y, " GAME OVER ", platformcore.ColorBrightRed)
		dst.DrawTextCentered(y+1, fmt.Sprintf(" Score: %d ", g.score))
	case StateWon:
		dst.DrawTextCenteredColor(y, " ALL MAZES CLEARED! ", platformcore.ColorBrightGreen)
		dst.DrawTextCentered(y+1, fmt.Sprintf(" Score: %d ", g.score))
	}
}

func (g *Game) drawFooter(dst *platformcore.Screen) {
	help := "←↑↓→/WASD move  P pause  Q quit"
	if g.state == StateGameOver || g.state == StateWon {
		help = "R restart  Q quit"
	}
	dst.DrawTextCenteredColor(dst.Height()-1, help, platformcore.ColorGray)
}

// screenPos converts a continuous maze position to a screen cell. Horizontal
// motion is drawn at half-cell resolution.
func screenPos(p core.Vec, ox, oy int) (int, int) {
	x := int(math.Floor((p.X - 0.5) * cellW))
	y := int(math.Floor(p.Y))
	return ox + x, oy + y
}

// put draws r only inside the maze view, leaving the HUD untouched.
func put(dst *platformcore.Screen, view platformcore.Rect, x, y int, r rune, c platformcore.Color) {
	if !view.Contains(x, y) {
		return
	}
	dst.SetColor(x, y, r, c)
}
