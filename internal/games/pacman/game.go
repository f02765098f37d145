// Package pacman provides the Pac-Man game for the arcade platform.
// The simulation lives in the core subpackage; this package adds lives,
// levels, scoring and rendering on top of it.
package pacman

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/config"
	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Game states
const (
	StateReady    = "ready"    // Round about to start, "READY!" shown
	StatePlaying  = "playing"  // World ticking
	StateCleared  = "cleared"  // Maze empty, short pause before the next one
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateWon      = "won"      // Every maze cleared (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play each maze once, win at the end
	ModeEndless                  // Cycle mazes forever, ghosts speed up with score
)

// Minimum screen size for a playable view.
const (
	minScreenW = 24
	minScreenH = 10
)

// Package-level settings applied at the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	mazeDir          string
	startMaze        string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetMazeDir adds a directory of maze files on top of the embedded set.
func SetMazeDir(dir string) {
	mazeDir = dir
}

// SetStartMaze selects the maze to start from by ID.
func SetStartMaze(id string) {
	startMaze = id
}

// SetLogger routes game and invariant logging. Nil discards it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
	registry.Register("pacman_endless", func() registry.Game {
		return NewEndless()
	})
}

// Game implements Pac-Man on top of the core world.
type Game struct {
	mode GameMode

	// Configuration
	runtime    platformcore.RuntimeConfig
	cfg        config.PacmanConfig
	difficulty *config.DifficultyManager
	log        *log.Logger

	// Mazes
	mazes     []levels.Level
	mazeIndex int
	cycle     int // Completed passes over the maze list (endless mode)

	// Simulation
	clock core.Clock
	world *core.World
	want  core.Dir // Held heading, kept until another is pressed

	// Game state
	state      string
	resumeTo   string
	score      int
	lives      int
	level      int // 1-based
	extraGiven bool
	tickCount  uint64
	countdown  int // Ticks left in ready or cleared

	archived []platformcore.Diagnostic
	err      error
	tooSmall bool
}

// New creates a new Pac-Man game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Pac-Man game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "pacman_endless"
	}
	return "pacman"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Pac-Man (Endless)"
	}
	return "Pac-Man"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.log = logger.With("game", g.ID())

	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultPacmanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPacmanPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if g.mode == ModeCampaign {
		// Campaign difficulty comes from the maze order, not the score.
		g.difficulty.SetEnabled(false)
	}

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.level = 1
	g.cycle = 0
	g.extraGiven = false
	g.tickCount = 0
	g.want = core.DirNone
	g.archived = nil
	g.world = nil
	g.err = nil

	if cfg.Debug.Clock == "wall" {
		g.clock = core.SystemClock{}
	} else {
		g.clock = core.NewTickClock(time.Now().UTC())
	}

	g.mazes, g.mazeIndex, g.err = g.loadMazes()
	if g.err != nil {
		g.log.Error("cannot load mazes", "err", g.err)
		g.state = StateGameOver
		return
	}
	g.startLevel()
}

// Resize adopts a new screen size. The maze scrolls, so play continues.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// loadMazes returns the playable mazes and the index to start from.
func (g *Game) loadMazes() ([]levels.Level, int, error) {
	dir := g.cfg.Mazes.Dir
	if mazeDir != "" {
		dir = mazeDir
	}
	all, err := levels.All(dir)
	if err != nil {
		return nil, 0, err
	}
	if len(all) == 0 {
		return nil, 0, errors.New("no mazes available")
	}

	start := g.cfg.Mazes.Start
	if startMaze != "" {
		start = startMaze
	}
	if start == "" {
		return all, 0, nil
	}
	for i, lvl := range all {
		if lvl.ID == start {
			return all, i, nil
		}
	}
	return nil, 0, fmt.Errorf("maze %q not found", start)
}

// startLevel builds a fresh world on the current maze.
func (g *Game) startLevel() {
	lvl := g.mazes[g.mazeIndex]
	m, err := lvl.Maze(core.MazeOptions{
		DotPoints:   g.cfg.Pickups.DotPoints,
		PowerPoints: g.cfg.Pickups.PowerPoints,
	})
	if err != nil {
		g.fail(err)
		return
	}

	wcfg := g.worldConfig()
	wcfg.Specs = lvl.GhostSpecs(m, wcfg.Wait)
	inv := core.NewInvariants(g.cfg.Debug.StrictInvariants, g.log.With("maze", lvl.ID))

	world, err := core.NewWorld(m, wcfg, g.clock, inv)
	if err != nil {
		g.fail(fmt.Errorf("maze %s: %w", lvl.ID, err))
		return
	}
	if g.world != nil {
		g.archived = append(g.archived, worldDiagnostics(g.world)...)
	}
	g.world = world
	g.log.Debug("level started", "level", g.level, "maze", lvl.ID, "ghosts", len(world.Ghosts()))
	g.enterReady()
}

func (g *Game) fail(err error) {
	g.err = err
	g.log.Error("cannot start level", "err", err)
	g.state = StateGameOver
}

// worldConfig converts the loaded config into simulation settings,
// scaled by the current difficulty.
func (g *Game) worldConfig() core.WorldConfig {
	c := g.cfg
	ticks := int(g.tickCount) //#nosec G115 -- tick count fits in int

	wcfg := core.DefaultWorldConfig()
	wcfg.TickRate = g.runtime.TickRate
	wcfg.Seed = g.runtime.Seed + int64(g.level)
	wcfg.Ghost = core.GhostTuning{
		Speed:           g.difficulty.Speed(c.Ghosts.Speed, g.score, ticks),
		FrightenedSpeed: c.Ghosts.FrightenedSpeed,
		TunnelSpeed:     c.Ghosts.TunnelSpeed,
		DeadSpeed:       c.Ghosts.DeadSpeed,
		HouseSpeed:      c.Ghosts.HouseSpeed,
		FrightenedTime:  g.difficulty.FrightenedTime(c.Ghosts.FrightenedTime(), g.score, ticks),
		BlinkAt:         c.Ghosts.BlinkAt,
		ScoreTicks:      c.Ghosts.ScoreTicks,
	}
	wcfg.Pacman = core.PacmanTuning{
		Speed:              c.Player.Speed,
		DotSpeed:           c.Player.DotSpeed,
		FrightenedSpeed:    c.Player.FrightenedSpeed,
		FrightenedDotSpeed: c.Player.FrightenedDotSpeed,
		DeathTurns:         c.Player.DeathTurns,
		DeathTurnTicks:     c.Player.DeathTurnTicks,
		DeathSlowTicks:     c.Player.DeathSlowTicks,
	}
	wcfg.Wait = g.difficulty.HouseWait(c.Ghosts.HouseWait(), g.score, ticks)
	if len(c.Ghosts.Ladder) > 0 {
		wcfg.Ladder = append([]int(nil), c.Ghosts.Ladder...)
	}
	if len(c.Schedule) > 0 {
		wcfg.Phases = make([]core.Phase, 0, len(c.Schedule))
		for _, p := range c.Schedule {
			mode, ok := core.ParseMode(p.Mode)
			if !ok {
				continue
			}
			wcfg.Phases = append(wcfg.Phases, core.Phase{Mode: mode, Duration: p.Duration()})
		}
	}
	return wcfg
}

// enterReady freezes the world behind the "READY!" countdown.
func (g *Game) enterReady() {
	g.world.Pause()
	g.state = StateReady
	g.countdown = g.cfg.Gameplay.ReadyTicks
	g.want = core.DirNone
}

// nextLevel advances to the next maze, or ends a finished campaign.
func (g *Game) nextLevel() {
	g.mazeIndex++
	if g.mazeIndex >= len(g.mazes) {
		if g.mode == ModeCampaign {
			g.state = StateWon
			g.log.Info("campaign won", "score", g.score)
			return
		}
		g.mazeIndex = 0
		g.cycle++
	}
	g.level++
	g.startLevel()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(platformcore.ActionRestart) && (g.state == StateGameOver || g.state == StateWon) {
		g.Reset(g.runtime)
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.togglePause()
	}

	if d, ok := actionDir(in.Last); ok {
		g.want = d
	}

	switch g.state {
	case StateReady:
		g.tickCount++
		g.countdown--
		if g.countdown <= 0 {
			g.state = StatePlaying
			g.world.Resume()
		}
		return platformcore.StepResult{State: g.State()}

	case StateCleared:
		g.tickCount++
		g.countdown--
		if g.countdown <= 0 {
			g.nextLevel()
		}
		return platformcore.StepResult{State: g.State()}

	case StatePlaying:
		g.tickCount++
		g.world.Tick(g.want)
		events := g.applyEvents(g.world.Drain())
		return platformcore.StepResult{State: g.State(), Events: events}
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	switch g.state {
	case StatePaused:
		g.state = g.resumeTo
		if g.state == StatePlaying {
			g.world.Resume()
		}
	case StatePlaying, StateReady, StateCleared:
		if g.state == StatePlaying {
			g.world.Pause()
		}
		g.resumeTo = g.state
		g.state = StatePaused
	}
}

// applyEvents folds world events into score, lives and game state.
// Returns a short description of each for logging.
func (g *Game) applyEvents(events []core.Event) []string {
	var out []string
	for _, ev := range events {
		switch ev.Kind {
		case core.EventDotEaten, core.EventPowerEaten, core.EventGhostEaten:
			g.addScore(ev.Points)
		case core.EventLifeLost:
			g.lives--
			if g.lives <= 0 {
				g.lives = 0
				g.state = StateGameOver
				g.log.Info("game over", "score", g.score, "level", g.level)
			} else {
				g.enterReady()
			}
		case core.EventLevelCleared:
			if g.state == StatePlaying {
				g.state = StateCleared
				g.countdown = g.cfg.Gameplay.ClearTicks
			}
		}
		out = append(out, describe(ev))
	}
	return out
}

func (g *Game) addScore(points int) {
	g.score += points
	if at := g.cfg.Gameplay.ExtraLifeAt; at > 0 && !g.extraGiven && g.score >= at {
		g.extraGiven = true
		g.lives++
	}
}

func describe(ev core.Event) string {
	s := ev.Kind.String()
	if ev.Ghost != "" {
		s += " " + ev.Ghost
	}
	if ev.Points > 0 {
		s += fmt.Sprintf(" +%d", ev.Points)
	}
	return s + " at " + ev.Cell.String()
}

// actionDir maps a movement action to a heading.
func actionDir(a platformcore.Action) (core.Dir, bool) {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionDown:
		return core.DirDown, true
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	}
	return core.DirNone, false
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWon,
		Paused:   g.state == StatePaused,
		Lives:    g.lives,
		Level:    g.level,
	}
}

// Phase returns the game state name (ready, playing, cleared, ...).
func (g *Game) Phase() string {
	return g.state
}

// World exposes the running simulation.
func (g *Game) World() *core.World {
	return g.world
}

// Err returns the error that stopped the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Maze returns the level being played.
func (g *Game) Maze() levels.Level {
	if len(g.mazes) == 0 {
		return levels.Level{}
	}
	return g.mazes[g.mazeIndex]
}
