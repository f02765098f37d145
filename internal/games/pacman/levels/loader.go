// Package levels provides maze loading for Pac-Man.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels/formats"
)

//go:embed mazes/*.yaml
var embedded embed.FS

// Level represents a complete maze definition.
type Level struct {
	ID       string
	Name     string
	Wrap     bool
	Layout   []string
	Scatter  map[string]core.Coord
	Metadata map[string]string
	FilePath string
}

// Maze builds the playable maze. Pickup values come from opts; wrapping
// comes from the level.
func (l *Level) Maze(opts core.MazeOptions) (*core.Maze, error) {
	opts.Wrap = l.Wrap
	m, err := core.ParseMaze(l.Layout, opts)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return m, nil
}

// GhostSpecs returns the default ghosts for the maze with the level's
// scatter corners applied.
func (l *Level) GhostSpecs(m *core.Maze, wait time.Duration) []core.GhostSpec {
	specs := core.DefaultGhostSpecs(m, wait)
	for i := range specs {
		if c, ok := l.Scatter[specs[i].Name]; ok {
			specs[i].Scatter = c
		}
	}
	return specs
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	return loadFS(os.DirFS(l.Root), ".", l.Root)
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parseLevel(data, path)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return find(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return ids(levels), nil
}

// Embedded returns the mazes built into the binary.
func Embedded() ([]Level, error) {
	return loadFS(embedded, "mazes", "embedded")
}

// All returns the embedded mazes, overridden and extended by the mazes found
// under dir. An empty or missing dir yields the embedded set.
func All(dir string) ([]Level, error) {
	base, err := Embedded()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return base, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return base, nil
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Level, len(base)+len(extra))
	for _, lvl := range base {
		byID[lvl.ID] = lvl
	}
	for _, lvl := range extra {
		byID[lvl.ID] = lvl
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sortLevels(out)
	return out, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	return find(levels, id)
}

func loadFS(fsys fs.FS, root, label string) ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil
		}
		level, err := parseLevel(data, filepath.Join(label, path))
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", label, err)
	}

	sortLevels(levels)
	return levels, nil
}

func parseLevel(data []byte, path string) (Level, error) {
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Wrap:     parsed.Wrap,
		Layout:   parsed.Layout,
		Scatter:  parsed.Scatter,
		Metadata: parsed.Metadata,
		FilePath: path,
	}
	// Reject layouts the simulation cannot run on.
	if _, err := lvl.Maze(core.DefaultMazeOptions()); err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return lvl, nil
}

func find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

func ids(levels []Level) []string {
	out := make([]string, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.ID
	}
	return out
}

func sortLevels(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
