// Package formats provides maze file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"gopkg.in/yaml.v3"
)

// YAMLMaze represents the YAML structure for a maze file.
type YAMLMaze struct {
	ID       string               `yaml:"id"`
	Name     string               `yaml:"name"`
	Wrap     *bool                `yaml:"wrap,omitempty"`
	Layout   string               `yaml:"layout"`
	Scatter  map[string]YAMLCoord `yaml:"scatter,omitempty"`
	Metadata map[string]string    `yaml:"metadata,omitempty"`
}

// YAMLCoord is a cell address. Scatter corners may lie off the grid.
type YAMLCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Maze represents a parsed maze file ready for use.
type Maze struct {
	ID       string
	Name     string
	Wrap     bool
	Layout   []string
	Scatter  map[string]core.Coord
	Metadata map[string]string
}

// Errors returned for structurally incomplete files.
var (
	ErrMissingID     = errors.New("maze file: missing id")
	ErrMissingLayout = errors.New("maze file: missing layout")
)

// ParseYAML parses a YAML maze file.
func ParseYAML(data []byte) (Maze, error) {
	var ym YAMLMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Maze{}, ErrMissingID
	}

	var rows []string
	for _, line := range strings.Split(ym.Layout, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return Maze{}, fmt.Errorf("%w: %s", ErrMissingLayout, ym.ID)
	}

	name := ym.Name
	if name == "" {
		name = ym.ID
	}
	wrap := true
	if ym.Wrap != nil {
		wrap = *ym.Wrap
	}

	m := Maze{
		ID:       ym.ID,
		Name:     name,
		Wrap:     wrap,
		Layout:   rows,
		Scatter:  make(map[string]core.Coord, len(ym.Scatter)),
		Metadata: ym.Metadata,
	}
	for ghost, c := range ym.Scatter {
		m.Scatter[strings.ToLower(ghost)] = core.C(c.X, c.Y)
	}
	return m, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
