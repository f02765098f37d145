package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

// MazeSelection holds the user's choice from the maze picker.
type MazeSelection struct {
	MazeID string // Empty starts from the first maze
}

// MazeModel lets users choose the maze a Pac-Man game starts on.
type MazeModel struct {
	mazes     []levels.Level
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection MazeSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewMazeModel creates a maze picker for the given mazes. The first entry
// always starts from the beginning of the maze order.
func NewMazeModel(title string, mazes []levels.Level, width, height int) MazeModel {
	return MazeModel{
		mazes:     mazes,
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MazeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MazeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MazeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.mazes) { // first entry plus one per maze
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor > 0 {
			m.selection = MazeSelection{MazeID: m.mazes[m.cursor-1].ID}
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the maze list.
func (m MazeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select starting maze:", m.width))
	b.WriteString("\n\n")

	lines := make([]string, 0, len(m.mazes)+1)
	lines = append(lines, fmt.Sprintf("From the start (%d mazes)", len(m.mazes)))
	for i, lvl := range m.mazes {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, lvl.Name))
	}

	for i, line := range lines {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MazeModel) Selected() *MazeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MazeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MazeModel) WantsBack() bool {
	return m.back
}

// RunMazeSelector runs the maze picker and returns the selection, or nil
// when the user backed out or quit.
func RunMazeSelector(title string, mazes []levels.Level, cfg core.RuntimeConfig) (*MazeSelection, error) {
	model := NewMazeModel(title, mazes, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MazeModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
