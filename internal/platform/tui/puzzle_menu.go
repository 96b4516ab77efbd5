package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	tetriscore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// PuzzleMenuModel lets users choose a puzzle to play.
type PuzzleMenuModel struct {
	puzzles   []*tetriscore.Puzzle
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
	back      bool
}

// NewPuzzleMenuModel creates a new puzzle selection model.
func NewPuzzleMenuModel(puzzles []*tetriscore.Puzzle, width, height int) PuzzleMenuModel {
	return PuzzleMenuModel{
		puzzles:   puzzles,
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PuzzleMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PuzzleMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m PuzzleMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.puzzles)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.puzzles) > 0 {
			m.choosing = false
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the puzzle list with the selected puzzle's details.
func (m PuzzleMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT PUZZLE", m.width))
	b.WriteString("\n\n")

	if len(m.puzzles) == 0 {
		b.WriteString(centerText("No puzzles available", m.width))
		b.WriteString("\n")
	}

	for i, p := range m.puzzles {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, p.Name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Details for the highlighted puzzle
	if m.cursor < len(m.puzzles) {
		p := m.puzzles[m.cursor]
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(centerText(p.Description, m.width))
			b.WriteString("\n")
		}
		b.WriteString(centerText(fmt.Sprintf("Goals: %d", len(p.Goals)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen puzzle, or nil if still choosing.
func (m PuzzleMenuModel) Selected() *tetriscore.Puzzle {
	if m.choosing || m.cursor >= len(m.puzzles) {
		return nil
	}
	return m.puzzles[m.cursor]
}

// IsQuitting returns true if user wants to quit.
func (m PuzzleMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PuzzleMenuModel) WantsBack() bool {
	return m.back
}

// RunPuzzleSelector runs the puzzle selection and returns the chosen
// puzzle, or nil if the user backed out.
func RunPuzzleSelector(puzzles []*tetriscore.Puzzle, cfg core.RuntimeConfig) (*tetriscore.Puzzle, core.RuntimeConfig, error) {
	model := NewPuzzleMenuModel(puzzles, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PuzzleMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
