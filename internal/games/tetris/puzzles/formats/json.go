// Package formats provides pluggable puzzle file format parsers.
package formats

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// jsonPuzzle mirrors the puzzle file wire format. Grid cells are color
// names or null for empty; goal progress is carried so a file can ship
// with pre-credited progress.
type jsonPuzzle struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	GridData    [][]*string `json:"grid_data"`
	Goals       []jsonGoal  `json:"goals"`
}

type jsonGoal struct {
	GoalType     string      `json:"goal_type"`
	TargetValue  int         `json:"target_value"`
	CurrentValue int         `json:"current_value"`
	Pattern      [][]*string `json:"pattern,omitempty"`
	PatternX     int         `json:"pattern_x,omitempty"`
	PatternY     int         `json:"pattern_y,omitempty"`
}

// ParseJSON parses a JSON puzzle file into an unvalidated puzzle.
// Callers validate before use.
func ParseJSON(data []byte) (*core.Puzzle, error) {
	var jp jsonPuzzle
	if err := json.Unmarshal(data, &jp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return buildPuzzle(jp.Name, jp.Description, jp.GridData, toRawGoals(jp.Goals))
}

// rawGoal is the format-independent goal payload shared by the parsers.
type rawGoal struct {
	goalType string
	target   int
	current  int
	pattern  [][]*string
	patternX int
	patternY int
}

func toRawGoals(goals []jsonGoal) []rawGoal {
	raw := make([]rawGoal, len(goals))
	for i, g := range goals {
		raw[i] = rawGoal{
			goalType: g.GoalType,
			target:   g.TargetValue,
			current:  g.CurrentValue,
			pattern:  g.Pattern,
			patternX: g.PatternX,
			patternY: g.PatternY,
		}
	}
	return raw
}

// buildPuzzle assembles a core puzzle from parsed wire data. Unknown
// cell colors are treated as empty; an unknown goal type is an error
// since silently dropping a goal would change the puzzle's meaning.
func buildPuzzle(name, description string, grid [][]*string, goals []rawGoal) (*core.Puzzle, error) {
	p := &core.Puzzle{
		Name:        name,
		Description: description,
		Grid:        parseCellRows(grid),
	}

	for i, g := range goals {
		kind, ok := core.ParseGoalKind(g.goalType)
		if !ok {
			return nil, fmt.Errorf("goal %d: unknown goal type %q", i, g.goalType)
		}
		goal := core.Goal{
			Kind:    kind,
			Target:  g.target,
			Current: g.current,
		}
		if kind == core.GoalPattern {
			goal.Pattern = parseCellRows(g.pattern)
			goal.PatternX = g.patternX
			goal.PatternY = g.patternY
		}
		p.Goals = append(p.Goals, goal)
	}

	return p, nil
}

func parseCellRows(rows [][]*string) [][]core.Cell {
	if rows == nil {
		return nil
	}
	cells := make([][]core.Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]core.Cell, len(row))
		for x, name := range row {
			if name == nil {
				continue
			}
			color, ok := core.ParseColor(*name)
			if !ok {
				continue
			}
			cells[y][x] = core.FilledCell(color)
		}
	}
	return cells
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}
