package core

import "fmt"

// GoalKind identifies a puzzle objective variant.
type GoalKind uint8

const (
	GoalClearLines GoalKind = iota // Clear a total number of lines
	GoalMaxPieces                  // Piece budget; exceeding it fails the puzzle
	GoalScore                      // Reach a score
	GoalPattern                    // Match a color template on the board
	GoalClearAll                   // Empty the whole board
	GoalTime                       // Survive for a number of seconds
)

// String returns the wire-format token for the goal kind.
func (k GoalKind) String() string {
	switch k {
	case GoalClearLines:
		return "clear_lines"
	case GoalMaxPieces:
		return "max_pieces"
	case GoalScore:
		return "score"
	case GoalPattern:
		return "pattern"
	case GoalClearAll:
		return "clear_all"
	case GoalTime:
		return "time"
	default:
		return "unknown"
	}
}

// ParseGoalKind converts a wire-format token to a GoalKind.
func ParseGoalKind(s string) (GoalKind, bool) {
	switch s {
	case "clear_lines":
		return GoalClearLines, true
	case "max_pieces":
		return GoalMaxPieces, true
	case "score":
		return GoalScore, true
	case "pattern":
		return GoalPattern, true
	case "clear_all":
		return GoalClearAll, true
	case "time":
		return GoalTime, true
	default:
		return GoalClearLines, false
	}
}

// Goal is a single puzzle objective: a kind, a target and the progress
// toward it. Pattern goals additionally carry a sub-grid template and an
// anchor offset; the template is an optional extension and may be absent
// on other kinds.
type Goal struct {
	Kind    GoalKind
	Target  int
	Current int

	// Pattern payload, used only when Kind == GoalPattern.
	Pattern  [][]Cell // Template cells; empty cells are wildcards
	PatternX int      // Board x of the template's left column
	PatternY int      // Board y of the template's top row
}

// Achieved reports whether the goal has been reached.
func (g *Goal) Achieved() bool {
	return g.Current >= g.Target
}

// Update sets the goal's progress value. Only the evaluator calls this,
// once per relevant simulation event.
func (g *Goal) Update(value int) {
	g.Current = value
}

// ValidationError contains details about a puzzle validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Puzzle is a validated puzzle definition: a starting board layout and
// the goals to meet. Immutable after loading except for goal progress.
type Puzzle struct {
	Name        string
	Description string
	Grid        [][]Cell // GridHeight rows of GridWidth cells
	Goals       []Goal
}

// Puzzle boards are fixed at the standard dimensions.
const (
	PuzzleGridWidth  = 10
	PuzzleGridHeight = 20
)

// Validate checks the puzzle's structural invariants: exact board
// dimensions, uniform row widths and at least one goal. A puzzle that
// fails validation never reaches the simulation.
func (p *Puzzle) Validate() error {
	if len(p.Grid) == 0 || len(p.Grid[0]) == 0 {
		return ValidationError{
			Code:    "EMPTY_GRID",
			Message: "puzzle grid cannot be empty",
		}
	}

	height := len(p.Grid)
	width := len(p.Grid[0])
	if height != PuzzleGridHeight || width != PuzzleGridWidth {
		return ValidationError{
			Code:    "BAD_DIMENSIONS",
			Message: fmt.Sprintf("invalid grid dimensions: %dx%d, want %dx%d", width, height, PuzzleGridWidth, PuzzleGridHeight),
		}
	}

	for y, row := range p.Grid {
		if len(row) != width {
			return ValidationError{
				Code:    "RAGGED_ROWS",
				Message: fmt.Sprintf("row %d has %d cells, want %d", y, len(row), width),
			}
		}
	}

	if len(p.Goals) == 0 {
		return ValidationError{
			Code:    "NO_GOALS",
			Message: "puzzle must have at least one goal",
		}
	}

	return nil
}

// Completed reports whether every goal has been achieved.
func (p *Puzzle) Completed() bool {
	for i := range p.Goals {
		if !p.Goals[i].Achieved() {
			return false
		}
	}
	return true
}

// StartGrid builds the simulation grid from the puzzle's layout.
func (p *Puzzle) StartGrid() *Grid {
	return NewGridFromCells(PuzzleGridWidth, PuzzleGridHeight, p.Grid)
}

// Clone returns a deep copy of the puzzle. The simulation mutates goal
// progress, so each playthrough runs on its own copy of the loaded
// definition.
func (p *Puzzle) Clone() *Puzzle {
	c := &Puzzle{
		Name:        p.Name,
		Description: p.Description,
		Grid:        cloneCellRows(p.Grid),
		Goals:       make([]Goal, len(p.Goals)),
	}
	for i, g := range p.Goals {
		c.Goals[i] = g
		c.Goals[i].Pattern = cloneCellRows(g.Pattern)
	}
	return c
}

func cloneCellRows(rows [][]Cell) [][]Cell {
	if rows == nil {
		return nil
	}
	out := make([][]Cell, len(rows))
	for y, row := range rows {
		out[y] = make([]Cell, len(row))
		copy(out[y], row)
	}
	return out
}

// patternMatches counts the template positions whose color matches the
// board. Empty template cells are wildcards; template positions that map
// outside the board are skipped entirely.
func (g *Goal) patternMatches(grid *Grid) int {
	matches := 0
	for ty, row := range g.Pattern {
		for tx, cell := range row {
			if !cell.Filled {
				continue
			}
			x := g.PatternX + tx
			y := g.PatternY + ty
			if !grid.InBounds(x, y) {
				continue
			}
			at := grid.Cell(x, y)
			if at.Filled && at.Color == cell.Color {
				matches++
			}
		}
	}
	return matches
}
