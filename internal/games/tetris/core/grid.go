package core

// Grid represents the game board as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
// Dimensions are fixed for the lifetime of a game; only Lock and
// line-clear collapse mutate the contents.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Cells []Cell // Flat array of cells, length W*H
}

// NewGrid creates a new grid with all cells empty.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
}

// NewGridFromCells creates a grid initialized from row-major cell rows,
// as provided by a puzzle's starting layout. Rows beyond the grid's
// dimensions are ignored.
func NewGridFromCells(w, h int, rows [][]Cell) *Grid {
	g := NewGrid(w, h)
	for y, row := range rows {
		if y >= h {
			break
		}
		for x, cell := range row {
			if x >= w {
				break
			}
			g.Cells[y*w+x] = cell
		}
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// IsOccupied returns whether the cell at (x, y) holds a settled block.
// Out-of-bounds coordinates report unoccupied; collision logic
// bounds-checks before consulting the grid.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Cells[g.index(x, y)].Filled
}

// Cell returns the cell at (x, y). Returns an empty cell if out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty()
	}
	return g.Cells[g.index(x, y)]
}

// SetCell writes a block color into an in-bounds cell.
func (g *Grid) SetCell(x, y int, color Color) {
	if g.InBounds(x, y) {
		g.Cells[g.index(x, y)] = FilledCell(color)
	}
}

// SetEmpty clears the cell at (x, y).
func (g *Grid) SetEmpty(x, y int) {
	if g.InBounds(x, y) {
		g.Cells[g.index(x, y)] = Empty()
	}
}

// RowFull returns true if every cell in the row is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.H {
		return false
	}
	for x := 0; x < g.W; x++ {
		if !g.Cells[g.index(x, y)].Filled {
			return false
		}
	}
	return true
}

// FullRows returns the row indices where every cell is occupied,
// in ascending order (the bottom row is index H-1).
func (g *Grid) FullRows() []int {
	rows := make([]int, 0, 4)
	for y := 0; y < g.H; y++ {
		if g.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Collapse removes the given row by shifting every row above it down by
// one and clearing the top row. When several rows clear in one lock the
// caller processes them in descending index order so already-shifted
// rows are never re-scanned.
func (g *Grid) Collapse(row int) {
	if row < 0 || row >= g.H {
		return
	}
	for y := row; y > 0; y-- {
		for x := 0; x < g.W; x++ {
			g.Cells[g.index(x, y)] = g.Cells[g.index(x, y-1)]
		}
	}
	for x := 0; x < g.W; x++ {
		g.Cells[g.index(x, 0)] = Empty()
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// FilledCount returns the number of occupied cells in the grid.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// IsEmpty returns true if all cells are empty.
func (g *Grid) IsEmpty() bool {
	return g.FilledCount() == 0
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
