package core

import "math/rand"

// Shape identifies one of the 7 canonical tetromino forms.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	ShapeCount // Sentinel value for iteration
)

// String returns the letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the fixed color assigned to the shape.
func (s Shape) Color() Color {
	switch s {
	case ShapeI:
		return ColorCyan
	case ShapeO:
		return ColorYellow
	case ShapeT:
		return ColorPurple
	case ShapeS:
		return ColorGreen
	case ShapeZ:
		return ColorRed
	case ShapeJ:
		return ColorBlue
	case ShapeL:
		return ColorOrange
	default:
		return ColorCyan
	}
}

// Matrix returns the shape's canonical spawn-orientation occupancy matrix.
// Each call returns a fresh copy; callers may mutate the result freely.
func (s Shape) Matrix() [][]bool {
	var template [][]int
	switch s {
	case ShapeI:
		template = [][]int{{1, 1, 1, 1}}
	case ShapeO:
		template = [][]int{{1, 1}, {1, 1}}
	case ShapeT:
		template = [][]int{{0, 1, 0}, {1, 1, 1}}
	case ShapeS:
		template = [][]int{{0, 1, 1}, {1, 1, 0}}
	case ShapeZ:
		template = [][]int{{1, 1, 0}, {0, 1, 1}}
	case ShapeJ:
		template = [][]int{{1, 0, 0}, {1, 1, 1}}
	case ShapeL:
		template = [][]int{{0, 0, 1}, {1, 1, 1}}
	}
	cells := make([][]bool, len(template))
	for y, row := range template {
		cells[y] = make([]bool, len(row))
		for x, v := range row {
			cells[y][x] = v == 1
		}
	}
	return cells
}

// AllShapes returns a slice of all tetromino shapes.
func AllShapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
}

// Piece is the active falling tetromino. Cells is its current rotation
// as an occupancy matrix; X, Y is the board position of the matrix's
// top-left corner. The simulation replaces the piece wholesale on lock.
type Piece struct {
	Shape Shape
	Color Color
	Cells [][]bool
	X     int
	Y     int
}

// NewPiece constructs a piece of the given shape, horizontally centered
// on a board of the given width with its anchor at the top row.
func NewPiece(shape Shape, gridW int) *Piece {
	cells := shape.Matrix()
	return &Piece{
		Shape: shape,
		Color: shape.Color(),
		Cells: cells,
		X:     gridW/2 - len(cells[0])/2,
		Y:     0,
	}
}

// RandomPiece constructs a piece with a shape chosen uniformly at random
// from the given source. The source is injectable so tests can fix the
// sequence.
func RandomPiece(rng *rand.Rand, gridW int) *Piece {
	return NewPiece(Shape(rng.Intn(int(ShapeCount))), gridW)
}

// PieceGenerator produces the stream of falling pieces for a simulation.
// The simulation pulls one piece per lock; implementations decide the
// shape sequence.
type PieceGenerator interface {
	Next(gridW int) *Piece
}

// RandomGenerator draws shapes uniformly from a seedable random source.
// Two generators built from the same seed produce identical sequences.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator wraps a random source as a piece generator.
func NewRandomGenerator(rng *rand.Rand) *RandomGenerator {
	return &RandomGenerator{rng: rng}
}

// Next returns a fresh uniformly random piece centered on the board.
func (g *RandomGenerator) Next(gridW int) *Piece {
	return RandomPiece(g.rng, gridW)
}

// Width returns the width of the piece's current rotation matrix.
func (p *Piece) Width() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// Height returns the height of the piece's current rotation matrix.
func (p *Piece) Height() int {
	return len(p.Cells)
}

// Rotated returns the piece's cells rotated 90 degrees clockwise
// (transpose and reverse rows). The piece itself is not modified; the
// simulation applies the result only if it does not collide.
func (p *Piece) Rotated() [][]bool {
	h := len(p.Cells)
	if h == 0 {
		return nil
	}
	w := len(p.Cells[0])
	rotated := make([][]bool, w)
	for y := 0; y < w; y++ {
		rotated[y] = make([]bool, h)
		for x := 0; x < h; x++ {
			rotated[y][x] = p.Cells[h-1-x][y]
		}
	}
	return rotated
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	cells := make([][]bool, len(p.Cells))
	for y, row := range p.Cells {
		cells[y] = make([]bool, len(row))
		copy(cells[y], row)
	}
	return &Piece{
		Shape: p.Shape,
		Color: p.Color,
		Cells: cells,
		X:     p.X,
		Y:     p.Y,
	}
}
