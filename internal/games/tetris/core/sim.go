package core

// Sim is the falling-block simulation engine. It owns the grid, the
// active and queued pieces, and the scoring state. All mutation goes
// through its methods; callers drive it with discrete commands plus
// Advance for elapsed wall-clock time.
//
// The engine moves through three states: active (piece falling, input
// accepted), paused (no gravity, only the pause toggle accepted) and
// game over (terminal, nothing mutates).
type Sim struct {
	rules Rules
	gen   PieceGenerator

	grid    *Grid
	current *Piece
	next    *Piece

	score        int
	level        int
	linesCleared int
	piecesUsed   int

	fallSpeed   float64 // Current fall interval in seconds
	fallElapsed float64 // Seconds since the last gravity step
	playTime    float64 // Total unpaused play time in seconds

	paused   bool
	gameOver bool

	puzzle *Puzzle
	solved bool // Puzzle completed; distinguishes success from failure
}

// NewSim creates an endless-mode simulation with an empty grid.
// The generator is injectable for deterministic piece sequences.
func NewSim(rules Rules, gen PieceGenerator) *Sim {
	s := &Sim{
		rules:     rules,
		gen:       gen,
		grid:      NewGrid(rules.GridWidth, rules.GridHeight),
		level:     1,
		fallSpeed: rules.BaseFallSpeed,
	}
	s.spawn()
	return s
}

// NewPuzzleSim creates a puzzle-mode simulation with the board
// initialized from the puzzle's layout. The puzzle must already be
// validated; its goal progress is mutated during play.
func NewPuzzleSim(rules Rules, gen PieceGenerator, puzzle *Puzzle) *Sim {
	s := &Sim{
		rules:     rules,
		gen:       gen,
		grid:      puzzle.StartGrid(),
		level:     1,
		fallSpeed: rules.BaseFallSpeed,
		puzzle:    puzzle,
	}
	s.spawn()
	return s
}

// spawn installs the first current/next pair and checks for an
// immediate blockout against a prefilled board.
func (s *Sim) spawn() {
	s.current = s.gen.Next(s.grid.W)
	s.next = s.gen.Next(s.grid.W)
	if s.collides(s.current.Cells, s.current.X, s.current.Y) {
		s.gameOver = true
	}
}

// collides tests a candidate shape at a candidate anchor against the
// board. A cell fails if its x leaves the board, its y passes the
// bottom, or it lands on an occupied cell. Cells above the board
// (y < 0) never collide, which is what allows spawning and rotating
// partially above the visible grid.
func (s *Sim) collides(cells [][]bool, px, py int) bool {
	for y, row := range cells {
		for x, filled := range row {
			if !filled {
				continue
			}
			nx := px + x
			ny := py + y
			if nx < 0 || nx >= s.grid.W || ny >= s.grid.H {
				return true
			}
			if ny >= 0 && s.grid.IsOccupied(nx, ny) {
				return true
			}
		}
	}
	return false
}

// canAct reports whether piece commands are currently accepted.
func (s *Sim) canAct() bool {
	return !s.gameOver && !s.paused
}

// MoveLeft shifts the piece one cell left. The move is all-or-nothing:
// on collision the position is unchanged. Returns whether it moved.
func (s *Sim) MoveLeft() bool {
	return s.move(-1)
}

// MoveRight shifts the piece one cell right.
func (s *Sim) MoveRight() bool {
	return s.move(1)
}

func (s *Sim) move(dx int) bool {
	if !s.canAct() {
		return false
	}
	if s.collides(s.current.Cells, s.current.X+dx, s.current.Y) {
		return false
	}
	s.current.X += dx
	return true
}

// SoftDrop moves the piece one cell down and scores the drop.
// Returns whether it moved; a rejected drop does not lock the piece.
func (s *Sim) SoftDrop() bool {
	if !s.canAct() {
		return false
	}
	if s.collides(s.current.Cells, s.current.X, s.current.Y+1) {
		return false
	}
	s.current.Y++
	s.score += s.rules.SoftDropScore
	return true
}

// Rotate turns the piece 90 degrees clockwise. If the rotated shape
// collides at the current anchor the rotation is discarded and the
// prior shape retained; there is no wall-kick search.
func (s *Sim) Rotate() bool {
	if !s.canAct() {
		return false
	}
	rotated := s.current.Rotated()
	if s.collides(rotated, s.current.X, s.current.Y) {
		return false
	}
	s.current.Cells = rotated
	return true
}

// DropDistance returns how far the piece can fall before colliding.
func (s *Sim) DropDistance() int {
	dist := 0
	for !s.collides(s.current.Cells, s.current.X, s.current.Y+dist+1) {
		dist++
	}
	return dist
}

// HardDrop sends the piece straight to its lowest legal position,
// scores the fall distance and locks immediately. Returns the distance
// fallen.
func (s *Sim) HardDrop() int {
	if !s.canAct() {
		return 0
	}
	dist := s.DropDistance()
	s.current.Y += dist
	s.score += dist * s.rules.HardDropScore
	s.lock()
	s.fallElapsed = 0
	return dist
}

// TogglePause flips the pause state. Resuming zeroes the gravity
// accumulator so a long pause does not cause an instant drop.
func (s *Sim) TogglePause() {
	if s.gameOver {
		return
	}
	s.paused = !s.paused
	if !s.paused {
		s.fallElapsed = 0
	}
}

// Advance integrates elapsed wall-clock time. Once the accumulated
// interval exceeds the current fall speed it attempts one gravity step,
// locking on collision, and resets the accumulator either way.
func (s *Sim) Advance(dt float64) {
	if !s.canAct() {
		return
	}
	s.playTime += dt
	s.fallElapsed += dt
	if s.fallElapsed <= s.fallSpeed {
		return
	}
	if s.collides(s.current.Cells, s.current.X, s.current.Y+1) {
		s.lock()
	} else {
		s.current.Y++
	}
	s.fallElapsed = 0
}

// lock commits the piece's cells into the grid and advances the queue.
// The above-top check runs over the whole piece before any cell is
// written, so a lockout never leaves a partial piece on the board.
func (s *Sim) lock() {
	for y, row := range s.current.Cells {
		if s.current.Y+y >= 0 {
			continue
		}
		for _, filled := range row {
			if filled {
				s.gameOver = true
				return
			}
		}
	}
	for y, row := range s.current.Cells {
		for x, filled := range row {
			if filled {
				s.grid.SetCell(s.current.X+x, s.current.Y+y, s.current.Color)
			}
		}
	}

	s.piecesUsed++
	s.clearLines()
	if s.gameOver {
		return
	}

	s.current = s.next
	s.next = s.gen.Next(s.grid.W)
	if s.collides(s.current.Cells, s.current.X, s.current.Y) {
		s.gameOver = true
	}

	if s.puzzle != nil {
		s.evaluateGoals()
	}
}

// clearLines removes all full rows, scores the clear and updates the
// level. Rows are collapsed in descending index order; each collapse
// shifts the remaining recorded rows down by one, hence the offset.
func (s *Sim) clearLines() {
	rows := s.grid.FullRows()
	if len(rows) == 0 {
		return
	}
	for i := len(rows) - 1; i >= 0; i-- {
		shifted := len(rows) - 1 - i
		s.grid.Collapse(rows[i] + shifted)
	}

	n := len(rows)
	s.score += s.rules.LineBaseScore * n * n
	s.linesCleared += n
	s.updateLevel()

	if s.puzzle != nil {
		s.evaluateGoals()
	}
}

// updateLevel recomputes the level from cleared lines and adjusts the
// fall speed only when the level actually changes.
func (s *Sim) updateLevel() {
	newLevel := s.rules.LevelForLines(s.linesCleared)
	if newLevel != s.level {
		s.level = newLevel
		s.fallSpeed = s.rules.FallSpeedForLevel(s.level)
	}
}

// evaluateGoals updates every goal's progress from the current
// simulation state and resolves puzzle completion. A max_pieces goal
// whose budget is exceeded ends the game as a failure; completing all
// goals ends it as a success.
func (s *Sim) evaluateGoals() {
	for i := range s.puzzle.Goals {
		goal := &s.puzzle.Goals[i]
		switch goal.Kind {
		case GoalClearLines:
			goal.Update(s.linesCleared)
		case GoalMaxPieces:
			goal.Update(s.piecesUsed)
			if goal.Current > goal.Target {
				s.gameOver = true
			}
		case GoalScore:
			goal.Update(s.score)
		case GoalPattern:
			goal.Update(goal.patternMatches(s.grid))
		case GoalClearAll:
			// Progress latches once the board empties.
			if s.grid.IsEmpty() {
				goal.Update(goal.Target)
			}
		case GoalTime:
			goal.Update(int(s.playTime))
		}
	}

	if s.puzzle.Completed() {
		s.solved = true
		s.gameOver = true
	}
}

// Accessors. The grid and pieces are returned as live references for
// rendering; callers must treat them as read-only.

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Level returns the current 1-indexed level.
func (s *Sim) Level() int { return s.level }

// Lines returns the cumulative cleared-line count.
func (s *Sim) Lines() int { return s.linesCleared }

// PiecesUsed returns how many pieces have locked.
func (s *Sim) PiecesUsed() int { return s.piecesUsed }

// GameOver reports whether the simulation has terminated.
func (s *Sim) GameOver() bool { return s.gameOver }

// Paused reports whether the simulation is paused.
func (s *Sim) Paused() bool { return s.paused }

// Solved reports whether a puzzle finished with all goals achieved.
func (s *Sim) Solved() bool { return s.solved }

// PuzzleMode reports whether the simulation is running a puzzle.
func (s *Sim) PuzzleMode() bool { return s.puzzle != nil }

// Puzzle returns the active puzzle, or nil in endless mode.
func (s *Sim) Puzzle() *Puzzle { return s.puzzle }

// Grid returns the board.
func (s *Sim) Grid() *Grid { return s.grid }

// Current returns the active falling piece.
func (s *Sim) Current() *Piece { return s.current }

// Next returns the queued piece.
func (s *Sim) Next() *Piece { return s.next }

// FallSpeed returns the current fall interval in seconds.
func (s *Sim) FallSpeed() float64 { return s.fallSpeed }

// PlayTime returns the total unpaused play time in seconds.
func (s *Sim) PlayTime() float64 { return s.playTime }
