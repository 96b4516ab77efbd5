package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateGameOver     GameStateType = "game_over"
	StatePuzzleSolved GameStateType = "puzzle_solved"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "endless" or "puzzle"
	Score      int
	Level      int
	Lines      int
	PiecesUsed int
	CurShape   core.Shape
	CurX       int
	CurY       int
	NextShape  core.Shape
	FallSpeed  float64
	State      GameStateType

	// Puzzle progress, zero in endless mode. Kept as counts so
	// snapshots stay comparable.
	GoalsAchieved int
	GoalsTotal    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.sim.Solved():
		state = StatePuzzleSolved
	case g.sim.GameOver():
		state = StateGameOver
	case g.sim.Paused():
		state = StatePaused
	}

	snap := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Score:      g.sim.Score(),
		Level:      g.sim.Level(),
		Lines:      g.sim.Lines(),
		PiecesUsed: g.sim.PiecesUsed(),
		FallSpeed:  g.sim.FallSpeed(),
		State:      state,
	}
	if cur := g.sim.Current(); cur != nil {
		snap.CurShape = cur.Shape
		snap.CurX = cur.X
		snap.CurY = cur.Y
	}
	if next := g.sim.Next(); next != nil {
		snap.NextShape = next.Shape
	}
	if p := g.sim.Puzzle(); p != nil {
		snap.GoalsTotal = len(p.Goals)
		for _, goal := range p.Goals {
			if goal.Achieved() {
				snap.GoalsAchieved++
			}
		}
	}
	return snap
}
