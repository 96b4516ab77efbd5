// Package tetris provides the falling-block game modes: endless play
// and goal-driven puzzles.
package tetris

import (
	"math/rand"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/puzzles"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeEndless Mode = "endless"
	ModePuzzle  Mode = "puzzle"
)

// Game adapts the simulation engine to the platform's game interface.
// All board logic lives in the core package; this layer maps input
// frames to simulation commands and draws the result.
type Game struct {
	mode  Mode
	rng   *rand.Rand
	rules core.Rules
	sim   *core.Sim

	tick uint64
	dt   float64 // Seconds of simulated time per tick

	// Puzzle template for this playthrough; cloned into the sim on
	// every reset so goal progress never leaks between runs.
	puzzle *core.Puzzle

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool

	// Rendering layout
	cellW     int // Terminal chars per board cell
	hudHeight int
}

// Package-level variables for configuration, set by the CLI or menu
// before the game resets.
var (
	selectedPuzzle *core.Puzzle
	customRules    *core.Rules
)

// SetPuzzle selects the puzzle the next puzzle-mode game will play.
func SetPuzzle(p *core.Puzzle) {
	selectedPuzzle = p
}

// SelectedPuzzle returns the currently selected puzzle, or nil.
func SelectedPuzzle() *core.Puzzle {
	return selectedPuzzle
}

// SetRules overrides the default gameplay rules for subsequent games.
func SetRules(r core.Rules) {
	customRules = &r
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_puzzle", func() registry.Game {
		return NewPuzzle()
	})
}

// New creates a new endless-mode game.
func New() *Game {
	return &Game{
		mode:      ModeEndless,
		cellW:     2,
		hudHeight: 2,
	}
}

// NewPuzzle creates a new puzzle-mode game.
func NewPuzzle() *Game {
	return &Game{
		mode:      ModePuzzle,
		cellW:     2,
		hudHeight: 2,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePuzzle {
		return "tetris_puzzle"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePuzzle {
		return "Tetris Puzzle"
	}
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.rules = core.DefaultRules()
	if customRules != nil {
		g.rules = *customRules
	}

	gen := core.NewRandomGenerator(g.rng)
	if g.mode == ModePuzzle {
		g.puzzle = g.pickPuzzle()
		g.sim = core.NewPuzzleSim(g.rules, gen, g.puzzle.Clone())
	} else {
		g.sim = core.NewSim(g.rules, gen)
	}

	g.checkScreenSize()
}

// pickPuzzle resolves the puzzle to play: the one selected via the
// menu or CLI, falling back to the first builtin puzzle.
func (g *Game) pickPuzzle() *core.Puzzle {
	if selectedPuzzle != nil {
		return selectedPuzzle
	}
	if list, err := puzzles.LoadBuiltin(); err == nil && len(list) > 0 {
		return list[0]
	}
	// Last resort: an empty board with a modest line goal.
	rows := make([][]core.Cell, core.PuzzleGridHeight)
	for y := range rows {
		rows[y] = make([]core.Cell, core.PuzzleGridWidth)
	}
	return &core.Puzzle{
		Name:  "Free Play",
		Grid:  rows,
		Goals: []core.Goal{{Kind: core.GoalClearLines, Target: 5}},
	}
}

// checkScreenSize verifies the terminal can fit the board plus HUD and
// sidebar.
func (g *Game) checkScreenSize() {
	requiredW := g.boardWidth() + sidebarWidth + 2
	requiredH := g.rules.GridHeight + g.hudHeight + 3
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// boardWidth returns the rendered board width including borders.
func (g *Game) boardWidth() int {
	return g.rules.GridWidth*g.cellW + 2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle restart after game over
	if input.Has(platformcore.ActionRestart) && g.sim.GameOver() {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1.0/g.dt + 0.5),
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.sim.TogglePause()
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// One piece command per frame, then time advances.
	switch {
	case input.Has(platformcore.ActionLeft):
		g.sim.MoveLeft()
	case input.Has(platformcore.ActionRight):
		g.sim.MoveRight()
	case input.Has(platformcore.ActionRotate):
		g.sim.Rotate()
	case input.Has(platformcore.ActionSoftDrop):
		g.sim.SoftDrop()
	case input.Has(platformcore.ActionHardDrop):
		g.sim.HardDrop()
	}

	g.sim.Advance(g.dt)

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.GameOver(),
		Paused:   g.sim.Paused(),
	}
}

// Sim exposes the underlying simulation for tests and snapshots.
func (g *Game) Sim() *core.Sim {
	return g.sim
}

// Mode returns the game mode.
func (g *Game) GameMode() Mode {
	return g.mode
}

// Puzzle returns the active puzzle template, or nil in endless mode.
func (g *Game) Puzzle() *core.Puzzle {
	return g.puzzle
}

// Solved reports whether the active puzzle was completed.
func (g *Game) Solved() bool {
	return g.sim != nil && g.sim.Solved()
}
