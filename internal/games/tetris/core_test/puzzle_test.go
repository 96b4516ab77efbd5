package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func validPuzzle() *core.Puzzle {
	return &core.Puzzle{
		Name:  "valid",
		Grid:  blankRows(),
		Goals: []core.Goal{{Kind: core.GoalClearLines, Target: 1}},
	}
}

func TestValidateAcceptsWellFormedPuzzle(t *testing.T) {
	if err := validPuzzle().Validate(); err != nil {
		t.Errorf("expected valid puzzle to pass validation, got %v", err)
	}
}

func TestValidateRejectsBadPuzzles(t *testing.T) {
	ragged := blankRows()
	ragged[7] = ragged[7][:9]

	short := blankRows()[:19]

	narrow := make([][]core.Cell, 20)
	for y := range narrow {
		narrow[y] = make([]core.Cell, 9)
	}

	cases := []struct {
		name     string
		mutate   func(p *core.Puzzle)
		wantCode string
	}{
		{
			name:     "empty grid",
			mutate:   func(p *core.Puzzle) { p.Grid = nil },
			wantCode: "EMPTY_GRID",
		},
		{
			name:     "too few rows",
			mutate:   func(p *core.Puzzle) { p.Grid = short },
			wantCode: "BAD_DIMENSIONS",
		},
		{
			name:     "wrong width",
			mutate:   func(p *core.Puzzle) { p.Grid = narrow },
			wantCode: "BAD_DIMENSIONS",
		},
		{
			name:     "ragged rows",
			mutate:   func(p *core.Puzzle) { p.Grid = ragged },
			wantCode: "RAGGED_ROWS",
		},
		{
			name:     "no goals",
			mutate:   func(p *core.Puzzle) { p.Goals = nil },
			wantCode: "NO_GOALS",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPuzzle()
			tc.mutate(p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			var verr core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s (%v)", tc.wantCode, verr.Code, err)
			}
		})
	}
}

func TestParseGoalKindRoundTrip(t *testing.T) {
	kinds := []core.GoalKind{
		core.GoalClearLines,
		core.GoalMaxPieces,
		core.GoalScore,
		core.GoalPattern,
		core.GoalClearAll,
		core.GoalTime,
	}
	for _, k := range kinds {
		got, ok := core.ParseGoalKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseGoalKind(%q) = %v, %v; want %v, true", k.String(), got, ok, k)
		}
	}
	if _, ok := core.ParseGoalKind("bogus"); ok {
		t.Error("expected unknown goal kind to be rejected")
	}
}

func TestGoalAchieved(t *testing.T) {
	g := core.Goal{Kind: core.GoalScore, Target: 100}
	if g.Achieved() {
		t.Error("goal should not be achieved at zero progress")
	}
	g.Update(99)
	if g.Achieved() {
		t.Error("goal should not be achieved below target")
	}
	g.Update(100)
	if !g.Achieved() {
		t.Error("goal should be achieved at target")
	}
}

func TestCompletedRequiresEveryGoal(t *testing.T) {
	p := validPuzzle()
	p.Goals = []core.Goal{
		{Kind: core.GoalClearLines, Target: 1, Current: 1},
		{Kind: core.GoalScore, Target: 500, Current: 499},
	}
	if p.Completed() {
		t.Error("puzzle should not complete with an unmet goal")
	}
	p.Goals[1].Current = 500
	if !p.Completed() {
		t.Error("puzzle should complete once every goal is met")
	}
}

func TestStartGridReflectsLayout(t *testing.T) {
	rows := blankRows()
	rows[19][9] = core.FilledCell(core.ColorCyan)
	p := &core.Puzzle{
		Name:  "layout",
		Grid:  rows,
		Goals: []core.Goal{{Kind: core.GoalClearLines, Target: 1}},
	}

	g := p.StartGrid()
	if g.W != core.PuzzleGridWidth || g.H != core.PuzzleGridHeight {
		t.Fatalf("expected %dx%d grid, got %dx%d", core.PuzzleGridWidth, core.PuzzleGridHeight, g.W, g.H)
	}
	if !g.IsOccupied(9, 19) {
		t.Error("expected the layout cell at (9,19)")
	}
	if g.FilledCount() != 1 {
		t.Errorf("expected 1 filled cell, got %d", g.FilledCount())
	}
}
