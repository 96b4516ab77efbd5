package core_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/puzzles"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/puzzles/formats"
)

// gridJSON builds a standard-size grid_data literal with the given
// rows overridden. Overrides map row index to a 10-entry JSON row.
func gridJSON(overrides map[int]string) string {
	var b strings.Builder
	b.WriteString("[")
	for y := 0; y < core.PuzzleGridHeight; y++ {
		if y > 0 {
			b.WriteString(",")
		}
		if row, ok := overrides[y]; ok {
			b.WriteString(row)
			continue
		}
		b.WriteString(`[null,null,null,null,null,null,null,null,null,null]`)
	}
	b.WriteString("]")
	return b.String()
}

func TestLoadBuiltin(t *testing.T) {
	list, err := puzzles.LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin failed: %v", err)
	}
	if len(list) < 5 {
		t.Fatalf("expected at least 5 builtin puzzles, got %d", len(list))
	}

	// Sorted by name, every entry already validated.
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("puzzles not sorted: %q >= %q", list[i-1].Name, list[i].Name)
		}
	}
	for _, p := range list {
		if err := p.Validate(); err != nil {
			t.Errorf("builtin puzzle %q should be valid: %v", p.Name, err)
		}
	}
}

func TestLoadBuiltinFirstClear(t *testing.T) {
	list, err := puzzles.LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin failed: %v", err)
	}

	var first *core.Puzzle
	for _, p := range list {
		if p.Name == "First Clear" {
			first = p
		}
	}
	if first == nil {
		t.Fatal("expected builtin puzzle 'First Clear'")
	}
	if len(first.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(first.Goals))
	}
	if first.Goals[0].Kind != core.GoalClearLines || first.Goals[0].Target != 1 {
		t.Errorf("unexpected first goal: %+v", first.Goals[0])
	}
	if first.Goals[1].Kind != core.GoalMaxPieces || first.Goals[1].Target != 3 {
		t.Errorf("unexpected second goal: %+v", first.Goals[1])
	}

	// Bottom row is filled except the two center columns.
	g := first.StartGrid()
	if g.IsOccupied(4, 19) || g.IsOccupied(5, 19) {
		t.Error("expected the gap at columns 4 and 5")
	}
	if !g.IsOccupied(0, 19) || !g.IsOccupied(9, 19) {
		t.Error("expected the bottom row edges filled")
	}
}

func TestLoaderLoadAllSortsAndSkipsUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "b.json"), `{
		"name": "Beta",
		"description": "second",
		"grid_data": `+gridJSON(nil)+`,
		"goals": [{"goal_type": "score", "target_value": 100, "current_value": 0}]
	}`)
	writeFile(t, filepath.Join(dir, "a.yaml"), `
name: Alpha
description: first
grid_data:
`+yamlBlankGrid()+`
goals:
  - goal_type: clear_lines
    target_value: 1
    current_value: 0
`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a puzzle")

	loader := puzzles.NewLoader(dir)
	list, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 puzzles, got %d", len(list))
	}
	if list[0].Name != "Alpha" || list[1].Name != "Beta" {
		t.Errorf("expected [Alpha Beta], got [%s %s]", list[0].Name, list[1].Name)
	}
}

func TestLoaderFailsFastOnInvalidPuzzle(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "ok.json"), `{
		"name": "OK",
		"description": "",
		"grid_data": `+gridJSON(nil)+`,
		"goals": [{"goal_type": "score", "target_value": 100, "current_value": 0}]
	}`)
	// 5x5 grid violates the fixed board dimensions.
	writeFile(t, filepath.Join(dir, "bad.json"), `{
		"name": "Bad",
		"description": "",
		"grid_data": [[null,null,null,null,null],[null,null,null,null,null],[null,null,null,null,null],[null,null,null,null,null],[null,null,null,null,null]],
		"goals": [{"goal_type": "score", "target_value": 100, "current_value": 0}]
	}`)

	loader := puzzles.NewLoader(dir)
	if _, err := loader.LoadAll(); err == nil {
		t.Error("expected LoadAll to fail on an invalid puzzle file")
	}
}

func TestLoaderLoadByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "p.json"), `{
		"name": "Lone",
		"description": "only one",
		"grid_data": `+gridJSON(nil)+`,
		"goals": [{"goal_type": "time", "target_value": 30, "current_value": 0}]
	}`)

	loader := puzzles.NewLoader(dir)
	p, err := loader.LoadByName("Lone")
	if err != nil {
		t.Fatalf("LoadByName failed: %v", err)
	}
	if p.Description != "only one" {
		t.Errorf("expected description %q, got %q", "only one", p.Description)
	}

	if _, err := loader.LoadByName("missing"); err == nil {
		t.Error("expected error for a puzzle that does not exist")
	}
}

func TestParseJSONCellColors(t *testing.T) {
	data := `{
		"name": "Colors",
		"description": "",
		"grid_data": ` + gridJSON(map[int]string{
		19: `["CYAN","blue",null,"BOGUS",null,null,null,null,null,"red"]`,
	}) + `,
		"goals": [{"goal_type": "clear_lines", "target_value": 1, "current_value": 0}]
	}`

	p, err := formats.ParseJSON([]byte(data))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	g := p.StartGrid()
	if g.Cell(0, 19).Color != core.ColorCyan {
		t.Error("expected cyan at (0,19)")
	}
	if g.Cell(1, 19).Color != core.ColorBlue {
		t.Error("expected blue at (1,19), names are case-insensitive")
	}
	if g.IsOccupied(3, 19) {
		t.Error("unrecognized color names parse as empty cells")
	}
	if g.Cell(9, 19).Color != core.ColorRed {
		t.Error("expected red at (9,19)")
	}
}

func TestParseJSONPatternGoal(t *testing.T) {
	data := `{
		"name": "Pattern",
		"description": "",
		"grid_data": ` + gridJSON(nil) + `,
		"goals": [{
			"goal_type": "pattern",
			"target_value": 2,
			"current_value": 0,
			"pattern": [["RED", null], [null, "RED"]],
			"pattern_x": 3,
			"pattern_y": 17
		}]
	}`

	p, err := formats.ParseJSON([]byte(data))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	goal := p.Goals[0]
	if goal.Kind != core.GoalPattern {
		t.Fatalf("expected pattern goal, got %v", goal.Kind)
	}
	if goal.PatternX != 3 || goal.PatternY != 17 {
		t.Errorf("expected anchor (3,17), got (%d,%d)", goal.PatternX, goal.PatternY)
	}
	if len(goal.Pattern) != 2 || !goal.Pattern[0][0].Filled || goal.Pattern[0][1].Filled {
		t.Errorf("unexpected pattern payload: %+v", goal.Pattern)
	}
}

func TestParseJSONRejectsUnknownGoalType(t *testing.T) {
	data := `{
		"name": "Unknown",
		"description": "",
		"grid_data": ` + gridJSON(nil) + `,
		"goals": [{"goal_type": "teleport", "target_value": 1, "current_value": 0}]
	}`

	if _, err := formats.ParseJSON([]byte(data)); err == nil {
		t.Error("expected an error for an unknown goal type")
	}
}

func TestParseYAMLMirrorsJSON(t *testing.T) {
	yamlData := `
name: Mirror
description: same contract
grid_data:
` + yamlBlankGrid() + `
goals:
  - goal_type: max_pieces
    target_value: 4
    current_value: 1
`
	p, err := formats.ParseYAML([]byte(yamlData))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if p.Name != "Mirror" {
		t.Errorf("expected name Mirror, got %q", p.Name)
	}
	if len(p.Goals) != 1 || p.Goals[0].Kind != core.GoalMaxPieces {
		t.Fatalf("unexpected goals: %+v", p.Goals)
	}
	if p.Goals[0].Current != 1 {
		t.Errorf("pre-credited progress should survive parsing, got %d", p.Goals[0].Current)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("expected a valid puzzle, got %v", err)
	}
}

func TestColorParsing(t *testing.T) {
	cases := []struct {
		input string
		want  core.Color
		ok    bool
	}{
		{"cyan", core.ColorCyan, true},
		{"CYAN", core.ColorCyan, true},
		{"c", core.ColorCyan, true},
		{"blue", core.ColorBlue, true},
		{"orange", core.ColorOrange, true},
		{"yellow", core.ColorYellow, true},
		{"green", core.ColorGreen, true},
		{"purple", core.ColorPurple, true},
		{"red", core.ColorRed, true},
		{"magenta", core.ColorCyan, false},
	}
	for _, tc := range cases {
		got, ok := core.ParseColor(tc.input)
		if ok != tc.ok {
			t.Errorf("ParseColor(%q): expected ok=%v, got %v", tc.input, tc.ok, ok)
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseColor(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func yamlBlankGrid() string {
	row := "  - [null, null, null, null, null, null, null, null, null, null]\n"
	return strings.Repeat(row, core.PuzzleGridHeight)
}
