package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultTetrisConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate, got %v", err)
	}

	rules := cfg.ToRules()
	if rules.GridWidth != 10 || rules.GridHeight != 20 {
		t.Errorf("Expected 10x20 grid, got %dx%d", rules.GridWidth, rules.GridHeight)
	}
	if rules.BaseFallSpeed != 2.0 {
		t.Errorf("Expected base fall speed 2.0, got %v", rules.BaseFallSpeed)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tetris.yaml")
	if err := os.WriteFile(path, GetDefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg != DefaultTetrisConfig() {
		t.Errorf("Embedded defaults differ from hardcoded: %+v", cfg)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := `
grid:
  width: 12
  height: 24
scoring:
  soft_drop: 1
  hard_drop: 2
  line_base: 50
  lines_per_level: 5
speed:
  initial: 1.5
  step_per_level: 0.1
  min: 0.2
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg.Grid.Width != 12 || cfg.Grid.Height != 24 {
		t.Errorf("Expected 12x24 grid, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Scoring.LineBase != 50 {
		t.Errorf("Expected line_base 50, got %d", cfg.Scoring.LineBase)
	}
}

func TestLoadTetrisRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	bad := `
grid:
  width: 2
  height: 2
scoring:
  lines_per_level: 10
speed:
  initial: 1.0
  min: 0.2
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTetris(path); err == nil {
		t.Error("Expected error for undersized grid")
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	if _, err := LoadTetris("/nonexistent/tetris.yaml"); err == nil {
		t.Error("Expected error for missing custom path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantInitial float64
		wantStep    float64
	}{
		{DifficultyEasy, 2.5, 0.15},
		{DifficultyNormal, 2.0, 0.2},
		{DifficultyHard, 1.2, 0.25},
		{DifficultyFixed, 2.0, 0},
	}

	for _, tt := range tests {
		cfg := DefaultTetrisConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Speed.Initial != tt.wantInitial || cfg.Speed.StepPerLevel != tt.wantStep {
			t.Errorf("%s: got initial=%v step=%v, want initial=%v step=%v",
				tt.preset, cfg.Speed.Initial, cfg.Speed.StepPerLevel, tt.wantInitial, tt.wantStep)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if _, err := ParsePreset("easy"); err != nil {
		t.Errorf("easy should parse, got %v", err)
	}
	if _, err := ParsePreset("impossible"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}
