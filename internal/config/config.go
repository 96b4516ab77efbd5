// Package config provides YAML-based gameplay configuration loading
// and difficulty presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// TetrisConfig contains all gameplay tuning parameters.
type TetrisConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines the scoring parameters.
type ScoringConfig struct {
	SoftDrop      int `yaml:"soft_drop"`       // Points per cell soft-dropped
	HardDrop      int `yaml:"hard_drop"`       // Points per cell hard-dropped
	LineBase      int `yaml:"line_base"`       // Base points, clears award line_base * n^2
	LinesPerLevel int `yaml:"lines_per_level"` // Lines needed to advance one level
}

// SpeedConfig defines the gravity curve.
type SpeedConfig struct {
	Initial      float64 `yaml:"initial"`        // Starting fall interval in seconds
	StepPerLevel float64 `yaml:"step_per_level"` // Interval reduction per level
	Min          float64 `yaml:"min"`            // Fastest allowed fall interval
}

// ToRules converts the configuration to simulation rules.
func (c TetrisConfig) ToRules() core.Rules {
	return core.Rules{
		GridWidth:     c.Grid.Width,
		GridHeight:    c.Grid.Height,
		SoftDropScore: c.Scoring.SoftDrop,
		HardDropScore: c.Scoring.HardDrop,
		LineBaseScore: c.Scoring.LineBase,
		LinesPerLevel: c.Scoring.LinesPerLevel,
		BaseFallSpeed: c.Speed.Initial,
		SpeedStep:     c.Speed.StepPerLevel,
		MinFallSpeed:  c.Speed.Min,
	}
}

// Validate checks that the configuration values are playable.
func (c TetrisConfig) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("config: grid %dx%d is too small", c.Grid.Width, c.Grid.Height)
	}
	if c.Speed.Initial <= 0 {
		return fmt.Errorf("config: initial fall speed must be positive, got %v", c.Speed.Initial)
	}
	if c.Speed.Min <= 0 || c.Speed.Min > c.Speed.Initial {
		return fmt.Errorf("config: min fall speed %v must be in (0, %v]", c.Speed.Min, c.Speed.Initial)
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the gravity curve for a difficulty preset.
// Fixed keeps the initial speed for the entire game.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 2.5
		cfg.Speed.StepPerLevel = 0.15
	case DifficultyHard:
		cfg.Speed.Initial = 1.2
		cfg.Speed.StepPerLevel = 0.25
	case DifficultyFixed:
		cfg.Speed.StepPerLevel = 0
	}
}

// ParsePreset validates a preset name from the command line.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	}
	return "", fmt.Errorf("config: unknown difficulty preset %q", name)
}
