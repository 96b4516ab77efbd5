package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default gameplay configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			SoftDrop:      1,
			HardDrop:      2,
			LineBase:      100,
			LinesPerLevel: 10,
		},
		Speed: SpeedConfig{
			Initial:      2.0,
			StepPerLevel: 0.2,
			Min:          0.15,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
