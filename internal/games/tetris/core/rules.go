package core

// Rules holds the gameplay tuning parameters for a simulation.
// Passing them explicitly keeps the core free of package-level state
// and lets tests and config files adjust the curve.
type Rules struct {
	GridWidth  int // Board width in cells
	GridHeight int // Board height in cells

	SoftDropScore int // Points per cell for a manual soft drop
	HardDropScore int // Points per cell for a hard drop
	LineBaseScore int // Per-lock clear bonus is LineBaseScore * N^2 for N rows

	LinesPerLevel int     // Cleared lines needed to advance one level
	BaseFallSpeed float64 // Starting fall interval in seconds
	SpeedStep     float64 // Interval reduction per level
	MinFallSpeed  float64 // Fastest allowed fall interval
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		GridWidth:     10,
		GridHeight:    20,
		SoftDropScore: 1,
		HardDropScore: 2,
		LineBaseScore: 100,
		LinesPerLevel: 10,
		BaseFallSpeed: 2.0,
		SpeedStep:     0.2,
		MinFallSpeed:  0.15,
	}
}

// FallSpeedForLevel returns the fall interval for a 1-indexed level,
// clamped at the minimum speed.
func (r Rules) FallSpeedForLevel(level int) float64 {
	speed := r.BaseFallSpeed - r.SpeedStep*float64(level-1)
	if speed < r.MinFallSpeed {
		speed = r.MinFallSpeed
	}
	return speed
}

// LevelForLines returns the 1-indexed level for a cumulative cleared-line
// count.
func (r Rules) LevelForLines(lines int) int {
	return lines/r.LinesPerLevel + 1
}
