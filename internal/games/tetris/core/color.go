// Package core provides the core game logic for the Tetris game.
// This package is UI-agnostic and deterministic.
package core

import "strings"

// Color represents a block color in the game.
type Color uint8

const (
	ColorCyan Color = iota
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorPurple
	ColorRed
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorPurple:
		return "purple"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorCyan:
		return 'C'
	case ColorBlue:
		return 'B'
	case ColorOrange:
		return 'O'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorPurple:
		return 'P'
	case ColorRed:
		return 'R'
	default:
		return '?'
	}
}

// ParseColor converts a string to a Color. Matching is case-insensitive.
// Returns ColorCyan and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "cyan", "c":
		return ColorCyan, true
	case "blue", "b":
		return ColorBlue, true
	case "orange", "o":
		return ColorOrange, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "purple", "p":
		return ColorPurple, true
	case "red", "r":
		return ColorRed, true
	default:
		return ColorCyan, false
	}
}

// AllColors returns a slice of all valid colors.
func AllColors() []Color {
	return []Color{ColorCyan, ColorBlue, ColorOrange, ColorYellow, ColorGreen, ColorPurple, ColorRed}
}

// Cell represents a single cell on the board.
type Cell struct {
	Filled bool  // Whether the cell contains a settled block
	Color  Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Filled: false}
}

// FilledCell returns a filled cell with the given color.
func FilledCell(c Color) Cell {
	return Cell{Filled: true, Color: c}
}
