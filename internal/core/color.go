package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI codes by the platform renderer.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)
