package core

// Color is a foreground color tag for a screen cell. The platform layer maps
// these to ANSI styles; the core only names them.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	// Ghost fade levels, brightest to faintest. One per opacity palette slot.
	ColorGhost1
	ColorGhost2
	ColorGhost3
	ColorGhost4
	ColorGhost5
)
