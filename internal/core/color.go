package core

// Color is the foreground color of a screen cell. Values map to ANSI
// 256-color codes in the platform renderer; Default leaves the
// terminal's own foreground untouched.
type Color uint8

// The palette covers what the game draws: board glyphs, guards and
// their watch cells, the marble, and the HUD outcome flashes.
const (
	ColorDefault Color = iota
	ColorGray
	ColorRed
	ColorBrightRed
	ColorOrange
	ColorBrightYellow
	ColorBrightGreen
)
