package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Faded returns the color to use for a sprite drawn at the given alpha.
// Terminals have no transparency, so fading steps down to gray shades.
func (c Color) Faded(alpha float64) Color {
	switch {
	case alpha >= 0.66:
		return c
	case alpha >= 0.33:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
