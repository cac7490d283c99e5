package core

// Color represents a screen cell color.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorSky    // background fallback
	ColorGround // sandy floor band
	ColorPipe   // forest green
	ColorGold   // coins and particles
	ColorSun
)
