package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for arena elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorOrange
	ColorGray
)

// Semantic aliases used by the top-down renderer.
const (
	ColorGround = ColorGreen
	ColorStep   = ColorOrange
	ColorPlayer = ColorBrightBlue
	ColorEnemy  = ColorBrightRed
	ColorGoal   = ColorBrightYellow
	ColorHUD    = ColorWhite
	ColorCamera = ColorGray
)
