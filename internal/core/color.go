package core

// Color represents a foreground colour for a screen cell.
// Values map to ANSI 256-colour codes in the terminal renderer.
type Color uint8

// Predefined colours for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorDimGray
	ColorNeonCyan    // player paddle
	ColorPurple      // cpu paddle, bottom wall sparks
	ColorAqua        // ball and trail
	ColorSkyBlue     // top wall sparks
	ColorDeepTeal    // faded trail
	ColorGridBlue    // centre line
	ColorBrightWhite // score header
)
