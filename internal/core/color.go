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
	ColorOrange
	ColorGray
	ColorGold
	ColorPink
	ColorSkyBlue
	ColorPurple
	ColorViolet
	ColorBlack
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorGold:
		return "gold"
	case ColorPink:
		return "pink"
	case ColorSkyBlue:
		return "skyblue"
	case ColorPurple:
		return "purple"
	case ColorViolet:
		return "violet"
	case ColorBlack:
		return "black"
	default:
		return "unknown"
	}
}
