package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal styles.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorBlue
	ColorCyan
	ColorGreen
	ColorBrightYellow
	ColorBrightWhite
)

// tilePalette cycles through colors as tiles grow: 2, 4, 8, ...
var tilePalette = []Color{
	ColorWhite,
	ColorYellow,
	ColorOrange,
	ColorRed,
	ColorMagenta,
	ColorBlue,
	ColorCyan,
	ColorGreen,
	ColorBrightYellow,
	ColorBrightWhite,
}

// TileColor returns the display color for a tile value.
// Empty cells are gray; values past the palette wrap around.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	exp := 0
	for v := value; v > 2; v >>= 1 {
		exp++
	}
	return tilePalette[exp%len(tilePalette)]
}
