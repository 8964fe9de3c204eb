package core

// Color represents a foreground color for a screen cell.
// The platform maps it to an ANSI 256-color code.
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
	ColorBrightWhite
)

// tilePalette assigns a display color to each tile color id, starting at 1.
var tilePalette = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// TileColor returns the display color for a tile color id.
// Ids beyond the palette wrap around; id 0 (empty) is gray.
func TileColor(id int) Color {
	if id <= 0 {
		return ColorGray
	}
	return tilePalette[(id-1)%len(tilePalette)]
}

// tileGlyphs gives each tile a distinct shape so the board reads without color.
var tileGlyphs = []rune{'●', '■', '▲', '◆', '★', '♥', '♣', '♠'}

// TileGlyph returns the glyph for a tile color id; empty cells render as '·'.
func TileGlyph(id int) rune {
	if id <= 0 {
		return '·'
	}
	return tileGlyphs[(id-1)%len(tileGlyphs)]
}
