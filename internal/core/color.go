package core

// Color represents a fill color for a shape or screen cell.
// The platform maps each value to a concrete terminal color.
type Color uint8

// Palette used by the game. Brick tiers use the three pastel shades.
const (
	ColorDefault Color = iota
	ColorCrimson       // ball
	ColorMaroon        // paddle
	ColorCoral         // brick, 1 hit left
	ColorSalmon        // brick, 2 hits left
	ColorPeach         // brick, 3 hits left
	ColorText
	ColorGray
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorCrimson:
		return "crimson"
	case ColorMaroon:
		return "maroon"
	case ColorCoral:
		return "coral"
	case ColorSalmon:
		return "salmon"
	case ColorPeach:
		return "peach"
	case ColorText:
		return "text"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

// Hex returns the RGB hex code of the color, or "" for the terminal default.
func (c Color) Hex() string {
	switch c {
	case ColorCrimson:
		return "#DC143C"
	case ColorMaroon:
		return "#8C0004"
	case ColorCoral:
		return "#F08080"
	case ColorSalmon:
		return "#F8AD9D"
	case ColorPeach:
		return "#FFDAB9"
	case ColorText:
		return "#FCEDE0"
	case ColorGray:
		return "#8A8A8A"
	default:
		return ""
	}
}
