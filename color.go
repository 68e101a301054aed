package pixelterm

// Color is a terminal color. The zero value represents the default foreground
// or background color, whichever the color is used as
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25
)

// ColorDefault resolves to the theme's default foreground or background,
// depending on the role the color is used in
const ColorDefault Color = 0

// The named ANSI colors. These resolve through the theme's named slots
const (
	ColorBlack Color = indexed | iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorDarkGray
	ColorLightRed
	ColorLightGreen
	ColorLightYellow
	ColorLightBlue
	ColorLightMagenta
	ColorLightCyan
	ColorWhite
)

// RGBColor creates a Color from RGB values. RGB colors bypass the theme and
// resolve to themselves
func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

// HexColor creates a Color from a 24-bit hex value, eg 0x00AABB
func HexColor(v uint32) Color {
	return Color(v&0xFFFFFF) | rgb
}

// IndexColor creates a Color from an index into a 256-color palette. Indexes
// 0-15 are the named ANSI colors and resolve through the theme; the extended
// palette (16-255) is not supported by themes and resolves to black
func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}
