package pixelterm

import "git.sr.ht/~rockorager/pixelterm/pixel"

// Theme maps terminal colors to concrete full-color values. A Theme is a
// plain immutable value: it is selected once at backend construction and
// never mutated afterwards. Multiple backends may each hold an independent
// theme safely
type Theme struct {
	// Foreground is used when ColorDefault is resolved as a foreground
	Foreground pixel.RGB
	// Background is used when ColorDefault is resolved as a background
	Background pixel.RGB

	Black        pixel.RGB
	Red          pixel.RGB
	Green        pixel.RGB
	Yellow       pixel.RGB
	Blue         pixel.RGB
	Magenta      pixel.RGB
	Cyan         pixel.RGB
	Gray         pixel.RGB
	DarkGray     pixel.RGB
	LightRed     pixel.RGB
	LightGreen   pixel.RGB
	LightYellow  pixel.RGB
	LightBlue    pixel.RGB
	LightMagenta pixel.RGB
	LightCyan    pixel.RGB
	White        pixel.RGB
}

// ThemeANSI is the default theme: the primary ANSI palette on a black
// background
func ThemeANSI() Theme {
	return Theme{
		Foreground:   pixel.NewRGB(255, 255, 255),
		Background:   pixel.NewRGB(0, 0, 0),
		Black:        pixel.NewRGB(0, 0, 0),
		Red:          pixel.NewRGB(255, 0, 0),
		Green:        pixel.NewRGB(0, 255, 0),
		Yellow:       pixel.NewRGB(255, 255, 0),
		Blue:         pixel.NewRGB(0, 0, 255),
		Magenta:      pixel.NewRGB(255, 0, 255),
		Cyan:         pixel.NewRGB(0, 255, 255),
		Gray:         pixel.NewRGB(127, 127, 127),
		DarkGray:     pixel.NewRGB(170, 170, 170),
		LightRed:     pixel.NewRGB(255, 127, 127),
		LightGreen:   pixel.NewRGB(127, 255, 127),
		LightYellow:  pixel.NewRGB(255, 255, 127),
		LightBlue:    pixel.NewRGB(127, 127, 255),
		LightMagenta: pixel.NewRGB(255, 127, 255),
		LightCyan:    pixel.NewRGB(127, 255, 255),
		White:        pixel.NewRGB(255, 255, 255),
	}
}

// ThemeTokyoNight is a dark theme with blue and purple tones
func ThemeTokyoNight() Theme {
	return Theme{
		Foreground:   pixel.NewRGB(0xA9, 0xB1, 0xD6),
		Background:   pixel.NewRGB(0x1A, 0x1B, 0x26),
		Black:        pixel.NewRGB(0x41, 0x48, 0x68),
		Red:          pixel.NewRGB(0xF7, 0x76, 0x8E),
		Green:        pixel.NewRGB(0x73, 0xDA, 0xCA),
		Yellow:       pixel.NewRGB(0xE0, 0xAF, 0x68),
		Blue:         pixel.NewRGB(0x7A, 0xA2, 0xF7),
		Magenta:      pixel.NewRGB(0xBB, 0x9A, 0xF7),
		Cyan:         pixel.NewRGB(0x7D, 0xCF, 0xFF),
		Gray:         pixel.NewRGB(0xC0, 0xCA, 0xF5),
		DarkGray:     pixel.NewRGB(0x41, 0x48, 0x68),
		LightRed:     pixel.NewRGB(0xF7, 0x76, 0x8E),
		LightGreen:   pixel.NewRGB(0x73, 0xDA, 0xCA),
		LightYellow:  pixel.NewRGB(0xE0, 0xAF, 0x68),
		LightBlue:    pixel.NewRGB(0x7A, 0xA2, 0xF7),
		LightMagenta: pixel.NewRGB(0xBB, 0x9A, 0xF7),
		LightCyan:    pixel.NewRGB(0x7D, 0xCF, 0xFF),
		White:        pixel.NewRGB(0xC0, 0xCA, 0xF5),
	}
}

// resolve maps a terminal color to its full-color value. Named colors use
// the theme slots, RGB colors resolve to themselves, and extended-palette
// indexes fall back to black
func (t *Theme) resolve(c Color, role pixel.Role) pixel.RGB {
	if c == ColorDefault {
		if role == pixel.Foreground {
			return t.Foreground
		}
		return t.Background
	}
	if c&rgb != 0 {
		return pixel.NewRGB(uint8(c>>16), uint8(c>>8), uint8(c))
	}
	switch c {
	case ColorBlack:
		return t.Black
	case ColorRed:
		return t.Red
	case ColorGreen:
		return t.Green
	case ColorYellow:
		return t.Yellow
	case ColorBlue:
		return t.Blue
	case ColorMagenta:
		return t.Magenta
	case ColorCyan:
		return t.Cyan
	case ColorGray:
		return t.Gray
	case ColorDarkGray:
		return t.DarkGray
	case ColorLightRed:
		return t.LightRed
	case ColorLightGreen:
		return t.LightGreen
	case ColorLightYellow:
		return t.LightYellow
	case ColorLightBlue:
		return t.LightBlue
	case ColorLightMagenta:
		return t.LightMagenta
	case ColorLightCyan:
		return t.LightCyan
	case ColorWhite:
		return t.White
	}
	// extended palette indexes are not themed
	return pixel.RGB{}
}
