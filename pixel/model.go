package pixel

var (
	black = RGB{}
	white = RGB{R: 0xFF, G: 0xFF, B: 0xFF}
	red   = RGB{R: 0xFF}
)

// RGBModel is the model for full-color displays. Conversion is the identity
type RGBModel struct{}

func (RGBModel) Convert(c RGB, _ Role) RGB { return c }

func (RGBModel) RGB(p RGB) RGB { return p }

// Mono is the native pixel of a 1-bit monochrome display
type Mono bool

const (
	MonoOff Mono = false
	MonoOn  Mono = true
)

// MonoModel reduces colors to 1-bit. Pure black maps to off and pure white
// to on; any other color falls back to on for foregrounds and off for
// backgrounds
type MonoModel struct{}

func (MonoModel) Convert(c RGB, role Role) Mono {
	switch c {
	case black:
		return MonoOff
	case white:
		return MonoOn
	}
	return Mono(role == Foreground)
}

func (MonoModel) RGB(p Mono) RGB {
	if p == MonoOn {
		return white
	}
	return black
}

// Tri is the native pixel of a 3-color palette display, as found on
// black/white/red or black/white/yellow e-paper panels
type Tri uint8

const (
	TriWhite Tri = iota
	TriBlack
	TriAccent
)

// TriModel reduces colors to a white/black/accent palette. Exact matches map
// to the corresponding palette entry; any other color falls back to black
// for foregrounds and white for backgrounds. The zero value uses pure red as
// the accent
type TriModel struct {
	// Accent is the full-color value of the panel's third color. Leave
	// zero for red
	Accent RGB
}

func (m TriModel) accent() RGB {
	if m.Accent == black {
		return red
	}
	return m.Accent
}

func (m TriModel) Convert(c RGB, role Role) Tri {
	switch c {
	case white:
		return TriWhite
	case black:
		return TriBlack
	case m.accent():
		return TriAccent
	}
	if role == Foreground {
		return TriBlack
	}
	return TriWhite
}

func (m TriModel) RGB(p Tri) RGB {
	switch p {
	case TriBlack:
		return black
	case TriAccent:
		return m.accent()
	}
	return white
}
