// Package pixel defines the contract between the cell-grid renderer and a
// pixel-addressable display: a minimal drawing surface, a native pixel color
// type parameter, and color models that convert full-color values into that
// native type
package pixel

import "image"

// Role describes whether a color is being used to paint a foreground
// (glyph strokes, cursor) or a background. Models with reduced color depth
// use the role to pick a fallback when a color has no exact representation
type Role uint8

const (
	Foreground Role = iota
	Background
)

// RGB is a full-color 24-bit value. It is the common currency between
// terminal colors, themes, and native pixel types
type RGB struct {
	R uint8
	G uint8
	B uint8
}

func NewRGB(r uint8, g uint8, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Dim halves each channel, producing a darker version of the color. The
// result does not depend on the role the color is used in
func (c RGB) Dim() RGB {
	return RGB{R: c.R >> 1, G: c.G >> 1, B: c.B >> 1}
}

// Invert flips every bit of every channel
func (c RGB) Invert() RGB {
	return RGB{R: ^c.R, G: ^c.G, B: ^c.B}
}

// RGBA implements color.Color so an RGB value can be handed directly to the
// stdlib image packages
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Surface is a pixel-addressable drawing target. Implementations are
// expected to clip drawing to their bounding box.
//
// FillRun fills the rectangle with the given pixels in row-major order. The
// run must contain exactly r.Dx()*r.Dy() pixels
type Surface[P comparable] interface {
	Bounds() image.Rectangle
	FillSolid(r image.Rectangle, c P) error
	FillRun(r image.Rectangle, run []P) error
}

// Reader is implemented by surfaces that support pixel read-back. Raw
// hardware surfaces are typically write-only; read-back is only available on
// in-memory mirrors
type Reader[P comparable] interface {
	PixelAt(p image.Point) P
}

// Model converts between full-color values and a display's native pixel
// type. One implementation exists per supported pixel representation; the
// reduction rules for low-depth displays live in the implementation, not in
// the renderer
type Model[P comparable] interface {
	// Convert maps a theme-resolved color to the native pixel type,
	// applying role-based fallbacks where no exact representation exists
	Convert(c RGB, role Role) P
	// RGB reports the full-color equivalent of a native pixel
	RGB(p P) RGB
}
