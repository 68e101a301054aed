package pixelterm

import (
	"image"

	"git.sr.ht/~rockorager/pixelterm/pixel"
)

// GlyphStyle is the styling handed to the font facility for one glyph
type GlyphStyle[P comparable] struct {
	Foreground P
	Background P
	// Underline and Strikethrough request decoration lines over the cell
	Underline     bool
	Strikethrough bool
	// UnderlineColor overrides Foreground for the underline when
	// HasUnderlineColor is set
	UnderlineColor    P
	HasUnderlineColor bool
}

// Font rasterizes glyphs into fixed-size cells. Implementations draw one
// glyph per call at a pixel position, filling the whole cell: background
// behind the glyph, foreground for its strokes, plus any requested
// decoration lines. The pixelfont package adapts golang.org/x/image fonts to
// this interface
type Font[P comparable] interface {
	// CellSize is the pixel width and height of one glyph cell
	CellSize() (w int, h int)
	// DrawGlyph draws one extended grapheme cluster with its cell's
	// top-left corner at pos
	DrawGlyph(dst pixel.Surface[P], pos image.Point, glyph string, style GlyphStyle[P]) error
}
