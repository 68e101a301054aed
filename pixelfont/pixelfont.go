// Package pixelfont adapts golang.org/x/image monospace fonts to the glyph
// drawing facility consumed by the pixelterm backend. A Face rasterizes one
// glyph per fixed-size cell: background fill, glyph strokes in the
// foreground color, and optional underline and strikethrough lines
package pixelfont

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"git.sr.ht/~rockorager/pixelterm"
	"git.sr.ht/~rockorager/pixelterm/pixel"
)

// coverage above which a mask pixel counts as a glyph stroke
const alphaThreshold = 0x80

// Face wraps a font.Face as a cell-based glyph renderer. The cell size is
// fixed at construction from the face metrics; every glyph is drawn into
// exactly one cell, clipped if the face renders wider
type Face[P comparable] struct {
	face   font.Face
	model  pixel.Model[P]
	width  int
	height int
	ascent int
}

// New adapts a monospace font.Face. The cell width is taken from the
// advance of 'M'
func New[P comparable](face font.Face, model pixel.Model[P]) (*Face[P], error) {
	metrics := face.Metrics()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("pixelfont: face has no glyph for 'M'")
	}
	f := &Face[P]{
		face:   face,
		model:  model,
		width:  advance.Ceil(),
		height: metrics.Height.Ceil(),
		ascent: metrics.Ascent.Ceil(),
	}
	if f.width <= 0 || f.height <= 0 {
		return nil, fmt.Errorf("pixelfont: face has degenerate cell size %dx%d", f.width, f.height)
	}
	return f, nil
}

// Basic returns a Face over the stdlib-adjacent 7x13 bitmap font. It is a
// reasonable default for small displays
func Basic[P comparable](model pixel.Model[P]) *Face[P] {
	f, err := New(basicfont.Face7x13, model)
	if err != nil {
		// Face7x13 has an 'M' glyph and sane metrics
		panic(err)
	}
	return f
}

func (f *Face[P]) CellSize() (w int, h int) {
	return f.width, f.height
}

// DrawGlyph rasterizes one extended grapheme cluster into the cell with its
// top-left corner at pos. The cell is written with a single row-major fill
// run
func (f *Face[P]) DrawGlyph(dst pixel.Surface[P], pos image.Point, glyph string, style pixelterm.GlyphStyle[P]) error {
	cell := image.Rect(pos.X, pos.Y, pos.X+f.width, pos.Y+f.height)
	run := make([]P, f.width*f.height)
	for i := range run {
		run[i] = style.Background
	}

	if r, _ := utf8.DecodeRuneInString(glyph); r != utf8.RuneError && r != ' ' {
		dot := fixed.Point26_6{
			X: fixed.I(pos.X),
			Y: fixed.I(pos.Y + f.ascent),
		}
		dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
		if ok {
			f.stampMask(run, cell, dr, mask, maskp, style.Foreground)
		}
	}

	lineColor := style.Foreground
	if style.HasUnderlineColor {
		lineColor = style.UnderlineColor
	}
	if style.Underline {
		f.fillRow(run, f.underlineRow(), lineColor)
	}
	if style.Strikethrough {
		f.fillRow(run, f.ascent*2/3, style.Foreground)
	}

	return dst.FillRun(cell, run)
}

// stampMask copies glyph coverage into the cell's run, clipped to the cell
func (f *Face[P]) stampMask(run []P, cell image.Rectangle, dr image.Rectangle, mask image.Image, maskp image.Point, fg P) {
	clipped := dr.Intersect(cell)
	for y := clipped.Min.Y; y < clipped.Max.Y; y += 1 {
		for x := clipped.Min.X; x < clipped.Max.X; x += 1 {
			m := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y)
			a := color.AlphaModel.Convert(m).(color.Alpha)
			if a.A >= alphaThreshold {
				run[(y-cell.Min.Y)*f.width+x-cell.Min.X] = fg
			}
		}
	}
}

func (f *Face[P]) underlineRow() int {
	row := f.ascent + 1
	if row > f.height-1 {
		row = f.height - 1
	}
	return row
}

func (f *Face[P]) fillRow(run []P, row int, c P) {
	if row < 0 || row >= f.height {
		return
	}
	for x := 0; x < f.width; x += 1 {
		run[row*f.width+x] = c
	}
}
