package pixelterm

import (
	"image"

	"git.sr.ht/~rockorager/pixelterm/pixel"
)

// CursorStyle is how the cursor is rendered on screen
type CursorStyle uint8

const (
	// CursorInverse inverts every pixel in the character cell. Inversion
	// needs pixel read-back, so on an unbuffered backend it degrades to
	// CursorUnderline
	CursorInverse CursorStyle = iota
	// CursorUnderline is a thin line at the bottom of the character cell
	CursorUnderline
	// CursorOutline is a one pixel border around the character cell
	CursorOutline
	// CursorJapanese is a pair of corner brackets at the top-left and
	// bottom-right of the character cell
	CursorJapanese
)

// CursorConfig is the cursor's appearance and behavior
type CursorConfig struct {
	Style CursorStyle
	// Blink hides the cursor on the slow blink rhythm
	Blink bool
	// Color is used by every style except inverse
	Color pixel.RGB
}

// DefaultCursorConfig returns a blinking inverse cursor, white where the
// inverse style cannot be used
func DefaultCursorConfig() CursorConfig {
	return CursorConfig{
		Style: CursorInverse,
		Blink: true,
		Color: pixel.NewRGB(255, 255, 255),
	}
}

type cursor struct {
	visible bool
	col     int
	row     int
	config  CursorConfig
}

// drawCursor renders the cursor onto the display. fb supplies pixel
// read-back for the inverse style and may be nil
func drawCursor[P comparable](cur *cursor, display pixel.Surface[P], fb *FrameBuffer[P], model pixel.Model[P], offset image.Point, cellW int, cellH int) error {
	origin := image.Pt(cur.col*cellW, cur.row*cellH).Add(offset)
	style := cur.config.Style
	if style == CursorInverse && fb == nil {
		style = CursorUnderline
	}
	c := model.Convert(cur.config.Color, pixel.Foreground)

	switch style {
	case CursorInverse:
		return drawInverse[P](display, fb, model, origin, cellW, cellH)
	case CursorUnderline:
		return fillRect(display, origin, 0, cellH-1, cellW, 1, c)
	case CursorOutline:
		if err := fillRect(display, origin, 0, 0, cellW, 1, c); err != nil {
			return err
		}
		if err := fillRect(display, origin, 0, cellH-1, cellW, 1, c); err != nil {
			return err
		}
		if err := fillRect(display, origin, 0, 0, 1, cellH, c); err != nil {
			return err
		}
		return fillRect(display, origin, cellW-1, 0, 1, cellH, c)
	case CursorJapanese:
		corner := cellW / 2
		if corner < 2 {
			corner = 2
		}
		if err := fillRect(display, origin, 0, 0, corner, 1, c); err != nil {
			return err
		}
		if err := fillRect(display, origin, 0, 0, 1, corner, c); err != nil {
			return err
		}
		if err := fillRect(display, origin, cellW-1, cellH-corner, 1, corner, c); err != nil {
			return err
		}
		return fillRect(display, origin, cellW-corner, cellH-1, corner, 1, c)
	}
	return nil
}

func fillRect[P comparable](display pixel.Surface[P], origin image.Point, dx int, dy int, w int, h int, c P) error {
	r := image.Rect(origin.X+dx, origin.Y+dy, origin.X+dx+w, origin.Y+dy+h)
	if err := display.FillSolid(r, c); err != nil {
		return &DrawError{Cause: err}
	}
	return nil
}

// drawInverse writes back each pixel under the cell with its channels
// inverted, one row run at a time. Reads come from the in-memory mirror,
// never the raw display
func drawInverse[P comparable](display pixel.Surface[P], fb pixel.Reader[P], model pixel.Model[P], origin image.Point, cellW int, cellH int) error {
	run := make([]P, cellW)
	for y := origin.Y; y < origin.Y+cellH; y += 1 {
		for i := 0; i < cellW; i += 1 {
			c := model.RGB(fb.PixelAt(image.Pt(origin.X+i, y)))
			run[i] = model.Convert(c.Invert(), pixel.Foreground)
		}
		row := image.Rect(origin.X, y, origin.X+cellW, y+1)
		if err := display.FillRun(row, run); err != nil {
			return &DrawError{Cause: err}
		}
	}
	return nil
}
