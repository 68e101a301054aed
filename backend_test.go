package pixelterm_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/pixelterm"
	"git.sr.ht/~rockorager/pixelterm/pixel"
	"git.sr.ht/~rockorager/pixelterm/pixelfont"
)

var (
	rgbModel = pixel.RGBModel{}
	white    = pixel.NewRGB(255, 255, 255)
)

// testBackend builds an unbuffered backend over an inspectable framebuffer
// standing in for the display
func testBackend(t *testing.T, w int, h int, cfg pixelterm.Config[pixel.RGB]) (*pixelterm.FrameBuffer[pixel.RGB], *pixelterm.Backend[pixel.RGB]) {
	t.Helper()
	display := pixelterm.NewFrameBuffer[pixel.RGB](image.Rect(0, 0, w, h), rgbModel)
	if cfg.FontRegular == nil {
		cfg.FontRegular = pixelfont.Basic[pixel.RGB](rgbModel)
	}
	backend, err := pixelterm.New[pixel.RGB](display, rgbModel, cfg)
	require.NoError(t, err)
	return display, backend
}

func TestNewRequiresFont(t *testing.T) {
	display := pixelterm.NewFrameBuffer[pixel.RGB](image.Rect(0, 0, 10, 10), rgbModel)
	_, err := pixelterm.New[pixel.RGB](display, rgbModel, pixelterm.Config[pixel.RGB]{})
	assert.ErrorContains(t, err, "font")
}

func TestSizeFloorsToWholeCells(t *testing.T) {
	// 7x13 cells on a 30x30 display: leftover pixels are dead space
	_, backend := testBackend(t, 30, 30, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	cols, rows := backend.Size()
	assert.Equal(t, 4, cols)
	assert.Equal(t, 2, rows)

	ws := backend.WindowSize()
	assert.Equal(t, 4, ws.Cols)
	assert.Equal(t, 2, ws.Rows)
	assert.Equal(t, 30, ws.PixelWidth)
	assert.Equal(t, 30, ws.PixelHeight)
}

func TestSplitRenderingMatchesSingleCall(t *testing.T) {
	font := pixelfont.Basic[pixel.RGB](rgbModel)

	display0, backend0 := testBackend(t, 35, 26, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	require.NoError(t, backend0.Draw(
		pixelterm.CellsForString(0, 0, "Test", pixelterm.ColorDefault, pixelterm.ColorDefault, pixelterm.AttrNone),
	))

	// render "T" through the backend, then "est" directly to the display
	display1, backend1 := testBackend(t, 35, 26, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	require.NoError(t, backend1.Draw(
		pixelterm.CellsForString(0, 0, "T", pixelterm.ColorDefault, pixelterm.ColorDefault, pixelterm.AttrNone),
	))
	style := pixelterm.GlyphStyle[pixel.RGB]{Foreground: white, Background: pixel.RGB{}}
	for i, glyph := range []string{"e", "s", "t"} {
		require.NoError(t, font.DrawGlyph(display1, image.Pt(7*(i+1), 0), glyph, style))
	}

	for y := 0; y < 26; y += 1 {
		for x := 0; x < 35; x += 1 {
			p := image.Pt(x, y)
			require.Equal(t, display0.PixelAt(p), display1.PixelAt(p), "pixel %v differs", p)
		}
	}
}

func TestClearFillsThemeBackground(t *testing.T) {
	theme := pixelterm.ThemeTokyoNight()
	display, backend := testBackend(t, 20, 20, pixelterm.Config[pixel.RGB]{
		Unbuffered: true,
		Theme:      &theme,
	})
	require.NoError(t, backend.Clear())
	assert.Equal(t, theme.Background, display.PixelAt(image.Pt(0, 0)))
	assert.Equal(t, theme.Background, display.PixelAt(image.Pt(19, 19)))
}

func TestClearRegionSupportsOnlyAll(t *testing.T) {
	kinds := []pixelterm.ClearType{
		pixelterm.ClearAfterCursor,
		pixelterm.ClearBeforeCursor,
		pixelterm.ClearCurrentLine,
		pixelterm.ClearUntilNewline,
	}
	_, backend := testBackend(t, 20, 20, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	for _, kind := range kinds {
		err := backend.ClearRegion(kind)
		var unsupported *pixelterm.ClearUnsupportedError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, kind, unsupported.Kind)
		assert.ErrorContains(t, err, kind.String())
	}
}

func TestClearRegionAllEqualsClear(t *testing.T) {
	drawSomething := func(b *pixelterm.Backend[pixel.RGB]) {
		require.NoError(t, b.Draw(
			pixelterm.CellsForString(0, 0, "x", pixelterm.ColorRed, pixelterm.ColorBlue, pixelterm.AttrNone),
		))
	}
	display0, backend0 := testBackend(t, 21, 13, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	drawSomething(backend0)
	require.NoError(t, backend0.Clear())

	display1, backend1 := testBackend(t, 21, 13, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	drawSomething(backend1)
	require.NoError(t, backend1.ClearRegion(pixelterm.ClearAll))

	for y := 0; y < 13; y += 1 {
		for x := 0; x < 21; x += 1 {
			p := image.Pt(x, y)
			require.Equal(t, display0.PixelAt(p), display1.PixelAt(p))
		}
	}
}

func TestCenterAlignmentOffsetsCells(t *testing.T) {
	// 20x16 display with 7x13 cells leaves 6 spare columns and 3 spare
	// rows; centering shifts the grid by (3, 1)
	display, backend := testBackend(t, 20, 16, pixelterm.Config[pixel.RGB]{
		Unbuffered:          true,
		HorizontalAlignment: pixelterm.AlignCenter,
		VerticalAlignment:   pixelterm.AlignCenter,
	})
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{Character: " ", Background: pixelterm.ColorRed}},
	}))

	red := pixel.NewRGB(255, 0, 0)
	assert.Equal(t, red, display.PixelAt(image.Pt(3, 1)))
	assert.Equal(t, pixel.RGB{}, display.PixelAt(image.Pt(2, 1)))
	assert.Equal(t, pixel.RGB{}, display.PixelAt(image.Pt(3, 0)))
}

func TestEndAlignmentOffsetsCells(t *testing.T) {
	display, backend := testBackend(t, 20, 16, pixelterm.Config[pixel.RGB]{
		Unbuffered:          true,
		HorizontalAlignment: pixelterm.AlignEnd,
		VerticalAlignment:   pixelterm.AlignEnd,
	})
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{Character: " ", Background: pixelterm.ColorRed}},
	}))

	red := pixel.NewRGB(255, 0, 0)
	assert.Equal(t, red, display.PixelAt(image.Pt(6, 3)))
	assert.Equal(t, pixel.RGB{}, display.PixelAt(image.Pt(5, 3)))
}

func TestFlushCopiesFramebufferInBulk(t *testing.T) {
	display, backend := testBackend(t, 21, 13, pixelterm.Config[pixel.RGB]{})
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{Character: " ", Background: pixelterm.ColorGreen}},
	}))

	// nothing reaches the display until flush
	assert.Equal(t, pixel.RGB{}, display.PixelAt(image.Pt(0, 0)))

	require.NoError(t, backend.Flush())
	assert.Equal(t, pixel.NewRGB(0, 255, 0), display.PixelAt(image.Pt(0, 0)))
}

func TestFlushFiresHook(t *testing.T) {
	calls := 0
	_, backend := testBackend(t, 21, 13, pixelterm.Config[pixel.RGB]{
		OnFlush: func(pixel.Surface[pixel.RGB]) {
			calls += 1
		},
	})
	require.NoError(t, backend.Flush())
	require.NoError(t, backend.Flush())
	assert.Equal(t, 2, calls)
}

func TestFlushDrawsVisibleCursor(t *testing.T) {
	cfg := pixelterm.Config[pixel.RGB]{
		Cursor: pixelterm.CursorConfig{
			Style: pixelterm.CursorOutline,
			Color: white,
		},
	}
	display, backend := testBackend(t, 21, 13, cfg)

	require.NoError(t, backend.Flush())
	assert.Equal(t, pixel.RGB{}, display.PixelAt(image.Pt(0, 0)), "hidden cursor must not draw")

	backend.ShowCursor()
	require.NoError(t, backend.Flush())
	assert.Equal(t, white, display.PixelAt(image.Pt(0, 0)))

	backend.HideCursor()
	require.NoError(t, backend.Flush())
	assert.Equal(t, pixel.RGB{}, display.PixelAt(image.Pt(0, 0)))
}

func TestCursorPositionRoundTrip(t *testing.T) {
	_, backend := testBackend(t, 21, 13, pixelterm.Config[pixel.RGB]{})
	backend.SetCursorPosition(2, 1)
	col, row := backend.CursorPosition()
	assert.Equal(t, 2, col)
	assert.Equal(t, 1, row)
}

func TestSlowBlinkHidesTrackedCells(t *testing.T) {
	display, backend := testBackend(t, 14, 13, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{
			Character: "X",
			Attribute: pixelterm.AttrSlowBlink,
		}},
	}))

	// find a glyph stroke to watch
	var stroke image.Point
	found := false
	for y := 0; y < 13 && !found; y += 1 {
		for x := 0; x < 7 && !found; x += 1 {
			if display.PixelAt(image.Pt(x, y)) == white {
				stroke = image.Pt(x, y)
				found = true
			}
		}
	}
	require.True(t, found, "glyph left no strokes")

	// over one full slow cycle the glyph is erased for exactly 5 of 30
	// frames (15% duty at 30fps). The first Draw above was frame 1
	hidden := 0
	for frame := 2; frame <= 31; frame += 1 {
		require.NoError(t, backend.Draw(nil))
		if display.PixelAt(stroke) != white {
			hidden += 1
		}
	}
	assert.Equal(t, 5, hidden)
}

func TestDisableBlinkRendersStatically(t *testing.T) {
	display, backend := testBackend(t, 14, 13, pixelterm.Config[pixel.RGB]{
		Unbuffered:   true,
		DisableBlink: true,
	})
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{
			Character: "X",
			Attribute: pixelterm.AttrSlowBlink,
		}},
	}))
	var stroke image.Point
	found := false
	for y := 0; y < 13 && !found; y += 1 {
		for x := 0; x < 7 && !found; x += 1 {
			if display.PixelAt(image.Pt(x, y)) == white {
				stroke = image.Pt(x, y)
				found = true
			}
		}
	}
	require.True(t, found)

	for frame := 0; frame < 60; frame += 1 {
		require.NoError(t, backend.Draw(nil))
		require.Equal(t, white, display.PixelAt(stroke))
	}
}

func TestReverseSwapsColors(t *testing.T) {
	display, backend := testBackend(t, 7, 13, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{
			Character: " ",
			Attribute: pixelterm.AttrReverse,
		}},
	}))
	// background is now the default foreground
	assert.Equal(t, white, display.PixelAt(image.Pt(0, 0)))
}

func TestInvisibleErasesGlyph(t *testing.T) {
	display, backend := testBackend(t, 7, 13, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{
			Character: "X",
			Attribute: pixelterm.AttrInvisible,
		}},
	}))
	for y := 0; y < 13; y += 1 {
		for x := 0; x < 7; x += 1 {
			require.Equal(t, pixel.RGB{}, display.PixelAt(image.Pt(x, y)))
		}
	}
}

func TestDimHalvesForeground(t *testing.T) {
	display, backend := testBackend(t, 7, 13, pixelterm.Config[pixel.RGB]{Unbuffered: true})
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{
			Character:  "X",
			Foreground: pixelterm.ColorWhite,
			Attribute:  pixelterm.AttrDim,
		}},
	}))
	dimmed := pixel.NewRGB(127, 127, 127)
	found := false
	for y := 0; y < 13 && !found; y += 1 {
		for x := 0; x < 7 && !found; x += 1 {
			if display.PixelAt(image.Pt(x, y)) == dimmed {
				found = true
			}
		}
	}
	assert.True(t, found, "no dimmed stroke found")
}

func TestMonochromeBackend(t *testing.T) {
	model := pixel.MonoModel{}
	display := pixelterm.NewFrameBuffer[pixel.Mono](image.Rect(0, 0, 21, 13), model)
	backend, err := pixelterm.New[pixel.Mono](display, model, pixelterm.Config[pixel.Mono]{
		FontRegular: pixelfont.Basic[pixel.Mono](model),
		Unbuffered:  true,
	})
	require.NoError(t, err)

	// default foreground resolves to white, which is "on" on a 1-bit
	// panel; default background is "off"
	require.NoError(t, backend.Draw([]pixelterm.CellUpdate{
		{Col: 0, Row: 0, Cell: pixelterm.Cell{Character: " ", Attribute: pixelterm.AttrReverse}},
	}))
	assert.Equal(t, pixel.MonoOn, display.PixelAt(image.Pt(0, 0)))

	require.NoError(t, backend.Clear())
	assert.Equal(t, pixel.MonoOff, display.PixelAt(image.Pt(0, 0)))
}
