// Package pixelterm renders a terminal-style cell grid onto pixel-addressable
// displays. It bridges a cell-grid UI model (position, glyph, colors, style
// attributes, cursor) and a display surface that only exposes primitive fill
// operations and a native pixel color type: full RGB, 1-bit monochrome, or a
// 3-color e-paper palette.
//
// Rendering is single-threaded and synchronous. The caller's render loop
// determines pacing; blink timing is expressed in frame counts rather than
// wall-clock time
package pixelterm

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/pixelterm/pixel"
)

// Alignment places the cell grid within the display when the pixel
// dimensions are not an exact multiple of the glyph cell size
type Alignment uint8

const (
	// AlignStart aligns with the start of the display: left or top
	AlignStart Alignment = iota
	// AlignCenter is a best effort alignment with the center
	AlignCenter
	// AlignEnd aligns with the end of the display: right or bottom
	AlignEnd
)

func (a Alignment) offset(extra int) int {
	switch a {
	case AlignCenter:
		return extra / 2
	case AlignEnd:
		return extra
	}
	return 0
}

// WindowSize reports the grid dimensions along with the raw pixel dimensions
// of the display
type WindowSize struct {
	Cols        int
	Rows        int
	PixelWidth  int
	PixelHeight int
}

// Config is the backend configuration. The zero value selects defaults
// everywhere except FontRegular, which is required
type Config[P comparable] struct {
	// OnFlush fires after each flush with mutable access to the display,
	// for hardware presentation side effects
	OnFlush func(pixel.Surface[P])

	// FontRegular is the font used for all cells. Required
	FontRegular Font[P]
	// FontBold is used for cells with AttrBold. Optional; regular is
	// used when nil
	FontBold Font[P]
	// FontItalic is used for cells with AttrItalic. Optional; regular is
	// used when nil
	FontItalic Font[P]

	// HorizontalAlignment places the grid when the display width is not
	// an exact multiple of the cell width
	HorizontalAlignment Alignment
	// VerticalAlignment places the grid when the display height is not
	// an exact multiple of the cell height
	VerticalAlignment Alignment

	// Theme maps terminal colors to display pixels. Nil selects the ANSI
	// theme
	Theme *Theme

	// Cursor is the cursor appearance. The zero value selects
	// DefaultCursorConfig
	Cursor CursorConfig

	// Blink is the blink timing. Nil selects DefaultBlinkConfig
	Blink *BlinkConfig
	// DisableBlink turns the blink subsystem off entirely: blinking
	// cells render as static and the cursor never hides
	DisableBlink bool

	// Unbuffered draws directly to the display instead of an in-memory
	// framebuffer. Without the framebuffer, pixel read-back is
	// unavailable and the inverse cursor degrades to underline
	Unbuffered bool

	// Logger is an optional slog.Logger the backend will log to
	Logger *slog.Logger
}

// Backend renders cell updates onto one display. It requires exclusive
// access to the display for its lifetime; no locking is done
type Backend[P comparable] struct {
	display pixel.Surface[P]
	model   pixel.Model[P]
	// canvas receives cell draws: the framebuffer when buffered,
	// otherwise the display itself
	canvas pixel.Surface[P]
	fb     *FrameBuffer[P]

	onFlush func(pixel.Surface[P])

	fontRegular Font[P]
	fontBold    Font[P]
	fontItalic  Font[P]

	cellW int
	cellH int
	// charOffset shifts every cell position to absorb leftover pixels
	// per the alignment policy
	charOffset image.Point

	cols   int
	rows   int
	pixelW int
	pixelH int

	theme  Theme
	cursor cursor
	blink  blinker
	log    *slog.Logger
}

// New creates a backend for the given display. The display's native pixel
// type is fixed by the model; the same backend logic serves full-color,
// monochrome, and palette displays
func New[P comparable](display pixel.Surface[P], model pixel.Model[P], cfg Config[P]) (*Backend[P], error) {
	if display == nil {
		return nil, fmt.Errorf("pixelterm: display is required")
	}
	if model == nil {
		return nil, fmt.Errorf("pixelterm: pixel model is required")
	}
	if cfg.FontRegular == nil {
		return nil, fmt.Errorf("pixelterm: regular font is required")
	}
	cellW, cellH := cfg.FontRegular.CellSize()
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("pixelterm: font reports invalid cell size %dx%d", cellW, cellH)
	}

	bounds := display.Bounds()
	pixelW := bounds.Dx()
	pixelH := bounds.Dy()

	offset := image.Pt(
		cfg.HorizontalAlignment.offset(pixelW%cellW),
		cfg.VerticalAlignment.offset(pixelH%cellH),
	).Add(bounds.Min)

	theme := ThemeANSI()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	cursorCfg := cfg.Cursor
	if cursorCfg == (CursorConfig{}) {
		cursorCfg = DefaultCursorConfig()
	}
	onFlush := cfg.OnFlush
	if onFlush == nil {
		onFlush = func(pixel.Surface[P]) {}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b := &Backend[P]{
		display:     display,
		model:       model,
		canvas:      display,
		onFlush:     onFlush,
		fontRegular: cfg.FontRegular,
		fontBold:    cfg.FontBold,
		fontItalic:  cfg.FontItalic,
		cellW:       cellW,
		cellH:       cellH,
		charOffset:  offset,
		cols:        pixelW / cellW,
		rows:        pixelH / cellH,
		pixelW:      pixelW,
		pixelH:      pixelH,
		theme:       theme,
		cursor:      cursor{config: cursorCfg},
		log:         logger,
	}
	if !cfg.Unbuffered {
		b.fb = NewFrameBuffer[P](bounds, model)
		b.canvas = b.fb
	}
	if cfg.DisableBlink {
		b.blink = noBlink{}
	} else {
		blinkCfg := DefaultBlinkConfig()
		if cfg.Blink != nil {
			blinkCfg = *cfg.Blink
		}
		b.blink = &frameBlinker{
			config: blinkCfg,
			cells:  make(map[[2]int]Cell),
		}
	}
	b.log.Debug("backend created",
		"cols", b.cols,
		"rows", b.rows,
		"pixels", fmt.Sprintf("%dx%d", pixelW, pixelH),
		"cell", fmt.Sprintf("%dx%d", cellW, cellH),
		"buffered", !cfg.Unbuffered,
	)
	return b, nil
}

// Draw applies a stream of changed cells to the display. There is no partial
// rollback: on a draw failure, cells drawn before the failure remain
func (b *Backend[P]) Draw(updates []CellUpdate) error {
	if b.blink.tick() {
		for key, cell := range b.blink.tracked() {
			if err := b.drawCell(key[0], key[1], cell); err != nil {
				return err
			}
		}
	}
	for _, u := range updates {
		b.blink.track(u.Col, u.Row, u.Cell)
		if err := b.drawCell(u.Col, u.Row, u.Cell); err != nil {
			return err
		}
	}
	return nil
}

// HideCursor makes the cursor invisible
func (b *Backend[P]) HideCursor() {
	b.cursor.visible = false
}

// ShowCursor makes the cursor visible
func (b *Backend[P]) ShowCursor() {
	b.cursor.visible = true
}

// CursorPosition reports the cursor's grid position
func (b *Backend[P]) CursorPosition() (col int, row int) {
	return b.cursor.col, b.cursor.row
}

// SetCursorPosition moves the cursor to a grid position
func (b *Backend[P]) SetCursorPosition(col int, row int) {
	b.cursor.col = col
	b.cursor.row = row
}

// Clear fills the whole surface with the theme's background color
func (b *Backend[P]) Clear() error {
	bg := b.model.Convert(b.theme.resolve(ColorDefault, pixel.Background), pixel.Background)
	if err := b.canvas.FillSolid(b.canvas.Bounds(), bg); err != nil {
		return &DrawError{Cause: err}
	}
	return nil
}

// ClearRegion clears a region of the grid. Only ClearAll is supported; any
// partial clear kind fails with a ClearUnsupportedError naming the kind
func (b *Backend[P]) ClearRegion(kind ClearType) error {
	if kind == ClearAll {
		return b.Clear()
	}
	b.log.Warn("unsupported clear region requested", "kind", kind.String())
	return &ClearUnsupportedError{Kind: kind}
}

// Size reports the grid dimensions in cells. Leftover pixels that do not
// fill a whole cell are dead space and never appear in the reported size
func (b *Backend[P]) Size() (cols int, rows int) {
	return b.cols, b.rows
}

// WindowSize reports the grid dimensions along with the raw pixel
// dimensions
func (b *Backend[P]) WindowSize() WindowSize {
	return WindowSize{
		Cols:        b.cols,
		Rows:        b.rows,
		PixelWidth:  b.pixelW,
		PixelHeight: b.pixelH,
	}
}

// Flush presents the frame: the framebuffer, if any, is copied to the
// display in one bulk transfer, the cursor is drawn on top unless hidden by
// blink, and the OnFlush hook fires
func (b *Backend[P]) Flush() error {
	if b.fb != nil {
		if err := b.display.FillRun(b.display.Bounds(), b.fb.Pixels()); err != nil {
			return &DrawError{Cause: err}
		}
	}
	if b.cursor.visible {
		hidden := b.cursor.config.Blink && b.blink.slowHidden()
		if !hidden {
			err := drawCursor(&b.cursor, b.display, b.fb, b.model, b.charOffset, b.cellW, b.cellH)
			if err != nil {
				return err
			}
		}
	}
	b.onFlush(b.display)
	return nil
}

// Display is the surface this backend renders to
func (b *Backend[P]) Display() pixel.Surface[P] {
	return b.display
}

// Image exposes the in-memory framebuffer as an image.Image. It returns nil
// on an unbuffered backend
func (b *Backend[P]) Image() image.Image {
	if b.fb == nil {
		return nil
	}
	return b.fb
}

// drawCell resolves one cell's visual style and draws its glyph. Attributes
// apply in a fixed order: bold font, dim, italic font, underline, slow
// blink, rapid blink, reverse, invisible, strikethrough. The order is a
// contract; reverse-then-invisible is observably different from the other
// way around
func (b *Backend[P]) drawCell(col int, row int, cell Cell) error {
	pos := image.Pt(col*b.cellW, row*b.cellH).Add(b.charOffset)

	fg := b.model.Convert(b.theme.resolve(cell.Foreground, pixel.Foreground), pixel.Foreground)
	bg := b.model.Convert(b.theme.resolve(cell.Background, pixel.Background), pixel.Background)

	font := b.fontRegular
	style := GlyphStyle[P]{}

	attr := cell.Attribute
	if attr&AttrBold != 0 && b.fontBold != nil {
		font = b.fontBold
	}
	if attr&AttrDim != 0 {
		fg = b.model.Convert(b.model.RGB(fg).Dim(), pixel.Foreground)
	}
	if attr&AttrItalic != 0 && b.fontItalic != nil {
		font = b.fontItalic
	}
	if attr&AttrUnderline != 0 {
		style.Underline = true
	}
	if attr&AttrSlowBlink != 0 && b.blink.slowHidden() {
		fg = bg
	}
	if attr&AttrRapidBlink != 0 && b.blink.fastHidden() {
		fg = bg
	}
	if attr&AttrReverse != 0 {
		fg, bg = bg, fg
	}
	if attr&AttrInvisible != 0 {
		fg = bg
	}
	if attr&AttrStrikethrough != 0 {
		style.Strikethrough = true
	}

	if cell.UnderlineColor != ColorDefault {
		c := b.theme.resolve(cell.UnderlineColor, pixel.Foreground)
		style.UnderlineColor = b.model.Convert(c, pixel.Foreground)
		style.HasUnderlineColor = true
	}

	style.Foreground = fg
	style.Background = bg

	if err := font.DrawGlyph(b.canvas, pos, cell.Character, style); err != nil {
		return &DrawError{Cause: err}
	}
	return nil
}

// blinker is the blink subsystem behind a single seam so the disabled case
// is a no-op strategy rather than branches through the draw path
type blinker interface {
	// tick advances one frame and reports whether visibility changed
	tick() bool
	// track records or forgets a cell in the blinking set
	track(col int, row int, cell Cell)
	// tracked is the current blinking-cell set
	tracked() map[[2]int]Cell
	slowHidden() bool
	fastHidden() bool
}

type noBlink struct{}

func (noBlink) tick() bool               { return false }
func (noBlink) track(int, int, Cell)     {}
func (noBlink) tracked() map[[2]int]Cell { return nil }
func (noBlink) slowHidden() bool         { return false }
func (noBlink) fastHidden() bool         { return false }

type frameBlinker struct {
	config BlinkConfig
	frame  uint16
	// cells are snapshots of the currently blinking cells, keyed by
	// (col, row)
	cells map[[2]int]Cell
}

func (f *frameBlinker) tick() bool {
	f.frame += 1
	changed := f.config.Tick(f.frame)
	return changed && len(f.cells) > 0
}

func (f *frameBlinker) track(col int, row int, cell Cell) {
	if cell.blinks() {
		f.cells[[2]int{col, row}] = cell
		return
	}
	delete(f.cells, [2]int{col, row})
}

func (f *frameBlinker) tracked() map[[2]int]Cell {
	return f.cells
}

func (f *frameBlinker) slowHidden() bool {
	return f.config.Slow.IsHidden()
}

func (f *frameBlinker) fastHidden() bool {
	return f.config.Fast.IsHidden()
}
