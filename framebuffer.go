package pixelterm

import (
	"fmt"
	"image"
	"image/color"

	"git.sr.ht/~rockorager/pixelterm/pixel"
)

// FrameBuffer is an in-memory pixel mirror of a display. It supports the
// read-back operations a write-only hardware surface cannot provide, and it
// batches cell draws into a single bulk transfer on flush. Dimensions are
// fixed at construction; there is no support for resizing.
//
// FrameBuffer also implements image.Image through its color model, so a
// buffer can be handed to the stdlib image packages or a sixel encoder
// directly
type FrameBuffer[P comparable] struct {
	bounds image.Rectangle
	pix    []P
	model  pixel.Model[P]
}

// NewFrameBuffer creates a buffer covering bounds. Pixels start at the zero
// value of the native pixel type
func NewFrameBuffer[P comparable](bounds image.Rectangle, model pixel.Model[P]) *FrameBuffer[P] {
	return &FrameBuffer[P]{
		bounds: bounds,
		pix:    make([]P, bounds.Dx()*bounds.Dy()),
		model:  model,
	}
}

func (f *FrameBuffer[P]) Bounds() image.Rectangle {
	return f.bounds
}

// FillSolid fills the rectangle with a single pixel value. Drawing is
// clipped to the buffer
func (f *FrameBuffer[P]) FillSolid(r image.Rectangle, c P) error {
	r = r.Intersect(f.bounds)
	for y := r.Min.Y; y < r.Max.Y; y += 1 {
		row := (y - f.bounds.Min.Y) * f.bounds.Dx()
		for x := r.Min.X; x < r.Max.X; x += 1 {
			f.pix[row+x-f.bounds.Min.X] = c
		}
	}
	return nil
}

// FillRun fills the rectangle with the given pixels in row-major order,
// clipped to the buffer. The run must cover the full rectangle
func (f *FrameBuffer[P]) FillRun(r image.Rectangle, run []P) error {
	if len(run) != r.Dx()*r.Dy() {
		return fmt.Errorf("pixel run has %d pixels, rectangle needs %d", len(run), r.Dx()*r.Dy())
	}
	clipped := r.Intersect(f.bounds)
	for y := clipped.Min.Y; y < clipped.Max.Y; y += 1 {
		row := (y - f.bounds.Min.Y) * f.bounds.Dx()
		src := (y - r.Min.Y) * r.Dx()
		for x := clipped.Min.X; x < clipped.Max.X; x += 1 {
			f.pix[row+x-f.bounds.Min.X] = run[src+x-r.Min.X]
		}
	}
	return nil
}

// PixelAt reads back a single pixel. Points outside the buffer read as the
// zero pixel
func (f *FrameBuffer[P]) PixelAt(p image.Point) P {
	var zero P
	if !p.In(f.bounds) {
		return zero
	}
	return f.pix[(p.Y-f.bounds.Min.Y)*f.bounds.Dx()+p.X-f.bounds.Min.X]
}

// Pixels is the backing pixel slice in row-major order, suitable for one
// bulk FillRun onto the mirrored display
func (f *FrameBuffer[P]) Pixels() []P {
	return f.pix
}

func (f *FrameBuffer[P]) ColorModel() color.Model {
	return color.RGBAModel
}

func (f *FrameBuffer[P]) At(x int, y int) color.Color {
	c := f.model.RGB(f.PixelAt(image.Pt(x, y)))
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
