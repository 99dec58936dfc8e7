package fadedrect

import (
	"image"
	"iter"

	"github.com/flavioheleno/fadedrect/rgb888"
)

// Target is a pixel sink: anything that can fill rectangles with a solid
// color and accept individual pixels. Implementations must clip
// out-of-bounds coordinates; the renderer does not.
type Target interface {
	// FillRect paints every pixel in r with c.
	FillRect(r image.Rectangle, c rgb888.Color) error

	// DrawPixels paints each (point, color) pair produced by pixels.
	// The sequence is finite and single-pass.
	DrawPixels(pixels iter.Seq2[image.Point, rgb888.Color]) error
}

// Framebuffer is an in-memory Target backed by an rgb888.Image. It never
// fails and clips writes to its bounds. It is the software sink used for
// simulation and tests, and its image composes with image/draw.
type Framebuffer struct {
	img *rgb888.Image
}

// NewFramebuffer creates a Framebuffer with the given bounds.
func NewFramebuffer(r image.Rectangle) *Framebuffer {
	return &Framebuffer{img: rgb888.NewImage(r)}
}

// Image returns the backing image.
func (f *Framebuffer) Image() *rgb888.Image {
	return f.img
}

// FillRect implements Target.
func (f *Framebuffer) FillRect(r image.Rectangle, c rgb888.Color) error {
	r = r.Intersect(f.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			f.img.SetRGB(x, y, c)
		}
	}
	return nil
}

// DrawPixels implements Target.
func (f *Framebuffer) DrawPixels(pixels iter.Seq2[image.Point, rgb888.Color]) error {
	for p, c := range pixels {
		f.img.SetRGB(p.X, p.Y, c)
	}
	return nil
}
