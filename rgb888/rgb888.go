package rgb888

import (
	"image"
	"image/color"
)

// Color is a 24-bit RGB color with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// RGBA converts the Color to standard 16-bit-per-channel RGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	// Replicate the 8-bit value into both bytes: 0xAB -> 0xABAB.
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// Named colors matching the common display palettes.
var (
	Black  = Color{0x00, 0x00, 0x00}
	White  = Color{0xFF, 0xFF, 0xFF}
	Red    = Color{0xFF, 0x00, 0x00}
	Green  = Color{0x00, 0xFF, 0x00}
	Blue   = Color{0x00, 0x00, 0xFF}
	Yellow = Color{0xFF, 0xFF, 0x00}
)

// toColor converts any color.Color to Color.
func toColor(c color.Color) color.Color {
	if r, ok := c.(Color); ok {
		return r
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit values; keep the high byte of each channel.
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)

// Image is a 24-bit RGB framebuffer. Pixels are stored row-major with
// 3 bytes per pixel in R, G, B order.
type Image struct {
	Pix    []byte          // Pixel data (3 bytes per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}

	stride := w * 3
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// RGBAt returns the Color of the pixel at (x, y).
func (p *Image) RGBAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Color{}
	}
	i := p.PixOffset(x, y)
	return Color{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2]}
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.setRGB(x, y, Model.Convert(c).(Color))
}

// SetRGB sets the Color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetRGB(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.setRGB(x, y, c)
}

func (p *Image) setRGB(x, y int, c Color) {
	i := p.PixOffset(x, y)
	p.Pix[i] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.B
}

// PixOffset returns the byte offset of the first channel of the pixel
// at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}
