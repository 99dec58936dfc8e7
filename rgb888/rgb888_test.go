package rgb888

import (
	"image"
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name                string
		c                   Color
		wantR, wantG, wantB uint32
	}{
		{"black", Black, 0x0000, 0x0000, 0x0000},
		{"white", White, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", Red, 0xFFFF, 0x0000, 0x0000},
		{"mid gray", Color{0x80, 0x80, 0x80}, 0x8080, 0x8080, 0x8080},
		{"mixed", Color{0x12, 0x34, 0x56}, 0x1212, 0x3434, 0x5656},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", Color{1, 2, 3}, Color{1, 2, 3}},
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"rgba", color.RGBA{0x12, 0x34, 0x56, 0xFF}, Color{0x12, 0x34, 0x56}},
		{"gray", color.Gray{Y: 0x80}, Color{0x80, 0x80, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(Color)
			if got != tt.want {
				t.Errorf("Model.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"96x64", image.Rect(0, 0, 96, 64), 288, 18432},
		{"4x2", image.Rect(0, 0, 4, 2), 12, 24},
		{"offset rect", image.Rect(10, 20, 14, 22), 12, 24},
		{"empty width", image.Rect(0, 0, 0, 5), 0, 0},
		{"empty height", image.Rect(0, 0, 5, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestImagePixelPacking(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 1))

	img.SetRGB(0, 0, Color{0x11, 0x22, 0x33})
	img.SetRGB(1, 0, Color{0xAA, 0xBB, 0xCC})

	want := []byte{0x11, 0x22, 0x33, 0xAA, 0xBB, 0xCC}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestImageSetAndAt(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))

	img.Set(1, 2, color.RGBA{0x10, 0x20, 0x30, 0xFF})
	if got := img.RGBAt(1, 2); got != (Color{0x10, 0x20, 0x30}) {
		t.Errorf("RGBAt(1, 2) = %v, want {10 20 30}", got)
	}

	// At returns the same value through the color.Color interface.
	if got := img.At(1, 2).(Color); got != (Color{0x10, 0x20, 0x30}) {
		t.Errorf("At(1, 2) = %v, want {10 20 30}", got)
	}

	// Untouched pixels stay black.
	if got := img.RGBAt(0, 0); got != Black {
		t.Errorf("RGBAt(0, 0) = %v, want black", got)
	}
}

func TestImageOffsetRect(t *testing.T) {
	img := NewImage(image.Rect(10, 20, 14, 24))

	img.SetRGB(10, 20, Red)
	img.SetRGB(13, 23, Blue)

	if got := img.RGBAt(10, 20); got != Red {
		t.Errorf("RGBAt(10, 20) = %v, want red", got)
	}
	if got := img.RGBAt(13, 23); got != Blue {
		t.Errorf("RGBAt(13, 23) = %v, want blue", got)
	}
	if off := img.PixOffset(10, 20); off != 0 {
		t.Errorf("PixOffset(10, 20) = %d, want 0", off)
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))

	// Out-of-bounds Set is a no-op.
	img.SetRGB(5, 5, White)
	img.SetRGB(-1, 0, White)
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after out-of-bounds Set, want 0", i, b)
		}
	}

	// Out-of-bounds At returns the zero color.
	if got := img.RGBAt(5, 5); got != (Color{}) {
		t.Errorf("RGBAt(5, 5) = %v, want zero color", got)
	}
}

func TestImageColorModelAndBounds(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 8, 4))
	if img.ColorModel() != Model {
		t.Error("ColorModel() did not return Model")
	}
	if img.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("Bounds() = %v, want (0,0)-(8,4)", img.Bounds())
	}
}
