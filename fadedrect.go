package fadedrect

import (
	"image"
	"iter"

	"github.com/flavioheleno/fadedrect/rgb888"
)

// Edge selects which rectangle edge the fade darkens toward.
type Edge uint8

const (
	Bottom Edge = iota
	Top
	Left
	Right
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case Bottom:
		return "Bottom"
	case Top:
		return "Top"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}

// Fading describes a banded fade: the Steps-wide strip adjacent to Edge
// darkens toward black in discrete steps. Steps == 0 disables the fade.
type Fading struct {
	Edge  Edge
	Steps uint8
}

// DefaultFading is a five-step fade toward the left edge.
var DefaultFading = Fading{Edge: Left, Steps: 5}

// FadedRectangle is a filled rectangle whose color darkens toward one edge.
// It is a freely copyable value; one instance describes one drawing
// operation and holds no resources.
type FadedRectangle struct {
	Rect      image.Rectangle
	BaseColor rgb888.Color
	Fading    Fading
}

// New creates a FadedRectangle covering rect, filled with base and faded
// according to fading.
func New(rect image.Rectangle, base rgb888.Color, fading Fading) FadedRectangle {
	return FadedRectangle{
		Rect:      rect,
		BaseColor: base,
		Fading:    fading,
	}
}

// band returns the fade band in rect-relative coordinates as the half-open
// ranges [startRow, endRow) x [startCol, endCol). The band never extends
// past the rectangle, even when Steps exceeds its extent.
func (f FadedRectangle) band() (startRow, endRow, startCol, endCol int) {
	w, h := f.Rect.Dx(), f.Rect.Dy()
	s := int(f.Fading.Steps)
	switch f.Fading.Edge {
	case Bottom:
		return max(h-s, 0), h, 0, w
	case Top:
		return 0, min(s, h), 0, w
	case Right:
		return 0, h, max(w-s, 0), w
	default: // Left
		return 0, h, 0, min(s, w)
	}
}

// fadeFactor returns the fade factor in [0, 256] for the pixel at
// rect-relative (col, row): 0 leaves the base color untouched, 256 is
// fully black.
//
// The Right/Bottom formulas use an off-by-one relative to Left/Top on
// purpose: Left/Top place the fully dark pixel on the edge itself, while
// Right/Bottom place it on the innermost column of the band. Callers rely
// on these exact integer ramps.
func (f FadedRectangle) fadeFactor(col, row int) int {
	w, h := f.Rect.Dx(), f.Rect.Dy()
	s := int(f.Fading.Steps)
	if s == 0 {
		return 0
	}
	switch f.Fading.Edge {
	case Bottom:
		if start := max(h-s, 0); row >= start {
			return (row - start + 1) * 256 / s
		}
	case Top:
		if row < s {
			return (s - row) * 256 / s
		}
	case Right:
		if start := max(w-s, 0); col >= start {
			return (col - start + 1) * 256 / s
		}
	case Left:
		if col < s {
			return (s - col) * 256 / s
		}
	}
	return 0
}

// shade darkens the base color by the given fade factor. All arithmetic is
// integer with truncating division; do not substitute floating point, the
// outputs are part of the contract.
func (f FadedRectangle) shade(fade int) rgb888.Color {
	return rgb888.Color{
		R: uint8(int(f.BaseColor.R) * (256 - fade) / 256),
		G: uint8(int(f.BaseColor.G) * (256 - fade) / 256),
		B: uint8(int(f.BaseColor.B) * (256 - fade) / 256),
	}
}

// Pixels returns the fade-band pixels in row-major order (y outer, x inner)
// as a lazy, single-pass sequence. Pixels outside the band keep the base
// color and are not produced; Draw fills them beforehand.
func (f FadedRectangle) Pixels() iter.Seq2[image.Point, rgb888.Color] {
	startRow, endRow, startCol, endCol := f.band()
	return func(yield func(image.Point, rgb888.Color) bool) {
		for row := startRow; row < endRow; row++ {
			for col := startCol; col < endCol; col++ {
				p := image.Point{X: f.Rect.Min.X + col, Y: f.Rect.Min.Y + row}
				if !yield(p, f.shade(f.fadeFactor(col, row))) {
					return
				}
			}
		}
	}
}

// Draw renders the faded rectangle to t: one solid fill with the base
// color, then an overwrite pass over the fade band. An empty rectangle is
// a no-op. The first sink error is returned unchanged.
func (f FadedRectangle) Draw(t Target) error {
	if f.Rect.Empty() {
		return nil
	}
	if err := t.FillRect(f.Rect, f.BaseColor); err != nil {
		return err
	}
	if f.Fading.Steps == 0 {
		return nil
	}
	return t.DrawPixels(f.Pixels())
}

// DrawDiff updates a display that already shows this faded rectangle drawn
// over the geometry previous, writing only the pixels invalidated by a
// left-edge move. The erase band on shrink is anchored at display row 0,
// matching the full-width level bars this path was built for.
//
// Only pure horizontal left-edge motion (same top, height and right edge)
// is handled incrementally; any other geometry change falls back to a full
// Draw.
func (f FadedRectangle) DrawDiff(t Target, previous image.Rectangle) error {
	if f.Rect == previous {
		return nil
	}
	if f.Rect.Min.Y != previous.Min.Y ||
		f.Rect.Max.Y != previous.Max.Y ||
		f.Rect.Max.X != previous.Max.X {
		return f.Draw(t)
	}

	xOld, xNew := previous.Min.X, f.Rect.Min.X
	height := previous.Dy()

	if xNew > xOld {
		// Left edge moved right: erase the exposed band, then rewrite the
		// fade band at its new position. The interior right of the band is
		// unchanged, so the solid-fill pass is skipped.
		if err := t.FillRect(image.Rect(xOld, 0, xNew, height), rgb888.Black); err != nil {
			return err
		}
		if f.Fading.Steps == 0 {
			return nil
		}
		return t.DrawPixels(f.Pixels())
	}

	// Left edge moved left: redraw the exposed strip plus the now-stale
	// previous fade band as one faded rectangle.
	strip := image.Rect(xNew, 0, xOld+int(f.Fading.Steps), height)
	return New(strip, f.BaseColor, f.Fading).Draw(t)
}
