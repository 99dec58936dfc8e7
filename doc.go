// Package fadedrect renders faded rectangles on small pixel displays.
//
// A faded rectangle is a filled, axis-aligned rectangle whose color darkens
// toward one of its four edges in a fixed number of discrete steps. The
// package also provides a differential redraw for rectangles whose left
// edge moves horizontally (level bars, VU meters) and a helper for exact
// 90-degree point rotation.
//
// # Rendering Model
//
// All arithmetic is integer-only. The fade is quantized through a fade
// factor in [0, 256]: each output channel is base * (256 - factor) / 256
// with truncating division. This keeps output bit-exact across platforms
// and cheap on 32-bit microcontrollers; there is no floating point and no
// heap allocation on the rendering path.
//
// The fade band is the steps-wide strip adjacent to the faded edge. Left
// and Top fades place the fully dark pixel on the edge itself; Right and
// Bottom fades place it on the innermost column or row of the band. The
// asymmetry is intentional and part of the contract.
//
// # Pixel Sinks
//
// Rendering goes through the Target interface:
//
//	type Target interface {
//		FillRect(r image.Rectangle, c rgb888.Color) error
//		DrawPixels(pixels iter.Seq2[image.Point, rgb888.Color]) error
//	}
//
// Any display that can fill a rectangle and accept individual pixels can be
// a sink. Sinks clip out-of-bounds pixels; the renderer never clips. Two
// sinks ship with the module: Framebuffer, an in-memory software sink, and
// ssd1331.Dev, an SPI driver for the SSD1331 96x64 color OLED whose
// hardware rectangle-fill acceleration maps directly onto FillRect.
//
// # Basic Usage
//
//	fb := fadedrect.NewFramebuffer(image.Rect(0, 0, 96, 32))
//
//	bar := fadedrect.New(
//		image.Rect(0, 0, 96, 32),
//		rgb888.Green,
//		fadedrect.Fading{Edge: fadedrect.Left, Steps: 5},
//	)
//	if err := bar.Draw(fb); err != nil {
//		// sink error, propagated verbatim
//	}
//
// Draw issues exactly one solid fill over the rectangle and one pixel pass
// over the fade band. Pixels outside the band always equal the base color.
//
// # Differential Redraw
//
// When only the left edge of a previously drawn faded rectangle moves,
// DrawDiff writes the minimum pixels needed to bring the display up to
// date:
//
//	prev := bar.Rect
//	bar.Rect = image.Rect(20, 0, 96, 32) // level dropped
//	if err := bar.DrawDiff(fb, prev); err != nil {
//		// ...
//	}
//
// On shrink the exposed strip is erased to black and the fade band is
// rewritten at its new position; on expand only the newly exposed strip
// plus the stale band is redrawn. DrawDiff assumes the display already
// shows the previous frame; it does not verify this. Geometry changes
// other than left-edge motion fall back to a full Draw.
//
// # Point Rotation
//
// RotatePoint rotates an integer point by a multiple of 90 degrees about an
// arbitrary center, exactly:
//
//	p := fadedrect.RotatePoint(image.Pt(10, 0), fadedrect.Rotate90, image.Pt(0, 0))
//	// p == image.Pt(0, 10)
//
// # Degenerate Geometry
//
// Empty rectangles draw nothing. Steps == 0 disables the fade (solid fill
// only). Steps larger than the rectangle extent clamp the band to the
// rectangle; no pixel outside the rectangle is ever emitted.
package fadedrect
