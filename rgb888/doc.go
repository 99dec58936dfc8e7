// Package rgb888 provides a 24-bit RGB color model and framebuffer image
// for small color displays.
//
// Color stores one 8-bit value per channel and satisfies color.Color, so it
// composes with the image and image/draw packages. Image is a densely packed
// framebuffer (3 bytes per pixel, row-major) implementing draw.Image; it is
// the in-memory representation used by software pixel sinks and tests.
//
// The package performs no gamma handling: channels are linear 8-bit values,
// which is what the display controllers this module targets expect.
package rgb888
