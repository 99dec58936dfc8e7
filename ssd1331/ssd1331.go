// Package ssd1331 controls a SSD1331 color OLED display via SPI.
//
// The SSD1331 is a 65k-color OLED controller driving up to 96x64 pixels.
// The device implements the fadedrect.Target pixel-sink interface: solid
// fills use the controller's hardware rectangle-fill acceleration and
// individual pixels are streamed as RGB565 through an address window.
package ssd1331

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/fadedrect/rgb888"
)

// fillDelay is the settle time after a hardware rectangle fill. The
// accelerator runs inside the controller and ignores commands sent while
// it is busy.
const fillDelay = 500 * time.Microsecond

// Opts is the configuration for the SSD1331 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 96, must be ≤96)
	H int // Height (default: 64, must be ≤64)

	// Rotated flips the display 180°.
	Rotated bool

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the SSD1331 display.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	rect image.Rectangle

	// Scratch buffer for pixel runs (avoids per-call allocation)
	run []byte

	// State
	halted bool
}

// NewSPI creates a new SSD1331 device connected via SPI.
//
// The SPI port is configured for 6MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// opts can be nil to use defaults (96x64 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 96, H: 64}
	}

	if opts.W <= 0 || opts.W > 96 {
		return nil, errors.New("ssd1331: width must be between 1 and 96")
	}
	if opts.H <= 0 || opts.H > 64 {
		return nil, errors.New("ssd1331: height must be between 1 and 64")
	}

	// Establish SPI connection
	// The SSD1331 serial interface tops out at ~6.6MHz; 6MHz keeps margin.
	c, err := p.Connect(6*1000000, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	// Create device
	d := &Dev{
		c:    c,
		dc:   dc,
		rst:  opts.RST,
		rect: image.Rect(0, 0, opts.W, opts.H),
		run:  make([]byte, 0, opts.W*2),
	}

	// Initialize the display
	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1331: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1331: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Remap: 65k color format, COM split, RGB order. Rotating 180° clears
	// the segment and COM scan reversal bits.
	remap := byte(0x72)
	if opts.Rotated {
		remap = 0x60
	}

	cmds := []byte{
		0xAE,        // Display OFF
		0xA0, remap, // Remap and color depth
		0xA1, 0x00, // Start line
		0xA2, 0x00, // Display offset
		0xA4,       // Normal display mode
		0xA8, 0x3F, // MUX ratio (1/64)
		0xAD, 0x8E, // Master configuration (external VCC)
		0xB0, 0x0B, // Power save mode off
		0xB1, 0x31, // Phase 1/2 period
		0xB3, 0xF0, // Clock divider and oscillator frequency
		0x8A, 0x64, // Pre-charge A
		0x8B, 0x78, // Pre-charge B
		0x8C, 0x64, // Pre-charge C
		0xBB, 0x3A, // Pre-charge voltage
		0xBE, 0x3E, // VCOMH voltage
		0x87, 0x06, // Master current
		0x81, 0x91, // Contrast A
		0x82, 0x50, // Contrast B
		0x83, 0x7D, // Contrast C
	}

	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Clear display RAM
	if err := d.clearRAM(); err != nil {
		return err
	}

	// Turn display ON
	return d.sendCommand(0xAF)
}

// clearRAM clears all pixels in the display RAM using the hardware clear
// window command.
func (d *Dev) clearRAM() error {
	err := d.sendCommands([]byte{
		0x25, // Clear window
		0, 0,
		byte(d.rect.Dx() - 1), byte(d.rect.Dy() - 1),
	})
	if err != nil {
		return err
	}
	time.Sleep(fillDelay)
	return nil
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeWindow sets the column/row address window and streams RGB565 pixel
// data into it.
func (d *Dev) writeWindow(x0, y0, x1, y1 int, data []byte) error {
	cmds := []byte{
		0x15, byte(x0), byte(x1), // Column address
		0x75, byte(y0), byte(y1), // Row address
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	return d.sendData(data)
}

// FillRect paints every pixel in r with c. It implements fadedrect.Target
// using the controller's rectangle-fill acceleration: one command burst per
// call, regardless of the rectangle size.
func (d *Dev) FillRect(r image.Rectangle, c rgb888.Color) error {
	if d.halted {
		return errors.New("ssd1331: halted")
	}

	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}

	if err := d.sendCommands(fillRectCmds(r, c)); err != nil {
		return err
	}
	time.Sleep(fillDelay)
	return nil
}

// fillRectCmds builds the command burst for a hardware rectangle fill:
// fill-enable followed by draw-rectangle with matching outline and fill
// colors. The accelerator takes 6-bit channel values.
func fillRectCmds(r image.Rectangle, c rgb888.Color) []byte {
	cr, cg, cb := c.R>>2, c.G>>2, c.B>>2
	return []byte{
		0x26, 0x01, // Enable rectangle fill
		0x22, // Draw rectangle
		byte(r.Min.X), byte(r.Min.Y),
		byte(r.Max.X - 1), byte(r.Max.Y - 1),
		cr, cg, cb, // Outline color
		cr, cg, cb, // Fill color
	}
}

// DrawPixels paints each pixel produced by pixels. It implements
// fadedrect.Target. Consecutive pixels on the same row are batched into a
// single address window to minimize SPI transactions; out-of-bounds pixels
// are clipped.
func (d *Dev) DrawPixels(pixels iter.Seq2[image.Point, rgb888.Color]) error {
	if d.halted {
		return errors.New("ssd1331: halted")
	}

	var err error
	run := d.run[:0]
	runX, runY := 0, 0

	flush := func() bool {
		if len(run) == 0 {
			return true
		}
		err = d.writeWindow(runX, runY, runX+len(run)/2-1, runY, run)
		run = run[:0]
		return err == nil
	}

	for p, c := range pixels {
		if !p.In(d.rect) {
			if !flush() {
				break
			}
			continue
		}
		if len(run) > 0 && (p.Y != runY || p.X != runX+len(run)/2) {
			if !flush() {
				break
			}
		}
		if len(run) == 0 {
			runX, runY = p.X, p.Y
		}
		px := rgb565(c)
		run = append(run, byte(px>>8), byte(px))
	}
	if err == nil {
		flush()
	}

	d.run = run[:0]
	return err
}

// rgb565 packs an RGB888 color into the display's 16-bit pixel format.
func rgb565(c rgb888.Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb888.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// SetContrast sets the contrast of all three channels (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1331: halted")
	}
	return d.sendCommands([]byte{
		0x81, contrast, // Contrast A
		0x82, contrast, // Contrast B
		0x83, contrast, // Contrast C
	})
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1331: halted")
	}
	mode := byte(0xA4) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1331.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
