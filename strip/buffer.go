package strip

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/spi"
)

// Buffer is an in-memory RGB frame in front of a display.Drawer.
type Buffer struct {
	drawer display.Drawer
	pix    []byte         // 3 bytes per pixel
	port   spi.PortCloser // owned when opened by Open/OpenSPI, else nil
}

// NewBuffer wraps an existing drawer in a frame of numLEDs pixels. The
// drawer's bounds should be numLEDs wide; Open and friends guarantee that.
func NewBuffer(numLEDs int, d display.Drawer) (*Buffer, error) {
	if numLEDs < 1 {
		return nil, fmt.Errorf("invalid LED count: %d", numLEDs)
	}
	if d == nil {
		return nil, errors.New("nil drawer")
	}
	return &Buffer{drawer: d, pix: make([]byte, numLEDs*3)}, nil
}

// Len returns the number of pixels in the frame.
func (f *Buffer) Len() int { return len(f.pix) / 3 }

// SetPixel stages an RGB value; nothing reaches the device until Show.
func (f *Buffer) SetPixel(i int, r, g, b byte) {
	f.pix[i*3+0] = r
	f.pix[i*3+1] = g
	f.pix[i*3+2] = b
}

// Pixel reads back the staged value at index i.
func (f *Buffer) Pixel(i int) (r, g, b byte) {
	return f.pix[i*3+0], f.pix[i*3+1], f.pix[i*3+2]
}

// Image renders the frame as a 1-pixel-tall NRGBA image, the form the periph
// display drivers consume.
func (f *Buffer) Image() *image.NRGBA {
	n := f.Len()
	im := image.NewNRGBA(image.Rect(0, 0, n, 1))
	for x := 0; x < n; x++ {
		im.SetNRGBA(x, 0, color.NRGBA{R: f.pix[x*3], G: f.pix[x*3+1], B: f.pix[x*3+2], A: 255})
	}
	return im
}

// Show commits the staged frame to the device.
func (f *Buffer) Show() error {
	if err := f.drawer.Draw(f.drawer.Bounds(), f.Image(), image.Point{}); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}

// Close halts the device and releases the SPI port if the buffer owns one.
func (f *Buffer) Close() error {
	err := f.drawer.Halt()
	if f.port != nil {
		if cerr := f.port.Close(); err == nil {
			err = cerr
		}
		f.port = nil
	}
	return err
}
