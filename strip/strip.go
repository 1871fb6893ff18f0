// Package strip provides the pixel frame the animation engine draws into and
// the transports that carry it: an APA102 device on SPI, or a terminal
// renderer everywhere else.
package strip

// Strip is the minimal surface a pattern needs: staged pixel access plus a
// commit. Implementations are not safe for concurrent use.
type Strip interface {
	// Len returns the pixel capacity of the frame.
	Len() int
	// SetPixel stages an RGB value for pixel i. Nothing reaches the device
	// until Show. Out-of-range indices panic.
	SetPixel(i int, r, g, b byte)
	// Pixel reads back the staged value for pixel i.
	Pixel(i int) (r, g, b byte)
	// Show commits the staged frame to the output device.
	Show() error
}
