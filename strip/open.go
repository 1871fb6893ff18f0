package strip

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/apa102"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"
)

const maxIntensity uint8 = 255

// Open attaches an APA102 strip of numLEDs pixels on the first available SPI
// port. When no port is found (typically off-Pi development) it logs a
// warning and falls back to rendering the strip in the terminal.
func Open(numLEDs int) (*Buffer, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	port, err := spireg.Open("")
	if err != nil {
		log.Warn().Err(err).Msg("no SPI port found, rendering to the terminal")
		return NewScreen(numLEDs)
	}
	return attach(port, numLEDs, maxIntensity)
}

// OpenSPI attaches an APA102 strip on a named SPI port, with no terminal
// fallback. An empty name selects the first available port. intensity is the
// APA102 global brightness, 0-255.
func OpenSPI(portName string, numLEDs int, intensity uint8) (*Buffer, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", portName, err)
	}
	return attach(port, numLEDs, intensity)
}

// NewScreen renders the strip as a row of colored cells in the terminal.
func NewScreen(numLEDs int) (*Buffer, error) {
	return NewBuffer(numLEDs, screen.New(numLEDs))
}

func attach(port spi.PortCloser, numLEDs int, intensity uint8) (*Buffer, error) {
	// NeutralTemp disables the driver's color temperature correction so
	// pattern colors land on the wire unmodified.
	dev, err := apa102.New(port, &apa102.Opts{
		NumPixels:   numLEDs,
		Intensity:   intensity,
		Temperature: apa102.NeutralTemp,
	})
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("apa102 init: %w", err)
	}
	f, err := NewBuffer(numLEDs, dev)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	f.port = port
	return f, nil
}
