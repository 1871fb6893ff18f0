// Package easyblink animates APA102 LED strips. A Controller opens the
// strip, picks pattern and color by name, and runs animation cycles until
// told to stop:
//
//	ctrl, err := easyblink.New(120)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctrl.Close()
//	for {
//		if err := ctrl.ExecutePattern(easyblink.Rainbow, easyblink.Chase, 20*time.Millisecond); err != nil {
//			break
//		}
//	}
//
// Without SPI hardware the controller renders to the terminal instead, so
// the same program runs on a workstation and on the device.
package easyblink

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rowr111/easyblink/pattern"
	"github.com/rowr111/easyblink/strip"
)

// UseDefaultDelay makes ExecutePattern and ExecuteColorwayPattern pace
// frames with the controller's default delay.
const UseDefaultDelay time.Duration = -1

// Controller runs animations on a strip.
type Controller struct {
	strip        strip.Strip
	eng          *pattern.Engine
	defaultDelay time.Duration
}

// New opens the default transport for a strip of numLEDs pixels: the first
// SPI port if one exists, a terminal renderer otherwise.
func New(numLEDs int) (*Controller, error) {
	s, err := strip.Open(numLEDs)
	if err != nil {
		return nil, err
	}
	return NewWithStrip(s)
}

// NewWithStrip wraps an already opened strip. The controller animates all
// of it until SetNumLEDs narrows the range.
func NewWithStrip(s strip.Strip) (*Controller, error) {
	if s == nil {
		return nil, errors.New("nil strip")
	}
	eng, err := pattern.New(s, s.Len(), nil)
	if err != nil {
		return nil, err
	}
	return &Controller{strip: s, eng: eng}, nil
}

// NumLEDs reports how many pixels patterns animate.
func (c *Controller) NumLEDs() int { return c.eng.LEDCount() }

// SetNumLEDs narrows or widens the animated range, up to the strip length.
func (c *Controller) SetNumLEDs(n int) error { return c.eng.SetLEDCount(n) }

// DefaultDelay is the inter-frame delay used when ExecutePattern gets a
// negative one.
func (c *Controller) DefaultDelay() time.Duration { return c.defaultDelay }

// SetDefaultDelay changes the fallback inter-frame delay.
func (c *Controller) SetDefaultDelay(d time.Duration) { c.defaultDelay = d }

// ExecutePattern runs one invocation of the pattern in the given color.
// A negative delay selects the controller default; zero commits frames
// back to back.
func (c *Controller) ExecutePattern(col Color, p Pattern, delay time.Duration) error {
	if col < Red || col > Rainbow {
		return fmt.Errorf("unknown color %d", int(col))
	}
	d := c.resolveDelay(delay)
	switch p {
	case Pulse:
		return c.eng.Pulse(col.Hue(), d)
	case Chase:
		return c.eng.Chase(col.Hue(), d)
	case Sparkle:
		return c.eng.Sparkle(col.Hue(), d)
	case KnightRider:
		return c.eng.Scan(col.Hue(), d)
	default:
		return fmt.Errorf("unknown pattern %d", int(p))
	}
}

// ExecuteColorwayPattern runs one invocation of a pattern that brings its
// own colors.
func (c *Controller) ExecuteColorwayPattern(p ColorwayPattern, delay time.Duration) error {
	d := c.resolveDelay(delay)
	switch p {
	case Fireplace:
		return c.eng.Ember(d)
	case ChristmasTraditional:
		return c.eng.MultiSpark(christmasPalette, d)
	default:
		return fmt.Errorf("unknown colorway pattern %d", int(p))
	}
}

func (c *Controller) resolveDelay(d time.Duration) time.Duration {
	if d < 0 {
		return c.defaultDelay
	}
	return d
}

// Close blanks the strip and releases the transport underneath it.
func (c *Controller) Close() error {
	for i := 0; i < c.strip.Len(); i++ {
		c.strip.SetPixel(i, 0, 0, 0)
	}
	err := c.strip.Show()
	if closer, ok := c.strip.(io.Closer); ok {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
