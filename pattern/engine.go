// Package pattern implements the animation routines that drive a strip: a
// breathing pulse, chasing bands, random sparkles and their fireplace and
// christmas colorways, and a bouncing scanner. Every routine renders one
// frame at a time into the strip and commits it with Show, sleeping between
// frames so the caller controls the animation speed.
package pattern

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rowr111/easyblink/strip"
)

const (
	// RainbowHue selects position-derived hues instead of a fixed color:
	// each pixel gets a hue proportional to its place on the strip.
	RainbowHue = -1

	// WhiteHue marks a palette entry as full white. MultiSpark renders it
	// at (255, 255, 255) regardless of the rolled spark value.
	WhiteHue = -1
)

// Engine renders animation frames into a strip. The active LED count may be
// smaller than the strip itself; routines light the first n pixels and leave
// the rest alone.
type Engine struct {
	s   strip.Strip
	n   int
	rng *rand.Rand
}

// New returns an engine driving the first numLEDs pixels of s. A nil rng
// gets a time-seeded source; tests pass a fixed seed for reproducible
// sparkles.
func New(s strip.Strip, numLEDs int, rng *rand.Rand) (*Engine, error) {
	if s == nil {
		return nil, errors.New("nil strip")
	}
	if numLEDs < 1 || numLEDs > s.Len() {
		return nil, fmt.Errorf("invalid LED count: %d (strip has %d)", numLEDs, s.Len())
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{s: s, n: numLEDs, rng: rng}, nil
}

// LEDCount reports how many pixels the routines animate.
func (e *Engine) LEDCount() int { return e.n }

// SetLEDCount changes how many pixels the routines animate.
func (e *Engine) SetLEDCount(n int) error {
	if n < 1 || n > e.s.Len() {
		return fmt.Errorf("invalid LED count: %d (strip has %d)", n, e.s.Len())
	}
	e.n = n
	return nil
}

// showFrame commits the staged frame and waits out the inter-frame delay.
func (e *Engine) showFrame(delay time.Duration) error {
	if err := e.s.Show(); err != nil {
		return err
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	return nil
}

// positionHue spreads the hue wheel across the strip: pixel 0 is red, the
// last pixel just shy of wrapping back around.
func (e *Engine) positionHue(i int) int {
	return int(float64(i) / float64(e.n) * 359)
}
