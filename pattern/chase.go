package pattern

import (
	"fmt"
	"math"
	"time"

	"github.com/rowr111/easyblink/hsv"
)

// chaseBandSize is how many LEDs one chase band nominally covers. Strips
// longer than this get one band per chaseBandSize pixels.
const chaseBandSize = 30

// RainbowChaseSteps is the number of frames in one rainbow Chase
// invocation, one per hue degree.
const RainbowChaseSteps = 360

// ChaseSteps reports the number of frames in one fixed-hue Chase
// invocation: the bands travel the full strip once.
func ChaseSteps(numLEDs int) int { return numLEDs }

// Chase slides triangular brightness bands along the strip. A fixed hue
// moves the bands one pixel per frame for a full lap; RainbowHue instead
// rotates a whole-strip hue gradient through all 360 degrees.
func (e *Engine) Chase(hue int, delay time.Duration) error {
	if hue == RainbowHue {
		return e.rainbowChase(delay)
	}

	numBands := 1
	if e.n > chaseBandSize {
		numBands = e.n / chaseBandSize
	}
	bandWidth := e.n / (2 * numBands)
	if bandWidth < 1 {
		return fmt.Errorf("led count %d leaves no room for a chase band", e.n)
	}

	for step := 0; step < e.n; step++ {
		for i := 0; i < e.n; i++ {
			r, g, b := hsv.ToRGB(hue, 1, chaseLevel(i, step, e.n, numBands, bandWidth))
			e.s.SetPixel(i, r, g, b)
		}
		if err := e.showFrame(delay); err != nil {
			return err
		}
	}
	return nil
}

// chaseLevel is the brightness of pixel i at the given step: a squared ramp
// up over bandWidth pixels and back down over the next bandWidth, repeated
// for each band, merged by taking the brightest.
func chaseLevel(i, step, n, numBands, bandWidth int) float64 {
	var level float64
	for band := 0; band < numBands; band++ {
		pos := (i + step + band*2*bandWidth) % n
		var v float64
		switch {
		case pos < bandWidth:
			ramp := float64(pos) / float64(bandWidth)
			v = ramp * ramp
		case pos < 2*bandWidth:
			ramp := 1 - float64(pos-bandWidth)/float64(bandWidth)
			v = ramp * ramp
		}
		if v > level {
			level = v
		}
	}
	return level
}

// rainbowChase rotates a full-wheel gradient through every hue offset.
func (e *Engine) rainbowChase(delay time.Duration) error {
	for offset := 0; offset < RainbowChaseSteps; offset++ {
		for i := 0; i < e.n; i++ {
			h := math.Mod(float64(offset)+360.0/float64(e.n)*float64(i), 360)
			r, g, b := hsv.ToRGB(int(h), 1, 1.0)
			e.s.SetPixel(i, r, g, b)
		}
		if err := e.showFrame(delay); err != nil {
			return err
		}
	}
	return nil
}
