package pattern

import (
	"time"

	"github.com/rowr111/easyblink/hsv"
)

// PulseSteps is the number of frames in one Pulse invocation.
const PulseSteps = 100

// Pulse breathes the whole strip through one brightness cycle: ramp from a
// dim 15% floor to full brightness over the first half of the frames, then
// back down. RainbowHue paints a static position gradient under the
// envelope; any other hue lights the strip uniformly.
func (e *Engine) Pulse(hue int, delay time.Duration) error {
	for step := 0; step < PulseSteps; step++ {
		value := pulseLevel(step)
		if hue == RainbowHue {
			for i := 0; i < e.n; i++ {
				r, g, b := hsv.ToRGB(e.positionHue(i), 1, value)
				e.s.SetPixel(i, r, g, b)
			}
		} else {
			r, g, b := hsv.ToRGB(hue, 1, value)
			for i := 0; i < e.n; i++ {
				e.s.SetPixel(i, r, g, b)
			}
		}
		if err := e.showFrame(delay); err != nil {
			return err
		}
	}
	return nil
}

// pulseLevel is the triangular brightness envelope: 0.15 at the ends, 1.0
// at the midpoint.
func pulseLevel(step int) float64 {
	mid := PulseSteps / 2
	if step <= mid {
		return 0.15 + 0.85*(float64(step)/float64(mid))
	}
	return 1.0 - 0.85*(float64(step-mid)/float64(mid))
}
