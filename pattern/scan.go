package pattern

import (
	"time"

	"github.com/rowr111/easyblink/hsv"
)

// ScanSteps reports the number of frames in one Scan invocation: enough
// for the eye to sweep the strip there and back.
func ScanSteps(numLEDs int) int { return 2 * numLEDs }

// Scan bounces a bright eye with a fading tail between the ends of the
// strip. The tail is 40% of the strip, at least one pixel; brightness
// falls off linearly with distance from the eye. RainbowHue colors each
// pixel by position instead of the fixed hue.
func (e *Engine) Scan(hue int, delay time.Duration) error {
	tail := int(float64(e.n) * 0.4)
	if tail < 1 {
		tail = 1
	}

	pos, dir := 0, 1
	for step := 0; step < ScanSteps(e.n); step++ {
		for i := 0; i < e.n; i++ {
			h := hue
			if hue == RainbowHue {
				h = e.positionHue(i)
			}
			r, g, b := hsv.ToRGB(h, 1, scanLevel(pos, i, tail))
			e.s.SetPixel(i, r, g, b)
		}
		pos, dir = scanAdvance(pos, dir, e.n, tail)
		if err := e.showFrame(delay); err != nil {
			return err
		}
	}
	return nil
}

// scanLevel is the brightness of pixel i when the eye sits at pos.
func scanLevel(pos, i, tail int) float64 {
	d := pos - i
	if d < 0 {
		d = -d
	}
	if d > tail {
		return 0
	}
	return 1.0 - float64(d)/float64(tail)
}

// scanAdvance moves the eye one pixel and reflects it at the ends. The eye
// overshoots the low end by the tail length so the tail fully drains off
// the strip before the bounce.
func scanAdvance(pos, dir, n, tail int) (int, int) {
	pos += dir
	if pos <= -tail || pos >= n-1 {
		dir = -dir
	}
	return pos, dir
}
