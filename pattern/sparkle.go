package pattern

import (
	"errors"
	"time"

	"github.com/rowr111/easyblink/hsv"
)

const (
	// sparkleDecay dims the previous frame to 75% before new sparks land.
	sparkleDecay = 0.75

	// emberDecay keeps fireplace embers glowing longer between sparks.
	emberDecay = 0.85

	// emberHueSpan bounds fireplace spark hues to reds through oranges.
	emberHueSpan = 25
)

// Sparkle dims the current frame and scatters a handful of fresh sparks at
// random positions and brightnesses, then commits the frame. One call is
// one frame; callers loop it for a continuous shimmer. RainbowHue colors
// each spark by its position on the strip.
func (e *Engine) Sparkle(hue int, delay time.Duration) error {
	e.decay(sparkleDecay)
	sparks := e.sparkCount()
	for j := 0; j < sparks; j++ {
		i := e.rng.Intn(e.n)
		value := e.sparkValue()
		h := hue
		if hue == RainbowHue {
			h = e.positionHue(i)
		}
		r, g, b := hsv.ToRGB(h, 1, value)
		e.s.SetPixel(i, r, g, b)
	}
	return e.showFrame(delay)
}

// Ember is the fireplace colorway of Sparkle: a slower decay and sparks
// confined to warm hues.
func (e *Engine) Ember(delay time.Duration) error {
	e.decay(emberDecay)
	sparks := e.sparkCount()
	for j := 0; j < sparks; j++ {
		i := e.rng.Intn(e.n)
		value := e.sparkValue()
		r, g, b := hsv.ToRGB(e.rng.Intn(emberHueSpan), 1, value)
		e.s.SetPixel(i, r, g, b)
	}
	return e.showFrame(delay)
}

// MultiSpark scatters sparks drawn from a hue palette without dimming
// what is already lit, so sparks accumulate until overwritten. A WhiteHue
// palette entry renders full white regardless of the rolled brightness.
func (e *Engine) MultiSpark(palette []int, delay time.Duration) error {
	if len(palette) == 0 {
		return errors.New("empty palette")
	}
	sparks := e.sparkCount()
	for j := 0; j < sparks; j++ {
		i := e.rng.Intn(e.n)
		value := e.sparkValue()
		h := palette[e.rng.Intn(len(palette))]
		if h == WhiteHue {
			e.s.SetPixel(i, 255, 255, 255)
			continue
		}
		r, g, b := hsv.ToRGB(h, 1, value)
		e.s.SetPixel(i, r, g, b)
	}
	return e.showFrame(delay)
}

// decay multiplies every pixel's brightness by factor, sweeping the whole
// strip so pixels beyond the active count fade out too. The round trip
// through the color model quantizes saturation, so decayed colors snap to
// pure hues.
func (e *Engine) decay(factor float64) {
	for i := 0; i < e.s.Len(); i++ {
		r, g, b := e.s.Pixel(i)
		h, s, v := hsv.FromRGB(r, g, b)
		nr, ng, nb := hsv.ToRGB(h, s, v*factor)
		e.s.SetPixel(i, nr, ng, nb)
	}
}

// sparkCount rolls how many sparks the next frame gets: dense on short
// strips, roughly one per ten pixels on long ones.
func (e *Engine) sparkCount() int {
	if e.n < 10 {
		return 1 + e.rng.Intn(e.n)
	}
	return 1 + e.rng.Intn(e.n/10)
}

// sparkValue rolls a spark brightness in the upper half of the range.
func (e *Engine) sparkValue() float64 {
	return 0.5 + e.rng.Float64()*0.5
}
