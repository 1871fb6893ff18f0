package pattern

import (
	"testing"

	"github.com/rowr111/easyblink/hsv"
	"github.com/stretchr/testify/assert"
)

func TestSparkCountBounds(t *testing.T) {
	e, _ := testEngine(t, 5)
	for i := 0; i < 500; i++ {
		n := e.sparkCount()
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 5)
	}

	e, _ = testEngine(t, 100)
	for i := 0; i < 500; i++ {
		n := e.sparkCount()
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}
}

func TestSparkValueRange(t *testing.T) {
	e, _ := testEngine(t, 10)
	for i := 0; i < 500; i++ {
		v := e.sparkValue()
		assert.GreaterOrEqual(t, v, 0.5)
		assert.Less(t, v, 1.0)
	}
}

func TestSparkleDimsAndLights(t *testing.T) {
	e, f := testEngine(t, 100)
	for i := 0; i < 100; i++ {
		f.SetPixel(i, 128, 0, 0)
	}

	assert.NoError(t, e.Sparkle(0, 0))
	assert.Equal(t, 1, f.shows, "one invocation is one frame")

	sparked := 0
	for i := 0; i < 100; i++ {
		r, g, b := pixelAt(f.frames[0], i)
		assert.Zero(t, g, "pixel %d", i)
		assert.Zero(t, b, "pixel %d", i)
		if r == 96 {
			continue // dimmed background: 128 * 0.75
		}
		assert.GreaterOrEqual(t, r, byte(128), "pixel %d is neither dimmed nor a spark", i)
		sparked++
	}
	assert.GreaterOrEqual(t, sparked, 1)
	assert.LessOrEqual(t, sparked, 10)
}

func TestSparkleRainbowUsesPositionalHues(t *testing.T) {
	e, f := testEngine(t, 100)
	assert.NoError(t, e.Sparkle(RainbowHue, 0))

	lit := 0
	for i := 0; i < 100; i++ {
		r, g, b := pixelAt(f.frames[0], i)
		if r == 0 && g == 0 && b == 0 {
			continue
		}
		lit++
		h, _, _ := hsv.FromRGB(r, g, b)
		// byte quantization can shift the recovered hue by a degree
		assert.InDelta(t, int(float64(i)/100*359), h, 1, "pixel %d", i)
	}
	assert.GreaterOrEqual(t, lit, 1)
}

func TestEmberSparkHuesAreWarm(t *testing.T) {
	e, f := testEngine(t, 50)
	assert.NoError(t, e.Ember(0))

	lit := 0
	for i := 0; i < 50; i++ {
		r, g, b := pixelAt(f.frames[0], i)
		if r == 0 && g == 0 && b == 0 {
			continue
		}
		lit++
		h, _, v := hsv.FromRGB(r, g, b)
		assert.LessOrEqual(t, h, emberHueSpan, "pixel %d", i)
		assert.GreaterOrEqual(t, v, 0.5-1.0/255, "pixel %d", i)
	}
	assert.GreaterOrEqual(t, lit, 1)
	assert.LessOrEqual(t, lit, 5)
}

func TestEmberDimsBackgroundGently(t *testing.T) {
	e, f := testEngine(t, 50)
	for i := 0; i < 50; i++ {
		f.SetPixel(i, 128, 0, 0)
	}

	assert.NoError(t, e.Ember(0))

	sparked := 0
	for i := 0; i < 50; i++ {
		r, g, b := pixelAt(f.frames[0], i)
		assert.Zero(t, b, "pixel %d", i)
		if r == 109 && g == 0 {
			// round(128 * emberDecay); sparkle's factor would leave 96
			continue
		}
		assert.GreaterOrEqual(t, r, byte(128), "pixel %d neither dimmed nor sparked", i)
		sparked++
	}
	assert.GreaterOrEqual(t, sparked, 1)
	assert.LessOrEqual(t, sparked, 5)
}

func TestMultiSparkKeepsBackground(t *testing.T) {
	e, f := testEngine(t, 100)
	for i := 0; i < 100; i++ {
		f.SetPixel(i, 10, 20, 30)
	}

	assert.NoError(t, e.MultiSpark([]int{120}, 0))

	sparked := 0
	for i := 0; i < 100; i++ {
		r, g, b := pixelAt(f.frames[0], i)
		if r == 10 && g == 20 && b == 30 {
			continue // untouched: MultiSpark never dims
		}
		sparked++
		assert.Zero(t, r, "pixel %d", i)
		assert.GreaterOrEqual(t, g, byte(128), "pixel %d", i)
		assert.Zero(t, b, "pixel %d", i)
	}
	assert.GreaterOrEqual(t, sparked, 1)
	assert.LessOrEqual(t, sparked, 10)
}

func TestMultiSparkWhitePaletteEntry(t *testing.T) {
	e, f := testEngine(t, 100)
	assert.NoError(t, e.MultiSpark([]int{WhiteHue}, 0))

	lit := 0
	for i := 0; i < 100; i++ {
		r, g, b := pixelAt(f.frames[0], i)
		if r == 0 && g == 0 && b == 0 {
			continue
		}
		lit++
		assert.Equal(t, [3]byte{255, 255, 255}, [3]byte{r, g, b}, "pixel %d", i)
	}
	assert.GreaterOrEqual(t, lit, 1)
}

func TestMultiSparkEmptyPalette(t *testing.T) {
	e, f := testEngine(t, 10)
	assert.Error(t, e.MultiSpark(nil, 0))
	assert.Zero(t, f.attempts, "no frame should be committed")
}

func TestDecaySweepsWholeStrip(t *testing.T) {
	f := newFakeStrip(10)
	e, err := New(f, 5, nil)
	assert.NoError(t, err)

	// Pixel 9 sits beyond the active LED count but still fades.
	f.SetPixel(9, 128, 0, 0)
	e.decay(0.75)

	r, g, b := f.Pixel(9)
	assert.Equal(t, [3]byte{96, 0, 0}, [3]byte{r, g, b})
}
