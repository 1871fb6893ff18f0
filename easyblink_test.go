package easyblink_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rowr111/easyblink"
	"github.com/rowr111/easyblink/hsv"
	"github.com/stretchr/testify/assert"
)

// fakeStrip implements strip.Strip and io.Closer so controller tests can
// watch frames, commits and shutdown without hardware.
type fakeStrip struct {
	pix    []byte
	shows  int
	sets   int
	closed bool
	err    error
}

func newFakeStrip(n int) *fakeStrip {
	return &fakeStrip{pix: make([]byte, n*3)}
}

func (f *fakeStrip) Len() int { return len(f.pix) / 3 }

func (f *fakeStrip) SetPixel(i int, r, g, b byte) {
	f.sets++
	f.pix[i*3], f.pix[i*3+1], f.pix[i*3+2] = r, g, b
}

func (f *fakeStrip) Pixel(i int) (byte, byte, byte) {
	return f.pix[i*3], f.pix[i*3+1], f.pix[i*3+2]
}

func (f *fakeStrip) Show() error {
	if f.err != nil {
		return f.err
	}
	f.shows++
	return nil
}

func (f *fakeStrip) Close() error {
	f.closed = true
	return nil
}

func TestNewWithStripValidation(t *testing.T) {
	_, err := easyblink.NewWithStrip(nil)
	assert.Error(t, err)
}

func TestPulseOnSingleLED(t *testing.T) {
	f := newFakeStrip(1)
	ctrl, err := easyblink.NewWithStrip(f)
	assert.NoError(t, err)

	assert.NoError(t, ctrl.ExecutePattern(easyblink.Red, easyblink.Pulse, 0))
	assert.Equal(t, 100, f.shows)
	assert.Equal(t, 100, f.sets)
}

func TestExecutePatternRejectsUnknown(t *testing.T) {
	f := newFakeStrip(4)
	ctrl, err := easyblink.NewWithStrip(f)
	assert.NoError(t, err)

	assert.Error(t, ctrl.ExecutePattern(easyblink.Red, easyblink.Pattern(99), 0))
	assert.Error(t, ctrl.ExecutePattern(easyblink.Color(99), easyblink.Pulse, 0))
	assert.Zero(t, f.shows)
}

func TestExecuteColorwayRejectsUnknown(t *testing.T) {
	f := newFakeStrip(4)
	ctrl, err := easyblink.NewWithStrip(f)
	assert.NoError(t, err)

	assert.Error(t, ctrl.ExecuteColorwayPattern(easyblink.ColorwayPattern(99), 0))
	assert.Zero(t, f.shows)
}

func TestSetNumLEDsValidates(t *testing.T) {
	f := newFakeStrip(10)
	ctrl, err := easyblink.NewWithStrip(f)
	assert.NoError(t, err)
	assert.Equal(t, 10, ctrl.NumLEDs())

	assert.Error(t, ctrl.SetNumLEDs(0))
	assert.Error(t, ctrl.SetNumLEDs(11))
	assert.NoError(t, ctrl.SetNumLEDs(5))
	assert.Equal(t, 5, ctrl.NumLEDs())

	// KnightRider frame count follows the narrowed range.
	assert.NoError(t, ctrl.ExecutePattern(easyblink.Green, easyblink.KnightRider, 0))
	assert.Equal(t, 10, f.shows)
}

func TestDefaultDelayResolution(t *testing.T) {
	f := newFakeStrip(4)
	ctrl, err := easyblink.NewWithStrip(f)
	assert.NoError(t, err)

	ctrl.SetDefaultDelay(time.Millisecond)
	assert.Equal(t, time.Millisecond, ctrl.DefaultDelay())

	// A negative delay falls back to the default.
	assert.NoError(t, ctrl.ExecutePattern(easyblink.Blue, easyblink.Sparkle, easyblink.UseDefaultDelay))
	assert.Equal(t, 1, f.shows)
}

func TestCloseBlanksAndCloses(t *testing.T) {
	f := newFakeStrip(4)
	ctrl, err := easyblink.NewWithStrip(f)
	assert.NoError(t, err)

	for i := 0; i < 4; i++ {
		f.pix[i*3] = 200
	}
	assert.NoError(t, ctrl.Close())
	assert.True(t, f.closed)
	assert.Equal(t, 1, f.shows)
	for i, b := range f.pix {
		assert.Zero(t, b, "byte %d should be blanked", i)
	}
}

func TestControllerPropagatesCommitError(t *testing.T) {
	f := newFakeStrip(4)
	ctrl, err := easyblink.NewWithStrip(f)
	assert.NoError(t, err)

	f.err = errors.New("device detached")
	assert.ErrorIs(t, ctrl.ExecutePattern(easyblink.Red, easyblink.Chase, 0), f.err)
}

func TestChristmasSparksUseTraditionalPalette(t *testing.T) {
	f := newFakeStrip(100)
	ctrl, err := easyblink.NewWithStrip(f)
	assert.NoError(t, err)

	assert.NoError(t, ctrl.ExecuteColorwayPattern(easyblink.ChristmasTraditional, 0))

	lit := 0
	for i := 0; i < 100; i++ {
		r, g, b := f.Pixel(i)
		if r == 0 && g == 0 && b == 0 {
			continue
		}
		lit++
		if r == 255 && g == 255 && b == 255 {
			continue
		}
		h, _, _ := hsv.FromRGB(r, g, b)
		// 270 can read back a degree off after byte quantization.
		ok := h == 0 || h == 120 || h == 240 || (h >= 269 && h <= 271)
		assert.True(t, ok, "pixel %d hue %d not in the palette", i, h)
	}
	assert.GreaterOrEqual(t, lit, 1)
	assert.LessOrEqual(t, lit, 10)
}
