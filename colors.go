package easyblink

import (
	"fmt"
	"strings"

	"github.com/rowr111/easyblink/pattern"
)

// Color names the hues a pattern can run in.
type Color int

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Purple
	// Rainbow spreads the whole hue wheel across the strip instead of
	// using a single color.
	Rainbow
)

// Hues tuned for APA102 strips, which render the mathematically even
// spacing poorly: yellow drifts green and green drifts cyan unless pulled
// back toward red.
const (
	redHue    = 0
	orangeHue = 18
	yellowHue = 40
	greenHue  = 116
	blueHue   = 240
	purpleHue = 266
)

// Hue returns the color's hue in degrees, or the rainbow marker.
func (c Color) Hue() int {
	switch c {
	case Red:
		return redHue
	case Orange:
		return orangeHue
	case Yellow:
		return yellowHue
	case Green:
		return greenHue
	case Blue:
		return blueHue
	case Purple:
		return purpleHue
	default:
		return pattern.RainbowHue
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	case Rainbow:
		return "rainbow"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// ParseColor maps a color name to its Color, ignoring case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "red":
		return Red, nil
	case "orange":
		return Orange, nil
	case "yellow":
		return Yellow, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "purple":
		return Purple, nil
	case "rainbow":
		return Rainbow, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

// Pattern names the animations that take a Color.
type Pattern int

const (
	// Pulse breathes the strip between dim and full brightness.
	Pulse Pattern = iota
	// Chase slides brightness bands along the strip.
	Chase
	// Sparkle scatters fading random sparks.
	Sparkle
	// KnightRider bounces a bright eye with a fading tail end to end.
	KnightRider
)

func (p Pattern) String() string {
	switch p {
	case Pulse:
		return "pulse"
	case Chase:
		return "chase"
	case Sparkle:
		return "sparkle"
	case KnightRider:
		return "knightrider"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// ParsePattern maps a pattern name to its Pattern, ignoring case.
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(s) {
	case "pulse":
		return Pulse, nil
	case "chase":
		return Chase, nil
	case "sparkle":
		return Sparkle, nil
	case "knightrider":
		return KnightRider, nil
	default:
		return 0, fmt.Errorf("unknown pattern %q", s)
	}
}

// Frames reports how many frames one invocation of the pattern commits for
// the given color and strip length. Sparkle renders a single frame per
// call and relies on the caller looping it.
func (p Pattern) Frames(c Color, numLEDs int) int {
	switch p {
	case Pulse:
		return pattern.PulseSteps
	case Chase:
		if c == Rainbow {
			return pattern.RainbowChaseSteps
		}
		return pattern.ChaseSteps(numLEDs)
	case KnightRider:
		return pattern.ScanSteps(numLEDs)
	default:
		return 1
	}
}

// ColorwayPattern names the animations with a built-in color scheme.
type ColorwayPattern int

const (
	// Fireplace flickers warm embers.
	Fireplace ColorwayPattern = iota
	// ChristmasTraditional accumulates sparks in white, red, green, blue
	// and purple.
	ChristmasTraditional
)

func (p ColorwayPattern) String() string {
	switch p {
	case Fireplace:
		return "fireplace"
	case ChristmasTraditional:
		return "christmas"
	default:
		return fmt.Sprintf("ColorwayPattern(%d)", int(p))
	}
}

// ParseColorwayPattern maps a colorway name to its ColorwayPattern,
// ignoring case.
func ParseColorwayPattern(s string) (ColorwayPattern, error) {
	switch strings.ToLower(s) {
	case "fireplace":
		return Fireplace, nil
	case "christmas":
		return ChristmasTraditional, nil
	default:
		return 0, fmt.Errorf("unknown colorway pattern %q", s)
	}
}

// Frames reports how many frames one invocation commits. Both colorways
// render a single frame per call.
func (p ColorwayPattern) Frames() int { return 1 }

// christmasPalette keeps the evenly spaced wheel hues rather than the
// APA102-tuned ones: ornament colors read better saturated and pure.
var christmasPalette = []int{pattern.WhiteHue, 0, 120, 240, 270}
