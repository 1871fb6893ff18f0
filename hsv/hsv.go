// Package hsv converts between the strip's color model and RGB bytes.
//
// The model is deliberately narrow: hue is an integer number of degrees in
// [0,360), saturation is binary (0 or 1), and value is a float in [0.0,1.0].
// Patterns only ever need fully saturated colors, greys, and black, and the
// narrowness is what makes the spark decay look the way it does.
package hsv

import "math"

// ToRGB converts an HSV color to 8-bit RGB channels. hue must already be
// normalized into [0,360); FromRGB only ever returns hues in that range.
func ToRGB(hue, sat int, value float64) (r, g, b uint8) {
	chroma := value * float64(sat)
	x := chroma * (1 - math.Abs(math.Mod(float64(hue)/60, 2)-1))
	m := value - chroma

	var r1, g1, b1 float64
	switch {
	case hue < 60:
		r1, g1, b1 = chroma, x, 0
	case hue < 120:
		r1, g1, b1 = x, chroma, 0
	case hue < 180:
		r1, g1, b1 = 0, chroma, x
	case hue < 240:
		r1, g1, b1 = 0, x, chroma
	case hue < 300:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	return uint8(math.Round((r1 + m) * 255)),
		uint8(math.Round((g1 + m) * 255)),
		uint8(math.Round((b1 + m) * 255))
}

// FromRGB recovers the HSV components of an RGB color. The mapping is lossy
// on purpose: hue truncates to whole degrees and saturation collapses to 1
// only when some channel is fully off. Spark patterns lean on both when they
// round-trip pixels to fade them out.
func FromRGB(r, g, b uint8) (hue, sat int, value float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case max == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	// the red sector formula goes negative when blue beats green
	if h < 0 {
		h += 360
	}

	var s float64
	if max > 0 {
		s = delta / max
	}

	return int(h), int(s), max
}
