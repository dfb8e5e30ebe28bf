package plot

import (
	"errors"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidDisplayRange is returned when the display range bounds are not numbers.
var ErrInvalidDisplayRange = errors.New("invalid display range")

var (
	// SentinelColor flags the point holding the smallest value.
	SentinelColor = color.NRGBA{A: 255}
	// Transparent is used for values outside the display range.
	Transparent = color.NRGBA{}
)

// Hue at k=0 (blue) and at k=1 (red), in degrees.
const (
	pseudoColorHueLow  = 240.
	pseudoColorHueHigh = 0.
)

// PseudoColor maps k in [0, 1] to an opaque color of a blue-cyan-green-yellow-red ramp.
// Values outside [0, 1] are clamped, callers should check the domain themselves.
func PseudoColor(k float64) color.NRGBA {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	hue := pseudoColorHueLow + k*(pseudoColorHueHigh-pseudoColorHueLow)
	r, g, b := colorful.Hsv(hue, 1, 1).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// MapValueToColor returns the color of a point given the display range. The global minimum is always painted with
// SentinelColor, values outside [rangeMin, rangeMax] are Transparent.
func MapValueToColor(value, rangeMin, rangeMax float32, isGlobalMin bool) color.NRGBA {
	if isGlobalMin {
		return SentinelColor
	}
	k := float64(value-rangeMin) / float64(rangeMax-rangeMin)
	if k >= 0 && k <= 1 { // NaN (empty display range) fails both checks
		return PseudoColor(k)
	}
	return Transparent
}

// FindGlobalMinimumIndex returns the index of the point with the smallest value (the first one on ties), or -1.
// NaN values never hold the minimum.
func FindGlobalMinimumIndex(points []DataPoint) int {
	idx := -1
	for i, p := range points {
		if p.Value != p.Value {
			continue
		}
		if idx < 0 || p.Value < points[idx].Value {
			idx = i
		}
	}
	return idx
}

// ColorMapping is MapValueToColor bound to a display range and data set.
type ColorMapping struct {
	RangeMin, RangeMax float32
	MinIndex           int // Index of the global minimum point
}

// Color returns the color of the point at index i with the given value.
func (c ColorMapping) Color(value float32, i int) color.NRGBA {
	return MapValueToColor(value, c.RangeMin, c.RangeMax, i == c.MinIndex)
}

// ParseDisplayRange parses the display range bounds.
func ParseDisplayRange(minText, maxText string) (float32, float32, error) {
	rangeMin, okMin := ParseFloat(minText)
	rangeMax, okMax := ParseFloat(maxText)
	if !okMin || !okMax {
		return 0, 0, ErrInvalidDisplayRange
	}
	return rangeMin, rangeMax, nil
}
