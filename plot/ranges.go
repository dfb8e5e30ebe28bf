package plot

import (
	"errors"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var (
	// ErrEmptyDataSet is returned when there are no points to compute ranges for.
	ErrEmptyDataSet = errors.New("empty data set")
	// ErrNoFiniteRange is returned when an axis has no finite coordinate (e.g. log scale over non-positive values).
	ErrNoFiniteRange = errors.New("no finite coordinates on axis")
)

// LogAxes selects which axes use a natural logarithm scale.
type LogAxes struct {
	X, Y, Z bool
}

// AxisRange is the [Min, Max] bound of one coordinate axis, after the optional log transform.
type AxisRange struct {
	Min, Max float32
}

// Span is Max - Min.
func (a AxisRange) Span() float32 {
	return a.Max - a.Min
}

// Contains reports whether v is strictly inside the range.
func (a AxisRange) Contains(v float32) bool {
	return a.Min < v && v < a.Max
}

// Center is the middle of the range.
func (a AxisRange) Center() float32 {
	return (a.Min + a.Max) / 2
}

// Transform applies the log transform of the axis to a coordinate, if enabled.
// Non-positive inputs give -Inf or NaN, which callers must treat as "not plottable".
func Transform(v float32, useLog bool) float32 {
	if !useLog {
		return v
	}
	return float32(math.Log(float64(v)))
}

// Position returns the plotted coordinates of p.
func (l LogAxes) Position(p DataPoint) [3]float32 {
	return [3]float32{Transform(p.X, l.X), Transform(p.Y, l.Y), Transform(p.Z, l.Z)}
}

// ComputeAxisRanges returns the X, Y and Z ranges of the points. The log transform (if enabled for an axis) is applied to
// each coordinate before reducing to the minimum and maximum. Non-finite transformed coordinates are ignored.
func ComputeAxisRanges(points []DataPoint, logAxes LogAxes) ([3]AxisRange, error) {
	var res [3]AxisRange
	if len(points) == 0 {
		return res, ErrEmptyDataSet
	}
	var found [3]bool
	for _, p := range points {
		pos := logAxes.Position(p)
		for axis, v := range pos {
			if !isFinite(v) {
				continue
			}
			if !found[axis] {
				res[axis] = AxisRange{Min: v, Max: v}
				found[axis] = true
				continue
			}
			if v < res[axis].Min {
				res[axis].Min = v
			}
			if v > res[axis].Max {
				res[axis].Max = v
			}
		}
	}
	for _, ok := range found {
		if !ok {
			return res, ErrNoFiniteRange
		}
	}
	return res, nil
}

// BoundingBox converts the axis ranges to a box.
func BoundingBox(ranges [3]AxisRange) sdf.Box3 {
	return sdf.Box3{
		Min: v3.Vec{X: float64(ranges[0].Min), Y: float64(ranges[1].Min), Z: float64(ranges[2].Min)},
		Max: v3.Vec{X: float64(ranges[0].Max), Y: float64(ranges[1].Max), Z: float64(ranges[2].Max)},
	}
}

func isFinite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
