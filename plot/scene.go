package plot

import (
	"image/color"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Shape is the kind of primitive a Marker is rendered as.
type Shape int

const (
	ShapeEllipsoid Shape = iota
	ShapePyramid
	ShapeBar
)

func (s Shape) String() string {
	switch s {
	case ShapeEllipsoid:
		return "ellipsoid"
	case ShapePyramid:
		return "pyramid"
	case ShapeBar:
		return "bar"
	}
	return "unknown"
}

// Marker sizes, in the fitted unit cube (see FitMatrix).
const (
	dataMarkerSize  = 0.03
	probeMarkerSize = 0.1
	barWidth        = 0.2
	barHeight       = 0.01
)

// AxisMarkerCount is the number of bar markers appended to every scene.
const AxisMarkerCount = 6

// axisOvershoot is the distance of the axis bars to the bounding box, as a fraction of the axis span.
const axisOvershoot = 0.05

var (
	// ProbeColor is the color of the manual probe marker.
	ProbeColor = color.NRGBA{R: 169, G: 169, B: 169, A: 255}
	// AxisColor is the color of the axis bars.
	AxisColor = color.NRGBA{A: 255}
)

// Axis is one of the coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Marker is one renderable primitive. Position is in (log-transformed) data coordinates, Width and Height are in the
// fitted unit cube: ellipsoids are Width x Height x Height, pyramids have a Width x Width base and are Height tall
// along Y, and bars are Width x Width plates Height thick along Axis, the axis they mark.
type Marker struct {
	Position      v3.Vec
	Width, Height float64
	Shape         Shape
	Axis          Axis // Only used by bars
	Color         color.NRGBA
}

// DisplayParams are the user editable inputs of a redisplay. Text fields are kept as typed.
type DisplayParams struct {
	Log                    LogAxes
	RangeMin, RangeMax     string
	ProbeX, ProbeY, ProbeZ string
}

// Scene is the immutable result of BuildScene.
type Scene struct {
	Markers   []Marker
	Ranges    [3]AxisRange
	Colors    ColorMapping
	HasProbe  bool
	DataCount int
}

// BuildScene converts the points to markers: one ellipsoid per point, the manual probe pyramid (if valid and inside
// the ranges) and the AxisMarkerCount axis bars.
func BuildScene(points []DataPoint, params DisplayParams) (*Scene, error) {
	ranges, err := ComputeAxisRanges(points, params.Log)
	if err != nil {
		return nil, err
	}
	rangeMin, rangeMax, err := ParseDisplayRange(params.RangeMin, params.RangeMax)
	if err != nil {
		return nil, err
	}
	colors := ColorMapping{RangeMin: rangeMin, RangeMax: rangeMax, MinIndex: FindGlobalMinimumIndex(points)}
	probe, hasProbe := parseProbe(params, ranges)

	count := len(points) + AxisMarkerCount
	if hasProbe {
		count++
	}
	s := &Scene{
		Markers:   make([]Marker, 0, count),
		Ranges:    ranges,
		Colors:    colors,
		HasProbe:  hasProbe,
		DataCount: len(points),
	}
	for i, p := range points {
		pos := params.Log.Position(p)
		c := colors.Color(p.Value, i)
		if !isFinite(pos[0]) || !isFinite(pos[1]) || !isFinite(pos[2]) {
			pos, c = [3]float32{}, Transparent
		}
		s.Markers = append(s.Markers, Marker{
			Position: toVec(pos),
			Width:    dataMarkerSize,
			Height:   dataMarkerSize,
			Shape:    ShapeEllipsoid,
			Color:    c,
		})
	}
	if hasProbe {
		s.Markers = append(s.Markers, Marker{
			Position: toVec(probe),
			Width:    probeMarkerSize,
			Height:   probeMarkerSize,
			Shape:    ShapePyramid,
			Color:    ProbeColor,
		})
	}
	s.Markers = append(s.Markers, axisMarkers(ranges)...)
	return s, nil
}

func parseProbe(params DisplayParams, ranges [3]AxisRange) ([3]float32, bool) {
	var res [3]float32
	for i, txt := range []string{params.ProbeX, params.ProbeY, params.ProbeZ} {
		v, ok := ParseFloat(txt)
		if !ok {
			return res, false
		}
		res[i] = v
	}
	res = params.Log.Position(DataPoint{X: res[0], Y: res[1], Z: res[2]})
	for i, r := range ranges {
		if !r.Contains(res[i]) {
			return res, false
		}
	}
	return res, true
}

// axisMarkers places two bars along each axis, just below its minimum and just past its maximum, the other
// coordinates at the minimum corner of the box. Each bar is a plate facing its axis, so the axes can be told apart.
func axisMarkers(ranges [3]AxisRange) []Marker {
	x, y, z := ranges[0], ranges[1], ranges[2]
	positions := [AxisMarkerCount][3]float32{
		{before(x, axisOvershoot), y.Min, z.Min},
		{past(x, axisOvershoot), y.Min, z.Min},
		{x.Min, before(y, axisOvershoot), z.Min},
		{x.Min, past(y, axisOvershoot), z.Min},
		{x.Min, y.Min, before(z, axisOvershoot)},
		{x.Min, y.Min, past(z, axisOvershoot)},
	}
	res := make([]Marker, 0, AxisMarkerCount)
	for i, pos := range positions {
		res = append(res, Marker{
			Position: toVec(pos),
			Width:    barWidth,
			Height:   barHeight,
			Shape:    ShapeBar,
			Axis:     Axis(i / 2),
			Color:    AxisColor,
		})
	}
	return res
}

// past is f times the span beyond the maximum of r.
func past(r AxisRange, f float32) float32 {
	return r.Max + f*r.Span()
}

// before is f times the span below the minimum of r.
func before(r AxisRange, f float32) float32 {
	return r.Min - f*r.Span()
}

func toVec(p [3]float32) v3.Vec {
	return v3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}
