package plot

import (
	"math"

	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/fogleman/fauxgl"
)

// DefaultPerspective is the perspective strength used for new data sets: the camera sits at 1/DefaultPerspective units
// from the fitted unit cube (smaller is closer to an orthographic view).
const DefaultPerspective = 0.25

const (
	// RotateSensitivity is the rotation (radians) of a drag over the whole viewport.
	RotateSensitivity = math.Pi
	// PanSensitivity is the translation (unit cube sizes) of a drag over the whole viewport width.
	PanSensitivity = 2.
	// ZoomSensitivity is the log of the scale factor of a drag over the whole viewport height.
	ZoomSensitivity = 2.
	// ZoomStep is the scale factor of one mouse wheel step.
	ZoomStep = 1.1
	// zoomFactor limits the scale change of a single wheel event.
	zoomFactor = 4.
)

// DragMode selects what a drag does to the view.
type DragMode int

const (
	DragRotate DragMode = iota
	DragPan
	DragZoom
)

// ViewTransform is the camera state of a session: the projection basis fitted to the data (Base), the accumulated
// orbit/pan/zoom (User) and the drag state machine. Total (User * Base) maps data coordinates to world coordinates.
type ViewTransform struct {
	Base, User, Total fauxgl.Matrix
	Perspective       float64
	Dragging          bool
	Last              v2i.Vec // Pointer position of the last processed event while Dragging
}

// NewViewTransform returns an identity transform with DefaultPerspective.
func NewViewTransform() ViewTransform {
	return ViewTransform{
		Base:        fauxgl.Identity(),
		User:        fauxgl.Identity(),
		Total:       fauxgl.Identity(),
		Perspective: DefaultPerspective,
	}
}

// FitMatrix maps the bounding box of the ranges onto the unit cube centered at the origin. Empty axes (a single value)
// are only centered.
func FitMatrix(ranges [3]AxisRange) fauxgl.Matrix {
	var center, scale fauxgl.Vector
	for axis, r := range ranges {
		c, s := float64(r.Center()), 1.
		if span := float64(r.Span()); span > 0 {
			s = 1 / span
		}
		switch axis {
		case 0:
			center.X, scale.X = c, s
		case 1:
			center.Y, scale.Y = c, s
		case 2:
			center.Z, scale.Z = c, s
		}
	}
	return fauxgl.Translate(center.Negate()).Scale(scale)
}

// Fit recomputes the projection basis for new axis ranges, keeping the user transform.
// A non-positive perspective selects DefaultPerspective.
func (v *ViewTransform) Fit(ranges [3]AxisRange, perspective float64) {
	if perspective <= 0 {
		perspective = DefaultPerspective
	}
	v.Base = FitMatrix(ranges)
	v.Perspective = perspective
	v.update()
}

// Reset discards the user transform.
func (v *ViewTransform) Reset() {
	v.User = fauxgl.Identity()
	v.update()
}

// OnPress starts a drag at p.
func (v *ViewTransform) OnPress(p v2i.Vec) {
	v.Dragging = true
	v.Last = p
}

// OnRelease ends the current drag.
func (v *ViewTransform) OnRelease() {
	v.Dragging = false
}

// OnMove applies the movement since the last event while dragging. It returns true if the transform changed.
func (v *ViewTransform) OnMove(p v2i.Vec, viewport v2i.Vec, mode DragMode) bool {
	if !v.Dragging || p == v.Last || viewport.X <= 0 || viewport.Y <= 0 {
		return false
	}
	dx, dy := float64(p.X-v.Last.X), float64(p.Y-v.Last.Y)
	var delta fauxgl.Matrix
	switch mode {
	case DragPan:
		delta = PanDelta(dx, dy, viewport)
	case DragZoom:
		delta = ZoomDelta(dy, viewport)
	default:
		delta = RotationDelta(dx, dy, viewport)
	}
	v.Apply(delta)
	v.Last = p
	return true
}

// OnWheel zooms by ZoomStep per wheel step (positive is closer).
func (v *ViewTransform) OnWheel(steps float64) bool {
	if steps == 0 {
		return false
	}
	s := math.Max(1/zoomFactor, math.Min(zoomFactor, math.Pow(ZoomStep, steps)))
	v.Apply(fauxgl.Scale(fauxgl.V(s, s, s)))
	return true
}

// Apply composes delta on the outside of the user transform, so it acts in world space.
func (v *ViewTransform) Apply(delta fauxgl.Matrix) {
	v.User = delta.Mul(v.User)
	v.update()
}

func (v *ViewTransform) update() {
	v.Total = v.User.Mul(v.Base)
}

// Camera is the world to clip space matrix for the given aspect ratio (width / height): a perspective camera on the Z+
// axis looking at the origin.
func (v *ViewTransform) Camera(aspect float64) fauxgl.Matrix {
	dist := 1 / v.Perspective
	halfFov := math.Atan(1 / dist)
	if aspect < 1 { // Keep the unit cube visible on portrait viewports
		halfFov = math.Atan(math.Tan(halfFov) / aspect)
	}
	return fauxgl.LookAt(fauxgl.V(0, 0, dist), fauxgl.Vector{}, fauxgl.V(0, 1, 0)).
		Perspective(2*halfFov*180/math.Pi, aspect, dist*1e-2, dist*10)
}

// EyePosition is the world position of the Camera.
func (v *ViewTransform) EyePosition() fauxgl.Vector {
	return fauxgl.V(0, 0, 1/v.Perspective)
}

// RotationDelta rotates around X by the vertical movement and around Y by the horizontal movement, RotateSensitivity
// radians per viewport extent.
func RotationDelta(dx, dy float64, viewport v2i.Vec) fauxgl.Matrix {
	aroundY := RotateSensitivity * dx / float64(viewport.X)
	aroundX := RotateSensitivity * dy / float64(viewport.Y)
	return fauxgl.Rotate(fauxgl.V(1, 0, 0), aroundX).Rotate(fauxgl.V(0, 1, 0), aroundY)
}

// PanDelta translates on the screen plane. Both directions are relative to the viewport width, so a drag moves the
// same distance horizontally and vertically.
func PanDelta(dx, dy float64, viewport v2i.Vec) fauxgl.Matrix {
	w := float64(viewport.X)
	return fauxgl.Translate(fauxgl.V(PanSensitivity*dx/w, -PanSensitivity*dy/w, 0)) // Screen Y is down
}

// ZoomDelta scales around the origin: dragging up zooms in.
func ZoomDelta(dy float64, viewport v2i.Vec) fauxgl.Matrix {
	s := math.Exp(-ZoomSensitivity * dy / float64(viewport.Y))
	return fauxgl.Scale(fauxgl.V(s, s, s))
}
