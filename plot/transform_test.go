package plot

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/fogleman/fauxgl"
)

var testViewport = v2i.Vec{X: 800, Y: 600}

func matricesClose(a, b fauxgl.Matrix, tolerance float64) bool {
	av := [16]float64{a.X00, a.X01, a.X02, a.X03, a.X10, a.X11, a.X12, a.X13, a.X20, a.X21, a.X22, a.X23, a.X30, a.X31, a.X32, a.X33}
	bv := [16]float64{b.X00, b.X01, b.X02, b.X03, b.X10, b.X11, b.X12, b.X13, b.X20, b.X21, b.X22, b.X23, b.X30, b.X31, b.X32, b.X33}
	for i := range av {
		if math.Abs(av[i]-bv[i]) > tolerance {
			return false
		}
	}
	return true
}

func vectorsClose(a, b fauxgl.Vector, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance && math.Abs(a.Z-b.Z) <= tolerance
}

func TestFitMatrix(t *testing.T) {
	ranges := [3]AxisRange{{-10, 30}, {0, 1}, {5, 5}}
	m := FitMatrix(ranges)
	if got := m.MulPosition(fauxgl.V(-10, 0, 5)); !vectorsClose(got, fauxgl.V(-0.5, -0.5, 0), 1e-12) {
		t.Errorf("expected the min corner at (-0.5, -0.5, 0), got %v", got)
	}
	if got := m.MulPosition(fauxgl.V(30, 1, 5)); !vectorsClose(got, fauxgl.V(0.5, 0.5, 0), 1e-12) {
		t.Errorf("expected the max corner at (0.5, 0.5, 0), got %v", got)
	}
}

func TestViewTransformInitial(t *testing.T) {
	v := NewViewTransform()
	if !matricesClose(v.Total, fauxgl.Identity(), 0) || v.Dragging || v.Perspective != DefaultPerspective {
		t.Fatalf("unexpected initial transform %+v", v)
	}
}

func TestViewTransformDragStates(t *testing.T) {
	v := NewViewTransform()
	if v.OnMove(v2i.Vec{X: 10, Y: 10}, testViewport, DragRotate) {
		t.Fatal("moving without pressing must not change the transform")
	}
	v.OnPress(v2i.Vec{X: 10, Y: 10})
	if !v.Dragging {
		t.Fatal("expected to be dragging after press")
	}
	if v.OnMove(v2i.Vec{X: 10, Y: 10}, testViewport, DragRotate) {
		t.Fatal("a zero delta must not change the transform")
	}
	if !v.OnMove(v2i.Vec{X: 30, Y: 5}, testViewport, DragRotate) {
		t.Fatal("expected the drag to change the transform")
	}
	if v.Last != (v2i.Vec{X: 30, Y: 5}) {
		t.Fatalf("expected the last position to follow the pointer, got %v", v.Last)
	}
	v.OnRelease()
	before := v.Total
	if v.Dragging || v.OnMove(v2i.Vec{X: 100, Y: 100}, testViewport, DragRotate) || v.Total != before {
		t.Fatal("moving after release must not change the transform")
	}
}

func TestViewTransformFrameToFrame(t *testing.T) {
	// Two moves from the same origin must accumulate the frame deltas (10 then 10 more), not origin-to-current
	v := NewViewTransform()
	v.OnPress(v2i.Vec{})
	v.OnMove(v2i.Vec{X: 10}, testViewport, DragPan)
	v.OnMove(v2i.Vec{X: 20}, testViewport, DragPan)
	got := v.Total.MulPosition(fauxgl.Vector{})
	expected := fauxgl.V(PanSensitivity*20/float64(testViewport.X), 0, 0)
	if !vectorsClose(got, expected, 1e-12) {
		t.Fatalf("expected the origin to move to %v, got %v", expected, got)
	}
}

func TestViewTransformComposition(t *testing.T) {
	d1 := RotationDelta(12, -7, testViewport)
	d2 := RotationDelta(-3, 25, testViewport)

	sequential := NewViewTransform()
	sequential.Apply(d1)
	sequential.Apply(d2)

	precomposed := NewViewTransform()
	precomposed.Apply(d2.Mul(d1))

	if !matricesClose(sequential.Total, precomposed.Total, 1e-12) {
		t.Fatalf("sequential deltas %v differ from the composed delta %v", sequential.Total, precomposed.Total)
	}

	dragged := NewViewTransform()
	dragged.OnPress(v2i.Vec{X: 100, Y: 100})
	dragged.OnMove(v2i.Vec{X: 112, Y: 93}, testViewport, DragRotate)
	dragged.OnMove(v2i.Vec{X: 109, Y: 118}, testViewport, DragRotate)
	if !matricesClose(dragged.Total, precomposed.Total, 1e-12) {
		t.Fatalf("dragging %v differs from the composed delta %v", dragged.Total, precomposed.Total)
	}
}

func TestViewTransformWorldSpace(t *testing.T) {
	// After a quarter turn around Y, a horizontal pan must still move along the world X axis
	v := NewViewTransform()
	v.Apply(fauxgl.Rotate(fauxgl.V(0, 1, 0), math.Pi/2))
	v.Apply(PanDelta(float64(testViewport.X)/2, 0, testViewport))
	got := v.Total.MulPosition(fauxgl.Vector{})
	if !vectorsClose(got, fauxgl.V(1, 0, 0), 1e-12) {
		t.Fatalf("expected the origin at (1, 0, 0), got %v", got)
	}
}

func TestViewTransformFitKeepsUser(t *testing.T) {
	v := NewViewTransform()
	v.OnWheel(2)
	user := v.User
	ranges := [3]AxisRange{{0, 2}, {0, 2}, {0, 2}}
	v.Fit(ranges, DefaultPerspective)
	if v.User != user {
		t.Fatal("refitting must keep the user transform")
	}
	if !matricesClose(v.Total, user.Mul(FitMatrix(ranges)), 1e-12) {
		t.Fatal("expected Total = User * Base")
	}
	s := ZoomStep * ZoomStep
	if got := v.Total.MulPosition(fauxgl.V(2, 2, 2)); !vectorsClose(got, fauxgl.V(s/2, s/2, s/2), 1e-12) {
		t.Fatalf("expected the zoomed corner at %v, got %v", s/2, got)
	}
	v.Reset()
	if !matricesClose(v.User, fauxgl.Identity(), 0) {
		t.Fatal("expected reset to discard the user transform")
	}
}

func TestViewTransformZoom(t *testing.T) {
	v := NewViewTransform()
	v.OnPress(v2i.Vec{X: 0, Y: 300})
	v.OnMove(v2i.Vec{X: 0, Y: 0}, testViewport, DragZoom)
	s := math.Exp(ZoomSensitivity * 300 / float64(testViewport.Y))
	if got := v.Total.MulPosition(fauxgl.V(1, 0, 0)); !vectorsClose(got, fauxgl.V(s, 0, 0), 1e-9) {
		t.Fatalf("expected dragging up to zoom in by %v, got %v", s, got)
	}
	if v.OnWheel(0) {
		t.Fatal("a zero wheel delta must not change the transform")
	}
}

func TestViewTransformCamera(t *testing.T) {
	v := NewViewTransform()
	camera := v.Camera(4. / 3.)
	for _, corner := range []fauxgl.Vector{fauxgl.V(-0.5, -0.5, -0.5), fauxgl.V(0.5, 0.5, 0.5), fauxgl.V(0.5, -0.5, 0.5)} {
		clip := camera.MulPositionW(corner)
		ndc := fauxgl.V(clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W)
		if clip.W <= 0 || math.Abs(ndc.X) > 1 || math.Abs(ndc.Y) > 1 || math.Abs(ndc.Z) > 1 {
			t.Fatalf("unit cube corner %v outside the view: %v", corner, ndc)
		}
	}
	if e := v.EyePosition(); e.Z != 1/DefaultPerspective {
		t.Fatalf("unexpected eye position %v", e)
	}
}
