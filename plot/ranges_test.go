package plot

import (
	"errors"
	"math"
	"testing"
)

func TestComputeAxisRanges(t *testing.T) {
	points := []DataPoint{{X: 1, Y: -2, Z: 3}, {X: 10, Y: 5, Z: -3}, {X: 100, Y: 0, Z: 0}}
	ranges, err := ComputeAxisRanges(points, LogAxes{})
	if err != nil {
		t.Fatal(err)
	}
	expected := [3]AxisRange{{1, 100}, {-2, 5}, {-3, 3}}
	if ranges != expected {
		t.Fatalf("expected %v, got %v", expected, ranges)
	}
}

func TestComputeAxisRangesLog(t *testing.T) {
	points := []DataPoint{{X: 10, Y: 1, Z: 1}, {X: 1, Y: 2, Z: 1}, {X: 100, Y: 3, Z: 1}}
	ranges, err := ComputeAxisRanges(points, LogAxes{X: true})
	if err != nil {
		t.Fatal(err)
	}
	if ranges[0].Min != 0 {
		t.Errorf("expected log X min 0, got %v", ranges[0].Min)
	}
	if expected := float32(math.Log(100)); ranges[0].Max != expected {
		t.Errorf("expected log X max %v, got %v", expected, ranges[0].Max)
	}
	if ranges[1] != (AxisRange{1, 3}) {
		t.Errorf("Y must not be log scaled, got %v", ranges[1])
	}
}

func TestComputeAxisRangesLogNonPositive(t *testing.T) {
	points := []DataPoint{{X: -1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}}
	ranges, err := ComputeAxisRanges(points, LogAxes{X: true})
	if err != nil {
		t.Fatal(err)
	}
	if ranges[0].Min != 0 || ranges[0].Max != 0 {
		t.Fatalf("expected non-positive X to be ignored (range [0, 0]), got %v", ranges[0])
	}
	_, err = ComputeAxisRanges(points[:2], LogAxes{X: true})
	if !errors.Is(err, ErrNoFiniteRange) {
		t.Fatalf("expected ErrNoFiniteRange, got %v", err)
	}
}

func TestComputeAxisRangesEmpty(t *testing.T) {
	if _, err := ComputeAxisRanges(nil, LogAxes{}); !errors.Is(err, ErrEmptyDataSet) {
		t.Fatalf("expected ErrEmptyDataSet, got %v", err)
	}
}

func TestBoundingBox(t *testing.T) {
	bb := BoundingBox([3]AxisRange{{-1, 1}, {2, 4}, {0, 10}})
	if bb.Min.X != -1 || bb.Max.Y != 4 || bb.Max.Z != 10 {
		t.Fatalf("unexpected box %v", bb)
	}
	if c := bb.Center(); c.X != 0 || c.Y != 3 || c.Z != 5 {
		t.Fatalf("unexpected center %v", c)
	}
}
