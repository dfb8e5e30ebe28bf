package plot

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestFindGlobalMinimumIndex(t *testing.T) {
	points := []DataPoint{{1, 1, 1, 5}, {2, 2, 2, 1}, {3, 3, 3, 9}}
	if idx := FindGlobalMinimumIndex(points); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	ties := []DataPoint{{Value: 3}, {Value: 2}, {Value: 2}}
	if idx := FindGlobalMinimumIndex(ties); idx != 1 {
		t.Fatalf("expected the first minimum (index 1), got %d", idx)
	}
	nan := float32(math.NaN())
	if idx := FindGlobalMinimumIndex([]DataPoint{{Value: nan}, {Value: 1}, {Value: -3}}); idx != 2 {
		t.Fatalf("expected NaN values to be skipped (index 2), got %d", idx)
	}
	if idx := FindGlobalMinimumIndex(nil); idx != -1 {
		t.Fatalf("expected -1 for no points, got %d", idx)
	}
}

func TestMapValueToColor(t *testing.T) {
	if c := MapValueToColor(5, 0, 10, false); c != PseudoColor(0.5) {
		t.Errorf("expected the gradient at 0.5, got %v", c)
	}
	for _, v := range []float32{15, -5} {
		if c := MapValueToColor(v, 0, 10, false); c != Transparent {
			t.Errorf("value %v: expected transparent, got %v", v, c)
		}
	}
	for _, v := range []float32{-5, 5, 15} {
		if c := MapValueToColor(v, 0, 10, true); c != SentinelColor {
			t.Errorf("global minimum %v: expected the sentinel color, got %v", v, c)
		}
	}
	if c := MapValueToColor(0, 0, 10, false); c != PseudoColor(0) {
		t.Errorf("lower bound must be included, got %v", c)
	}
	if c := MapValueToColor(10, 0, 10, false); c != PseudoColor(1) {
		t.Errorf("upper bound must be included, got %v", c)
	}
	if c := MapValueToColor(3, 3, 3, false); c != Transparent {
		t.Errorf("empty display range: expected transparent, got %v", c)
	}
}

func TestPseudoColor(t *testing.T) {
	expected := map[float64]color.NRGBA{
		0:   {B: 255, A: 255},
		0.5: {G: 255, A: 255},
		1:   {R: 255, A: 255},
	}
	for k, c := range expected {
		if got := PseudoColor(k); got != c {
			t.Errorf("PseudoColor(%v): expected %v, got %v", k, c, got)
		}
	}
	if PseudoColor(-1) != PseudoColor(0) || PseudoColor(2) != PseudoColor(1) {
		t.Error("expected out of domain values to be clamped")
	}
	for k := 0.; k <= 1; k += 0.01 {
		if a := PseudoColor(k).A; a != 255 {
			t.Fatalf("PseudoColor(%v) is not opaque: %d", k, a)
		}
	}
}

func TestParseDisplayRange(t *testing.T) {
	min, max, err := ParseDisplayRange(" -1.5", "2e3 ")
	if err != nil || min != -1.5 || max != 2000 {
		t.Fatalf("expected [-1.5, 2000], got [%v, %v] (%v)", min, max, err)
	}
	for _, bounds := range [][2]string{{"", "1"}, {"0", "x"}, {"1,5", "2"}, {"nan", "1"}, {"0", "inf"}, {"0x1", "2"}} {
		if _, _, err = ParseDisplayRange(bounds[0], bounds[1]); !errors.Is(err, ErrInvalidDisplayRange) {
			t.Errorf("%q: expected ErrInvalidDisplayRange, got %v", bounds, err)
		}
	}
}
