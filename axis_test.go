package curve

import (
	"errors"
	"math"
	"testing"
)

func TestAxisSetBounds(t *testing.T) {
	for _, tc := range []struct {
		min, max float64
		ok       bool
	}{
		{0, 1, true},
		{-5, 5, true},
		{1e-9, 2e-9, true},
		{-3, -2, true},
		{1, 1, false},
		{2, 1, false},
		{nan, 1, false},
		{0, nan, false},
		{math.Inf(-1), 0, false},
	} {
		a := NewAxis("x")
		if err := a.SetBounds(10, 20); err != nil {
			t.Fatal(err)
		}
		err := a.SetBounds(tc.min, tc.max)
		if tc.ok {
			if err != nil || a.Min != tc.min || a.Max != tc.max {
				t.Errorf("SetBounds(%g,%g) = %v, axis [%g,%g]", tc.min, tc.max, err, a.Min, a.Max)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidRange) {
			t.Errorf("SetBounds(%g,%g) = %v, want invalid range", tc.min, tc.max, err)
		}
		if a.Min != 10 || a.Max != 20 {
			t.Errorf("SetBounds(%g,%g) changed axis to [%g,%g]", tc.min, tc.max, a.Min, a.Max)
		}
	}
}

func TestAxisSetMinMax(t *testing.T) {
	a := NewAxis("y")
	a.SetBounds(0, 10)
	if err := a.SetMin(12); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetMin above max: %v", err)
	}
	if err := a.SetMax(-1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetMax below min: %v", err)
	}
	if err := a.SetMin(5); err != nil || a.Min != 5 || a.Max != 10 {
		t.Errorf("SetMin(5): %v [%g,%g]", err, a.Min, a.Max)
	}
}

func TestAxisTicks(t *testing.T) {
	a := NewAxis("x")
	a.SetBounds(0, 40)
	if a.MajorTick != 2 || a.MinorTicks != DefaultMinorTicks {
		t.Errorf("auto ticks: %g/%d", a.MajorTick, a.MinorTicks)
	}
	if err := a.SetMajorTick(7); err != nil {
		t.Fatal(err)
	}
	a.SetMinorTicks(4)
	a.SetBounds(0, 3)
	if a.MajorTick != 7 || a.MinorTicks != 4 {
		t.Errorf("user ticks overwritten: %g/%d", a.MajorTick, a.MinorTicks)
	}
	a.RecomputeMajorTick()
	if a.MajorTick != 0.5 || a.MinorTicks != DefaultMinorTicks {
		t.Errorf("recomputed: %g/%d", a.MajorTick, a.MinorTicks)
	}
	if err := a.SetMajorTick(0); !errors.Is(err, ErrInvalidParameter) || a.MajorTick != 0.5 {
		t.Errorf("SetMajorTick(0): %v, %g", err, a.MajorTick)
	}
	if err := a.SetMinorTicks(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("SetMinorTicks(-1): %v", err)
	}
}

func TestAxisAutoscale(t *testing.T) {
	a := NewAxis("x")
	a.AutoscaleFrom(0, 10, Padding{})
	if a.Autoscale || a.Min != 0 || a.Max != 10 || a.MajorTick != 1 {
		t.Errorf("got %+v", a)
	}
	a.SetLogScale(true)
	if !a.Autoscale || !a.LogScale {
		t.Error("switching to log did not request autoscale")
	}
	a.SetLogScale(false)
	if !a.Autoscale {
		t.Error("switching to linear did not request autoscale")
	}
}

func TestAxisLabelAngle(t *testing.T) {
	a := NewAxis("x")
	for _, deg := range []float64{0, 90, -180, 180, 270, -720} {
		a.SetLabelAngle(deg)
		if want := deg * math.Pi / 180; a.LabelAngle != want {
			t.Errorf("SetLabelAngle(%g) = %g, want %g", deg, a.LabelAngle, want)
		}
	}
}

func TestAxisTitle(t *testing.T) {
	a := NewAxis("r [Å]")
	if a.Label() != "r [Å]" {
		t.Errorf("default label %q", a.Label())
	}
	a.SetTitle("distance")
	if a.Label() != "distance" || a.DefaultTitle {
		t.Errorf("custom label %q", a.Label())
	}
	a.SetTitle("")
	if a.Label() != "r [Å]" {
		t.Errorf("restored label %q", a.Label())
	}
}

func TestAxisLogFloor(t *testing.T) {
	for _, tc := range []struct {
		min, max, posMin float64
		want             Interval
	}{
		{-1, 100, 0.5, Interval{0.05, 100}},
		{0, 100, nan, Interval{0.1, 100}},
		{-10, -1, 2, Interval{0.1, 10}},
		{0, 1, 20, Interval{0.001, 1}},
	} {
		a := NewAxis("x")
		a.SetBounds(tc.min, tc.max)
		a.LogScale = true
		if !a.ApplyLogFloor(tc.posMin) {
			t.Errorf("[%g,%g]: floor not applied", tc.min, tc.max)
		}
		if !equal64(a.Min, tc.want.Min) || !equal64(a.Max, tc.want.Max) {
			t.Errorf("[%g,%g] pos %g: got [%g,%g], want %v", tc.min, tc.max, tc.posMin, a.Min, a.Max, tc.want)
		}
	}
	a := NewAxis("x")
	a.SetBounds(1, 10)
	a.LogScale = true
	if a.ApplyLogFloor(0.5) {
		t.Error("positive range changed")
	}
}
