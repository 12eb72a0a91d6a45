package curve

import (
	"math"
	"testing"
)

func TestNiceStep(t *testing.T) {
	for _, tc := range []struct {
		span, want float64
	}{
		{0, 0.00005},
		{0.0003, 0.00005},
		{0.0005, 0.00025},
		{0.3, 0.05},
		{1, 0.1},
		{3, 0.5},
		{10, 1},
		{40, 2},
		{99, 5},
		{2000, 500},
		{999999, 100000},
		{1e6, 100000},
		{1e12, 100000},
		{math.Inf(1), 100000},
		{math.NaN(), 0.00005},
		{-3, 0.00005},
	} {
		if got := NiceStep(tc.span); got != tc.want {
			t.Errorf("NiceStep(%g) = %g, want %g", tc.span, got, tc.want)
		}
	}
}

func TestNiceStepMonotone(t *testing.T) {
	prev := NiceStep(0)
	for span := 1e-5; span < 1e7; span *= 1.01 {
		got := NiceStep(span)
		if got < prev {
			t.Fatalf("NiceStep(%g) = %g < %g", span, got, prev)
		}
		prev = got
	}
	for i := 1; i < len(stepTable); i++ {
		if stepTable[i].limit <= stepTable[i-1].limit || stepTable[i].step < stepTable[i-1].step {
			t.Errorf("table not monotone at %d: %v after %v", i, stepTable[i], stepTable[i-1])
		}
	}
}
