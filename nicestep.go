package curve

import "math"

// stepTable is the staircase used by NiceStep: a span below limit gets a
// major tick spacing of step. Both columns are non-decreasing.
var stepTable = []struct{ limit, step float64 }{
	{0.0005, 0.00005},
	{0.0025, 0.00025},
	{0.005, 0.0005},
	{0.025, 0.0025},
	{0.05, 0.005},
	{0.25, 0.025},
	{0.5, 0.05},
	{1.5, 0.1},
	{2.5, 0.25},
	{5, 0.5},
	{15, 1},
	{30, 2},
	{50, 2},
	{100, 5},
	{250, 10},
	{500, 25},
	{1000, 100},
	{5000, 500},
	{10000, 1000},
	{50000, 5000},
	{100000, 10000},
	{500000, 50000},
	{1000000, 100000},
}

// NiceStep returns a human friendly major tick spacing for an axis
// covering span (typically |max-min|). Spans at or beyond the last
// threshold, including +Inf, get the largest step. NaN and negative
// spans get the smallest one.
func NiceStep(span float64) float64 {
	if math.IsNaN(span) || span < 0 {
		return stepTable[0].step
	}
	for _, s := range stepTable {
		if span < s.limit {
			return s.step
		}
	}
	return stepTable[len(stepTable)-1].step
}
