package curve

import (
	"math"
)

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN,NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges, NaN edges compare equal.
func (i Interval) Equal(j Interval) bool {
	eq := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return eq(i.Min, j.Min) && eq(i.Max, j.Max)
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Span returns Max-Min.
func (i Interval) Span() float64 { return i.Max - i.Min }

// Contains reports whether x lies in the closed interval i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// ----------------------------------------------------------------------------
// Padding

// Padding controls how much an autoscaled data range is expanded on
// both sides: by Relative times the data span plus Absolut.
type Padding struct {
	Absolut  float64
	Relative float64
}

// DefaultPadding expands the data range by 5% on each side.
var DefaultPadding = Padding{Relative: 0.05}

// expand turns the data range into an axis range. Degenerate ranges are
// widened so the result always satisfies Min < Max. On logarithmic axes
// the expansion is applied to the decades and Min stays positive.
func (p Padding) expand(data Interval, log bool) Interval {
	if log {
		if !(data.Min > 0) {
			data.Min = data.Max / 1000
		}
		if !(data.Max > 0) {
			return Interval{0.1, 10}
		}
		lmin, lmax := math.Log10(data.Min), math.Log10(data.Max)
		if lmin == lmax {
			return Interval{data.Min / 10, data.Max * 10}
		}
		ext := p.Relative*(lmax-lmin) + p.Absolut
		return Interval{math.Pow(10, lmin-ext), math.Pow(10, lmax+ext)}
	}

	ext := p.Relative*(data.Max-data.Min) + p.Absolut
	r := Interval{data.Min - ext, data.Max + ext}
	if r.Min >= r.Max {
		w := math.Abs(data.Min) / 10
		if w == 0 {
			w = 1
		}
		r = Interval{data.Min - w, data.Max + w}
	}
	return r
}
