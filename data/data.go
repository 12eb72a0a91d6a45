// Package data contains the data interfaces used by the curve renderer and
// prototypical implementations.
package data

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrLength is returned if the sequences of a Set differ in length.
var ErrLength = errors.New("data: sequences differ in length")

// Set is the data paired with one curve: x and y values of equal length and
// an optional sequence of y errors. Renderers only read a Set.
type Set struct {
	X, Y []float64
	Err  []float64 // nil or of the same length as X
}

// NewSet returns a Set after checking the lengths of x, y and err.
func NewSet(x, y, err []float64) (*Set, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLength, len(x), len(y))
	}
	if err != nil && len(err) != len(x) {
		return nil, fmt.Errorf("%w: %d values, %d errors", ErrLength, len(x), len(err))
	}
	return &Set{X: x, Y: y, Err: err}, nil
}

// Len returns the number of points. A nil Set is empty.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.X)
}

// XY returns the i-th point. Together with Len it implements plotter.XYer.
func (s *Set) XY(i int) (x, y float64) { return s.X[i], s.Y[i] }

// HasErrors reports whether s carries y errors.
func (s *Set) HasErrors() bool { return s != nil && len(s.Err) == len(s.X) && len(s.Err) > 0 }

// YError returns the error of the i-th y value, 0 if s has no errors.
func (s *Set) YError(i int) float64 {
	if !s.HasErrors() {
		return 0
	}
	return s.Err[i]
}

// Range returns the extent of the finite x and y values. For an empty Set
// or one without finite values all four results are NaN.
func (s *Set) Range() (xmin, xmax, ymin, ymax float64) {
	xs, ys := finite(s.xs()), finite(s.ys())
	nan := math.NaN()
	xmin, xmax, ymin, ymax = nan, nan, nan, nan
	if len(xs) > 0 {
		xmin, xmax = floats.Min(xs), floats.Max(xs)
	}
	if len(ys) > 0 {
		ymin, ymax = floats.Min(ys), floats.Max(ys)
	}
	return xmin, xmax, ymin, ymax
}

// YRangeWithErrors is like the y part of Range but includes y±err.
func (s *Set) YRangeWithErrors() (ymin, ymax float64) {
	_, _, ymin, ymax = s.Range()
	if !s.HasErrors() {
		return ymin, ymax
	}
	lo := make([]float64, len(s.Y))
	hi := make([]float64, len(s.Y))
	floats.SubTo(lo, s.Y, abs(s.Err))
	floats.AddTo(hi, s.Y, abs(s.Err))
	lo, hi = finite(lo), finite(hi)
	if len(lo) > 0 {
		ymin = math.Min(ymin, floats.Min(lo))
	}
	if len(hi) > 0 {
		ymax = math.Max(ymax, floats.Max(hi))
	}
	return ymin, ymax
}

// PositiveMin returns the smallest positive x (axis 0) or y (axis 1)
// value, NaN if there is none.
func (s *Set) PositiveMin(axis int) float64 {
	v := s.xs()
	if axis == 1 {
		v = s.ys()
	}
	min := math.NaN()
	for _, x := range v {
		if x > 0 && !math.IsInf(x, 1) && !(min <= x) {
			min = x
		}
	}
	return min
}

func (s *Set) xs() []float64 {
	if s == nil {
		return nil
	}
	return s.X
}

func (s *Set) ys() []float64 {
	if s == nil {
		return nil
	}
	return s.Y
}

func finite(v []float64) []float64 {
	out := make([]float64, 0, len(v))
	for _, x := range v {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}

func abs(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Abs(x)
	}
	return out
}

// ----------------------------------------------------------------------------
// XYUVer

// XYUVer wraps the Len and XYUV methods.
type XYUVer interface {
	// Len returns the number of x, y, u, v quadruples.
	Len() int

	// XYUV returns an x, y, u, v quadruple.
	XYUV(int) (x, y, u, v float64)
}

// XYUVs implements the XYUVer interface.
type XYUVs []struct{ X, Y, U, V float64 }

func (d XYUVs) Len() int                        { return len(d) }
func (d XYUVs) XYUV(i int) (x, y, u, v float64) { return d[i].X, d[i].Y, d[i].U, d[i].V }
