// Scale Transformations
//
// A transformation maps the data interval of an axis onto the canvas
// interval covered by the frame.

package curve

import (
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropiate Ticker. The two functions map two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
	Ticker: plot.DefaultTicks{},
}

// Log10Trans maps the decades of from linearly onto to. Both edges of
// from must be positive.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min * math.Pow(10, math.Log10(from.Max/from.Min)*(y-to.Min)/(to.Max-to.Min))
	},
	Ticker: plot.LogTicks{Prec: -1},
}

// AxisTransform is the resolved mapping of one axis for one render pass.
type AxisTransform struct {
	Data   Interval // axis bounds
	Canvas Interval // canvas coordinates of the frame edges
	Trans  Transformation
}

// Map transforms the data value x to a canvas coordinate. The second
// result is false for values outside the axis range or not representable
// (non-positive values on a log axis).
func (a AxisTransform) Map(x float64) (float64, bool) {
	if math.IsNaN(x) || (a.Log() && x <= 0) {
		return math.NaN(), false
	}
	return a.Trans.Trans(a.Data, a.Canvas, x), a.Data.Contains(x)
}

// Unmap transforms the canvas coordinate y back to a data value.
func (a AxisTransform) Unmap(y float64) float64 {
	return a.Trans.Inverse(a.Data, a.Canvas, y)
}

// Log reports whether a maps logarithmically.
func (a AxisTransform) Log() bool { return a.Trans.Name == Log10Trans.Name }
