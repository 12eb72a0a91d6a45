package render

import (
	"math"
	"strconv"

	"github.com/vdobler/curve"
	"gonum.org/v1/plot"
)

// maxTicks bounds the number of ticks of one axis. A user supplied major
// tick spacing far too small for the range falls back to NiceStep.
const maxTicks = 1000

// Ticks returns the major and minor ticks of a. Linear axes place major
// ticks at the multiples of MajorTick inside the axis range, labeled with
// LabelDigits decimals, and MinorTicks unlabeled ticks between two major
// ones. Log axes use the ticks of the log transformation.
func Ticks(a *curve.Axis) []plot.Tick {
	if a.LogScale {
		return curve.Log10Trans.Ticker.Ticks(a.Min, a.Max)
	}

	step := a.MajorTick
	if !(step > 0) || (a.Max-a.Min)/step > maxTicks {
		step = curve.NiceStep(a.Max - a.Min)
	}
	minor := step / float64(a.MinorTicks+1)
	eps := step * 1e-9

	var ticks []plot.Tick
	first := math.Floor(a.Min/step) * step
	for k := 0; ; k++ {
		major := first + float64(k)*step
		if major > a.Max+eps {
			break
		}
		if major >= a.Min-eps {
			v := major
			if math.Abs(v) < eps {
				v = 0
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v, a.LabelDigits)})
		}
		for m := 1; m <= a.MinorTicks; m++ {
			v := major + float64(m)*minor
			if v >= a.Min-eps && v <= a.Max+eps {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	return ticks
}

func formatTick(v float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}
