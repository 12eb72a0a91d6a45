package curve

import (
	"math"
)

// Position selects on which side of the frame ticks or tick labels are drawn.
type Position int

const (
	Normal   Position = iota // bottom for x, left for y
	Opposite                 // top for x, right for y
	Both
	Hidden
)

// DefaultMinorTicks is the number of minor ticks between two major ticks
// after the major tick spacing has been recomputed.
const DefaultMinorTicks = 2

// FontSpec names a font of the gonum/plot font cache.
type FontSpec struct {
	Typeface string // e.g. "Liberation"
	Variant  string // "Serif", "Sans" or "Mono"
	Size     float64
}

// DefaultFont is a 10pt sans serif font.
var DefaultFont = FontSpec{Typeface: "Liberation", Variant: "Sans", Size: 10}

// Axis is the state of the x or the y axis of a curve.
type Axis struct {
	Min, Max  float64
	Autoscale bool // recompute Min and Max from the data before the next draw
	LogScale  bool

	AutoTicks     bool    // MajorTick is computed by NiceStep
	MajorTick     float64 // spacing of major ticks in data units
	MinorTicks    int     // number of minor ticks between two major ticks
	MajorTickSize float64 // in pixels
	MinorTickSize float64 // in pixels
	TickPos       Position

	LabelDigits int
	LabelAngle  float64    // in radians
	LabelShift  [2]float64 // pixel offset of the tick labels
	LabelPos    Position
	LabelFont   FontSpec

	ShowGrid     bool
	ShowAxisLine bool // draw the zero line if 0 lies inside the other axis

	DefaultTitle bool   // use DefaultText instead of Title
	Title        string // custom title
	DefaultText  string
	TitleFont    FontSpec

	notify func()
}

// NewAxis returns an autoscaling linear axis with the default title text.
func NewAxis(defaultText string) *Axis {
	a := &Axis{
		Min:           0,
		Max:           1,
		Autoscale:     true,
		AutoTicks:     true,
		MinorTicks:    DefaultMinorTicks,
		MajorTickSize: 6,
		MinorTickSize: 3,
		TickPos:       Normal,
		LabelDigits:   1,
		LabelPos:      Normal,
		LabelFont:     DefaultFont,
		DefaultTitle:  true,
		DefaultText:   defaultText,
		TitleFont:     DefaultFont,
	}
	a.TitleFont.Size = 12
	a.MajorTick = NiceStep(a.Max - a.Min)
	return a
}

func (a *Axis) changed() {
	if a.notify != nil {
		a.notify()
	}
}

// Range returns the bounds of a.
func (a *Axis) Range() Interval { return Interval{a.Min, a.Max} }

// SetBounds sets both bounds. It fails with ErrInvalidRange and leaves a
// unchanged if min >= max.
func (a *Axis) SetBounds(min, max float64) error {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return rangeError("SetBounds", "axis", min, max)
	}
	a.Min, a.Max = min, max
	if a.AutoTicks {
		a.RecomputeMajorTick()
	}
	a.changed()
	return nil
}

// SetMin changes the lower bound, compared against the current upper bound.
func (a *Axis) SetMin(min float64) error { return a.SetBounds(min, a.Max) }

// SetMax changes the upper bound, compared against the current lower bound.
func (a *Axis) SetMax(max float64) error { return a.SetBounds(a.Min, max) }

// AutoscaleFrom sets the bounds from the data extent expanded by pad and
// clears the Autoscale flag.
func (a *Axis) AutoscaleFrom(dataMin, dataMax float64, pad Padding) {
	r := pad.expand(Interval{dataMin, dataMax}, a.LogScale)
	a.Min, a.Max = r.Min, r.Max
	a.Autoscale = false
	if a.AutoTicks {
		a.RecomputeMajorTick()
	}
	a.changed()
}

// RecomputeMajorTick sets the major tick spacing from the current bounds
// and resets the number of minor ticks.
func (a *Axis) RecomputeMajorTick() {
	a.MajorTick = NiceStep(math.Abs(a.Max - a.Min))
	a.MinorTicks = DefaultMinorTicks
}

// SetMajorTick overrides the computed major tick spacing.
func (a *Axis) SetMajorTick(step float64) error {
	if !(step > 0) || math.IsInf(step, 0) {
		return paramError("SetMajorTick", "major tick", "%g must be > 0", step)
	}
	a.MajorTick = step
	a.AutoTicks = false
	a.changed()
	return nil
}

// SetMinorTicks sets the number of minor ticks between major ticks.
func (a *Axis) SetMinorTicks(n int) error {
	if n < 0 {
		return paramError("SetMinorTicks", "minor ticks", "%d must be >= 0", n)
	}
	a.MinorTicks = n
	a.changed()
	return nil
}

// SetTickSizes sets the length of major and minor ticks in pixels.
func (a *Axis) SetTickSizes(major, minor float64) error {
	if major < 0 || minor < 0 {
		return paramError("SetTickSizes", "tick size", "%g/%g must be >= 0", major, minor)
	}
	a.MajorTickSize, a.MinorTickSize = major, minor
	a.changed()
	return nil
}

// SetLogScale switches between a linear and a logarithmic scale.
// Switching always forces a rescale on the next draw.
func (a *Axis) SetLogScale(log bool) {
	a.LogScale = log
	a.Autoscale = true
	a.changed()
}

// SetAutoscale requests recomputing the bounds on the next draw.
func (a *Axis) SetAutoscale() {
	a.Autoscale = true
	a.changed()
}

// SetLabelAngle sets the tick label rotation in degrees. Values outside
// [-180,180] are accepted as is.
func (a *Axis) SetLabelAngle(degrees float64) {
	a.LabelAngle = degrees * math.Pi / 180
	a.changed()
}

// SetLabelDigits sets the number of decimals of the tick labels.
func (a *Axis) SetLabelDigits(n int) error {
	if n < 0 {
		return paramError("SetLabelDigits", "label digits", "%d must be >= 0", n)
	}
	a.LabelDigits = n
	a.changed()
	return nil
}

// SetTitle sets a custom title; an empty title restores the default one.
func (a *Axis) SetTitle(title string) {
	a.Title = title
	a.DefaultTitle = title == ""
	a.changed()
}

// Label returns the title to draw.
func (a *Axis) Label() string {
	if a.DefaultTitle {
		return a.DefaultText
	}
	return a.Title
}
