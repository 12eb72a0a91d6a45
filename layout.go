package curve

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotutil"
)

// Aspect selects how a series is drawn.
type Aspect int

const (
	LineAspect Aspect = iota // lines and/or glyphs through the data points
	BarAspect                // histogram bars standing on y=0
)

func (a Aspect) String() string {
	if a == BarAspect {
		return "bar"
	}
	return "line"
}

// BarFill selects how histogram bars are filled.
type BarFill int

const (
	TransparentBars BarFill = iota // outline only
	PlainBars                      // filled with BarOpacity
)

// NumGlyphs is the number of glyph ids; 0 means no glyph, the others
// select plotutil.Shape(id-1).
const NumGlyphs = 9

// Layout is the visual style of one series. A Layout is owned by exactly
// one curve (host) or one overlay Entry and never shared; use Clone to
// hand a copy to someone else.
type Layout struct {
	Color      color.NRGBA
	Thickness  float64 // line width in points, > 0
	Dash       int     // 0: no line, else a registered dash id
	Glyph      int     // 0: no glyph
	GlyphSize  float64 // glyph radius in points, > 0
	GlyphFreq  int     // draw a glyph at every GlyphFreq-th point, > 0
	BarWidth   float64 // in data units of the x axis, > 0
	BarOpacity float64 // in [0,1]
	BarFill    BarFill
	Aspect     Aspect

	notify func()
}

// NewLayout returns the default style for line series: a solid line
// without glyphs in the index-th default color.
func NewLayout(index int) *Layout {
	return &Layout{
		Color:      toNRGBA(plotutil.Color(index)),
		Thickness:  1,
		Dash:       SolidDash,
		Glyph:      0,
		GlyphSize:  3,
		GlyphFreq:  1,
		BarWidth:   1,
		BarOpacity: 0.75,
		BarFill:    PlainBars,
		Aspect:     LineAspect,
	}
}

// NewBarLayout returns the default style for histogram series.
func NewBarLayout(index int) *Layout {
	l := NewLayout(index)
	l.Aspect = BarAspect
	l.Dash = NoDash
	return l
}

// NewGlyphLayout returns the default style for scatter series: glyphs
// only, no connecting line.
func NewGlyphLayout(index int) *Layout {
	l := NewLayout(index)
	l.Dash = NoDash
	l.Glyph = 1 + index%(NumGlyphs-1)
	return l
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Clone returns a private copy of l which is not attached to any curve.
func (l *Layout) Clone() *Layout {
	c := *l
	c.notify = nil
	return &c
}

func (l *Layout) changed() {
	if l.notify != nil {
		l.notify()
	}
}

// SetColor sets the series color.
func (l *Layout) SetColor(c color.Color) {
	l.Color = toNRGBA(c)
	l.changed()
}

// SetThickness sets the line width, which must be positive.
func (l *Layout) SetThickness(t float64) error {
	if !(t > 0) || math.IsInf(t, 0) {
		return paramError("SetThickness", "thickness", "%g must be > 0", t)
	}
	l.Thickness = t
	l.changed()
	return nil
}

// SetDash selects the dash pattern; 0 switches the line off.
func (l *Layout) SetDash(id int) error {
	if id < NoDash || id >= NumDashes {
		return paramError("SetDash", "dash", "%d not in [0,%d]", id, NumDashes-1)
	}
	l.Dash = id
	l.changed()
	return nil
}

// SetGlyph selects the glyph; 0 switches glyphs off.
func (l *Layout) SetGlyph(id int) error {
	if id < 0 || id >= NumGlyphs {
		return paramError("SetGlyph", "glyph", "%d not in [0,%d]", id, NumGlyphs-1)
	}
	l.Glyph = id
	l.changed()
	return nil
}

// SetGlyphSize sets the glyph radius, which must be positive.
func (l *Layout) SetGlyphSize(s float64) error {
	if !(s > 0) || math.IsInf(s, 0) {
		return paramError("SetGlyphSize", "glyph size", "%g must be > 0", s)
	}
	l.GlyphSize = s
	l.changed()
	return nil
}

// SetGlyphFreq draws a glyph at every n-th data point, n must be positive.
func (l *Layout) SetGlyphFreq(n int) error {
	if n <= 0 {
		return paramError("SetGlyphFreq", "glyph frequency", "%d must be > 0", n)
	}
	l.GlyphFreq = n
	l.changed()
	return nil
}

// SetBarWidth sets the width of histogram bars in x axis units.
func (l *Layout) SetBarWidth(w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return paramError("SetBarWidth", "bar width", "%g must be > 0", w)
	}
	l.BarWidth = w
	l.changed()
	return nil
}

// SetBarOpacity sets the opacity of filled bars, in [0,1].
func (l *Layout) SetBarOpacity(o float64) error {
	if !(o >= 0 && o <= 1) {
		return paramError("SetBarOpacity", "bar opacity", "%g not in [0,1]", o)
	}
	l.BarOpacity = o
	l.changed()
	return nil
}

// SetBarFill selects transparent or plain bars.
func (l *Layout) SetBarFill(f BarFill) error {
	if f != TransparentBars && f != PlainBars {
		return paramError("SetBarFill", "bar fill", "unknown mode %d", f)
	}
	l.BarFill = f
	l.changed()
	return nil
}

// SetAspect switches between line and bar series.
func (l *Layout) SetAspect(a Aspect) error {
	if a != LineAspect && a != BarAspect {
		return paramError("SetAspect", "aspect", "unknown aspect %d", a)
	}
	l.Aspect = a
	l.changed()
	return nil
}
