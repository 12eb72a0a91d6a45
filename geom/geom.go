// Package geom provides the drawable series of a curve plot.
//
// Each geom draws one kind of mark (lines, glyphs, bars, error bars) for a
// sequence of data points onto the data region of a curve.RenderContext.
// Series builds the geoms for one entry of a curve's draw order from its
// Layout.
//
// Geoms only read their data. Points which cannot be mapped (NaN values or
// non-positive values on a log axis) are skipped; lines are broken at such
// points and clipped to the data region.
package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/curve"
	"github.com/vdobler/curve/data"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Geom draws itself onto the data region of rc.
type Geom interface {
	Draw(rc *curve.RenderContext)
}

// ----------------------------------------------------------------------------
// Line

// Line connects the given points in data order through straight line
// segments.
type Line struct {
	XY    plotter.XYer
	Style draw.LineStyle
}

// Draw implements Geom.
func (l Line) Draw(rc *curve.RenderContext) {
	if l.Style.Width <= 0 || l.Style.Color == nil {
		return
	}
	canvas := rc.FrameCanvas()
	for _, run := range l.runs(rc) {
		if len(run) < 2 {
			continue
		}
		canvas.StrokeLines(l.Style, canvas.ClipLinesXY(run)...)
	}
}

// runs maps the points of l and splits them into runs of representable
// points. Points outside the axis ranges are kept for clipping.
func (l Line) runs(rc *curve.RenderContext) [][]vg.Point {
	var runs [][]vg.Point
	var cur []vg.Point
	for i := 0; i < l.XY.Len(); i++ {
		p, _ := rc.MapXY(l.XY.XY(i))
		if isNaN(p) {
			if len(cur) > 0 {
				runs = append(runs, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// ----------------------------------------------------------------------------
// Glyphs

// Glyphs draws a glyph at every Freq-th data point lying inside the axis
// ranges, starting with the first one.
type Glyphs struct {
	XY    plotter.XYer
	Style draw.GlyphStyle
	Freq  int
}

// Draw implements Geom.
func (g Glyphs) Draw(rc *curve.RenderContext) {
	if g.Style.Shape == nil || g.Style.Radius <= 0 {
		return
	}
	canvas := rc.FrameCanvas()
	for _, i := range g.indices() {
		p, ok := rc.MapXY(g.XY.XY(i))
		if !ok {
			continue
		}
		canvas.DrawGlyph(g.Style, p)
	}
}

func (g Glyphs) indices() []int {
	freq := g.Freq
	if freq < 1 {
		freq = 1
	}
	var idx []int
	for i := 0; i < g.XY.Len(); i += freq {
		idx = append(idx, i)
	}
	return idx
}

// ----------------------------------------------------------------------------
// Rectangle

// Rectangle draws rectangles.
// The coordinates are the outside coordinates, i.e. if the border is drawn for
// the rectangle then this border is drawn inside the rectangle given by the
// coordinates.
type Rectangle struct {
	XYUV    data.XYUVer
	Default BoxStyle
}

// clipRect clips rect to the limit. The returned rectangle is in the
// canonical form; it is empty (Min == Max on one axis) if rect lies outside.
func clipRect(rect, limit vg.Rectangle) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit = CanonicRectangle(limit)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	if rect.Max.X < rect.Min.X {
		rect.Max.X = rect.Min.X
	}
	if rect.Max.Y < rect.Min.Y {
		rect.Max.Y = rect.Min.Y
	}
	return rect
}

// Draw implements Geom.
func (r Rectangle) Draw(rc *curve.RenderContext) {
	fill := r.Default.Fill
	border := r.Default.Border
	canvas := rc.FrameCanvas()

	for i := 0; i < r.XYUV.Len(); i++ {
		x, y, u, v := r.XYUV.XYUV(i)
		min, _ := rc.MapXY(x, y)
		max, _ := rc.MapXY(u, v)
		if isNaN(min) || isNaN(max) {
			continue
		}
		rect := clipRect(vg.Rectangle{Min: min, Max: max}, rc.Frame)
		if rect.Min.X == rect.Max.X || rect.Min.Y == rect.Max.Y {
			continue
		}

		if fill != nil {
			canvas.SetColor(fill)
			canvas.Fill(rect.Path())
		}
		if border.Width <= 0 || border.Color == nil {
			continue
		}
		w := 0.499 * border.Width
		rect.Min.X += w
		rect.Min.Y += w
		rect.Max.X -= w
		rect.Max.Y -= w
		canvas.SetColor(border.Color)
		canvas.SetLineWidth(border.Width)
		canvas.SetLineDash(border.Dashes, border.DashOffs)
		canvas.Stroke(rect.Path())
	}
}

// ----------------------------------------------------------------------------
// Bars

// Bars draws histogram bars standing (or hanging) from y=0, or from the
// lower bound of a logarithmic y axis. Width is measured in x data units.
// Shift places the bar k widths to the right, so that several bar series
// drawn with the shifts 0, 1, 2, ... stand side by side.
type Bars struct {
	XY      plotter.XYer
	Width   float64
	Shift   int
	Default BoxStyle
}

// Draw implements Geom.
func (b Bars) Draw(rc *curve.RenderContext) {
	floor := 0.0
	if rc.Y.Log() {
		floor = rc.Y.Data.Min
	}
	Rectangle{XYUV: b.rects(floor), Default: b.Default}.Draw(rc)
}

// rects returns the bar rectangles: the left edge of the bar at x is
// x - Width/2 + Shift*Width.
func (b Bars) rects(floor float64) data.XYUVs {
	xyuv := make(data.XYUVs, b.XY.Len())
	for i := range xyuv {
		x, y := b.XY.XY(i)
		left := x - b.Width/2 + float64(b.Shift)*b.Width
		xyuv[i].X, xyuv[i].Y = left, floor
		xyuv[i].U, xyuv[i].V = left+b.Width, y
	}
	return xyuv
}

// ----------------------------------------------------------------------------
// ErrorBars

// ErrorBars draws a vertical bar from y-err to y+err at every data point
// with a cap of width Cap at both ends.
type ErrorBars struct {
	XY    plotter.XYer
	Err   func(i int) float64
	Cap   vg.Length
	Style draw.LineStyle
}

// Draw implements Geom.
func (e ErrorBars) Draw(rc *curve.RenderContext) {
	if e.Err == nil || e.Style.Width <= 0 {
		return
	}
	canvas := rc.FrameCanvas()
	for i := 0; i < e.XY.Len(); i++ {
		x, y := e.XY.XY(i)
		d := math.Abs(e.Err(i))
		if d == 0 || math.IsNaN(d) {
			continue
		}
		lo, _ := rc.MapXY(x, y-d)
		hi, _ := rc.MapXY(x, y+d)
		if isNaN(hi) {
			continue
		}
		if isNaN(lo) {
			// y-err is not representable on a log axis
			lo = vg.Point{X: hi.X, Y: rc.Frame.Min.Y}
		}
		canvas.StrokeLines(e.Style, canvas.ClipLinesXY([]vg.Point{lo, hi})...)
		if e.Cap > 0 {
			for _, p := range []vg.Point{lo, hi} {
				if !rc.Inside(p) {
					continue
				}
				canvas.StrokeLine2(e.Style, p.X-e.Cap/2, p.Y, p.X+e.Cap/2, p.Y)
			}
		}
	}
}

// ----------------------------------------------------------------------------
// Series

// Series returns the geoms drawing the data set of one item of a curve's
// draw order, back to front. An empty set yields no geoms.
func Series(item curve.DrawItem, set *data.Set) []Geom {
	if set.Len() == 0 || item.Layout == nil {
		return nil
	}
	l := item.Layout
	var geoms []Geom

	if l.Aspect == curve.BarAspect {
		geoms = append(geoms, Bars{
			XY:      set,
			Width:   l.BarWidth,
			Shift:   item.Shift,
			Default: BarStyle(l),
		})
	} else if l.Dash != curve.NoDash {
		geoms = append(geoms, Line{XY: set, Style: LineStyle(l)})
	}

	if set.HasErrors() {
		sty := LineStyle(l)
		sty.Dashes = nil
		geoms = append(geoms, ErrorBars{
			XY:    set,
			Err:   set.YError,
			Cap:   vg.Length(2 * l.GlyphSize),
			Style: sty,
		})
	}

	if l.Aspect == curve.LineAspect && l.Glyph != 0 {
		geoms = append(geoms, Glyphs{XY: set, Style: GlyphStyle(l), Freq: l.GlyphFreq})
	}
	return geoms
}

// LineStyle returns the line style of l. The no-dash sentinel yields a
// solid style; callers decide whether a line is drawn at all.
func LineStyle(l *curve.Layout) draw.LineStyle {
	return draw.LineStyle{
		Color:  l.Color,
		Width:  vg.Length(l.Thickness),
		Dashes: curve.Dashes(l.Dash),
	}
}

// GlyphStyle returns the glyph style of l; glyph id g selects
// plotutil.Shape(g-1). Without a glyph the Shape is nil.
func GlyphStyle(l *curve.Layout) draw.GlyphStyle {
	sty := draw.GlyphStyle{Color: l.Color, Radius: vg.Length(l.GlyphSize)}
	if l.Glyph > 0 {
		sty.Shape = plotutil.Shape(l.Glyph - 1)
	}
	return sty
}

// BarStyle returns the box style of bars drawn with l. Plain bars are
// filled with the layout color at BarOpacity; transparent bars are drawn
// as outlines only.
func BarStyle(l *curve.Layout) BoxStyle {
	sty := BoxStyle{Border: LineStyle(l)}
	if l.BarFill == curve.PlainBars {
		sty.Fill = fade(l.Color, l.BarOpacity)
		if l.Dash == curve.NoDash {
			sty.Border.Width = 0
		}
	}
	return sty
}

// Thumbnail draws the legend sample of l into r.
func Thumbnail(c draw.Canvas, r vg.Rectangle, l *curve.Layout) {
	mid := (r.Min.Y + r.Max.Y) / 2
	if l.Aspect == curve.BarAspect {
		sty := BarStyle(l)
		if sty.Fill != nil {
			c.SetColor(sty.Fill)
			c.Fill(r.Path())
		}
		if sty.Border.Width > 0 {
			c.SetColor(sty.Border.Color)
			c.SetLineWidth(sty.Border.Width)
			c.SetLineDash(sty.Border.Dashes, 0)
			c.Stroke(r.Path())
		}
		return
	}
	if l.Dash != curve.NoDash {
		c.StrokeLine2(LineStyle(l), r.Min.X, mid, r.Max.X, mid)
	}
	if l.Glyph != 0 {
		c.DrawGlyph(GlyphStyle(l), vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: mid})
	}
}

func isNaN(p vg.Point) bool {
	return math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y))
}

// fade returns col with its alpha scaled by opacity.
func fade(col color.NRGBA, opacity float64) color.Color {
	if opacity < 0 || opacity > 1 || math.IsNaN(opacity) {
		return nil
	}
	col.A = uint8(math.Round(float64(col.A) * opacity))
	return col
}
