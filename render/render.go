// Package render draws curves.
//
// A Renderer performs the full render pass of one curve onto any
// gonum/plot canvas: an offscreen raster which is cached in the curve for
// the interactive zoom feedback, or a PNG, PDF, SVG or EPS export. All
// targets share the same geometry and draw order.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/vdobler/curve"
	"github.com/vdobler/curve/data"
	"github.com/vdobler/curve/geom"
	"github.com/vdobler/curve/internal/logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Renderer draws curves. The Source resolves overlays and supplies the
// data of every series; a nil Source draws the decorations only.
type Renderer struct {
	Style   Style
	Source  curve.Source
	Padding curve.Padding // applied when autoscaling
}

// New returns a Renderer with the default style and padding.
func New(src curve.Source) *Renderer {
	return &Renderer{
		Style:   DefaultStyle(10),
		Source:  src,
		Padding: curve.DefaultPadding,
	}
}

// series is one resolved item of the draw order.
type series struct {
	item curve.DrawItem
	name string
	set  *data.Set
}

// Render draws c onto canvas which covers the whole window. The pass is:
// background, autoscale and autotick, log axis setup, series back to
// front, zero axis lines, frame, ticks with labels and axis titles, title
// and legend.
//
// Render resolves pending autoscale requests and log floors and thus
// modifies the axes of c.
func (r *Renderer) Render(c *curve.Curve, canvas draw.Canvas) error {
	defer logging.TimeTrack(time.Now(), "render "+c.ID.String())

	canvas.SetColor(c.Background)
	canvas.Fill(canvas.Rectangle.Path())

	all, err := r.resolve(c)
	if err != nil {
		return err
	}

	r.autoscale(c, all)
	for axis, a := range c.Axes {
		if a.ApplyLogFloor(positiveMin(all, axis)) {
			logging.Debugf("curve %s: log floor of axis %d set to [%g,%g]", c.ID, axis, a.Min, a.Max)
		}
	}

	rc := curve.NewRenderContext(c, canvas)
	xticks, yticks := Ticks(c.X()), Ticks(c.Y())
	r.drawGrid(rc, c, xticks, yticks)

	for _, s := range all {
		for _, g := range geom.Series(s.item, s.set) {
			g.Draw(rc)
		}
	}

	r.drawAxisLines(rc, c)
	r.drawFrame(rc, c)
	r.drawXAxis(rc, c.X(), xticks)
	r.drawYAxis(rc, c.Y(), yticks)

	if c.Title.Show {
		sty := textStyle(c.Title.Font, c.Title.Color)
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YCenter
		canvas.FillText(sty, rc.Window(c.Title.Pos[0], c.Title.Pos[1]), c.TitleText())
	}
	if c.Legend.Show {
		r.drawLegend(rc, c, all)
	}
	return nil
}

// resolve looks up the name and data of every item in draw order.
func (r *Renderer) resolve(c *curve.Curve) ([]series, error) {
	items := c.ResolveDrawOrder()
	all := make([]series, len(items))
	for i, it := range items {
		all[i] = series{item: it, name: c.Name}
		if r.Source == nil {
			if !it.Host {
				all[i].name = it.ID.String()
			}
			continue
		}
		if !it.Host {
			other, err := r.Source.Resolve(it.ID)
			if err != nil {
				return nil, fmt.Errorf("render: overlay of %s: %w", c.ID, err)
			}
			all[i].name = other.Name
		}
		set, err := r.Source.Data(it.ID)
		if err != nil {
			return nil, fmt.Errorf("render: data of %s: %w", it.ID, err)
		}
		all[i].set = set
	}
	return all, nil
}

// autoscale resolves pending autoscale requests from the extent of all
// series. Bars contribute their full width and the base line y=0.
func (r *Renderer) autoscale(c *curve.Curve, all []series) {
	x, y := c.X(), c.Y()
	if !x.Autoscale && !y.Autoscale {
		return
	}
	ext := [2]curve.Interval{curve.UnsetInterval(), curve.UnsetInterval()}
	for _, s := range all {
		if s.set.Len() == 0 {
			continue
		}
		xmin, xmax, _, _ := s.set.Range()
		ymin, ymax := s.set.YRangeWithErrors()
		if x.LogScale && !(xmin > 0) {
			xmin = s.set.PositiveMin(curve.XAxis)
		}
		if y.LogScale && !(ymin > 0) {
			ymin = s.set.PositiveMin(curve.YAxis)
		}
		if l := s.item.Layout; l.Aspect == curve.BarAspect {
			shift := float64(s.item.Shift) * l.BarWidth
			xmin, xmax = xmin-l.BarWidth/2+shift, xmax+l.BarWidth/2+shift
			if !y.LogScale {
				ymin, ymax = math.Min(ymin, 0), math.Max(ymax, 0)
			}
		}
		ext[curve.XAxis].Update(xmin, xmax)
		ext[curve.YAxis].Update(ymin, ymax)
	}

	for axis, a := range c.Axes {
		if !a.Autoscale {
			continue
		}
		if !ext[axis].IsSet() {
			logging.Debugf("curve %s: no data to autoscale axis %d", c.ID, axis)
			continue
		}
		a.AutoscaleFrom(ext[axis].Min, ext[axis].Max, r.Padding)
		logging.Debugf("curve %s: axis %d autoscaled to [%g,%g], major tick %g",
			c.ID, axis, a.Min, a.Max, a.MajorTick)
	}
}

func positiveMin(all []series, axis int) float64 {
	min := math.NaN()
	for _, s := range all {
		if m := s.set.PositiveMin(axis); !(min <= m) {
			min = m
		}
	}
	return min
}

// ----------------------------------------------------------------------------
// Decorations

func (r *Renderer) drawGrid(rc *curve.RenderContext, c *curve.Curve, xticks, yticks []plot.Tick) {
	canvas := rc.FrameCanvas()
	f := rc.Frame
	if c.X().ShowGrid {
		for _, t := range xticks {
			x, ok := rc.X.Map(t.Value)
			if !ok {
				continue
			}
			sty := r.Style.Grid.Major
			if t.IsMinor() {
				sty = r.Style.Grid.Minor
			}
			canvas.StrokeLine2(sty, vg.Length(x), f.Min.Y, vg.Length(x), f.Max.Y)
		}
	}
	if c.Y().ShowGrid {
		for _, t := range yticks {
			y, ok := rc.Y.Map(t.Value)
			if !ok {
				continue
			}
			sty := r.Style.Grid.Major
			if t.IsMinor() {
				sty = r.Style.Grid.Minor
			}
			canvas.StrokeLine2(sty, f.Min.X, vg.Length(y), f.Max.X, vg.Length(y))
		}
	}
}

// drawAxisLines draws the lines x=0 and y=0 if enabled and 0 lies strictly
// inside the respective axis range.
func (r *Renderer) drawAxisLines(rc *curve.RenderContext, c *curve.Curve) {
	canvas := rc.FrameCanvas()
	f := rc.Frame
	if a := c.X(); a.ShowAxisLine && !a.LogScale && a.Min < 0 && a.Max > 0 {
		x, _ := rc.X.Map(0)
		canvas.StrokeLine2(r.Style.AxisLine, vg.Length(x), f.Min.Y, vg.Length(x), f.Max.Y)
	}
	if a := c.Y(); a.ShowAxisLine && !a.LogScale && a.Min < 0 && a.Max > 0 {
		y, _ := rc.Y.Map(0)
		canvas.StrokeLine2(r.Style.AxisLine, f.Min.X, vg.Length(y), f.Max.X, vg.Length(y))
	}
}

func (r *Renderer) drawFrame(rc *curve.RenderContext, c *curve.Curve) {
	b := c.Border
	if !b.Show || b.Dash == curve.NoDash || b.Thickness <= 0 {
		return
	}
	sty := draw.LineStyle{Color: b.Color, Width: vg.Length(b.Thickness), Dashes: curve.Dashes(b.Dash)}
	f := rc.Frame
	corners := []vg.Point{
		{X: f.Min.X, Y: f.Max.Y},
		f.Min,
		{X: f.Max.X, Y: f.Min.Y},
	}
	if b.Type == curve.ClosedFrame {
		corners = append(corners, f.Max, vg.Point{X: f.Min.X, Y: f.Max.Y})
	}
	rc.Canvas.StrokeLines(sty, corners)
}

// sides returns whether p selects the normal and the opposite side.
func sides(p curve.Position) (normal, opposite bool) {
	return p == curve.Normal || p == curve.Both, p == curve.Opposite || p == curve.Both
}

func (r *Renderer) drawXAxis(rc *curve.RenderContext, a *curve.Axis, ticks []plot.Tick) {
	canvas := rc.Canvas
	f := rc.Frame
	tickSty := draw.LineStyle{Color: r.Style.AxisLine.Color, Width: r.Style.Tick.Width}
	tickBottom, tickTop := sides(a.TickPos)
	labelBottom, labelTop := sides(a.LabelPos)

	label := textStyle(a.LabelFont, r.Style.AxisLine.Color)
	label.Rotation = a.LabelAngle
	label.XAlign = draw.XCenter
	dx, dy := vg.Length(a.LabelShift[0]), -vg.Length(a.LabelShift[1])
	major := vg.Length(a.MajorTickSize)
	if !tickBottom && !tickTop {
		major = 0
	}

	var labelHeight vg.Length
	for _, t := range ticks {
		x, ok := rc.X.Map(t.Value)
		if !ok {
			continue
		}
		xx := vg.Length(x)
		size := vg.Length(a.MajorTickSize)
		if t.IsMinor() {
			size = vg.Length(a.MinorTickSize)
		}
		if tickBottom {
			canvas.StrokeLine2(tickSty, xx, f.Min.Y, xx, f.Min.Y-size)
		}
		if tickTop {
			canvas.StrokeLine2(tickSty, xx, f.Max.Y, xx, f.Max.Y+size)
		}
		if t.IsMinor() {
			continue
		}
		if h := label.Height(t.Label); h > labelHeight {
			labelHeight = h
		}
		if labelBottom {
			label.YAlign = draw.YTop
			canvas.FillText(label, vg.Point{X: xx + dx, Y: f.Min.Y - major - r.Style.Tick.LabelPad + dy}, t.Label)
		}
		if labelTop {
			label.YAlign = draw.YBottom
			canvas.FillText(label, vg.Point{X: xx + dx, Y: f.Max.Y + major + r.Style.Tick.LabelPad + dy}, t.Label)
		}
	}

	if title := a.Label(); title != "" {
		sty := textStyle(a.TitleFont, r.Style.AxisLine.Color)
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
		y := f.Min.Y - major - r.Style.Tick.LabelPad - r.Style.TitlePad
		if labelBottom {
			y -= labelHeight
		}
		canvas.FillText(sty, vg.Point{X: (f.Min.X + f.Max.X) / 2, Y: y}, title)
	}
}

func (r *Renderer) drawYAxis(rc *curve.RenderContext, a *curve.Axis, ticks []plot.Tick) {
	canvas := rc.Canvas
	f := rc.Frame
	tickSty := draw.LineStyle{Color: r.Style.AxisLine.Color, Width: r.Style.Tick.Width}
	tickLeft, tickRight := sides(a.TickPos)
	labelLeft, labelRight := sides(a.LabelPos)

	label := textStyle(a.LabelFont, r.Style.AxisLine.Color)
	label.Rotation = a.LabelAngle
	label.YAlign = draw.YCenter
	dx, dy := vg.Length(a.LabelShift[0]), -vg.Length(a.LabelShift[1])
	major := vg.Length(a.MajorTickSize)
	if !tickLeft && !tickRight {
		major = 0
	}

	var labelWidth vg.Length
	for _, t := range ticks {
		y, ok := rc.Y.Map(t.Value)
		if !ok {
			continue
		}
		yy := vg.Length(y)
		size := vg.Length(a.MajorTickSize)
		if t.IsMinor() {
			size = vg.Length(a.MinorTickSize)
		}
		if tickLeft {
			canvas.StrokeLine2(tickSty, f.Min.X-size, yy, f.Min.X, yy)
		}
		if tickRight {
			canvas.StrokeLine2(tickSty, f.Max.X, yy, f.Max.X+size, yy)
		}
		if t.IsMinor() {
			continue
		}
		if w := label.Width(t.Label); w > labelWidth {
			labelWidth = w
		}
		if labelLeft {
			label.XAlign = draw.XRight
			canvas.FillText(label, vg.Point{X: f.Min.X - major - r.Style.Tick.LabelPad + dx, Y: yy + dy}, t.Label)
		}
		if labelRight {
			label.XAlign = draw.XLeft
			canvas.FillText(label, vg.Point{X: f.Max.X + major + r.Style.Tick.LabelPad + dx, Y: yy + dy}, t.Label)
		}
	}

	if title := a.Label(); title != "" {
		sty := textStyle(a.TitleFont, r.Style.AxisLine.Color)
		sty.Rotation = math.Pi / 2
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YBottom
		x := f.Min.X - major - r.Style.Tick.LabelPad - r.Style.TitlePad
		if labelLeft {
			x -= labelWidth
		}
		canvas.FillText(sty, vg.Point{X: x, Y: (f.Min.Y + f.Max.Y) / 2}, title)
	}
}

// drawLegend lists the series back to front below the legend position.
// The border box is drawn last around the accumulated extent.
func (r *Renderer) drawLegend(rc *curve.RenderContext, c *curve.Curve, all []series) {
	canvas := rc.Canvas
	sty := textStyle(c.Legend.Font, c.Legend.Color)
	sty.XAlign, sty.YAlign = draw.XLeft, draw.YCenter
	pad, sample := r.Style.Legend.Pad, r.Style.Legend.Sample

	top := rc.Window(c.Legend.Pos[0], c.Legend.Pos[1])
	y := top.Y
	var maxWidth, height vg.Length
	for i, s := range all {
		h := sty.Height(s.name)
		if i > 0 {
			y -= r.Style.Legend.LineSep
			height += r.Style.Legend.LineSep
		}
		mid := y - h/2
		box := vg.Rectangle{
			Min: vg.Point{X: top.X, Y: mid - h/4},
			Max: vg.Point{X: top.X + sample, Y: mid + h/4},
		}
		geom.Thumbnail(canvas, box, s.item.Layout)
		canvas.FillText(sty, vg.Point{X: top.X + sample + pad, Y: mid}, s.name)
		if w := sty.Width(s.name); w > maxWidth {
			maxWidth = w
		}
		y -= h
		height += h
	}

	if !c.Legend.Box || c.Legend.BoxThickness <= 0 {
		return
	}
	border := draw.LineStyle{
		Color:  c.Legend.BoxColor,
		Width:  vg.Length(c.Legend.BoxThickness),
		Dashes: curve.Dashes(c.Legend.BoxDash),
	}
	box := vg.Rectangle{
		Min: vg.Point{X: top.X - pad, Y: top.Y - height - pad},
		Max: vg.Point{X: top.X + sample + pad + maxWidth + pad, Y: top.Y + pad},
	}
	canvas.StrokeLines(border, []vg.Point{
		box.Min, {X: box.Max.X, Y: box.Min.Y}, box.Max, {X: box.Min.X, Y: box.Max.Y}, box.Min,
	})
}
