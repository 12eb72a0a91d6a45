package curve

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// RenderContext

// A RenderContext is built once per render pass and handed to every series
// drawer. It holds the target canvas, the data region and the resolved axis
// transforms.
type RenderContext struct {
	Canvas draw.Canvas  // the whole window
	Frame  vg.Rectangle // the data region
	X, Y   AxisTransform
}

// NewRenderContext resolves the axes of c against the window canvas.
// The axis bounds must already be final (autoscaled, log floor applied).
func NewRenderContext(c *Curve, canvas draw.Canvas) *RenderContext {
	frame := c.FrameRect(canvas.Rectangle)
	return &RenderContext{
		Canvas: canvas,
		Frame:  frame,
		X:      c.X().Transform(float64(frame.Min.X), float64(frame.Max.X)),
		Y:      c.Y().Transform(float64(frame.Min.Y), float64(frame.Max.Y)),
	}
}

// MapXY maps the data coordinate (x,y) to a canvas point. The point is
// computed even for coordinates outside the axis ranges so lines can be
// clipped; ok is false in that case or if the point is not representable.
func (rc *RenderContext) MapXY(x, y float64) (p vg.Point, ok bool) {
	cx, okx := rc.X.Map(x)
	cy, oky := rc.Y.Map(y)
	return vg.Point{X: vg.Length(cx), Y: vg.Length(cy)}, okx && oky
}

// Inside reports whether p lies inside the data region.
func (rc *RenderContext) Inside(p vg.Point) bool {
	return p.X >= rc.Frame.Min.X && p.X <= rc.Frame.Max.X &&
		p.Y >= rc.Frame.Min.Y && p.Y <= rc.Frame.Max.Y
}

// FrameCanvas returns a canvas restricted to the data region.
func (rc *RenderContext) FrameCanvas() draw.Canvas {
	return draw.Canvas{Canvas: rc.Canvas.Canvas, Rectangle: rc.Frame}
}

// Window returns the canvas point at the fractions (fx,fy) of the window,
// fy measured from the top.
func (rc *RenderContext) Window(fx, fy float64) vg.Point {
	r := rc.Canvas.Rectangle
	return vg.Point{
		X: r.Min.X + vg.Length(fx)*(r.Max.X-r.Min.X),
		Y: r.Max.Y - vg.Length(fy)*(r.Max.Y-r.Min.Y),
	}
}

// FrameRect returns the data region of c inside the window rectangle.
// Frame y fractions are measured from the top of the window.
func (c *Curve) FrameRect(window vg.Rectangle) vg.Rectangle {
	w, h := window.Max.X-window.Min.X, window.Max.Y-window.Min.Y
	fx, fy := c.Frame[XAxis], c.Frame[YAxis]
	return vg.Rectangle{
		Min: vg.Point{X: window.Min.X + vg.Length(fx.Min)*w, Y: window.Max.Y - vg.Length(fy.Max)*h},
		Max: vg.Point{X: window.Min.X + vg.Length(fx.Max)*w, Y: window.Max.Y - vg.Length(fy.Min)*h},
	}
}

// Transform returns the mapping of a onto the canvas interval [lo,hi].
func (a *Axis) Transform(lo, hi float64) AxisTransform {
	t := LinearTrans
	if a.LogScale {
		t = Log10Trans
	}
	return AxisTransform{Data: a.Range(), Canvas: Interval{lo, hi}, Trans: t}
}

// ApplyLogFloor makes a log axis drawable: a non-positive lower bound is
// replaced by posMin/10 (posMin is the smallest positive data value) or,
// lacking data, by Max/1000. A non-positive upper bound resets the axis to
// [0.1,10]. It reports whether the bounds were changed.
func (a *Axis) ApplyLogFloor(posMin float64) bool {
	if !a.LogScale || a.Min > 0 {
		return false
	}
	switch {
	case !(a.Max > 0):
		a.Min, a.Max = 0.1, 10
	case posMin > 0 && posMin/10 < a.Max:
		a.Min = posMin / 10
	default:
		a.Min = a.Max / 1000
	}
	if math.IsInf(a.Min, 0) || a.Min <= 0 {
		a.Min = a.Max / 1000
	}
	if a.AutoTicks {
		a.RecomputeMajorTick()
	}
	return true
}
