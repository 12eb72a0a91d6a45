// Package zoom implements drag-to-zoom on a rendered curve.
//
// A Controller is fed with pointer events in window pixel coordinates
// (y growing downward) and their timestamps. Dragging a rectangle to the
// right zooms into the x range, dragging to the left zooms out; likewise
// dragging down zooms into the y range and dragging up zooms out.
// The axis bounds are only changed on release and only if the drag was
// large and long enough, see Config.
package zoom

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"time"

	"github.com/vdobler/curve"
	"github.com/vdobler/curve/internal/logging"
	"github.com/vdobler/curve/render"
)

// State of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Config holds the thresholds a drag must pass to be committed.
type Config struct {
	MinDrag    int           // pixels, exclusive, in both directions
	MinElapsed time.Duration // exclusive
	MaxElapsed time.Duration // exclusive
}

// DefaultConfig rejects drags of up to 5 pixels and releases within half
// a second or after 50 seconds or more.
func DefaultConfig() Config {
	return Config{
		MinDrag:    5,
		MinElapsed: 500 * time.Millisecond,
		MaxElapsed: 50 * time.Second,
	}
}

// Direction is the zoom semantic of one axis during a drag.
type Direction int

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	if d == Out {
		return "zoom out"
	}
	return "zoom in"
}

// Quadrant combines the zoom semantics of both axes.
type Quadrant struct {
	X, Y Direction
}

func (q Quadrant) String() string {
	return "x: " + q.X.String() + ", y: " + q.Y.String()
}

// NotInPlot is the readout for positions outside the data region.
const NotInPlot = "not in plot"

// Feedback is the result of a pointer move.
type Feedback struct {
	Readout  string
	Quadrant Quadrant    // only meaningful while dragging
	Image    image.Image // cached raster with the selection, nil if idle
}

// A Controller is the interactive zoom state of one curve.
type Controller struct {
	Config   Config
	Curve    *curve.Curve
	Renderer *render.Renderer // draws the live feedback; may be nil

	state  State
	start  image.Point
	startT time.Duration
}

// New returns an idle controller for c.
func New(c *curve.Curve, r *render.Renderer, cfg Config) *Controller {
	return &Controller{Config: cfg, Curve: c, Renderer: r}
}

// State returns the current state.
func (z *Controller) State() State { return z.state }

// frame returns the data region in pixels: left, top, width, height.
func (z *Controller) frame() (left, top, width, height float64) {
	c := z.Curve
	fx, fy := c.Frame[curve.XAxis], c.Frame[curve.YAxis]
	w, h := float64(c.Width), float64(c.Height)
	return fx.Min * w, fy.Min * h, fx.Span() * w, fy.Span() * h
}

// transforms returns the pixel mappings of both axes.
func (z *Controller) transforms() (x, y curve.AxisTransform) {
	left, top, width, height := z.frame()
	x = z.Curve.X().Transform(left, left+width)
	y = z.Curve.Y().Transform(top+height, top)
	return x, y
}

// Inside reports whether the pixel p lies inside the data region.
func (z *Controller) Inside(p image.Point) bool {
	left, top, width, height := z.frame()
	px, py := float64(p.X), float64(p.Y)
	return px >= left && px <= left+width && py >= top && py <= top+height
}

// ToData maps the pixel p to data coordinates.
func (z *Controller) ToData(p image.Point) (x, y float64) {
	tx, ty := z.transforms()
	return tx.Unmap(float64(p.X)), ty.Unmap(float64(p.Y))
}

// Readout returns the data coordinates under p or NotInPlot.
func (z *Controller) Readout(p image.Point) string {
	if !z.Inside(p) {
		return NotInPlot
	}
	x, y := z.ToData(p)
	dx, dy := z.Curve.X().LabelDigits+2, z.Curve.Y().LabelDigits+2
	return "x = " + strconv.FormatFloat(x, 'g', dx, 64) + ", y = " + strconv.FormatFloat(y, 'g', dy, 64)
}

// Press starts a drag at p if p lies inside the data region. It reports
// whether a drag was started.
func (z *Controller) Press(p image.Point, t time.Duration) bool {
	if z.state == Dragging || !z.Inside(p) {
		return false
	}
	z.state = Dragging
	z.start, z.startT = p, t
	z.Curve.Zoomed = [2]curve.Interval{z.Curve.X().Range(), z.Curve.Y().Range()}
	return true
}

// quadrant returns the zoom semantic of a drag from the start to p.
func (z *Controller) quadrant(p image.Point) Quadrant {
	q := Quadrant{X: Out, Y: Out}
	if p.X > z.start.X {
		q.X = In
	}
	if p.Y > z.start.Y {
		q.Y = In
	}
	return q
}

// Move updates the readout. While dragging it also updates the zoom
// snapshot of the curve and, given a Renderer, draws the selection onto
// the cached raster.
func (z *Controller) Move(p image.Point, t time.Duration) (Feedback, error) {
	fb := Feedback{Readout: z.Readout(p)}
	if z.state != Dragging {
		return fb, nil
	}

	fb.Quadrant = z.quadrant(p)
	fb.Readout += " (" + fb.Quadrant.String() + ")"
	if x, y, err := z.bounds(p); err == nil {
		z.Curve.Zoomed = [2]curve.Interval{x, y}
	}

	if z.Renderer == nil {
		return fb, nil
	}
	img, err := z.Renderer.Raster(z.Curve, 0, 0)
	if err != nil {
		return fb, fmt.Errorf("zoom: %w", err)
	}
	sel := image.Rectangle{Min: z.start, Max: p}
	fb.Image = z.Renderer.Feedback(img, sel, fb.Readout)
	return fb, nil
}

// Release ends a drag at p. The new bounds are committed if the drag
// exceeded MinDrag pixels in both directions and took longer than
// MinElapsed and less than MaxElapsed. Otherwise the curve is left
// unchanged. Release reports whether the bounds were changed.
func (z *Controller) Release(p image.Point, t time.Duration) (bool, error) {
	if z.state != Dragging {
		return false, nil
	}
	z.state = Idle
	z.Curve.Zoomed = [2]curve.Interval{curve.UnsetInterval(), curve.UnsetInterval()}

	if !z.accept(p, t) {
		logging.Debugf("zoom %s: drag %v-%v in %s ignored", z.Curve.ID, z.start, p, t-z.startT)
		return false, nil
	}
	x, y, err := z.bounds(p)
	if err != nil {
		return false, err
	}

	for axis, r := range [2]curve.Interval{x, y} {
		a := z.Curve.Axes[axis]
		a.Autoscale = false
		if err := a.SetBounds(r.Min, r.Max); err != nil {
			return axis > 0, fmt.Errorf("zoom: %w", err)
		}
	}
	z.Curve.MarkDirty()
	logging.Debugf("zoom %s: x [%g,%g], y [%g,%g]", z.Curve.ID, x.Min, x.Max, y.Min, y.Max)
	return true, nil
}

func (z *Controller) accept(p image.Point, t time.Duration) bool {
	dx, dy := abs(p.X-z.start.X), abs(p.Y-z.start.Y)
	elapsed := t - z.startT
	return dx > z.Config.MinDrag && dy > z.Config.MinDrag &&
		elapsed > z.Config.MinElapsed && elapsed < z.Config.MaxElapsed
}

// bounds returns the axis ranges a drag from the start to p commits.
// Zooming in selects the dragged span, zooming out widens both ends of
// the axis by the dragged pixel distance.
func (z *Controller) bounds(p image.Point) (x, y curve.Interval, err error) {
	tx, ty := z.transforms()
	left, top, width, height := z.frame()
	q := z.quadrant(p)
	sx, sy := float64(z.start.X), float64(z.start.Y)
	px, py := float64(p.X), float64(p.Y)

	if q.X == In {
		x = curve.Interval{Min: tx.Unmap(sx), Max: tx.Unmap(px)}
	} else {
		d := sx - px
		x = curve.Interval{Min: tx.Unmap(left - d), Max: tx.Unmap(left + width + d)}
	}
	if q.Y == In {
		y = curve.Interval{Min: ty.Unmap(py), Max: ty.Unmap(sy)}
	} else {
		d := sy - py
		y = curve.Interval{Min: ty.Unmap(top + height + d), Max: ty.Unmap(top - d)}
	}

	for _, r := range []curve.Interval{x, y} {
		if !(r.Min < r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
			return x, y, &curve.Error{Kind: curve.ErrInvalidRange, Op: "zoom", Field: "axis",
				Msg: fmt.Sprintf("degenerate range [%g,%g]", r.Min, r.Max)}
		}
	}
	return x, y, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
