package curve

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

const (
	XAxis int = iota
	YAxis
)

// ID identifies a curve by the project and the analysis it belongs to and
// its index among the curves of that analysis.
type ID struct {
	Project, Analysis, Curve int
}

func (id ID) String() string {
	return fmt.Sprintf("%d/%d/%d", id.Project, id.Analysis, id.Curve)
}

// ParseID parses the form "project/analysis/curve" produced by String.
func ParseID(s string) (ID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return ID{}, paramError("ParseID", "id", "%q is not of the form p/a/c", s)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return ID{}, paramError("ParseID", "id", "bad component %q in %q", p, s)
		}
		n[i] = v
	}
	return ID{Project: n[0], Analysis: n[1], Curve: n[2]}, nil
}

// ----------------------------------------------------------------------------
// Blocks

// TitleBlock describes the plot title.
type TitleBlock struct {
	Show    bool
	Default bool   // use the curve and project name instead of Text
	Text    string // custom title
	Font    FontSpec
	Color   color.NRGBA
	Pos     [2]float64 // center of the title as fraction of the window, from the top left
}

// LegendBlock describes the legend.
type LegendBlock struct {
	Show         bool
	Font         FontSpec
	Color        color.NRGBA
	Pos          [2]float64 // top left corner as fraction of the window
	Box          bool       // draw a border around the legend
	BoxDash      int
	BoxThickness float64
	BoxColor     color.NRGBA
}

// FrameType selects the shape of the frame around the data region.
type FrameType int

const (
	ClosedFrame FrameType = iota // all four sides
	OpenFrame                    // left and bottom side only
)

// FrameBlock describes the border of the data region.
type FrameBlock struct {
	Show      bool
	Type      FrameType
	Dash      int
	Thickness float64
	Color     color.NRGBA
}

// ----------------------------------------------------------------------------
// Curve

// Curve is everything needed to draw one curve of an analysis together with
// its overlays. The data itself is not part of a Curve; it is looked up
// through a Source when rendering.
type Curve struct {
	ID          ID
	Name        string // legend text and default title
	ProjectName string

	Width, Height int         // window size in pixels
	Frame         [2]Interval // data region as fraction of the window, y from the top
	Background    color.NRGBA

	Title  TitleBlock
	Legend LegendBlock
	Border FrameBlock

	Axes   [2]*Axis
	Layout *Layout
	Extras *SeriesList

	// DrawID is the z-order slot of the host among the Extras.Len()+1
	// series, counted from the back.
	DrawID   int
	BarShift bool // shift adjacent bar series side by side

	// Zoomed is the live axis range during a zoom drag.
	Zoomed [2]Interval

	cache image.Image
}

// New returns a curve with default geometry and styling, drawn as a line
// series with autoscaled linear axes.
func New(id ID, name string) *Curve {
	c := &Curve{
		ID:         id,
		Name:       name,
		Width:      600,
		Height:     450,
		Frame:      [2]Interval{{0.15, 0.9}, {0.1, 0.85}},
		Background: color.NRGBA{0xff, 0xff, 0xff, 0xff},
		Title: TitleBlock{
			Show:    true,
			Default: true,
			Font:    FontSpec{Typeface: "Liberation", Variant: "Sans", Size: 14},
			Color:   color.NRGBA{A: 0xff},
			Pos:     [2]float64{0.5, 0.04},
		},
		Legend: LegendBlock{
			Show:         false,
			Font:         DefaultFont,
			Color:        color.NRGBA{A: 0xff},
			Pos:          [2]float64{0.75, 0.15},
			BoxDash:      LegendBoxDash,
			BoxThickness: 1,
			BoxColor:     color.NRGBA{A: 0xff},
		},
		Border: FrameBlock{
			Show:      true,
			Type:      ClosedFrame,
			Dash:      SolidDash,
			Thickness: 1,
			Color:     color.NRGBA{A: 0xff},
		},
		Axes:   [2]*Axis{NewAxis("x"), NewAxis("y")},
		Layout: NewLayout(0),
		Extras: NewSeriesList(),
	}
	c.Zoomed = [2]Interval{UnsetInterval(), UnsetInterval()}
	c.Attach()
	return c
}

// Attach wires the axes and layouts of c so that editing them invalidates
// the cached raster. New calls Attach; code assembling a Curve by hand
// (e.g. when loading) must call it once done.
func (c *Curve) Attach() {
	for _, a := range c.Axes {
		if a != nil {
			a.notify = c.MarkDirty
		}
	}
	if c.Layout != nil {
		c.Layout.notify = c.MarkDirty
	}
	if c.Extras == nil {
		c.Extras = NewSeriesList()
	}
	c.Extras.Each(func(e *Entry) { e.Layout.notify = c.MarkDirty })
}

// MarkDirty invalidates the cached raster.
func (c *Curve) MarkDirty() { c.cache = nil }

// Cached returns the raster of the last render pass if c was not modified
// since.
func (c *Curve) Cached() (image.Image, bool) {
	return c.cache, c.cache != nil
}

// SetCached stores img as the raster of c. Only renderers should call it.
func (c *Curve) SetCached(img image.Image) { c.cache = img }

// X and Y return the two axes.
func (c *Curve) X() *Axis { return c.Axes[XAxis] }
func (c *Curve) Y() *Axis { return c.Axes[YAxis] }

// TitleText returns the title to draw.
func (c *Curve) TitleText() string {
	if !c.Title.Default {
		return c.Title.Text
	}
	if c.ProjectName == "" {
		return c.Name
	}
	return c.Name + " - " + c.ProjectName
}

// SetWindow sets the window size in pixels.
func (c *Curve) SetWindow(width, height int) error {
	if width <= 0 || height <= 0 {
		return paramError("SetWindow", "window", "%dx%d must be positive", width, height)
	}
	c.Width, c.Height = width, height
	c.MarkDirty()
	return nil
}

// SetFrame sets the data region along axis (XAxis or YAxis) as fractions of
// the window. It fails with ErrInvalidRange unless 0 <= min < max <= 1.
func (c *Curve) SetFrame(axis int, min, max float64) error {
	if axis != XAxis && axis != YAxis {
		return paramError("SetFrame", "axis", "unknown axis %d", axis)
	}
	if !(min >= 0 && min < max && max <= 1) {
		return &Error{Kind: ErrInvalidRange, Op: "SetFrame", Field: "frame",
			Msg: fmt.Sprintf("need 0 <= %g < %g <= 1", min, max)}
	}
	c.Frame[axis] = Interval{min, max}
	c.MarkDirty()
	return nil
}

// SetBackground sets the background color.
func (c *Curve) SetBackground(col color.Color) {
	c.Background = toNRGBA(col)
	c.MarkDirty()
}

// SetTitle sets a custom title; an empty text restores the default title.
func (c *Curve) SetTitle(text string) {
	c.Title.Text = text
	c.Title.Default = text == ""
	c.MarkDirty()
}

func checkFraction(op, field string, x, y float64) error {
	if !(x >= 0 && x <= 1 && y >= 0 && y <= 1) {
		return paramError(op, field, "position (%g,%g) not inside [0,1]x[0,1]", x, y)
	}
	return nil
}

// SetTitlePos moves the title center to (x,y), fractions of the window.
func (c *Curve) SetTitlePos(x, y float64) error {
	if err := checkFraction("SetTitlePos", "title position", x, y); err != nil {
		return err
	}
	c.Title.Pos = [2]float64{x, y}
	c.MarkDirty()
	return nil
}

// SetLegendPos moves the top left corner of the legend to (x,y).
func (c *Curve) SetLegendPos(x, y float64) error {
	if err := checkFraction("SetLegendPos", "legend position", x, y); err != nil {
		return err
	}
	c.Legend.Pos = [2]float64{x, y}
	c.MarkDirty()
	return nil
}

// ShowTitle, ShowLegend and ShowFrame toggle the respective blocks.
func (c *Curve) ShowTitle(show bool)  { c.Title.Show = show; c.MarkDirty() }
func (c *Curve) ShowLegend(show bool) { c.Legend.Show = show; c.MarkDirty() }
func (c *Curve) ShowFrame(show bool)  { c.Border.Show = show; c.MarkDirty() }

// SetBarShift enables side by side placement of bar series.
func (c *Curve) SetBarShift(shift bool) {
	c.BarShift = shift
	c.MarkDirty()
}

// ----------------------------------------------------------------------------
// Overlays

// HasExtra reports whether id is already drawn as an overlay of c.
func (c *Curve) HasExtra(id ID) bool { return c.Extras.Contains(id) }

// AddExtra adds the curve id as an overlay styled by a private copy of l.
// A curve cannot overlay itself and can be added only once.
func (c *Curve) AddExtra(id ID, l *Layout, atFront bool) error {
	if id == c.ID {
		return invariantError("AddExtra", "curve %s cannot overlay itself", id)
	}
	e := NewEntry(id, l)
	if err := c.Extras.Insert(e, atFront); err != nil {
		return err
	}
	e.Layout.notify = c.MarkDirty
	c.MarkDirty()
	return nil
}

// RemoveExtra drops the overlay id. It reports whether id was an overlay.
// The host keeps its place in the draw order relative to the remaining
// overlays.
func (c *Curve) RemoveExtra(id ID) bool {
	n := c.Extras.Len()
	i, ok := c.Extras.index[id]
	if !ok || !c.Extras.RemoveByID(id) {
		return false
	}
	// Draw order runs from the tail, so list index i is drawn at slot
	// n-1-i; entries in slots below DrawID are behind the host.
	if n-1-i < c.DrawID {
		c.DrawID--
	}
	c.DrawID = clampInt(c.DrawID, 0, c.Extras.Len())
	c.MarkDirty()
	return true
}

// Order returns the identities of all series in list order with the host
// at position DrawID. Passing it to Reorder is a no-op.
func (c *Curve) Order() []ID {
	n := c.Extras.Len()
	host := clampInt(c.DrawID, 0, n)
	order := make([]ID, 0, n+1)
	for i, e := range c.Extras.entries {
		if i == host {
			order = append(order, c.ID)
		}
		order = append(order, e.ID)
	}
	if host == n {
		order = append(order, c.ID)
	}
	return order
}

// Reorder applies a complete new order of host and overlays, e.g. after
// the user dragged a row in a list view. The overlays are relinked in the
// order given and DrawID becomes the position of the host.
func (c *Curve) Reorder(order []ID) error {
	pos, err := c.Extras.Reorder(order, c.ID)
	if err != nil {
		return err
	}
	c.DrawID = pos
	c.MarkDirty()
	return nil
}

// ----------------------------------------------------------------------------
// Draw order

// DrawItem is one series in draw order.
type DrawItem struct {
	ID     ID
	Layout *Layout
	Host   bool
	Shift  int // side by side index of bar series
}

// ResolveDrawOrder returns host and overlays ordered from back-most to
// front-most: the overlays from the tail of the list to its head with the
// host inserted at position DrawID.
//
// If BarShift is set and more than one series is drawn as bars, the bar
// series get the shift indices 0, 1, 2, ... in draw order. All other
// series have shift 0.
func (c *Curve) ResolveDrawOrder() []DrawItem {
	n := c.Extras.Len()
	hostPos := clampInt(c.DrawID, 0, n)
	host := DrawItem{ID: c.ID, Layout: c.Layout, Host: true}

	items := make([]DrawItem, 0, n+1)
	for i := n - 1; i >= 0; i-- {
		if len(items) == hostPos {
			items = append(items, host)
		}
		e := c.Extras.entries[i]
		items = append(items, DrawItem{ID: e.ID, Layout: e.Layout})
	}
	if len(items) == hostPos {
		items = append(items, host)
	}

	bars := 0
	for _, it := range items {
		if it.Layout.Aspect == BarAspect {
			bars++
		}
	}
	if c.BarShift && bars > 1 {
		k := 0
		for i := range items {
			if items[i].Layout.Aspect == BarAspect {
				items[i].Shift = k
				k++
			}
		}
	}
	return items
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
