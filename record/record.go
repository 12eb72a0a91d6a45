// Package record stores curves as flat binary records.
//
// A record is positional: fixed size little-endian numbers (int32,
// float64, one byte booleans, four byte colors) followed by length
// prefixed strings, written and read in exactly the same order. A length
// of 0 denotes an absent string. Each sub-record (curve, axis, layout,
// overlay list) puts its strings after its numbers; the axes, layout and
// overlays of a curve are nested between the curve's numbers and its
// strings. Every record starts with the magic "CRV1".
//
// Any read or write failure aborts the record and is reported as a single
// error matching curve.ErrReadWrite.
package record

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vdobler/curve"
)

// Magic identifies a curve record and its version.
const Magic = "CRV1"

// Message constants of the errors returned by Load.
const (
	errMagic    = "not a curve record"
	errCount    = "bad overlay count"
	errSelfLink = "curve overlays itself"
)

// maxOverlays bounds the overlay count read from a record.
const maxOverlays = 1 << 16

// Save writes c to w.
func Save(w io.Writer, c *curve.Curve) error {
	rw := NewWriter(w)
	rw.Bytes([]byte(Magic))
	saveCurve(rw, c)
	if err := rw.Err(); err != nil {
		return curve.ReadWriteError("save "+c.ID.String(), err)
	}
	return nil
}

// Load reads a curve written by Save.
func Load(r io.Reader) (*curve.Curve, error) {
	rr := NewReader(r)
	magic := make([]byte, len(Magic))
	rr.Bytes(magic)
	if rr.Err() == nil && string(magic) != Magic {
		rr.Fail(fmt.Errorf("%s (magic %q)", errMagic, magic))
	}
	c := loadCurve(rr)
	if err := rr.Err(); err != nil {
		return nil, curve.ReadWriteError("load", err)
	}
	return c, nil
}

// SaveZstd writes c as a zstd compressed record.
func SaveZstd(w io.Writer, c *curve.Curve) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return curve.ReadWriteError("save "+c.ID.String(), err)
	}
	if err := Save(enc, c); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return curve.ReadWriteError("save "+c.ID.String(), err)
	}
	return nil
}

// LoadZstd reads a record written by SaveZstd.
func LoadZstd(r io.Reader) (*curve.Curve, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, curve.ReadWriteError("load", err)
	}
	defer dec.Close()
	return Load(dec)
}

// ----------------------------------------------------------------------------
// Curve

func saveID(w *Writer, id curve.ID) {
	w.Int(id.Project)
	w.Int(id.Analysis)
	w.Int(id.Curve)
}

func loadID(r *Reader) curve.ID {
	return curve.ID{Project: r.Int(), Analysis: r.Int(), Curve: r.Int()}
}

// Fonts are split: the size goes with the numbers of a sub-record, the
// names with its strings.

func saveFontNames(w *Writer, f curve.FontSpec) {
	w.String(f.Typeface)
	w.String(f.Variant)
}

func loadFontNames(r *Reader, f *curve.FontSpec) {
	f.Typeface = r.String()
	f.Variant = r.String()
}

func saveCurve(w *Writer, c *curve.Curve) {
	saveID(w, c.ID)
	w.Int(c.Width)
	w.Int(c.Height)
	for _, f := range c.Frame {
		w.Float(f.Min)
		w.Float(f.Max)
	}
	w.Color(c.Background)
	w.Int(c.DrawID)
	w.Bool(c.BarShift)

	t := c.Title
	w.Bool(t.Show)
	w.Bool(t.Default)
	w.Color(t.Color)
	w.Float(t.Pos[0])
	w.Float(t.Pos[1])
	w.Float(t.Font.Size)

	l := c.Legend
	w.Bool(l.Show)
	w.Color(l.Color)
	w.Float(l.Pos[0])
	w.Float(l.Pos[1])
	w.Bool(l.Box)
	w.Int(l.BoxDash)
	w.Float(l.BoxThickness)
	w.Color(l.BoxColor)
	w.Float(l.Font.Size)

	b := c.Border
	w.Bool(b.Show)
	w.Int(int(b.Type))
	w.Int(b.Dash)
	w.Float(b.Thickness)
	w.Color(b.Color)

	for _, a := range c.Axes {
		saveAxis(w, a)
	}
	saveLayout(w, c.Layout)
	saveSeries(w, c.Extras)

	saveFontNames(w, t.Font)
	w.String(t.Text)
	saveFontNames(w, l.Font)
	w.String(c.Name)
	w.String(c.ProjectName)
}

func loadCurve(r *Reader) *curve.Curve {
	c := &curve.Curve{ID: loadID(r)}
	width := r.Int()
	height := r.Int()
	for i := range c.Frame {
		c.Frame[i].Min = r.Float()
		c.Frame[i].Max = r.Float()
	}
	c.Background = r.Color()
	c.DrawID = r.Int()
	c.BarShift = r.Bool()

	t := &c.Title
	t.Show = r.Bool()
	t.Default = r.Bool()
	t.Color = r.Color()
	titleX, titleY := r.Float(), r.Float()
	t.Font.Size = r.Float()

	l := &c.Legend
	l.Show = r.Bool()
	l.Color = r.Color()
	legendX, legendY := r.Float(), r.Float()
	l.Box = r.Bool()
	l.BoxDash = r.Int()
	l.BoxThickness = r.Float()
	l.BoxColor = r.Color()
	l.Font.Size = r.Float()

	b := &c.Border
	b.Show = r.Bool()
	b.Type = curve.FrameType(r.Int())
	b.Dash = r.Int()
	b.Thickness = r.Float()
	b.Color = r.Color()

	for i := range c.Axes {
		c.Axes[i] = loadAxis(r)
	}
	c.Layout = loadLayout(r)
	c.Extras = loadSeries(r, c.ID)

	loadFontNames(r, &t.Font)
	t.Text = r.String()
	loadFontNames(r, &l.Font)
	c.Name = r.String()
	c.ProjectName = r.String()

	if r.Err() != nil {
		return nil
	}
	c.Zoomed = [2]curve.Interval{curve.UnsetInterval(), curve.UnsetInterval()}
	if c.DrawID < 0 || c.DrawID > c.Extras.Len() {
		r.Fail(fmt.Errorf("draw id %d out of range [0,%d]", c.DrawID, c.Extras.Len()))
		return nil
	}
	for _, err := range []error{
		c.SetWindow(width, height),
		c.SetFrame(curve.XAxis, c.Frame[curve.XAxis].Min, c.Frame[curve.XAxis].Max),
		c.SetFrame(curve.YAxis, c.Frame[curve.YAxis].Min, c.Frame[curve.YAxis].Max),
		c.SetTitlePos(titleX, titleY),
		c.SetLegendPos(legendX, legendY),
	} {
		if err != nil {
			r.Fail(err)
			return nil
		}
	}
	c.Attach()
	return c
}

// ----------------------------------------------------------------------------
// Axis

func saveAxis(w *Writer, a *curve.Axis) {
	w.Float(a.Min)
	w.Float(a.Max)
	w.Bool(a.Autoscale)
	w.Bool(a.LogScale)
	w.Bool(a.AutoTicks)
	w.Float(a.MajorTick)
	w.Int(a.MinorTicks)
	w.Float(a.MajorTickSize)
	w.Float(a.MinorTickSize)
	w.Int(int(a.TickPos))
	w.Int(a.LabelDigits)
	w.Float(a.LabelAngle)
	w.Float(a.LabelShift[0])
	w.Float(a.LabelShift[1])
	w.Int(int(a.LabelPos))
	w.Bool(a.ShowGrid)
	w.Bool(a.ShowAxisLine)
	w.Bool(a.DefaultTitle)
	w.Float(a.LabelFont.Size)
	w.Float(a.TitleFont.Size)

	saveFontNames(w, a.LabelFont)
	saveFontNames(w, a.TitleFont)
	w.String(a.Title)
	w.String(a.DefaultText)
}

func loadAxis(r *Reader) *curve.Axis {
	a := &curve.Axis{}
	a.Min = r.Float()
	a.Max = r.Float()
	a.Autoscale = r.Bool()
	a.LogScale = r.Bool()
	a.AutoTicks = r.Bool()
	a.MajorTick = r.Float()
	a.MinorTicks = r.Int()
	a.MajorTickSize = r.Float()
	a.MinorTickSize = r.Float()
	a.TickPos = curve.Position(r.Int())
	a.LabelDigits = r.Int()
	a.LabelAngle = r.Float()
	a.LabelShift[0] = r.Float()
	a.LabelShift[1] = r.Float()
	a.LabelPos = curve.Position(r.Int())
	a.ShowGrid = r.Bool()
	a.ShowAxisLine = r.Bool()
	a.DefaultTitle = r.Bool()
	a.LabelFont.Size = r.Float()
	a.TitleFont.Size = r.Float()

	loadFontNames(r, &a.LabelFont)
	loadFontNames(r, &a.TitleFont)
	a.Title = r.String()
	a.DefaultText = r.String()
	if r.Err() == nil && !(a.Min < a.Max) {
		r.Fail(fmt.Errorf("bad axis range [%g,%g]", a.Min, a.Max))
	}
	return a
}

// ----------------------------------------------------------------------------
// Layout and overlays

func saveLayout(w *Writer, l *curve.Layout) {
	w.Color(l.Color)
	w.Float(l.Thickness)
	w.Int(l.Dash)
	w.Int(l.Glyph)
	w.Float(l.GlyphSize)
	w.Int(l.GlyphFreq)
	w.Float(l.BarWidth)
	w.Float(l.BarOpacity)
	w.Int(int(l.BarFill))
	w.Int(int(l.Aspect))
}

// loadLayout reads a layout and checks it with the setters of Layout.
func loadLayout(r *Reader) *curve.Layout {
	col := r.Color()
	thickness := r.Float()
	dash := r.Int()
	glyph := r.Int()
	glyphSize := r.Float()
	glyphFreq := r.Int()
	barWidth := r.Float()
	barOpacity := r.Float()
	barFill := curve.BarFill(r.Int())
	aspect := curve.Aspect(r.Int())
	if r.Err() != nil {
		return nil
	}

	l := curve.NewLayout(0)
	l.SetColor(col)
	for _, err := range []error{
		l.SetThickness(thickness),
		l.SetDash(dash),
		l.SetGlyph(glyph),
		l.SetGlyphSize(glyphSize),
		l.SetGlyphFreq(glyphFreq),
		l.SetBarWidth(barWidth),
		l.SetBarOpacity(barOpacity),
		l.SetBarFill(barFill),
		l.SetAspect(aspect),
	} {
		if err != nil {
			r.Fail(err)
			return nil
		}
	}
	return l
}

func saveSeries(w *Writer, s *curve.SeriesList) {
	w.Int(s.Len())
	s.Each(func(e *curve.Entry) {
		saveID(w, e.ID)
		saveLayout(w, e.Layout)
	})
}

func loadSeries(r *Reader, host curve.ID) *curve.SeriesList {
	s := curve.NewSeriesList()
	n := r.Int()
	if r.Err() != nil {
		return s
	}
	if n < 0 || n > maxOverlays {
		r.Fail(fmt.Errorf("%s %d", errCount, n))
		return s
	}
	for i := 0; i < n; i++ {
		id := loadID(r)
		l := loadLayout(r)
		if r.Err() != nil {
			return s
		}
		if id == host {
			r.Fail(fmt.Errorf("%s: %s", errSelfLink, id))
			return s
		}
		if err := s.Insert(curve.NewEntry(id, l), false); err != nil {
			r.Fail(err)
			return s
		}
	}
	return s
}
