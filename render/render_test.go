package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/vdobler/curve"
	"github.com/vdobler/curve/data"
)

var (
	hostID    = curve.ID{Project: 1, Analysis: 1, Curve: 1}
	overlayID = curve.ID{Project: 1, Analysis: 1, Curve: 2}
)

func mustSet(t *testing.T, x, y []float64) *data.Set {
	t.Helper()
	s, err := data.NewSet(x, y, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// fixture returns a renderer without padding and a registered host curve
// with the points (0,1) ... (10,3).
func fixture(t *testing.T) (*Renderer, *curve.Registry, *curve.Curve) {
	t.Helper()
	reg := curve.NewRegistry()
	c := curve.New(hostID, "host")
	reg.Add(c, mustSet(t, []float64{0, 5, 10}, []float64{1, 3, 2}))
	r := New(reg)
	r.Padding = curve.Padding{}
	return r, reg, c
}

func TestTicks(t *testing.T) {
	a := curve.NewAxis("x")
	a.SetBounds(0, 2)
	a.SetMajorTick(0.5)
	a.SetMinorTicks(1)
	a.SetLabelDigits(1)

	var majors []string
	minors := 0
	for _, tk := range Ticks(a) {
		if tk.IsMinor() {
			minors++
			continue
		}
		majors = append(majors, tk.Label)
	}
	want := []string{"0.0", "0.5", "1.0", "1.5", "2.0"}
	if len(majors) != len(want) || minors != 4 {
		t.Fatalf("majors %v, %d minors", majors, minors)
	}
	for i := range want {
		if majors[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, majors[i], want[i])
		}
	}

	a.SetMajorTick(1e-6)
	if n := len(Ticks(a)); n > maxTicks {
		t.Errorf("tiny major tick gave %d ticks", n)
	}
}

func TestTicksLog(t *testing.T) {
	a := curve.NewAxis("y")
	a.SetLogScale(true)
	a.SetBounds(1, 1000)
	found := map[float64]bool{}
	for _, tk := range Ticks(a) {
		if !tk.IsMinor() {
			found[tk.Value] = true
		}
	}
	for _, v := range []float64{1, 10, 100, 1000} {
		if !found[v] {
			t.Errorf("no major tick at %g", v)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"png", PNG, true},
		{"SVG", SVG, true},
		{"plot.pdf", PDF, true},
		{"out/rdf.eps", EPS, true},
		{"gif", PNG, false},
		{"plot.jpeg", PNG, false},
	} {
		got, err := ParseMode(tc.in)
		if tc.ok != (err == nil) || (tc.ok && got != tc.want) {
			t.Errorf("ParseMode(%q) = %s, %v", tc.in, got, err)
		}
	}
	if PDF.String() != "pdf" || Mode(9).String() != "Mode(9)" {
		t.Errorf("String: %s %s", PDF, Mode(9))
	}
}

func TestFrameRect(t *testing.T) {
	c := curve.New(hostID, "host")
	c.SetFrame(curve.XAxis, 0.25, 0.75)
	c.SetFrame(curve.YAxis, 0.1, 0.5)
	if got, want := FrameRect(c, 200, 100), image.Rect(50, 10, 150, 50); got != want {
		t.Errorf("FrameRect = %v, want %v", got, want)
	}
	c.SetWindow(400, 200)
	if got, want := FrameRect(c, 0, 0), image.Rect(100, 20, 300, 100); got != want {
		t.Errorf("FrameRect = %v, want %v", got, want)
	}
}

func TestAutoscale(t *testing.T) {
	r, _, c := fixture(t)
	if _, err := r.Raster(c, 200, 150); err != nil {
		t.Fatal(err)
	}
	if x, y := c.X(), c.Y(); x.Min != 0 || x.Max != 10 || y.Min != 1 || y.Max != 3 {
		t.Errorf("x [%g,%g], y [%g,%g]", x.Min, x.Max, y.Min, y.Max)
	}
	if c.X().Autoscale || c.Y().Autoscale {
		t.Error("autoscale request not cleared")
	}

	c.Layout.SetAspect(curve.BarAspect)
	c.Layout.SetBarWidth(1)
	c.X().SetAutoscale()
	c.Y().SetAutoscale()
	if _, err := r.Raster(c, 200, 150); err != nil {
		t.Fatal(err)
	}
	if x, y := c.X(), c.Y(); x.Min != -0.5 || x.Max != 10.5 || y.Min != 0 || y.Max != 3 {
		t.Errorf("bars: x [%g,%g], y [%g,%g]", x.Min, x.Max, y.Min, y.Max)
	}
}

func TestLogFloor(t *testing.T) {
	r, reg, c := fixture(t)
	reg.SetData(hostID, mustSet(t, []float64{1, 2, 3}, []float64{0, 0.5, 40}))
	y := c.Y()
	y.SetLogScale(true)
	y.Autoscale = false
	y.SetBounds(0, 100)
	if _, err := r.Raster(c, 200, 150); err != nil {
		t.Fatal(err)
	}
	if y.Min != 0.05 || y.Max != 100 {
		t.Errorf("y [%g,%g], want [0.05,100]", y.Min, y.Max)
	}
}

func TestRasterCache(t *testing.T) {
	r, _, c := fixture(t)
	c.ShowTitle(false)
	red := color.NRGBA{R: 0xff, A: 0xff}
	c.SetBackground(red)

	img, err := r.Raster(c, 200, 150)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("bounds %v", b)
	}
	if got := color.NRGBAModel.Convert(img.At(1, 1)); got != red {
		t.Errorf("background pixel %v", got)
	}

	again, _ := r.Raster(c, 200, 150)
	if again != img {
		t.Error("unmodified curve rendered again")
	}
	c.X().SetBounds(-1, 11)
	again, _ = r.Raster(c, 200, 150)
	if again == img {
		t.Error("modified curve not rendered again")
	}
	if other, _ := r.Raster(c, 100, 100); other.Bounds().Dx() != 100 {
		t.Error("size change ignored")
	}
}

func TestExport(t *testing.T) {
	r, _, c := fixture(t)
	c.ShowLegend(true)
	for _, tc := range []struct {
		mode Mode
		mark string
	}{
		{PNG, "PNG"},
		{PDF, "%PDF"},
		{SVG, "<svg"},
		{EPS, "PS-Adobe"},
	} {
		var buf bytes.Buffer
		if err := r.Export(c, tc.mode, 300, 200, &buf); err != nil {
			t.Errorf("%s: %v", tc.mode, err)
			continue
		}
		if head := buf.Bytes()[:min(256, buf.Len())]; !bytes.Contains(head, []byte(tc.mark)) {
			t.Errorf("%s: output starts with %q", tc.mode, head)
		}
	}
	if err := r.Export(c, Mode(7), 300, 200, &bytes.Buffer{}); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestStaleOverlay(t *testing.T) {
	r, reg, c := fixture(t)
	other := curve.New(overlayID, "overlay")
	reg.Add(other, mustSet(t, []float64{1, 2}, []float64{2, 1}))
	if err := c.AddExtra(overlayID, curve.NewLayout(1), false); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Raster(c, 200, 150); err != nil {
		t.Fatalf("registered overlay: %v", err)
	}

	// Bypass the cascade of Registry.Remove.
	stale := curve.NewRegistry()
	stale.Add(c, mustSet(t, []float64{0}, []float64{0}))
	r.Source = stale
	c.MarkDirty()
	if _, err := r.Raster(c, 200, 150); !errors.Is(err, curve.ErrNotFound) {
		t.Errorf("stale overlay: %v", err)
	}
}

func TestFeedback(t *testing.T) {
	r, _, c := fixture(t)
	c.ShowTitle(false)
	img, err := r.Raster(c, 200, 150)
	if err != nil {
		t.Fatal(err)
	}
	sel := image.Rect(60, 40, 100, 80)
	fb := r.Feedback(img, sel, "x = 1, y = 2")
	if fb.Bounds().Dx() != 200 || fb.Bounds().Dy() != 150 {
		t.Fatalf("bounds %v", fb.Bounds())
	}
	if color.NRGBAModel.Convert(fb.At(80, 60)) == color.NRGBAModel.Convert(img.At(80, 60)) {
		t.Error("selection not drawn")
	}
	if cached, _ := c.Cached(); cached != img {
		t.Error("feedback modified the cached raster")
	}
}
