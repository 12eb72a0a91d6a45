package curve

import (
	"errors"
	"image"
	"testing"
)

var (
	hostID = ID{Project: 1, Analysis: 1, Curve: 0}
	headID = ID{Project: 1, Analysis: 2, Curve: 0}
	tailID = ID{Project: 2, Analysis: 1, Curve: 5}
)

// twoOverlays returns a host with the overlays head and tail, in this
// list order.
func twoOverlays(t *testing.T) *Curve {
	t.Helper()
	c := New(hostID, "host")
	if err := c.AddExtra(tailID, NewLayout(1), false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddExtra(headID, NewLayout(2), true); err != nil {
		t.Fatal(err)
	}
	return c
}

func drawIDs(items []DrawItem) []ID {
	r := make([]ID, len(items))
	for i, it := range items {
		r[i] = it.ID
	}
	return r
}

func TestResolveDrawOrder(t *testing.T) {
	for _, tc := range []struct {
		drawID int
		want   []ID
	}{
		{0, []ID{hostID, tailID, headID}},
		{1, []ID{tailID, hostID, headID}},
		{2, []ID{tailID, headID, hostID}},
		{7, []ID{tailID, headID, hostID}},
	} {
		c := twoOverlays(t)
		c.DrawID = tc.drawID
		items := c.ResolveDrawOrder()
		if got := drawIDs(items); !sameIDs(got, tc.want) {
			t.Errorf("drawID %d: got %v, want %v", tc.drawID, got, tc.want)
		}
		hosts := 0
		for _, it := range items {
			if it.Host {
				hosts++
				if it.Layout != c.Layout {
					t.Errorf("host drawn with foreign layout")
				}
			}
		}
		if hosts != 1 {
			t.Errorf("drawID %d: host drawn %d times", tc.drawID, hosts)
		}
	}
}

func TestResolveDrawOrderNoOverlays(t *testing.T) {
	c := New(hostID, "host")
	items := c.ResolveDrawOrder()
	if len(items) != 1 || !items[0].Host || items[0].Shift != 0 {
		t.Errorf("got %+v", items)
	}
}

func TestBarShift(t *testing.T) {
	c := twoOverlays(t)
	c.DrawID = 1
	c.Layout.SetAspect(BarAspect)
	head, _ := c.Extras.Get(headID)
	head.Layout.SetAspect(BarAspect)

	for _, it := range c.ResolveDrawOrder() {
		if it.Shift != 0 {
			t.Errorf("shift without BarShift: %+v", it)
		}
	}

	c.SetBarShift(true)
	want := map[ID]int{tailID: 0, hostID: 0, headID: 1}
	for _, it := range c.ResolveDrawOrder() {
		if it.Shift != want[it.ID] {
			t.Errorf("%s: shift %d, want %d", it.ID, it.Shift, want[it.ID])
		}
	}

	// A single bar series is never shifted.
	head.Layout.SetAspect(LineAspect)
	for _, it := range c.ResolveDrawOrder() {
		if it.Shift != 0 {
			t.Errorf("single bar series shifted: %+v", it)
		}
	}
}

func TestCurveReorder(t *testing.T) {
	c := twoOverlays(t)
	order := []ID{tailID, hostID, headID}
	if err := c.Reorder(order); err != nil {
		t.Fatal(err)
	}
	if c.DrawID != 1 {
		t.Errorf("drawID = %d, want 1", c.DrawID)
	}
	if got := listIDs(c.Extras); !sameIDs(got, []ID{tailID, headID}) {
		t.Errorf("overlays %v", got)
	}
	if got := c.Order(); !sameIDs(got, order) {
		t.Errorf("Order() = %v, want %v", got, order)
	}

	err := c.Reorder([]ID{tailID, headID})
	if !errors.Is(err, ErrInvariantViolation) || c.DrawID != 1 {
		t.Errorf("incomplete order: %v, drawID %d", err, c.DrawID)
	}
}

func TestAddExtra(t *testing.T) {
	c := New(hostID, "host")
	if err := c.AddExtra(hostID, NewLayout(0), false); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("self reference: %v", err)
	}
	l := NewLayout(3)
	if err := c.AddExtra(headID, l, false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddExtra(headID, l, false); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("duplicate: %v", err)
	}
	e, _ := c.Extras.Get(headID)
	if e.Layout == l {
		t.Error("overlay shares the caller's layout")
	}

	c.DrawID = 1
	if !c.RemoveExtra(headID) || c.HasExtra(headID) || c.DrawID != 0 {
		t.Errorf("remove: drawID %d", c.DrawID)
	}
	if c.RemoveExtra(headID) {
		t.Error("removed twice")
	}
}

func TestRemoveExtraKeepsHostPlace(t *testing.T) {
	a := ID{Project: 0, Analysis: 0, Curve: 1}
	b := ID{Project: 0, Analysis: 0, Curve: 2}
	cc := ID{Project: 0, Analysis: 0, Curve: 3}
	for i, tc := range []struct {
		extras []ID // list order, head first
		drawID int
		remove ID
		want   []ID // draw order, back to front
	}{
		{[]ID{headID, tailID}, 1, headID, []ID{tailID, hostID}},
		{[]ID{headID, tailID}, 1, tailID, []ID{hostID, headID}},
		{[]ID{a, b, cc}, 1, cc, []ID{hostID, b, a}},
		{[]ID{a, b, cc}, 1, a, []ID{cc, hostID, b}},
		{[]ID{a, b, cc}, 1, b, []ID{cc, hostID, a}},
		{[]ID{a, b, cc}, 2, cc, []ID{b, hostID, a}},
		{[]ID{a, b, cc}, 0, cc, []ID{hostID, b, a}},
		{[]ID{a, b, cc}, 3, a, []ID{cc, b, hostID}},
	} {
		c := New(hostID, "host")
		for _, id := range tc.extras {
			if err := c.AddExtra(id, NewLayout(0), false); err != nil {
				t.Fatal(err)
			}
		}
		c.DrawID = tc.drawID
		if !c.RemoveExtra(tc.remove) {
			t.Fatalf("%d. %s not removed", i, tc.remove)
		}
		if got := drawIDs(c.ResolveDrawOrder()); !sameIDs(got, tc.want) {
			t.Errorf("%d. remove %s: draw order %v, want %v", i, tc.remove, got, tc.want)
		}
	}
}

func TestMarkDirty(t *testing.T) {
	c := twoOverlays(t)
	edits := []struct {
		name string
		edit func()
	}{
		{"axis", func() { c.X().SetBounds(1, 2) }},
		{"layout", func() { c.Layout.SetThickness(3) }},
		{"overlay layout", func() { c.Extras.First().Layout.SetGlyph(2) }},
		{"frame", func() { c.SetFrame(XAxis, 0.2, 0.8) }},
		{"title", func() { c.SetTitle("x") }},
		{"reorder", func() { c.Reorder([]ID{hostID, headID, tailID}) }},
	}
	for _, e := range edits {
		c.SetCached(image.NewRGBA(image.Rect(0, 0, 1, 1)))
		e.edit()
		if _, ok := c.Cached(); ok {
			t.Errorf("%s: raster still cached", e.name)
		}
	}
}

func TestSetFrame(t *testing.T) {
	for _, tc := range []struct {
		min, max float64
		ok       bool
	}{
		{0, 1, true},
		{0.1, 0.9, true},
		{0.5, 0.5, false},
		{0.6, 0.4, false},
		{-0.1, 0.5, false},
		{0.5, 1.1, false},
	} {
		c := New(hostID, "host")
		prev := c.Frame[YAxis]
		err := c.SetFrame(YAxis, tc.min, tc.max)
		if tc.ok != (err == nil) {
			t.Errorf("SetFrame(%g,%g) = %v", tc.min, tc.max, err)
		}
		if !tc.ok && (!errors.Is(err, ErrInvalidRange) || c.Frame[YAxis] != prev) {
			t.Errorf("SetFrame(%g,%g): %v, frame %v", tc.min, tc.max, err, c.Frame[YAxis])
		}
	}
}

func TestTitleText(t *testing.T) {
	c := New(hostID, "g(r)")
	if c.TitleText() != "g(r)" {
		t.Errorf("got %q", c.TitleText())
	}
	c.ProjectName = "water"
	if c.TitleText() != "g(r) - water" {
		t.Errorf("got %q", c.TitleText())
	}
	c.SetTitle("custom")
	if c.TitleText() != "custom" {
		t.Errorf("got %q", c.TitleText())
	}
}

func TestParseID(t *testing.T) {
	for _, s := range []string{"0/0/0", "1/2/3", "12/0/7"} {
		id, err := ParseID(s)
		if err != nil || id.String() != s {
			t.Errorf("ParseID(%q) = %v, %v", s, id, err)
		}
	}
	for _, s := range []string{"", "1/2", "1/2/3/4", "a/b/c", "1/-2/3"} {
		if _, err := ParseID(s); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseID(%q) = %v", s, err)
		}
	}
}
