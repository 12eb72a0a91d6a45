package curve

import (
	"errors"
	"image/color"
	"testing"
)

func TestLayoutRejects(t *testing.T) {
	for _, tc := range []struct {
		name  string
		set   func(l *Layout) error
		check func(l *Layout) bool // prior value still in effect
	}{
		{"zero thickness", func(l *Layout) error { return l.SetThickness(0) }, func(l *Layout) bool { return l.Thickness == 1 }},
		{"negative thickness", func(l *Layout) error { return l.SetThickness(-2) }, func(l *Layout) bool { return l.Thickness == 1 }},
		{"NaN thickness", func(l *Layout) error { return l.SetThickness(nan) }, func(l *Layout) bool { return l.Thickness == 1 }},
		{"glyph size", func(l *Layout) error { return l.SetGlyphSize(0) }, func(l *Layout) bool { return l.GlyphSize == 3 }},
		{"glyph freq", func(l *Layout) error { return l.SetGlyphFreq(0) }, func(l *Layout) bool { return l.GlyphFreq == 1 }},
		{"bar width", func(l *Layout) error { return l.SetBarWidth(-1) }, func(l *Layout) bool { return l.BarWidth == 1 }},
		{"opacity low", func(l *Layout) error { return l.SetBarOpacity(-0.1) }, func(l *Layout) bool { return l.BarOpacity == 0.75 }},
		{"opacity high", func(l *Layout) error { return l.SetBarOpacity(1.5) }, func(l *Layout) bool { return l.BarOpacity == 0.75 }},
		{"dash", func(l *Layout) error { return l.SetDash(NumDashes) }, func(l *Layout) bool { return l.Dash == SolidDash }},
		{"glyph", func(l *Layout) error { return l.SetGlyph(-1) }, func(l *Layout) bool { return l.Glyph == 0 }},
		{"aspect", func(l *Layout) error { return l.SetAspect(7) }, func(l *Layout) bool { return l.Aspect == LineAspect }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLayout(0)
			err := tc.set(l)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v, want invalid parameter", err)
			}
			if !tc.check(l) {
				t.Errorf("value changed: %+v", l)
			}
		})
	}
}

func TestLayoutAccepts(t *testing.T) {
	l := NewLayout(0)
	dirty := 0
	l.notify = func() { dirty++ }
	for _, err := range []error{
		l.SetThickness(2),
		l.SetBarOpacity(0),
		l.SetBarOpacity(1),
		l.SetDash(NoDash),
		l.SetGlyph(NumGlyphs - 1),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	l.SetColor(color.White)
	if l.Thickness != 2 || l.BarOpacity != 1 || l.Dash != NoDash || l.Color != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("got %+v", l)
	}
	if dirty != 6 {
		t.Errorf("notified %d times, want 6", dirty)
	}
}

func TestLayoutClone(t *testing.T) {
	l := NewLayout(1)
	l.notify = func() { t.Error("clone notified the original owner") }
	c := l.Clone()
	if err := c.SetThickness(5); err != nil {
		t.Fatal(err)
	}
	if l.Thickness != 1 {
		t.Errorf("original changed to %g", l.Thickness)
	}
}
