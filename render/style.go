package render

import (
	"image/color"
	"math"

	"github.com/vdobler/curve"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls the parts of a plot which are not stored in the curve
// itself.
type Style struct {
	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}

	// AxisLine is the zero line drawn if ShowAxisLine is set.
	AxisLine draw.LineStyle

	Tick struct {
		Width    vg.Length
		LabelPad vg.Length // distance between tick and tick label
	}
	TitlePad vg.Length // distance between tick labels and axis title

	Legend struct {
		Sample  vg.Length // width of the series sample
		Pad     vg.Length // between sample and label and around the box
		LineSep vg.Length // extra space between two entries
	}

	// Zoom styles the selection rectangle and readout during a drag.
	Zoom struct {
		Box     draw.LineStyle
		Fill    color.Color
		Readout draw.TextStyle
	}
}

// DefaultStyle returns the default Style. The baseFontSize is the size of
// the zoom readout; paddings scale with it.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	s := Style{}
	s.Grid.Major.Color = color.Gray16{0xcccc}
	s.Grid.Major.Width = vg.Length(1)
	s.Grid.Minor.Color = color.Gray16{0xeeee}
	s.Grid.Minor.Width = vg.Length(0.5)

	s.AxisLine.Color = color.Black
	s.AxisLine.Width = vg.Length(1)
	s.AxisLine.Dashes = curve.Dashes(curve.AxisBarDash)

	s.Tick.Width = vg.Length(1)
	s.Tick.LabelPad = scale(baseFontSize, 0.25)
	s.TitlePad = scale(baseFontSize, 0.5)

	s.Legend.Sample = scale(baseFontSize, 2.5)
	s.Legend.Pad = scale(baseFontSize, 0.4)
	s.Legend.LineSep = scale(baseFontSize, 0.3)

	s.Zoom.Box.Color = color.NRGBA{0x20, 0x40, 0xc0, 0xff}
	s.Zoom.Box.Width = vg.Length(1)
	s.Zoom.Box.Dashes = []vg.Length{4, 2}
	s.Zoom.Fill = color.NRGBA{0x20, 0x40, 0xc0, 0x30}
	s.Zoom.Readout = textStyle(curve.FontSpec{
		Typeface: curve.DefaultFont.Typeface,
		Variant:  curve.DefaultFont.Variant,
		Size:     float64(baseFontSize),
	}, color.Black)
	s.Zoom.Readout.XAlign = draw.XLeft
	s.Zoom.Readout.YAlign = draw.YBottom

	return s
}

// Font converts fs into a font of the gonum/plot font cache.
func Font(fs curve.FontSpec) font.Font {
	f := font.Font{
		Typeface: font.Typeface(fs.Typeface),
		Variant:  font.Variant(fs.Variant),
		Size:     vg.Length(fs.Size),
	}
	if f.Typeface == "" {
		f.Typeface = font.Typeface(curve.DefaultFont.Typeface)
	}
	if f.Variant == "" {
		f.Variant = font.Variant(curve.DefaultFont.Variant)
	}
	if f.Size <= 0 {
		f.Size = vg.Length(curve.DefaultFont.Size)
	}
	return f
}

func textStyle(fs curve.FontSpec, col color.Color) draw.TextStyle {
	return draw.TextStyle{
		Color:   col,
		Font:    Font(fs),
		Handler: plot.DefaultTextHandler,
	}
}
