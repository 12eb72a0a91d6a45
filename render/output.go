package render

import (
	"fmt"
	"image"
	imgdraw "image/draw"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/vdobler/curve"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// dpi makes one point of the canvas one pixel of the raster.
const dpi = 72

// Mode selects the target of an export.
type Mode int

const (
	PNG Mode = iota // raster
	PDF             // page based vector formats
	SVG
	EPS
)

var modeNames = [...]string{"png", "pdf", "svg", "eps"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode named s, e.g. "svg". A file name is accepted
// too and selects the mode by its extension.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(s)
	if ext := filepath.Ext(name); ext != "" {
		name = ext[1:]
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return PNG, fmt.Errorf("render: unknown output mode %q", s)
}

func size(c *curve.Curve, w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return c.Width, c.Height
	}
	return w, h
}

func newRaster(w, h int) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(vg.Length(w), vg.Length(h)), vgimg.UseDPI(dpi))
}

// Raster renders c into a w x h image and stores it as the cached raster
// of c. If c was not modified since, the cached image is returned. A non
// positive w or h selects the window size of c.
func (r *Renderer) Raster(c *curve.Curve, w, h int) (image.Image, error) {
	w, h = size(c, w, h)
	if img, ok := c.Cached(); ok && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img, nil
	}
	cv := newRaster(w, h)
	if err := r.Render(c, draw.New(cv)); err != nil {
		return nil, err
	}
	img := cv.Image()
	c.SetCached(img)
	return img, nil
}

// Export renders c with a size of w x h points and writes it to out in
// the format selected by mode.
func (r *Renderer) Export(c *curve.Curve, mode Mode, w, h int, out io.Writer) error {
	w, h = size(c, w, h)
	width, height := vg.Length(w), vg.Length(h)

	var cv interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch mode {
	case PNG:
		cv = vgimg.PngCanvas{Canvas: newRaster(w, h)}
	case PDF:
		cv = vgpdf.New(width, height)
	case SVG:
		cv = vgsvg.New(width, height)
	case EPS:
		cv = vgeps.New(width, height)
	default:
		return fmt.Errorf("render: unknown output mode %d", mode)
	}

	if err := r.Render(c, draw.New(cv)); err != nil {
		return err
	}
	if _, err := cv.WriteTo(out); err != nil {
		return fmt.Errorf("render: writing %s: %w", mode, err)
	}
	return nil
}

// FrameRect returns the data region of c in pixel coordinates of a w x h
// window (y growing downward). Non positive sizes select the window size
// of c.
func FrameRect(c *curve.Curve, w, h int) image.Rectangle {
	w, h = size(c, w, h)
	fx, fy := c.Frame[curve.XAxis], c.Frame[curve.YAxis]
	round := func(f float64, n int) int { return int(math.Round(f * float64(n))) }
	return image.Rect(round(fx.Min, w), round(fy.Min, h), round(fx.Max, w), round(fy.Max, h))
}

// Feedback returns a copy of img with the selection rectangle sel (pixel
// coordinates, may be empty) and the readout text drawn on top. It is
// used during interactive zooming on the cached raster.
func (r *Renderer) Feedback(img image.Image, sel image.Rectangle, readout string) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	imgdraw.Draw(dst, dst.Bounds(), img, b.Min, imgdraw.Src)

	cv := vgimg.NewWith(vgimg.UseImage(dst), vgimg.UseDPI(dpi))
	dc := draw.New(cv)
	height := vg.Length(b.Dy())
	toCanvas := func(p image.Point) vg.Point {
		return vg.Point{X: vg.Length(p.X), Y: height - vg.Length(p.Y)}
	}

	if sel = sel.Canon(); !sel.Empty() {
		rect := vg.Rectangle{Min: toCanvas(image.Pt(sel.Min.X, sel.Max.Y)), Max: toCanvas(image.Pt(sel.Max.X, sel.Min.Y))}
		if r.Style.Zoom.Fill != nil {
			dc.SetColor(r.Style.Zoom.Fill)
			dc.Fill(rect.Path())
		}
		dc.StrokeLines(r.Style.Zoom.Box, []vg.Point{
			rect.Min, {X: rect.Max.X, Y: rect.Min.Y}, rect.Max, {X: rect.Min.X, Y: rect.Max.Y}, rect.Min,
		})
	}
	if readout != "" {
		dc.FillText(r.Style.Zoom.Readout, vg.Point{X: 4, Y: 4}, readout)
	}
	return cv.Image()
}
