package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vdobler/curve"
	"github.com/vdobler/curve/data"
	"github.com/vdobler/curve/record"
)

func compressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".crvz")
}

// loadRecord reads the curve stored at path.
func loadRecord(path string) (*curve.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c *curve.Curve
	if compressed(path) {
		c, err = record.LoadZstd(f)
	} else {
		c, err = record.Load(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// saveRecord writes c to path, replacing the file only after the record
// was written completely.
func saveRecord(path string, c *curve.Curve) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".curveplot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	save := record.Save
	if compressed(path) {
		save = record.SaveZstd
	}
	if err := save(tmp, c); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// editRecord loads the record at path, applies edit and saves the result.
// Nothing is written if edit fails.
func editRecord(path string, edit func(c *curve.Curve) error) error {
	c, err := loadRecord(path)
	if err != nil {
		return err
	}
	if err := edit(c); err != nil {
		return fmt.Errorf("rejected, %s left unchanged: %w", path, err)
	}
	return saveRecord(path, c)
}

// loadCSV reads a data file; "" yields no data.
func loadCSV(path string) (*data.Set, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := data.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// parseSize parses "WxH"; "" yields 0x0 which selects the window size
// stored in the record.
func parseSize(s string) (w, h int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	return w, h, nil
}

func printCurve(out io.Writer, c *curve.Curve) {
	fmt.Fprintf(out, "curve    %s %q", c.ID, c.Name)
	if c.ProjectName != "" {
		fmt.Fprintf(out, " (%s)", c.ProjectName)
	}
	fmt.Fprintf(out, "\nwindow   %dx%d, frame x [%g,%g] y [%g,%g]\n", c.Width, c.Height,
		c.Frame[curve.XAxis].Min, c.Frame[curve.XAxis].Max,
		c.Frame[curve.YAxis].Min, c.Frame[curve.YAxis].Max)
	fmt.Fprintf(out, "title    %q shown=%t\n", c.TitleText(), c.Title.Show)
	for i, a := range c.Axes {
		scale := "linear"
		if a.LogScale {
			scale = "log"
		}
		fmt.Fprintf(out, "axis %s   [%g,%g] %s autoscale=%t major=%g minor=%d title=%q\n",
			[]string{"x", "y"}[i], a.Min, a.Max, scale, a.Autoscale, a.MajorTick, a.MinorTicks, a.Label())
	}
	fmt.Fprintf(out, "series   %d, back to front:\n", c.Extras.Len()+1)
	for _, it := range c.ResolveDrawOrder() {
		role := "overlay"
		if it.Host {
			role = "host"
		}
		fmt.Fprintf(out, "  %-8s %-10s %s\n", role, it.ID, it.Layout.Aspect)
	}
}
