package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vdobler/curve"
	"github.com/vdobler/curve/internal/logging"
)

func newCmd() *cobra.Command {
	var (
		id, name, project, size, style string
		force                          bool
	)
	cmd := &cobra.Command{
		Use:   "new RECORD",
		Short: "Create a curve record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists, use --force to overwrite", path)
			}
			cid, err := curve.ParseID(id)
			if err != nil {
				return err
			}
			c := curve.New(cid, name)
			c.ProjectName = project
			l, err := layoutFor(style, 0)
			if err != nil {
				return err
			}
			c.Layout = l
			c.Attach()
			if size != "" {
				w, h, err := parseSize(size)
				if err != nil {
					return err
				}
				if err := c.SetWindow(w, h); err != nil {
					return err
				}
			}
			if err := saveRecord(path, c); err != nil {
				return err
			}
			logging.Infof("created %s for curve %s", path, cid)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "0/0/0", "Curve identity project/analysis/curve")
	cmd.Flags().StringVar(&name, "name", "", "Curve name, used as legend text and default title")
	cmd.Flags().StringVar(&project, "project", "", "Project name appended to the default title")
	cmd.Flags().StringVar(&size, "size", "", "Window size WIDTHxHEIGHT in pixels")
	cmd.Flags().StringVar(&style, "style", "line", "Series style: line, bars, glyphs")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing record")
	return cmd
}

// layoutFor returns the default layout of the named style for the series
// with the given color index.
func layoutFor(style string, index int) (*curve.Layout, error) {
	switch style {
	case "line":
		return curve.NewLayout(index), nil
	case "bars":
		return curve.NewBarLayout(index), nil
	case "glyphs":
		return curve.NewGlyphLayout(index), nil
	}
	return nil, fmt.Errorf("invalid style: %s (must be line, bars or glyphs)", style)
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info RECORD...",
		Short: "Print a summary of curve records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, path := range args {
				c, err := loadRecord(path)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printCurve(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func axisCmd() *cobra.Command {
	var (
		lower, upper, major, angle float64
		minor, digits              int
		log, linear, auto          bool
		title                      string
	)
	cmd := &cobra.Command{
		Use:   "axis RECORD x|y",
		Short: "Change the range, scale and ticks of an axis",
		Long: `Change the range, scale and ticks of an axis. Setting --min or --max
switches autoscaling off. Invalid settings are rejected and leave the record
unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var axis int
			switch args[1] {
			case "x":
				axis = curve.XAxis
			case "y":
				axis = curve.YAxis
			default:
				return fmt.Errorf("invalid axis: %s (must be x or y)", args[1])
			}
			if log && linear {
				return errors.New("--log and --linear are mutually exclusive")
			}
			changed := cmd.Flags().Changed

			return editRecord(args[0], func(c *curve.Curve) error {
				a := c.Axes[axis]
				switch {
				case log:
					a.SetLogScale(true)
				case linear:
					a.SetLogScale(false)
				}
				if changed("min") || changed("max") {
					lo, hi := a.Min, a.Max
					if changed("min") {
						lo = lower
					}
					if changed("max") {
						hi = upper
					}
					a.Autoscale = false
					if err := a.SetBounds(lo, hi); err != nil {
						return err
					}
				}
				if auto {
					a.SetAutoscale()
				}
				if changed("major") {
					if err := a.SetMajorTick(major); err != nil {
						return err
					}
				}
				if changed("minor") {
					if err := a.SetMinorTicks(minor); err != nil {
						return err
					}
				}
				if changed("digits") {
					if err := a.SetLabelDigits(digits); err != nil {
						return err
					}
				}
				if changed("angle") {
					a.SetLabelAngle(angle)
				}
				if changed("title") {
					a.SetTitle(title)
				}
				logging.Infof("curve %s axis %s: [%g,%g] log=%t autoscale=%t",
					c.ID, args[1], a.Min, a.Max, a.LogScale, a.Autoscale)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&lower, "min", 0, "Lower bound")
	f.Float64Var(&upper, "max", 1, "Upper bound")
	f.BoolVar(&log, "log", false, "Use a logarithmic scale")
	f.BoolVar(&linear, "linear", false, "Use a linear scale")
	f.BoolVar(&auto, "auto", false, "Autoscale on the next render")
	f.Float64Var(&major, "major", 1, "Major tick spacing")
	f.IntVar(&minor, "minor", curve.DefaultMinorTicks, "Number of minor ticks between two major ticks")
	f.IntVar(&digits, "digits", 1, "Decimals of the tick labels")
	f.Float64Var(&angle, "angle", 0, "Tick label rotation in degrees")
	f.StringVar(&title, "title", "", "Axis title, empty restores the default title")
	return cmd
}

func overlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Add, remove and reorder the overlays of a curve",
	}

	var (
		front bool
		style string
		index int
	)
	add := &cobra.Command{
		Use:   "add RECORD ID",
		Short: "Draw the curve ID on top of the record's curve",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := curve.ParseID(args[1])
			if err != nil {
				return err
			}
			return editRecord(args[0], func(c *curve.Curve) error {
				i := index
				if !cmd.Flags().Changed("index") {
					i = c.Extras.Len() + 1
				}
				l, err := layoutFor(style, i)
				if err != nil {
					return err
				}
				if err := c.AddExtra(id, l, front); err != nil {
					return err
				}
				logging.Infof("curve %s: added overlay %s", c.ID, id)
				return nil
			})
		},
	}
	add.Flags().BoolVar(&front, "front", false, "Insert at the head of the overlay list")
	add.Flags().StringVar(&style, "style", "line", "Series style: line, bars, glyphs")
	add.Flags().IntVar(&index, "index", 0, "Color index (default: next free)")

	remove := &cobra.Command{
		Use:   "remove RECORD ID",
		Short: "Stop drawing the overlay ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := curve.ParseID(args[1])
			if err != nil {
				return err
			}
			return editRecord(args[0], func(c *curve.Curve) error {
				if !c.RemoveExtra(id) {
					return curve.NotFoundError("overlay remove", id)
				}
				logging.Infof("curve %s: removed overlay %s", c.ID, id)
				return nil
			})
		},
	}

	reorder := &cobra.Command{
		Use:   "reorder RECORD ID...",
		Short: "Set the order of host and overlays",
		Long: `Set the order of host and overlays. The IDs list every series exactly
once, the host included, in overlay list order; see "curveplot info".`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := make([]curve.ID, len(args)-1)
			for i, s := range args[1:] {
				id, err := curve.ParseID(s)
				if err != nil {
					return err
				}
				order[i] = id
			}
			return editRecord(args[0], func(c *curve.Curve) error {
				if err := c.Reorder(order); err != nil {
					return err
				}
				logging.Infof("curve %s: draw id %d", c.ID, c.DrawID)
				return nil
			})
		},
	}

	cmd.AddCommand(add, remove, reorder)
	return cmd
}
