package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/vdobler/curve"
	"github.com/vdobler/curve/internal/logging"
	"github.com/vdobler/curve/render"
)

// job is one render invocation: the host record, the data files and the
// records of the overlays, and where to write the result.
type job struct {
	record   string
	data     string
	overlays []string // RECORD[=CSV]
	output   string
	mode     render.Mode
	width    int
	height   int
}

// inputs returns all files a job reads.
func (j *job) inputs() []string {
	files := []string{j.record}
	if j.data != "" {
		files = append(files, j.data)
	}
	for _, o := range j.overlays {
		rec, csv, _ := strings.Cut(o, "=")
		files = append(files, rec)
		if csv != "" {
			files = append(files, csv)
		}
	}
	return files
}

// load builds the registry of the host and its overlays.
func (j *job) load() (*curve.Curve, *curve.Registry, error) {
	c, err := loadRecord(j.record)
	if err != nil {
		return nil, nil, err
	}
	set, err := loadCSV(j.data)
	if err != nil {
		return nil, nil, err
	}
	reg := curve.NewRegistry()
	reg.Add(c, set)

	for _, o := range j.overlays {
		rec, csv, _ := strings.Cut(o, "=")
		other, err := loadRecord(rec)
		if err != nil {
			return nil, nil, err
		}
		if !c.HasExtra(other.ID) {
			logging.Warnf("%s: curve %s is not an overlay of %s", rec, other.ID, c.ID)
		}
		set, err := loadCSV(csv)
		if err != nil {
			return nil, nil, err
		}
		reg.Add(other, set)
	}
	return c, reg, nil
}

// run renders the job once.
func (j *job) run() error {
	c, reg, err := j.load()
	if err != nil {
		return err
	}
	r := render.New(reg)

	var out io.Writer = os.Stdout
	var f *os.File
	if j.output != "-" {
		if f, err = os.Create(j.output); err != nil {
			return err
		}
		out = f
	}
	err = r.Export(c, j.mode, j.width, j.height, out)
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", j.record, err)
	}
	logging.Infof("rendered %s to %s (%s)", c.ID, j.output, j.mode)
	return nil
}

// watch renders the job whenever one of its inputs is written until ctx
// is done. Directories are watched instead of the files themselves so
// that editors replacing a file are noticed too.
func (j *job) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, in := range j.inputs() {
		abs, err := filepath.Abs(in)
		if err != nil {
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	logging.Infof("watching %d files, interrupt to stop", len(files))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Errorf("watch: %v", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if abs, _ := filepath.Abs(ev.Name); !files[abs] {
				continue
			}
			logging.Debugf("watch: %s", ev)
			if err := j.run(); err != nil {
				logging.Errorf("%v", err)
			}
		}
	}
}

func renderCmd() *cobra.Command {
	var (
		j            job
		format, size string
		watch        bool
	)
	cmd := &cobra.Command{
		Use:   "render RECORD",
		Short: "Render a curve with its overlays",
		Long: `Render a curve with its overlays. The data of the curve is read from the
CSV file given by --data, every overlay is given as RECORD=CSV. The output
format is taken from --format or else from the extension of --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j.record = args[0]
			if format == "" {
				format = j.output
			}
			mode, err := render.ParseMode(format)
			if err != nil {
				return err
			}
			j.mode = mode
			if j.width, j.height, err = parseSize(size); err != nil {
				return err
			}

			if err := j.run(); err != nil {
				if !watch {
					return err
				}
				logging.Errorf("%v", err)
			}
			if !watch {
				return nil
			}
			if j.output == "-" {
				return fmt.Errorf("--watch needs an output file")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return j.watch(ctx)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&j.output, "output", "o", "curve.png", "Output file, - for stdout")
	f.StringVar(&format, "format", "", "Output format: png, pdf, svg, eps")
	f.StringVar(&j.data, "data", "", "CSV data of the curve")
	f.StringArrayVar(&j.overlays, "overlay", nil, "Overlay as RECORD=CSV, repeatable")
	f.StringVar(&size, "size", "", "Output size WIDTHxHEIGHT (default: window size of the record)")
	f.BoolVarP(&watch, "watch", "w", false, "Render again whenever an input file is written")
	return cmd
}
