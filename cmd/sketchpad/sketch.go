package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/ui"
)

// sketchCmd opens the interactive window.
type sketchCmd struct {
	*root
	fs     *flag.FlagSet
	output string
	width  int
	height int
}

func parseSketchCmd(args []string, r *root) (*sketchCmd, error) {
	fs := flag.NewFlagSet("sketch", flag.ExitOnError)
	c := &sketchCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "output", "", "file the export action writes (defaults to the save dir)")
	fs.IntVar(&c.width, "width", r.config.CanvasWidth, "logical canvas width in pixels")
	fs.IntVar(&c.height, "height", r.config.CanvasHeight, "logical canvas height in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.width < 1 || c.height < 1 {
		return nil, fmt.Errorf("canvas dimensions must be positive")
	}
	if c.output == "" {
		c.output = filepath.Join(r.config.SaveDir, render.ExportName)
	}
	return c, nil
}

func (c *sketchCmd) Run() error {
	cfg := *c.root.config
	cfg.CanvasWidth = c.width
	cfg.CanvasHeight = c.height

	app := ui.New(
		ui.WithPad(sketch.NewPad()),
		ui.WithTheme(c.root.activeTheme),
		ui.WithConfig(&cfg),
		ui.WithNotifier(c.root.notifier),
		ui.WithOutput(c.output),
	)
	app.Run()
	return nil
}

func (c *sketchCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
