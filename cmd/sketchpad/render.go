package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
)

// renderCmd replays a sketch script headlessly and exports the result.
type renderCmd struct {
	*root
	fs          *flag.FlagSet
	script      string
	output      string
	width       int
	height      int
	scale       float64
	shadow      bool
	toClipboard bool
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := &renderCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.script, "script", "-", "sketch script file, or - for stdin")
	fs.StringVar(&c.output, "output", "", "output PNG path (defaults to the save dir)")
	fs.IntVar(&c.width, "width", r.config.CanvasWidth, "logical canvas width in pixels")
	fs.IntVar(&c.height, "height", r.config.CanvasHeight, "logical canvas height in pixels")
	fs.Float64Var(&c.scale, "scale", r.config.ExportScale, "export resolution multiplier")
	fs.BoolVar(&c.shadow, "shadow", false, "composite a drop shadow behind the export")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.width < 1 || c.height < 1 {
		return nil, fmt.Errorf("canvas dimensions must be positive")
	}
	if c.scale <= 0 {
		return nil, fmt.Errorf("scale must be positive")
	}
	if c.output == "" {
		c.output = filepath.Join(r.config.SaveDir, render.ExportName)
	}
	return c, nil
}

func (c *renderCmd) Run() error {
	var in io.Reader
	if c.script == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(c.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("error closing %q: %v", c.script, err)
			}
		}()
		in = f
	}

	pad := sketch.NewPad()
	if err := replayScript(pad, in, os.Stderr); err != nil {
		return err
	}

	img, err := render.ExportImage(pad.Log().Drawables(), c.width, c.height, c.scale)
	if err != nil {
		return err
	}
	if c.shadow {
		img = render.ApplyShadow(img, render.DefaultShadowOptions())
	}

	out, err := os.Create(c.output)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("error closing %q: %v", c.output, cerr)
		}
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	saved := c.output
	if abs, err := filepath.Abs(c.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	c.root.notifyExport(saved, img)

	if c.toClipboard {
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := filepath.Base(c.output)
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		c.root.notifyCopy(detail)
	}
	return nil
}

// replayScript feeds script commands through the pad so the same state
// machine runs headlessly and interactively. The list command writes the
// committed log to out.
func replayScript(pad *sketch.Pad, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := strings.ToLower(fields[0]), fields[1:]
		var err error
		switch cmd {
		case "marker":
			err = applyMarker(pad, args)
		case "hue":
			err = applyHue(pad, args)
		case "stroke":
			err = applyStroke(pad, args)
		case "sticker":
			err = applySticker(pad, args)
		case "rotate":
			err = applyRotate(pad, args)
		case "undo":
			pad.Undo()
		case "redo":
			pad.Redo()
		case "clear":
			pad.Clear()
		case "list":
			listDrawables(pad, out)
		default:
			err = fmt.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			return fmt.Errorf("script line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

func applyMarker(pad *sketch.Pad, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("marker requires a width")
	}
	w, err := strconv.ParseFloat(args[0], 64)
	if err != nil || w < 1 {
		return fmt.Errorf("invalid width %q", args[0])
	}
	pad.SelectMarker(w)
	return nil
}

func applyHue(pad *sketch.Pad, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("hue requires an angle in degrees")
	}
	deg, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid hue %q", args[0])
	}
	pad.SetHue(deg)
	return nil
}

func applyStroke(pad *sketch.Pad, args []string) error {
	if len(args) < 2 || len(args)%2 != 0 {
		return fmt.Errorf("stroke requires x y coordinate pairs")
	}
	pts := make([]sketch.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q", args[i])
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q", args[i+1])
		}
		pts = append(pts, sketch.Point{X: x, Y: y})
	}
	pad.PointerDown(pts[0], sketch.PrimaryButton)
	for _, p := range pts[1:] {
		pad.PointerMove(p)
	}
	pad.PointerUp(sketch.PrimaryButton)
	return nil
}

func applySticker(pad *sketch.Pad, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("sticker requires glyph x y")
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q", args[1])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q", args[2])
	}
	pad.SelectSticker(args[0])
	pad.PointerDown(sketch.Point{X: x, Y: y}, sketch.PrimaryButton)
	pad.PointerUp(sketch.PrimaryButton)
	return nil
}

// listDrawables prints the committed log in commit order, one drawable
// per line with its ID, so scripts can identify what survived a run of
// undo/redo commands.
func listDrawables(pad *sketch.Pad, out io.Writer) {
	for i, d := range pad.Log().Drawables() {
		fmt.Fprintf(out, "%3d %s\n", i+1, describeDrawable(d))
	}
}

func describeDrawable(d sketch.Drawable) string {
	switch d := d.(type) {
	case *sketch.LineStroke:
		return fmt.Sprintf("stroke %s points=%d width=%g", d.ID, len(d.Points()), d.Width)
	case *sketch.Sticker:
		return fmt.Sprintf("sticker %s glyph=%s rotation=%g", d.ID, d.Glyph, d.Rotation)
	}
	return fmt.Sprintf("%T", d)
}

func applyRotate(pad *sketch.Pad, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("rotate requires an angle in degrees")
	}
	deg, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid rotation %q", args[0])
	}
	pad.SetRotation(deg)
	return nil
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
