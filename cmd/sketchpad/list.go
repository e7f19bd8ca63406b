package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/sketchpad/internal/palette"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	hues := palette.Hues()
	if len(hues) == 0 {
		fmt.Fprintln(os.Stdout, "no colors available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "available hues (* marks the default):")
	for _, h := range hues {
		marker := " "
		if h.Degrees == palette.DefaultHue() {
			marker = "*"
		}
		col := palette.HueColor(h.Degrees)
		hex := fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.R, col.G, col.B)
		fmt.Fprintf(os.Stdout, "%s %-12s %4g  %s %s\n", marker, h.Name, h.Degrees, hex, block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

type widthsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseWidthsCmd(args []string, r *root) (*widthsCmd, error) {
	fs := flag.NewFlagSet("widths", flag.ExitOnError)
	cmd := &widthsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *widthsCmd) Run() error {
	widths := palette.Widths()
	if len(widths) == 0 {
		fmt.Fprintln(os.Stdout, "no widths available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "available marker widths (* marks the default):")
	for _, w := range widths {
		marker := " "
		if w == palette.DefaultWidth() {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %4gpx\n", marker, w)
	}
	return nil
}

func (c *widthsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *widthsCmd) Template() string {
	return "widths.txt"
}

type stickersCmd struct {
	*root
	fs *flag.FlagSet
}

func parseStickersCmd(args []string, r *root) (*stickersCmd, error) {
	fs := flag.NewFlagSet("stickers", flag.ExitOnError)
	cmd := &stickersCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *stickersCmd) Run() error {
	glyphs := palette.Stickers()
	if len(glyphs) == 0 {
		fmt.Fprintln(os.Stdout, "no stickers available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "available stickers:")
	for i, g := range glyphs {
		fmt.Fprintf(os.Stdout, "  %2d: %s\n", i, g)
	}
	return nil
}

func (c *stickersCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *stickersCmd) Template() string {
	return "stickers.txt"
}
