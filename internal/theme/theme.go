package theme

import (
	"image/color"
)

// Theme defines the color palette for the sketchpad chrome. Drawing colors
// come from the hue palette, not the theme; the theme only styles the
// window around the canvas.
type Theme struct {
	Name string

	// General
	Background color.RGBA // window background behind the canvas
	Foreground color.RGBA // main text color

	// Canvas
	CanvasBackground color.RGBA
	CanvasBorder     color.RGBA

	// Toolbar
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA
	SelectionOutline      color.RGBA // marks the active tool/width/hue

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA
}

// Default returns the hardcoded light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		CanvasBackground:      color.RGBA{255, 255, 255, 255},
		CanvasBorder:          color.RGBA{128, 128, 128, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		SelectionOutline:      color.RGBA{0, 90, 200, 255},
		StatusBackground:      color.RGBA{240, 240, 240, 255},
		StatusText:            color.RGBA{0, 0, 0, 255},
	}
}
