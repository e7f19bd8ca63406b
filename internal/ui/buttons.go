package ui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchpad/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive toolbar element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

func (cb *CacheButton) Activate() { cb.Button.Activate() }

// LabelButton is a themed toolbar button with a text label. The pressed
// state doubles as the active choice in a group of options.
type LabelButton struct {
	label string
	th    *theme.Theme
	onTap func()
	rect  image.Rectangle
}

func (lb *LabelButton) Draw(dst *image.RGBA, state ButtonState) {
	c := lb.th.ButtonBackground
	switch state {
	case StateHover:
		c = lb.th.ButtonBackgroundHover
	case StatePressed:
		c = lb.th.ButtonBackgroundPress
	}
	draw.Draw(dst, lb.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(lb.th.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(lb.rect.Min.X+4, lb.rect.Min.Y+16)}
	d.DrawString(lb.label)
	if state == StatePressed {
		outlineRect(dst, lb.rect, lb.th.SelectionOutline)
	}
}

func (lb *LabelButton) Rect() image.Rectangle { return lb.rect }

func (lb *LabelButton) SetRect(r image.Rectangle) {
	if r != lb.rect {
		lb.rect = r
	}
}

func (lb *LabelButton) Activate() {
	if lb.onTap != nil {
		lb.onTap()
	}
}

// SwatchButton is a solid color square used for the hue palette.
type SwatchButton struct {
	col   color.RGBA
	th    *theme.Theme
	onTap func()
	rect  image.Rectangle
}

func (sb *SwatchButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, sb.rect, &image.Uniform{sb.col}, image.Point{}, draw.Src)
	if state == StateHover {
		draw.Draw(dst, sb.rect, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
	}
	if state == StatePressed {
		outlineRect(dst, sb.rect, sb.th.SelectionOutline)
	}
}

func (sb *SwatchButton) Rect() image.Rectangle { return sb.rect }

func (sb *SwatchButton) SetRect(r image.Rectangle) {
	if r != sb.rect {
		sb.rect = r
	}
}

func (sb *SwatchButton) Activate() {
	if sb.onTap != nil {
		sb.onTap()
	}
}

// Shortcut is a clickable hint in the status bar.
type Shortcut struct {
	label  string
	th     *theme.Theme
	action func()
	rect   image.Rectangle
}

func (s *Shortcut) Draw(dst *image.RGBA, state ButtonState) {
	c := s.th.ButtonBackground
	switch state {
	case StateHover:
		c = s.th.ButtonBackgroundHover
	case StatePressed:
		c = s.th.ButtonBackgroundPress
	}
	draw.Draw(dst, s.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	outlineRect(dst, s.rect, s.th.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(s.th.StatusText), Face: basicfont.Face7x13,
		Dot: fixed.P(s.rect.Min.X+2, s.rect.Min.Y+14)}
	d.DrawString(s.label)
}

func (s *Shortcut) Rect() image.Rectangle { return s.rect }

func (s *Shortcut) SetRect(r image.Rectangle) {
	if r != s.rect {
		s.rect = r
	}
}

func (s *Shortcut) Activate() {
	if s.action != nil {
		s.action()
	}
}

func outlineRect(img *image.RGBA, rect image.Rectangle, col color.Color) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.Set(x, rect.Min.Y, col)
		img.Set(x, rect.Max.Y-1, col)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.Set(rect.Min.X, y, col)
		img.Set(rect.Max.X-1, y, col)
	}
}
