package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
	"sync"
)

// Hue pairs a display name with a hue angle in degrees.
type Hue struct {
	Name    string
	Degrees float64
}

var (
	hueMu sync.RWMutex
	hues  = []Hue{
		{"Red", 0},
		{"Orange", 30},
		{"Yellow", 60},
		{"Green", 120},
		{"Cyan", 180},
		{"Blue", 240},
		{"Purple", 280},
		{"Magenta", 300},
	}
)

var (
	widthsMu sync.RWMutex
	widths   = []float64{1, 2, 4, 6, 8}
)

var (
	stickerMu sync.RWMutex
	stickers  = []string{"🙂", "⭐", "❤️"}
)

// DefaultHue returns the hue angle selected when no configuration applies.
func DefaultHue() float64 { return hues[0].Degrees }

// DefaultWidth returns the marker width selected at startup.
func DefaultWidth() float64 { return widths[1] }

// Hues returns a copy of the named hue entries.
func Hues() []Hue {
	hueMu.RLock()
	defer hueMu.RUnlock()
	out := make([]Hue, len(hues))
	copy(out, hues)
	return out
}

// EnsureHue makes sure the angle is present in the palette and returns its
// index. Angles are normalised into [0, 360).
func EnsureHue(deg float64, name string) int {
	deg = NormalizeHue(deg)
	hueMu.Lock()
	defer hueMu.Unlock()
	for idx, h := range hues {
		if h.Degrees == deg {
			if name != "" && h.Name == "" {
				hues[idx].Name = name
			}
			return idx
		}
	}
	if name == "" {
		name = fmt.Sprintf("%g°", deg)
	}
	hues = append(hues, Hue{Name: name, Degrees: deg})
	return len(hues) - 1
}

// Widths returns a copy of the available marker widths.
func Widths() []float64 {
	widthsMu.RLock()
	defer widthsMu.RUnlock()
	out := make([]float64, len(widths))
	copy(out, widths)
	return out
}

// EnsureWidth makes sure the width is included in the options and returns
// its index.
func EnsureWidth(w float64) int {
	if w < 1 {
		w = 1
	}
	widthsMu.Lock()
	defer widthsMu.Unlock()
	for idx, existing := range widths {
		if existing == w {
			return idx
		}
	}
	widths = append(widths, w)
	sort.Float64s(widths)
	for idx, existing := range widths {
		if existing == w {
			return idx
		}
	}
	return 0
}

// Stickers returns a copy of the available sticker glyphs.
func Stickers() []string {
	stickerMu.RLock()
	defer stickerMu.RUnlock()
	out := make([]string, len(stickers))
	copy(out, stickers)
	return out
}

// AddCustom adds a user-supplied sticker glyph. Input is trimmed; empty or
// whitespace-only input leaves the palette unchanged and reports false.
// Duplicates are accepted silently but not added twice.
func AddCustom(glyph string) bool {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return false
	}
	stickerMu.Lock()
	defer stickerMu.Unlock()
	for _, existing := range stickers {
		if existing == glyph {
			return true
		}
	}
	stickers = append(stickers, glyph)
	return true
}

// NormalizeHue maps an angle into [0, 360).
func NormalizeHue(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// HueColor converts a hue angle to a fully saturated mid-lightness color,
// matching the HSL "hue slider" model.
func HueColor(deg float64) color.RGBA {
	h := NormalizeHue(deg) / 60
	c := 1.0 // chroma at S=1, L=0.5
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

// SetForTests replaces the sticker palette and returns a restore function.
func SetForTests(glyphs []string) func() {
	stickerMu.Lock()
	prev := stickers
	stickers = append([]string(nil), glyphs...)
	stickerMu.Unlock()
	return func() {
		stickerMu.Lock()
		stickers = prev
		stickerMu.Unlock()
	}
}
