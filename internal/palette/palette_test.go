package palette

import (
	"image/color"
	"testing"
)

func TestAddCustomValidation(t *testing.T) {
	restore := SetForTests([]string{"🙂"})
	t.Cleanup(restore)

	if AddCustom("   ") {
		t.Fatalf("whitespace-only glyph must be rejected")
	}
	if got := len(Stickers()); got != 1 {
		t.Fatalf("rejected glyph must not change the palette, got %d entries", got)
	}
	if !AddCustom("  ⭐ ") {
		t.Fatalf("expected trimmed glyph to be accepted")
	}
	if got := Stickers(); len(got) != 2 || got[1] != "⭐" {
		t.Fatalf("expected trimmed glyph appended, got %v", got)
	}
	if !AddCustom("⭐") {
		t.Fatalf("duplicate glyph must report success")
	}
	if got := len(Stickers()); got != 2 {
		t.Fatalf("duplicate glyph must not be added twice, got %d entries", got)
	}
}

func TestHueColor(t *testing.T) {
	cases := []struct {
		deg  float64
		want color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{120, color.RGBA{0, 255, 0, 255}},
		{240, color.RGBA{0, 0, 255, 255}},
		{360, color.RGBA{255, 0, 0, 255}},
		{-120, color.RGBA{0, 0, 255, 255}},
	}
	for _, tc := range cases {
		if got := HueColor(tc.deg); got != tc.want {
			t.Fatalf("HueColor(%g) = %v, want %v", tc.deg, got, tc.want)
		}
	}
}

func TestEnsureHue(t *testing.T) {
	idx := EnsureHue(0, "")
	if idx != 0 {
		t.Fatalf("existing hue must return its index, got %d", idx)
	}
	before := len(Hues())
	idx = EnsureHue(415, "Gold")
	hs := Hues()
	if len(hs) != before+1 {
		t.Fatalf("new hue must be appended")
	}
	if hs[idx].Degrees != 55 {
		t.Fatalf("hue must be normalised into [0, 360), got %g", hs[idx].Degrees)
	}
	if hs[idx].Name != "Gold" {
		t.Fatalf("expected name Gold, got %q", hs[idx].Name)
	}
}

func TestEnsureWidthSorted(t *testing.T) {
	idx := EnsureWidth(3)
	ws := Widths()
	if ws[idx] != 3 {
		t.Fatalf("expected width 3 at returned index, got %g", ws[idx])
	}
	for i := 1; i < len(ws); i++ {
		if ws[i-1] > ws[i] {
			t.Fatalf("widths must stay sorted, got %v", ws)
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	if got := NormalizeHue(725); got != 5 {
		t.Fatalf("expected 5, got %g", got)
	}
	if got := NormalizeHue(-5); got != 355 {
		t.Fatalf("expected 355, got %g", got)
	}
}
