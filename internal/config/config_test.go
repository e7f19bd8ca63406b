package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/sketches
canvas_width = 512
canvas_height = 384
export_scale = 2

[notify]
export = true
copy = false

[stickers]
glyph = 🎉
glyph = ✨
glyph =

[palette]
Teal = 180
Rose = 330

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/sketches" {
		t.Errorf("Expected save_dir '/tmp/sketches', got '%s'", cfg.SaveDir)
	}
	if cfg.CanvasWidth != 512 || cfg.CanvasHeight != 384 {
		t.Errorf("Unexpected canvas size %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.ExportScale != 2 {
		t.Errorf("Expected export_scale 2, got %v", cfg.ExportScale)
	}

	if !cfg.Notify.Export {
		t.Error("Expected notify.export to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}

	// The empty glyph line must be dropped.
	if len(cfg.Stickers) != 2 || cfg.Stickers[0] != "🎉" || cfg.Stickers[1] != "✨" {
		t.Errorf("Unexpected stickers: %v", cfg.Stickers)
	}

	if cfg.Hues["Teal"] != 180 || cfg.Hues["Rose"] != 330 {
		t.Errorf("Unexpected hues: %v", cfg.Hues)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.CanvasWidth != DefaultCanvasWidth || cfg.CanvasHeight != DefaultCanvasHeight {
		t.Errorf("Unexpected default canvas size %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.ExportScale != DefaultExportScale {
		t.Errorf("Unexpected default export scale %v", cfg.ExportScale)
	}
}

func TestParseRejectsBadScale(t *testing.T) {
	if _, err := Parse(strings.NewReader("export_scale = 0\n")); err == nil {
		t.Fatal("expected error for zero export_scale")
	}
	if _, err := Parse(strings.NewReader("canvas_width = -3\n")); err == nil {
		t.Fatal("expected error for negative canvas_width")
	}
}

func TestLoaderEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.rc")
	if err := os.WriteFile(path, []byte("canvas_width = 300\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SKETCHPAD_CONFIG", path)

	l := NewLoader("v1.0.0", "")
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("expected env override path %q, got %q", path, got)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CanvasWidth != 300 {
		t.Fatalf("expected canvas_width 300 from env config, got %d", cfg.CanvasWidth)
	}
}

func TestLoaderOverridePathBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	compiled := filepath.Join(dir, "compiled.rc")
	envFile := filepath.Join(dir, "env.rc")
	for _, p := range []string{compiled, envFile} {
		if err := os.WriteFile(p, []byte(""), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	t.Setenv("SKETCHPAD_CONFIG", envFile)

	l := NewLoader("v1.0.0", compiled)
	if got := l.GetConfigPath(); got != compiled {
		t.Fatalf("expected compile-time override %q to win, got %q", compiled, got)
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/sketches
canvas_width = 300
canvas_height = 200
export_scale = 4

[notify]
export = true
copy = false

[stickers]
glyph = 🚀

[palette]
Teal = 180

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.CanvasWidth != cfg2.CanvasWidth || cfg.CanvasHeight != cfg2.CanvasHeight {
		t.Errorf("Canvas size mismatch: %dx%d vs %dx%d",
			cfg.CanvasWidth, cfg.CanvasHeight, cfg2.CanvasWidth, cfg2.CanvasHeight)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if len(cfg2.Stickers) != 1 || cfg2.Stickers[0] != "🚀" {
		t.Errorf("Stickers mismatch: %v vs %v", cfg.Stickers, cfg2.Stickers)
	}
	if cfg2.Hues["Teal"] != 180 {
		t.Errorf("Hues mismatch: %v vs %v", cfg.Hues, cfg2.Hues)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.Background != t2.Background {
		t.Errorf("Theme background mismatch: %v vs %v", t1.Background, t2.Background)
	}
}
