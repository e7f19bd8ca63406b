package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/surface"
)

var (
	ink   = color.RGBA{0, 0, 0, 255}
	paper = color.RGBA{255, 255, 255, 255}
)

func committedStroke(x0, y0, x1, y1 float64, width float64) *sketch.LineStroke {
	s := sketch.NewLineStroke(sketch.Point{X: x0, Y: y0}, width, ink)
	s.Extend(sketch.Point{X: x1, Y: y1})
	s.Close()
	return s
}

func TestReplayDrawsCommittedStrokes(t *testing.T) {
	s := surface.NewRaster(40, 40)
	Replay(s, []sketch.Drawable{committedStroke(5, 20, 35, 20, 1)}, nil, false)
	if got := s.Image().RGBAAt(20, 20); got != ink {
		t.Fatalf("expected stroke pixel, got %v", got)
	}
	if got := s.Image().RGBAAt(20, 30); got != paper {
		t.Fatalf("expected background away from the stroke, got %v", got)
	}
}

func TestReplaySinglePointStrokeLeavesNoMark(t *testing.T) {
	s := surface.NewRaster(20, 20)
	click := sketch.NewLineStroke(sketch.Point{X: 10, Y: 10}, 6, ink)
	click.Close()
	Replay(s, []sketch.Drawable{click}, nil, false)
	if got := s.Image().RGBAAt(10, 10); got != paper {
		t.Fatalf("expected a click with no drag to leave no mark, got %v", got)
	}
}

func TestReplayPreviewShownOnlyWhenIdle(t *testing.T) {
	preview := &sketch.MarkerPreview{At: sketch.Point{X: 10, Y: 10}, Width: 8, Color: ink}

	s := surface.NewRaster(20, 20)
	Replay(s, nil, preview, false)
	if got := s.Image().RGBAAt(10, 10); got != ink {
		t.Fatalf("expected preview cursor while idle, got %v", got)
	}

	s = surface.NewRaster(20, 20)
	Replay(s, nil, preview, true)
	if got := s.Image().RGBAAt(10, 10); got != paper {
		t.Fatalf("expected no preview while drawing, got %v", got)
	}
}

func TestReplayClearsPreviousFrame(t *testing.T) {
	s := surface.NewRaster(40, 40)
	Replay(s, []sketch.Drawable{committedStroke(5, 10, 35, 10, 2)}, nil, false)
	Replay(s, nil, nil, false)
	if got := s.Image().RGBAAt(20, 10); got != paper {
		t.Fatalf("expected stale pixels cleared on replay, got %v", got)
	}
}

func TestExportImageMatchesScaledGeometry(t *testing.T) {
	drawables := []sketch.Drawable{committedStroke(2, 5, 18, 5, 1)}
	img, err := ExportImage(drawables, 20, 20, 4)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 80 || b.Dy() != 80 {
		t.Fatalf("unexpected export size %dx%d", b.Dx(), b.Dy())
	}
	if got := img.RGBAAt(40, 20); got != ink {
		t.Fatalf("expected stroke at scaled coordinates, got %v", got)
	}
	if got := img.RGBAAt(40, 60); got != paper {
		t.Fatalf("expected background at scaled coordinates, got %v", got)
	}
}

func TestExportImageExcludesPreview(t *testing.T) {
	// Exported output carries only committed drawables. The caller's live
	// preview is a UI affordance, not part of the log.
	img, err := ExportImage(nil, 10, 10, 1)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := img.RGBAAt(x, y); got != paper {
				t.Fatalf("expected blank export at (%d, %d), got %v", x, y, got)
			}
		}
	}
}

func TestExportImageRejectsBadArguments(t *testing.T) {
	if _, err := ExportImage(nil, 0, 10, 1); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := ExportImage(nil, 10, -1, 1); err == nil {
		t.Fatal("expected error for negative height")
	}
	if _, err := ExportImage(nil, 10, 10, 0); err == nil {
		t.Fatal("expected error for zero scale")
	}
}

func TestExportPNGDecodesAtScaledSize(t *testing.T) {
	data, err := ExportPNG([]sketch.Drawable{committedStroke(1, 1, 8, 8, 2)}, 16, 12, 2)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 32 || b.Dy() != 24 {
		t.Fatalf("unexpected decoded size %dx%d", b.Dx(), b.Dy())
	}
}
