package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/sketch"
)

func TestReplayScriptStroke(t *testing.T) {
	pad := sketch.NewPad()
	script := "marker 4\nhue 120\nstroke 10 10 20 20 30 25\n"
	if err := replayScript(pad, strings.NewReader(script), io.Discard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	drawables := pad.Log().Drawables()
	if len(drawables) != 1 {
		t.Fatalf("expected 1 drawable, got %d", len(drawables))
	}
	stroke, ok := drawables[0].(*sketch.LineStroke)
	if !ok {
		t.Fatalf("expected a line stroke, got %T", drawables[0])
	}
	if got := len(stroke.Points()); got != 3 {
		t.Fatalf("expected 3 points, got %d", got)
	}
	if !stroke.Closed() {
		t.Fatalf("expected stroke to be closed after replay")
	}
	if stroke.Width != 4 {
		t.Fatalf("expected width 4, got %g", stroke.Width)
	}
}

func TestReplayScriptStickerAndUndo(t *testing.T) {
	pad := sketch.NewPad()
	script := "sticker star 50 60\nrotate 90\nsticker star 70 80\nundo\n"
	if err := replayScript(pad, strings.NewReader(script), io.Discard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pad.Log().Len(); got != 1 {
		t.Fatalf("expected 1 committed drawable after undo, got %d", got)
	}
	if got := pad.Log().RedoLen(); got != 1 {
		t.Fatalf("expected 1 redoable drawable, got %d", got)
	}
	st, ok := pad.Log().Drawables()[0].(*sketch.Sticker)
	if !ok {
		t.Fatalf("expected a sticker, got %T", pad.Log().Drawables()[0])
	}
	if st.Rotation != 0 {
		t.Fatalf("first sticker should keep its commit-time rotation, got %g", st.Rotation)
	}
}

func TestReplayScriptListPrintsIDs(t *testing.T) {
	pad := sketch.NewPad()
	var out bytes.Buffer
	script := "stroke 0 0 5 5\nsticker star 3 3\nlist\n"
	if err := replayScript(pad, strings.NewReader(script), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 listed drawables, got %d: %q", len(lines), out.String())
	}
	stroke := pad.Log().Drawables()[0].(*sketch.LineStroke)
	if !strings.Contains(lines[0], stroke.ID) {
		t.Fatalf("expected line %q to carry stroke ID %s", lines[0], stroke.ID)
	}
	sticker := pad.Log().Drawables()[1].(*sketch.Sticker)
	if !strings.Contains(lines[1], sticker.ID) {
		t.Fatalf("expected line %q to carry sticker ID %s", lines[1], sticker.ID)
	}
	if !strings.Contains(lines[1], "glyph=star") {
		t.Fatalf("expected sticker glyph in %q", lines[1])
	}
}

func TestReplayScriptUnknownCommand(t *testing.T) {
	pad := sketch.NewPad()
	err := replayScript(pad, strings.NewReader("scribble 1 2\n"), io.Discard)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "script line 1"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
	if want := "unknown command"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
}

func TestReplayScriptOddStrokeCoords(t *testing.T) {
	pad := sketch.NewPad()
	err := replayScript(pad, strings.NewReader("stroke 1 2 3\n"), io.Discard)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "coordinate pairs"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestReplayScriptSkipsComments(t *testing.T) {
	pad := sketch.NewPad()
	script := "# a comment\n\nsticker heart 1 2\n"
	if err := replayScript(pad, strings.NewReader(script), io.Discard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pad.Log().Len(); got != 1 {
		t.Fatalf("expected 1 drawable, got %d", got)
	}
}

func TestParseRenderRejectsBadScale(t *testing.T) {
	r := &root{program: "sketchpad", config: config.New()}
	_, err := parseRenderCmd([]string{"-scale", "0"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "scale must be positive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseSketchRejectsBadDimensions(t *testing.T) {
	r := &root{program: "sketchpad", config: config.New()}
	_, err := parseSketchCmd([]string{"-width", "0"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "dimensions must be positive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}
