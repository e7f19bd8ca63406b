package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/surface"
)

// ExportName is the deterministic artifact name offered for download.
const ExportName = "sketchpad.png"

// ExportImage replays the log onto a fresh surface of scale×(w, h) under a
// uniform scale transform. The preview never appears in exported output
// and the live surface is untouched. The export background is always
// white, independent of the window theme.
func ExportImage(drawables []sketch.Drawable, w, h int, scale float64) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("export: invalid base size %dx%d", w, h)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("export: invalid scale factor %v", scale)
	}
	out := surface.NewRaster(int(float64(w)*scale), int(float64(h)*scale))
	out.Scale(scale)
	Replay(out, drawables, nil, false)
	return out.Image(), nil
}

// ExportPNG renders the log at the given scale and encodes it as PNG.
func ExportPNG(drawables []sketch.Drawable, w, h int, scale float64) ([]byte, error) {
	img, err := ExportImage(drawables, w, h, scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
