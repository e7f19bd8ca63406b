// Package ui runs the interactive sketchpad window on top of shiny.
//
// The window is split into a title bar, a left toolbar, the canvas, and a
// status bar. The canvas is rendered by replaying the command log into a
// raster surface at the display zoom; all drawing state lives in the Pad
// and the UI only translates events into Pad calls.
package ui

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/theme"
)

// App holds the configuration for one sketchpad window.
type App struct {
	pad      *sketch.Pad
	th       *theme.Theme
	cfg      *config.Config
	notifier *notify.Notifier
	output   string

	updateCh chan struct{}

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an App during creation.
type Option func(*App)

// WithPad sets the pad driven by the window. A fresh pad is created when
// none is supplied.
func WithPad(p *sketch.Pad) Option { return func(a *App) { a.pad = p } }

// WithTheme sets the chrome colors.
func WithTheme(th *theme.Theme) Option { return func(a *App) { a.th = th } }

// WithConfig sets the canvas dimensions and export settings.
func WithConfig(cfg *config.Config) Option { return func(a *App) { a.cfg = cfg } }

// WithNotifier sets the desktop notifier used after exports and copies.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.notifier = n } }

// WithOutput sets the file path written by the export action.
func WithOutput(path string) Option { return func(a *App) { a.output = path } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App with the provided options.
func New(opts ...Option) *App {
	a := &App{
		updateCh: make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	if a.pad == nil {
		a.pad = sketch.NewPad()
	}
	if a.th == nil {
		a.th = theme.Default()
	}
	if a.cfg == nil {
		a.cfg = config.New()
	}
	if a.output == "" {
		a.output = render.ExportName
	}
	return a
}

// Pad returns the pad driven by the window.
func (a *App) Pad() *sketch.Pad { return a.pad }

// NotifyChanged requests a repaint when sketch state mutates outside the
// event loop.
func (a *App) NotifyChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

// choice pairs a toolbar button with the predicate that marks it as the
// active option in its group.
type choice struct {
	btn      Button
	selected func() bool
}

type toolbarButtons struct {
	tools     []choice
	widths    []choice
	hues      []choice
	glyphs    []choice
	rotations []choice
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

var rotationSteps = []float64{0, 45, 90, 135, 180, 225, 270, 315}

func buttonIndex(b mouse.Button) int {
	if b == mouse.ButtonLeft {
		return sketch.PrimaryButton
	}
	return sketch.PrimaryButton + 1
}

func (a *App) Main(s screen.Screen) {
	pad := a.pad
	th := a.th
	cw := a.cfg.CanvasWidth
	ch := a.cfg.CanvasHeight

	// Make sure the toolbar fits the program title and the widest button
	// label so nothing is clipped on start up.
	d := &font.Drawer{Face: basicfont.Face7x13}
	max := d.MeasureString("Sketchpad").Ceil() + 8
	labels := []string{"M:Marker", "S:Sticker"}
	for _, w := range palette.Widths() {
		labels = append(labels, fmt.Sprintf("%g px", w))
	}
	for _, lbl := range labels {
		w := d.MeasureString(lbl).Ceil() + 8
		if w > max {
			max = w
		}
	}
	if max > toolbarWidth {
		toolbarWidth = max
	}

	width := toolbarWidth + 2*canvasMargin + cw*2
	height := titleHeight + bottomHeight + 2*canvasMargin + ch*2
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Sketchpad"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	if a.updateCh != nil {
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-a.updateCh:
					w.Send(paint.Event{})
				case <-done:
					return
				}
			}
		}()
		defer close(done)
	}

	pad.OnChange(a.NotifyChanged)

	glyphs := palette.Stickers()
	activeGlyph := func() string {
		if g := pad.Tool().Glyph(); g != "" {
			return g
		}
		if len(glyphs) > 0 {
			return glyphs[0]
		}
		return ""
	}

	buttons := toolbarButtons{}
	buttons.tools = []choice{
		{
			btn: &CacheButton{Button: &LabelButton{label: "M:Marker", th: th, onTap: func() {
				pad.SelectMarker(pad.Tool().Width())
			}}},
			selected: func() bool { return pad.Tool().Kind() == sketch.KindMarker },
		},
		{
			btn: &CacheButton{Button: &LabelButton{label: "S:Sticker", th: th, onTap: func() {
				pad.SelectSticker(activeGlyph())
			}}},
			selected: func() bool { return pad.Tool().Kind() == sketch.KindSticker },
		},
	}
	for _, wd := range palette.Widths() {
		wd := wd
		buttons.widths = append(buttons.widths, choice{
			btn: &CacheButton{Button: &LabelButton{label: fmt.Sprintf("%g px", wd), th: th, onTap: func() {
				pad.SelectMarker(wd)
			}}},
			selected: func() bool { return pad.Tool().Width() == wd },
		})
	}
	for _, h := range palette.Hues() {
		h := h
		buttons.hues = append(buttons.hues, choice{
			btn: &CacheButton{Button: &SwatchButton{col: palette.HueColor(h.Degrees), th: th, onTap: func() {
				pad.SetHue(h.Degrees)
			}}},
			selected: func() bool { return pad.Tool().Hue() == h.Degrees },
		})
	}
	for _, g := range glyphs {
		g := g
		buttons.glyphs = append(buttons.glyphs, choice{
			btn: &CacheButton{Button: &LabelButton{label: g, th: th, onTap: func() {
				pad.SelectSticker(g)
			}}},
			selected: func() bool { return pad.Tool().Glyph() == g },
		})
	}
	for _, deg := range rotationSteps {
		deg := deg
		buttons.rotations = append(buttons.rotations, choice{
			btn: &CacheButton{Button: &LabelButton{label: fmt.Sprintf("%g deg", deg), th: th, onTap: func() {
				pad.SetRotation(deg)
			}}},
			selected: func() bool { return pad.Tool().Rotation() == deg },
		})
	}

	var message string
	var messageUntil time.Time
	var confirmClear bool
	var quit bool

	showMessage := func(msg string) {
		message = msg
		log.Print(msg)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	keyboardAction := map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys []KeyShortcut, fn func()) {
		actions[name] = fn
		for _, sc := range keys {
			keyboardAction[sc] = name
		}
	}

	register("undo", []KeyShortcut{{Rune: 'z', Modifiers: key.ModControl}, {Rune: 'u'}}, func() {
		pad.Undo()
	})
	register("redo", []KeyShortcut{{Rune: 'y', Modifiers: key.ModControl}}, func() {
		pad.Redo()
	})
	register("clear", []KeyShortcut{{Rune: 'x', Modifiers: key.ModControl}}, func() {
		pad.Clear()
	})
	register("export", []KeyShortcut{{Rune: 's', Modifiers: key.ModControl}}, func() {
		img, err := render.ExportImage(pad.Log().Drawables(), cw, ch, a.cfg.ExportScale)
		if err != nil {
			log.Printf("export: %v", err)
			return
		}
		out, err := os.Create(a.output)
		if err != nil {
			log.Printf("export: %v", err)
			return
		}
		if err := png.Encode(out, img); err != nil {
			log.Printf("export: %v", err)
			if cerr := out.Close(); cerr != nil {
				log.Printf("export: closing file: %v", cerr)
			}
			return
		}
		if err := out.Close(); err != nil {
			log.Printf("export: closing file: %v", err)
			return
		}
		if a.notifier != nil {
			a.notifier.Export(a.output, img)
		}
		showMessage(fmt.Sprintf("saved %s", a.output))
	})
	register("copy", []KeyShortcut{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		img, err := render.ExportImage(pad.Log().Drawables(), cw, ch, a.cfg.ExportScale)
		if err != nil {
			log.Printf("copy: %v", err)
			return
		}
		if err := clipboard.WriteImage(img); err != nil {
			log.Printf("copy: %v", err)
			return
		}
		if a.notifier != nil {
			a.notifier.Copy("sketch")
		}
		showMessage("sketch copied to clipboard")
	})
	register("quit", []KeyShortcut{{Rune: 'q'}}, func() {
		quit = true
	})

	handleShortcut := func(action string) {
		if fn, ok := actions[action]; ok {
			fn()
		}
		w.Send(paint.Event{})
	}

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan frameState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st, buttons)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
		}
	}()
	stopPainting := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	zoom := 1.0
	cr := image.Rectangle{}

	for {
		e := w.NextEvent()
		if quit {
			stopPainting()
			return
		}
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				stopPainting()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()

			zoom = displayZoom(cw, ch, width, height)
			disp := surface.NewRaster(int(float64(cw)*zoom), int(float64(ch)*zoom))
			disp.Background = th.CanvasBackground
			disp.Scale(zoom)
			render.Replay(disp, pad.Log().Drawables(), pad.Preview(), pad.Drawing())
			canvas := disp.Image()
			cr = canvasRect(canvas.Bounds().Dx(), canvas.Bounds().Dy())

			st := frameState{
				width:          width,
				height:         height,
				canvas:         canvas,
				canvasRect:     cr,
				kind:           pad.Tool().Kind(),
				th:             th,
				message:        message,
				messageUntil:   messageUntil,
				handleShortcut: handleShortcut,
			}
			select {
			case paintCh <- st:
			default:
				<-paintCh
				paintCh <- st
			}
		case mouse.Event:
			if message != "" && time.Now().Before(messageUntil) && e.Direction == mouse.DirPress {
				messageUntil = time.Time{}
				w.Send(paint.Event{})
				continue
			}
			p := image.Point{int(e.X), int(e.Y)}

			if !canvasEvent(p, height, pad.Drawing()) {
				if p.Y >= height-bottomHeight {
					hoverShortcut = -1
					for i, sc := range shortcutRects {
						if p.In(sc.rect) {
							hoverShortcut = i
							if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
								sc.Activate()
							}
							break
						}
					}
					if e.Direction == mouse.DirNone {
						pad.PointerLeave()
						w.Send(paint.Event{})
					}
					continue
				}

				hoverHit = -1
				for i, b := range toolbarHits {
					if p.In(b.Rect()) {
						hoverHit = i
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
							b.Activate()
						}
						break
					}
				}
				if e.Direction == mouse.DirNone {
					pad.PointerLeave()
					w.Send(paint.Event{})
				}
				if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
					w.Send(paint.Event{})
				}
				continue
			}
			hoverHit = -1
			hoverShortcut = -1

			at := sketch.Point{
				X: (float64(e.X) - float64(cr.Min.X)) / zoom,
				Y: (float64(e.Y) - float64(cr.Min.Y)) / zoom,
			}
			inside := p.In(cr)
			switch e.Direction {
			case mouse.DirPress:
				if inside {
					pad.PointerDown(at, buttonIndex(e.Button))
				}
			case mouse.DirRelease:
				pad.PointerUp(buttonIndex(e.Button))
			case mouse.DirNone:
				// Drags keep tracking outside the canvas so strokes are not
				// cut short at the border.
				if inside || pad.Drawing() {
					pad.PointerMove(at)
				} else {
					pad.PointerLeave()
				}
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			ks := KeyShortcut{Rune: unicode.ToLower(e.Rune), Code: e.Code, Modifiers: e.Modifiers}
			action, ok := keyboardAction[ks]
			if !ok {
				// Rune-based shortcuts are registered without a key code.
				action, ok = keyboardAction[KeyShortcut{Rune: ks.Rune, Modifiers: ks.Modifiers}]
			}
			if ok {
				if action == "clear" {
					if !confirmClear {
						confirmClear = true
						showMessage("press ^X again to clear")
						w.Send(paint.Event{})
						continue
					}
					confirmClear = false
					handleShortcut(action)
					continue
				}
				confirmClear = false
				handleShortcut(action)
				continue
			}
			confirmClear = false
			switch e.Rune {
			case 'm', 'M':
				pad.SelectMarker(pad.Tool().Width())
				w.Send(paint.Event{})
			case 's', 'S':
				pad.SelectSticker(activeGlyph())
				w.Send(paint.Event{})
			case -1:
				switch e.Code {
				case key.CodeLeftArrow:
					if pad.Tool().Kind() == sketch.KindMarker {
						pad.SetHue(pad.Tool().Hue() - 15)
					} else {
						pad.SetRotation(pad.Tool().Rotation() - 45)
					}
					w.Send(paint.Event{})
				case key.CodeRightArrow:
					if pad.Tool().Kind() == sketch.KindMarker {
						pad.SetHue(pad.Tool().Hue() + 15)
					} else {
						pad.SetRotation(pad.Tool().Rotation() + 45)
					}
					w.Send(paint.Event{})
				}
			}
		}
	}
}
