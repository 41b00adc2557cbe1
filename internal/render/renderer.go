// Package render turns image actions into pixels and input into actions.
// The Renderer is an ordinary store; the device behind it is a Backend.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/fluxframe/frame/internal/asset"
	"github.com/fluxframe/frame/internal/core/action"
	"github.com/fluxframe/frame/internal/core/store"
	"go.uber.org/zap"
)

// ErrNoBackend is returned when a Renderer is created without a device.
var ErrNoBackend = errors.New("render: no backend")

// Config sizes the canvas. Width and Height are in screen pixels; every
// logical image pixel covers PixelSize×PixelSize screen pixels.
type Config struct {
	Width, Height int
	PixelSize     int
	Palette       *Palette // nil selects DefaultPalette
}

// Renderer owns the framebuffer and the palette.
type Renderer struct {
	backend   Backend
	frame     *image.RGBA
	palette   Palette
	pixelSize int
	log       *zap.Logger
}

func NewRenderer(backend Backend, cfg Config, log *zap.Logger) (*Renderer, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("render: canvas size must be positive")
	}
	if cfg.PixelSize <= 0 {
		cfg.PixelSize = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := DefaultPalette()
	if cfg.Palette != nil {
		p = *cfg.Palette
	}
	r := &Renderer{
		backend:   backend,
		frame:     image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		palette:   p,
		pixelSize: cfg.PixelSize,
		log:       log,
	}
	r.clear()
	return r, nil
}

// ChangePalette replaces the palette for subsequent draws.
func (r *Renderer) ChangePalette(p Palette) {
	r.palette = p
}

// Palette returns the active palette.
func (r *Renderer) Palette() Palette { return r.palette }

// CanvasSize returns the framebuffer size in screen pixels.
func (r *Renderer) CanvasSize() (int, int) {
	b := r.frame.Bounds()
	return b.Dx(), b.Dy()
}

// PixelSize returns the screen size of one logical pixel.
func (r *Renderer) PixelSize() int { return r.pixelSize }

// Frame returns the framebuffer. Callers must not keep it across actions.
func (r *Renderer) Frame() *image.RGBA { return r.frame }

func (r *Renderer) ReceiveAction(a action.Action, _ float64) store.Outcome {
	switch act := a.(type) {
	case action.AddImgToCanvas:
		r.AddToCanvas(act.X, act.Y, act.Img)
	case action.Draw:
		r.present(act.Clear)
	case action.EndFrame:
		return store.NewActions(r.endFrame()...)
	case action.Menu:
		switch sub := act.Sub.(type) {
		case action.WaitForInput:
			return store.NewActions(r.waitForInput()...)
		case action.MenuDraw:
			r.present(false)
		case action.MenuAddImgToCanvas:
			r.AddToCanvas(sub.X, sub.Y, sub.Img)
		}
	}
	return store.NoNewAction()
}

// AddToCanvas blits img with its top-left corner at logical (x, y). The high
// nibble of each byte is the left pixel. Pixel value 15 is transparent and
// anything outside the canvas is clipped.
func (r *Renderer) AddToCanvas(x, y uint32, img asset.Img) {
	if img.Empty() {
		return
	}
	ps := r.pixelSize
	bounds := r.frame.Bounds()
	rows := img.Rows()
	for row := 0; ; row++ {
		data, ok := rows.Next()
		if !ok {
			return
		}
		for col, pair := range data {
			for i := 0; i < 2; i++ {
				v := (pair >> (4 * i)) & 0x0F
				if v == transparent {
					continue
				}
				lx := 2*col + int(x) + (1 - i)
				ly := row + int(y)
				rect := image.Rect(lx*ps, ly*ps, (lx+1)*ps, (ly+1)*ps).Intersect(bounds)
				if rect.Empty() {
					continue
				}
				draw.Draw(r.frame, rect, &image.Uniform{C: r.palette[v]}, image.Point{}, draw.Src)
			}
		}
	}
}

func (r *Renderer) present(clear bool) {
	r.backend.Present(r.frame)
	if clear {
		r.clear()
	}
}

func (r *Renderer) clear() {
	draw.Draw(r.frame, r.frame.Bounds(), &image.Uniform{C: color.RGBA{A: 0xFF}}, image.Point{}, draw.Src)
}

// endFrame polls input and schedules the next frame.
func (r *Renderer) endFrame() []action.Action {
	out := r.handleInputs()
	w, h := r.CanvasSize()
	return append(out,
		action.Update{},
		action.SendFrame{Width: uint32(w), Height: uint32(h), PixelSize: uint32(r.pixelSize)},
		action.Draw{Clear: true},
	)
}

func (r *Renderer) handleInputs() []action.Action {
	events := r.backend.PollEvents()
	out := make([]action.Action, 0, len(events)+3)
	for _, ev := range events {
		switch ev.Type {
		case EventQuit:
			out = append(out, action.Wrap(action.MenuQuit{}))
		case EventKeyDown:
			if ev.Key == action.KeyEscape {
				out = append(out, action.Wrap(action.ChangeMenuState{}))
			} else {
				out = append(out, action.Keyboard{Key: ev.Key})
			}
		default:
			r.log.Debug("ignored input outside menu", zap.Stringer("event", ev.Type))
		}
	}
	return out
}

// waitForInput blocks for a single event. Used only in menu mode, where the
// budget clock is paused.
func (r *Renderer) waitForInput() []action.Action {
	ev := r.backend.WaitEvent()
	switch ev.Type {
	case EventQuit:
		return []action.Action{action.Wrap(action.MenuQuit{})}
	case EventKeyDown:
		if ev.Key == action.KeyEscape {
			return []action.Action{action.Wrap(action.ChangeMenuState{})}
		}
	case EventMouseDown:
		return []action.Action{action.Wrap(action.Click{
			X:      ev.X,
			Y:      ev.Y,
			Button: ev.Button,
			Scale:  uint32(r.pixelSize),
		})}
	default:
		r.log.Debug("ignored input while waiting", zap.Stringer("event", ev.Type))
	}
	return nil
}
