// Package window is the ebiten-backed render.Backend. ebiten owns the main
// goroutine; the dispatch loop runs elsewhere and exchanges frames and input
// with the window through this type.
package window

import (
	"errors"
	"image"
	"sync"

	"github.com/fluxframe/frame/internal/core/action"
	"github.com/fluxframe/frame/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Config describes the window.
type Config struct {
	Title         string
	Width, Height int
	QueueSize     int
}

// Window implements render.Backend and ebiten.Game.
type Window struct {
	cfg    Config
	events *render.EventQueue
	log    *zap.Logger

	mu      sync.Mutex
	frame   []byte
	done    chan struct{}
	closeMu sync.Once

	keys []ebiten.Key
}

func New(cfg Config, log *zap.Logger) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("window: size must be positive")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Window{
		cfg:    cfg,
		events: render.NewEventQueue(cfg.QueueSize),
		log:    log,
		frame:  make([]byte, 4*cfg.Width*cfg.Height),
		done:   make(chan struct{}),
	}, nil
}

// Present copies frame for the next ebiten Draw.
func (w *Window) Present(frame *image.RGBA) {
	w.mu.Lock()
	defer w.mu.Unlock()
	copy(w.frame, frame.Pix)
}

func (w *Window) PollEvents() []render.Event { return w.events.Poll() }
func (w *Window) WaitEvent() render.Event    { return w.events.Wait() }

// Close ends RunGame on its next Update and unblocks waiting renderers.
func (w *Window) Close() {
	w.closeMu.Do(func() {
		close(w.done)
		w.events.Close()
	})
}

// Run opens the window and blocks until Close is called or the game fails.
// It must be called from the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() {
		w.push(render.QuitEvent())
	}

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.push(render.KeyEvent(keyName(k)))
	}

	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			w.push(render.MouseEvent(int32(x), int32(y), mouseButton(b)))
		}
	}
	return nil
}

func (w *Window) push(ev render.Event) {
	if !w.events.Push(ev) {
		w.log.Warn("input event dropped", zap.Stringer("event", ev.Type))
	}
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()
	screen.WritePixels(w.frame)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

func keyName(k ebiten.Key) action.Key {
	if k == ebiten.KeyEscape {
		return action.KeyEscape
	}
	return action.Key(k.String())
}

func mouseButton(b ebiten.MouseButton) action.MouseButton {
	switch b {
	case ebiten.MouseButtonLeft:
		return action.MouseLeft
	case ebiten.MouseButtonRight:
		return action.MouseRight
	case ebiten.MouseButtonMiddle:
		return action.MouseMiddle
	default:
		return action.MouseOther
	}
}
