package render

import (
	"image"
	"sync"
)

// Backend is the output device and input source of a Renderer.
type Backend interface {
	// Present shows frame. Implementations must copy what they keep.
	Present(frame *image.RGBA)
	// PollEvents returns pending input without blocking.
	PollEvents() []Event
	// WaitEvent blocks until one input event is available.
	WaitEvent() Event
}

// Headless is a Backend without a window. Events are fed with Push and the
// last presented frame is kept for inspection.
type Headless struct {
	*EventQueue

	mu       sync.Mutex
	last     *image.RGBA
	presents int
}

func NewHeadless() *Headless {
	return &Headless{EventQueue: NewEventQueue(256)}
}

func (h *Headless) Present(frame *image.RGBA) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil || h.last.Bounds() != frame.Bounds() {
		h.last = image.NewRGBA(frame.Bounds())
	}
	copy(h.last.Pix, frame.Pix)
	h.presents++
}

func (h *Headless) PollEvents() []Event { return h.Poll() }
func (h *Headless) WaitEvent() Event    { return h.Wait() }

// LastFrame returns a copy of the most recently presented frame, or nil.
func (h *Headless) LastFrame() *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil
	}
	out := image.NewRGBA(h.last.Bounds())
	copy(out.Pix, h.last.Pix)
	return out
}

// Presents returns how many frames have been presented.
func (h *Headless) Presents() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.presents
}
