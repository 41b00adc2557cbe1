package render

import (
	"fmt"
	"sync"

	"github.com/fluxframe/frame/internal/core/action"
)

// EventType classifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventMouseDown
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventMouseDown:
		return "MouseDown"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Event is one input event. Key is set for EventKeyDown; X, Y and Button
// for EventMouseDown, in screen pixels.
type Event struct {
	Type   EventType
	Key    action.Key
	X, Y   int32
	Button action.MouseButton
}

func QuitEvent() Event { return Event{Type: EventQuit} }

func KeyEvent(k action.Key) Event { return Event{Type: EventKeyDown, Key: k} }

func MouseEvent(x, y int32, b action.MouseButton) Event {
	return Event{Type: EventMouseDown, X: x, Y: y, Button: b}
}

// EventQueue buffers input events between the producer (a window) and the
// renderer. Push may be called from any goroutine.
type EventQueue struct {
	ch        chan Event
	closeOnce sync.Once
	closed    chan struct{}
}

func NewEventQueue(size int) *EventQueue {
	if size <= 0 {
		size = 64
	}
	return &EventQueue{
		ch:     make(chan Event, size),
		closed: make(chan struct{}),
	}
}

// Push enqueues ev without blocking. It reports false if the queue is full
// or closed; the event is dropped.
func (q *EventQueue) Push(ev Event) bool {
	select {
	case <-q.closed:
		return false
	default:
	}
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Poll drains every queued event without blocking.
func (q *EventQueue) Poll() []Event {
	var out []Event
	for {
		select {
		case ev := <-q.ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Wait blocks until an event arrives. After Close, queued events are still
// returned first, then Wait returns a quit event.
func (q *EventQueue) Wait() Event {
	select {
	case ev := <-q.ch:
		return ev
	default:
	}
	select {
	case ev := <-q.ch:
		return ev
	case <-q.closed:
		return QuitEvent()
	}
}

// Close unblocks waiters. Safe to call more than once.
func (q *EventQueue) Close() {
	q.closeOnce.Do(func() { close(q.closed) })
}
