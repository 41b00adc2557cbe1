// Package dispatch routes actions from two FIFO queues to an ordered set of
// stores, one action per Dispatch call, under a per-frame time budget.
//
// The primary queue carries work for the current frame. The secondary queue
// is drained once the primary queue runs dry, until the budget is used up or
// the secondary queue is empty; either ends the frame with an EndFrame. Menu
// mode suspends the budget clock and restricts delivery to menu actions.
//
// A Dispatcher is not safe for concurrent use; it belongs to the goroutine
// that runs the loop.
package dispatch

import (
	"time"

	"github.com/fluxframe/frame/internal/core/action"
	"github.com/fluxframe/frame/internal/core/store"
	"go.uber.org/zap"
)

type Dispatcher struct {
	primary   *queue
	secondary *queue

	// A nil slot is checked out for the duration of one ReceiveAction call.
	slots []store.Store

	menu         MenuState
	useSecondary bool
	maxStackTime float64
	stackStart   time.Time
	dt           float64

	now            func() time.Time
	log            *zap.Logger
	warnedNoStores bool

	delivered uint64
	frames    uint64
}

// New creates a dispatcher whose primary queue starts with Start, EndFrame.
// maxStackTime is the per-frame budget in seconds.
func New(maxStackTime float64, log *zap.Logger) *Dispatcher {
	return NewWithClock(maxStackTime, log, time.Now)
}

// NewWithClock is New with an explicit time source.
func NewWithClock(maxStackTime float64, log *zap.Logger, now func() time.Time) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Dispatcher{
		primary:      newQueue(action.Start{}, action.EndFrame{}),
		secondary:    newQueue(),
		menu:         NotInMenu,
		maxStackTime: maxStackTime,
		stackStart:   now(),
		now:          now,
		log:          log,
	}
}

// EnterRefs appends stores to the slot sequence. Registration order is
// delivery order. Call before the run starts.
func (d *Dispatcher) EnterRefs(stores ...store.Store) {
	d.slots = append(d.slots, stores...)
}

// DropRefs releases every store slot.
func (d *Dispatcher) DropRefs() {
	d.slots = nil
}

// AddActionPrimary appends a to the primary queue.
func (d *Dispatcher) AddActionPrimary(a action.Action) {
	d.primary.PushBack(a)
}

// AddActionSecondary appends a to the secondary queue.
func (d *Dispatcher) AddActionSecondary(a action.Action) {
	d.secondary.PushBack(a)
}

// Dispatch selects at most one action and broadcasts it to every store.
// It returns false once a quit action has been selected.
func (d *Dispatcher) Dispatch() bool {
	a, ok := d.next()
	if !ok {
		return true
	}

	switch act := a.(type) {
	case action.EndFrame:
		d.useSecondary = false
		d.stackStart = d.now()
		d.frames++
	case action.Menu:
		switch act.Sub.(type) {
		case action.ChangeMenuState:
			d.toggleMenu()
		case action.MenuQuit:
			d.log.Debug("menu quit selected")
			return false
		}
	case action.Quit:
		d.log.Debug("quit selected")
		return false
	}

	d.broadcast(a)
	return true
}

// next picks the action to deliver this call, or reports that there is none.
func (d *Dispatcher) next() (action.Action, bool) {
	if d.useSecondary {
		if d.budgetUsed() {
			return action.EndFrame{}, true
		}
		if a, ok := d.secondary.PopFront(); ok {
			return a, true
		}
		return action.EndFrame{}, true
	}

	if !d.menu.InMenu {
		a, ok := d.primary.PopFront()
		if !ok {
			if d.budgetUsed() {
				return action.EndFrame{}, true
			}
			d.useSecondary = true
			return nil, false
		}
		if sub, isMenu := action.IsMenu(a); isMenu {
			switch sub.(type) {
			case action.ChangeMenuState, action.MenuQuit:
				return a, true
			default:
				d.log.Debug("menu action discarded outside menu",
					zap.Stringer("sub", sub.MenuKind()),
				)
				return nil, false
			}
		}
		return a, true
	}

	// Menu actions jump the primary queue, the tail included. A wait is
	// synthesized only when no menu action is pending, so one menu cycle runs.
	for i := 0; i < d.primary.Len(); i++ {
		switch d.primary.At(i).(type) {
		case action.Menu, action.Quit:
			return d.primary.RemoveAt(i), true
		}
	}
	return action.Wrap(action.WaitForInput{}), true
}

func (d *Dispatcher) toggleMenu() {
	now := d.now()
	if d.menu.InMenu {
		d.stackStart = now.Add(-d.menu.Elapsed)
		d.log.Debug("leaving menu", zap.Duration("resumed_elapsed", d.menu.Elapsed))
		d.menu = NotInMenu
		return
	}
	d.menu = InMenu(now.Sub(d.stackStart))
	d.log.Debug("entering menu", zap.Duration("elapsed", d.menu.Elapsed))
}

func (d *Dispatcher) budgetUsed() bool {
	return d.now().Sub(d.stackStart).Seconds() >= d.maxStackTime
}

func (d *Dispatcher) broadcast(a action.Action) {
	if len(d.slots) == 0 {
		if !d.warnedNoStores {
			d.log.Warn("dispatch without stores", zap.Stringer("action", a.Kind()))
			d.warnedNoStores = true
		}
		return
	}
	d.delivered++
	for i := range d.slots {
		s := d.slots[i]
		if s == nil {
			d.log.Error("store slot already checked out",
				zap.Int("slot", i),
				zap.Stringer("action", a.Kind()),
			)
			continue
		}
		d.enqueue(d.receive(i, s, a))
	}
}

// receive checks slot i out, calls the store and checks it back in, even if
// the store panics.
func (d *Dispatcher) receive(i int, s store.Store, a action.Action) store.Outcome {
	d.slots[i] = nil
	defer func() { d.slots[i] = s }()
	d.dt = d.now().Sub(d.stackStart).Seconds()
	return s.ReceiveAction(a, d.dt)
}

func (d *Dispatcher) enqueue(out store.Outcome) {
	for _, a := range out.Actions {
		if a == nil {
			continue
		}
		if out.Secondary {
			d.secondary.PushBack(a)
		} else {
			d.primary.PushBack(a)
		}
	}
}

// MenuState returns the current menu state.
func (d *Dispatcher) MenuState() MenuState { return d.menu }

// UsingSecondary reports whether the secondary queue is being drained.
func (d *Dispatcher) UsingSecondary() bool { return d.useSecondary }

// DT returns the dt handed to the most recent store call.
func (d *Dispatcher) DT() float64 { return d.dt }

// Slots returns the number of registered store slots.
func (d *Dispatcher) Slots() int { return len(d.slots) }

// CheckedOut reports whether slot i is currently lent to a store call.
func (d *Dispatcher) CheckedOut(i int) bool {
	return i >= 0 && i < len(d.slots) && d.slots[i] == nil
}

// Pending returns copies of both queues, front first.
func (d *Dispatcher) Pending() (primary, secondary []action.Action) {
	return d.primary.Snapshot(), d.secondary.Snapshot()
}

// Delivered returns how many actions have been broadcast.
func (d *Dispatcher) Delivered() uint64 { return d.delivered }

// Frames returns how many EndFrame actions have been selected.
func (d *Dispatcher) Frames() uint64 { return d.frames }
