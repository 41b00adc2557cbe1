package dispatch

import "github.com/fluxframe/frame/internal/core/action"

// queue is a FIFO of actions. Insertion order is delivery order.
type queue struct {
	items []action.Action
}

func newQueue(items ...action.Action) *queue {
	q := &queue{items: make([]action.Action, 0, 32)}
	q.items = append(q.items, items...)
	return q
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) PushBack(a action.Action) {
	q.items = append(q.items, a)
}

func (q *queue) PopFront() (action.Action, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	a := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = q.items[:0:0]
	}
	return a, true
}

func (q *queue) At(i int) action.Action { return q.items[i] }

// RemoveAt removes and returns the element at i, keeping the others in order.
func (q *queue) RemoveAt(i int) action.Action {
	a := q.items[i]
	copy(q.items[i:], q.items[i+1:])
	q.items[len(q.items)-1] = nil
	q.items = q.items[:len(q.items)-1]
	return a
}

// Snapshot returns a copy of the queued actions, front first.
func (q *queue) Snapshot() []action.Action {
	out := make([]action.Action, len(q.items))
	copy(out, q.items)
	return out
}
