// Package store defines the capabilities the dispatcher and the scene
// manager call into.
package store

import "github.com/fluxframe/frame/internal/core/action"

// Outcome is what a store hands back after receiving an action. An Outcome
// with no actions means "no new action".
type Outcome struct {
	Actions   []action.Action
	Secondary bool // route Actions to the secondary queue
}

// NoNewAction is the zero Outcome.
func NoNewAction() Outcome { return Outcome{} }

// NewActions returns an Outcome routed to the primary queue.
func NewActions(actions ...action.Action) Outcome {
	return Outcome{Actions: actions}
}

// NewSecondaryActions returns an Outcome routed to the secondary queue.
func NewSecondaryActions(actions ...action.Action) Outcome {
	return Outcome{Actions: actions, Secondary: true}
}

// HasActions reports whether the outcome carries follow-up actions.
func (o Outcome) HasActions() bool { return len(o.Actions) > 0 }

// Store is a stateful component driven by the dispatcher. ReceiveAction is
// called synchronously once per delivered action, including actions the
// store has no interest in. dt is the time in seconds since the current
// budget window started.
type Store interface {
	ReceiveAction(a action.Action, dt float64) Outcome
}

// Func adapts a plain function to Store.
type Func func(a action.Action, dt float64) Outcome

func (f Func) ReceiveAction(a action.Action, dt float64) Outcome { return f(a, dt) }

// Scene is a menu-mode leaf, driven by the scene manager with sub-actions
// only. A nil or empty result means "no new action".
type Scene interface {
	ReceiveMenuSubAction(sub action.MenuSubAction) []action.MenuSubAction
}
