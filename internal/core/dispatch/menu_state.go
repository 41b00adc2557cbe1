package dispatch

import "time"

// MenuState is either NotInMenu or InMenu. While in menu mode Elapsed holds
// how much of the budget window had been used when the menu was entered.
type MenuState struct {
	InMenu  bool
	Elapsed time.Duration
}

// NotInMenu is the zero MenuState.
var NotInMenu = MenuState{}

// InMenu returns the state for menu mode entered after elapsed time.
func InMenu(elapsed time.Duration) MenuState {
	return MenuState{InMenu: true, Elapsed: elapsed}
}

func (m MenuState) String() string {
	if m.InMenu {
		return "InMenu(" + m.Elapsed.String() + ")"
	}
	return "NotInMenu"
}
