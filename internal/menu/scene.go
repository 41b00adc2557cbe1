package menu

import "github.com/fluxframe/frame/internal/core/action"

// MinimalScene shows a single button.
type MinimalScene struct {
	button *Button
}

func NewMinimalScene(button *Button) *MinimalScene {
	return &MinimalScene{button: button}
}

func (s *MinimalScene) ReceiveMenuSubAction(sub action.MenuSubAction) []action.MenuSubAction {
	switch sa := sub.(type) {
	case action.MenuDraw:
		return []action.MenuSubAction{s.button.SendFrame()}
	case action.Click:
		if sa.Button != action.MouseLeft {
			return nil
		}
		if out, ok := s.button.CheckClick(sa.X, sa.Y, sa.Scale); ok {
			return []action.MenuSubAction{out}
		}
	}
	return nil
}
