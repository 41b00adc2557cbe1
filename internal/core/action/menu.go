package action

import (
	"fmt"

	"github.com/fluxframe/frame/internal/asset"
)

// MenuKind identifies a MenuSubAction variant.
type MenuKind int

const (
	MenuKindChangeMenuState MenuKind = iota
	MenuKindWaitForInput
	MenuKindDraw
	MenuKindAddImgToCanvas
	MenuKindClick
	MenuKindQuit
)

func (k MenuKind) String() string {
	switch k {
	case MenuKindChangeMenuState:
		return "ChangeMenuState"
	case MenuKindWaitForInput:
		return "WaitForInput"
	case MenuKindDraw:
		return "Draw"
	case MenuKindAddImgToCanvas:
		return "AddImgToCanvas"
	case MenuKindClick:
		return "Click"
	case MenuKindQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// MenuSubAction is only meaningful while the dispatcher is in menu mode,
// with the exception of ChangeMenuState and MenuQuit.
type MenuSubAction interface {
	MenuKind() MenuKind
	isMenuSubAction()
}

// ChangeMenuState toggles menu mode.
type ChangeMenuState struct{}

// WaitForInput blocks the renderer until one input event arrives.
type WaitForInput struct{}

// MenuDraw presents the canvas without clearing it.
type MenuDraw struct{}

// MenuAddImgToCanvas places Img at logical coordinates (X, Y) in menu mode.
type MenuAddImgToCanvas struct {
	X, Y uint32
	Img  asset.Img
}

// Click is a mouse press at screen coordinates. Scale is the renderer's
// pixel size at the time of the click.
type Click struct {
	X, Y   int32
	Button MouseButton
	Scale  uint32
}

// MenuQuit ends the run from inside a menu.
type MenuQuit struct{}

func (ChangeMenuState) MenuKind() MenuKind    { return MenuKindChangeMenuState }
func (WaitForInput) MenuKind() MenuKind       { return MenuKindWaitForInput }
func (MenuDraw) MenuKind() MenuKind           { return MenuKindDraw }
func (MenuAddImgToCanvas) MenuKind() MenuKind { return MenuKindAddImgToCanvas }
func (Click) MenuKind() MenuKind              { return MenuKindClick }
func (MenuQuit) MenuKind() MenuKind           { return MenuKindQuit }

func (ChangeMenuState) isMenuSubAction() {}
func (WaitForInput) isMenuSubAction() {}
func (MenuDraw) isMenuSubAction() {}
func (MenuAddImgToCanvas) isMenuSubAction() {}
func (Click) isMenuSubAction() {}
func (MenuQuit) isMenuSubAction() {}

// Wrap lifts a sub-action into the top-level action space.
func Wrap(sub MenuSubAction) Action {
	return Menu{Sub: sub}
}
