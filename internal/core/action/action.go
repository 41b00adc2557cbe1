// Package action defines the closed set of messages exchanged between the
// dispatcher and its stores.
//
// Both taxonomies are sealed: only the variant types declared here satisfy
// Action and MenuSubAction. Values are treated as immutable once created.
package action

import (
	"fmt"

	"github.com/fluxframe/frame/internal/asset"
)

// Kind identifies a top-level Action variant.
type Kind int

const (
	KindAddImgToCanvas Kind = iota
	KindDraw
	KindUpdate
	KindSendFrame
	KindEndFrame
	KindStart
	KindMenu
	KindQuit
	KindEmpty
	KindTest
	KindKeyboard
)

func (k Kind) String() string {
	switch k {
	case KindAddImgToCanvas:
		return "AddImgToCanvas"
	case KindDraw:
		return "Draw"
	case KindUpdate:
		return "Update"
	case KindSendFrame:
		return "SendFrame"
	case KindEndFrame:
		return "EndFrame"
	case KindStart:
		return "Start"
	case KindMenu:
		return "Menu"
	case KindQuit:
		return "Quit"
	case KindEmpty:
		return "Empty"
	case KindTest:
		return "Test"
	case KindKeyboard:
		return "Keyboard"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Action is a top-level message. Implemented only by the variants below.
type Action interface {
	Kind() Kind
	isAction()
}

// AddImgToCanvas places Img at logical coordinates (X, Y).
type AddImgToCanvas struct {
	X, Y uint32
	Img  asset.Img
}

// Draw presents the canvas; Clear wipes it afterwards.
type Draw struct {
	Clear bool
}

// Update advances simulation state by the dt handed to the store.
type Update struct{}

// SendFrame asks stores to submit their images for the coming frame.
type SendFrame struct {
	Width, Height, PixelSize uint32
}

// EndFrame closes the current budget window.
type EndFrame struct{}

// Start is the first action every run delivers.
type Start struct{}

// Menu wraps a MenuSubAction for transport through the main queues.
type Menu struct {
	Sub MenuSubAction
}

// Quit ends the run.
type Quit struct{}

// Empty is a no-op placeholder.
type Empty struct{}

// Test carries a single byte; used by diagnostics.
type Test struct {
	Value uint8
}

// Keyboard reports a key press outside menu mode.
type Keyboard struct {
	Key Key
}

func (AddImgToCanvas) Kind() Kind { return KindAddImgToCanvas }
func (Draw) Kind() Kind           { return KindDraw }
func (Update) Kind() Kind         { return KindUpdate }
func (SendFrame) Kind() Kind      { return KindSendFrame }
func (EndFrame) Kind() Kind       { return KindEndFrame }
func (Start) Kind() Kind          { return KindStart }
func (Menu) Kind() Kind           { return KindMenu }
func (Quit) Kind() Kind           { return KindQuit }
func (Empty) Kind() Kind          { return KindEmpty }
func (Test) Kind() Kind           { return KindTest }
func (Keyboard) Kind() Kind       { return KindKeyboard }

func (AddImgToCanvas) isAction() {}
func (Draw) isAction() {}
func (Update) isAction() {}
func (SendFrame) isAction() {}
func (EndFrame) isAction() {}
func (Start) isAction() {}
func (Menu) isAction() {}
func (Quit) isAction() {}
func (Empty) isAction() {}
func (Test) isAction() {}
func (Keyboard) isAction() {}

// IsMenu reports whether a is a Menu action, and returns its sub-action.
func IsMenu(a Action) (MenuSubAction, bool) {
	m, ok := a.(Menu)
	if !ok || m.Sub == nil {
		return nil, false
	}
	return m.Sub, true
}
