package action

import "fmt"

// Key names a keyboard key, e.g. "Escape", "A", "ArrowUp".
type Key string

const (
	KeyEscape Key = "Escape"
	KeyEnter  Key = "Enter"
	KeySpace  Key = "Space"
)

// MouseButton identifies the pressed mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
}
