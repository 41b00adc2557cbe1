package menu

import (
	"github.com/fluxframe/frame/internal/asset"
	"github.com/fluxframe/frame/internal/core/action"
)

// ClickFunc produces the sub-action a button emits when clicked. It may be
// called any number of times.
type ClickFunc func() action.MenuSubAction

// Button is a clickable sprite.
type Button struct {
	sprite  *asset.Sprite
	onClick ClickFunc
}

func NewButton(sprite *asset.Sprite, onClick ClickFunc) *Button {
	return &Button{sprite: sprite, onClick: onClick}
}

// SetOnClick replaces the click callback.
func (b *Button) SetOnClick(fn ClickFunc) {
	b.onClick = fn
}

// SendFrame returns the sub-action that draws the button at its position.
func (b *Button) SendFrame() action.MenuSubAction {
	x, y := b.sprite.Pos()
	return action.MenuAddImgToCanvas{
		X:   uint32(x),
		Y:   uint32(y),
		Img: b.sprite.CurrentFrame(),
	}
}

// Hit reports whether screen point (x, y) lies strictly inside the button's
// bounding box, with logical coordinates multiplied by scale. Edges are
// outside.
func (b *Button) Hit(x, y int32, scale uint32) bool {
	if scale == 0 {
		scale = 1
	}
	sx, sy := b.sprite.Pos()
	left := int64(sx) * int64(scale)
	top := int64(sy) * int64(scale)
	right := left + int64(b.sprite.Width())*int64(scale)
	bottom := top + int64(b.sprite.Height())*int64(scale)
	px, py := int64(x), int64(y)
	return left < px && px < right && top < py && py < bottom
}

// CheckClick invokes the callback when (x, y) hits the button.
func (b *Button) CheckClick(x, y int32, scale uint32) (action.MenuSubAction, bool) {
	if b.onClick == nil || !b.Hit(x, y, scale) {
		return nil, false
	}
	sub := b.onClick()
	return sub, sub != nil
}
