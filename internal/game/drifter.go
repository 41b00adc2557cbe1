// Package game holds the demo stores that run outside the menu.
package game

import (
	"github.com/fluxframe/frame/internal/asset"
	"github.com/fluxframe/frame/internal/core/action"
	"github.com/fluxframe/frame/internal/core/store"
)

// Drifter moves a sprite diagonally across the canvas and animates it.
type Drifter struct {
	sprite *asset.Sprite
	speed  float64
	acc    float64
}

// NewDrifter drives sprite at speed canvas cells per second.
func NewDrifter(sprite *asset.Sprite, speed float64) *Drifter {
	return &Drifter{sprite: sprite, speed: speed}
}

func (d *Drifter) Sprite() *asset.Sprite { return d.sprite }

func (d *Drifter) ReceiveAction(a action.Action, dt float64) store.Outcome {
	switch a.(type) {
	case action.Update:
		d.acc += dt
		// Positions wrap around the 8-bit coordinate space.
		p := uint8(int64(d.acc * d.speed))
		d.sprite.SetPos(p, p)
	case action.SendFrame:
		d.sprite.Animate(dt)
		x, y := d.sprite.Pos()
		return store.NewActions(action.AddImgToCanvas{
			X:   uint32(x),
			Y:   uint32(y),
			Img: d.sprite.CurrentFrame(),
		})
	}
	return store.NoNewAction()
}
