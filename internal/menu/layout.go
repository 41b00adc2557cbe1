package menu

import (
	"fmt"

	"github.com/fluxframe/frame/internal/asset"
	"github.com/fluxframe/frame/internal/core/action"
	"github.com/fluxframe/frame/internal/data"
	"go.uber.org/zap"
)

// ClickFuncFor resolves a layout on_click name.
func ClickFuncFor(name string) (ClickFunc, error) {
	switch name {
	case data.OnClickQuit:
		return func() action.MenuSubAction { return action.MenuQuit{} }, nil
	case data.OnClickChangeMenuState:
		return func() action.MenuSubAction { return action.ChangeMenuState{} }, nil
	}
	return nil, fmt.Errorf("unknown on_click %q", name)
}

// FromLayout builds a scene manager with one MinimalScene per button.
// Sprites that cannot be loaded are replaced with empty ones.
func FromLayout(l *data.MenuLayout, log *zap.Logger) (*SceneManager, error) {
	m := NewSceneManager(log)
	for _, b := range l.Buttons {
		fn, err := ClickFuncFor(b.OnClick)
		if err != nil {
			return nil, fmt.Errorf("button %s: %w", b.Name, err)
		}
		sprite := asset.LoadSpriteOrEmpty(b.Sprite, b.PixPerFrame, b.X, b.Y, b.Animations, b.Framerate, m.log)
		m.AddScenes(NewMinimalScene(NewButton(sprite, fn)))
	}
	return m, nil
}
