// Package menu implements menu-mode UI: a scene manager that fans menu
// sub-actions out to scenes, and the scenes and buttons themselves.
package menu

import (
	"github.com/fluxframe/frame/internal/core/action"
	"github.com/fluxframe/frame/internal/core/store"
	"go.uber.org/zap"
)

// SceneManager is a Store that forwards Menu actions to its scenes. Scenes
// follow the same check-out discipline as the dispatcher's stores.
type SceneManager struct {
	scenes []store.Scene
	log    *zap.Logger
}

func NewSceneManager(log *zap.Logger) *SceneManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SceneManager{log: log}
}

// AddScenes appends scenes in visiting order.
func (m *SceneManager) AddScenes(scenes ...store.Scene) {
	m.scenes = append(m.scenes, scenes...)
}

// Scenes returns the number of registered scenes.
func (m *SceneManager) Scenes() int { return len(m.scenes) }

// CheckedOut reports whether scene slot i is lent to a call.
func (m *SceneManager) CheckedOut(i int) bool {
	return i >= 0 && i < len(m.scenes) && m.scenes[i] == nil
}

// followUp keeps the menu loop cycling: ChangeMenuState and Draw lead to
// WaitForInput, WaitForInput leads to Draw.
func followUp(sub action.MenuSubAction) (action.MenuSubAction, bool) {
	switch sub.(type) {
	case action.ChangeMenuState, action.MenuDraw:
		return action.WaitForInput{}, true
	case action.WaitForInput:
		return action.MenuDraw{}, true
	}
	return nil, false
}

func (m *SceneManager) ReceiveAction(a action.Action, _ float64) store.Outcome {
	sub, ok := action.IsMenu(a)
	if !ok {
		return store.NoNewAction()
	}
	if len(m.scenes) == 0 {
		panic("menu: scene manager received a menu action before any scenes were added")
	}

	out := make([]action.Action, 0, 4)
	if next, ok := followUp(sub); ok {
		out = append(out, action.Wrap(next))
	}
	for i := range m.scenes {
		scene := m.scenes[i]
		if scene == nil {
			m.log.Error("scene slot already checked out",
				zap.Int("slot", i),
				zap.Stringer("sub", sub.MenuKind()),
			)
			continue
		}
		for _, emitted := range m.visit(i, scene, sub) {
			if emitted != nil {
				out = append(out, action.Wrap(emitted))
			}
		}
	}
	return store.NewActions(out...)
}

func (m *SceneManager) visit(i int, scene store.Scene, sub action.MenuSubAction) []action.MenuSubAction {
	m.scenes[i] = nil
	defer func() { m.scenes[i] = scene }()
	return scene.ReceiveMenuSubAction(sub)
}
