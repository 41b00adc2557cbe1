package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fluxframe/frame/internal/core/action"
	"github.com/fluxframe/frame/internal/data"
)

func TestFromLayout(t *testing.T) {
	dir := t.TempDir()
	sprite := filepath.Join(dir, "exit.u4i")
	// 4 px wide, one 4x4 frame.
	if err := os.WriteFile(sprite, []byte{0, 0, 0, 4, 1, 1, 1, 1, 1, 1, 1, 1}, 0o644); err != nil {
		t.Fatal(err)
	}
	l := &data.MenuLayout{Buttons: []data.ButtonEntry{
		{Name: "exit", Sprite: sprite, PixPerFrame: 16, X: 2, Y: 2, OnClick: data.OnClickQuit},
		{Name: "ghost", Sprite: filepath.Join(dir, "missing.u4i"), PixPerFrame: 16, OnClick: data.OnClickChangeMenuState},
	}}
	m, err := FromLayout(l, nil)
	if err != nil {
		t.Fatalf("FromLayout: %v", err)
	}
	if m.Scenes() != 2 {
		t.Fatalf("scenes = %d, want 2", m.Scenes())
	}

	// Box is (2, 2)..(6, 6); the missing sprite has no area and never hits.
	out := m.ReceiveAction(action.Wrap(action.Click{X: 3, Y: 3, Button: action.MouseLeft, Scale: 1}), 0)
	if len(out.Actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(out.Actions))
	}
	if sub, _ := action.IsMenu(out.Actions[0]); sub == nil || sub.MenuKind() != action.MenuKindQuit {
		t.Errorf("got %v, want MenuQuit", out.Actions[0])
	}
}

func TestClickFuncForUnknown(t *testing.T) {
	if _, err := ClickFuncFor("launch"); err == nil {
		t.Fatal("expected error")
	}
	fn, err := ClickFuncFor(data.OnClickChangeMenuState)
	if err != nil {
		t.Fatal(err)
	}
	if fn().MenuKind() != action.MenuKindChangeMenuState {
		t.Error("wrong sub-action")
	}
}
