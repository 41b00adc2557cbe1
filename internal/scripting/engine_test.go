package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fluxframe/frame/internal/asset"
	"github.com/fluxframe/frame/internal/core/action"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestStore(t *testing.T, src string) (*Store, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	s, err := NewStore("test.lua", src, zap.New(core))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(s.Close)
	return s, logs
}

func TestScriptEmitsActions(t *testing.T) {
	s, _ := newTestStore(t, `
function receive_action(a, dt)
  if a.kind == "start" then
    return {actions = {{kind = "test", value = 7}, {kind = "draw", clear = true}}}
  end
  if a.kind == "keyboard" then
    return {actions = {{kind = "menu", sub = "change_menu_state"}}, secondary = true}
  end
  return nil
end`)

	out := s.ReceiveAction(action.Start{}, 0)
	if out.Secondary || len(out.Actions) != 2 {
		t.Fatalf("start outcome = %+v", out)
	}
	if tv, ok := out.Actions[0].(action.Test); !ok || tv.Value != 7 {
		t.Errorf("actions[0] = %#v, want Test(7)", out.Actions[0])
	}
	if d, ok := out.Actions[1].(action.Draw); !ok || !d.Clear {
		t.Errorf("actions[1] = %#v, want Draw(true)", out.Actions[1])
	}

	out = s.ReceiveAction(action.Keyboard{Key: "A"}, 0)
	if !out.Secondary || len(out.Actions) != 1 {
		t.Fatalf("keyboard outcome = %+v", out)
	}
	if sub, ok := action.IsMenu(out.Actions[0]); !ok || sub.MenuKind() != action.MenuKindChangeMenuState {
		t.Errorf("got %v, want ChangeMenuState", out.Actions[0])
	}

	if out := s.ReceiveAction(action.Update{}, 0.5); out.HasActions() {
		t.Errorf("update produced %v", out.Actions)
	}
}

func TestScriptSeesPayloadAndDT(t *testing.T) {
	s, _ := newTestStore(t, `
seen = {}
function receive_action(a, dt)
  seen.kind = a.kind
  seen.sub = a.sub
  seen.x = a.x
  seen.button = a.button
  seen.scale = a.scale
  seen.dt = dt
end`)

	s.ReceiveAction(action.Wrap(action.Click{X: 12, Y: 3, Button: action.MouseRight, Scale: 8}), 0.25)
	seen, ok := s.Global("seen").(*lua.LTable)
	if !ok {
		t.Fatal("seen is not a table")
	}
	checks := map[string]string{"kind": "menu", "sub": "click", "button": "right"}
	for k, want := range checks {
		if got := lua.LVAsString(seen.RawGetString(k)); got != want {
			t.Errorf("seen.%s = %q, want %q", k, got, want)
		}
	}
	if got := lua.LVAsNumber(seen.RawGetString("x")); got != 12 {
		t.Errorf("seen.x = %v, want 12", got)
	}
	if got := lua.LVAsNumber(seen.RawGetString("scale")); got != 8 {
		t.Errorf("seen.scale = %v, want 8", got)
	}
	if got := lua.LVAsNumber(seen.RawGetString("dt")); got != 0.25 {
		t.Errorf("seen.dt = %v, want 0.25", got)
	}

	s.ReceiveAction(action.AddImgToCanvas{X: 1, Y: 2, Img: asset.NewImg(4, []byte{0, 0, 0, 0})}, 0)
	if got := lua.LVAsString(seen.RawGetString("kind")); got != "add_img_to_canvas" {
		t.Errorf("seen.kind = %q", got)
	}
}

func TestScriptStateSurvivesCalls(t *testing.T) {
	s, _ := newTestStore(t, `
count = 0
function receive_action(a, dt)
  count = count + 1
end`)
	for i := 0; i < 3; i++ {
		s.ReceiveAction(action.Empty{}, 0)
	}
	if got := lua.LVAsNumber(s.Global("count")); got != 3 {
		t.Errorf("count = %v, want 3", got)
	}
}

func TestScriptErrorsAreLogged(t *testing.T) {
	s, logs := newTestStore(t, `
function receive_action(a, dt)
  if a.kind == "update" then error("boom") end
  return {actions = {{kind = "nonsense"}, 5, {kind = "menu", sub = "bogus"}, {kind = "quit"}}}
end`)

	if out := s.ReceiveAction(action.Update{}, 0); out.HasActions() {
		t.Errorf("failed call produced %v", out.Actions)
	}
	if logs.FilterMessage("lua receive_action error").Len() != 1 {
		t.Error("script error not logged")
	}

	out := s.ReceiveAction(action.Start{}, 0)
	if len(out.Actions) != 1 || out.Actions[0].Kind() != action.KindQuit {
		t.Fatalf("got %v, want only Quit", out.Actions)
	}
	if n := logs.FilterMessage("skipping action").Len(); n != 2 {
		t.Errorf("skipped action logs = %d, want 2", n)
	}
	if n := logs.FilterMessage("skipping non-table action").Len(); n != 1 {
		t.Errorf("non-table logs = %d, want 1", n)
	}
}

func TestMissingEntryPointWarnsOnce(t *testing.T) {
	s, logs := newTestStore(t, `x = 1`)
	s.ReceiveAction(action.Start{}, 0)
	s.ReceiveAction(action.Update{}, 0)
	if n := logs.FilterMessage("lua function receive_action not found").Len(); n != 1 {
		t.Errorf("missing entry logs = %d, want 1", n)
	}
}

func TestNewStoreSyntaxError(t *testing.T) {
	if _, err := NewStore("bad.lua", "function (", nil); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.lua", `function receive_action(a, dt) end`)
	write("a.lua", `function receive_action(a, dt) end`)
	write("notes.txt", `not lua`)
	if err := os.Mkdir(filepath.Join(dir, "sub.lua"), 0o755); err != nil {
		t.Fatal(err)
	}

	stores, err := LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	defer func() {
		for _, s := range stores {
			s.Close()
		}
	}()
	if len(stores) != 2 || stores[0].Name() != "a.lua" || stores[1].Name() != "b.lua" {
		t.Fatalf("stores = %v", stores)
	}
}

func TestLoadDirMissingAndBroken(t *testing.T) {
	stores, err := LoadDir(filepath.Join(t.TempDir(), "absent"), nil)
	if err != nil || len(stores) != 0 {
		t.Fatalf("missing dir: stores=%v err=%v", stores, err)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x.lua"), []byte("return +"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir, nil); err == nil {
		t.Fatal("expected error for broken script")
	}
}


func TestOutOfRangeNumbersAreRejected(t *testing.T) {
	s, logs := newTestStore(t, `
function receive_action(a, dt)
  return {actions = {
    {kind = "test", value = 256},
    {kind = "test", value = -1},
    {kind = "send_frame", width = 1e12, height = 8, pixel_size = 1},
    {kind = "menu", sub = "click", x = -3000000000, y = 0},
    {kind = "menu", sub = "click", x = 5, y = 6, scale = -2},
    {kind = "test", value = "many"},
    {kind = "test", value = 12.9},
    {kind = "menu", sub = "click", x = -4, y = 7, scale = 2},
  }}
end`)

	out := s.ReceiveAction(action.Start{}, 0)
	if len(out.Actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(out.Actions))
	}
	if tv, ok := out.Actions[0].(action.Test); !ok || tv.Value != 12 {
		t.Errorf("actions[0] = %#v, want Test(12)", out.Actions[0])
	}
	sub, _ := action.IsMenu(out.Actions[1])
	if c, ok := sub.(action.Click); !ok || c.X != -4 || c.Y != 7 || c.Scale != 2 {
		t.Errorf("actions[1] = %#v, want Click(-4, 7) scale 2", sub)
	}
	if n := logs.FilterMessage("skipping action").Len(); n != 6 {
		t.Errorf("rejected actions logged %d times, want 6", n)
	}
}
