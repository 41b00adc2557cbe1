package scripting

import (
	"fmt"
	"math"

	"github.com/fluxframe/frame/internal/core/action"
	lua "github.com/yuin/gopher-lua"
)

var kindNames = map[action.Kind]string{
	action.KindAddImgToCanvas: "add_img_to_canvas",
	action.KindDraw:           "draw",
	action.KindUpdate:         "update",
	action.KindSendFrame:      "send_frame",
	action.KindEndFrame:       "end_frame",
	action.KindStart:          "start",
	action.KindMenu:           "menu",
	action.KindQuit:           "quit",
	action.KindEmpty:          "empty",
	action.KindTest:           "test",
	action.KindKeyboard:       "keyboard",
}

var menuKindNames = map[action.MenuKind]string{
	action.MenuKindChangeMenuState: "change_menu_state",
	action.MenuKindWaitForInput:    "wait_for_input",
	action.MenuKindDraw:            "draw",
	action.MenuKindAddImgToCanvas:  "add_img_to_canvas",
	action.MenuKindClick:           "click",
	action.MenuKindQuit:            "quit",
}

var buttonNames = map[action.MouseButton]string{
	action.MouseLeft:   "left",
	action.MouseRight:  "right",
	action.MouseMiddle: "middle",
	action.MouseOther:  "other",
}

// toLua packs a into a table: {kind = "...", <payload fields>}. Image
// payloads are described by their size only.
func toLua(L *lua.LState, a action.Action) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("kind", lua.LString(kindNames[a.Kind()]))

	switch act := a.(type) {
	case action.AddImgToCanvas:
		t.RawSetString("x", lua.LNumber(act.X))
		t.RawSetString("y", lua.LNumber(act.Y))
		t.RawSetString("width", lua.LNumber(act.Img.Width()))
		t.RawSetString("height", lua.LNumber(act.Img.Height()))
	case action.Draw:
		t.RawSetString("clear", lua.LBool(act.Clear))
	case action.SendFrame:
		t.RawSetString("width", lua.LNumber(act.Width))
		t.RawSetString("height", lua.LNumber(act.Height))
		t.RawSetString("pixel_size", lua.LNumber(act.PixelSize))
	case action.Test:
		t.RawSetString("value", lua.LNumber(act.Value))
	case action.Keyboard:
		t.RawSetString("key", lua.LString(act.Key))
	case action.Menu:
		if act.Sub == nil {
			break
		}
		t.RawSetString("sub", lua.LString(menuKindNames[act.Sub.MenuKind()]))
		switch sub := act.Sub.(type) {
		case action.Click:
			t.RawSetString("x", lua.LNumber(sub.X))
			t.RawSetString("y", lua.LNumber(sub.Y))
			t.RawSetString("button", lua.LString(buttonNames[sub.Button]))
			t.RawSetString("scale", lua.LNumber(sub.Scale))
		case action.MenuAddImgToCanvas:
			t.RawSetString("x", lua.LNumber(sub.X))
			t.RawSetString("y", lua.LNumber(sub.Y))
		}
	}
	return t
}

// fromLua builds an action from a script table. Image actions cannot be
// produced by scripts.
func fromLua(t *lua.LTable) (action.Action, error) {
	kind := lua.LVAsString(t.RawGetString("kind"))
	switch kind {
	case "update":
		return action.Update{}, nil
	case "draw":
		return action.Draw{Clear: lua.LVAsBool(t.RawGetString("clear"))}, nil
	case "end_frame":
		return action.EndFrame{}, nil
	case "start":
		return action.Start{}, nil
	case "quit":
		return action.Quit{}, nil
	case "empty":
		return action.Empty{}, nil
	case "test":
		v, err := number(t, "value", 0, math.MaxUint8)
		if err != nil {
			return nil, err
		}
		return action.Test{Value: uint8(v)}, nil
	case "keyboard":
		return action.Keyboard{Key: action.Key(lua.LVAsString(t.RawGetString("key")))}, nil
	case "send_frame":
		var dims [3]float64
		for i, name := range []string{"width", "height", "pixel_size"} {
			v, err := number(t, name, 0, math.MaxUint32)
			if err != nil {
				return nil, err
			}
			dims[i] = v
		}
		return action.SendFrame{
			Width:     uint32(dims[0]),
			Height:    uint32(dims[1]),
			PixelSize: uint32(dims[2]),
		}, nil
	case "menu":
		sub, err := menuFromLua(t)
		if err != nil {
			return nil, err
		}
		return action.Wrap(sub), nil
	}
	return nil, fmt.Errorf("unknown action kind %q", kind)
}

func menuFromLua(t *lua.LTable) (action.MenuSubAction, error) {
	sub := lua.LVAsString(t.RawGetString("sub"))
	switch sub {
	case "change_menu_state":
		return action.ChangeMenuState{}, nil
	case "wait_for_input":
		return action.WaitForInput{}, nil
	case "draw":
		return action.MenuDraw{}, nil
	case "quit":
		return action.MenuQuit{}, nil
	case "click":
		btn := action.MouseLeft
		name := lua.LVAsString(t.RawGetString("button"))
		for b, n := range buttonNames {
			if n == name {
				btn = b
			}
		}
		x, err := number(t, "x", math.MinInt32, math.MaxInt32)
		if err != nil {
			return nil, err
		}
		y, err := number(t, "y", math.MinInt32, math.MaxInt32)
		if err != nil {
			return nil, err
		}
		scale, err := number(t, "scale", 0, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return action.Click{
			X:      int32(x),
			Y:      int32(y),
			Button: btn,
			Scale:  uint32(scale),
		}, nil
	}
	return nil, fmt.Errorf("unknown menu sub-action %q", sub)
}

// number reads an integer field, truncating fractions. A missing field is 0;
// values outside [lo, hi] are rejected rather than wrapped.
func number(t *lua.LTable, name string, lo, hi float64) (float64, error) {
	v := t.RawGetString(name)
	if v == lua.LNil {
		return 0, nil
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("field %s: want number, got %s", name, v.Type())
	}
	f := math.Trunc(float64(n))
	if math.IsNaN(f) || f < lo || f > hi {
		return 0, fmt.Errorf("field %s: %v out of range [%v, %v]", name, float64(n), lo, hi)
	}
	return f, nil
}
