package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fluxframe/frame/internal/core/action"
	"github.com/fluxframe/frame/internal/core/store"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// entryPoint is the global every store script defines:
//
//	function receive_action(action, dt) ... end
//
// It returns nil, or {actions = {...}, secondary = bool}.
const entryPoint = "receive_action"

// Store is a Store whose logic lives in a Lua script. Each Store owns one
// VM, so script globals persist between calls. Single-goroutine access only.
type Store struct {
	name       string
	vm         *lua.LState
	log        *zap.Logger
	warnedMiss bool
}

// NewStore compiles src and returns a store named name.
func NewStore(name, src string, log *zap.Logger) (*Store, error) {
	s := newStore(name, log)
	if err := s.vm.DoString(src); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}
	return s, nil
}

// LoadStore runs the script file at path.
func LoadStore(path string, log *zap.Logger) (*Store, error) {
	s := newStore(filepath.Base(path), log)
	if err := s.vm.DoFile(path); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.log.Debug("loaded lua script", zap.String("file", path))
	return s, nil
}

// LoadDir loads every .lua file in dir, in file name order. A missing
// directory yields no stores.
func LoadDir(dir string, log *zap.Logger) ([]*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // skip missing dirs
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".lua" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	stores := make([]*Store, 0, len(names))
	for _, n := range names {
		s, err := LoadStore(filepath.Join(dir, n), log)
		if err != nil {
			for _, prev := range stores {
				prev.Close()
			}
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, nil
}

func newStore(name string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Store{name: name, vm: vm, log: log.With(zap.String("script", name))}
}

// Name returns the script name.
func (s *Store) Name() string { return s.name }

// Close releases the VM.
func (s *Store) Close() {
	s.vm.Close()
}

// Global returns a script global, for inspection.
func (s *Store) Global(name string) lua.LValue {
	return s.vm.GetGlobal(name)
}

// ReceiveAction calls the script. Script errors are logged and reported as
// no new action.
func (s *Store) ReceiveAction(a action.Action, dt float64) store.Outcome {
	fn := s.vm.GetGlobal(entryPoint)
	if fn.Type() != lua.LTFunction {
		if !s.warnedMiss {
			s.log.Error("lua function receive_action not found")
			s.warnedMiss = true
		}
		return store.NoNewAction()
	}

	if err := s.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, toLua(s.vm, a), lua.LNumber(dt)); err != nil {
		s.log.Error("lua receive_action error", zap.Stringer("action", a.Kind()), zap.Error(err))
		return store.NoNewAction()
	}

	ret := s.vm.Get(-1)
	s.vm.Pop(1)
	return s.outcome(ret)
}

func (s *Store) outcome(ret lua.LValue) store.Outcome {
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		if ret != lua.LNil {
			s.log.Warn("receive_action returned non-table", zap.String("type", ret.Type().String()))
		}
		return store.NoNewAction()
	}

	out := store.Outcome{Secondary: lua.LVAsBool(tbl.RawGetString("secondary"))}
	list, ok := tbl.RawGetString("actions").(*lua.LTable)
	if !ok {
		return store.NoNewAction()
	}
	for i := 1; i <= list.Len(); i++ {
		at, ok := list.RawGetInt(i).(*lua.LTable)
		if !ok {
			s.log.Warn("skipping non-table action", zap.Int("index", i))
			continue
		}
		a, err := fromLua(at)
		if err != nil {
			s.log.Warn("skipping action", zap.Int("index", i), zap.Error(err))
			continue
		}
		out.Actions = append(out.Actions, a)
	}
	return out
}
