package scripting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/game/dice"
)

// GlobalKey is the reserved key for shared scripts loaded via LoadGlobal.
// CallHook falls back to this VM when no VM is registered under a key.
const GlobalKey = "__global__"

// Fields is the payload of a hook call, passed to Lua as a table. Values may
// be string, bool, int or float64; other types are passed as their %v form.
type Fields map[string]any

type vm struct {
	L     *lua.LState
	limit int
}

// Manager owns one sandboxed LState per key (a boss category) and exposes
// hook dispatch.
//
// Manager is safe for concurrent CallHook after all Load calls complete.
// Each VM is single-threaded; callers must not call hooks on the same key
// from more than one goroutine.
type Manager struct {
	mu     sync.RWMutex
	states map[string]*vm
	roller *dice.Roller
	logger *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: logger must be non-nil; roller may be nil, in which case
// engine.roll and engine.pick return nil.
// Postcondition: Returns a non-nil Manager with an empty VM map.
func NewManager(roller *dice.Roller, logger *zap.Logger) *Manager {
	return &Manager{
		states: make(map[string]*vm),
		roller: roller,
		logger: logger,
	}
}

// Load creates a sandboxed VM for key, registers the engine module, then
// executes every *.lua file in scriptDir in lexicographic order.
//
// Precondition: key must be non-empty; scriptDir must be a readable directory.
// Postcondition: VM is registered, replacing any previous one; returns error
// on Lua load failure.
func (m *Manager) Load(key, scriptDir string, instLimit int) error {
	if key == "" {
		return errors.New("scripting: key must not be empty")
	}
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, key, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L := NewSandboxedState(instLimit)
	m.RegisterModules(L)
	for _, path := range luaFiles {
		cancel := budget(L, instLimit)
		err := L.DoFile(path)
		cancel()
		if err != nil {
			closeState(L)
			return fmt.Errorf("scripting: loading %q for %q: %w", path, key, err)
		}
	}

	m.mu.Lock()
	if old, ok := m.states[key]; ok {
		closeState(old.L)
	}
	m.states[key] = &vm{L: L, limit: instLimit}
	m.mu.Unlock()
	m.logger.Debug("scripts loaded", zap.String("key", key), zap.Int("files", len(luaFiles)))
	return nil
}

// LoadGlobal creates the fallback VM from scriptDir.
func (m *Manager) LoadGlobal(scriptDir string, instLimit int) error {
	return m.Load(GlobalKey, scriptDir, instLimit)
}

// LoadTree loads root/global as the fallback VM and every other
// subdirectory of root as a VM keyed by its name.
//
// Postcondition: returns an error when root is unreadable or any script
// fails to load. A root without a global directory has no fallback VM.
func (m *Manager) LoadTree(root string, instLimit int) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("scripting: reading script root %q: %w", root, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		key := e.Name()
		if key == "global" {
			key = GlobalKey
		}
		if err := m.Load(key, filepath.Join(root, e.Name()), instLimit); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the registered VM keys in lexicographic order.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.states))
	for k := range m.states {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close releases every VM.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.states {
		closeState(v.L)
		delete(m.states, k)
	}
}

func (m *Manager) lookup(key string) *vm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.states[key]; ok {
		return v
	}
	return m.states[GlobalKey]
}

// CallHook calls the named Lua global function in key's VM. If the key has
// no VM, the global VM is tried as a fallback. Returns (LNil, nil) if the
// hook is not defined or no VM exists. Lua runtime errors, including an
// exhausted instruction budget, are logged at Warn level and never
// propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(key, hook string, args ...lua.LValue) (lua.LValue, error) {
	v := m.lookup(key)
	if v == nil {
		m.logger.Debug("scripting: no VM for key",
			zap.String("key", key),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}
	return m.call(v, key, hook, func(*lua.LState) []lua.LValue { return args })
}

// CallEvent calls hook in key's VM with fields converted to a Lua table and
// returns the hook's string result, or "" when the hook is missing, fails, or
// returns a non-string. A hook key's VM does not define is looked up in the
// global VM.
func (m *Manager) CallEvent(key, hook string, fields Fields) string {
	v := m.lookup(key)
	if v == nil {
		return ""
	}
	if v.L.GetGlobal(hook) == lua.LNil {
		m.mu.RLock()
		g := m.states[GlobalKey]
		m.mu.RUnlock()
		if g == nil {
			return ""
		}
		v = g
	}
	ret, _ := m.call(v, key, hook, func(L *lua.LState) []lua.LValue {
		return []lua.LValue{toTable(L, fields)}
	})
	if s, ok := ret.(lua.LString); ok {
		return string(s)
	}
	return ""
}

func (m *Manager) call(v *vm, key, hook string, args func(*lua.LState) []lua.LValue) (lua.LValue, error) {
	L := v.L
	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	cancel := budget(L, v.limit)
	defer cancel()
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args(L)...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("key", key),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

func toTable(L *lua.LState, fields Fields) *lua.LTable {
	tbl := L.NewTable()
	for k, val := range fields {
		L.SetField(tbl, k, toValue(val))
	}
	return tbl
}

func toValue(val any) lua.LValue {
	switch x := val.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(x)
	case bool:
		return lua.LBool(x)
	case int:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case lua.LValue:
		return x
	default:
		return lua.LString(fmt.Sprintf("%v", x))
	}
}
