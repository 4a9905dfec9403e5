package scripting

import (
	"go.uber.org/zap"

	lua "github.com/yuin/gopher-lua"
)

// RegisterModules registers the engine table into L:
//
//	engine.log(msg)      writes msg to the manager's logger at info level
//	engine.roll(expr)    rolls a dice expression such as "2d6+3" and returns the total
//	engine.pick(list)    returns a random element of a Lua array, or nil when empty
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "log", L.NewFunction(m.luaLog))
	L.SetField(engine, "roll", L.NewFunction(m.luaRoll))
	L.SetField(engine, "pick", L.NewFunction(m.luaPick))
	L.SetGlobal("engine", engine)
}

func (m *Manager) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	m.logger.Info("lua", zap.String("message", msg))
	return 0
}

func (m *Manager) luaRoll(L *lua.LState) int {
	expr := L.CheckString(1)
	if m.roller == nil {
		L.Push(lua.LNil)
		return 1
	}
	res, err := m.roller.RollExpr(expr)
	if err != nil {
		L.RaiseError("engine.roll: %v", err)
		return 0
	}
	L.Push(lua.LNumber(res.Total()))
	return 1
}

func (m *Manager) luaPick(L *lua.LState) int {
	tbl := L.CheckTable(1)
	n := tbl.Len()
	if n == 0 || m.roller == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(tbl.RawGetInt(m.roller.Intn(n) + 1))
	return 1
}
