package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules registers the idle.* Lua tables into L.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: the idle global is defined in L with a log sub-table whose
// debug, info and warn functions write to the Manager's logger.
func (m *Manager) RegisterModules(L *lua.LState, scope string) {
	idle := L.NewTable()
	logTbl := L.NewTable()
	for name, write := range map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
	} {
		write := write
		L.SetField(logTbl, name, L.NewFunction(func(L *lua.LState) int {
			write(L.CheckString(1), zap.String("scope", scope), zap.String("source", "lua"))
			return 0
		}))
	}
	L.SetField(idle, "log", logTbl)
	L.SetGlobal("idle", idle)
}
