package ability

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/idlecore/internal/scripting"
)

// Hook names a LuaOracle calls.
const (
	HookBuffMissing           = "buff_missing"
	HookDebuffMissingOnTarget = "debuff_missing_on_target"
	HookCooldownReady         = "cooldown_ready"
)

// Snapshot is the buff and cooldown state published to scripts before a
// selection. Scripts read it from the global table combat, with fields
// buffs, target_debuffs (sets keyed by id) and cooldowns (id to seconds).
type Snapshot struct {
	Buffs         []string
	TargetDebuffs []string
	Cooldowns     map[string]float64
}

// LuaOracle answers oracle conditions by calling Lua hooks in one scripting
// scope. An undefined hook, or a hook returning nil, answers true; a hook
// that raises an error answers false.
type LuaOracle struct {
	scripts *scripting.Manager
	scope   string
}

// NewLuaOracle returns an oracle backed by scope in scripts.
//
// Precondition: scripts is non-nil.
func NewLuaOracle(scripts *scripting.Manager, scope string) *LuaOracle {
	return &LuaOracle{scripts: scripts, scope: scope}
}

// Observe publishes snap as the combat global of the oracle's scope.
//
// Postcondition: returns false when the scope has no VM.
func (o *LuaOracle) Observe(snap Snapshot) bool {
	return o.scripts.SetGlobal(o.scope, "combat", func(L *lua.LState) lua.LValue {
		set := func(ids []string) *lua.LTable {
			t := L.NewTable()
			for _, id := range ids {
				t.RawSetString(id, lua.LTrue)
			}
			return t
		}
		cds := L.NewTable()
		for id, secs := range snap.Cooldowns {
			cds.RawSetString(id, lua.LNumber(secs))
		}
		tbl := L.NewTable()
		tbl.RawSetString("buffs", set(snap.Buffs))
		tbl.RawSetString("target_debuffs", set(snap.TargetDebuffs))
		tbl.RawSetString("cooldowns", cds)
		return tbl
	})
}

func (o *LuaOracle) ask(hook, arg string) bool {
	ret, err := o.scripts.CallHook(o.scope, hook, lua.LString(arg))
	if err != nil {
		return false
	}
	if ret == lua.LNil {
		return true
	}
	return lua.LVAsBool(ret)
}

func (o *LuaOracle) BuffMissing(buffID string) bool {
	return o.ask(HookBuffMissing, buffID)
}

func (o *LuaOracle) DebuffMissingOnTarget(debuffID string) bool {
	return o.ask(HookDebuffMissingOnTarget, debuffID)
}

func (o *LuaOracle) CooldownReady(abilityID string) bool {
	return o.ask(HookCooldownReady, abilityID)
}
