package ability_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/idlecore/internal/game/ability"
	"github.com/cory-johannsen/idlecore/internal/scripting"
)

func newScripts(t *testing.T) *scripting.Manager {
	t.Helper()
	mgr := scripting.NewManager(zap.NewNop())
	t.Cleanup(mgr.Close)
	return mgr
}

func TestLuaOracle_ContentScript(t *testing.T) {
	mgr := newScripts(t)
	require.NoError(t, mgr.LoadScope("blademaster", "../../../content/scripts/blademaster", 0))
	lists, err := ability.LoadPriorities("../../../content/priorities")
	require.NoError(t, err)
	list := lists["blademaster-default"].Entries

	oracle := ability.NewLuaOracle(mgr, "blademaster")
	sel := ability.NewSelector(oracle)
	who := ability.CombatantState{Resource: 20, MaxResource: 100, HP: 100, MaxHP: 100}
	target := ability.TargetState{HP: 90, MaxHP: 100}

	// before any snapshot every oracle answer is permissive
	got, _ := sel.Select(list, who, target, nil)
	assert.Equal(t, "battle-shout", got)

	require.True(t, oracle.Observe(ability.Snapshot{Buffs: []string{"battle-shout"}}))
	got, _ = sel.Select(list, who, target, nil)
	assert.Equal(t, "rend", got)

	require.True(t, oracle.Observe(ability.Snapshot{
		Buffs:         []string{"battle-shout"},
		TargetDebuffs: []string{"rend"},
		Cooldowns:     map[string]float64{"mortal-strike": 3},
	}))
	got, _ = sel.Select(list, who, target, nil)
	assert.Equal(t, "auto-attack", got)
}

func TestLuaOracle_UndefinedHookIsPermissive(t *testing.T) {
	mgr := newScripts(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.lua"), []byte("-- nothing"), 0o644))
	require.NoError(t, mgr.LoadScope("s", dir, 0))

	o := ability.NewLuaOracle(mgr, "s")
	assert.True(t, o.BuffMissing("x"))
	assert.True(t, o.DebuffMissingOnTarget("x"))
	assert.True(t, o.CooldownReady("x"))
}

func TestLuaOracle_ErrorAnswersFalse(t *testing.T) {
	mgr := newScripts(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.lua"), []byte(`
		function buff_missing(id) error("boom") end
		function cooldown_ready(id) while true do end end
	`), 0o644))
	require.NoError(t, mgr.LoadScope("s", dir, 1000))

	o := ability.NewLuaOracle(mgr, "s")
	assert.False(t, o.BuffMissing("x"))
	assert.False(t, o.CooldownReady("x"))
}

func TestLuaOracle_ObserveWithoutScope(t *testing.T) {
	o := ability.NewLuaOracle(newScripts(t), "missing")
	assert.False(t, o.Observe(ability.Snapshot{}))
	assert.True(t, o.BuffMissing("x"))
}
