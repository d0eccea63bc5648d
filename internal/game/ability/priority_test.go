package ability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/idlecore/internal/game/ability"
)

func warriorList() []ability.PriorityEntry {
	return []ability.PriorityEntry{
		{AbilityID: "execute", Enabled: true, Conditions: []ability.Condition{{Type: ability.TargetHealthBelow, Percent: 20}}},
		{AbilityID: "mortal-strike", Enabled: true, Conditions: []ability.Condition{{Type: ability.Always}}},
		{AbilityID: "heroic-strike", Enabled: true, Conditions: []ability.Condition{{Type: ability.ResourceAbove, Percent: 60}}},
	}
}

var fullHP = ability.CombatantState{Resource: 80, MaxResource: 100, HP: 100, MaxHP: 100}

func TestSelectNextAbility_ExecuteOnLowTarget(t *testing.T) {
	got, ok := ability.SelectNextAbility(warriorList(), fullHP, ability.TargetState{HP: 10, MaxHP: 100}, nil)
	assert.True(t, ok)
	assert.Equal(t, "execute", got)
}

func TestSelectNextAbility_FallsThroughToAlways(t *testing.T) {
	got, ok := ability.SelectNextAbility(warriorList(), fullHP, ability.TargetState{HP: 80, MaxHP: 100}, nil)
	assert.True(t, ok)
	assert.Equal(t, "mortal-strike", got)
}

func TestSelectNextAbility_SkipsCooldown(t *testing.T) {
	cds := map[string]float64{"mortal-strike": 4.5}
	got, ok := ability.SelectNextAbility(warriorList(), fullHP, ability.TargetState{HP: 80, MaxHP: 100}, cds)
	assert.True(t, ok)
	assert.Equal(t, "heroic-strike", got)
}

func TestSelectNextAbility_ZeroCooldownIsReady(t *testing.T) {
	cds := map[string]float64{"mortal-strike": 0}
	got, _ := ability.SelectNextAbility(warriorList(), fullHP, ability.TargetState{HP: 80, MaxHP: 100}, cds)
	assert.Equal(t, "mortal-strike", got)
}

func TestSelectNextAbility_NoneUsable(t *testing.T) {
	cds := map[string]float64{"execute": 1, "mortal-strike": 1, "heroic-strike": 1}
	got, ok := ability.SelectNextAbility(warriorList(), fullHP, ability.TargetState{HP: 80, MaxHP: 100}, cds)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestSelectNextAbility_DisabledSkipped(t *testing.T) {
	list := warriorList()
	list[1].Enabled = false
	got, _ := ability.SelectNextAbility(list, fullHP, ability.TargetState{HP: 80, MaxHP: 100}, nil)
	assert.Equal(t, "heroic-strike", got)
}

func TestSelectNextAbility_StrictComparisons(t *testing.T) {
	list := []ability.PriorityEntry{
		{AbilityID: "a", Enabled: true, Conditions: []ability.Condition{{Type: ability.ResourceAbove, Percent: 50}}},
		{AbilityID: "b", Enabled: true, Conditions: []ability.Condition{{Type: ability.ResourceBelow, Percent: 50}}},
		{AbilityID: "c", Enabled: true, Conditions: []ability.Condition{{Type: ability.TargetHealthAbove, Percent: 50}}},
	}
	half := ability.CombatantState{Resource: 50, MaxResource: 100}
	_, ok := ability.SelectNextAbility(list, half, ability.TargetState{HP: 50, MaxHP: 100}, nil)
	assert.False(t, ok)
}

func TestSelectNextAbility_UnknownConditionFailsClosed(t *testing.T) {
	list := []ability.PriorityEntry{
		{AbilityID: "weird", Enabled: true, Conditions: []ability.Condition{{Type: "moon_phase"}}},
		{AbilityID: "basic", Enabled: true},
	}
	got, ok := ability.SelectNextAbility(list, fullHP, ability.TargetState{HP: 1, MaxHP: 1}, nil)
	assert.True(t, ok)
	assert.Equal(t, "basic", got)
}

func TestSelectNextAbility_ZeroMaxReadsEmpty(t *testing.T) {
	list := []ability.PriorityEntry{
		{AbilityID: "spend", Enabled: true, Conditions: []ability.Condition{{Type: ability.ResourceAbove, Percent: 0}}},
		{AbilityID: "regen", Enabled: true, Conditions: []ability.Condition{{Type: ability.ResourceBelow, Percent: 10}}},
	}
	got, _ := ability.SelectNextAbility(list, ability.CombatantState{}, ability.TargetState{}, nil)
	assert.Equal(t, "regen", got)
}

func TestSelectNextAbility_OracleConditionsPermissive(t *testing.T) {
	list := []ability.PriorityEntry{{AbilityID: "shout", Enabled: true, Conditions: []ability.Condition{
		{Type: ability.BuffMissing, BuffID: "shout"},
		{Type: ability.DebuffMissingOnTarget, DebuffID: "sunder"},
		{Type: ability.CooldownReady},
	}}}
	got, ok := ability.SelectNextAbility(list, fullHP, ability.TargetState{HP: 1, MaxHP: 1}, nil)
	assert.True(t, ok)
	assert.Equal(t, "shout", got)
}

type fakeOracle struct {
	buffs    map[string]bool
	debuffs  map[string]bool
	notReady map[string]bool
	asked    []string
}

func (f *fakeOracle) BuffMissing(id string) bool {
	f.asked = append(f.asked, "buff:"+id)
	return !f.buffs[id]
}

func (f *fakeOracle) DebuffMissingOnTarget(id string) bool {
	f.asked = append(f.asked, "debuff:"+id)
	return !f.debuffs[id]
}

func (f *fakeOracle) CooldownReady(id string) bool {
	f.asked = append(f.asked, "cd:"+id)
	return !f.notReady[id]
}

func TestSelector_DelegatesToOracle(t *testing.T) {
	list := []ability.PriorityEntry{
		{AbilityID: "shout", Enabled: true, Conditions: []ability.Condition{{Type: ability.BuffMissing, BuffID: "shout"}}},
		{AbilityID: "rend", Enabled: true, Conditions: []ability.Condition{{Type: ability.DebuffMissingOnTarget, DebuffID: "rend"}}},
		{AbilityID: "slam", Enabled: true, Conditions: []ability.Condition{{Type: ability.CooldownReady}}},
		{AbilityID: "auto", Enabled: true},
	}
	oracle := &fakeOracle{
		buffs:    map[string]bool{"shout": true},
		debuffs:  map[string]bool{"rend": true},
		notReady: map[string]bool{"slam": true},
	}
	got, ok := ability.NewSelector(oracle).Select(list, fullHP, ability.TargetState{HP: 1, MaxHP: 1}, nil)
	assert.True(t, ok)
	assert.Equal(t, "auto", got)
	assert.Equal(t, []string{"buff:shout", "debuff:rend", "cd:slam"}, oracle.asked)
}

func TestProperty_SelectedEntryIsEligible(t *testing.T) {
	kinds := []string{ability.ResourceAbove, ability.ResourceBelow, ability.TargetHealthAbove, ability.TargetHealthBelow, ability.Always}
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(rt, "n")
		list := make([]ability.PriorityEntry, n)
		cds := map[string]float64{}
		for i := range list {
			id := string(rune('a' + i))
			list[i] = ability.PriorityEntry{
				AbilityID: id,
				Enabled:   rapid.Bool().Draw(rt, "enabled"),
				Conditions: []ability.Condition{{
					Type:    rapid.SampledFrom(kinds).Draw(rt, "kind"),
					Percent: rapid.Float64Range(0, 100).Draw(rt, "pct"),
				}},
			}
			if rapid.Bool().Draw(rt, "oncd") {
				cds[id] = 1
			}
		}
		who := ability.CombatantState{Resource: rapid.Float64Range(0, 100).Draw(rt, "res"), MaxResource: 100}
		target := ability.TargetState{HP: rapid.Float64Range(0, 100).Draw(rt, "hp"), MaxHP: 100}

		got, ok := ability.SelectNextAbility(list, who, target, cds)
		if !ok {
			return
		}
		for _, e := range list {
			if e.AbilityID == got {
				assert.True(rt, e.Enabled)
				assert.Zero(rt, cds[e.AbilityID])
				return
			}
		}
		rt.Fatalf("selected %q not in list", got)
	})
}
