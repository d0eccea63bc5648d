package stats

import (
	"math"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
)

// MaxLevel is the level cap. No XP is required or awarded at MaxLevel.
const MaxLevel = 60

// XPToNextLevel returns the XP needed to advance from level to level+1.
//
// Postcondition: returns 0 when level >= MaxLevel, otherwise
// floor(linear*level + power*level^exponent).
func XPToNextLevel(level int, cfg *balance.Config) int {
	if level >= MaxLevel {
		return 0
	}
	l := float64(level)
	return int(math.Floor(cfg.XP.LinearCoeff*l + cfg.XP.PowerCoeff*math.Pow(l, cfg.XP.PowerExponent)))
}

// LevelDiffXPModifier returns the XP multiplier for killing a monster of
// monsterLevel at playerLevel. Bands are tested from the highest threshold
// down; the first band whose lower bound diff reaches wins.
func LevelDiffXPModifier(playerLevel, monsterLevel int, cfg *balance.Config) float64 {
	diff := monsterLevel - playerLevel
	t := cfg.XP.LevelDiffThresholds
	m := cfg.XP.LevelDiffMods
	switch {
	case diff >= t.TooHighAbove:
		return m.TooHigh
	case diff >= t.BonusAbove:
		return m.Above3
	case diff >= t.NormalAbove:
		return m.Normal
	case diff >= t.ReducedAbove:
		return m.Below5
	case diff >= t.GreatlyReducedAbove:
		return m.Below8
	default:
		return m.Gray
	}
}

// curve evaluates floor(base + level*linear + level^exponent*coeff).
func curve(level int, base, linear, exponent, coeff float64) int {
	l := float64(level)
	return int(math.Floor(base + l*linear + math.Pow(l, exponent)*coeff))
}

// MonsterHP returns the hit points of a monster at level.
func MonsterHP(level int, cfg *balance.Config) int {
	m := cfg.Monsters
	return curve(level, m.HPBase, m.HPLinear, m.HPPowerExponent, m.HPPowerCoeff)
}

// MonsterDamage returns the damage per hit of a monster at level.
func MonsterDamage(level int, cfg *balance.Config) int {
	m := cfg.Monsters
	return curve(level, m.DamageBase, m.DamageLinear, m.DamagePowerExponent, m.DamagePowerCoeff)
}

// MonsterXP returns the base XP reward of a monster at level, before the
// level-difference modifier.
func MonsterXP(level int, cfg *balance.Config) int {
	m := cfg.Monsters
	return curve(level, m.XPBase, m.XPLinear, m.XPPowerExponent, m.XPPowerCoeff)
}

// MonsterGoldRange returns the inclusive gold range dropped by a monster at level.
//
// Postcondition: 0 <= min <= max.
func MonsterGoldRange(level int, cfg *balance.Config) (min, max int) {
	m := cfg.Monsters
	l := float64(level)
	min = int(math.Floor(m.GoldMinBase + l*m.GoldMinLinear))
	max = int(math.Floor(m.GoldMaxBase + l*m.GoldMaxLinear))
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return min, max
}

// StatBudget returns the unscaled stat budget of an item at iLevel.
func StatBudget(iLevel int, cfg *balance.Config) int {
	g := cfg.Gear
	return curve(iLevel, 0, g.BudgetLinearCoeff, g.BudgetPowerExponent, g.BudgetPowerCoeff)
}

// WeaponMinDamage returns the raw minimum damage of a weapon. Speed scales
// damage relative to a 2.0 second baseline.
func WeaponMinDamage(iLevel int, qualityMult, speed float64, cfg *balance.Config) int {
	f := cfg.Gear.WeaponMinDamage
	return int(math.Floor((float64(iLevel)*f.LevelCoeff + f.LevelBase) * qualityMult * (speed / 2.0)))
}

// WeaponMaxDamage returns the raw maximum damage of a weapon.
func WeaponMaxDamage(iLevel int, qualityMult, speed float64, cfg *balance.Config) int {
	min := WeaponMinDamage(iLevel, qualityMult, speed, cfg)
	return int(math.Floor(float64(min) * cfg.Gear.WeaponMaxDamageMult))
}
