package stats

import (
	"math"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
)

// GearBonuses holds flat bonuses contributed by equipped gear.
// Ratings are converted to percentages by Derive.
type GearBonuses struct {
	AttackPower float64
	SpellPower  float64
	CritRating  float64
	HasteRating float64
	HitRating   float64
	Armor       float64
	Resistance  float64
	DodgeRating float64
	ParryRating float64
	Health      float64
	Mana        float64
	HealthRegen float64
	ManaRegen   float64
}

// ClassBases holds the class baseline pools.
type ClassBases struct {
	BaseHP   float64
	BaseMana float64
}

// Derived holds combat stats derived from primaries, class bases and gear.
// Percentages are expressed as 0-100.
type Derived struct {
	AttackPower    float64
	SpellPower     float64
	CriticalStrike float64
	Haste          float64
	Armor          float64
	Resistance     float64
	HitRating      float64
	Dodge          float64
	Parry          float64
	MaxHealth      float64
	MaxMana        float64
	HealthRegen    float64
	ManaRegen      float64
}

// Derive computes derived combat stats.
//
// Precondition: cfg passed Validate, so every rating divisor is > 0.
func Derive(primary PrimaryBlock, bases ClassBases, gear GearBonuses, cfg *balance.Config) Derived {
	str := float64(primary.Get(Strength))
	agi := float64(primary.Get(Agility))
	intel := float64(primary.Get(Intellect))
	spi := float64(primary.Get(Spirit))
	sta := float64(primary.Get(Stamina))
	s := cfg.Stats

	return Derived{
		AttackPower:    str*s.AttackPowerPerStrength + agi*s.AttackPowerPerAgility + gear.AttackPower,
		SpellPower:     intel*s.SpellPowerPerIntellect + gear.SpellPower,
		CriticalStrike: s.BaseCritPercent + agi/s.AgiPerCritPercent + gear.CritRating/s.CritRatingPerPercent,
		Haste:          gear.HasteRating / s.HasteRatingPerPercent,
		Armor:          gear.Armor + agi*s.ArmorPerAgility + sta*s.ArmorPerStamina,
		Resistance:     gear.Resistance + intel*s.ResistPerIntellect,
		HitRating:      gear.HitRating / s.HitRatingPerPercent,
		Dodge:          s.BaseDodgePercent + agi/60.0 + gear.DodgeRating/s.DodgeRatingPerPercent,
		Parry:          s.BaseParryPercent + gear.ParryRating/s.ParryRatingPerPercent,
		MaxHealth:      sta*s.HealthPerStamina + bases.BaseHP + gear.Health,
		MaxMana:        intel*s.ManaPerIntellect + bases.BaseMana + gear.Mana,
		HealthRegen:    spi*s.HealthRegenPerSpirit + gear.HealthRegen,
		ManaRegen:      spi*s.ManaRegenPerSpirit + intel*s.ManaRegenPerIntellect + gear.ManaRegen,
	}
}

// PrimaryAtLevel returns primary attributes at level:
// floor(classBase + racial + growth*(level-1)) for every attribute.
func PrimaryAtLevel(classBase, racial map[Primary]int, growth map[Primary]float64, level int) PrimaryBlock {
	out := make(PrimaryBlock, len(AllPrimary))
	for _, p := range AllPrimary {
		out[p] = int(math.Floor(float64(classBase[p]+racial[p]) + growth[p]*float64(level-1)))
	}
	return out
}

// ArmorReduction returns the fraction of physical damage absorbed by armor
// against an attacker of attackerLevel.
//
// Postcondition: result is in [0, 1).
func ArmorReduction(armor float64, attackerLevel int) float64 {
	return mitigation(armor, attackerLevel)
}

// ResistReduction returns the fraction of spell damage absorbed by resistance.
//
// Postcondition: result is in [0, 1).
func ResistReduction(resistance float64, attackerLevel int) float64 {
	return mitigation(resistance, attackerLevel)
}

func mitigation(v float64, attackerLevel int) float64 {
	if v <= 0 {
		return 0
	}
	return v / (v + 400 + 85*float64(attackerLevel))
}
