// Package stats holds the stat vocabulary and the pure numeric formulas of
// the progression core: the XP curve, the level-difference XP modifier,
// monster scaling, gear budgets, weapon damage and derived combat stats.
//
// Every function is a pure function of its arguments and the balance.Config
// it is handed.
package stats

// Primary names a primary attribute.
type Primary string

// Primary attributes.
const (
	Strength  Primary = "str"
	Agility   Primary = "agi"
	Intellect Primary = "int"
	Spirit    Primary = "spi"
	Stamina   Primary = "sta"
)

// AllPrimary lists the primary attributes in canonical order.
var AllPrimary = []Primary{Strength, Agility, Intellect, Spirit, Stamina}

// Secondary names a secondary rating carried by gear.
type Secondary string

// Secondary ratings.
const (
	CritChance       Secondary = "crit-chance"
	CritDamage       Secondary = "crit-damage"
	Haste            Secondary = "haste"
	Armor            Secondary = "armor"
	Resistance       Secondary = "resistance"
	HitRating        Secondary = "hit-rating"
	Expertise        Secondary = "expertise"
	SpellPenetration Secondary = "spell-penetration"
	AttackPower      Secondary = "attack-power"
	SpellPower       Secondary = "spell-power"
	HealthRegen      Secondary = "health-regen"
	ManaRegen        Secondary = "mana-regen"
)

// PrimaryBlock maps each primary attribute to a value.
type PrimaryBlock map[Primary]int

// Get returns the value for p, or 0 when absent.
func (b PrimaryBlock) Get(p Primary) int {
	return b[p]
}

// Total returns the sum over all attributes.
func (b PrimaryBlock) Total() int {
	n := 0
	for _, v := range b {
		n += v
	}
	return n
}
