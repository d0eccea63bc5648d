package inventory

import "github.com/cory-johannsen/idlecore/internal/game/stats"

// Slot identifies a gear slot.
type Slot string

// Gear slots.
const (
	SlotHead      Slot = "head"
	SlotShoulders Slot = "shoulders"
	SlotChest     Slot = "chest"
	SlotWrists    Slot = "wrists"
	SlotHands     Slot = "hands"
	SlotWaist     Slot = "waist"
	SlotLegs      Slot = "legs"
	SlotFeet      Slot = "feet"
	SlotNeck      Slot = "neck"
	SlotBack      Slot = "back"
	SlotRing1     Slot = "ring1"
	SlotRing2     Slot = "ring2"
	SlotTrinket1  Slot = "trinket1"
	SlotTrinket2  Slot = "trinket2"
	SlotMainHand  Slot = "main-hand"
	SlotOffHand   Slot = "off-hand"
)

// AllSlots lists every equippable slot in canonical order. Loot slot rolls
// index into this slice, so its order is part of the deterministic output.
var AllSlots = []Slot{
	SlotHead, SlotShoulders, SlotChest, SlotWrists, SlotHands, SlotWaist, SlotLegs, SlotFeet,
	SlotNeck, SlotBack, SlotRing1, SlotRing2, SlotTrinket1, SlotTrinket2, SlotMainHand, SlotOffHand,
}

// slotDisplayNames maps every slot to its human-readable label.
var slotDisplayNames = map[Slot]string{
	SlotHead:      "Helm",
	SlotShoulders: "Pauldrons",
	SlotChest:     "Chestguard",
	SlotWrists:    "Bracers",
	SlotHands:     "Gloves",
	SlotWaist:     "Belt",
	SlotLegs:      "Leggings",
	SlotFeet:      "Boots",
	SlotNeck:      "Amulet",
	SlotBack:      "Cloak",
	SlotRing1:     "Ring",
	SlotRing2:     "Ring",
	SlotTrinket1:  "Trinket",
	SlotTrinket2:  "Trinket",
	SlotMainHand:  "Blade",
	SlotOffHand:   "Buckler",
}

// DisplayName returns the item noun for the slot, or the slot id if unknown.
func (s Slot) DisplayName() string {
	if label, ok := slotDisplayNames[s]; ok {
		return label
	}
	return string(s)
}

// IsWeapon reports whether s is a hand slot.
func (s Slot) IsWeapon() bool {
	return s == SlotMainHand || s == SlotOffHand
}

// Equipment maps each slot to the equipped item. A missing key and a nil
// value both mean the slot is empty.
type Equipment map[Slot]*Item

// Clone returns a shallow copy: the map is new, the items are shared.
func (e Equipment) Clone() Equipment {
	out := make(Equipment, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// PrimaryTotals sums the primary stats of every equipped item.
func (e Equipment) PrimaryTotals() stats.PrimaryBlock {
	out := stats.PrimaryBlock{}
	for _, it := range e {
		if it == nil {
			continue
		}
		for k, v := range it.PrimaryStats {
			out[k] += v
		}
	}
	return out
}

// GearBonuses converts the secondary ratings of every equipped item into the
// flat bonuses consumed by stats.Derive.
func (e Equipment) GearBonuses() stats.GearBonuses {
	var g stats.GearBonuses
	for _, it := range e {
		if it == nil {
			continue
		}
		for k, v := range it.SecondaryStats {
			f := float64(v)
			switch k {
			case stats.AttackPower:
				g.AttackPower += f
			case stats.SpellPower:
				g.SpellPower += f
			case stats.CritChance:
				g.CritRating += f
			case stats.Haste:
				g.HasteRating += f
			case stats.HitRating:
				g.HitRating += f
			case stats.Armor:
				g.Armor += f
			case stats.Resistance:
				g.Resistance += f
			case stats.HealthRegen:
				g.HealthRegen += f
			case stats.ManaRegen:
				g.ManaRegen += f
			}
		}
	}
	return g
}
