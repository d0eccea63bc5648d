package inventory

import (
	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/stats"
)

// Quality is an item rarity tier.
type Quality string

// Quality tiers, lowest first.
const (
	QualityCommon    Quality = balance.QualityCommon
	QualityUncommon  Quality = balance.QualityUncommon
	QualityRare      Quality = balance.QualityRare
	QualityEpic      Quality = balance.QualityEpic
	QualityLegendary Quality = balance.QualityLegendary
)

// Rank returns the position of q in the tier order, or -1 for an unknown tier.
func (q Quality) Rank() int {
	for i, name := range balance.QualityOrder {
		if string(q) == name {
			return i
		}
	}
	return -1
}

// AtMost returns the lower-ranked of q and limit. An empty or unknown limit
// leaves q unchanged.
func (q Quality) AtMost(limit Quality) Quality {
	if limit.Rank() < 0 || q.Rank() <= limit.Rank() {
		return q
	}
	return limit
}

// WeaponDamage is an inclusive damage range.
//
// Invariant: Min < Max.
type WeaponDamage struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Durability tracks item wear.
type Durability struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Item is a concrete generated item. Items are immutable once generated;
// the manager functions in this package move pointers between containers
// and never modify an Item.
type Item struct {
	ID             string                  `json:"id"`
	TemplateID     string                  `json:"template_id"`
	Name           string                  `json:"name"`
	Slot           Slot                    `json:"slot"`
	Quality        Quality                 `json:"quality"`
	ItemLevel      int                     `json:"item_level"`
	RequiredLevel  int                     `json:"required_level"`
	PrimaryStats   stats.PrimaryBlock      `json:"primary_stats"`
	SecondaryStats map[stats.Secondary]int `json:"secondary_stats"`
	WeaponDamage   *WeaponDamage           `json:"weapon_damage,omitempty"`
	WeaponSpeed    float64                 `json:"weapon_speed,omitempty"`
	Durability     Durability              `json:"durability"`
	SellValue      int                     `json:"sell_value"`
}

// IsWeapon reports whether the item occupies a hand slot.
func (it *Item) IsWeapon() bool {
	return it.Slot.IsWeapon()
}
