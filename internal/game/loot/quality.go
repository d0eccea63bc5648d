// Package loot rolls kill drops and generates concrete items from the gear
// tables of a balance.Config.
//
// Every random decision is drawn from the caller's *rng.Random in a fixed
// order, so a seed and a parameter set always produce the same item.
package loot

import (
	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/inventory"
	"github.com/cory-johannsen/idlecore/internal/game/rng"
)

// RollItemQuality draws a quality tier for a drop seen at level.
// A tier is excluded when level is below its configured minimum level or
// when its weight is not positive.
//
// Postcondition: returns QualityCommon without drawing when every tier is
// excluded.
func RollItemQuality(r *rng.Random, level int, cfg *balance.Config) inventory.Quality {
	tiers := make([]rng.Weighted[inventory.Quality], 0, len(balance.QualityOrder))
	for _, q := range balance.QualityOrder {
		w := cfg.Gear.QualityWeights[q]
		if w <= 0 {
			continue
		}
		if min, ok := cfg.Gear.QualityMinLevel[q]; ok && level < min {
			continue
		}
		tiers = append(tiers, rng.Weighted[inventory.Quality]{Item: inventory.Quality(q), Weight: w})
	}
	if len(tiers) == 0 {
		return inventory.QualityCommon
	}
	return rng.Choose(r, tiers)
}

// itemLevelBonus raises the item level of better drops above the monster level.
var itemLevelBonus = map[inventory.Quality]int{
	inventory.QualityCommon:    0,
	inventory.QualityUncommon:  1,
	inventory.QualityRare:      2,
	inventory.QualityEpic:      4,
	inventory.QualityLegendary: 6,
}

// ItemLevelBonus returns the item-level bonus for q.
func ItemLevelBonus(q inventory.Quality) int {
	return itemLevelBonus[q]
}
