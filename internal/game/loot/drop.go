package loot

import (
	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/inventory"
	"github.com/cory-johannsen/idlecore/internal/game/rng"
	"github.com/cory-johannsen/idlecore/internal/game/stats"
)

// DropParams describes one kill to roll loot for.
type DropParams struct {
	MonsterLevel int
	PlayerLevel  int
	ClassStats   []stats.Primary
	// MaxQuality caps the rolled quality. Empty means uncapped.
	MaxQuality inventory.Quality
	RNG        *rng.Random
	Config     *balance.Config
}

// RollLootDrop decides whether a kill drops an item and generates it.
//
// Draw order: drop chance, quality, slot, then the GenerateItem draws.
// Postcondition: returns (nil, false) when nothing drops; otherwise the
// item's quality does not exceed MaxQuality.
func RollLootDrop(p DropParams) (*inventory.Item, bool) {
	if !p.RNG.Chance(p.Config.Gear.DropChanceBase) {
		return nil, false
	}

	quality := RollItemQuality(p.RNG, p.PlayerLevel, p.Config).AtMost(p.MaxQuality)
	slot := inventory.AllSlots[p.RNG.NextInt(0, len(inventory.AllSlots)-1)]

	it := GenerateItem(GenerateParams{
		ItemLevel:  p.MonsterLevel + ItemLevelBonus(quality),
		Quality:    quality,
		Slot:       slot,
		ClassStats: p.ClassStats,
		RNG:        p.RNG,
		Config:     p.Config,
	})
	return &it, true
}
