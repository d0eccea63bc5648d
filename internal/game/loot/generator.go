package loot

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/inventory"
	"github.com/cory-johannsen/idlecore/internal/game/rng"
	"github.com/cory-johannsen/idlecore/internal/game/stats"
)

const (
	mainAffinity    = 1.0
	offAffinity     = 0.5
	staminaAffinity = 0.3
	fullDurability  = 100
)

var namePrefixes = map[inventory.Quality][]string{
	inventory.QualityCommon:    {"Worn", "Plain", "Patched", "Crude"},
	inventory.QualityUncommon:  {"Sturdy", "Reinforced", "Fine", "Solid"},
	inventory.QualityRare:      {"Masterwork", "Runed", "Superior", "Tempered"},
	inventory.QualityEpic:      {"Ancient", "Exalted", "Storm-touched", "Gilded"},
	inventory.QualityLegendary: {"Godforged", "Eternal", "Celestial", "Worldbreaker's"},
}

// secondaryPool is the set secondary ratings are drawn from. Its order is
// part of the deterministic output.
var secondaryPool = []stats.Secondary{stats.CritChance, stats.Haste, stats.HitRating, stats.Armor}

// GenerateParams describes an item to generate.
type GenerateParams struct {
	ItemLevel  int
	Quality    inventory.Quality
	Slot       inventory.Slot
	ClassStats []stats.Primary
	// WeaponSpeed overrides the configured default speed for hand slots.
	WeaponSpeed float64
	RNG         *rng.Random
	Config      *balance.Config
}

// GenerateItem builds a concrete item.
//
// Draw order: secondary stat count, secondary pool shuffle, name prefix, id.
// Postcondition: primary stats sum to floor(total*primaryStatSplit) and
// secondary stats sum to the rest of the budget; weapons have
// 1 <= Min < Max.
func GenerateItem(p GenerateParams) inventory.Item {
	cfg := p.Config
	qualityMult := qualityMultiplier(p.Quality, cfg)
	total := int(math.Floor(float64(stats.StatBudget(p.ItemLevel, cfg)) * qualityMult * slotWeight(p.Slot, cfg)))
	primaryBudget := int(math.Floor(float64(total) * cfg.Gear.PrimaryStatSplit))
	secondaryBudget := total - primaryBudget

	it := inventory.Item{
		TemplateID:     fmt.Sprintf("generated-%s-%d", p.Slot, p.ItemLevel),
		Slot:           p.Slot,
		Quality:        p.Quality,
		ItemLevel:      p.ItemLevel,
		RequiredLevel:  max(1, p.ItemLevel-3),
		PrimaryStats:   distributePrimary(primaryBudget, p.ClassStats),
		SecondaryStats: distributeSecondary(p.RNG, secondaryBudget),
		Durability:     inventory.Durability{Current: fullDurability, Max: fullDurability},
		SellValue:      int(math.Floor(float64(p.ItemLevel) * qualityMult * 2)),
	}

	prefixes := namePrefixes[p.Quality]
	if len(prefixes) == 0 {
		prefixes = namePrefixes[inventory.QualityCommon]
	}
	it.Name = prefixes[p.RNG.NextInt(0, len(prefixes)-1)] + " " + p.Slot.DisplayName()
	it.ID = uuid.Must(uuid.NewRandomFromReader(p.RNG)).String()

	if p.Slot.IsWeapon() {
		speed := p.WeaponSpeed
		if speed <= 0 {
			speed = cfg.Gear.DefaultWeaponSpeed
		}
		lo := max(1, stats.WeaponMinDamage(p.ItemLevel, qualityMult, speed, cfg))
		hi := max(lo+1, stats.WeaponMaxDamage(p.ItemLevel, qualityMult, speed, cfg))
		it.WeaponDamage = &inventory.WeaponDamage{Min: lo, Max: hi}
		it.WeaponSpeed = speed
	}
	return it
}

func qualityMultiplier(q inventory.Quality, cfg *balance.Config) float64 {
	if m, ok := cfg.Gear.QualityStatMultiplier[string(q)]; ok {
		return m
	}
	return 1
}

// slotWeight returns the budget share of a slot; slots missing from the
// table get the full budget.
func slotWeight(s inventory.Slot, cfg *balance.Config) float64 {
	if w, ok := cfg.Gear.SlotBudgetWeight[string(s)]; ok {
		return w
	}
	return 1
}

type affinity struct {
	stat   stats.Primary
	weight float64
}

// affinities returns the class affinity table, main stat first. An empty
// class list is treated as a strength class.
func affinities(classStats []stats.Primary) []affinity {
	if len(classStats) == 0 {
		classStats = []stats.Primary{stats.Strength}
	}
	out := make([]affinity, 0, len(classStats)+1)
	seen := make(map[stats.Primary]bool, len(classStats)+1)
	for i, s := range classStats {
		if seen[s] {
			continue
		}
		seen[s] = true
		w := offAffinity
		if i == 0 {
			w = mainAffinity
		}
		out = append(out, affinity{stat: s, weight: w})
	}
	if !seen[stats.Stamina] {
		out = append(out, affinity{stat: stats.Stamina, weight: staminaAffinity})
	}
	return out
}

// distributePrimary splits budget across the class affinities in proportion
// to their weights. The rounding remainder goes to the main stat, and stats
// whose share is zero are omitted.
func distributePrimary(budget int, classStats []stats.Primary) stats.PrimaryBlock {
	out := stats.PrimaryBlock{}
	if budget <= 0 {
		return out
	}
	aff := affinities(classStats)
	sum := 0.0
	for _, a := range aff {
		sum += a.weight
	}
	assigned := 0
	for _, a := range aff {
		share := int(math.Floor(float64(budget) * a.weight / sum))
		out[a.stat] = share
		assigned += share
	}
	out[aff[0].stat] += budget - assigned
	for k, v := range out {
		if v == 0 {
			delete(out, k)
		}
	}
	return out
}

// distributeSecondary draws one or two ratings from the secondary pool and
// splits budget between them, the first taking the larger half. It always
// consumes the count and shuffle draws, even for an empty budget.
func distributeSecondary(r *rng.Random, budget int) map[stats.Secondary]int {
	n := r.NextInt(1, 2)
	pool := make([]stats.Secondary, len(secondaryPool))
	copy(pool, secondaryPool)
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	out := make(map[stats.Secondary]int, n)
	first := int(math.Ceil(float64(budget) / float64(n)))
	for i := 0; i < n && i < len(pool); i++ {
		share := first
		if i > 0 {
			share = budget - first
		}
		if share > 0 {
			out[pool[i]] = share
		}
	}
	return out
}
