// Package offline compresses elapsed offline time into simulated progress:
// kills, XP, gold, quests and item drops, replayed deterministically from a
// single seeded generator.
package offline

import (
	"math"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
)

const secondsPerHour = 3600

// DiminishingResult is the outcome of ApplyDiminishingReturns.
type DiminishingResult struct {
	// SimulatedSeconds is the effective time after tier efficiencies, floored.
	SimulatedSeconds int `json:"simulated_seconds"`
	// Multiplier is SimulatedSeconds over the capped raw seconds.
	Multiplier float64 `json:"multiplier"`
}

// ApplyDiminishingReturns buckets rawSeconds into the configured efficiency
// tiers. Time beyond offline.max_offline_seconds contributes nothing.
//
// Postcondition: rawSeconds <= 0 yields {0, 1}; SimulatedSeconds never
// exceeds the capped raw time.
func ApplyDiminishingReturns(rawSeconds float64, cfg *balance.Config) DiminishingResult {
	if rawSeconds <= 0 {
		return DiminishingResult{Multiplier: 1}
	}
	o := cfg.Offline
	capped := math.Min(rawSeconds, float64(o.MaxOfflineSeconds))
	if capped <= 0 {
		return DiminishingResult{Multiplier: 1}
	}

	remaining := capped
	tier1 := math.Min(remaining, o.Tier1Hours*secondsPerHour)
	remaining -= tier1
	tier2 := math.Min(remaining, (o.Tier2Hours-o.Tier1Hours)*secondsPerHour)
	remaining -= tier2

	simulated := tier1*o.Tier1Efficiency + tier2*o.Tier2Efficiency + remaining*o.Tier3Efficiency
	return DiminishingResult{
		SimulatedSeconds: int(math.Floor(simulated)),
		Multiplier:       simulated / capped,
	}
}

// CatchUpMultiplier scales linearly from catch_up_min_multiplier to
// catch_up_max_multiplier over catch_up_scale_hours of raw offline time,
// rounded to one decimal place.
func CatchUpMultiplier(rawSeconds float64, cfg *balance.Config) float64 {
	o := cfg.Offline
	if rawSeconds <= 0 {
		return o.CatchUpMinMultiplier
	}
	hours := rawSeconds / secondsPerHour
	m := math.Min(o.CatchUpMaxMultiplier,
		o.CatchUpMinMultiplier+hours/o.CatchUpScaleHours*(o.CatchUpMaxMultiplier-o.CatchUpMinMultiplier))
	return math.Round(m*10) / 10
}
