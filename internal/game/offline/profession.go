package offline

import "github.com/cory-johannsen/idlecore/internal/game/balance"

// ProfessionKind classifies a profession by how it progresses.
type ProfessionKind string

const (
	ProfessionGathering ProfessionKind = "gathering"
	ProfessionCrafting  ProfessionKind = "crafting"
	ProfessionSecondary ProfessionKind = "secondary"
)

// Profession is one profession a character has trained.
type Profession struct {
	ID   string
	Kind ProfessionKind
}

// ProfessionParams describes the profession state left running while offline.
type ProfessionParams struct {
	// OfflineSeconds is raw elapsed time; the same diminishing returns as
	// combat apply.
	OfflineSeconds float64
	Professions    []Profession
	// CraftingQueue is the number of queued crafts.
	CraftingQueue int
	Config        *balance.Config
}

// ProfessionResult is the profession progress made while offline.
type ProfessionResult struct {
	MaterialsGathered int `json:"materials_gathered"`
	CraftsCompleted   int `json:"crafts_completed"`
}

// ProfessionProgress estimates gathering yield and crafting queue progress.
//
// Each gathering profession gathers once per gathering interval
// (professions.gathering_interval_ticks combat ticks) for
// professions.gathering_base_yield materials. Crafts complete one per
// professions.craft_time_base_ms, up to the queue length. Other profession
// kinds make no offline progress.
//
// Precondition: p.Config must not be nil.
// Postcondition: OfflineSeconds <= 0 yields the zero result.
func ProfessionProgress(p ProfessionParams) ProfessionResult {
	if p.OfflineSeconds <= 0 {
		return ProfessionResult{}
	}
	cfg := p.Config
	simMs := int64(ApplyDiminishingReturns(p.OfflineSeconds, cfg).SimulatedSeconds) * 1000

	var res ProfessionResult
	gatherers := 0
	for _, prof := range p.Professions {
		if prof.Kind == ProfessionGathering {
			gatherers++
		}
	}
	intervalMs := int64(cfg.Professions.GatheringIntervalTicks) * int64(cfg.Combat.BaseTickIntervalMs)
	if gatherers > 0 && intervalMs > 0 {
		res.MaterialsGathered = int(simMs/intervalMs) * gatherers * cfg.Professions.GatheringBaseYield
	}

	if craftMs := int64(cfg.Professions.CraftTimeBaseMs); p.CraftingQueue > 0 && craftMs > 0 {
		res.CraftsCompleted = int(min(int64(p.CraftingQueue), simMs/craftMs))
	}
	return res
}
