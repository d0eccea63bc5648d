package offline

import (
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/inventory"
	"github.com/cory-johannsen/idlecore/internal/game/loot"
	"github.com/cory-johannsen/idlecore/internal/game/progression"
	"github.com/cory-johannsen/idlecore/internal/game/rng"
	"github.com/cory-johannsen/idlecore/internal/game/stats"
)

// AvgTicksPerKill is the number of combat ticks one offline kill is assumed
// to take.
const AvgTicksPerKill = 4

// Params describes one offline interval to simulate.
type Params struct {
	Level          int
	XP             int
	ZoneLevel      int
	OfflineSeconds float64
	ClassStats     []stats.Primary
	RNG            *rng.Random
	Config         *balance.Config
}

// Result is the simulated progress for one offline interval.
type Result struct {
	XPGained          int               `json:"xp_gained"`
	GoldGained        int               `json:"gold_gained"`
	LevelsGained      int               `json:"levels_gained"`
	NewLevel          int               `json:"new_level"`
	NewXP             int               `json:"new_xp"`
	MonstersKilled    int               `json:"monsters_killed"`
	QuestsCompleted   int               `json:"quests_completed"`
	Drops             []*inventory.Item `json:"drops"`
	SimulatedSeconds  int               `json:"simulated_seconds"`
	RawOfflineSeconds float64           `json:"raw_offline_seconds"`
	Efficiency        float64           `json:"efficiency"`
	CatchUpMultiplier float64           `json:"catch_up_multiplier"`
}

// Calculator replays offline time as a sequence of kills.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator returns a Calculator that reports to logger.
//
// Precondition: logger must not be nil.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		panic("offline.NewCalculator: logger must not be nil")
	}
	return &Calculator{logger: logger}
}

// KillBudget returns the number of kills that fit in simulatedSeconds at the
// configured combat tick rate.
func KillBudget(simulatedSeconds int, cfg *balance.Config) int {
	tick := float64(cfg.Combat.BaseTickIntervalMs) / 1000
	if tick <= 0 || simulatedSeconds <= 0 {
		return 0
	}
	return int(math.Floor(float64(simulatedSeconds) / (AvgTicksPerKill * tick)))
}

// Calculate simulates p.OfflineSeconds of farming in p.ZoneLevel.
//
// Each kill resolves completely before the next begins, drawing from p.RNG
// in this order: gold, then loot. XP involves no draws. The loop stops after
// the kill that takes the character to stats.MaxLevel, and XPGained counts
// only what that kill needed to reach the cap. A character already at the
// cap farms the full interval for gold and loot only.
//
// Precondition: p.RNG and p.Config must not be nil.
// Postcondition: identical Params (including RNG state) yield identical Results.
func (c *Calculator) Calculate(p Params) Result {
	res := Result{
		NewLevel:          p.Level,
		NewXP:             p.XP,
		RawOfflineSeconds: math.Max(p.OfflineSeconds, 0),
		Efficiency:        1,
		CatchUpMultiplier: CatchUpMultiplier(p.OfflineSeconds, p.Config),
	}
	if p.OfflineSeconds <= 0 {
		return res
	}

	dr := ApplyDiminishingReturns(p.OfflineSeconds, p.Config)
	res.SimulatedSeconds = dr.SimulatedSeconds
	res.Efficiency = dr.Multiplier

	cfg := p.Config
	kills := KillBudget(dr.SimulatedSeconds, cfg)
	baseXP := stats.MonsterXP(p.ZoneLevel, cfg)
	goldMin, goldMax := stats.MonsterGoldRange(p.ZoneLevel, cfg)
	maxQuality := inventory.Quality(cfg.Offline.MaxDropQualityOffline)
	startedAtCap := p.Level >= stats.MaxLevel

	level, xp := p.Level, p.XP
	for i := 0; i < kills; i++ {
		res.MonstersKilled++

		if !startedAtCap {
			gained := int(math.Floor(float64(progression.XPFromMonsterKill(level, p.ZoneLevel, baseXP, cfg)) *
				cfg.Offline.QuestBonusMultiplier))
			if gained > 0 {
				award := progression.AwardXP(progression.AwardParams{
					CurrentLevel: level,
					CurrentXP:    xp,
					XPGained:     gained,
					Config:       cfg,
				})
				if award.NewLevel >= stats.MaxLevel {
					gained = progression.TotalXPForLevel(stats.MaxLevel, cfg) -
						progression.TotalXPForLevel(level, cfg) - xp
				}
				if award.LevelsGained > 0 {
					c.logger.Debug("offline level up",
						zap.Int("kill", res.MonstersKilled),
						zap.Int("level", award.NewLevel),
					)
				}
				res.XPGained += gained
				level, xp = award.NewLevel, award.RemainingXP
			}
		}

		res.GoldGained += int(math.Floor(float64(p.RNG.NextInt(goldMin, goldMax)) * cfg.Offline.QuestGoldMultiplier))

		if it, ok := loot.RollLootDrop(loot.DropParams{
			MonsterLevel: p.ZoneLevel,
			PlayerLevel:  level,
			ClassStats:   p.ClassStats,
			MaxQuality:   maxQuality,
			RNG:          p.RNG,
			Config:       cfg,
		}); ok {
			res.Drops = append(res.Drops, it)
		}

		if !startedAtCap && level >= stats.MaxLevel {
			break
		}
	}

	res.NewLevel, res.NewXP = level, xp
	res.LevelsGained = level - p.Level
	res.QuestsCompleted = questsCompleted(res.MonstersKilled, cfg)

	c.logger.Info("offline progress calculated",
		zap.Float64("raw_seconds", p.OfflineSeconds),
		zap.Int("simulated_seconds", res.SimulatedSeconds),
		zap.Int("kills", res.MonstersKilled),
		zap.Int("xp_gained", res.XPGained),
		zap.Int("gold_gained", res.GoldGained),
		zap.Int("levels_gained", res.LevelsGained),
		zap.Int("drops", len(res.Drops)),
		zap.Int64("seed", p.RNG.Seed()),
	)
	return res
}

func questsCompleted(kills int, cfg *balance.Config) int {
	avg := float64(cfg.Quests.KillsPerQuestMin+cfg.Quests.KillsPerQuestMax) / 2
	if avg <= 0 {
		return 0
	}
	return int(math.Floor(float64(kills) / avg))
}
