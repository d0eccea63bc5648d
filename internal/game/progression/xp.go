// Package progression awards experience and resolves level-ups.
package progression

import (
	"math"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/stats"
)

// CanGainXPFromMonster reports whether a kill at this level difference
// yields any XP.
func CanGainXPFromMonster(playerLevel, monsterLevel int, cfg *balance.Config) bool {
	return stats.LevelDiffXPModifier(playerLevel, monsterLevel, cfg) > 0
}

// XPFromMonsterKill returns floor(baseXP * level-difference modifier).
func XPFromMonsterKill(playerLevel, monsterLevel, baseXP int, cfg *balance.Config) int {
	return int(math.Floor(float64(baseXP) * stats.LevelDiffXPModifier(playerLevel, monsterLevel, cfg)))
}

// AwardParams describes one XP award.
type AwardParams struct {
	CurrentLevel int
	CurrentXP    int
	XPGained     int
	Config       *balance.Config
}

// AwardResult is the outcome of AwardXP.
type AwardResult struct {
	NewLevel        int
	RemainingXP     int
	LevelsGained    int
	TotalXPAbsorbed int
}

// AwardXP adds XPGained to the character's pool and levels up as many times
// as the pool covers.
//
// Postcondition: NewLevel <= stats.MaxLevel; RemainingXP is 0 at
// stats.MaxLevel and otherwise below the requirement of NewLevel.
// A character already at or above the cap is returned unchanged at the cap
// with nothing absorbed.
func AwardXP(p AwardParams) AwardResult {
	if p.CurrentLevel >= stats.MaxLevel {
		return AwardResult{NewLevel: stats.MaxLevel}
	}

	level := p.CurrentLevel
	pool := p.CurrentXP + p.XPGained
	for level < stats.MaxLevel {
		need := stats.XPToNextLevel(level, p.Config)
		if need <= 0 || pool < need {
			break
		}
		pool -= need
		level++
	}
	if level >= stats.MaxLevel {
		pool = 0
	}

	return AwardResult{
		NewLevel:        level,
		RemainingXP:     pool,
		LevelsGained:    level - p.CurrentLevel,
		TotalXPAbsorbed: p.XPGained,
	}
}

// TotalXPForLevel returns the cumulative XP needed to reach level from level 1.
//
// Precondition: 1 <= level <= stats.MaxLevel.
func TotalXPForLevel(level int, cfg *balance.Config) int {
	total := 0
	for l := 1; l < level; l++ {
		total += stats.XPToNextLevel(l, cfg)
	}
	return total
}
