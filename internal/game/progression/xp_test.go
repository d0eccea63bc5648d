package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/progression"
	"github.com/cory-johannsen/idlecore/internal/game/stats"
)

var cfg = balance.Default()

func TestCanGainXPFromMonster(t *testing.T) {
	assert.True(t, progression.CanGainXPFromMonster(10, 10, cfg))
	assert.True(t, progression.CanGainXPFromMonster(10, 3, cfg))
	assert.False(t, progression.CanGainXPFromMonster(10, 2, cfg))
	assert.False(t, progression.CanGainXPFromMonster(10, 15, cfg))
}

func TestXPFromMonsterKill(t *testing.T) {
	assert.Equal(t, 100, progression.XPFromMonsterKill(10, 10, 100, cfg))
	assert.Equal(t, 120, progression.XPFromMonsterKill(10, 13, 100, cfg))
	assert.Equal(t, 25, progression.XPFromMonsterKill(10, 4, 101, cfg))
	assert.Equal(t, 0, progression.XPFromMonsterKill(10, 1, 100, cfg))
}

func TestAwardXP_NoLevelUp(t *testing.T) {
	got := progression.AwardXP(progression.AwardParams{CurrentLevel: 1, CurrentXP: 0, XPGained: 100, Config: cfg})
	assert.Equal(t, progression.AwardResult{NewLevel: 1, RemainingXP: 100, TotalXPAbsorbed: 100}, got)
}

func TestAwardXP_SingleLevelUp(t *testing.T) {
	got := progression.AwardXP(progression.AwardParams{CurrentLevel: 1, CurrentXP: 100, XPGained: 100, Config: cfg})
	assert.Equal(t, 2, got.NewLevel)
	assert.Equal(t, 50, got.RemainingXP)
	assert.Equal(t, 1, got.LevelsGained)
	assert.Equal(t, 100, got.TotalXPAbsorbed)
}

func TestAwardXP_MultipleLevelUps(t *testing.T) {
	need := stats.XPToNextLevel(1, cfg) + stats.XPToNextLevel(2, cfg) + stats.XPToNextLevel(3, cfg)
	got := progression.AwardXP(progression.AwardParams{CurrentLevel: 1, XPGained: need + 7, Config: cfg})
	assert.Equal(t, 4, got.NewLevel)
	assert.Equal(t, 3, got.LevelsGained)
	assert.Equal(t, 7, got.RemainingXP)
}

func TestAwardXP_ClampsAtCap(t *testing.T) {
	got := progression.AwardXP(progression.AwardParams{CurrentLevel: 59, XPGained: 10_000_000, Config: cfg})
	assert.Equal(t, stats.MaxLevel, got.NewLevel)
	assert.Equal(t, 0, got.RemainingXP)
	assert.Equal(t, 1, got.LevelsGained)
}

func TestAwardXP_AtCapIsNoOp(t *testing.T) {
	for _, level := range []int{60, 61} {
		got := progression.AwardXP(progression.AwardParams{CurrentLevel: level, CurrentXP: 500, XPGained: 1000, Config: cfg})
		assert.Equal(t, progression.AwardResult{NewLevel: stats.MaxLevel}, got)
	}
}

func TestProperty_AwardXPConservesExperience(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, stats.MaxLevel-1).Draw(rt, "level")
		cur := rapid.IntRange(0, stats.XPToNextLevel(level, cfg)-1).Draw(rt, "xp")
		gained := rapid.IntRange(0, 2_000_000).Draw(rt, "gained")

		got := progression.AwardXP(progression.AwardParams{CurrentLevel: level, CurrentXP: cur, XPGained: gained, Config: cfg})

		require.GreaterOrEqual(rt, got.NewLevel, level)
		require.LessOrEqual(rt, got.NewLevel, stats.MaxLevel)
		require.Equal(rt, got.NewLevel-level, got.LevelsGained)
		if got.NewLevel == stats.MaxLevel {
			require.Equal(rt, 0, got.RemainingXP)
			return
		}
		require.Less(rt, got.RemainingXP, stats.XPToNextLevel(got.NewLevel, cfg))
		spent := progression.TotalXPForLevel(got.NewLevel, cfg) - progression.TotalXPForLevel(level, cfg)
		require.Equal(rt, cur+gained, spent+got.RemainingXP)
	})
}

func TestTotalXPForLevel(t *testing.T) {
	assert.Equal(t, 0, progression.TotalXPForLevel(1, cfg))
	assert.Equal(t, 150, progression.TotalXPForLevel(2, cfg))
}
