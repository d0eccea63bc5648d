package balance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
)

const contentFile = "../../../content/balance.yaml"

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, balance.Default().Validate())
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := balance.Default()
	a.Gear.QualityWeights[balance.QualityCommon] = 0
	a.Talents.TierRequirements[1] = 99
	b := balance.Default()
	assert.Equal(t, 55.0, b.Gear.QualityWeights[balance.QualityCommon])
	assert.Equal(t, 5, b.Talents.TierRequirements[1])
}

func TestLoad_ContentFileMatchesDefault(t *testing.T) {
	cfg, err := balance.Load(contentFile)
	require.NoError(t, err)
	assert.Equal(t, balance.Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := balance.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading balance file")
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	data, err := os.ReadFile(contentFile)
	require.NoError(t, err)
	data = append(data, []byte("\nbogus_table: 3\n")...)
	_, err = balance.Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing balance config")
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := balance.Parse([]byte("xp: [unterminated"))
	require.Error(t, err)
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg := balance.Default()
	cfg.Combat.BaseTickIntervalMs = 0
	cfg.Gear.PrimaryStatSplit = 1.5
	cfg.Offline.Tier2Efficiency = 2
	cfg.Offline.MaxDropQualityOffline = "mythic"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "balance validation failed")
	assert.Contains(t, msg, "combat.base_tick_interval_ms")
	assert.Contains(t, msg, "gear.primary_stat_split")
	assert.Contains(t, msg, "offline.tier2_efficiency")
	assert.Contains(t, msg, `"mythic"`)
}

func TestValidate_MissingQualityTier(t *testing.T) {
	cfg := balance.Default()
	delete(cfg.Gear.QualityStatMultiplier, balance.QualityEpic)
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `quality_stat_multiplier missing "epic"`)
}

func TestValidate_ThresholdsMustDecrease(t *testing.T) {
	cfg := balance.Default()
	cfg.XP.LevelDiffThresholds.NormalAbove = 4
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly decreasing")
}

func TestValidate_TalentLevels(t *testing.T) {
	cfg := balance.Default()
	cfg.Talents.LastTalentLevel = 5
	require.Error(t, cfg.Validate())
}

func TestQualityOrder_CoversAllTiers(t *testing.T) {
	assert.Equal(t, []string{"common", "uncommon", "rare", "epic", "legendary"}, balance.QualityOrder)
}

func TestValidate_Professions(t *testing.T) {
	cfg := balance.Default()
	cfg.Professions.GatheringIntervalTicks = 0
	cfg.Professions.CraftTimeBaseMs = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "professions.gathering_interval_ticks")
	assert.Contains(t, err.Error(), "professions.craft_time_base_ms")
}
