// Package balance defines the immutable numeric balance configuration that
// drives every progression formula: XP curve, monster scaling, gear budgets,
// drop tables, profession pacing, talent costs, and offline diminishing
// returns.
//
// A Config is built once at startup (from YAML or Default) and passed by
// pointer into every core call. Nothing in the core mutates it and nothing
// reads it from package-level state.
package balance

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Quality tier names used as keys in the gear tables.
const (
	QualityCommon    = "common"
	QualityUncommon  = "uncommon"
	QualityRare      = "rare"
	QualityEpic      = "epic"
	QualityLegendary = "legendary"
)

// QualityOrder lists the quality tiers from lowest to highest.
var QualityOrder = []string{QualityCommon, QualityUncommon, QualityRare, QualityEpic, QualityLegendary}

// LevelDiffMods holds the XP multiplier for each level-difference band.
type LevelDiffMods struct {
	TooHigh float64 `yaml:"too_high"`
	Above3  float64 `yaml:"above3"`
	Normal  float64 `yaml:"normal"`
	Below5  float64 `yaml:"below5"`
	Below8  float64 `yaml:"below8"`
	Gray    float64 `yaml:"gray"`
}

// LevelDiffThresholds holds the lower bound of each band, expressed as
// monster level minus player level.
type LevelDiffThresholds struct {
	TooHighAbove        int `yaml:"too_high_above"`
	BonusAbove          int `yaml:"bonus_above"`
	NormalAbove         int `yaml:"normal_above"`
	ReducedAbove        int `yaml:"reduced_above"`
	GreatlyReducedAbove int `yaml:"greatly_reduced_above"`
}

// XPConfig holds the XP curve: xpToNextLevel = floor(linear*L + power*L^exponent).
type XPConfig struct {
	LinearCoeff         float64             `yaml:"linear_coeff"`
	PowerCoeff          float64             `yaml:"power_coeff"`
	PowerExponent       float64             `yaml:"power_exponent"`
	LevelDiffMods       LevelDiffMods       `yaml:"level_diff_mods"`
	LevelDiffThresholds LevelDiffThresholds `yaml:"level_diff_thresholds"`
}

// CombatConfig holds the live combat loop settings the offline replay mirrors.
type CombatConfig struct {
	BaseTickIntervalMs int `yaml:"base_tick_interval_ms"`
}

// StatsConfig holds the conversion rates from primary stats and gear ratings
// to derived combat stats.
type StatsConfig struct {
	HealthPerStamina           float64 `yaml:"health_per_stamina"`
	ManaPerIntellect           float64 `yaml:"mana_per_intellect"`
	AttackPowerPerStrength     float64 `yaml:"attack_power_per_strength"`
	AttackPowerPerAgility      float64 `yaml:"attack_power_per_agility"`
	SpellPowerPerIntellect     float64 `yaml:"spell_power_per_intellect"`
	AgiPerCritPercent          float64 `yaml:"agi_per_crit_percent"`
	CritRatingPerPercent       float64 `yaml:"crit_rating_per_percent"`
	HasteRatingPerPercent      float64 `yaml:"haste_rating_per_percent"`
	HitRatingPerPercent        float64 `yaml:"hit_rating_per_percent"`
	DodgeRatingPerPercent      float64 `yaml:"dodge_rating_per_percent"`
	ParryRatingPerPercent      float64 `yaml:"parry_rating_per_percent"`
	ArmorPerAgility            float64 `yaml:"armor_per_agility"`
	ArmorPerStamina            float64 `yaml:"armor_per_stamina"`
	ResistPerIntellect         float64 `yaml:"resist_per_intellect"`
	BaseDodgePercent           float64 `yaml:"base_dodge_percent"`
	BaseParryPercent           float64 `yaml:"base_parry_percent"`
	BaseCritPercent            float64 `yaml:"base_crit_percent"`
	HealthRegenPerSpirit       float64 `yaml:"health_regen_per_spirit"`
	ManaRegenPerSpirit         float64 `yaml:"mana_regen_per_spirit"`
	ManaRegenPerIntellect      float64 `yaml:"mana_regen_per_intellect"`
	OutOfCombatHealthRegenMult float64 `yaml:"out_of_combat_health_regen_multiplier"`
	OutOfCombatManaRegenMult   float64 `yaml:"out_of_combat_mana_regen_multiplier"`
}

// MonsterConfig holds monster scaling curves of the form base + L*linear + L^exponent*coeff.
type MonsterConfig struct {
	HPBase              float64 `yaml:"hp_base"`
	HPLinear            float64 `yaml:"hp_linear"`
	HPPowerExponent     float64 `yaml:"hp_power_exponent"`
	HPPowerCoeff        float64 `yaml:"hp_power_coeff"`
	DamageBase          float64 `yaml:"damage_base"`
	DamageLinear        float64 `yaml:"damage_linear"`
	DamagePowerExponent float64 `yaml:"damage_power_exponent"`
	DamagePowerCoeff    float64 `yaml:"damage_power_coeff"`
	XPBase              float64 `yaml:"xp_base"`
	XPLinear            float64 `yaml:"xp_linear"`
	XPPowerExponent     float64 `yaml:"xp_power_exponent"`
	XPPowerCoeff        float64 `yaml:"xp_power_coeff"`
	GoldMinBase         float64 `yaml:"gold_min_base"`
	GoldMinLinear       float64 `yaml:"gold_min_linear"`
	GoldMaxBase         float64 `yaml:"gold_max_base"`
	GoldMaxLinear       float64 `yaml:"gold_max_linear"`
}

// WeaponDamageFormula holds the weapon minimum-damage coefficients.
type WeaponDamageFormula struct {
	LevelCoeff float64 `yaml:"level_coeff"`
	LevelBase  float64 `yaml:"level_base"`
}

// GearConfig holds item budget, quality, and drop settings.
type GearConfig struct {
	BudgetLinearCoeff     float64             `yaml:"budget_linear_coeff"`
	BudgetPowerExponent   float64             `yaml:"budget_power_exponent"`
	BudgetPowerCoeff      float64             `yaml:"budget_power_coeff"`
	QualityStatMultiplier map[string]float64  `yaml:"quality_stat_multiplier"`
	QualityWeights        map[string]float64  `yaml:"quality_weights"`
	QualityMinLevel       map[string]int      `yaml:"quality_min_level"`
	SlotBudgetWeight      map[string]float64  `yaml:"slot_budget_weight"`
	PrimaryStatSplit      float64             `yaml:"primary_stat_split"`
	DropChanceBase        float64             `yaml:"drop_chance_base"`
	WeaponMinDamage       WeaponDamageFormula `yaml:"weapon_min_damage"`
	WeaponMaxDamageMult   float64             `yaml:"weapon_max_damage_multiplier"`
	DefaultWeaponSpeed    float64             `yaml:"default_weapon_speed"`
}

// OfflineConfig holds the diminishing-returns breakpoints and offline caps.
type OfflineConfig struct {
	MaxOfflineSeconds     int     `yaml:"max_offline_seconds"`
	Tier1Hours            float64 `yaml:"tier1_hours"`
	Tier1Efficiency       float64 `yaml:"tier1_efficiency"`
	Tier2Hours            float64 `yaml:"tier2_hours"`
	Tier2Efficiency       float64 `yaml:"tier2_efficiency"`
	Tier3Efficiency       float64 `yaml:"tier3_efficiency"`
	CatchUpMinMultiplier  float64 `yaml:"catch_up_min_multiplier"`
	CatchUpMaxMultiplier  float64 `yaml:"catch_up_max_multiplier"`
	CatchUpScaleHours     float64 `yaml:"catch_up_scale_hours"`
	MaxDropQualityOffline string  `yaml:"max_drop_quality_offline"`
	QuestBonusMultiplier  float64 `yaml:"quest_bonus_multiplier"`
	QuestGoldMultiplier   float64 `yaml:"quest_gold_multiplier"`
}

// QuestConfig holds quest pacing used by the offline estimate.
type QuestConfig struct {
	KillsPerQuestMin int `yaml:"kills_per_quest_min"`
	KillsPerQuestMax int `yaml:"kills_per_quest_max"`
}

// ProfessionsConfig holds gathering and crafting pacing.
type ProfessionsConfig struct {
	GatheringIntervalTicks int `yaml:"gathering_interval_ticks"`
	GatheringBaseYield     int `yaml:"gathering_base_yield"`
	CraftTimeBaseMs        int `yaml:"craft_time_base_ms"`
}

// TalentConfig holds talent point pacing and respec pricing.
type TalentConfig struct {
	FirstTalentLevel      int     `yaml:"first_talent_level"`
	LastTalentLevel       int     `yaml:"last_talent_level"`
	TotalPoints           int     `yaml:"total_points"`
	TierRequirements      []int   `yaml:"tier_requirements"`
	RespecBaseCost        float64 `yaml:"respec_base_cost"`
	RespecCostPerLevel    float64 `yaml:"respec_cost_per_level"`
	RespecCountMultiplier float64 `yaml:"respec_count_multiplier"`
}

// Config is the complete balance configuration.
type Config struct {
	Version     string            `yaml:"version"`
	XP          XPConfig          `yaml:"xp"`
	Combat      CombatConfig      `yaml:"combat"`
	Stats       StatsConfig       `yaml:"stats"`
	Monsters    MonsterConfig     `yaml:"monsters"`
	Gear        GearConfig        `yaml:"gear"`
	Offline     OfflineConfig     `yaml:"offline"`
	Quests      QuestConfig       `yaml:"quests"`
	Professions ProfessionsConfig `yaml:"professions"`
	Talents     TalentConfig      `yaml:"talents"`
}

// Load reads and validates a balance file. Unknown keys are rejected so a
// typo in a table name cannot silently fall back to zero.
//
// Precondition: path names a readable YAML file.
// Postcondition: returns a valid Config or a non-nil error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading balance file %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates balance YAML.
//
// Postcondition: returns a valid Config or a non-nil error.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing balance config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
