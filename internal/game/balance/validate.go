package balance

import (
	"fmt"
	"strings"
)

// Validate checks the configuration invariants the formulas rely on.
//
// Postcondition: returns nil if the configuration is usable, or one error
// listing every violation.
func (c *Config) Validate() error {
	var errs []string
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if c.XP.LinearCoeff < 0 || c.XP.PowerCoeff < 0 {
		add("xp coefficients must be >= 0")
	}
	if c.XP.LinearCoeff == 0 && c.XP.PowerCoeff == 0 {
		add("xp curve must not be flat zero")
	}
	t := c.XP.LevelDiffThresholds
	if !(t.TooHighAbove > t.BonusAbove && t.BonusAbove > t.NormalAbove &&
		t.NormalAbove > t.ReducedAbove && t.ReducedAbove > t.GreatlyReducedAbove) {
		add("xp.level_diff_thresholds must be strictly decreasing from too_high_above to greatly_reduced_above")
	}

	if c.Combat.BaseTickIntervalMs <= 0 {
		add("combat.base_tick_interval_ms must be > 0, got %d", c.Combat.BaseTickIntervalMs)
	}

	st := c.Stats
	for _, div := range []struct {
		name string
		v    float64
	}{
		{"agi_per_crit_percent", st.AgiPerCritPercent},
		{"crit_rating_per_percent", st.CritRatingPerPercent},
		{"haste_rating_per_percent", st.HasteRatingPerPercent},
		{"hit_rating_per_percent", st.HitRatingPerPercent},
		{"dodge_rating_per_percent", st.DodgeRatingPerPercent},
		{"parry_rating_per_percent", st.ParryRatingPerPercent},
	} {
		if div.v <= 0 {
			add("stats.%s must be > 0, got %g", div.name, div.v)
		}
	}

	for _, q := range QualityOrder {
		if _, ok := c.Gear.QualityStatMultiplier[q]; !ok {
			add("gear.quality_stat_multiplier missing %q", q)
		}
		if w, ok := c.Gear.QualityWeights[q]; !ok || w < 0 {
			add("gear.quality_weights[%q] must be present and >= 0", q)
		}
	}
	if c.Gear.PrimaryStatSplit < 0 || c.Gear.PrimaryStatSplit > 1 {
		add("gear.primary_stat_split must be in [0, 1], got %g", c.Gear.PrimaryStatSplit)
	}
	if c.Gear.DropChanceBase < 0 || c.Gear.DropChanceBase > 1 {
		add("gear.drop_chance_base must be in [0, 1], got %g", c.Gear.DropChanceBase)
	}
	if c.Gear.WeaponMaxDamageMult < 1 {
		add("gear.weapon_max_damage_multiplier must be >= 1, got %g", c.Gear.WeaponMaxDamageMult)
	}
	if c.Gear.DefaultWeaponSpeed <= 0 {
		add("gear.default_weapon_speed must be > 0")
	}

	o := c.Offline
	if o.MaxOfflineSeconds <= 0 {
		add("offline.max_offline_seconds must be > 0")
	}
	if !(o.Tier1Hours > 0 && o.Tier2Hours >= o.Tier1Hours) {
		add("offline tiers must satisfy 0 < tier1_hours <= tier2_hours")
	}
	for _, tier := range []struct {
		name string
		eff  float64
	}{
		{"tier1_efficiency", o.Tier1Efficiency},
		{"tier2_efficiency", o.Tier2Efficiency},
		{"tier3_efficiency", o.Tier3Efficiency},
	} {
		if tier.eff < 0 || tier.eff > 1 {
			add("offline.%s must be in [0, 1], got %g", tier.name, tier.eff)
		}
	}
	if o.MaxDropQualityOffline != "" {
		if _, ok := c.Gear.QualityStatMultiplier[o.MaxDropQualityOffline]; !ok {
			add("offline.max_drop_quality_offline %q is not a known quality", o.MaxDropQualityOffline)
		}
	}
	if o.CatchUpScaleHours <= 0 {
		add("offline.catch_up_scale_hours must be > 0")
	}

	if c.Quests.KillsPerQuestMin <= 0 || c.Quests.KillsPerQuestMax < c.Quests.KillsPerQuestMin {
		add("quests kills_per_quest range must satisfy 0 < min <= max")
	}

	if c.Professions.GatheringIntervalTicks <= 0 {
		add("professions.gathering_interval_ticks must be > 0, got %d", c.Professions.GatheringIntervalTicks)
	}
	if c.Professions.GatheringBaseYield < 0 {
		add("professions.gathering_base_yield must be >= 0, got %d", c.Professions.GatheringBaseYield)
	}
	if c.Professions.CraftTimeBaseMs <= 0 {
		add("professions.craft_time_base_ms must be > 0, got %d", c.Professions.CraftTimeBaseMs)
	}

	if c.Talents.LastTalentLevel < c.Talents.FirstTalentLevel {
		add("talents.last_talent_level must be >= first_talent_level")
	}
	if c.Talents.RespecBaseCost < 0 || c.Talents.RespecCostPerLevel < 0 || c.Talents.RespecCountMultiplier < 0 {
		add("talents respec coefficients must be >= 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("balance validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
