package balance

// Default returns the shipped balance tables. content/balance.yaml carries the
// same values; Default exists so tests and tools can run without content files.
//
// Postcondition: the returned Config passes Validate and is owned by the caller.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		XP: XPConfig{
			LinearCoeff:   100,
			PowerCoeff:    50,
			PowerExponent: 1.65,
			LevelDiffMods: LevelDiffMods{
				TooHigh: 0,
				Above3:  1.2,
				Normal:  1,
				Below5:  0.5,
				Below8:  0.25,
				Gray:    0,
			},
			LevelDiffThresholds: LevelDiffThresholds{
				TooHighAbove:        5,
				BonusAbove:          3,
				NormalAbove:         -2,
				ReducedAbove:        -5,
				GreatlyReducedAbove: -7,
			},
		},
		Combat: CombatConfig{
			BaseTickIntervalMs: 250,
		},
		Stats: StatsConfig{
			HealthPerStamina:           10,
			ManaPerIntellect:           15,
			AttackPowerPerStrength:     2,
			AttackPowerPerAgility:      1,
			SpellPowerPerIntellect:     1,
			AgiPerCritPercent:          52,
			CritRatingPerPercent:       14,
			HasteRatingPerPercent:      10,
			HitRatingPerPercent:        10,
			DodgeRatingPerPercent:      12,
			ParryRatingPerPercent:      12,
			ArmorPerAgility:            2,
			ArmorPerStamina:            0,
			ResistPerIntellect:         0.5,
			BaseDodgePercent:           5,
			BaseParryPercent:           5,
			BaseCritPercent:            5,
			HealthRegenPerSpirit:       0.5,
			ManaRegenPerSpirit:         1,
			ManaRegenPerIntellect:      0.2,
			OutOfCombatHealthRegenMult: 3,
			OutOfCombatManaRegenMult:   3,
		},
		Monsters: MonsterConfig{
			HPBase:              40,
			HPLinear:            12,
			HPPowerExponent:     1.4,
			HPPowerCoeff:        3,
			DamageBase:          5,
			DamageLinear:        3,
			DamagePowerExponent: 1.2,
			DamagePowerCoeff:    0.5,
			XPBase:              40,
			XPLinear:            15,
			XPPowerExponent:     1.6,
			XPPowerCoeff:        2,
			GoldMinBase:         1,
			GoldMinLinear:       0.5,
			GoldMaxBase:         3,
			GoldMaxLinear:       1,
		},
		Gear: GearConfig{
			BudgetLinearCoeff:   1.5,
			BudgetPowerExponent: 1.2,
			BudgetPowerCoeff:    0.3,
			QualityStatMultiplier: map[string]float64{
				QualityCommon:    1.0,
				QualityUncommon:  1.3,
				QualityRare:      1.7,
				QualityEpic:      2.2,
				QualityLegendary: 3.0,
			},
			QualityWeights: map[string]float64{
				QualityCommon:    55,
				QualityUncommon:  30,
				QualityRare:      12,
				QualityEpic:      3,
				QualityLegendary: 0.5,
			},
			QualityMinLevel: map[string]int{
				QualityEpic:      40,
				QualityLegendary: 60,
			},
			SlotBudgetWeight: map[string]float64{
				"chest":     1.0,
				"legs":      1.0,
				"head":      0.85,
				"shoulders": 0.85,
				"hands":     0.7,
				"feet":      0.7,
				"waist":     0.7,
				"wrists":    0.55,
				"back":      0.55,
				"neck":      0.5,
				"ring1":     0.5,
				"ring2":     0.5,
				"trinket1":  0.45,
				"trinket2":  0.45,
				"main-hand": 1.2,
				"off-hand":  0.6,
			},
			PrimaryStatSplit: 0.7,
			DropChanceBase:   0.2,
			WeaponMinDamage: WeaponDamageFormula{
				LevelCoeff: 0.6,
				LevelBase:  2,
			},
			WeaponMaxDamageMult: 1.5,
			DefaultWeaponSpeed:  2.0,
		},
		Offline: OfflineConfig{
			MaxOfflineSeconds:     86400,
			Tier1Hours:            12,
			Tier1Efficiency:       1.0,
			Tier2Hours:            18,
			Tier2Efficiency:       0.75,
			Tier3Efficiency:       0.5,
			CatchUpMinMultiplier:  1.0,
			CatchUpMaxMultiplier:  2.0,
			CatchUpScaleHours:     24,
			MaxDropQualityOffline: QualityRare,
			QuestBonusMultiplier:  1.1,
			QuestGoldMultiplier:   1.3,
		},
		Quests: QuestConfig{
			KillsPerQuestMin: 8,
			KillsPerQuestMax: 12,
		},
		Professions: ProfessionsConfig{
			GatheringIntervalTicks: 12,
			GatheringBaseYield:     1,
			CraftTimeBaseMs:        3000,
		},
		Talents: TalentConfig{
			FirstTalentLevel:      10,
			LastTalentLevel:       60,
			TotalPoints:           51,
			TierRequirements:      []int{0, 5, 10, 15, 20},
			RespecBaseCost:        10,
			RespecCostPerLevel:    1,
			RespecCountMultiplier: 0.5,
		},
	}
}
