// Package main runs one offline-progress simulation and prints the outcome.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/idlecore/internal/config"
	"github.com/cory-johannsen/idlecore/internal/game/ability"
	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/inventory"
	"github.com/cory-johannsen/idlecore/internal/game/offline"
	"github.com/cory-johannsen/idlecore/internal/game/rng"
	"github.com/cory-johannsen/idlecore/internal/game/stats"
	"github.com/cory-johannsen/idlecore/internal/game/talent"
	"github.com/cory-johannsen/idlecore/internal/observability"
	"github.com/cory-johannsen/idlecore/internal/scripting"
	"github.com/cory-johannsen/idlecore/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	characterID := flag.String("character", "", "character id used when recording the session")
	level := flag.Int("level", 1, "character level when going offline")
	xp := flag.Int("xp", 0, "XP into the current level")
	zone := flag.Int("zone", 0, "zone level farmed while offline (default: character level)")
	hours := flag.Float64("hours", 8, "hours spent offline")
	seed := flag.Int64("seed", 0, "RNG seed (default: random)")
	class := flag.String("class", "str", "comma-separated class affinity stats, main stat first")
	gathering := flag.String("gathering", "", "comma-separated gathering professions left running")
	craftQueue := flag.Int("craft-queue", 0, "crafts queued when going offline")
	priority := flag.String("priority", "", "priority list to preview the opening ability with")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	record := flag.Bool("record", false, "record the session in the database")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging, "offlinesim")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bal := balance.Default()
	if cfg.Simulation.BalanceFile != "" {
		bal, err = balance.Load(cfg.Simulation.BalanceFile)
		if err != nil {
			logger.Fatal("loading balance", zap.Error(err))
		}
	}

	if *seed == 0 {
		*seed, err = rng.NewSeed()
		if err != nil {
			logger.Fatal("generating seed", zap.Error(err))
		}
	}
	if *zone == 0 {
		*zone = *level
	}
	classStats := parseClass(*class)

	calc := offline.NewCalculator(logger)
	res := calc.Calculate(offline.Params{
		Level:          *level,
		XP:             *xp,
		ZoneLevel:      *zone,
		OfflineSeconds: *hours * 3600,
		ClassStats:     classStats,
		RNG:            rng.New(*seed),
		Config:         bal,
	})

	profs := offline.ProfessionProgress(offline.ProfessionParams{
		OfflineSeconds: *hours * 3600,
		Professions:    parseGathering(*gathering),
		CraftingQueue:  *craftQueue,
		Config:         bal,
	})

	intake := inventory.TakeLoot(inventory.Equipment{}, inventory.NewInventory(cfg.Simulation.InventorySlots), res.Drops,
		inventory.IntakePolicy{
			AutoEquip:      true,
			AutoSellCommon: true,
			ClassStats:     classStats,
			PlayerLevel:    res.NewLevel,
		})

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		out := struct {
			offline.Result
			Professions offline.ProfessionResult `json:"professions"`
		}{res, profs}
		if err := enc.Encode(out); err != nil {
			logger.Fatal("encoding result", zap.Error(err))
		}
	} else {
		printSummary(res, intake, bal, classStats)
		fmt.Fprintf(os.Stdout, "professions: %d materials gathered, %d crafts completed\n",
			profs.MaterialsGathered, profs.CraftsCompleted)
	}

	if cfg.Simulation.TalentsDir != "" {
		trees, err := talent.LoadTrees(cfg.Simulation.TalentsDir, bal)
		if err != nil {
			logger.Fatal("loading talents", zap.Error(err))
		}
		fmt.Fprintf(os.Stdout, "talent points at level %d: %d across %d trees\n",
			res.NewLevel, talent.PointsForLevel(res.NewLevel, bal), len(trees))
	}

	if *priority != "" {
		opener, err := previewOpener(cfg.Simulation, *priority, logger)
		if err != nil {
			logger.Fatal("previewing priority list", zap.Error(err))
		}
		fmt.Fprintf(os.Stdout, "opening ability (%s): %s\n", *priority, opener)
	}

	if *record {
		if err := recordSession(cfg.Database, logger, *characterID, *seed, bal.Version, *level, *zone, res); err != nil {
			logger.Fatal("recording session", zap.Error(err))
		}
		logger.Info("session recorded", zap.String("character", *characterID))
	}

	logger.Info("offlinesim done", zap.Duration("elapsed", time.Since(start)))
}

func parseClass(s string) []stats.Primary {
	var out []stats.Primary
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, stats.Primary(p))
		}
	}
	return out
}

func printSummary(res offline.Result, intake inventory.IntakeResult, bal *balance.Config, classStats []stats.Primary) {
	fmt.Fprintf(os.Stdout, "offline %.1fh simulated as %ds (efficiency %.0f%%, catch-up x%.1f)\n",
		res.RawOfflineSeconds/3600, res.SimulatedSeconds, res.Efficiency*100, res.CatchUpMultiplier)
	fmt.Fprintf(os.Stdout, "kills %d  quests %d  xp %d  gold %d\n",
		res.MonstersKilled, res.QuestsCompleted, res.XPGained, res.GoldGained+intake.Gold)
	fmt.Fprintf(os.Stdout, "level %d -> %d (+%d), %d xp into level\n",
		res.NewLevel-res.LevelsGained, res.NewLevel, res.LevelsGained, res.NewXP)
	fmt.Fprintf(os.Stdout, "drops %d: equipped %d, bagged %d, sold %d, lost %d\n",
		len(res.Drops), len(intake.Equipped), len(intake.Stored), len(intake.Sold), len(intake.Lost))
	for _, slot := range inventory.AllSlots {
		if it := intake.Equipment[slot]; it != nil {
			fmt.Fprintf(os.Stdout, "  %-9s %-28s [%s ilvl %d]\n", slot, it.Name, it.Quality, it.ItemLevel)
		}
	}

	d := stats.Derive(intake.Equipment.PrimaryTotals(), stats.ClassBases{}, intake.Equipment.GearBonuses(), bal)
	fmt.Fprintf(os.Stdout, "gear (%s): attack power %.0f, crit %.1f%%, armor %.0f, health %.0f\n",
		strings.Join(statNames(classStats), "/"), d.AttackPower, d.CriticalStrike, d.Armor, d.MaxHealth)
}

func parseGathering(s string) []offline.Profession {
	var out []offline.Profession
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, offline.Profession{ID: id, Kind: offline.ProfessionGathering})
		}
	}
	return out
}

func statNames(ps []stats.Primary) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

// previewOpener picks the ability the named list would open a fight with,
// asking the class's oracle script about buffs and cooldowns.
func previewOpener(sim config.SimulationConfig, name string, logger *zap.Logger) (string, error) {
	lists, err := ability.LoadPriorities(sim.PrioritiesDir)
	if err != nil {
		return "", err
	}
	list, ok := lists[name]
	if !ok {
		return "", fmt.Errorf("priority list %q not found", name)
	}

	scripts := scripting.NewManager(logger)
	defer scripts.Close()
	var oracle ability.ConditionOracle = ability.PermissiveOracle{}
	if list.Class != "" {
		dir := filepath.Join(sim.ScriptsDir, list.Class)
		if _, err := os.Stat(dir); err == nil {
			if err := scripts.LoadScope(list.Class, dir, sim.ScriptInstructionLimit); err != nil {
				return "", err
			}
			lo := ability.NewLuaOracle(scripts, list.Class)
			lo.Observe(ability.Snapshot{})
			oracle = lo
		}
	}

	opener, ok := ability.NewSelector(oracle).Select(list.Entries,
		ability.CombatantState{Resource: 0, MaxResource: 100, HP: 1, MaxHP: 1},
		ability.TargetState{HP: 1, MaxHP: 1},
		nil,
	)
	if !ok {
		return "(none)", nil
	}
	return opener, nil
}

func recordSession(dbCfg config.DatabaseConfig, logger *zap.Logger, characterID string, seed int64, version string, level, zone int, res offline.Result) error {
	if !dbCfg.Enabled {
		return errors.New("database.enabled is false")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbCfg, logger)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()
	if err := pool.Health(ctx, 5*time.Second); err != nil {
		return err
	}

	_, err = pool.OfflineSessions().Record(ctx, postgres.OfflineSession{
		CharacterID:    characterID,
		Seed:           seed,
		BalanceVersion: version,
		StartLevel:     level,
		ZoneLevel:      zone,
		Result:         res,
	})
	return err
}
