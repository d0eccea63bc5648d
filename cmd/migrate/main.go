// Package main provides a database migration runner for the offline
// session ledger.
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/idlecore/internal/config"
	"github.com/cory-johannsen/idlecore/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	source := flag.String("source", "file://migrations", "migration source URL")
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of steps (0 = all)")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile(*configPath)
	v.SetEnvPrefix("IDLE")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("reading config: %v", err)
	}

	var logCfg config.LoggingConfig
	if sub := v.Sub("logging"); sub != nil {
		if err := sub.Unmarshal(&logCfg); err != nil {
			log.Fatalf("parsing logging config: %v", err)
		}
	}
	if logCfg.Level == "" {
		logCfg = config.LoggingConfig{Level: "info", Format: "console"}
	}
	logger, err := observability.NewLogger(logCfg, "migrate")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	sub := v.Sub("database")
	if sub == nil {
		logger.Fatal("config has no database section", zap.String("config", *configPath))
	}
	var dbCfg config.DatabaseConfig
	if err := sub.Unmarshal(&dbCfg); err != nil {
		logger.Fatal("parsing database config", zap.Error(err))
	}

	m, err := migrate.New(*source, dbCfg.DSN())
	if err != nil {
		logger.Fatal("creating migrator", zap.Error(err))
	}
	defer m.Close()

	switch *direction {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	default:
		logger.Fatal("invalid direction: must be 'up' or 'down'", zap.String("direction", *direction))
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("migration failed", zap.Error(err))
	}

	version, dirty, _ := m.Version()
	logger.Info("migrations complete",
		zap.String("direction", *direction),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
		zap.Bool("changed", !errors.Is(err, migrate.ErrNoChange)),
		zap.Duration("elapsed", time.Since(start)),
	)
}
