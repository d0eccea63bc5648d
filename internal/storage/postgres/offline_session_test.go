package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/idlecore/internal/config"
	"github.com/cory-johannsen/idlecore/internal/game/balance"
	"github.com/cory-johannsen/idlecore/internal/game/offline"
	"github.com/cory-johannsen/idlecore/internal/game/rng"
	"github.com/cory-johannsen/idlecore/internal/game/stats"
	"github.com/cory-johannsen/idlecore/internal/storage/postgres"
	"github.com/cory-johannsen/idlecore/internal/testutil"
)

func uniqueCharacter(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func simulate(seed int64) offline.Result {
	return offline.NewCalculator(zap.NewNop()).Calculate(offline.Params{
		Level:          12,
		ZoneLevel:      12,
		OfflineSeconds: 1800,
		ClassStats:     []stats.Primary{stats.Agility},
		RNG:            rng.New(seed),
		Config:         balance.Default(),
	})
}

func TestOfflineSessionRepository_RecordAndGet(t *testing.T) {
	repo := postgres.NewOfflineSessionRepository(testutil.NewPool(t))
	ctx := context.Background()

	res := simulate(42)
	require.NotEmpty(t, res.Drops)
	stored, err := repo.Record(ctx, postgres.OfflineSession{
		CharacterID:    uniqueCharacter("rogue"),
		Seed:           42,
		BalanceVersion: "1.0.0",
		StartLevel:     12,
		ZoneLevel:      12,
		Result:         res,
	})
	require.NoError(t, err)
	assert.Greater(t, stored.ID, int64(0))
	assert.False(t, stored.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, res, got.Result)
	assert.Equal(t, int64(42), got.Seed)
}

func TestOfflineSessionRepository_GetMissing(t *testing.T) {
	repo := postgres.NewOfflineSessionRepository(testutil.NewPool(t))
	_, err := repo.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, postgres.ErrSessionNotFound)
}

func TestOfflineSessionRepository_ListByCharacter(t *testing.T) {
	repo := postgres.NewOfflineSessionRepository(testutil.NewPool(t))
	ctx := context.Background()
	char := uniqueCharacter("mage")

	for _, seed := range []int64{1, 2, 3} {
		_, err := repo.Record(ctx, postgres.OfflineSession{
			CharacterID: char, Seed: seed, BalanceVersion: "1.0.0",
			StartLevel: 12, ZoneLevel: 12, Result: simulate(seed),
		})
		require.NoError(t, err)
	}
	_, err := repo.Record(ctx, postgres.OfflineSession{
		CharacterID: uniqueCharacter("other"), BalanceVersion: "1.0.0", Result: offline.Result{},
	})
	require.NoError(t, err)

	list, err := repo.ListByCharacter(ctx, char)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{list[0].Seed, list[1].Seed, list[2].Seed})

	empty, err := repo.ListByCharacter(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestOfflineSessionRepository_RejectsEmptyCharacter(t *testing.T) {
	repo := postgres.NewOfflineSessionRepository(nil)
	_, err := repo.Record(context.Background(), postgres.OfflineSession{})
	assert.Error(t, err)
}

func TestPool_HealthAndRecord(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, pc.Config, zap.New(core))
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, pool.Health(ctx, 5*time.Second))
	stored, err := pool.OfflineSessions().Record(ctx, postgres.OfflineSession{
		CharacterID: uniqueCharacter("priest"), BalanceVersion: "1.0.0", Result: simulate(9),
	})
	require.NoError(t, err)
	assert.Greater(t, stored.ID, int64(0))
	assert.Equal(t, 1, logs.FilterMessage("ledger pool connected").Len())

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err = pool.Health(cancelled, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger health check")
	assert.Equal(t, 1, logs.FilterMessage("ledger health check failed").Len())
}

func TestNewPool_InvalidConfig(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "localhost", Port: 5432, User: "u", Name: "n", SSLMode: "sometimes"}
	_, err := postgres.NewPool(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing database config")
}

func TestNewPool_NilLoggerPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = postgres.NewPool(context.Background(), config.DatabaseConfig{}, nil)
	})
}
