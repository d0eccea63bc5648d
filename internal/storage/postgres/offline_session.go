package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/idlecore/internal/game/offline"
)

// ErrSessionNotFound is returned when a session lookup yields no results.
var ErrSessionNotFound = errors.New("offline session not found")

// OfflineSession is one recorded offline-progress calculation. Seed,
// BalanceVersion and the inputs are enough to replay it.
type OfflineSession struct {
	ID             int64
	CharacterID    string
	Seed           int64
	BalanceVersion string
	StartLevel     int
	ZoneLevel      int
	Result         offline.Result
	CreatedAt      time.Time
}

// OfflineSessionRepository stores offline sessions.
type OfflineSessionRepository struct {
	db *pgxpool.Pool
}

// NewOfflineSessionRepository creates an OfflineSessionRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewOfflineSessionRepository(db *pgxpool.Pool) *OfflineSessionRepository {
	return &OfflineSessionRepository{db: db}
}

// Record inserts s and returns it with ID and CreatedAt set.
//
// Precondition: s.CharacterID must be non-empty.
// Postcondition: Returns the stored session or a non-nil error.
func (r *OfflineSessionRepository) Record(ctx context.Context, s OfflineSession) (*OfflineSession, error) {
	if s.CharacterID == "" {
		return nil, errors.New("recording offline session: character id must not be empty")
	}
	drops, err := json.Marshal(s.Result.Drops)
	if err != nil {
		return nil, fmt.Errorf("encoding drops: %w", err)
	}
	if s.Result.Drops == nil {
		drops = []byte("[]")
	}

	res := s.Result
	err = r.db.QueryRow(ctx, `
		INSERT INTO offline_sessions
			(character_id, seed, balance_version, start_level, zone_level,
			 raw_seconds, simulated_seconds, efficiency, monsters_killed,
			 xp_gained, gold_gained, levels_gained, new_level, new_xp,
			 quests_completed, catch_up_multiplier, drops)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING id, created_at`,
		s.CharacterID, s.Seed, s.BalanceVersion, s.StartLevel, s.ZoneLevel,
		res.RawOfflineSeconds, res.SimulatedSeconds, res.Efficiency, res.MonstersKilled,
		res.XPGained, res.GoldGained, res.LevelsGained, res.NewLevel, res.NewXP,
		res.QuestsCompleted, res.CatchUpMultiplier, drops,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting offline session: %w", err)
	}
	return &s, nil
}

const sessionColumns = `id, character_id, seed, balance_version, start_level, zone_level,
	raw_seconds, simulated_seconds, efficiency, monsters_killed,
	xp_gained, gold_gained, levels_gained, new_level, new_xp,
	quests_completed, catch_up_multiplier, drops, created_at`

// GetByID returns the session with the given id.
//
// Postcondition: Returns ErrSessionNotFound when no row matches.
func (r *OfflineSessionRepository) GetByID(ctx context.Context, id int64) (*OfflineSession, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM offline_sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting offline session %d: %w", id, err)
	}
	return s, nil
}

// ListByCharacter returns the character's sessions, oldest first.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *OfflineSessionRepository) ListByCharacter(ctx context.Context, characterID string) ([]*OfflineSession, error) {
	rows, err := r.db.Query(ctx, `SELECT `+sessionColumns+`
		FROM offline_sessions WHERE character_id = $1 ORDER BY created_at ASC, id ASC`,
		characterID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing offline sessions: %w", err)
	}
	defer rows.Close()

	var out []*OfflineSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning offline session: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating offline sessions: %w", err)
	}
	return out, nil
}

func scanSession(row pgx.Row) (*OfflineSession, error) {
	var (
		s     OfflineSession
		drops []byte
	)
	res := &s.Result
	err := row.Scan(
		&s.ID, &s.CharacterID, &s.Seed, &s.BalanceVersion, &s.StartLevel, &s.ZoneLevel,
		&res.RawOfflineSeconds, &res.SimulatedSeconds, &res.Efficiency, &res.MonstersKilled,
		&res.XPGained, &res.GoldGained, &res.LevelsGained, &res.NewLevel, &res.NewXP,
		&res.QuestsCompleted, &res.CatchUpMultiplier, &drops, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(drops, &res.Drops); err != nil {
		return nil, fmt.Errorf("decoding drops: %w", err)
	}
	if len(res.Drops) == 0 {
		res.Drops = nil
	}
	return &s, nil
}
