// README: Snapshot store backed by PostgreSQL with a redis read-through cache.
package antt

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"rotaclick/internal/modules/compliance"
)

var ErrNoSnapshot = errors.New("no ANTT reference snapshot ingested yet")

const (
	latestCacheKey = "antt:snapshot:latest"
	latestCacheTTL = 10 * time.Minute
)

type Store struct {
	db    *pgxpool.Pool
	cache *redis.Client
}

// NewStore returns a Store. cache may be nil; lookups then always hit Postgres.
func NewStore(db *pgxpool.Pool, cache *redis.Client) *Store {
	return &Store{db: db, cache: cache}
}

// Latest returns the most recently ingested snapshot, preferring the redis
// cache. Cache failures fall through to Postgres silently.
func (s *Store) Latest(ctx context.Context) (*compliance.ReferenceSnapshot, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, latestCacheKey).Bytes(); err == nil {
			var snap compliance.ReferenceSnapshot
			if json.Unmarshal(raw, &snap) == nil {
				return &snap, nil
			}
		}
	}

	row := s.db.QueryRow(ctx, `
		SELECT source_url, version, effective_from, effective_to,
		       diesel_reference_price, floor_formula
		FROM antt_snapshots
		ORDER BY created_at DESC
		LIMIT 1`,
	)

	var snap compliance.ReferenceSnapshot
	var formula []byte
	err := row.Scan(&snap.SourceURL, &snap.Version, &snap.EffectiveFrom, &snap.EffectiveTo,
		&snap.DieselReferencePrice, &formula)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(formula, &snap.FloorFormula); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(&snap); err == nil {
			_ = s.cache.Set(ctx, latestCacheKey, raw, latestCacheTTL).Err()
		}
	}
	return &snap, nil
}

// InsertSnapshot appends a new snapshot version and drops the cached copy.
func (s *Store) InsertSnapshot(ctx context.Context, snap *compliance.ReferenceSnapshot) error {
	formula, err := json.Marshal(snap.FloorFormula)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO antt_snapshots (
			source_url, version, effective_from, effective_to,
			diesel_reference_price, floor_formula, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		snap.SourceURL, snap.Version, snap.EffectiveFrom, snap.EffectiveTo,
		snap.DieselReferencePrice, formula,
	)
	if err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, latestCacheKey).Err()
	}
	return nil
}

// LogRun records one ingestion attempt and fills in its generated ID.
func (s *Store) LogRun(ctx context.Context, run *IngestionRun) error {
	return s.db.QueryRow(ctx, `
		INSERT INTO antt_ingestion_runs (
			source, status, record_count, error, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		run.Source, run.Status, run.RecordCount, run.Error, run.StartedAt, run.FinishedAt,
	).Scan(&run.ID)
}

// ListRuns returns the most recent ingestion attempts, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]IngestionRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, source, status, record_count, error, started_at, finished_at
		FROM antt_ingestion_runs
		ORDER BY started_at DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []IngestionRun
	for rows.Next() {
		var run IngestionRun
		if err := rows.Scan(&run.ID, &run.Source, &run.Status, &run.RecordCount,
			&run.Error, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
