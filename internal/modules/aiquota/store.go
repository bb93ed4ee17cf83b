package aiquota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"rotaclick/internal/types"
)

// Store handles ai_summary_quota persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Consume atomically checks the monthly quota and deducts one summary.
// It resets the counter to DefaultAllowance when last_reset_month is behind
// the current month. Returns ErrQuotaExhausted when 0 rows are updated (quota
// exhausted or carrier absent).
func (s *Store) Consume(ctx context.Context, carrierID types.ID) error {
	month := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE ai_summary_quota SET
			summaries_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE summaries_remaining - 1 END,
			last_reset_month = $1
		WHERE carrier_id = $3 AND (last_reset_month < $1 OR summaries_remaining > 0)
	`, month, DefaultAllowance, string(carrierID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// Refund adds one summary back to the carrier's current-month counter. A row
// whose counter has already rolled into a new month is left alone.
func (s *Store) Refund(ctx context.Context, carrierID types.ID) error {
	_, err := s.db.Exec(ctx, `
		UPDATE ai_summary_quota
		SET summaries_remaining = summaries_remaining + 1
		WHERE carrier_id = $1 AND last_reset_month = $2
	`, string(carrierID), time.Now().Format("2006-01"))
	return err
}

// EnsureCarrier inserts a quota row for the carrier with the default
// allowance. If the row already exists the insert is silently skipped.
func (s *Store) EnsureCarrier(ctx context.Context, carrierID types.ID) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_summary_quota (carrier_id, summaries_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (carrier_id) DO NOTHING
	`, string(carrierID), DefaultAllowance, time.Now().Format("2006-01"))
	return err
}
