package aiquota

import (
	"context"

	"rotaclick/internal/types"
)

// Service gates the AI quote-summary feature by a monthly per-carrier quota.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Consume deducts one summary from the carrier's monthly allowance.
// If the carrier row does not exist yet it is initialised and the unit is
// immediately consumed. Returns ErrQuotaExhausted when the allowance for the
// current month is used up.
func (s *Service) Consume(ctx context.Context, carrierID types.ID) error {
	err := s.store.Consume(ctx, carrierID)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureCarrier(ctx, carrierID); initErr != nil {
		return initErr
	}
	return s.store.Consume(ctx, carrierID)
}

// Refund returns one summary to the carrier's allowance. Called when a
// consumed unit never produced a summary, so failed calls don't count.
func (s *Service) Refund(ctx context.Context, carrierID types.ID) error {
	return s.store.Refund(ctx, carrierID)
}
