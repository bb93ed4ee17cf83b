// README: Carrier document lookups backed by PostgreSQL.
package compliance

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rotaclick/internal/types"
)

var ErrCarrierNotFound = errors.New("carrier not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// CarrierDocuments loads the regulatory document status of one carrier.
func (s *Store) CarrierDocuments(ctx context.Context, carrierID types.ID) (CarrierDocuments, error) {
	row := s.db.QueryRow(ctx, `
		SELECT rntrc_status, rntrc_expires_at, antt_registration_status,
		       civil_liability_insurance_valid_until
		FROM carriers
		WHERE id = $1`, string(carrierID),
	)

	var d CarrierDocuments
	err := row.Scan(&d.RNTRCStatus, &d.RNTRCExpiresAt, &d.ANTTRegistrationStatus, &d.InsuranceValidUntil)
	if errors.Is(err, pgx.ErrNoRows) {
		return CarrierDocuments{}, ErrCarrierNotFound
	}
	if err != nil {
		return CarrierDocuments{}, err
	}
	return d, nil
}
