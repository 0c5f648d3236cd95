package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	pkgpostgres "github.com/bibbank/iban/pkg/postgres"
	"github.com/bibbank/iban/services/iban-service/internal/domain/model"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

// Compile-time interface check.
var _ port.ValidationRepository = (*ValidationRepo)(nil)

// ValidationRepo stores validation audit records in iban_validations.
type ValidationRepo struct {
	db pkgpostgres.Querier
}

// NewValidationRepo creates a new ValidationRepo on a pool or transaction.
func NewValidationRepo(db pkgpostgres.Querier) *ValidationRepo {
	return &ValidationRepo{db: db}
}

// Save inserts rec. Records are immutable, so a duplicate id is an error.
func (r *ValidationRepo) Save(ctx context.Context, rec model.ValidationRecord) error {
	var country *string
	if code := rec.CountryCode(); code != "" {
		country = &code
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO iban_validations (id, masked_value, outcome, country_code, method, client_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID(), rec.MaskedValue(), rec.Outcome().String(), country,
		rec.Method().String(), rec.ClientID(), rec.CreatedAt())
	if err != nil {
		return fmt.Errorf("insert validation record: %w", err)
	}
	return nil
}

// FindByID loads one record, returning port.ErrNotFound when absent.
func (r *ValidationRepo) FindByID(ctx context.Context, id uuid.UUID) (model.ValidationRecord, error) {
	var (
		recID                             uuid.UUID
		masked, outcome, method, clientID string
		country                           *string
		createdAt                         time.Time
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, masked_value, outcome, country_code, method, client_id, created_at
		FROM iban_validations
		WHERE id = $1
	`, id).Scan(&recID, &masked, &outcome, &country, &method, &clientID, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ValidationRecord{}, port.ErrNotFound
	}
	if err != nil {
		return model.ValidationRecord{}, fmt.Errorf("query validation record: %w", err)
	}

	return reconstructRecord(recID, masked, outcome, country, method, clientID, createdAt)
}

func reconstructRecord(
	id uuid.UUID,
	masked, outcome string,
	country *string,
	method, clientID string,
	createdAt time.Time,
) (model.ValidationRecord, error) {
	var code string
	if country != nil {
		code = *country
	}
	return model.ReconstructValidationRecord(id, masked, outcome, code, method, clientID, createdAt.UTC())
}
