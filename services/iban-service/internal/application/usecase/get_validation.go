package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

// ErrAuditDisabled is returned when no audit repository is configured.
var ErrAuditDisabled = errors.New("validation audit is disabled")

// GetValidation reads one audit record.
type GetValidation struct {
	repo port.ValidationRepository
}

// NewGetValidation creates a new GetValidation use case. repo may be nil.
func NewGetValidation(repo port.ValidationRepository) *GetValidation {
	return &GetValidation{repo: repo}
}

// Execute retrieves the audit record with the given id.
func (uc *GetValidation) Execute(ctx context.Context, id uuid.UUID) (dto.ValidationRecordResponse, error) {
	if uc.repo == nil {
		return dto.ValidationRecordResponse{}, ErrAuditDisabled
	}
	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ValidationRecordResponse{}, err
	}
	return toValidationRecordResponse(rec), nil
}
