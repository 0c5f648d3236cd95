package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/iban/pkg/iban"
)

// ValidationRecord is the audit trail entry for one validation. It only ever
// holds the masked value; the full IBAN is never retained.
type ValidationRecord struct {
	id          uuid.UUID
	maskedValue string
	outcome     iban.Outcome
	countryCode string
	method      iban.ValidationMethod
	clientID    string
	createdAt   time.Time
}

// NewValidationRecord builds the audit record for result.
func NewValidationRecord(result iban.Result, method iban.ValidationMethod, clientID string, now time.Time) ValidationRecord {
	var country string
	if result.Country != nil {
		country = result.Country.Code()
	}
	return ValidationRecord{
		id:          uuid.New(),
		maskedValue: iban.Mask(result.Value),
		outcome:     result.Outcome,
		countryCode: country,
		method:      method,
		clientID:    clientID,
		createdAt:   now.UTC(),
	}
}

// ReconstructValidationRecord rebuilds a record from persisted values.
func ReconstructValidationRecord(
	id uuid.UUID,
	maskedValue, outcome, countryCode, method, clientID string,
	createdAt time.Time,
) (ValidationRecord, error) {
	if id == uuid.Nil {
		return ValidationRecord{}, errors.New("validation record id is required")
	}

	var o iban.Outcome
	if err := o.UnmarshalText([]byte(outcome)); err != nil {
		return ValidationRecord{}, fmt.Errorf("reconstruct validation record: %w", err)
	}
	m, err := iban.ParseValidationMethod(method)
	if err != nil {
		return ValidationRecord{}, fmt.Errorf("reconstruct validation record: %w", err)
	}

	return ValidationRecord{
		id:          id,
		maskedValue: maskedValue,
		outcome:     o,
		countryCode: countryCode,
		method:      m,
		clientID:    clientID,
		createdAt:   createdAt,
	}, nil
}

func (r ValidationRecord) ID() uuid.UUID                 { return r.id }
func (r ValidationRecord) MaskedValue() string           { return r.maskedValue }
func (r ValidationRecord) Outcome() iban.Outcome         { return r.outcome }
func (r ValidationRecord) CountryCode() string           { return r.countryCode }
func (r ValidationRecord) Method() iban.ValidationMethod { return r.method }
func (r ValidationRecord) ClientID() string              { return r.clientID }
func (r ValidationRecord) CreatedAt() time.Time          { return r.createdAt }
