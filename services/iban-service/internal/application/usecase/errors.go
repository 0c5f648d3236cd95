package usecase

import "errors"

var (
	// ErrInvalidRequest marks input the use case refuses to process.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCountryNotFound is returned when a country code is not in the registry.
	ErrCountryNotFound = errors.New("country not found")
)

// MaxInputLength bounds the raw input accepted for validation, whitespace included.
const MaxInputLength = 256

const (
	TopicIBANValidations = "iban.validations"
	tracerName           = "github.com/bibbank/iban/services/iban-service/usecase"
)
