package dto

import (
	"time"

	"github.com/google/uuid"
)

// ValidateIBANRequest is the input for the ValidateIBAN use case.
type ValidateIBANRequest struct {
	Value    string
	ClientID string
}

// ValidateIBANResponse is the output of the ValidateIBAN use case. Outcomes
// other than "Valid" are reported here, not as errors.
type ValidateIBANResponse struct {
	RecordID         uuid.UUID
	Value            string
	Outcome          string
	Valid            bool
	Method           string
	Country          *CountryResponse
	Formatted        string
	BBAN             string
	BankIdentifier   string
	BranchIdentifier string
}

// SpanResponse locates an identifier inside the BBAN.
type SpanResponse struct {
	Offset int
	Length int
}

// CountryResponse describes the rules of one country.
type CountryResponse struct {
	Code            string
	Name            string
	Length          int
	BBANFormat      string
	Structure       string
	AllowsLowerCase bool
	SEPA            bool
	Bank            *SpanResponse
	Branch          *SpanResponse
}

// ListCountriesRequest filters the ListCountries use case.
type ListCountriesRequest struct {
	SEPAOnly bool
}

// ListCountriesResponse is the output of the ListCountries use case.
type ListCountriesResponse struct {
	Countries []CountryResponse
	Total     int
}

// BuildIBANRequest is the input for the BuildIBAN use case.
type BuildIBANRequest struct {
	CountryCode string
	BBAN        string
}

// BuildIBANResponse is the output of the BuildIBAN use case.
type BuildIBANResponse struct {
	IBAN        string
	Formatted   string
	CheckDigits string
}

// ValidationRecordResponse is one audit entry.
type ValidationRecordResponse struct {
	ID          uuid.UUID
	MaskedValue string
	Outcome     string
	CountryCode string
	Method      string
	ClientID    string
	CreatedAt   time.Time
}
