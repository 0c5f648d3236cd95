package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
)

// BuildIBAN computes the check digits for a country code and BBAN and returns
// the assembled, validated IBAN.
type BuildIBAN struct {
	validator *iban.Validator
}

// NewBuildIBAN creates a new BuildIBAN use case.
func NewBuildIBAN(validator *iban.Validator) *BuildIBAN {
	return &BuildIBAN{validator: validator}
}

// Execute builds the IBAN. The country code is case-insensitive. Unknown countries fail with ErrCountryNotFound,
// every other rejection with ErrInvalidRequest.
func (uc *BuildIBAN) Execute(_ context.Context, req dto.BuildIBANRequest) (dto.BuildIBANResponse, error) {
	if req.CountryCode == "" || req.BBAN == "" {
		return dto.BuildIBANResponse{}, fmt.Errorf("%w: country_code and bban are required", ErrInvalidRequest)
	}
	if len(req.BBAN) > MaxInputLength {
		return dto.BuildIBANResponse{}, fmt.Errorf("%w: bban exceeds %d bytes", ErrInvalidRequest, MaxInputLength)
	}

	country := strings.ToUpper(strings.TrimSpace(req.CountryCode))
	built, err := uc.validator.Build(country, req.BBAN)
	if err != nil {
		var perr *iban.ParseError
		if errors.As(err, &perr) && perr.Result.Outcome == iban.UnknownCountryCode {
			return dto.BuildIBANResponse{}, fmt.Errorf("%w: %s", ErrCountryNotFound, country)
		}
		return dto.BuildIBANResponse{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return dto.BuildIBANResponse{
		IBAN:        built.String(),
		Formatted:   built.Print(),
		CheckDigits: built.CheckDigits(),
	}, nil
}
