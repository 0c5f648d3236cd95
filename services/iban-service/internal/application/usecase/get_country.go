package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
)

// GetCountry returns the rules of one country from the active registry.
type GetCountry struct {
	countries iban.CountryMap
}

// NewGetCountry creates a new GetCountry use case.
func NewGetCountry(validator *iban.Validator) *GetCountry {
	return &GetCountry{countries: validator.SupportedCountries()}
}

// Execute looks up code, ignoring case.
func (uc *GetCountry) Execute(_ context.Context, code string) (dto.CountryResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return dto.CountryResponse{}, fmt.Errorf("%w: country code must be two letters", ErrInvalidRequest)
	}

	info, ok := uc.countries.Get(code)
	if !ok {
		return dto.CountryResponse{}, fmt.Errorf("%w: %s", ErrCountryNotFound, code)
	}
	return toCountryResponse(info), nil
}
