package usecase

import (
	"context"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
)

// ListCountries returns the active registry sorted by country code.
type ListCountries struct {
	countries iban.CountryMap
}

// NewListCountries creates a new ListCountries use case.
func NewListCountries(validator *iban.Validator) *ListCountries {
	return &ListCountries{countries: validator.SupportedCountries()}
}

func (uc *ListCountries) Execute(_ context.Context, req dto.ListCountriesRequest) (dto.ListCountriesResponse, error) {
	codes := uc.countries.Codes()
	out := make([]dto.CountryResponse, 0, len(codes))
	for _, code := range codes {
		info, ok := uc.countries.Get(code)
		if !ok || (req.SEPAOnly && !info.SEPA()) {
			continue
		}
		out = append(out, toCountryResponse(info))
	}
	return dto.ListCountriesResponse{Countries: out, Total: len(out)}, nil
}
