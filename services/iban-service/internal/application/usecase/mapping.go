package usecase

import (
	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
	"github.com/bibbank/iban/services/iban-service/internal/domain/model"
)

func toCountryResponse(c *iban.CountryInfo) dto.CountryResponse {
	return dto.CountryResponse{
		Code:            c.Code(),
		Name:            c.Name(),
		Length:          c.Length(),
		BBANFormat:      c.BBAN().String(),
		Structure:       c.Structure().String(),
		AllowsLowerCase: c.AllowsLowerCase(),
		SEPA:            c.SEPA(),
		Bank:            toSpanResponse(c.Bank()),
		Branch:          toSpanResponse(c.Branch()),
	}
}

func toSpanResponse(s iban.Span) *dto.SpanResponse {
	if s.IsZero() {
		return nil
	}
	return &dto.SpanResponse{Offset: s.Offset, Length: s.Length}
}

func toValidationRecordResponse(rec model.ValidationRecord) dto.ValidationRecordResponse {
	return dto.ValidationRecordResponse{
		ID:          rec.ID(),
		MaskedValue: rec.MaskedValue(),
		Outcome:     rec.Outcome().String(),
		CountryCode: rec.CountryCode(),
		Method:      rec.Method().String(),
		ClientID:    rec.ClientID(),
		CreatedAt:   rec.CreatedAt(),
	}
}
