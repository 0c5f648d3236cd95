package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/iban/pkg/auth"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
	"github.com/bibbank/iban/services/iban-service/internal/application/usecase"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

// IbanHandler implements the gRPC IbanService.
type IbanHandler struct {
	UnimplementedIbanServiceServer

	validate      *usecase.ValidateIBAN
	getCountry    *usecase.GetCountry
	listCountries *usecase.ListCountries
	build         *usecase.BuildIBAN
	getValidation *usecase.GetValidation

	// authEnabled turns on per-method scope checks.
	authEnabled bool
}

// NewIbanHandler creates a new gRPC IBAN handler.
func NewIbanHandler(
	validate *usecase.ValidateIBAN,
	getCountry *usecase.GetCountry,
	listCountries *usecase.ListCountries,
	build *usecase.BuildIBAN,
	getValidation *usecase.GetValidation,
	authEnabled bool,
) *IbanHandler {
	return &IbanHandler{
		validate:      validate,
		getCountry:    getCountry,
		listCountries: listCountries,
		build:         build,
		getValidation: getValidation,
		authEnabled:   authEnabled,
	}
}

// ValidateIbanRequest represents the gRPC request for validating a value.
type ValidateIbanRequest struct {
	Value string `json:"value"`
}

// ValidateIbanResponse carries the outcome. Invalid values are not errors.
type ValidateIbanResponse struct {
	RecordID         string          `json:"record_id"`
	Value            string          `json:"value"`
	Outcome          string          `json:"outcome"`
	Valid            bool            `json:"valid"`
	Method           string          `json:"method"`
	Country          *CountryMessage `json:"country,omitempty"`
	Formatted        string          `json:"formatted,omitempty"`
	Bban             string          `json:"bban,omitempty"`
	BankIdentifier   string          `json:"bank_identifier,omitempty"`
	BranchIdentifier string          `json:"branch_identifier,omitempty"`
}

// GetCountryRequest represents the gRPC request for one country's rules.
type GetCountryRequest struct {
	Code string `json:"code"`
}

// SpanMessage locates an identifier inside the BBAN.
type SpanMessage struct {
	Offset int32 `json:"offset"`
	Length int32 `json:"length"`
}

// CountryMessage describes one country.
type CountryMessage struct {
	Code            string       `json:"code"`
	Name            string       `json:"name"`
	Length          int32        `json:"length"`
	BbanFormat      string       `json:"bban_format"`
	Structure       string       `json:"structure"`
	AllowsLowerCase bool         `json:"allows_lower_case"`
	Sepa            bool         `json:"sepa"`
	Bank            *SpanMessage `json:"bank,omitempty"`
	Branch          *SpanMessage `json:"branch,omitempty"`
}

// ListCountriesRequest represents the gRPC request for listing countries.
type ListCountriesRequest struct {
	SepaOnly bool `json:"sepa_only"`
}

// ListCountriesResponse represents the gRPC response for listing countries.
type ListCountriesResponse struct {
	Countries  []*CountryMessage `json:"countries"`
	TotalCount int32             `json:"total_count"`
}

// BuildIbanRequest represents the gRPC request for assembling an IBAN.
type BuildIbanRequest struct {
	CountryCode string `json:"country_code"`
	Bban        string `json:"bban"`
}

// BuildIbanResponse represents the gRPC response for assembling an IBAN.
type BuildIbanResponse struct {
	Iban        string `json:"iban"`
	Formatted   string `json:"formatted"`
	CheckDigits string `json:"check_digits"`
}

// GetValidationRequest represents the gRPC request for one audit record.
type GetValidationRequest struct {
	ID string `json:"id"`
}

// ValidationRecordMessage is one audit record.
type ValidationRecordMessage struct {
	ID          string `json:"id"`
	MaskedValue string `json:"masked_value"`
	Outcome     string `json:"outcome"`
	CountryCode string `json:"country_code,omitempty"`
	Method      string `json:"method"`
	ClientID    string `json:"client_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ValidateIban handles the gRPC ValidateIban request.
func (h *IbanHandler) ValidateIban(ctx context.Context, req *ValidateIbanRequest) (*ValidateIbanResponse, error) {
	if err := h.authorize(ctx, auth.ScopeValidate); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.validate.Execute(ctx, dto.ValidateIBANRequest{
		Value:    req.Value,
		ClientID: clientID(ctx),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &ValidateIbanResponse{
		RecordID:         result.RecordID.String(),
		Value:            result.Value,
		Outcome:          result.Outcome,
		Valid:            result.Valid,
		Method:           result.Method,
		Formatted:        result.Formatted,
		Bban:             result.BBAN,
		BankIdentifier:   result.BankIdentifier,
		BranchIdentifier: result.BranchIdentifier,
	}
	if result.Country != nil {
		resp.Country = toCountryMessage(*result.Country)
	}
	return resp, nil
}

// GetCountry handles the gRPC GetCountry request.
func (h *IbanHandler) GetCountry(ctx context.Context, req *GetCountryRequest) (*CountryMessage, error) {
	if err := h.authorize(ctx, auth.ScopeRead, auth.ScopeValidate); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getCountry.Execute(ctx, req.Code)
	if err != nil {
		return nil, toStatus(err)
	}
	return toCountryMessage(result), nil
}

// ListCountries handles the gRPC ListCountries request.
func (h *IbanHandler) ListCountries(ctx context.Context, req *ListCountriesRequest) (*ListCountriesResponse, error) {
	if err := h.authorize(ctx, auth.ScopeRead, auth.ScopeValidate); err != nil {
		return nil, err
	}
	if req == nil {
		req = &ListCountriesRequest{}
	}

	result, err := h.listCountries.Execute(ctx, dto.ListCountriesRequest{SEPAOnly: req.SepaOnly})
	if err != nil {
		return nil, toStatus(err)
	}

	countries := make([]*CountryMessage, 0, len(result.Countries))
	for _, c := range result.Countries {
		countries = append(countries, toCountryMessage(c))
	}
	return &ListCountriesResponse{
		Countries:  countries,
		TotalCount: int32(result.Total),
	}, nil
}

// BuildIban handles the gRPC BuildIban request.
func (h *IbanHandler) BuildIban(ctx context.Context, req *BuildIbanRequest) (*BuildIbanResponse, error) {
	if err := h.authorize(ctx, auth.ScopeValidate); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.build.Execute(ctx, dto.BuildIBANRequest{
		CountryCode: req.CountryCode,
		BBAN:        req.Bban,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &BuildIbanResponse{
		Iban:        result.IBAN,
		Formatted:   result.Formatted,
		CheckDigits: result.CheckDigits,
	}, nil
}

// GetValidation handles the gRPC GetValidation request.
func (h *IbanHandler) GetValidation(ctx context.Context, req *GetValidationRequest) (*ValidationRecordMessage, error) {
	if err := h.authorize(ctx, auth.ScopeRead); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id: %v", err)
	}

	result, err := h.getValidation.Execute(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ValidationRecordMessage{
		ID:          result.ID.String(),
		MaskedValue: result.MaskedValue,
		Outcome:     result.Outcome,
		CountryCode: result.CountryCode,
		Method:      result.Method,
		ClientID:    result.ClientID,
		CreatedAt:   result.CreatedAt.Format(time.RFC3339Nano),
	}, nil
}

func (h *IbanHandler) authorize(ctx context.Context, scopes ...string) error {
	if !h.authEnabled {
		return nil
	}
	return auth.RequireScope(ctx, scopes...)
}

func clientID(ctx context.Context) string {
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		return claims.ClientID
	}
	return ""
}

// toStatus maps use case errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, usecase.ErrCountryNotFound), errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, usecase.ErrAuditDisabled):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toCountryMessage(c dto.CountryResponse) *CountryMessage {
	return &CountryMessage{
		Code:            c.Code,
		Name:            c.Name,
		Length:          int32(c.Length),
		BbanFormat:      c.BBANFormat,
		Structure:       c.Structure,
		AllowsLowerCase: c.AllowsLowerCase,
		Sepa:            c.SEPA,
		Bank:            toSpanMessage(c.Bank),
		Branch:          toSpanMessage(c.Branch),
	}
}

func toSpanMessage(s *dto.SpanResponse) *SpanMessage {
	if s == nil {
		return nil
	}
	return &SpanMessage{Offset: int32(s.Offset), Length: int32(s.Length)}
}
