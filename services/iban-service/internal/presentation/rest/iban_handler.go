package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/iban/pkg/auth"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
	"github.com/bibbank/iban/services/iban-service/internal/application/usecase"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

const maxBodyBytes = 4 << 10

// IbanHandler serves the IBAN REST API under /v1.
type IbanHandler struct {
	validate      *usecase.ValidateIBAN
	getCountry    *usecase.GetCountry
	listCountries *usecase.ListCountries
	build         *usecase.BuildIBAN
	getValidation *usecase.GetValidation
	authEnabled   bool
	logger        *slog.Logger
}

// NewIbanHandler creates a new IbanHandler. When authEnabled is set every
// route expects claims from auth.HTTPMiddleware and checks scopes.
func NewIbanHandler(
	validate *usecase.ValidateIBAN,
	getCountry *usecase.GetCountry,
	listCountries *usecase.ListCountries,
	build *usecase.BuildIBAN,
	getValidation *usecase.GetValidation,
	authEnabled bool,
	logger *slog.Logger,
) *IbanHandler {
	return &IbanHandler{
		validate:      validate,
		getCountry:    getCountry,
		listCountries: listCountries,
		build:         build,
		getValidation: getValidation,
		authEnabled:   authEnabled,
		logger:        logger,
	}
}

type validateRequest struct {
	Value string `json:"value"`
}

type spanJSON struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

type countryJSON struct {
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Length          int       `json:"length"`
	BBANFormat      string    `json:"bban_format"`
	Structure       string    `json:"structure"`
	AllowsLowerCase bool      `json:"allows_lower_case"`
	SEPA            bool      `json:"sepa"`
	Bank            *spanJSON `json:"bank,omitempty"`
	Branch          *spanJSON `json:"branch,omitempty"`
}

type validateResponse struct {
	RecordID         string       `json:"record_id"`
	Value            string       `json:"value"`
	Outcome          string       `json:"outcome"`
	Valid            bool         `json:"valid"`
	Method           string       `json:"method"`
	Country          *countryJSON `json:"country,omitempty"`
	Formatted        string       `json:"formatted,omitempty"`
	BBAN             string       `json:"bban,omitempty"`
	BankIdentifier   string       `json:"bank_identifier,omitempty"`
	BranchIdentifier string       `json:"branch_identifier,omitempty"`
}

type listCountriesResponse struct {
	Countries []countryJSON `json:"countries"`
	Total     int           `json:"total"`
}

type buildRequest struct {
	CountryCode string `json:"country_code"`
	BBAN        string `json:"bban"`
}

type buildResponse struct {
	IBAN        string `json:"iban"`
	Formatted   string `json:"formatted"`
	CheckDigits string `json:"check_digits"`
}

type validationRecordJSON struct {
	ID          string    `json:"id"`
	MaskedValue string    `json:"masked_value"`
	Outcome     string    `json:"outcome"`
	CountryCode string    `json:"country_code,omitempty"`
	Method      string    `json:"method"`
	ClientID    string    `json:"client_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes registers the API routes on mux.
func (h *IbanHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/ibans/validate", h.Validate)
	mux.HandleFunc("POST /v1/ibans/build", h.Build)
	mux.HandleFunc("GET /v1/countries", h.ListCountries)
	mux.HandleFunc("GET /v1/countries/{code}", h.GetCountry)
	mux.HandleFunc("GET /v1/validations/{id}", h.GetValidation)
}

// Validate handles POST /v1/ibans/validate. Every outcome is a 200.
func (h *IbanHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.ScopeValidate) {
		return
	}

	var req validateRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.validate.Execute(r.Context(), dto.ValidateIBANRequest{
		Value:    req.Value,
		ClientID: clientID(r),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := validateResponse{
		RecordID:         result.RecordID.String(),
		Value:            result.Value,
		Outcome:          result.Outcome,
		Valid:            result.Valid,
		Method:           result.Method,
		Formatted:        result.Formatted,
		BBAN:             result.BBAN,
		BankIdentifier:   result.BankIdentifier,
		BranchIdentifier: result.BranchIdentifier,
	}
	if result.Country != nil {
		c := toCountryJSON(*result.Country)
		resp.Country = &c
	}
	writeJSON(w, http.StatusOK, resp)
}

// Build handles POST /v1/ibans/build.
func (h *IbanHandler) Build(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.ScopeValidate) {
		return
	}

	var req buildRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.build.Execute(r.Context(), dto.BuildIBANRequest{CountryCode: req.CountryCode, BBAN: req.BBAN})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, buildResponse{
		IBAN:        result.IBAN,
		Formatted:   result.Formatted,
		CheckDigits: result.CheckDigits,
	})
}

// ListCountries handles GET /v1/countries. ?sepa=true keeps SEPA members only.
func (h *IbanHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.ScopeRead, auth.ScopeValidate) {
		return
	}

	result, err := h.listCountries.Execute(r.Context(), dto.ListCountriesRequest{
		SEPAOnly: r.URL.Query().Get("sepa") == "true",
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	countries := make([]countryJSON, 0, len(result.Countries))
	for _, c := range result.Countries {
		countries = append(countries, toCountryJSON(c))
	}
	writeJSON(w, http.StatusOK, listCountriesResponse{Countries: countries, Total: result.Total})
}

// GetCountry handles GET /v1/countries/{code}.
func (h *IbanHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.ScopeRead, auth.ScopeValidate) {
		return
	}

	result, err := h.getCountry.Execute(r.Context(), r.PathValue("code"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountryJSON(result))
}

// GetValidation handles GET /v1/validations/{id}.
func (h *IbanHandler) GetValidation(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.ScopeRead) {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	result, err := h.getValidation.Execute(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, validationRecordJSON{
		ID:          result.ID.String(),
		MaskedValue: result.MaskedValue,
		Outcome:     result.Outcome,
		CountryCode: result.CountryCode,
		Method:      result.Method,
		ClientID:    result.ClientID,
		CreatedAt:   result.CreatedAt,
	})
}

func (h *IbanHandler) authorize(w http.ResponseWriter, r *http.Request, scopes ...string) bool {
	if !h.authEnabled {
		return true
	}
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return false
	}
	for _, scope := range scopes {
		if claims.HasScope(scope) {
			return true
		}
	}
	writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient scope"})
	return false
}

func (h *IbanHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}
	return true
}

func (h *IbanHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrCountryNotFound), errors.Is(err, port.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrAuditDisabled):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func clientID(r *http.Request) string {
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		return claims.ClientID
	}
	return ""
}

func toCountryJSON(c dto.CountryResponse) countryJSON {
	out := countryJSON{
		Code:            c.Code,
		Name:            c.Name,
		Length:          c.Length,
		BBANFormat:      c.BBANFormat,
		Structure:       c.Structure,
		AllowsLowerCase: c.AllowsLowerCase,
		SEPA:            c.SEPA,
	}
	if c.Bank != nil {
		out.Bank = &spanJSON{Offset: c.Bank.Offset, Length: c.Bank.Length}
	}
	if c.Branch != nil {
		out.Branch = &spanJSON{Offset: c.Branch.Offset, Length: c.Branch.Length}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
