package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
	"github.com/bibbank/iban/services/iban-service/internal/domain/event"
	"github.com/bibbank/iban/services/iban-service/internal/domain/model"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

// ValidateIBAN classifies an input, then audits, publishes and counts the
// result. Audit and publish failures are logged and never change the outcome.
type ValidateIBAN struct {
	validator *iban.Validator
	repo      port.ValidationRepository
	publisher port.EventPublisher
	metrics   port.ValidationMetrics
	topic     string
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// ValidateIBANOption customizes a ValidateIBAN use case.
type ValidateIBANOption func(*ValidateIBAN)

// WithAudit persists a masked record of every validation.
func WithAudit(repo port.ValidationRepository) ValidateIBANOption {
	return func(uc *ValidateIBAN) { uc.repo = repo }
}

// WithPublisher publishes an iban.validated event to topic for every validation.
func WithPublisher(publisher port.EventPublisher, topic string) ValidateIBANOption {
	return func(uc *ValidateIBAN) {
		uc.publisher = publisher
		if topic != "" {
			uc.topic = topic
		}
	}
}

// WithMetrics counts validations by outcome and country.
func WithMetrics(metrics port.ValidationMetrics) ValidateIBANOption {
	return func(uc *ValidateIBAN) { uc.metrics = metrics }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ValidateIBANOption {
	return func(uc *ValidateIBAN) { uc.now = now }
}

// NewValidateIBAN creates a new ValidateIBAN use case.
func NewValidateIBAN(validator *iban.Validator, logger *slog.Logger, opts ...ValidateIBANOption) *ValidateIBAN {
	uc := &ValidateIBAN{
		validator: validator,
		topic:     TopicIBANValidations,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates req.Value. Only oversized input is rejected with an error.
func (uc *ValidateIBAN) Execute(ctx context.Context, req dto.ValidateIBANRequest) (dto.ValidateIBANResponse, error) {
	if len(req.Value) > MaxInputLength {
		return dto.ValidateIBANResponse{}, fmt.Errorf("%w: value exceeds %d bytes", ErrInvalidRequest, MaxInputLength)
	}

	ctx, span := uc.tracer.Start(ctx, "ValidateIBAN")
	defer span.End()

	result := uc.validator.Validate(req.Value)
	rec := model.NewValidationRecord(result, uc.validator.Method(), req.ClientID, uc.now())

	span.SetAttributes(
		attribute.String("iban.outcome", result.Outcome.String()),
		attribute.String("iban.country", rec.CountryCode()),
	)

	if uc.metrics != nil {
		uc.metrics.RecordValidation(ctx, result.Outcome, rec.CountryCode(), uc.validator.Method())
	}

	if uc.repo != nil {
		if err := uc.repo.Save(ctx, rec); err != nil {
			span.RecordError(err)
			uc.logger.WarnContext(ctx, "failed to save validation record", "record_id", rec.ID(), "error", err)
		}
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, uc.topic, event.NewIBANValidated(rec)); err != nil {
			span.RecordError(err)
			uc.logger.WarnContext(ctx, "failed to publish validation event", "record_id", rec.ID(), "error", err)
		}
	}

	uc.logger.DebugContext(ctx, "iban validated",
		"record_id", rec.ID(),
		"outcome", result.Outcome.String(),
		"country", rec.CountryCode(),
		"masked", rec.MaskedValue(),
	)

	return uc.toResponse(rec, result), nil
}

func (uc *ValidateIBAN) toResponse(rec model.ValidationRecord, result iban.Result) dto.ValidateIBANResponse {
	resp := dto.ValidateIBANResponse{
		RecordID: rec.ID(),
		Value:    result.Value,
		Outcome:  result.Outcome.String(),
		Valid:    result.IsValid(),
		Method:   rec.Method().String(),
	}
	if result.Country != nil {
		country := toCountryResponse(result.Country)
		resp.Country = &country
	}

	if result.IsValid() {
		if parsed, err := uc.validator.Parse(result.Value); err == nil {
			resp.Formatted = parsed.Print()
			resp.BBAN = parsed.BBAN()
			resp.BankIdentifier = parsed.BankIdentifier()
			resp.BranchIdentifier = parsed.BranchIdentifier()
		}
	}
	return resp
}
