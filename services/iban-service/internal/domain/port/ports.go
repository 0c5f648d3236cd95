package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bibbank/iban/pkg/events"
	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/domain/model"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// ValidationRepository persists the validation audit trail.
type ValidationRepository interface {
	Save(ctx context.Context, rec model.ValidationRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (model.ValidationRecord, error)
}

// CountryRuleSource supplies country rules that override or extend the
// built-in registry.
type CountryRuleSource interface {
	// ListActive returns the definitions of every active rule.
	ListActive(ctx context.Context) ([]iban.CountryDefinition, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}

// ValidationMetrics records validation counters.
type ValidationMetrics interface {
	RecordValidation(ctx context.Context, outcome iban.Outcome, countryCode string, method iban.ValidationMethod)
}
