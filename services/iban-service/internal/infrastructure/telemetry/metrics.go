// Package telemetry holds the OpenTelemetry instruments of the IBAN service.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

const meterName = "github.com/bibbank/iban/services/iban-service"

var _ port.ValidationMetrics = (*Metrics)(nil)

// Metrics implements port.ValidationMetrics with otel instruments.
type Metrics struct {
	validations metric.Int64Counter
}

// NewMetrics registers the service instruments on provider. When registry is
// non-nil the number of countries it holds is exported as a gauge.
func NewMetrics(provider metric.MeterProvider, registry *iban.Registry) (*Metrics, error) {
	meter := provider.Meter(meterName)

	validations, err := meter.Int64Counter("iban_validations",
		metric.WithDescription("IBAN validations by outcome, country and method"),
	)
	if err != nil {
		return nil, fmt.Errorf("create validations counter: %w", err)
	}

	if registry != nil {
		_, err = meter.Int64ObservableGauge("iban_registry_countries",
			metric.WithDescription("Countries known to the active registry"),
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(int64(registry.Len()))
				return nil
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("create registry gauge: %w", err)
		}
	}

	return &Metrics{validations: validations}, nil
}

// RecordValidation counts one validation. An unresolved country is reported as "none".
func (m *Metrics) RecordValidation(ctx context.Context, outcome iban.Outcome, countryCode string, method iban.ValidationMethod) {
	if countryCode == "" {
		countryCode = "none"
	}
	m.validations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.String("country", countryCode),
		attribute.String("method", method.String()),
	))
}
