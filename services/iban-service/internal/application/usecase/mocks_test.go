package usecase_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bibbank/iban/pkg/events"
	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/domain/model"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

// --- Mock implementations ---

type mockValidationRepo struct {
	mu       sync.Mutex
	saveErr  error
	saved    []model.ValidationRecord
	findFunc func(ctx context.Context, id uuid.UUID) (model.ValidationRecord, error)
}

func (m *mockValidationRepo) Save(_ context.Context, rec model.ValidationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, rec)
	return nil
}

func (m *mockValidationRepo) FindByID(ctx context.Context, id uuid.UUID) (model.ValidationRecord, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.saved {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return model.ValidationRecord{}, port.ErrNotFound
}

type mockEventPublisher struct {
	publishErr      error
	topics          []string
	publishedEvents []events.DomainEvent
}

func (m *mockEventPublisher) Publish(_ context.Context, topic string, evts ...events.DomainEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.topics = append(m.topics, topic)
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type metricCall struct {
	outcome iban.Outcome
	country string
	method  iban.ValidationMethod
}

type mockMetrics struct {
	calls []metricCall
}

func (m *mockMetrics) RecordValidation(_ context.Context, outcome iban.Outcome, country string, method iban.ValidationMethod) {
	m.calls = append(m.calls, metricCall{outcome, country, method})
}
