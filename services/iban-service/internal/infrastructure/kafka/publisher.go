package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/bibbank/iban/pkg/events"
	pkgkafka "github.com/bibbank/iban/pkg/kafka"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

var _ port.EventPublisher = (*Publisher)(nil)

// Publisher implements port.EventPublisher on a Kafka producer. Messages are
// keyed by aggregate id and carry the trace context of the publishing request.
type Publisher struct {
	producer *pkgkafka.Producer
	logger   *slog.Logger
	timeout  time.Duration
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithPublishTimeout bounds each Publish call. Zero means no bound beyond the caller's context.
func WithPublishTimeout(d time.Duration) PublisherOption {
	return func(p *Publisher) { p.timeout = d }
}

// NewPublisher creates a new Kafka-based event publisher.
func NewPublisher(producer *pkgkafka.Producer, logger *slog.Logger, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		producer: producer,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends domain events to the specified Kafka topic.
func (p *Publisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	messages := make([]pkgkafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		key := evt.AggregateID()
		headers := propagation.MapCarrier{
			"event_type":     evt.EventType(),
			"aggregate_type": evt.AggregateType(),
			"event_id":       evt.EventID(),
			"content_type":   "application/json",
		}
		otel.GetTextMapPropagator().Inject(ctx, headers)

		p.logger.DebugContext(ctx, "publishing event",
			"topic", topic,
			"event_type", evt.EventType(),
			"aggregate_id", key,
			"payload_size", len(payload),
		)

		messages = append(messages, pkgkafka.Message{
			Key:     []byte(key),
			Value:   payload,
			Headers: headers,
		})
	}

	if len(messages) == 0 {
		return nil
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.producer.Publish(ctx, topic, messages...); err != nil {
		return fmt.Errorf("publish events to topic %s: %w", topic, err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
