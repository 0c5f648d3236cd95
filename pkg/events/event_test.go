package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("iban.validated", "rec-123", "Validation")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}
	if event.EventType() != "iban.validated" {
		t.Errorf("expected event type %q, got %q", "iban.validated", event.EventType())
	}
	if event.AggregateID() != "rec-123" {
		t.Errorf("expected aggregate ID %q, got %q", "rec-123", event.AggregateID())
	}
	if event.AggregateType() != "Validation" {
		t.Errorf("expected aggregate type %q, got %q", "Validation", event.AggregateType())
	}
	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}

	if other := NewBaseEvent("iban.validated", "rec-123", "Validation"); other.EventID() == event.EventID() {
		t.Error("event IDs must be unique")
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventEmbeddedJSON(t *testing.T) {
	type sample struct {
		BaseEvent
		Outcome string `json:"outcome"`
	}

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	evt := sample{BaseEvent: NewBaseEventAt("iban.validated", "rec-1", "Validation", at), Outcome: "Valid"}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for key, want := range map[string]string{
		"event_type":     "iban.validated",
		"aggregate_id":   "rec-1",
		"aggregate_type": "Validation",
		"occurred_at":    "2026-01-02T03:04:05Z",
		"outcome":        "Valid",
	} {
		if fields[key] != want {
			t.Errorf("%s = %v, want %q", key, fields[key], want)
		}
	}
}
