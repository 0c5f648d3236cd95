package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/pkg/observability"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
	"github.com/bibbank/iban/services/iban-service/internal/application/usecase"
	"github.com/bibbank/iban/services/iban-service/internal/domain/event"
)

func fixedClock() time.Time {
	return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
}

func newValidateIBAN(t *testing.T, method iban.ValidationMethod) (*usecase.ValidateIBAN, *mockValidationRepo, *mockEventPublisher, *mockMetrics) {
	t.Helper()
	v, err := iban.NewValidator(&iban.Options{Registry: iban.DefaultRegistry(), Method: method})
	require.NoError(t, err)

	repo := &mockValidationRepo{}
	publisher := &mockEventPublisher{}
	metrics := &mockMetrics{}
	uc := usecase.NewValidateIBAN(v, observability.NopLogger(),
		usecase.WithAudit(repo),
		usecase.WithPublisher(publisher, ""),
		usecase.WithMetrics(metrics),
		usecase.WithClock(fixedClock),
	)
	return uc, repo, publisher, metrics
}

func TestValidateIBAN_Valid(t *testing.T) {
	uc, repo, publisher, metrics := newValidateIBAN(t, iban.Strict)

	resp, err := uc.Execute(context.Background(), dto.ValidateIBANRequest{
		Value:    "GB29 NWBK 6016 1331 9268 19",
		ClientID: "payments-api",
	})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Equal(t, "Valid", resp.Outcome)
	assert.Equal(t, "GB29NWBK60161331926819", resp.Value)
	assert.Equal(t, "GB29 NWBK 6016 1331 9268 19", resp.Formatted)
	assert.Equal(t, "NWBK60161331926819", resp.BBAN)
	assert.Equal(t, "NWBK", resp.BankIdentifier)
	assert.Equal(t, "601613", resp.BranchIdentifier)
	assert.Equal(t, "strict", resp.Method)
	require.NotNil(t, resp.Country)
	assert.Equal(t, "GB", resp.Country.Code)
	assert.Equal(t, 22, resp.Country.Length)
	assert.Equal(t, "4!a6!n8!n", resp.Country.BBANFormat)

	// Audit record keeps only the masked value.
	require.Len(t, repo.saved, 1)
	rec := repo.saved[0]
	assert.Equal(t, resp.RecordID, rec.ID())
	assert.Equal(t, "GB29XXXXXXXXXXXXXX6819", rec.MaskedValue())
	assert.Equal(t, "payments-api", rec.ClientID())
	assert.Equal(t, fixedClock(), rec.CreatedAt())

	// One event on the default topic.
	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, []string{usecase.TopicIBANValidations}, publisher.topics)
	evt, ok := publisher.publishedEvents[0].(event.IBANValidated)
	require.True(t, ok)
	assert.Equal(t, "Valid", evt.Outcome)
	assert.Equal(t, rec.ID().String(), evt.AggregateID())

	require.Len(t, metrics.calls, 1)
	assert.Equal(t, metricCall{iban.Valid, "GB", iban.Strict}, metrics.calls[0])
}

func TestValidateIBAN_OutcomesAreNotErrors(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantOutcome iban.Outcome
		wantCountry string
	}{
		{name: "empty", value: "", wantOutcome: iban.InvalidLength},
		{name: "bad check digits", value: "NL92ABNA0417164300", wantOutcome: iban.InvalidCheckDigits, wantCountry: "NL"},
		{name: "unknown country", value: "XY91ABNA0417164300", wantOutcome: iban.UnknownCountryCode},
		{name: "lowercase prefix", value: "nl91ABNA0417164300", wantOutcome: iban.IllegalCharacters},
		{name: "wrong length", value: "NL91ABNA041716430", wantOutcome: iban.InvalidLength, wantCountry: "NL"},
		{name: "bad structure", value: "NL91ABN10417164300", wantOutcome: iban.InvalidStructure, wantCountry: "NL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, publisher, metrics := newValidateIBAN(t, iban.Strict)

			resp, err := uc.Execute(context.Background(), dto.ValidateIBANRequest{Value: tt.value})
			require.NoError(t, err)

			assert.False(t, resp.Valid)
			assert.Equal(t, tt.wantOutcome.String(), resp.Outcome)
			assert.Empty(t, resp.Formatted)
			if tt.wantCountry == "" {
				assert.Nil(t, resp.Country)
			} else {
				require.NotNil(t, resp.Country)
				assert.Equal(t, tt.wantCountry, resp.Country.Code)
			}

			assert.Len(t, repo.saved, 1)
			assert.Len(t, publisher.publishedEvents, 1)
			require.Len(t, metrics.calls, 1)
			assert.Equal(t, tt.wantOutcome, metrics.calls[0].outcome)
		})
	}
}

func TestValidateIBAN_LooseMethod(t *testing.T) {
	strict, _, _, _ := newValidateIBAN(t, iban.Strict)
	loose, _, _, _ := newValidateIBAN(t, iban.Loose)
	value := "NL91abna0417164300"

	resp, err := strict.Execute(context.Background(), dto.ValidateIBANRequest{Value: value})
	require.NoError(t, err)
	assert.Equal(t, "InvalidStructure", resp.Outcome)

	resp, err = loose.Execute(context.Background(), dto.ValidateIBANRequest{Value: value})
	require.NoError(t, err)
	assert.Equal(t, "Valid", resp.Outcome)
	assert.Equal(t, "loose", resp.Method)
	assert.Equal(t, "NL91 ABNA 0417 1643 00", resp.Formatted)
}

func TestValidateIBAN_SideEffectFailuresDoNotChangeOutcome(t *testing.T) {
	v := iban.DefaultValidator()
	repo := &mockValidationRepo{saveErr: errors.New("db down")}
	publisher := &mockEventPublisher{publishErr: errors.New("kafka down")}
	uc := usecase.NewValidateIBAN(v, observability.NopLogger(),
		usecase.WithAudit(repo),
		usecase.WithPublisher(publisher, "custom.topic"),
	)

	resp, err := uc.Execute(context.Background(), dto.ValidateIBANRequest{Value: "DE89370400440532013000"})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "37040044", resp.BankIdentifier)
}

func TestValidateIBAN_NoSideEffectsConfigured(t *testing.T) {
	uc := usecase.NewValidateIBAN(iban.DefaultValidator(), observability.NopLogger())

	resp, err := uc.Execute(context.Background(), dto.ValidateIBANRequest{Value: "DE89370400440532013000"})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
}

func TestValidateIBAN_CustomTopic(t *testing.T) {
	publisher := &mockEventPublisher{}
	uc := usecase.NewValidateIBAN(iban.DefaultValidator(), observability.NopLogger(),
		usecase.WithPublisher(publisher, "audit.iban"),
	)

	_, err := uc.Execute(context.Background(), dto.ValidateIBANRequest{Value: "DE89370400440532013000"})
	require.NoError(t, err)
	assert.Equal(t, []string{"audit.iban"}, publisher.topics)
}

func TestValidateIBAN_OversizedInput(t *testing.T) {
	uc, repo, publisher, _ := newValidateIBAN(t, iban.Strict)

	_, err := uc.Execute(context.Background(), dto.ValidateIBANRequest{Value: strings.Repeat("A", usecase.MaxInputLength+1)})
	assert.ErrorIs(t, err, usecase.ErrInvalidRequest)
	assert.Empty(t, repo.saved)
	assert.Empty(t, publisher.publishedEvents)
}
