package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/pkg/observability"
)

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_RecordValidation(t *testing.T) {
	provider, handler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: "iban-service"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewMetrics(provider, iban.DefaultRegistry())
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordValidation(ctx, iban.Valid, "NL", iban.Strict)
	m.RecordValidation(ctx, iban.Valid, "NL", iban.Strict)
	m.RecordValidation(ctx, iban.UnknownCountryCode, "", iban.Loose)

	body := scrape(t, handler)
	assert.Contains(t, body, "iban_validations_total")
	assert.Regexp(t, `iban_validations_total\{[^}]*country="NL"[^}]*outcome="Valid"[^}]*\} 2`, body)
	assert.Regexp(t, `iban_validations_total\{[^}]*country="none"[^}]*method="loose"[^}]*outcome="UnknownCountryCode"[^}]*\} 1`, body)
	assert.Contains(t, body, "iban_registry_countries")
}

func TestMetrics_WithoutRegistry(t *testing.T) {
	provider, handler, err := observability.InitMetrics(observability.MetricsConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, err = NewMetrics(provider, nil)
	require.NoError(t, err)
	assert.NotContains(t, scrape(t, handler), "iban_registry_countries")
}
