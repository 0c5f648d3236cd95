package rest

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/bibbank/iban/pkg/auth"
)

// RouterConfig collects the handlers served on the HTTP port.
type RouterConfig struct {
	Health  *HealthHandler
	API     *IbanHandler
	Metrics http.Handler

	// Validator protects /v1 routes when non-nil. Probes and /metrics stay open.
	Validator auth.TokenValidator

	// RateLimit caps /v1 traffic when non-nil.
	RateLimit *rate.Limiter

	// Logger enables request logging when non-nil.
	Logger *slog.Logger
}

// NewRouter builds the HTTP handler for the service.
func NewRouter(cfg RouterConfig) http.Handler {
	root := http.NewServeMux()

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(root)
	}
	if cfg.Metrics != nil {
		root.Handle("GET /metrics", cfg.Metrics)
	}

	if cfg.API != nil {
		api := http.NewServeMux()
		cfg.API.RegisterRoutes(api)

		var h http.Handler = api
		if cfg.Validator != nil {
			h = auth.HTTPMiddleware(cfg.Validator)(h)
		}
		if cfg.RateLimit != nil {
			h = RateLimitMiddleware(cfg.RateLimit)(h)
		}
		root.Handle("/v1/", h)
	}

	if cfg.Logger != nil {
		return LoggingMiddleware(cfg.Logger)(root)
	}
	return root
}
