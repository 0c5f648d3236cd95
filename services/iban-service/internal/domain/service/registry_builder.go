package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

// RegistryBuilder assembles the registry the service validates against:
// the built-in SWIFT registry with externally managed rules merged on top.
type RegistryBuilder struct {
	base   *iban.Registry
	source port.CountryRuleSource
	logger *slog.Logger
}

// NewRegistryBuilder creates a RegistryBuilder. A nil source yields the base
// registry unchanged, a nil base means iban.DefaultRegistry().
func NewRegistryBuilder(base *iban.Registry, source port.CountryRuleSource, logger *slog.Logger) *RegistryBuilder {
	if base == nil {
		base = iban.DefaultRegistry()
	}
	return &RegistryBuilder{base: base, source: source, logger: logger}
}

// Build loads the active rules and merges them over the base registry.
// Rules that fail validation are skipped and logged; a source error aborts.
func (b *RegistryBuilder) Build(ctx context.Context) (*iban.Registry, error) {
	if b.source == nil {
		return b.base, nil
	}

	defs, err := b.source.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load country rules: %w", err)
	}

	overrides := make([]*iban.CountryInfo, 0, len(defs))
	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if _, dup := seen[def.Code]; dup {
			b.logger.WarnContext(ctx, "skipping duplicate country rule", "country", def.Code)
			continue
		}

		info, err := iban.NewCountryInfo(def)
		if err != nil {
			b.logger.WarnContext(ctx, "skipping invalid country rule", "country", def.Code, "error", err)
			continue
		}
		seen[def.Code] = struct{}{}
		overrides = append(overrides, info)
	}

	registry, err := iban.Merge(b.base, overrides...)
	if err != nil {
		return nil, fmt.Errorf("merge country rules: %w", err)
	}

	b.logger.InfoContext(ctx, "country registry built",
		"countries", registry.Len(),
		"overrides", len(overrides),
		"skipped", len(defs)-len(overrides),
	)
	return registry, nil
}
