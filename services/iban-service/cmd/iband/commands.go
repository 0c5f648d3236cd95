package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bibbank/iban/pkg/iban"
	pgpkg "github.com/bibbank/iban/pkg/postgres"
	"github.com/bibbank/iban/pkg/tlsutil"
	"github.com/bibbank/iban/services/iban-service/internal/infrastructure/config"
	infraPostgres "github.com/bibbank/iban/services/iban-service/internal/infrastructure/postgres"
)

var errDatabaseDisabled = errors.New("command requires DB_ENABLED=true")

// seedCountries upserts every built-in country rule so operators can edit
// them in country_rules afterwards.
func seedCountries(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if !cfg.DB.Enabled {
		return errDatabaseDisabled
	}

	pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	defs := builtinDefinitions()
	if err := infraPostgres.NewCountryRuleRepo(pool).Upsert(ctx, defs); err != nil {
		return err
	}
	logger.Info("seeded country rules", "countries", len(defs))
	return nil
}

func builtinDefinitions() []iban.CountryDefinition {
	registry := iban.DefaultRegistry()
	defs := make([]iban.CountryDefinition, 0, registry.Len())
	for _, c := range registry.All() {
		defs = append(defs, c.Definition())
	}
	return defs
}

func migrateDown(cfg config.Config, logger *slog.Logger) error {
	if !cfg.DB.Enabled {
		return errDatabaseDisabled
	}
	if err := pgpkg.RunMigrationsDown(databaseConfig(cfg).DSN(), infraPostgres.Migrations, infraPostgres.MigrationsDir); err != nil {
		return err
	}
	logger.Info("migrations rolled back")
	return nil
}

func genDevCert(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: iband gen-dev-cert DIR")
	}
	if err := tlsutil.GenerateSelfSignedCert([]string{"localhost", "127.0.0.1"}, args[0]); err != nil {
		return fmt.Errorf("generate dev certificate: %w", err)
	}
	return nil
}
