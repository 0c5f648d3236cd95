package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/iban/pkg/iban"
	pkgpostgres "github.com/bibbank/iban/pkg/postgres"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
)

// Compile-time interface check.
var _ port.CountryRuleSource = (*CountryRuleRepo)(nil)

// CountryRuleRepo reads and maintains the country_rules table.
type CountryRuleRepo struct {
	pool *pgxpool.Pool
}

// NewCountryRuleRepo creates a new CountryRuleRepo.
func NewCountryRuleRepo(pool *pgxpool.Pool) *CountryRuleRepo {
	return &CountryRuleRepo{pool: pool}
}

const countryRuleColumns = `code, name, length, bban_format, allows_lower_case, sepa,
	bank_offset, bank_length, branch_offset, branch_length`

// ListActive returns the definitions of every active rule ordered by code.
func (r *CountryRuleRepo) ListActive(ctx context.Context) ([]iban.CountryDefinition, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+countryRuleColumns+`
		FROM country_rules
		WHERE active
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("query country rules: %w", err)
	}

	defs, err := pgx.CollectRows(rows, scanCountryRule)
	if err != nil {
		return nil, fmt.Errorf("scan country rules: %w", err)
	}
	return defs, nil
}

// Upsert writes defs in one transaction, replacing existing rows with the same
// code and marking them active.
func (r *CountryRuleRepo) Upsert(ctx context.Context, defs []iban.CountryDefinition) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, def := range defs {
			if err := upsertCountryRule(ctx, tx, def); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertCountryRule(ctx context.Context, q pkgpostgres.Querier, def iban.CountryDefinition) error {
	_, err := q.Exec(ctx, `
		INSERT INTO country_rules (`+countryRuleColumns+`, active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, now())
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			length = EXCLUDED.length,
			bban_format = EXCLUDED.bban_format,
			allows_lower_case = EXCLUDED.allows_lower_case,
			sepa = EXCLUDED.sepa,
			bank_offset = EXCLUDED.bank_offset,
			bank_length = EXCLUDED.bank_length,
			branch_offset = EXCLUDED.branch_offset,
			branch_length = EXCLUDED.branch_length,
			active = TRUE,
			updated_at = now()
	`, def.Code, def.Name, def.Length, def.BBANFormat, def.AllowsLowerCase, def.SEPA,
		def.Bank.Offset, def.Bank.Length, def.Branch.Offset, def.Branch.Length)
	if err != nil {
		return fmt.Errorf("upsert country rule %s: %w", def.Code, err)
	}
	return nil
}

func scanCountryRule(row pgx.CollectableRow) (iban.CountryDefinition, error) {
	var def iban.CountryDefinition
	var length, bankOffset, bankLength, branchOffset, branchLen int16
	err := row.Scan(&def.Code, &def.Name, &length, &def.BBANFormat, &def.AllowsLowerCase, &def.SEPA,
		&bankOffset, &bankLength, &branchOffset, &branchLen)
	if err != nil {
		return iban.CountryDefinition{}, err
	}
	return countryDefinition(def, length, bankOffset, bankLength, branchOffset, branchLen), nil
}

// countryDefinition completes def with the numeric columns.
func countryDefinition(def iban.CountryDefinition, length, bankOffset, bankLength, branchOffset, branchLen int16) iban.CountryDefinition {
	def.Length = int(length)
	def.Bank = iban.Span{Offset: int(bankOffset), Length: int(bankLength)}
	def.Branch = iban.Span{Offset: int(branchOffset), Length: int(branchLen)}
	return def
}
