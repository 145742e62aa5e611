package ruletable

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
)

// Table names stored in the table_name column of validation_table_entries.
const (
	TableReservedWords    = "reserved_words"
	TableGridColumns      = "grid_columns"
	TableSiteERPSystems   = "site_erp_systems"
	TableClientERPSystems = "client_erp_systems"
	TableSSOProviders     = "sso_providers"
	TableHRISSystems      = "hris_systems"
	TableAuthMethods      = "auth_methods"
)

const overridesQuery = `SELECT table_name, value FROM validation_table_entries WHERE tenant_id = $1 ORDER BY table_name, position`

type tableEntry struct {
	Table string `db:"table_name"`
	Value string `db:"value"`
}

// OverrideSource loads the per-tenant table overrides. Tables the tenant does
// not override must be left nil.
type OverrideSource interface {
	Overrides(ctx context.Context, tenantID string) (*Tables, error)
}

// SQLStore reads tenant overrides from the validation_table_entries table.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Overrides returns the tables the tenant overrides. A tenant with no rows gets
// an empty Tables, so every table falls back to the base provider. Rows for
// unknown table names are ignored.
func (s *SQLStore) Overrides(ctx context.Context, tenantID string) (*Tables, error) {
	var rows []tableEntry
	if err := s.db.SelectContext(ctx, &rows, overridesQuery, tenantID); err != nil {
		return nil, errors.Join(ErrTenantLookup, err)
	}

	t := &Tables{}
	for _, row := range rows {
		switch row.Table {
		case TableReservedWords:
			t.ReservedWords = append(t.ReservedWords, row.Value)
		case TableGridColumns:
			n, err := strconv.Atoi(row.Value)
			if err != nil {
				return nil, errors.Join(ErrTenantLookup, fmt.Errorf("grid column %q: %w", row.Value, err))
			}
			t.GridColumns = append(t.GridColumns, n)
		case TableSiteERPSystems:
			t.SiteERPSystems = append(t.SiteERPSystems, row.Value)
		case TableClientERPSystems:
			t.ClientERPSystems = append(t.ClientERPSystems, row.Value)
		case TableSSOProviders:
			t.SSOProviders = append(t.SSOProviders, row.Value)
		case TableHRISSystems:
			t.HRISSystems = append(t.HRISSystems, row.Value)
		case TableAuthMethods:
			t.AuthMethods = append(t.AuthMethods, row.Value)
		}
	}
	return t, nil
}
