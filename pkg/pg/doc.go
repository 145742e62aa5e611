// Package pg connects siteconfigd to the Postgres database holding per-tenant
// rule table overrides.
//
// Connect opens a *sqlx.DB through the pgx database/sql driver, pinging and
// retrying until the database answers or the attempts run out. Healthcheck
// adapts the pool to a readiness check. Migrate applies the embedded goose
// migrations that create the validation_table_entries table read by
// ruletable.SQLStore.
package pg
