package pg

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations holds the schema of the tables ruletable.SQLStore reads.
var Migrations, _ = fs.Sub(embedded, "migrations")

// NewMigrator returns a goose provider for Migrations over db, recording
// applied versions in cfg.MigrationsTable.
func NewMigrator(db *sqlx.DB, cfg Config) (*goose.Provider, error) {
	store, err := database.NewStore(goose.DialectPostgres, cfg.migrationsTable())
	if err != nil {
		return nil, errors.Join(ErrFailedToApplyMigrations, err)
	}
	p, err := goose.NewProvider("", db.DB, Migrations, goose.WithStore(store))
	if err != nil {
		return nil, errors.Join(ErrFailedToApplyMigrations, err)
	}
	return p, nil
}

// Migrate applies every pending migration and logs each one applied.
func Migrate(ctx context.Context, db *sqlx.DB, cfg Config, log *slog.Logger) error {
	p, err := NewMigrator(db, cfg)
	if err != nil {
		return err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	for _, res := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", res.Source.Version),
			slog.String("file", res.Source.Path),
			slog.Duration("duration", res.Duration),
		)
	}
	return nil
}
