package pg

import "time"

// Config describes the Postgres connection used for tenant rule overrides.
type Config struct {
	ConnectionString string        `env:"DATABASE_URL"`
	MaxOpenConns     int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10" validate:"min=1"`
	MaxIdleConns     int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5" validate:"min=0"`
	MaxConnIdleTime  time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime  time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"DB_RETRY_ATTEMPTS" envDefault:"3" validate:"min=1"`
	RetryInterval time.Duration `env:"DB_RETRY_INTERVAL" envDefault:"2s"`

	// Migrate applies pending schema migrations on startup.
	Migrate         bool   `env:"DB_MIGRATE" envDefault:"false"`
	MigrationsTable string `env:"DB_MIGRATIONS_TABLE" envDefault:"siteconfig_schema_migrations"`
}

// Enabled reports whether a connection string is configured.
func (c Config) Enabled() bool {
	return c.ConnectionString != ""
}

func (c Config) migrationsTable() string {
	if c.MigrationsTable == "" {
		return "siteconfig_schema_migrations"
	}
	return c.MigrationsTable
}
