package main

import (
	"time"

	"github.com/dmitrymomot/siteconfig/pkg/pg"
)

// Config is read from the environment, and from .env when present.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string `env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`

	Addr            string        `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	MaxBodySize     int64         `env:"HTTP_MAX_BODY_SIZE" envDefault:"1048576" validate:"gt=0"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`

	TablesFile      string        `env:"TABLES_FILE"`
	TablesEnvPrefix string        `env:"TABLES_ENV_PREFIX" envDefault:"SITECONFIG_"`
	WatchTables     bool          `env:"TABLES_WATCH" envDefault:"true"`
	WatchDebounce   time.Duration `env:"TABLES_WATCH_DEBOUNCE" envDefault:"100ms"`

	TenantCacheTTL  time.Duration `env:"TENANT_CACHE_TTL" envDefault:"5m" validate:"gt=0"`
	TenantCacheSize int           `env:"TENANT_CACHE_SIZE" envDefault:"1000" validate:"min=1"`

	DB pg.Config
}
