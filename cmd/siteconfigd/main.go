// Command siteconfigd serves the site and client configuration validators
// over HTTP, with hot-reloaded rule tables and optional per-tenant overrides
// from Postgres.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/siteconfig/pkg/config"
	"github.com/dmitrymomot/siteconfig/pkg/httpapi"
	"github.com/dmitrymomot/siteconfig/pkg/logger"
	"github.com/dmitrymomot/siteconfig/pkg/pg"
	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
)

const serviceName = "siteconfigd"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	log, err := newLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	tables, err := ruletable.Load(cfg.TablesFile, cfg.TablesEnvPrefix)
	if err != nil {
		return fmt.Errorf("load rule tables: %w", err)
	}
	base := ruletable.NewReloadable(tables)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.TablesFile != "" && cfg.WatchTables {
		w := ruletable.NewWatcher(cfg.TablesFile, base,
			ruletable.WithWatchLogger(log.With(logger.Component("ruletable"))),
			ruletable.WithDebounce(cfg.WatchDebounce),
			ruletable.WithEnvPrefix(cfg.TablesEnvPrefix),
		)
		g.Go(func() error { return w.Watch(ctx) })
	}

	var (
		source ruletable.OverrideSource
		checks []httpapi.ReadinessCheck
	)
	if cfg.DB.Enabled() {
		db, err := pg.Connect(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.DB.Migrate {
			if err := pg.Migrate(ctx, db, cfg.DB, log.With(logger.Component("migrations"))); err != nil {
				return err
			}
		}
		source = ruletable.NewSQLStore(db)
		checks = append(checks, pg.Healthcheck(db))
		log.InfoContext(ctx, "tenant rule overrides enabled")
	}

	registry := ruletable.NewTenantRegistry(base, source,
		ruletable.WithTTL(cfg.TenantCacheTTL),
		ruletable.WithCacheSize(cfg.TenantCacheSize),
		ruletable.WithRegistryLogger(log.With(logger.Component("tenants"))),
	)

	opts := []httpapi.HandlerOption{
		httpapi.WithLogger(log),
		httpapi.WithMaxBodySize(cfg.MaxBodySize),
		httpapi.WithReadinessChecks(checks...),
	}
	if cfg.MetricsEnabled {
		opts = append(opts, httpapi.WithMetrics(httpapi.NewMetrics()))
	}
	handler := httpapi.NewHandler(registry, opts...)

	srv := httpapi.NewServer(
		httpapi.WithAddr(cfg.Addr),
		httpapi.WithTimeouts(cfg.ReadTimeout, cfg.WriteTimeout, cfg.IdleTimeout),
		httpapi.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpapi.WithServerLogger(log),
	)
	g.Go(func() error { return srv.Run(ctx, handler.Routes()) })

	return g.Wait()
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(httpapi.RequestIDExtractor, httpapi.TenantExtractor),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
