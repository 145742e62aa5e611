// Package logger builds the *slog.Logger used by siteconfigd.
//
// New takes functional options for level, format, output and static
// attributes. Extractors registered with WithContextExtractors run on every
// log call and add request-scoped values such as the request and tenant IDs:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "siteconfigd"),
//		logger.WithContextExtractors(httpapi.RequestIDExtractor, httpapi.TenantExtractor),
//	)
//	log.InfoContext(ctx, "site validated", logger.Record("site"), logger.Outcome(res.Valid, len(res.Errors), len(res.Warnings)))
//
// The attribute helpers keep key names consistent across packages. Error,
// RequestID and TenantID return an empty Attr for zero values, which slog
// handlers omit.
package logger
