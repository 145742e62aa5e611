package ruletable

import "errors"

var (
	// ErrInvalidTables is returned when tables fail structural validation.
	ErrInvalidTables = errors.New("invalid rule tables")

	// ErrParseTables is returned when a tables document cannot be decoded.
	ErrParseTables = errors.New("failed to parse rule tables")

	// ErrReadTables is returned when a tables file cannot be read.
	ErrReadTables = errors.New("failed to read rule tables file")

	// ErrEnvOverlay is returned when environment overrides cannot be parsed.
	ErrEnvOverlay = errors.New("failed to apply rule table environment overrides")

	// ErrTenantLookup is returned when per-tenant overrides cannot be loaded.
	ErrTenantLookup = errors.New("failed to load tenant rule tables")

	// ErrWatcherRunning is returned when Watch is called twice.
	ErrWatcherRunning = errors.New("rule table watcher already running")
)
