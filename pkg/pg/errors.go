package pg

import "errors"

var (
	ErrEmptyConnectionString    = errors.New("pg: empty connection string, set DATABASE_URL")
	ErrFailedToParseDBConfig    = errors.New("pg: failed to parse connection string")
	ErrFailedToOpenDBConnection = errors.New("pg: failed to open db connection")
	ErrHealthcheckFailed        = errors.New("pg: healthcheck failed, connection is not available")
	ErrFailedToApplyMigrations  = errors.New("pg: failed to apply migrations")
)
