package httpapi

import "errors"

var (
	ErrStart          = errors.New("httpapi: failed to start HTTP server")
	ErrShutdown       = errors.New("httpapi: failed to shut down HTTP server gracefully")
	ErrAlreadyRunning = errors.New("httpapi: server already running")
	ErrInvalidTenant  = errors.New("httpapi: invalid tenant id")
)
