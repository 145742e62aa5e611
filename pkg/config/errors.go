package config

import "errors"

var (
	ErrNilPointer        = errors.New("config: nil pointer passed to Load")
	ErrParsingConfig     = errors.New("config: failed to parse environment variables")
	ErrInvalidConfig     = errors.New("config: configuration failed validation")
	ErrInvalidConfigType = errors.New("config: cached value has unexpected type")
	ErrLoadingEnvFile    = errors.New("config: failed to load env file")
)
