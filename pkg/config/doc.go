// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags and their
// constraints with go-playground/validator tags. Load parses each type once
// per process and hands out copies of the cached value. LoadEnv pulls dotenv
// files into the environment before the first Load.
package config
