package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]*cacheEntry)

	dotenvOnce sync.Once
	validate   = validator.New(validator.WithRequiredStructEnabled())
)

// Load fills v from the environment. It reads a .env file from the working
// directory on first use if one exists, parses env and envDefault tags with
// caarlos0/env and checks validate tags. Each type is parsed once; later calls
// for the same type copy the cached value, or return the cached error.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		if _, err := os.Stat(".env"); err == nil {
			_ = godotenv.Load()
		}
	})

	entry := entryFor(reflect.TypeFor[T]())
	entry.once.Do(func() {
		var fresh T
		if err := env.Parse(&fresh); err != nil {
			entry.err = errors.Join(ErrParsingConfig, err)
			return
		}
		if err := validate.Struct(&fresh); err != nil {
			entry.err = errors.Join(ErrInvalidConfig, err)
			return
		}
		entry.value = fresh
	})
	if entry.err != nil {
		return entry.err
	}

	cached, ok := entry.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cached
	return nil
}

// MustLoad is Load for values the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("load configuration: %v", err))
	}
}

// LoadEnv reads the given dotenv files into the process environment without
// overriding variables that are already set. With no arguments it reads .env.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

func entryFor(t reflect.Type) *cacheEntry {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	e, ok := cache[t]
	if !ok {
		e = &cacheEntry{}
		cache[t] = e
	}
	return e
}
