package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBytes caps a JSON body unless MaxBytes says otherwise.
const DefaultMaxBytes = 1 << 20

type config struct {
	maxBytes int64
}

// Option configures JSON.
type Option func(*config)

// MaxBytes limits the body size. Non-positive values keep the default.
func MaxBytes(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// JSON decodes exactly one JSON value from the request body into v.
//
// A Content-Type other than application/json is rejected; a missing one is
// accepted. Unknown object keys are ignored so older builds accept newer
// payloads. Numbers inside untyped values decode as json.Number. Anything
// after the first value, including a stray "}" or "]", is an error.
func JSON(w http.ResponseWriter, r *http.Request, v any, opts ...Option) error {
	cfg := config{maxBytes: DefaultMaxBytes}
	for _, opt := range opts {
		opt(&cfg)
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, ct)
		}
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, cfg.maxBytes))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	default:
		if tooLarge(err) {
			return decodeError(err)
		}
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}
}

func decodeError(err error) error {
	switch {
	case tooLarge(err):
		return errors.Join(ErrBodyTooLarge, err)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
