package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Issue describes one failed rule.
type Issue struct {
	Severity Severity `json:"severity"`
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
	Fields   []string `json:"fields,omitempty"`
}

// Result is the outcome of a whole-record validation pass. A fresh Result is
// built on every call; callers must branch on Valid before persisting and
// display Warnings without enforcing them.
type Result struct {
	Valid       bool              `json:"valid"`
	Errors      []string          `json:"errors"`
	FieldErrors map[string]string `json:"fieldErrors"`
	Warnings    []string          `json:"warnings"`
	Issues      []Issue           `json:"issues,omitempty"`
}

func newResult() Result {
	return Result{
		Valid:       true,
		Errors:      []string{},
		FieldErrors: map[string]string{},
		Warnings:    []string{},
	}
}

// FieldError returns the inline message for field, if any.
func (r Result) FieldError(field string) (string, bool) {
	msg, ok := r.FieldErrors[field]
	return msg, ok
}

func (r Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	fieldErrors := make(map[string]string, len(r.FieldErrors))
	for k, v := range r.FieldErrors {
		fieldErrors[k] = v
	}
	return &ValidationError{
		Errors:      append([]string(nil), r.Errors...),
		FieldErrors: fieldErrors,
	}
}

// ErrInvalidRecord is matched by every *ValidationError.
var ErrInvalidRecord = errors.New("invalid configuration record")

// ValidationError adapts an invalid Result to the error interface.
type ValidationError struct {
	Errors      []string
	FieldErrors map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return ErrInvalidRecord.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRecord.Error(), strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

// Fields returns the annotated field names in lexical order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
