package validator

import (
	"slices"
	"strings"
)

// FieldFunc checks a single loosely typed field value. It returns the inline
// message and true when the value fails.
type FieldFunc func(value any) (string, bool)

// FieldCheck is one ordered step of a field validator.
type FieldCheck[T any] struct {
	Pass    func(T) bool
	Message string
}

// StringField builds a FieldFunc for a required-shape string field. A value
// that is not a string fails with the first check's message.
func StringField(checks ...FieldCheck[string]) FieldFunc {
	return func(value any) (string, bool) {
		s, ok := AsString(value)
		if !ok {
			return firstMessage(checks)
		}
		return runChecks(checks, s)
	}
}

// OptionalStringField skips every check when the value is nil or blank.
func OptionalStringField(checks ...FieldCheck[string]) FieldFunc {
	return func(value any) (string, bool) {
		if value == nil {
			return "", false
		}
		s, ok := AsString(value)
		if !ok {
			if p, isPtr := value.(*string); isPtr && p == nil {
				return "", false
			}
			return firstMessage(checks)
		}
		if strings.TrimSpace(s) == "" {
			return "", false
		}
		return runChecks(checks, s)
	}
}

// NumberField builds a FieldFunc for a numeric field.
func NumberField(checks ...FieldCheck[float64]) FieldFunc {
	return func(value any) (string, bool) {
		n, ok := AsNumber(value)
		if !ok {
			return firstMessage(checks)
		}
		return runChecks(checks, n)
	}
}

// StringsField builds a FieldFunc for a list of strings.
func StringsField(checks ...FieldCheck[[]string]) FieldFunc {
	return func(value any) (string, bool) {
		s, ok := AsStrings(value)
		if !ok {
			return firstMessage(checks)
		}
		return runChecks(checks, s)
	}
}

// Fields maps field names to their live-feedback validators.
type Fields map[string]FieldFunc

// Validate runs the validator registered for name. Unknown names are no-ops so
// newer schemas never break older validator builds.
func (f Fields) Validate(name string, value any) (string, bool) {
	fn, ok := f[name]
	if !ok || fn == nil {
		return "", false
	}
	return fn(value)
}

// Names returns the registered field names, sorted.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func runChecks[T any](checks []FieldCheck[T], v T) (msg string, failed bool) {
	for _, c := range checks {
		if c.Pass == nil {
			continue
		}
		if !passes(c.Pass, v) {
			return c.Message, true
		}
	}
	return "", false
}

func firstMessage[T any](checks []FieldCheck[T]) (string, bool) {
	if len(checks) == 0 {
		return "", false
	}
	return checks[0].Message, true
}

func passes[T any](pass func(T) bool, v T) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return pass(v)
}
