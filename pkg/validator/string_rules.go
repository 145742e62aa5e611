package validator

import (
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RuneLen counts characters, not bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

func MinRunes(min int) func(string) bool {
	return func(s string) bool {
		return RuneLen(s) >= min
	}
}

func MaxRunes(max int) func(string) bool {
	return func(s string) bool {
		return RuneLen(s) <= max
	}
}

// Required holds when value has non-whitespace content.
func Required(value string) Check {
	return func() bool {
		return !IsBlank(value)
	}
}

// Optional holds when value is blank or satisfies pred. Format and length
// checks on optional fields are wrapped with it so absence never fails them.
func Optional(value string, pred func(string) bool) Check {
	return func() bool {
		return IsBlank(value) || pred(value)
	}
}

// Present passes when value is non-blank and pred holds.
func Present(value string, pred func(string) bool) Check {
	return func() bool {
		return !IsBlank(value) && pred(value)
	}
}

// MaxLen holds when value has at most max characters. Blank values pass
// trivially unless they are longer than max.
func MaxLen(value string, max int) Check {
	return func() bool {
		return RuneLen(value) <= max
	}
}

// Deref returns the pointed-to value or the zero value for nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Not negates a check.
func Not(c Check) Check {
	return func() bool {
		return !c()
	}
}

// Implies holds unless cond is true and consequence is false.
func Implies(cond, consequence bool) Check {
	return func() bool {
		return !cond || consequence
	}
}

// All holds when every check holds. Checks run in order and stop at the first
// failure.
func All(checks ...Check) Check {
	return func() bool {
		for _, c := range checks {
			if c != nil && !c() {
				return false
			}
		}
		return true
	}
}
