package validator

import (
	"slices"
	"strings"
)

func InList[T comparable](value T, allowed []T) bool {
	return slices.Contains(allowed, value)
}

// InListFold is a case-insensitive InList for strings.
func InListFold(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, value) {
			return true
		}
	}
	return false
}

// OneOf holds when value is in allowed.
func OneOf[T comparable](value T, allowed []T) Check {
	return func() bool {
		return InList(value, allowed)
	}
}

// OptionalOneOf holds when value is blank or in allowed.
func OptionalOneOf(value string, allowed []string) Check {
	return func() bool {
		return IsBlank(value) || InList(value, allowed)
	}
}

// NotEmpty holds when values has at least one element.
func NotEmpty[T any](values []T) Check {
	return func() bool {
		return len(values) > 0
	}
}
