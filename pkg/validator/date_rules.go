package validator

import (
	"strings"
	"time"
)

// DateLayout is the canonical layout for availability dates.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses a date or date-time string. Values without a zone are
// read as UTC so two such values always compare consistently.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidDateRange reports whether start is strictly before end. Either side
// being blank leaves the range unconstrained. An unparseable side fails.
func IsValidDateRange(start, end string) bool {
	if IsBlank(start) || IsBlank(end) {
		return true
	}
	s, ok := ParseDate(start)
	if !ok {
		return false
	}
	e, ok := ParseDate(end)
	if !ok {
		return false
	}
	return s.Before(e)
}

// IsDateInPast compares only the calendar date of value against local
// midnight of now. Time of day is ignored, so today is not in the past.
func IsDateInPast(value string, now time.Time) bool {
	datePart, _, _ := strings.Cut(strings.TrimSpace(value), "T")
	if datePart == "" {
		return false
	}
	// "2006-1-2" also accepts zero-padded months and days.
	d, err := time.ParseInLocation("2006-1-2", datePart, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}

// DateOrder holds when the range is valid or any side is blank.
func DateOrder(start, end string) Check {
	return func() bool {
		return IsValidDateRange(start, end)
	}
}
