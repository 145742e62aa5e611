package validator

import (
	"fmt"
	"slices"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Severity tells whether a failed rule blocks persistence.
type Severity uint8

const (
	// SeverityError blocks persistence of the record.
	SeverityError Severity = iota
	// SeverityWarning is advisory only.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// MarshalText renders the severity as "error" or "warning" in JSON.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts "error" or "warning".
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("validator: unknown severity %q", text)
	}
	return nil
}

// Kind classifies a failure for callers that group or style messages.
type Kind string

const (
	KindRequired    Kind = "required"
	KindFormat      Kind = "format"
	KindConsistency Kind = "consistency"
	KindReserved    Kind = "reserved"
	KindAdvisory    Kind = "advisory"
)

// Check reports whether a rule holds.
type Check func() bool

// Target is an inline message attached to one field when a rule fails.
type Target struct {
	Field   string
	Message string
}

// Rule is one row of a validation table.
type Rule struct {
	Severity Severity
	Kind     Kind
	Message  string
	Targets  []Target
	Check    Check
}

// Error builds a blocking rule.
func Error(kind Kind, message string, check Check) Rule {
	return Rule{
		Severity: SeverityError,
		Kind:     kind,
		Message:  message,
		Check:    check,
	}
}

// Warning builds an advisory rule. Warnings never annotate fields.
func Warning(message string, check Check) Rule {
	return Rule{
		Severity: SeverityWarning,
		Kind:     KindAdvisory,
		Message:  message,
		Check:    check,
	}
}

// On attaches an inline message for field. It returns a copy, so a base rule
// can be shared between tables.
func (r Rule) On(field, message string) Rule {
	r.Targets = append(slices.Clip(r.Targets), Target{Field: field, Message: message})
	return r
}

// Fields returns the names of the fields the rule annotates.
func (r Rule) Fields() []string {
	if len(r.Targets) == 0 {
		return nil
	}
	fields := make([]string, 0, len(r.Targets))
	for _, t := range r.Targets {
		fields = append(fields, t.Field)
	}
	return fields
}

// Apply executes every rule in order and aggregates the failures.
func Apply(rules ...Rule) Result {
	res := newResult()

	for _, rule := range rules {
		if holds(rule.Check) {
			continue
		}

		res.Issues = append(res.Issues, Issue{
			Severity: rule.Severity,
			Kind:     rule.Kind,
			Message:  rule.Message,
			Fields:   rule.Fields(),
		})

		if rule.Severity == SeverityWarning {
			res.Warnings = append(res.Warnings, rule.Message)
			continue
		}

		res.Errors = append(res.Errors, rule.Message)
		for _, t := range rule.Targets {
			if _, taken := res.FieldErrors[t.Field]; !taken {
				res.FieldErrors[t.Field] = t.Message
			}
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// holds runs check and treats a panic as a failed rule.
func holds(check Check) (ok bool) {
	if check == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return check()
}
