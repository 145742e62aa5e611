// Package validator provides the building blocks used by the site and client
// configuration validators: pure predicate primitives, a declarative rule
// table runner and the Result value returned to callers.
//
// A validation pass is described as a slice of Rule values. Each rule carries
// a severity, an error kind, the sentence reported in the summary list, the
// short inline messages for the fields it annotates, and a Check closure that
// reports whether the rule holds. Apply runs every rule in order without
// short-circuiting so a single call surfaces every defect of a record.
//
// # Architecture
//
// Each source file groups one family of helpers:
//
//   - core.go        – Severity, Kind, Rule, Apply
//   - result.go      – Result, Issue, ValidationError
//   - field.go       – per-field checks used for live feedback
//   - string_rules.go, format_rules.go, identifier_rules.go,
//     date_rules.go, reserved_rules.go, choice_rules.go, numeric_rules.go
//     – predicate primitives and Check combinators
//   - coerce.go      – shape checks for loosely typed field values
//
// Primitives never panic and hold no mutable state. Compiled patterns are
// package-level values shared by every caller, so the package is safe for
// concurrent use without synchronization.
//
// # Usage
//
//	res := validator.Apply(
//	    validator.Error(validator.KindRequired, "Site name is required",
//	        validator.Required(site.SiteName)).
//	        On("siteName", "This field is required"),
//	    validator.Warning("Primary and secondary colors are the same",
//	        validator.Not(sameColor)),
//	)
//	if !res.Valid {
//	    // render res.Errors and res.FieldErrors
//	}
//
// # Field errors
//
// Only the first failing error rule that targets a field writes that field's
// inline message (first match wins), while every failing rule appends its own
// sentence to Errors. Warnings never touch FieldErrors and never affect Valid.
package validator
