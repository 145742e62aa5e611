// Package binder decodes HTTP request bodies into Go values.
//
// JSON enforces the media type, bounds the body size and rejects trailing
// data. It never rewrites the decoded values: validators must see what the
// client submitted.
package binder
