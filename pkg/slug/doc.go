// Package slug turns free text into URL-safe identifiers.
//
// Make lowercases its input, strips diacritics using Unicode decomposition
// from golang.org/x/text, and collapses every run of other characters into a
// single separator:
//
//	slug.Make("Café Society & Co.")                    // "cafe-society-co"
//	slug.Make("Holiday Gifts 2026", slug.MaxLength(12)) // "holiday-gift"
//	slug.Make("Acme & Sons", slug.CustomReplace(map[string]string{"&": "and"}))
//	// "acme-and-sons"
//
// A slug truncated by MaxLength never ends with the separator.
package slug
