package validator

import (
	"strings"

	"golang.org/x/text/cases"
)

// FindReservedWord returns the first word from words that occurs anywhere in
// value, ignoring case. Matching is by substring, so "administrative" matches
// "admin". Blank entries in words are skipped.
func FindReservedWord(value string, words []string) (string, bool) {
	if value == "" || len(words) == 0 {
		return "", false
	}
	// cases.Caser is stateful; a fresh one per call keeps this safe for
	// concurrent callers.
	fold := cases.Fold()
	folded := fold.String(value)
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if strings.Contains(folded, fold.String(w)) {
			return w, true
		}
	}
	return "", false
}

// HasReservedWords reports whether value contains any of words.
func HasReservedWords(value string, words []string) bool {
	_, found := FindReservedWord(value, words)
	return found
}

// NotReserved holds when value contains none of words.
func NotReserved(value string, words []string) Check {
	return func() bool {
		return !HasReservedWords(value, words)
	}
}
