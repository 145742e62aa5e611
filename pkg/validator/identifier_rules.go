package validator

import "regexp"

var (
	slugRegex        = regexp.MustCompile(`^[a-z0-9-]+$`)
	siteCodeRegex    = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	codeRegex        = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)
	displayNameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-_&.']+$`)
)

// IsValidSlug accepts lowercase letters, digits and hyphens.
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// IsValidSiteCode accepts letters, digits and hyphens.
func IsValidSiteCode(s string) bool {
	return siteCodeRegex.MatchString(s)
}

// IsValidCode accepts letters, digits, hyphens and underscores.
func IsValidCode(s string) bool {
	return codeRegex.MatchString(s)
}

// IsValidCountryCode accepts an uppercase ISO 3166-1 alpha-2 code.
func IsValidCountryCode(s string) bool {
	return countryCodeRegex.MatchString(s)
}

// IsValidDisplayName accepts letters, digits, whitespace and - _ & . '
func IsValidDisplayName(s string) bool {
	return displayNameRegex.MatchString(s)
}
