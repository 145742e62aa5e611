package siteconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

// rules returns the whole-record rule table for s. Order only affects the
// order of messages in the result.
func rules(s *Site, t *ruletable.Tables, now time.Time) []validator.Rule {
	var (
		code       = validator.Deref(s.SiteCode)
		erp        = validator.Deref(s.SiteERPIntegration)
		dropDown   = validator.Deref(s.SiteDropDownName)
		customURL  = validator.Deref(s.SiteCustomDomainURL)
		country    = validator.Deref(s.SiteShipFromCountry)
		managerEml = validator.Deref(s.SiteAccountManagerEmail)
		contactEml = validator.Deref(s.RegionalClientContactEmail)
		phone      = validator.Deref(s.RegionalClientContactPhone)
		start      = s.AvailabilityStartDate
		end        = s.AvailabilityEndDate
		bothDates  = !validator.IsBlank(start) && !validator.IsBlank(end)
	)

	return []validator.Rule{
		// Required fields.
		validator.Error(validator.KindRequired, "Site name is required",
			validator.Required(s.SiteName)).
			On(FieldSiteName, "This field is required"),
		validator.Error(validator.KindRequired, "Site URL slug is required",
			validator.Required(s.SiteURL)).
			On(FieldSiteURL, "This field is required"),

		// Length bounds.
		validator.Error(validator.KindFormat, fmt.Sprintf("Site name must be at least %d characters", SiteNameMinLen),
			validator.Optional(s.SiteName, validator.MinRunes(SiteNameMinLen))).
			On(FieldSiteName, fmt.Sprintf("Minimum %d characters required", SiteNameMinLen)),
		validator.Error(validator.KindFormat, fmt.Sprintf("Site name must not exceed %d characters", SiteNameMaxLen),
			validator.MaxLen(s.SiteName, SiteNameMaxLen)).
			On(FieldSiteName, fmt.Sprintf("Maximum %d characters allowed", SiteNameMaxLen)),
		validator.Error(validator.KindFormat, fmt.Sprintf("Site URL slug must be at least %d characters", SiteURLMinLen),
			validator.Optional(s.SiteURL, validator.MinRunes(SiteURLMinLen))).
			On(FieldSiteURL, fmt.Sprintf("Minimum %d characters required", SiteURLMinLen)),
		validator.Error(validator.KindFormat, fmt.Sprintf("Site URL slug must not exceed %d characters", SiteURLMaxLen),
			validator.MaxLen(s.SiteURL, SiteURLMaxLen)).
			On(FieldSiteURL, fmt.Sprintf("Maximum %d characters allowed", SiteURLMaxLen)),
		maxLenRule("Company name", FieldCompanyName, s.CompanyName, CompanyNameMaxLen),
		maxLenRule("Footer text", FieldFooterText, s.FooterText, FooterTextMaxLen),
		maxLenRule("Expired message", FieldExpiredMessage, s.ExpiredMessage, ExpiredMessageMaxLen),
		maxLenRule("Site code", FieldSiteCode, code, SiteCodeMaxLen),
		maxLenRule("Site dropdown name", FieldSiteDropDownName, dropDown, DropDownNameMaxLen),

		// Character classes and formats.
		validator.Error(validator.KindFormat, "Site name contains invalid characters",
			validator.Optional(s.SiteName, validator.IsValidDisplayName)).
			On(FieldSiteName, "Only letters, numbers, spaces, and basic punctuation allowed"),
		validator.Error(validator.KindFormat, "Site URL slug must contain only lowercase letters, numbers, and hyphens",
			validator.Optional(s.SiteURL, validator.IsValidSlug)).
			On(FieldSiteURL, "Invalid format (e.g., techcorpus, my-company-2024)"),
		colorRule("Primary", FieldPrimaryColor, s.PrimaryColor, "Invalid format (use #RRGGBB, e.g., #D91C81)"),
		colorRule("Secondary", FieldSecondaryColor, s.SecondaryColor, "Invalid format (use #RRGGBB)"),
		colorRule("Tertiary", FieldTertiaryColor, s.TertiaryColor, "Invalid format (use #RRGGBB)"),
		validator.Error(validator.KindFormat, "Site code can only contain letters, numbers, and hyphens",
			validator.Optional(code, validator.IsValidSiteCode)).
			On(FieldSiteCode, "Invalid format (alphanumeric and hyphens only)"),
		validator.Error(validator.KindFormat, "Ship from country must be a 2-letter country code",
			validator.Optional(country, validator.IsValidCountryCode)).
			On(FieldSiteShipFromCountry, "Use 2-letter ISO code (e.g., US, CA, GB)"),
		validator.Error(validator.KindFormat, "Custom domain URL must be a valid URL",
			validator.Optional(customURL, validator.IsValidURL)).
			On(FieldSiteCustomDomainURL, "Invalid URL format"),
		validator.Error(validator.KindFormat, "Account manager email is invalid",
			validator.Optional(managerEml, validator.IsValidEmail)).
			On(FieldSiteAccountManagerEmail, "Invalid email format"),
		validator.Error(validator.KindFormat, "Regional contact email is invalid",
			validator.Optional(contactEml, validator.IsValidEmail)).
			On(FieldRegionalClientContactEmail, "Invalid email format"),
		validator.Error(validator.KindFormat, "Regional contact phone contains invalid characters",
			validator.Optional(phone, validator.HasPhoneChars)).
			On(FieldRegionalClientContactPhone, "Use numbers, spaces, and common punctuation only"),

		// Reserved words.
		validator.Error(validator.KindReserved, "Site URL slug contains reserved words which are not allowed",
			validator.NotReserved(s.SiteURL, t.ReservedWords)).
			On(FieldSiteURL, "This slug is reserved. Please choose a different one."),

		// Date ordering.
		validator.Error(validator.KindConsistency, "Start date must be before end date",
			validator.DateOrder(start, end)).
			On(FieldAvailabilityStartDate, "Must be before end date").
			On(FieldAvailabilityEndDate, "Must be after start date"),
		validator.Warning("End date is in the past. Site may appear expired to users.",
			validator.Not(func() bool { return bothDates && validator.IsDateInPast(end, now) })),

		// Numeric bounds.
		validator.Error(validator.KindFormat, fmt.Sprintf("Gifts per user must be at least %d", GiftsPerUser.Min),
			validator.AtLeast(s.GiftsPerUser, GiftsPerUser.Min)).
			On(FieldGiftsPerUser, fmt.Sprintf("Minimum value is %d", GiftsPerUser.Min)),
		validator.Error(validator.KindFormat, fmt.Sprintf("Gifts per user cannot exceed %d", GiftsPerUser.Max),
			validator.AtMost(s.GiftsPerUser, GiftsPerUser.Max)).
			On(FieldGiftsPerUser, fmt.Sprintf("Maximum value is %d", GiftsPerUser.Max)),
		validator.Warning(fmt.Sprintf("Gifts per user is set to %d. This is unusually high.", s.GiftsPerUser),
			func() bool { return !GiftsPerUser.Unusual(s.GiftsPerUser) }),
		validator.Error(validator.KindFormat, "Days after close cannot be negative",
			validator.AtLeast(s.DefaultGiftDaysAfterClose, DaysAfterClose.Min)).
			On(FieldDefaultGiftDaysAfterClose, "Must be 0 or greater"),
		validator.Error(validator.KindFormat, fmt.Sprintf("Days after close cannot exceed %d", DaysAfterClose.Max),
			validator.AtMost(s.DefaultGiftDaysAfterClose, DaysAfterClose.Max)).
			On(FieldDefaultGiftDaysAfterClose, fmt.Sprintf("Maximum is %d days", DaysAfterClose.Max)),
		validator.Warning(fmt.Sprintf("Days after close is %d. Users may forget about their gift.", s.DefaultGiftDaysAfterClose),
			func() bool { return !DaysAfterClose.Unusual(s.DefaultGiftDaysAfterClose) }),

		// Allowed values.
		validator.Error(validator.KindFormat, "Grid columns must be "+joinOr(t.GridColumns),
			validator.OneOf(s.GridColumns, t.GridColumns)).
			On(FieldGridColumns, "Invalid value"),
		validator.Error(validator.KindFormat, "Invalid ERP system selected",
			validator.OptionalOneOf(erp, t.SiteERPSystems)).
			On(FieldSiteERPIntegration, "Must be one of: "+strings.Join(t.SiteERPSystems, ", ")),
		validator.Error(validator.KindFormat, "At least one sort option must be enabled",
			validator.NotEmpty(s.SortOptions)).
			On(FieldSortOptions, "Enable at least one sort option"),

		// Business rule implications.
		validator.Warning("Days after close is set but no default gift is selected",
			validator.Implies(s.DefaultGiftDaysAfterClose > 0, !validator.IsBlank(validator.Deref(s.DefaultGiftID)))),
		validator.Warning("Direct access is disabled but no SSO provider is configured. Users may not be able to access the site.",
			validator.Implies(validator.Deref(s.DisableDirectAccessAuth), !validator.IsBlank(validator.Deref(s.SSOProvider)))),

		// Similarity.
		validator.Warning("Primary and secondary colors are the same. This may reduce visual distinction.",
			validator.Not(func() bool { return sameColor(s.PrimaryColor, s.SecondaryColor) })),
	}
}

func maxLenRule(label, field, value string, max int) validator.Rule {
	return validator.Error(validator.KindFormat, fmt.Sprintf("%s must not exceed %d characters", label, max),
		validator.MaxLen(value, max)).
		On(field, fmt.Sprintf("Maximum %d characters", max))
}

func colorRule(label, field, value, fieldMessage string) validator.Rule {
	return validator.Error(validator.KindFormat, label+" color must be a valid hex color",
		func() bool { return validator.IsValidHexColor(value) }).
		On(field, fieldMessage)
}

// sameColor compares two hex colors case-insensitively. Invalid colors are
// already reported as errors and never count as a match. Older clients
// compared the raw strings, so "#FFF" and "#fff" did not warn there and two
// identical invalid values did.
func sameColor(a, b string) bool {
	return validator.IsValidHexColor(a) && validator.IsValidHexColor(b) && strings.EqualFold(a, b)
}

// joinOr renders [2 3 4 6] as "2, 3, 4, or 6".
func joinOr(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	switch len(parts) {
	case 0:
		return "a configured value"
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
}
