package siteconfig

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

type (
	strCheck = validator.FieldCheck[string]
	numCheck = validator.FieldCheck[float64]
)

var requiredCheck = strCheck{Pass: func(s string) bool { return !validator.IsBlank(s) }, Message: "Required"}

// fields returns the live field validators. They use the same bounds as the
// record rules but shorter messages, and never produce warnings.
func fields(t *ruletable.Tables) validator.Fields {
	hex := validator.StringField(strCheck{Pass: validator.IsValidHexColor, Message: "Invalid hex format (#RRGGBB)"})
	email := validator.OptionalStringField(strCheck{Pass: validator.IsValidEmail, Message: "Invalid email format"})

	return validator.Fields{
		FieldSiteName: validator.StringField(
			requiredCheck,
			strCheck{Pass: validator.MinRunes(SiteNameMinLen), Message: fmt.Sprintf("Minimum %d characters", SiteNameMinLen)},
			strCheck{Pass: validator.MaxRunes(SiteNameMaxLen), Message: fmt.Sprintf("Maximum %d characters", SiteNameMaxLen)},
			strCheck{Pass: validator.IsValidDisplayName, Message: "Invalid characters"},
		),
		FieldSiteURL: validator.StringField(
			requiredCheck,
			strCheck{Pass: validator.MinRunes(SiteURLMinLen), Message: fmt.Sprintf("Minimum %d characters", SiteURLMinLen)},
			strCheck{Pass: validator.MaxRunes(SiteURLMaxLen), Message: fmt.Sprintf("Maximum %d characters", SiteURLMaxLen)},
			strCheck{Pass: validator.IsValidSlug, Message: "Invalid slug format (lowercase, numbers, hyphens only)"},
			strCheck{
				Pass:    func(s string) bool { return !validator.HasReservedWords(s, t.ReservedWords) },
				Message: "This slug is reserved",
			},
		),
		FieldPrimaryColor:   hex,
		FieldSecondaryColor: hex,
		FieldTertiaryColor:  hex,
		FieldGiftsPerUser: validator.NumberField(
			numCheck{Pass: func(n float64) bool { return n >= float64(GiftsPerUser.Min) }, Message: fmt.Sprintf("Minimum %d", GiftsPerUser.Min)},
			numCheck{Pass: func(n float64) bool { return n <= float64(GiftsPerUser.Max) }, Message: fmt.Sprintf("Maximum %d", GiftsPerUser.Max)},
		),
		FieldDefaultGiftDaysAfterClose: validator.NumberField(
			numCheck{Pass: func(n float64) bool { return n >= float64(DaysAfterClose.Min) }, Message: fmt.Sprintf("Minimum %d", DaysAfterClose.Min)},
			numCheck{Pass: func(n float64) bool { return n <= float64(DaysAfterClose.Max) }, Message: fmt.Sprintf("Maximum %d", DaysAfterClose.Max)},
		),
		FieldGridColumns: validator.NumberField(
			numCheck{
				Pass: func(n float64) bool {
					return n == math.Trunc(n) && validator.InList(int(n), t.GridColumns)
				},
				Message: "Invalid value",
			},
		),
		FieldSortOptions: validator.StringsField(
			validator.FieldCheck[[]string]{Pass: func(s []string) bool { return len(s) > 0 }, Message: "Enable at least one sort option"},
		),
		FieldCompanyName:      maxLenField(CompanyNameMaxLen),
		FieldFooterText:       maxLenField(FooterTextMaxLen),
		FieldExpiredMessage:   maxLenField(ExpiredMessageMaxLen),
		FieldSiteDropDownName: maxLenField(DropDownNameMaxLen),
		FieldSiteCode: validator.OptionalStringField(
			strCheck{Pass: validator.MaxRunes(SiteCodeMaxLen), Message: fmt.Sprintf("Maximum %d characters", SiteCodeMaxLen)},
			strCheck{Pass: validator.IsValidSiteCode, Message: "Alphanumeric and hyphens only"},
		),
		FieldSiteShipFromCountry: validator.OptionalStringField(
			strCheck{Pass: validator.IsValidCountryCode, Message: "Use 2-letter ISO code"},
		),
		FieldSiteERPIntegration: validator.OptionalStringField(
			strCheck{
				Pass:    func(s string) bool { return validator.InList(s, t.SiteERPSystems) },
				Message: "Must be one of: " + strings.Join(t.SiteERPSystems, ", "),
			},
		),
		FieldSiteCustomDomainURL: validator.OptionalStringField(
			strCheck{Pass: validator.IsValidURL, Message: "Invalid URL format"},
		),
		FieldSiteAccountManagerEmail:    email,
		FieldRegionalClientContactEmail: email,
		FieldRegionalClientContactPhone: validator.OptionalStringField(
			strCheck{Pass: validator.HasPhoneChars, Message: "Invalid phone format"},
		),
	}
}

func maxLenField(max int) validator.FieldFunc {
	return validator.OptionalStringField(
		strCheck{Pass: validator.MaxRunes(max), Message: fmt.Sprintf("Maximum %d characters", max)},
	)
}
