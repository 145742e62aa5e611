package siteconfig_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
	"github.com/dmitrymomot/siteconfig/pkg/siteconfig"
)

func TestValidateField(t *testing.T) {
	t.Parallel()

	var absent *string

	tests := []struct {
		name    string
		field   string
		value   any
		message string
	}{
		{"site name required", "siteName", "", "Required"},
		{"site name ok", "siteName", "Acme Co", ""},
		{"site name short", "siteName", "AB", "Minimum 3 characters"},
		{"site name long", "siteName", strings.Repeat("a", 101), "Maximum 100 characters"},
		{"site name characters", "siteName", "Acme!", "Invalid characters"},
		{"site name wrong type", "siteName", 42, "Required"},

		{"slug required", "siteUrl", "  ", "Required"},
		{"slug short", "siteUrl", "ab", "Minimum 3 characters"},
		{"slug long", "siteUrl", strings.Repeat("a", 51), "Maximum 50 characters"},
		{"slug format", "siteUrl", "Acme Gifts", "Invalid slug format (lowercase, numbers, hyphens only)"},
		{"slug reserved", "siteUrl", "my-dashboard", "This slug is reserved"},
		{"slug ok", "siteUrl", "acme-gifts", ""},

		{"primary color", "primaryColor", "red", "Invalid hex format (#RRGGBB)"},
		{"secondary color shorthand", "secondaryColor", "#fff", "Invalid hex format (#RRGGBB)"},
		{"tertiary color ok", "tertiaryColor", "#A1B2C3", ""},

		{"gifts low", "giftsPerUser", 0, "Minimum 1"},
		{"gifts min", "giftsPerUser", 1, ""},
		{"gifts max", "giftsPerUser", 100, ""},
		{"gifts high", "giftsPerUser", 101, "Maximum 100"},
		{"gifts unusual is not a field error", "giftsPerUser", 50, ""},
		{"gifts json number", "giftsPerUser", json.Number("7"), ""},
		{"gifts wrong type", "giftsPerUser", "7", "Minimum 1"},

		{"days negative", "defaultGiftDaysAfterClose", -1, "Minimum 0"},
		{"days high", "defaultGiftDaysAfterClose", 366, "Maximum 365"},
		{"days ok", "defaultGiftDaysAfterClose", 0, ""},

		{"grid ok", "gridColumns", 4, ""},
		{"grid invalid", "gridColumns", 5, "Invalid value"},
		{"grid fractional", "gridColumns", 3.5, "Invalid value"},

		{"sort options empty", "sortOptions", []string{}, "Enable at least one sort option"},
		{"sort options from json", "sortOptions", []any{"name"}, ""},

		{"company name long", "companyName", strings.Repeat("x", 101), "Maximum 100 characters"},
		{"footer ok", "footerText", strings.Repeat("x", 500), ""},
		{"expired message long", "expiredMessage", strings.Repeat("x", 1001), "Maximum 1000 characters"},
		{"dropdown absent", "siteDropDownName", absent, ""},

		{"site code absent", "siteCode", nil, ""},
		{"site code format", "siteCode", "SITE_01", "Alphanumeric and hyphens only"},
		{"site code long", "siteCode", strings.Repeat("A", 51), "Maximum 50 characters"},
		{"country lowercase", "siteShipFromCountry", "us", "Use 2-letter ISO code"},
		{"country ok", "siteShipFromCountry", "US", ""},
		{"erp invalid", "siteErpIntegration", "QuickBooks", "Must be one of: NXJ, Fourgen, Netsuite, GRS, SAP, Oracle, Manual"},
		{"erp blank", "siteErpIntegration", "", ""},
		{"custom domain", "siteCustomDomainUrl", "gifts.acme.com", "Invalid URL format"},
		{"custom domain ok", "siteCustomDomainUrl", "https://gifts.acme.com", ""},
		{"manager email", "siteAccountManagerEmail", "jane@acme", "Invalid email format"},
		{"contact email ok", "regionalClientContactEmail", "ops@acme.com", ""},
		{"phone", "regionalClientContactPhone", "call me", "Invalid phone format"},
		{"phone ok", "regionalClientContactPhone", "+1 (555) 123-4567", ""},

		{"unknown field", "unknownField", 123, ""},
		{"date fields are record level only", "availabilityStartDate", "garbage", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg, failed := siteconfig.ValidateField(tt.field, tt.value)
			assert.Equal(t, tt.message, msg)
			assert.Equal(t, tt.message != "", failed)
		})
	}
}

func TestValidateFieldAgreesWithRecord(t *testing.T) {
	t.Parallel()

	v := newValidator()
	for _, gifts := range []int{-5, 0, 1, 50, 100, 101, 1000} {
		s := validSite()
		s.GiftsPerUser = gifts

		_, fieldFailed := v.ValidateField(siteconfig.FieldGiftsPerUser, gifts)
		_, recordFailed := v.Validate(s).FieldErrors[siteconfig.FieldGiftsPerUser]
		assert.Equal(t, recordFailed, fieldFailed, "giftsPerUser=%d", gifts)
	}

	for _, name := range []string{"", "AB", "Abc", "Acme & Sons", "Acme!", strings.Repeat("n", 101)} {
		s := validSite()
		s.SiteName = name

		_, fieldFailed := v.ValidateField(siteconfig.FieldSiteName, name)
		_, recordFailed := v.Validate(s).FieldErrors[siteconfig.FieldSiteName]
		assert.Equal(t, recordFailed, fieldFailed, "siteName=%q", name)
	}
}

func TestValidateFieldWithTables(t *testing.T) {
	t.Parallel()

	tables := ruletable.Default().Merge(&ruletable.Tables{
		ReservedWords: []string{"acme"},
		GridColumns:   []int{5},
	})
	v := newValidator(siteconfig.WithTables(ruletable.NewStatic(tables)))

	msg, failed := v.ValidateField(siteconfig.FieldSiteURL, "acme-gifts")
	assert.True(t, failed)
	assert.Equal(t, "This slug is reserved", msg)

	_, failed = v.ValidateField(siteconfig.FieldSiteURL, "admin-gifts")
	assert.False(t, failed)

	_, failed = v.ValidateField(siteconfig.FieldGridColumns, 5)
	assert.False(t, failed)
}

func TestFieldNames(t *testing.T) {
	t.Parallel()

	names := newValidator().FieldNames()
	assert.Contains(t, names, siteconfig.FieldSiteName)
	assert.Contains(t, names, siteconfig.FieldRegionalClientContactPhone)
	assert.NotContains(t, names, siteconfig.FieldAvailabilityStartDate)
}
