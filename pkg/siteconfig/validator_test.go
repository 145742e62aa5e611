package siteconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
	"github.com/dmitrymomot/siteconfig/pkg/siteconfig"
	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func newValidator(opts ...siteconfig.Option) *siteconfig.Validator {
	opts = append([]siteconfig.Option{siteconfig.WithClock(func() time.Time { return fixedNow })}, opts...)
	return siteconfig.New(opts...)
}

func validSite() *siteconfig.Site {
	return &siteconfig.Site{
		SiteName:                  "Acme Co",
		SiteURL:                   "acme-gifts",
		SiteType:                  "event",
		PrimaryColor:              "#D91C81",
		SecondaryColor:            "#1B2A4A",
		TertiaryColor:             "#FFFFFF",
		GiftsPerUser:              1,
		ValidationMethod:          "email",
		AvailabilityStartDate:     "2026-11-01",
		AvailabilityEndDate:       "2026-12-31",
		DefaultGiftDaysAfterClose: 0,
		CompanyName:               "Acme Corporation",
		FooterText:                "Thanks for everything",
		ExpiredMessage:            "This site has closed",
		GridColumns:               3,
		SortOptions:               []string{"name", "price"},
	}
}

func ptr[T any](v T) *T { return &v }

type fixture struct {
	Name        string            `yaml:"name"`
	Site        siteconfig.Site   `yaml:"site"`
	Valid       bool              `yaml:"valid"`
	Errors      []string          `yaml:"errors"`
	FieldErrors map[string]string `yaml:"fieldErrors"`
	Warnings    []string          `yaml:"warnings"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sites.yaml"))
	require.NoError(t, err)

	var doc struct {
		Cases []fixture `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.NotEmpty(t, doc.Cases)
	return doc.Cases
}

func TestValidateFixtures(t *testing.T) {
	t.Parallel()

	v := newValidator()
	for _, fx := range loadFixtures(t) {
		t.Run(fx.Name, func(t *testing.T) {
			t.Parallel()

			res := v.Validate(&fx.Site)
			assert.Equal(t, fx.Valid, res.Valid)
			assert.Equal(t, nonNil(fx.Errors), res.Errors)
			assert.Equal(t, nonNilMap(fx.FieldErrors), res.FieldErrors)
			assert.Equal(t, nonNil(fx.Warnings), res.Warnings)
		})
	}
}

func TestValidateProperties(t *testing.T) {
	t.Parallel()

	v := newValidator()
	records := []*siteconfig.Site{nil, {}, validSite()}
	for _, fx := range loadFixtures(t) {
		records = append(records, &fx.Site)
	}

	for _, s := range records {
		var first, second validator.Result
		require.NotPanics(t, func() {
			first = v.Validate(s)
			second = v.Validate(s)
		})

		assert.Equal(t, first, second, "validation is idempotent")
		assert.Equal(t, len(first.Errors) == 0, first.Valid)
		if first.Valid {
			assert.Empty(t, first.FieldErrors)
		}
		assert.GreaterOrEqual(t, len(first.Errors), len(first.FieldErrors)-1,
			"only the date rule annotates two fields with one sentence")
	}
}

func TestValidateRequiredSiteName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", "\t\n"} {
		s := validSite()
		s.SiteName = name

		res := newValidator().Validate(s)
		assert.False(t, res.Valid)
		assert.Equal(t, "This field is required", res.FieldErrors[siteconfig.FieldSiteName])
		assert.Equal(t, []string{"Site name is required"}, res.Errors, "blank names fail only the required rule")
	}
}

func TestValidateDateRange(t *testing.T) {
	t.Parallel()

	t.Run("reversed dates annotate both fields", func(t *testing.T) {
		t.Parallel()

		s := validSite()
		s.AvailabilityStartDate = "2026-12-31"
		s.AvailabilityEndDate = "2026-12-01"

		res := newValidator().Validate(s)
		assert.False(t, res.Valid)
		assert.Equal(t, "Must be before end date", res.FieldErrors[siteconfig.FieldAvailabilityStartDate])
		assert.Equal(t, "Must be after start date", res.FieldErrors[siteconfig.FieldAvailabilityEndDate])
		assert.Equal(t, []string{"Start date must be before end date"}, res.Errors)
	})

	t.Run("one date alone is never checked", func(t *testing.T) {
		t.Parallel()

		s := validSite()
		s.AvailabilityStartDate = ""
		s.AvailabilityEndDate = "2020-01-01"

		res := newValidator().Validate(s)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Warnings, "past end date is only flagged when both dates are set")
	})

	t.Run("past end date warns", func(t *testing.T) {
		t.Parallel()

		s := validSite()
		s.AvailabilityStartDate = "2026-01-01"
		s.AvailabilityEndDate = "2026-10-13"

		res := newValidator().Validate(s)
		assert.True(t, res.Valid)
		assert.Equal(t, []string{"End date is in the past. Site may appear expired to users."}, res.Warnings)
	})

	t.Run("end date today is not past", func(t *testing.T) {
		t.Parallel()

		s := validSite()
		s.AvailabilityStartDate = "2026-01-01"
		s.AvailabilityEndDate = "2026-10-14T08:00"

		res := newValidator().Validate(s)
		assert.Empty(t, res.Warnings)
	})
}

func TestValidateGiftsPerUserBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gifts   int
		valid   bool
		warning bool
	}{
		{0, false, false},
		{1, true, false},
		{10, true, false},
		{11, true, true},
		{100, true, true},
		{101, false, false},
	}
	for _, tt := range tests {
		s := validSite()
		s.GiftsPerUser = tt.gifts

		res := newValidator().Validate(s)
		assert.Equal(t, tt.valid, res.Valid, "giftsPerUser=%d", tt.gifts)
		assert.Equal(t, tt.warning, res.HasWarnings(), "giftsPerUser=%d", tt.gifts)
		if !tt.valid {
			assert.Contains(t, res.FieldErrors, siteconfig.FieldGiftsPerUser)
		}
	}
}

func TestValidateDaysAfterClose(t *testing.T) {
	t.Parallel()

	t.Run("bounds", func(t *testing.T) {
		t.Parallel()

		for days, valid := range map[int]bool{-1: false, 0: true, 365: true, 366: false} {
			s := validSite()
			s.DefaultGiftDaysAfterClose = days
			s.DefaultGiftID = ptr("gift-1")
			assert.Equal(t, valid, newValidator().Validate(s).Valid, "days=%d", days)
		}
	})

	t.Run("grace period without default gift", func(t *testing.T) {
		t.Parallel()

		s := validSite()
		s.DefaultGiftDaysAfterClose = 30

		res := newValidator().Validate(s)
		assert.True(t, res.Valid)
		assert.Equal(t, []string{"Days after close is set but no default gift is selected"}, res.Warnings)

		s.DefaultGiftID = ptr("gift-1")
		assert.Empty(t, newValidator().Validate(s).Warnings)
	})
}

func TestValidateWarningIndependence(t *testing.T) {
	t.Parallel()

	s := validSite()
	s.SecondaryColor = strings.ToLower(s.PrimaryColor)
	s.GiftsPerUser = 50
	s.DefaultGiftDaysAfterClose = 200
	s.DisableDirectAccessAuth = ptr(true)

	res := newValidator().Validate(s)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Len(t, res.Warnings, 5)
	assert.Contains(t, res.Warnings, "Primary and secondary colors are the same. This may reduce visual distinction.")

	s.SSOProvider = ptr("Okta")
	assert.Len(t, newValidator().Validate(s).Warnings, 4)
}

func TestValidateTextLengths(t *testing.T) {
	t.Parallel()

	t.Run("at limit", func(t *testing.T) {
		t.Parallel()

		s := validSite()
		s.CompanyName = strings.Repeat("a", siteconfig.CompanyNameMaxLen)
		s.FooterText = strings.Repeat("é", siteconfig.FooterTextMaxLen)
		s.ExpiredMessage = strings.Repeat("b", siteconfig.ExpiredMessageMaxLen)
		s.SiteCode = ptr(strings.Repeat("C", siteconfig.SiteCodeMaxLen))
		s.SiteDropDownName = ptr(strings.Repeat("d", siteconfig.DropDownNameMaxLen))
		assert.True(t, newValidator().Validate(s).Valid)
	})

	t.Run("over limit", func(t *testing.T) {
		t.Parallel()

		s := validSite()
		s.CompanyName = strings.Repeat("a", siteconfig.CompanyNameMaxLen+1)
		s.FooterText = strings.Repeat("b", siteconfig.FooterTextMaxLen+1)
		s.ExpiredMessage = strings.Repeat("c", siteconfig.ExpiredMessageMaxLen+1)
		s.SiteDropDownName = ptr(strings.Repeat("d", siteconfig.DropDownNameMaxLen+1))

		res := newValidator().Validate(s)
		assert.Equal(t, []string{
			"Company name must not exceed 100 characters",
			"Footer text must not exceed 500 characters",
			"Expired message must not exceed 1000 characters",
			"Site dropdown name must not exceed 100 characters",
		}, res.Errors)
		assert.Equal(t, "Maximum 500 characters", res.FieldErrors[siteconfig.FieldFooterText])
	})

	t.Run("site code reports length and format", func(t *testing.T) {
		t.Parallel()

		s := validSite()
		s.SiteCode = ptr(strings.Repeat("_", siteconfig.SiteCodeMaxLen+1))

		res := newValidator().Validate(s)
		assert.Equal(t, []string{
			"Site code must not exceed 50 characters",
			"Site code can only contain letters, numbers, and hyphens",
		}, res.Errors)
		assert.Equal(t, "Maximum 50 characters", res.FieldErrors[siteconfig.FieldSiteCode])
	})
}

func TestValidateWithTables(t *testing.T) {
	t.Parallel()

	tables := ruletable.Default().Merge(&ruletable.Tables{
		ReservedWords:  []string{"acme"},
		GridColumns:    []int{4},
		SiteERPSystems: []string{"SAP"},
	})
	v := newValidator(siteconfig.WithTables(ruletable.NewStatic(tables)))

	s := validSite()
	s.SiteERPIntegration = ptr("Oracle")
	res := v.Validate(s)
	assert.Equal(t, []string{
		"Site URL slug contains reserved words which are not allowed",
		"Grid columns must be 4",
		"Invalid ERP system selected",
	}, res.Errors)
	assert.Equal(t, "Must be one of: SAP", res.FieldErrors[siteconfig.FieldSiteERPIntegration])

	s.SiteURL = "admin-portal"
	s.GridColumns = 4
	s.SiteERPIntegration = ptr("SAP")
	assert.True(t, v.Validate(s).Valid, "built-in reserved words are replaced, not extended")
}

func TestValidateReloadedTables(t *testing.T) {
	t.Parallel()

	tables := ruletable.NewReloadable(nil)
	v := newValidator(siteconfig.WithTables(tables))

	s := validSite()
	require.True(t, v.Validate(s).Valid)

	require.NoError(t, tables.Store(ruletable.Default().Merge(&ruletable.Tables{ReservedWords: []string{"gift"}})))
	assert.False(t, v.Validate(s).Valid)
}

func TestValidateConcurrent(t *testing.T) {
	t.Parallel()

	v := newValidator()
	want := v.Validate(validSite())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				assert.Equal(t, want, v.Validate(validSite()))
				_, failed := v.ValidateField(siteconfig.FieldSiteName, "Acme Co")
				assert.False(t, failed)
			}
		}()
	}
	wg.Wait()
}

func TestPackageLevelValidate(t *testing.T) {
	t.Parallel()

	s := validSite()
	s.AvailabilityStartDate = ""
	s.AvailabilityEndDate = ""
	res := siteconfig.Validate(s)
	assert.True(t, res.Valid)
	assert.NoError(t, res.Err())

	res = siteconfig.Validate(&siteconfig.Site{})
	assert.ErrorIs(t, res.Err(), validator.ErrInvalidRecord)
}

func TestSuggestSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acme-holiday-gifts-2026", siteconfig.SuggestSlug("Acme Holiday Gifts 2026"))
	assert.Equal(t, "cafe-creme", siteconfig.SuggestSlug("Café Crème!"))

	long := siteconfig.SuggestSlug(strings.Repeat("gifts ", 20))
	assert.LessOrEqual(t, len(long), siteconfig.SiteURLMaxLen)
	assert.False(t, strings.HasSuffix(long, "-"))

	candidate := siteconfig.SuggestSlug("Northwind Traders")
	_, failed := siteconfig.ValidateField(siteconfig.FieldSiteURL, candidate)
	assert.False(t, failed)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func TestValidateSameInvalidColors(t *testing.T) {
	t.Parallel()

	s := validSite()
	s.PrimaryColor = "blue"
	s.SecondaryColor = "blue"

	res := newValidator().Validate(s)
	assert.False(t, res.Valid)
	assert.NotContains(t, res.Warnings, "Primary and secondary colors are the same. This may reduce visual distinction.")
}
