package siteconfig

import "github.com/dmitrymomot/siteconfig/pkg/validator"

// Length limits in characters, shared by Validate and ValidateField.
const (
	SiteNameMinLen       = 3
	SiteNameMaxLen       = 100
	SiteURLMinLen        = 3
	SiteURLMaxLen        = 50
	CompanyNameMaxLen    = 100
	FooterTextMaxLen     = 500
	ExpiredMessageMaxLen = 1000
	SiteCodeMaxLen       = 50
	DropDownNameMaxLen   = 100
)

var (
	// GiftsPerUser bounds; more than WarnOver is legal but flagged.
	GiftsPerUser = validator.Bounds[int]{Min: 1, Max: 100, WarnOver: 10}

	// DaysAfterClose bounds the default gift grace period in days.
	DaysAfterClose = validator.Bounds[int]{Min: 0, Max: 365, WarnOver: 90}
)
