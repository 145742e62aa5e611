package siteconfig

// Site is the configuration record of one gifting site. Fields the admin form
// always submits are plain values; everything else is optional and nil when
// absent.
type Site struct {
	SiteName                  string   `json:"siteName" yaml:"siteName"`
	SiteURL                   string   `json:"siteUrl" yaml:"siteUrl"`
	SiteType                  string   `json:"siteType" yaml:"siteType"`
	PrimaryColor              string   `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor            string   `json:"secondaryColor" yaml:"secondaryColor"`
	TertiaryColor             string   `json:"tertiaryColor" yaml:"tertiaryColor"`
	GiftsPerUser              int      `json:"giftsPerUser" yaml:"giftsPerUser"`
	ValidationMethod          string   `json:"validationMethod" yaml:"validationMethod"`
	AvailabilityStartDate     string   `json:"availabilityStartDate" yaml:"availabilityStartDate"`
	AvailabilityEndDate       string   `json:"availabilityEndDate" yaml:"availabilityEndDate"`
	DefaultGiftDaysAfterClose int      `json:"defaultGiftDaysAfterClose" yaml:"defaultGiftDaysAfterClose"`
	DefaultGiftID             *string  `json:"defaultGiftId,omitempty" yaml:"defaultGiftId,omitempty"`
	CompanyName               string   `json:"companyName" yaml:"companyName"`
	FooterText                string   `json:"footerText" yaml:"footerText"`
	ExpiredMessage            string   `json:"expiredMessage" yaml:"expiredMessage"`
	GridColumns               int      `json:"gridColumns" yaml:"gridColumns"`
	SortOptions               []string `json:"sortOptions" yaml:"sortOptions"`

	// ERP integration
	SiteCode            *string `json:"siteCode,omitempty" yaml:"siteCode,omitempty"`
	SiteERPIntegration  *string `json:"siteErpIntegration,omitempty" yaml:"siteErpIntegration,omitempty"`
	SiteERPInstance     *string `json:"siteErpInstance,omitempty" yaml:"siteErpInstance,omitempty"`
	SiteShipFromCountry *string `json:"siteShipFromCountry,omitempty" yaml:"siteShipFromCountry,omitempty"`
	SiteHRISSystem      *string `json:"siteHrisSystem,omitempty" yaml:"siteHrisSystem,omitempty"`

	// Site management
	SiteDropDownName          *string `json:"siteDropDownName,omitempty" yaml:"siteDropDownName,omitempty"`
	SiteCustomDomainURL       *string `json:"siteCustomDomainUrl,omitempty" yaml:"siteCustomDomainUrl,omitempty"`
	SiteAccountManager        *string `json:"siteAccountManager,omitempty" yaml:"siteAccountManager,omitempty"`
	SiteAccountManagerEmail   *string `json:"siteAccountManagerEmail,omitempty" yaml:"siteAccountManagerEmail,omitempty"`
	SiteCelebrationsEnabled   *bool   `json:"siteCelebrationsEnabled,omitempty" yaml:"siteCelebrationsEnabled,omitempty"`
	AllowSessionTimeoutExtend *bool   `json:"allowSessionTimeoutExtend,omitempty" yaml:"allowSessionTimeoutExtend,omitempty"`
	EnableEmployeeLogReport   *bool   `json:"enableEmployeeLogReport,omitempty" yaml:"enableEmployeeLogReport,omitempty"`

	// Regional client information
	RegionalClientOfficeName   *string `json:"regionalClientOfficeName,omitempty" yaml:"regionalClientOfficeName,omitempty"`
	RegionalClientContactName  *string `json:"regionalClientContactName,omitempty" yaml:"regionalClientContactName,omitempty"`
	RegionalClientContactEmail *string `json:"regionalClientContactEmail,omitempty" yaml:"regionalClientContactEmail,omitempty"`
	RegionalClientContactPhone *string `json:"regionalClientContactPhone,omitempty" yaml:"regionalClientContactPhone,omitempty"`
	RegionalClientAddressLine1 *string `json:"regionalClientAddressLine1,omitempty" yaml:"regionalClientAddressLine1,omitempty"`
	RegionalClientAddressLine2 *string `json:"regionalClientAddressLine2,omitempty" yaml:"regionalClientAddressLine2,omitempty"`
	RegionalClientAddressLine3 *string `json:"regionalClientAddressLine3,omitempty" yaml:"regionalClientAddressLine3,omitempty"`
	RegionalClientCity         *string `json:"regionalClientCity,omitempty" yaml:"regionalClientCity,omitempty"`
	RegionalClientCountryState *string `json:"regionalClientCountryState,omitempty" yaml:"regionalClientCountryState,omitempty"`
	RegionalClientTaxID        *string `json:"regionalClientTaxId,omitempty" yaml:"regionalClientTaxId,omitempty"`

	// Authentication
	DisableDirectAccessAuth *bool   `json:"disableDirectAccessAuth,omitempty" yaml:"disableDirectAccessAuth,omitempty"`
	SSOProvider             *string `json:"ssoProvider,omitempty" yaml:"ssoProvider,omitempty"`
	SSOClientOfficeName     *string `json:"ssoClientOfficeName,omitempty" yaml:"ssoClientOfficeName,omitempty"`
}

// Field names as they appear in FieldErrors and ValidateField.
const (
	FieldSiteName                   = "siteName"
	FieldSiteURL                    = "siteUrl"
	FieldPrimaryColor               = "primaryColor"
	FieldSecondaryColor             = "secondaryColor"
	FieldTertiaryColor              = "tertiaryColor"
	FieldGiftsPerUser               = "giftsPerUser"
	FieldAvailabilityStartDate      = "availabilityStartDate"
	FieldAvailabilityEndDate        = "availabilityEndDate"
	FieldDefaultGiftDaysAfterClose  = "defaultGiftDaysAfterClose"
	FieldCompanyName                = "companyName"
	FieldFooterText                 = "footerText"
	FieldExpiredMessage             = "expiredMessage"
	FieldGridColumns                = "gridColumns"
	FieldSortOptions                = "sortOptions"
	FieldSiteCode                   = "siteCode"
	FieldSiteERPIntegration         = "siteErpIntegration"
	FieldSiteShipFromCountry        = "siteShipFromCountry"
	FieldSiteDropDownName           = "siteDropDownName"
	FieldSiteCustomDomainURL        = "siteCustomDomainUrl"
	FieldSiteAccountManagerEmail    = "siteAccountManagerEmail"
	FieldRegionalClientContactEmail = "regionalClientContactEmail"
	FieldRegionalClientContactPhone = "regionalClientContactPhone"
)
