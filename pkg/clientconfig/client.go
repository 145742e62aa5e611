package clientconfig

// Client is the configuration record of a client organisation. Only the name
// is always present.
type Client struct {
	ClientName   string  `json:"clientName" yaml:"clientName"`
	Description  *string `json:"description,omitempty" yaml:"description,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty" yaml:"contactEmail,omitempty"`
	Status       *string `json:"status,omitempty" yaml:"status,omitempty"`

	ClientCode         *string `json:"clientCode,omitempty" yaml:"clientCode,omitempty"`
	ClientRegion       *string `json:"clientRegion,omitempty" yaml:"clientRegion,omitempty"`
	ClientSourceCode   *string `json:"clientSourceCode,omitempty" yaml:"clientSourceCode,omitempty"`
	ClientContactName  *string `json:"clientContactName,omitempty" yaml:"clientContactName,omitempty"`
	ClientContactPhone *string `json:"clientContactPhone,omitempty" yaml:"clientContactPhone,omitempty"`
	ClientTaxID        *string `json:"clientTaxId,omitempty" yaml:"clientTaxId,omitempty"`

	ClientAddressLine1 *string `json:"clientAddressLine1,omitempty" yaml:"clientAddressLine1,omitempty"`
	ClientAddressLine2 *string `json:"clientAddressLine2,omitempty" yaml:"clientAddressLine2,omitempty"`
	ClientAddressLine3 *string `json:"clientAddressLine3,omitempty" yaml:"clientAddressLine3,omitempty"`
	ClientCity         *string `json:"clientCity,omitempty" yaml:"clientCity,omitempty"`
	ClientPostalCode   *string `json:"clientPostalCode,omitempty" yaml:"clientPostalCode,omitempty"`
	ClientCountryState *string `json:"clientCountryState,omitempty" yaml:"clientCountryState,omitempty"`
	ClientCountry      *string `json:"clientCountry,omitempty" yaml:"clientCountry,omitempty"`

	ClientAccountManager             *string `json:"clientAccountManager,omitempty" yaml:"clientAccountManager,omitempty"`
	ClientAccountManagerEmail        *string `json:"clientAccountManagerEmail,omitempty" yaml:"clientAccountManagerEmail,omitempty"`
	ClientImplementationManager      *string `json:"clientImplementationManager,omitempty" yaml:"clientImplementationManager,omitempty"`
	ClientImplementationManagerEmail *string `json:"clientImplementationManagerEmail,omitempty" yaml:"clientImplementationManagerEmail,omitempty"`
	TechnologyOwner                  *string `json:"technologyOwner,omitempty" yaml:"technologyOwner,omitempty"`
	TechnologyOwnerEmail             *string `json:"technologyOwnerEmail,omitempty" yaml:"technologyOwnerEmail,omitempty"`

	ClientURL                       *string `json:"clientUrl,omitempty" yaml:"clientUrl,omitempty"`
	ClientAllowSessionTimeoutExtend *bool   `json:"clientAllowSessionTimeoutExtend,omitempty" yaml:"clientAllowSessionTimeoutExtend,omitempty"`
	ClientAuthenticationMethod      *string `json:"clientAuthenticationMethod,omitempty" yaml:"clientAuthenticationMethod,omitempty"`
	ClientCustomURL                 *string `json:"clientCustomUrl,omitempty" yaml:"clientCustomUrl,omitempty"`
	ClientHasEmployeeData           *bool   `json:"clientHasEmployeeData,omitempty" yaml:"clientHasEmployeeData,omitempty"`

	ClientInvoiceType         *string `json:"clientInvoiceType,omitempty" yaml:"clientInvoiceType,omitempty"`
	ClientInvoiceTemplateType *string `json:"clientInvoiceTemplateType,omitempty" yaml:"clientInvoiceTemplateType,omitempty"`
	ClientPOType              *string `json:"clientPoType,omitempty" yaml:"clientPoType,omitempty"`
	ClientPONumber            *string `json:"clientPoNumber,omitempty" yaml:"clientPoNumber,omitempty"`

	ClientERPSystem  *string `json:"clientErpSystem,omitempty" yaml:"clientErpSystem,omitempty"`
	ClientSSO        *string `json:"clientSso,omitempty" yaml:"clientSso,omitempty"`
	ClientHRISSystem *string `json:"clientHrisSystem,omitempty" yaml:"clientHrisSystem,omitempty"`
}

const (
	FieldClientName                       = "clientName"
	FieldDescription                      = "description"
	FieldContactEmail                     = "contactEmail"
	FieldClientCode                       = "clientCode"
	FieldClientSourceCode                 = "clientSourceCode"
	FieldClientContactName                = "clientContactName"
	FieldClientContactPhone               = "clientContactPhone"
	FieldClientTaxID                      = "clientTaxId"
	FieldClientAddressLine1               = "clientAddressLine1"
	FieldClientAddressLine2               = "clientAddressLine2"
	FieldClientAddressLine3               = "clientAddressLine3"
	FieldClientCity                       = "clientCity"
	FieldClientPostalCode                 = "clientPostalCode"
	FieldClientCountryState               = "clientCountryState"
	FieldClientAccountManagerEmail        = "clientAccountManagerEmail"
	FieldClientImplementationManagerEmail = "clientImplementationManagerEmail"
	FieldTechnologyOwnerEmail             = "technologyOwnerEmail"
	FieldClientURL                        = "clientUrl"
	FieldClientCustomURL                  = "clientCustomUrl"
	FieldClientPONumber                   = "clientPoNumber"
)

const (
	ClientNameMinLen  = 2
	ClientNameMaxLen  = 100
	CodeMaxLen        = 50
	TaxIDMaxLen       = 50
	PostalCodeMaxLen  = 20
	URLMaxLen         = 255
	PONumberMaxLen    = 100
	DescriptionMaxLen = 500
	TextMaxLen        = 100
)
