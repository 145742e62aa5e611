package clientconfig

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

func rules(c *Client, t *ruletable.Tables) []validator.Rule {
	d := validator.Deref[string]

	var (
		code          = d(c.ClientCode)
		sourceCode    = d(c.ClientSourceCode)
		clientURL     = d(c.ClientURL)
		customURL     = d(c.ClientCustomURL)
		country       = d(c.ClientCountry)
		authMethod    = d(c.ClientAuthenticationMethod)
		erp           = d(c.ClientERPSystem)
		sso           = d(c.ClientSSO)
		hris          = d(c.ClientHRISSystem)
		trimmedAuth   = strings.TrimSpace(authMethod)
		countryLetter = !validator.IsBlank(country) && validator.RuneLen(country) == 2
	)

	return []validator.Rule{
		// Required fields.
		validator.Error(validator.KindRequired, "Client name is required",
			validator.Required(c.ClientName)).
			On(FieldClientName, "This field is required"),

		// Length bounds.
		validator.Error(validator.KindFormat, fmt.Sprintf("Client name must be at least %d characters", ClientNameMinLen),
			validator.Optional(c.ClientName, validator.MinRunes(ClientNameMinLen))).
			On(FieldClientName, fmt.Sprintf("Minimum %d characters required", ClientNameMinLen)),
		validator.Error(validator.KindFormat, fmt.Sprintf("Client name must not exceed %d characters", ClientNameMaxLen),
			validator.MaxLen(c.ClientName, ClientNameMaxLen)).
			On(FieldClientName, fmt.Sprintf("Maximum %d characters allowed", ClientNameMaxLen)),
		maxLenRule("Client code", FieldClientCode, code, CodeMaxLen),
		maxLenRule("Client source code", FieldClientSourceCode, sourceCode, CodeMaxLen),
		maxLenRule("Tax ID", FieldClientTaxID, d(c.ClientTaxID), TaxIDMaxLen),
		maxLenRule("Postal code", FieldClientPostalCode, d(c.ClientPostalCode), PostalCodeMaxLen),
		urlLenRule("Client URL", FieldClientURL, clientURL),
		urlLenRule("Custom URL", FieldClientCustomURL, customURL),
		maxLenRule("PO number", FieldClientPONumber, d(c.ClientPONumber), PONumberMaxLen),
		maxLenRule("Description", FieldDescription, d(c.Description), DescriptionMaxLen),
		maxLenRule("Contact name", FieldClientContactName, d(c.ClientContactName), TextMaxLen),
		maxLenRule("Address line 1", FieldClientAddressLine1, d(c.ClientAddressLine1), TextMaxLen),
		maxLenRule("Address line 2", FieldClientAddressLine2, d(c.ClientAddressLine2), TextMaxLen),
		maxLenRule("Address line 3", FieldClientAddressLine3, d(c.ClientAddressLine3), TextMaxLen),
		maxLenRule("City", FieldClientCity, d(c.ClientCity), TextMaxLen),
		maxLenRule("State/Province", FieldClientCountryState, d(c.ClientCountryState), TextMaxLen),

		// Character classes and formats.
		validator.Error(validator.KindFormat, "Client name contains invalid characters",
			validator.Optional(c.ClientName, validator.IsValidDisplayName)).
			On(FieldClientName, "Only letters, numbers, spaces, and basic punctuation allowed"),
		validator.Error(validator.KindFormat, "Client code can only contain letters, numbers, hyphens, and underscores",
			validator.Optional(code, validator.IsValidCode)).
			On(FieldClientCode, "Invalid format (alphanumeric, hyphens, underscores only)"),
		validator.Error(validator.KindFormat, "Client source code can only contain letters, numbers, hyphens, and underscores",
			validator.Optional(sourceCode, validator.IsValidCode)).
			On(FieldClientSourceCode, "Invalid format"),
		emailRule("Contact email", FieldContactEmail, d(c.ContactEmail), "Invalid email format (e.g., user@example.com)"),
		validator.Error(validator.KindFormat, "Contact phone number is invalid",
			validator.Optional(d(c.ClientContactPhone), validator.IsValidPhone)).
			On(FieldClientContactPhone, "Invalid phone format or too short"),
		emailRule("Account manager email", FieldClientAccountManagerEmail, d(c.ClientAccountManagerEmail), "Invalid email format"),
		emailRule("Implementation manager email", FieldClientImplementationManagerEmail, d(c.ClientImplementationManagerEmail), "Invalid email format"),
		emailRule("Technology owner email", FieldTechnologyOwnerEmail, d(c.TechnologyOwnerEmail), "Invalid email format"),
		validator.Error(validator.KindFormat, "Client URL must be a valid URL",
			validator.Optional(clientURL, validator.IsValidURL)).
			On(FieldClientURL, "Invalid URL format (e.g., https://example.com)"),
		validator.Error(validator.KindFormat, "Custom URL must be a valid URL",
			validator.Optional(customURL, validator.IsValidURL)).
			On(FieldClientCustomURL, "Invalid URL format"),

		// Values outside the standard lists are allowed but flagged.
		validator.Warning(fmt.Sprintf("Authentication method %q is not standard. Verify it's supported.", authMethod),
			validator.Implies(trimmedAuth != "", validator.InListFold(trimmedAuth, t.AuthMethods))),
		validator.Warning(fmt.Sprintf("ERP system %q is not in the standard list: %s", erp, strings.Join(t.ClientERPSystems, ", ")),
			validator.OptionalOneOf(erp, t.ClientERPSystems)),
		validator.Warning(fmt.Sprintf("SSO provider %q is not in the standard list: %s", sso, strings.Join(t.SSOProviders, ", ")),
			validator.OptionalOneOf(sso, t.SSOProviders)),
		validator.Warning(fmt.Sprintf("HRIS system %q is not in the standard list", hris),
			validator.OptionalOneOf(hris, t.HRISSystems)),

		// Business rule implications.
		validator.Warning("Country code should be uppercase (e.g., US, CA, GB)",
			validator.Implies(countryLetter, validator.IsValidCountryCode(country))),
		contactWarning("Account manager", c.ClientAccountManager, c.ClientAccountManagerEmail),
		contactWarning("Implementation manager", c.ClientImplementationManager, c.ClientImplementationManagerEmail),
		contactWarning("Technology owner", c.TechnologyOwner, c.TechnologyOwnerEmail),
		validator.Warning("PO type is set but PO number is missing",
			validator.Implies(!validator.IsBlank(d(c.ClientPOType)), d(c.ClientPONumber) != "")),
	}
}

func maxLenRule(label, field, value string, max int) validator.Rule {
	return validator.Error(validator.KindFormat, fmt.Sprintf("%s must not exceed %d characters", label, max),
		validator.MaxLen(value, max)).
		On(field, fmt.Sprintf("Maximum %d characters", max))
}

func urlLenRule(label, field, value string) validator.Rule {
	return validator.Error(validator.KindFormat, fmt.Sprintf("%s must not exceed %d characters", label, URLMaxLen),
		validator.MaxLen(value, URLMaxLen)).
		On(field, "URL too long")
}

func emailRule(label, field, value, fieldMessage string) validator.Rule {
	return validator.Error(validator.KindFormat, label+" is invalid",
		validator.Optional(value, validator.IsValidEmail)).
		On(field, fieldMessage)
}

func contactWarning(role string, name, email *string) validator.Rule {
	return validator.Warning(role+" name is set but email is missing",
		validator.Implies(!validator.IsBlank(validator.Deref(name)), validator.Deref(email) != ""))
}
