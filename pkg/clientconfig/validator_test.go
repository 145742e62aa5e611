package clientconfig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/siteconfig/pkg/clientconfig"
	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
)

func ptr[T any](v T) *T { return &v }

func validClient() *clientconfig.Client {
	return &clientconfig.Client{
		ClientName:                 "Northwind Traders",
		ContactEmail:               ptr("ops@northwind.com"),
		ClientCode:                 ptr("NW_01"),
		ClientContactPhone:         ptr("+1 (555) 123-4567"),
		ClientCountry:              ptr("US"),
		ClientAccountManager:       ptr("Jane Doe"),
		ClientAccountManagerEmail:  ptr("jane@northwind.com"),
		ClientURL:                  ptr("https://northwind.com"),
		ClientAuthenticationMethod: ptr("SSO"),
		ClientERPSystem:            ptr("SAP"),
		ClientSSO:                  ptr("Okta"),
		ClientHRISSystem:           ptr("Workday"),
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid client", func(t *testing.T) {
		t.Parallel()

		res := clientconfig.Validate(validClient())
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("nil and empty records", func(t *testing.T) {
		t.Parallel()

		for _, c := range []*clientconfig.Client{nil, {}} {
			res := clientconfig.Validate(c)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{"Client name is required"}, res.Errors)
			assert.Equal(t, map[string]string{"clientName": "This field is required"}, res.FieldErrors)
			assert.Empty(t, res.Warnings)
		}
	})

	t.Run("client name rules", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			errors []string
			field  string
		}{
			{"A", []string{"Client name must be at least 2 characters"}, "Minimum 2 characters required"},
			{"AB", nil, ""},
			{strings.Repeat("a", 101), []string{"Client name must not exceed 100 characters"}, "Maximum 100 characters allowed"},
			{"Acme <script>", []string{"Client name contains invalid characters"}, "Only letters, numbers, spaces, and basic punctuation allowed"},
			{"!", []string{"Client name must be at least 2 characters", "Client name contains invalid characters"}, "Minimum 2 characters required"},
		}
		for _, tt := range tests {
			c := validClient()
			c.ClientName = tt.name

			res := clientconfig.Validate(c)
			if tt.errors == nil {
				assert.True(t, res.Valid, tt.name)
				continue
			}
			assert.Equal(t, tt.errors, res.Errors, tt.name)
			assert.Equal(t, tt.field, res.FieldErrors[clientconfig.FieldClientName], tt.name)
		}
	})

	t.Run("optional formats", func(t *testing.T) {
		t.Parallel()

		c := validClient()
		c.ClientCode = ptr("NW 01")
		c.ClientSourceCode = ptr("src#1")
		c.ContactEmail = ptr("ops@northwind")
		c.ClientContactPhone = ptr("555-123")
		c.ClientImplementationManagerEmail = ptr("nope")
		c.TechnologyOwnerEmail = ptr("cto@northwind.com")
		c.ClientURL = ptr("northwind.com")
		c.ClientCustomURL = ptr("ftp://northwind.com")

		res := clientconfig.Validate(c)
		assert.False(t, res.Valid)
		assert.Equal(t, []string{
			"Client code can only contain letters, numbers, hyphens, and underscores",
			"Client source code can only contain letters, numbers, hyphens, and underscores",
			"Contact email is invalid",
			"Contact phone number is invalid",
			"Implementation manager email is invalid",
			"Client URL must be a valid URL",
			"Custom URL must be a valid URL",
		}, res.Errors)
		assert.Equal(t, map[string]string{
			"clientCode":                       "Invalid format (alphanumeric, hyphens, underscores only)",
			"clientSourceCode":                 "Invalid format",
			"contactEmail":                     "Invalid email format (e.g., user@example.com)",
			"clientContactPhone":               "Invalid phone format or too short",
			"clientImplementationManagerEmail": "Invalid email format",
			"clientUrl":                        "Invalid URL format (e.g., https://example.com)",
			"clientCustomUrl":                  "Invalid URL format",
		}, res.FieldErrors)
	})

	t.Run("blank optional fields are skipped", func(t *testing.T) {
		t.Parallel()

		c := &clientconfig.Client{
			ClientName:         "Acme",
			ClientCode:         ptr("  "),
			ContactEmail:       ptr(""),
			ClientContactPhone: ptr(" "),
			ClientURL:          ptr(""),
			ClientCountry:      ptr("  "),
		}
		res := clientconfig.Validate(c)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Warnings)
	})

	t.Run("length limits", func(t *testing.T) {
		t.Parallel()

		c := validClient()
		c.ClientTaxID = ptr(strings.Repeat("9", 51))
		c.ClientPostalCode = ptr(strings.Repeat("1", 21))
		c.ClientURL = ptr("https://northwind.com/" + strings.Repeat("p", 255))
		c.ClientPONumber = ptr(strings.Repeat("P", 101))
		c.Description = ptr(strings.Repeat("d", 501))
		c.ClientCity = ptr(strings.Repeat("c", 101))

		res := clientconfig.Validate(c)
		assert.Equal(t, []string{
			"Tax ID must not exceed 50 characters",
			"Postal code must not exceed 20 characters",
			"Client URL must not exceed 255 characters",
			"PO number must not exceed 100 characters",
			"Description must not exceed 500 characters",
			"City must not exceed 100 characters",
		}, res.Errors)
		assert.Equal(t, "URL too long", res.FieldErrors[clientconfig.FieldClientURL])
		assert.Equal(t, "Maximum 20 characters", res.FieldErrors[clientconfig.FieldClientPostalCode])
	})
}

func TestValidateWarnings(t *testing.T) {
	t.Parallel()

	c := validClient()
	c.ClientCountry = ptr("us")
	c.ClientAccountManagerEmail = nil
	c.ClientImplementationManager = ptr("Sam")
	c.TechnologyOwner = ptr("  ")
	c.ClientAuthenticationMethod = ptr("magic-link")
	c.ClientPOType = ptr("blanket")
	c.ClientERPSystem = ptr("QuickBooks")
	c.ClientSSO = ptr("Auth0")
	c.ClientHRISSystem = ptr("Gusto")

	res := clientconfig.Validate(c)
	assert.True(t, res.Valid, "warnings never block")
	assert.Equal(t, []string{
		`Authentication method "magic-link" is not standard. Verify it's supported.`,
		`ERP system "QuickBooks" is not in the standard list: NXJ, Fourgen, Netsuite, GRS, SAP, Oracle, Manual, None`,
		`SSO provider "Auth0" is not in the standard list: Google, Microsoft, Okta, Azure, SAML, OAuth2, Custom, None`,
		`HRIS system "Gusto" is not in the standard list`,
		"Country code should be uppercase (e.g., US, CA, GB)",
		"Account manager name is set but email is missing",
		"Implementation manager name is set but email is missing",
		"PO type is set but PO number is missing",
	}, res.Warnings)
}

func TestValidateWithTables(t *testing.T) {
	t.Parallel()

	tables := ruletable.Default().Merge(&ruletable.Tables{
		ClientERPSystems: []string{"QuickBooks"},
		AuthMethods:      []string{"magic-link"},
	})
	v := clientconfig.New(clientconfig.WithTables(ruletable.NewStatic(tables)))

	c := validClient()
	c.ClientERPSystem = ptr("QuickBooks")
	c.ClientAuthenticationMethod = ptr("Magic-Link")

	res := v.Validate(c)
	require.True(t, res.Valid)
	assert.Empty(t, res.Warnings)

	c.ClientERPSystem = ptr("SAP")
	c.ClientAuthenticationMethod = ptr("sso")
	assert.Len(t, v.Validate(c).Warnings, 2)
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field   string
		value   any
		message string
	}{
		{"clientName", "", "Required"},
		{"clientName", "A", "Minimum 2 characters"},
		{"clientName", strings.Repeat("a", 101), "Maximum 100 characters"},
		{"clientName", "Acme!", "Invalid characters"},
		{"clientName", "Acme & Co.", ""},
		{"clientCode", "NW 01", "Alphanumeric, hyphens, underscores only"},
		{"clientSourceCode", strings.Repeat("a", 51), "Maximum 50 characters"},
		{"clientCode", nil, ""},
		{"contactEmail", "a@b", "Invalid email format"},
		{"technologyOwnerEmail", "cto@northwind.com", ""},
		{"clientContactPhone", "555-123", "Invalid phone format"},
		{"clientContactPhone", "+44 20 7946 0958", ""},
		{"clientUrl", "northwind.com", "Invalid URL format"},
		{"clientCustomUrl", "https://" + strings.Repeat("a", 250) + ".com", "URL too long"},
		{"description", strings.Repeat("d", 501), "Maximum 500 characters"},
		{"clientPostalCode", "SW1A 1AA", ""},
		{"clientTaxId", strings.Repeat("9", 51), "Maximum 50 characters"},
		{"clientCountry", "us", ""},
		{"unknownField", 123, ""},
	}
	for _, tt := range tests {
		msg, failed := clientconfig.ValidateField(tt.field, tt.value)
		assert.Equal(t, tt.message, msg, "%s=%v", tt.field, tt.value)
		assert.Equal(t, tt.message != "", failed, "%s=%v", tt.field, tt.value)
	}

	assert.Contains(t, clientconfig.New().FieldNames(), clientconfig.FieldClientName)
}
