package clientconfig

import (
	"fmt"

	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

type strCheck = validator.FieldCheck[string]

var fieldTable = buildFields()

func buildFields() validator.Fields {
	code := validator.OptionalStringField(
		strCheck{Pass: validator.MaxRunes(CodeMaxLen), Message: fmt.Sprintf("Maximum %d characters", CodeMaxLen)},
		strCheck{Pass: validator.IsValidCode, Message: "Alphanumeric, hyphens, underscores only"},
	)
	email := validator.OptionalStringField(
		strCheck{Pass: validator.IsValidEmail, Message: "Invalid email format"},
	)
	url := validator.OptionalStringField(
		strCheck{Pass: validator.MaxRunes(URLMaxLen), Message: "URL too long"},
		strCheck{Pass: validator.IsValidURL, Message: "Invalid URL format"},
	)

	return validator.Fields{
		FieldClientName: validator.StringField(
			strCheck{Pass: func(s string) bool { return !validator.IsBlank(s) }, Message: "Required"},
			strCheck{Pass: validator.MinRunes(ClientNameMinLen), Message: fmt.Sprintf("Minimum %d characters", ClientNameMinLen)},
			strCheck{Pass: validator.MaxRunes(ClientNameMaxLen), Message: fmt.Sprintf("Maximum %d characters", ClientNameMaxLen)},
			strCheck{Pass: validator.IsValidDisplayName, Message: "Invalid characters"},
		),
		FieldClientCode:                       code,
		FieldClientSourceCode:                 code,
		FieldContactEmail:                     email,
		FieldClientAccountManagerEmail:        email,
		FieldClientImplementationManagerEmail: email,
		FieldTechnologyOwnerEmail:             email,
		FieldClientContactPhone: validator.OptionalStringField(
			strCheck{Pass: validator.IsValidPhone, Message: "Invalid phone format"},
		),
		FieldClientURL:        url,
		FieldClientCustomURL:  url,
		FieldDescription:      maxLenField(DescriptionMaxLen),
		FieldClientPostalCode: maxLenField(PostalCodeMaxLen),
		FieldClientTaxID:      maxLenField(TaxIDMaxLen),
	}
}

func maxLenField(max int) validator.FieldFunc {
	return validator.OptionalStringField(
		strCheck{Pass: validator.MaxRunes(max), Message: fmt.Sprintf("Maximum %d characters", max)},
	)
}
