package ruletable

import (
	"errors"
	"slices"

	playground "github.com/go-playground/validator/v10"
)

// Tables is the set of lookup tables consumed by the validators.
type Tables struct {
	ReservedWords    []string `yaml:"reserved_words" env:"RESERVED_WORDS" envSeparator:"," validate:"dive,required"`
	GridColumns      []int    `yaml:"grid_columns" env:"GRID_COLUMNS" envSeparator:"," validate:"min=1,dive,min=1,max=12"`
	SiteERPSystems   []string `yaml:"site_erp_systems" env:"SITE_ERP_SYSTEMS" envSeparator:"," validate:"min=1,dive,required"`
	ClientERPSystems []string `yaml:"client_erp_systems" env:"CLIENT_ERP_SYSTEMS" envSeparator:"," validate:"dive,required"`
	SSOProviders     []string `yaml:"sso_providers" env:"SSO_PROVIDERS" envSeparator:"," validate:"dive,required"`
	HRISSystems      []string `yaml:"hris_systems" env:"HRIS_SYSTEMS" envSeparator:"," validate:"dive,required"`
	AuthMethods      []string `yaml:"auth_methods" env:"AUTH_METHODS" envSeparator:"," validate:"dive,required"`
}

var structValidator = playground.New()

// Default returns a fresh copy of the built-in tables.
func Default() *Tables {
	return &Tables{
		ReservedWords: []string{
			"admin", "api", "auth", "dashboard", "system", "login", "logout",
			"register", "signup", "signin", "settings", "config", "manage",
			"internal", "private", "test", "dev", "staging", "prod", "production",
		},
		GridColumns:      []int{2, 3, 4, 6},
		SiteERPSystems:   []string{"NXJ", "Fourgen", "Netsuite", "GRS", "SAP", "Oracle", "Manual"},
		ClientERPSystems: []string{"NXJ", "Fourgen", "Netsuite", "GRS", "SAP", "Oracle", "Manual", "None"},
		SSOProviders:     []string{"Google", "Microsoft", "Okta", "Azure", "SAML", "OAuth2", "Custom", "None"},
		HRISSystems: []string{
			"Workday", "ADP", "BambooHR", "SAP SuccessFactors", "Oracle HCM", "Namely", "Custom", "None",
		},
		AuthMethods: []string{"password", "sso", "saml", "oauth", "ldap", "custom"},
	}
}

// Clone returns a deep copy of t.
func (t *Tables) Clone() *Tables {
	if t == nil {
		return nil
	}
	return &Tables{
		ReservedWords:    slices.Clone(t.ReservedWords),
		GridColumns:      slices.Clone(t.GridColumns),
		SiteERPSystems:   slices.Clone(t.SiteERPSystems),
		ClientERPSystems: slices.Clone(t.ClientERPSystems),
		SSOProviders:     slices.Clone(t.SSOProviders),
		HRISSystems:      slices.Clone(t.HRISSystems),
		AuthMethods:      slices.Clone(t.AuthMethods),
	}
}

// Merge returns a copy of t where every non-nil table of override replaces the
// corresponding table of t. An empty but non-nil list clears the table.
func (t *Tables) Merge(override *Tables) *Tables {
	out := t.Clone()
	if out == nil {
		out = Default()
	}
	if override == nil {
		return out
	}
	if override.ReservedWords != nil {
		out.ReservedWords = slices.Clone(override.ReservedWords)
	}
	if override.GridColumns != nil {
		out.GridColumns = slices.Clone(override.GridColumns)
	}
	if override.SiteERPSystems != nil {
		out.SiteERPSystems = slices.Clone(override.SiteERPSystems)
	}
	if override.ClientERPSystems != nil {
		out.ClientERPSystems = slices.Clone(override.ClientERPSystems)
	}
	if override.SSOProviders != nil {
		out.SSOProviders = slices.Clone(override.SSOProviders)
	}
	if override.HRISSystems != nil {
		out.HRISSystems = slices.Clone(override.HRISSystems)
	}
	if override.AuthMethods != nil {
		out.AuthMethods = slices.Clone(override.AuthMethods)
	}
	return out
}

// Validate checks the structural constraints declared in the struct tags.
func (t *Tables) Validate() error {
	if t == nil {
		return errors.Join(ErrInvalidTables, errors.New("nil tables"))
	}
	if err := structValidator.Struct(t); err != nil {
		return errors.Join(ErrInvalidTables, err)
	}
	return nil
}

// Provider supplies the tables for one validation pass.
type Provider interface {
	Tables() *Tables
}

type staticProvider struct {
	t *Tables
}

// NewStatic returns a Provider that always yields t. A nil t yields Default().
func NewStatic(t *Tables) Provider {
	if t == nil {
		t = Default()
	}
	return staticProvider{t: t}
}

func (p staticProvider) Tables() *Tables { return p.t }
