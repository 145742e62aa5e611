package clientconfig

import (
	"log/slog"

	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

// Validator validates client records. It holds no per-call state and is safe
// for concurrent use.
type Validator struct {
	tables ruletable.Provider
	logger *slog.Logger
}

type Option func(*Validator)

// WithTables sets the provider of the standard ERP, SSO, HRIS and
// authentication method lists.
func WithTables(p ruletable.Provider) Option {
	return func(v *Validator) {
		if p != nil {
			v.tables = p
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{
		tables: ruletable.NewStatic(nil),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every client rule against c. A nil record is validated as an
// empty one.
func (v *Validator) Validate(c *Client) validator.Result {
	if c == nil {
		c = &Client{}
	}
	t := v.tables.Tables()
	if t == nil {
		t = ruletable.Default()
	}
	res := validator.Apply(rules(c, t)...)

	v.logger.Debug("client configuration validated",
		slog.Bool("valid", res.Valid),
		slog.Int("errors", len(res.Errors)),
		slog.Int("warnings", len(res.Warnings)),
	)
	return res
}

// ValidateField checks one field for live feedback. Unknown fields pass.
func (v *Validator) ValidateField(name string, value any) (string, bool) {
	return fieldTable.Validate(name, value)
}

// FieldNames lists the fields ValidateField knows about.
func (v *Validator) FieldNames() []string {
	return fieldTable.Names()
}

var defaultValidator = New()

// Validate validates c with the built-in tables.
func Validate(c *Client) validator.Result {
	return defaultValidator.Validate(c)
}

// ValidateField validates one client field.
func ValidateField(name string, value any) (string, bool) {
	return defaultValidator.ValidateField(name, value)
}
