package siteconfig

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
	"github.com/dmitrymomot/siteconfig/pkg/slug"
	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

// Validator validates site records against a set of rule tables. It holds no
// per-call state and is safe for concurrent use.
type Validator struct {
	tables ruletable.Provider
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithTables sets the provider of reserved words and allowed values.
func WithTables(p ruletable.Provider) Option {
	return func(v *Validator) {
		if p != nil {
			v.tables = p
		}
	}
}

// WithClock sets the clock used to decide whether the end date is in the past.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
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

// New returns a Validator using the built-in tables and the system clock
// unless overridden.
func New(opts ...Option) *Validator {
	v := &Validator{
		tables: ruletable.NewStatic(nil),
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every record rule against s and returns the aggregated
// result. A nil record is validated as an empty one.
func (v *Validator) Validate(s *Site) validator.Result {
	if s == nil {
		s = &Site{}
	}
	res := validator.Apply(rules(s, v.currentTables(), v.now())...)

	v.logger.Debug("site configuration validated",
		slog.String("site_url", s.SiteURL),
		slog.Bool("valid", res.Valid),
		slog.Int("errors", len(res.Errors)),
		slog.Int("warnings", len(res.Warnings)),
	)
	return res
}

// ValidateField checks a single field for live form feedback. It returns the
// message and true when value fails; unknown field names always pass.
func (v *Validator) ValidateField(name string, value any) (string, bool) {
	return fields(v.currentTables()).Validate(name, value)
}

// FieldNames lists the fields ValidateField knows about.
func (v *Validator) FieldNames() []string {
	return fields(v.currentTables()).Names()
}

func (v *Validator) currentTables() *ruletable.Tables {
	if t := v.tables.Tables(); t != nil {
		return t
	}
	return ruletable.Default()
}

var defaultValidator = New()

// Validate validates s with the built-in tables.
func Validate(s *Site) validator.Result {
	return defaultValidator.Validate(s)
}

// ValidateField validates one field with the built-in tables.
func ValidateField(name string, value any) (string, bool) {
	return defaultValidator.ValidateField(name, value)
}

// SuggestSlug derives a site URL slug candidate from a site name. The
// candidate still has to pass validation; it may be too short or contain a
// reserved word.
func SuggestSlug(name string) string {
	return slug.Make(name, slug.MaxLength(SiteURLMaxLen))
}
