package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/siteconfig/pkg/binder"
	"github.com/dmitrymomot/siteconfig/pkg/clientconfig"
	"github.com/dmitrymomot/siteconfig/pkg/logger"
	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
	"github.com/dmitrymomot/siteconfig/pkg/siteconfig"
	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

// DefaultMaxBodySize caps request bodies.
const DefaultMaxBodySize = binder.DefaultMaxBytes

// TablesResolver returns the rule tables for a tenant. An empty tenant ID
// selects the base tables. *ruletable.TenantRegistry implements it.
type TablesResolver interface {
	ForTenant(ctx context.Context, tenantID string) ruletable.Provider
}

// StaticTables resolves every tenant to the same Provider.
type StaticTables struct {
	Provider ruletable.Provider
}

func (s StaticTables) ForTenant(context.Context, string) ruletable.Provider {
	return s.Provider
}

// Handler exposes the site and client validators over HTTP.
type Handler struct {
	tables  TablesResolver
	now     func() time.Time
	logger  *slog.Logger
	metrics *Metrics
	checks  []ReadinessCheck
	maxBody int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithClock replaces time.Now for the site date rules.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics enables GET /metrics and validation metrics.
func WithMetrics(m *Metrics) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// WithReadinessChecks makes /healthz report readiness.
func WithReadinessChecks(checks ...ReadinessCheck) HandlerOption {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

func WithMaxBodySize(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// NewHandler returns a Handler resolving tables through tables. A nil
// resolver uses the built-in tables.
func NewHandler(tables TablesResolver, opts ...HandlerOption) *Handler {
	if tables == nil {
		tables = StaticTables{Provider: ruletable.NewStatic(nil)}
	}
	h := &Handler{
		tables:  tables,
		now:     time.Now,
		logger:  logger.Discard(),
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes builds the router:
//
//	POST /v1/sites/validate
//	POST /v1/sites/fields/{field}
//	POST /v1/clients/validate
//	POST /v1/clients/fields/{field}
//	GET  /healthz
//	GET  /metrics
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, RequestLogger(h.logger), middleware.Recoverer)

	r.Get("/healthz", HealthHandler(h.logger, h.checks...))
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(Tenant)
		r.Post("/sites/validate", h.validateSite)
		r.Post("/sites/fields/{field}", h.validateSiteField)
		r.Post("/clients/validate", h.validateClient)
		r.Post("/clients/fields/{field}", h.validateClientField)
	})
	return r
}

type fieldRequest struct {
	Value any `json:"value"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) siteValidator(ctx context.Context) *siteconfig.Validator {
	return siteconfig.New(
		siteconfig.WithTables(h.tables.ForTenant(ctx, TenantFromContext(ctx))),
		siteconfig.WithClock(h.now),
		siteconfig.WithLogger(h.logger),
	)
}

func (h *Handler) clientValidator(ctx context.Context) *clientconfig.Validator {
	return clientconfig.New(
		clientconfig.WithTables(h.tables.ForTenant(ctx, TenantFromContext(ctx))),
		clientconfig.WithLogger(h.logger),
	)
}

func (h *Handler) validateSite(w http.ResponseWriter, r *http.Request) {
	var site siteconfig.Site
	if err := binder.JSON(w, r, &site, binder.MaxBytes(h.maxBody)); err != nil {
		bindError(w, err)
		return
	}
	start := time.Now()
	res := h.siteValidator(r.Context()).Validate(&site)
	h.observe(r.Context(), RecordSite, res, time.Since(start))
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) validateClient(w http.ResponseWriter, r *http.Request) {
	var client clientconfig.Client
	if err := binder.JSON(w, r, &client, binder.MaxBytes(h.maxBody)); err != nil {
		bindError(w, err)
		return
	}
	start := time.Now()
	res := h.clientValidator(r.Context()).Validate(&client)
	h.observe(r.Context(), RecordClient, res, time.Since(start))
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) validateSiteField(w http.ResponseWriter, r *http.Request) {
	h.validateField(w, r, h.siteValidator(r.Context()).ValidateField)
}

func (h *Handler) validateClientField(w http.ResponseWriter, r *http.Request) {
	h.validateField(w, r, h.clientValidator(r.Context()).ValidateField)
}

func (h *Handler) validateField(w http.ResponseWriter, r *http.Request, validate func(string, any) (string, bool)) {
	var req fieldRequest
	if err := binder.JSON(w, r, &req, binder.MaxBytes(h.maxBody)); err != nil {
		bindError(w, err)
		return
	}
	field := chi.URLParam(r, "field")
	msg, failed := validate(field, req.Value)
	writeJSON(w, http.StatusOK, fieldResponse{Field: field, Valid: !failed, Message: msg})
}

func (h *Handler) observe(ctx context.Context, record string, res validator.Result, elapsed time.Duration) {
	h.metrics.Observe(record, res, elapsed)
	h.logger.InfoContext(ctx, "record validated",
		logger.Record(record),
		logger.Outcome(res.Valid, len(res.Errors), len(res.Warnings)),
		logger.Duration(elapsed),
	)
}
