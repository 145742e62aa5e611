package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/dmitrymomot/siteconfig/pkg/logger"
)

// TenantHeader selects the tenant whose rule tables apply to a request.
// Requests without it use the base tables.
const TenantHeader = "X-Tenant-ID"

var tenantIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

type tenantKey struct{}

// Tenant reads the tenant ID from the X-Tenant-ID header. A malformed ID is
// rejected with 400.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(TenantHeader)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		if !tenantIDPattern.MatchString(id) {
			writeError(w, http.StatusBadRequest, ErrInvalidTenant)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), id)))
	})
}

// WithTenant stores a tenant ID in ctx.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenantID)
}

// TenantFromContext returns the tenant ID, or "" for the base tables.
func TenantFromContext(ctx context.Context) string {
	id, _ := ctx.Value(tenantKey{}).(string)
	return id
}

// TenantExtractor adds tenant_id to log records.
func TenantExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := TenantFromContext(ctx); id != "" {
		return logger.TenantID(id), true
	}
	return slog.Attr{}, false
}
