package ruletable

import (
	"container/list"
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTenantTTL is how long a tenant's overrides are cached.
	DefaultTenantTTL = 5 * time.Minute

	// DefaultTenantCacheSize bounds the number of cached tenants.
	DefaultTenantCacheSize = 1000
)

// TenantRegistry resolves the tables for a tenant by merging the tenant's
// overrides onto a base Provider. Overrides are cached per tenant with a TTL
// and least-recently-used eviction; concurrent misses for the same tenant
// share one lookup.
type TenantRegistry struct {
	base    Provider
	source  OverrideSource
	ttl     time.Duration
	maxSize int
	logger  *slog.Logger
	now     func() time.Time

	group singleflight.Group

	mu    sync.Mutex
	items map[string]*list.Element
	lru   *list.List
}

type cachedOverrides struct {
	tenantID  string
	tables    *Tables
	expiresAt time.Time
}

// RegistryOption configures a TenantRegistry.
type RegistryOption func(*TenantRegistry)

func WithTTL(ttl time.Duration) RegistryOption {
	return func(r *TenantRegistry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func WithCacheSize(n int) RegistryOption {
	return func(r *TenantRegistry) {
		if n > 0 {
			r.maxSize = n
		}
	}
}

func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *TenantRegistry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRegistryClock replaces time.Now for expiry checks.
func WithRegistryClock(now func() time.Time) RegistryOption {
	return func(r *TenantRegistry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewTenantRegistry returns a registry over base. A nil source disables
// overrides and every tenant gets the base tables.
func NewTenantRegistry(base Provider, source OverrideSource, opts ...RegistryOption) *TenantRegistry {
	if base == nil {
		base = NewStatic(nil)
	}
	r := &TenantRegistry{
		base:    base,
		source:  source,
		ttl:     DefaultTenantTTL,
		maxSize: DefaultTenantCacheSize,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tables returns the base tables, so a registry can stand in for a Provider.
func (r *TenantRegistry) Tables() *Tables {
	return r.base.Tables()
}

// For returns the effective tables for tenantID. The base is read on every
// call so a reload of the base is visible immediately. Lookup failures are
// logged and fall back to the base tables.
func (r *TenantRegistry) For(ctx context.Context, tenantID string) *Tables {
	base := r.base.Tables()
	if tenantID == "" || r.source == nil {
		return base
	}

	overrides, ok := r.get(tenantID)
	if !ok {
		v, err, _ := r.group.Do(tenantID, func() (any, error) {
			t, err := r.source.Overrides(ctx, tenantID)
			if err != nil {
				return nil, err
			}
			r.set(tenantID, t)
			return t, nil
		})
		if err != nil {
			r.logger.WarnContext(ctx, "tenant rule tables lookup failed, using base tables",
				slog.String("tenant_id", tenantID),
				slog.Any("error", err),
			)
			return base
		}
		overrides = v.(*Tables)
	}

	merged := base.Merge(overrides)
	if err := merged.Validate(); err != nil {
		r.logger.WarnContext(ctx, "tenant rule tables invalid, using base tables",
			slog.String("tenant_id", tenantID),
			slog.Any("error", err),
		)
		return base
	}
	return merged
}

// ForTenant binds the registry to one tenant as a Provider.
func (r *TenantRegistry) ForTenant(ctx context.Context, tenantID string) Provider {
	return NewStatic(r.For(ctx, tenantID))
}

// Invalidate drops the cached overrides for tenantID.
func (r *TenantRegistry) Invalidate(tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if el, ok := r.items[tenantID]; ok {
		r.lru.Remove(el)
		delete(r.items, tenantID)
	}
}

// Len reports the number of cached tenants, expired entries included.
func (r *TenantRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lru.Len()
}

func (r *TenantRegistry) get(tenantID string) (*Tables, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	el, ok := r.items[tenantID]
	if !ok {
		return nil, false
	}
	item := el.Value.(*cachedOverrides)
	if !r.now().Before(item.expiresAt) {
		r.lru.Remove(el)
		delete(r.items, tenantID)
		return nil, false
	}
	r.lru.MoveToFront(el)
	return item.tables, true
}

func (r *TenantRegistry) set(tenantID string, t *Tables) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt := r.now().Add(r.ttl)
	if el, ok := r.items[tenantID]; ok {
		item := el.Value.(*cachedOverrides)
		item.tables = t
		item.expiresAt = expiresAt
		r.lru.MoveToFront(el)
		return
	}

	for r.lru.Len() >= r.maxSize {
		oldest := r.lru.Back()
		if oldest == nil {
			break
		}
		r.lru.Remove(oldest)
		delete(r.items, oldest.Value.(*cachedOverrides).tenantID)
	}
	r.items[tenantID] = r.lru.PushFront(&cachedOverrides{
		tenantID:  tenantID,
		tables:    t,
		expiresAt: expiresAt,
	})
}
