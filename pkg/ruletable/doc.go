// Package ruletable holds the read-only lookup tables that shape the
// configuration validators: reserved slug words, allowed grid column counts and
// the lists of known ERP, SSO, HRIS and authentication values.
//
// Tables are injected rather than compiled in so each deployment, and each
// tenant, can customize them without a rebuild.
//
// # Sources
//
// Tables are assembled from layers, highest precedence last:
//
//  1. Default() – the built-in lists.
//  2. A YAML file (LoadFile / Parse). Each key present in the file replaces the
//     whole default list for that table; absent keys keep the default.
//  3. Environment variables (ApplyEnv), for example
//     SITECONFIG_RESERVED_WORDS=admin,api,billing.
//
// Load combines the three and validates the result with
// github.com/go-playground/validator/v10 struct tags.
//
// # Providers
//
// Validators read tables through the Provider interface:
//
//   - NewStatic wraps a fixed *Tables.
//   - Reloadable swaps tables atomically, so readers never lock. Watcher keeps a
//     Reloadable in sync with a YAML file using fsnotify, and keeps the last
//     good tables when a new revision fails to parse or validate.
//   - TenantRegistry overlays per-tenant overrides from an OverrideSource (such
//     as SQLStore) on top of a base Provider, with a TTL cache and
//     singleflight de-duplication of concurrent lookups.
//
// # Immutability
//
// A *Tables handed out by a Provider is shared between goroutines and must be
// treated as read-only. Use Clone before modifying.
package ruletable
