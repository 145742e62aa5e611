// Package httpapi serves the site and client validators over HTTP so that the
// persistence tier can re-run the exact rules the admin form runs.
//
// Handler.Routes mounts the validation endpoints under /v1 together with
// /healthz and, when metrics are enabled, /metrics. Whole-record endpoints
// answer with the validation result JSON; field endpoints take {"value": ...}
// and answer with {"field", "valid", "message"}. The X-Tenant-ID header picks
// the tenant's rule tables through a TablesResolver.
//
// Server runs any handler until its context is cancelled and then drains
// in-flight requests.
package httpapi
