package httpapi_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/siteconfig/pkg/httpapi"
	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

func TestMetricsObserve(t *testing.T) {
	t.Parallel()

	m := httpapi.NewMetrics()
	m.Observe(httpapi.RecordSite, validator.Result{Valid: true, Warnings: []string{"a", "b"}}, time.Millisecond)
	m.Observe(httpapi.RecordSite, validator.Result{Valid: false}, time.Millisecond)
	m.Observe(httpapi.RecordClient, validator.Result{Valid: true}, time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "siteconfig_validations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "one series per record and outcome")

	count, err = testutil.GatherAndCount(m.Registry(), "siteconfig_validation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var nilMetrics *httpapi.Metrics
	assert.NotPanics(t, func() {
		nilMetrics.Observe(httpapi.RecordSite, validator.Result{}, 0)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	m := httpapi.NewMetrics()
	h := newTestHandler(httpapi.WithMetrics(m))

	do(t, h, http.MethodPost, "/v1/sites/validate", validSiteJSON)
	do(t, h, http.MethodPost, "/v1/sites/validate", `{}`)
	do(t, h, http.MethodPost, "/v1/clients/validate", `{}`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `siteconfig_validations_total{outcome="valid",record="site"} 1`)
	assert.Contains(t, body, `siteconfig_validations_total{outcome="invalid",record="site"} 1`)
	assert.Contains(t, body, `siteconfig_validations_total{outcome="invalid",record="client"} 1`)
	assert.Contains(t, body, "siteconfig_validation_duration_seconds_bucket")
}

func TestMetricsDisabled(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestHandler(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
