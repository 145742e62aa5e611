package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/siteconfig/pkg/httpapi"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("db down") }

	tests := []struct {
		name   string
		checks []httpapi.ReadinessCheck
		status int
		body   string
	}{
		{name: "liveness", status: http.StatusOK, body: "ALIVE"},
		{name: "ready", checks: []httpapi.ReadinessCheck{ok, ok}, status: http.StatusOK, body: "READY"},
		{name: "not ready", checks: []httpapi.ReadinessCheck{ok, down}, status: http.StatusServiceUnavailable, body: "NOT_READY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newTestHandler(httpapi.WithReadinessChecks(tt.checks...))
			rec := do(t, h, http.MethodGet, "/healthz", "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
