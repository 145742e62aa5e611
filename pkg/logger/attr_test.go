package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/siteconfig/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestIdentifiers(t *testing.T) {
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))

	assert.Equal(t, "tenant_id", logger.TenantID("acme").Key)
	assert.True(t, logger.TenantID("").Equal(slog.Attr{}))

	assert.Equal(t, "site", logger.Record("site").Value.String())
	assert.Equal(t, "field", logger.Field("siteUrl").Key)
	assert.Equal(t, "component", logger.Component("watcher").Key)
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}

func TestOutcome(t *testing.T) {
	attr := logger.Outcome(false, 3, 1)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.False(t, g[0].Value.Bool())
	assert.Equal(t, int64(3), g[1].Value.Int64())
	assert.Equal(t, int64(1), g[2].Value.Int64())
}
