package observability

import (
	"testing"

	"github.com/smallbiznis/oilimports/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaultsServiceName(t *testing.T) {
	cfg := LoadConfig(config.Config{Environment: "production", LogLevel: "info", OtelEnabled: true, OTLPProtocol: "http"})

	assert.Equal(t, "oilimports", cfg.ServiceName)
	assert.False(t, cfg.Debug())
	assert.True(t, cfg.Otel.Enabled)

	parts := componentConfigsFrom(cfg)
	assert.Equal(t, "http", parts.Tracing.ExporterProtocol)
	assert.Equal(t, "http", parts.Metrics.ExporterProtocol)
	assert.False(t, parts.Logger.Development)
}

func TestDebug(t *testing.T) {
	assert.True(t, Config{LogLevel: "DEBUG", Environment: "production"}.Debug())
	assert.True(t, Config{Environment: "local"}.Debug())
	assert.False(t, Config{Environment: "staging"}.Debug())
}
