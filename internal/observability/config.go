package observability

import (
	"strings"

	"github.com/smallbiznis/oilimports/internal/config"
)

// Config is the observability view of the application config.
type Config struct {
	ServiceName string
	Environment string
	Version     string

	LogLevel  string
	LogFormat string

	Otel OtelConfig
}

// OtelConfig selects the OTLP exporter shared by traces and metrics.
type OtelConfig struct {
	Enabled       bool
	Endpoint      string
	Protocol      string
	SamplingRatio float64
}

func LoadConfig(cfg config.Config) Config {
	name := strings.TrimSpace(cfg.AppName)
	if name == "" {
		name = "oilimports"
	}
	return Config{
		ServiceName: name,
		Environment: strings.TrimSpace(cfg.Environment),
		Version:     strings.TrimSpace(cfg.AppVersion),
		LogLevel:    strings.TrimSpace(cfg.LogLevel),
		LogFormat:   strings.TrimSpace(cfg.LogFormat),
		Otel: OtelConfig{
			Enabled:       cfg.OtelEnabled,
			Endpoint:      strings.TrimSpace(cfg.OTLPEndpoint),
			Protocol:      strings.TrimSpace(cfg.OTLPProtocol),
			SamplingRatio: cfg.OtelSamplingRatio,
		},
	}
}

// Debug is true for debug logging or a non-production local environment.
func (c Config) Debug() bool {
	if strings.EqualFold(c.LogLevel, "debug") {
		return true
	}
	switch strings.ToLower(c.Environment) {
	case "dev", "development", "local", "test":
		return true
	}
	return false
}
