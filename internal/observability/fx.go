package observability

import (
	"github.com/smallbiznis/oilimports/internal/observability/logger"
	"github.com/smallbiznis/oilimports/internal/observability/metrics"
	"github.com/smallbiznis/oilimports/internal/observability/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		LoadConfig,
		componentConfigsFrom,
		logger.New,
		tracing.NewProvider,
		metrics.NewProvider,
		metrics.New,
		metrics.NewHTTPMetrics,
	),
	// The tracer provider is global state; build it even though nothing injects it.
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)

type componentConfigs struct {
	fx.Out

	Logger  logger.Config
	Tracing tracing.Config
	Metrics metrics.Config
}

func componentConfigsFrom(cfg Config) componentConfigs {
	return componentConfigs{
		Logger: logger.Config{
			ServiceName: cfg.ServiceName,
			Environment: cfg.Environment,
			Version:     cfg.Version,
			Level:       cfg.LogLevel,
			Format:      cfg.LogFormat,
			Development: cfg.Debug(),
		},
		Tracing: tracing.Config{
			Enabled:          cfg.Otel.Enabled,
			ServiceName:      cfg.ServiceName,
			ServiceVersion:   cfg.Version,
			Environment:      cfg.Environment,
			ExporterEndpoint: cfg.Otel.Endpoint,
			ExporterProtocol: cfg.Otel.Protocol,
			SamplingRatio:    cfg.Otel.SamplingRatio,
		},
		Metrics: metrics.Config{
			Enabled:          cfg.Otel.Enabled,
			ExporterEndpoint: cfg.Otel.Endpoint,
			ExporterProtocol: cfg.Otel.Protocol,
			ServiceName:      cfg.ServiceName,
			Environment:      cfg.Environment,
		},
	}
}
