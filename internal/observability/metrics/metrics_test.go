package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestFilterAttributesDropsForbiddenLabels(t *testing.T) {
	attrs := FilterAttributes(
		attribute.String("kind", "origin"),
		attribute.String("origin_name", "Canada"),
		attribute.String("source", "bulk"),
	)
	require.Len(t, attrs, 2)
	assert.Equal(t, attribute.Key("kind"), attrs[0].Key)
	assert.Equal(t, attribute.Key("source"), attrs[1].Key)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.RecordCreated(ctx, "single", 1)
	m.RecordUpdated(ctx, "patch")
	m.RecordDeleted(ctx)
	m.DimensionCreated(ctx, "grade")
	m.RecordRateLimitDenied(ctx, "/crude-oil-imports")
}

func TestNewWithNoopProvider(t *testing.T) {
	m, err := New(Config{ServiceName: "oilimports"}, noop.NewMeterProvider())
	require.NoError(t, err)
	m.RecordCreated(context.Background(), "bulk", 3)
}

func TestCountersRecordThroughSDK(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := New(Config{}, provider)
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordCreated(ctx, "bulk", 3)
	m.RecordCreated(ctx, "single", 0)
	m.DimensionCreated(ctx, "grade")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	totals := map[string]int64{}
	for _, md := range rm.ScopeMetrics[0].Metrics {
		sum, ok := md.Data.(metricdata.Sum[int64])
		require.True(t, ok, md.Name)
		for _, dp := range sum.DataPoints {
			totals[md.Name] += dp.Value
		}
	}
	assert.Equal(t, int64(3), totals["oilimports_records_created_total"])
	assert.Equal(t, int64(1), totals["oilimports_dimensions_created_total"])
}
