package metrics

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the domain counters. A nil *Metrics records nothing.
type Metrics struct {
	recordsCreated    metric.Int64Counter
	recordsUpdated    metric.Int64Counter
	recordsDeleted    metric.Int64Counter
	dimensionsCreated metric.Int64Counter
	rateLimitDenied   metric.Int64Counter
}

// New creates the domain counters on provider.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	scope := strings.TrimSpace(cfg.ServiceName)
	if scope == "" {
		scope = "oilimports"
	}
	meter := provider.Meter(scope)

	m := &Metrics{}
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&m.recordsCreated, "oilimports_records_created_total", "Import records inserted, by source."},
		{&m.recordsUpdated, "oilimports_records_updated_total", "Import records patched or replaced, by mode."},
		{&m.recordsDeleted, "oilimports_records_deleted_total", "Import records deleted."},
		{&m.dimensionsCreated, "oilimports_dimensions_created_total", "Dimension rows created on first use, by kind."},
		{&m.rateLimitDenied, "oilimports_rate_limit_denied_total", "Write requests rejected by the rate limiter, by endpoint."},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, err
		}
		*c.dst = counter
	}
	return m, nil
}

// RecordCreated counts n inserted records; source is "single" or "bulk".
func (m *Metrics) RecordCreated(ctx context.Context, source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.recordsCreated.Add(ctx, int64(n), withLabels(attribute.String("source", source)))
}

// RecordUpdated counts one patch or replace.
func (m *Metrics) RecordUpdated(ctx context.Context, mode string) {
	if m == nil {
		return
	}
	m.recordsUpdated.Add(ctx, 1, withLabels(attribute.String("mode", mode)))
}

func (m *Metrics) RecordDeleted(ctx context.Context) {
	if m == nil {
		return
	}
	m.recordsDeleted.Add(ctx, 1)
}

func (m *Metrics) DimensionCreated(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.dimensionsCreated.Add(ctx, 1, withLabels(attribute.String("kind", kind)))
}

func (m *Metrics) RecordRateLimitDenied(ctx context.Context, endpoint string) {
	if m == nil {
		return
	}
	m.rateLimitDenied.Add(ctx, 1, withLabels(attribute.String("endpoint", endpoint)))
}

func withLabels(attrs ...attribute.KeyValue) metric.AddOption {
	return metric.WithAttributes(FilterAttributes(attrs...)...)
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"source":   {},
	"mode":     {},
	"kind":     {},
	"endpoint": {},
}

// FilterAttributes keeps only the low-cardinality label keys. Names and
// identifiers from records never become labels.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; ok {
			out = append(out, attr)
		}
	}
	return out
}
