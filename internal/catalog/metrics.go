package catalog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/fyrsmithlabs/componentd/internal/catalog"

// Metrics holds registry-related metrics. All instruments come from the
// global meter provider and are safe no-ops when none is configured.
type Metrics struct {
	meter           metric.Meter
	logger          *zap.Logger
	refreshes       metric.Int64Counter
	refreshDuration metric.Float64Histogram
	components      metric.Int64Gauge
	searches        metric.Int64Counter
}

// NewMetrics creates a new Metrics instance.
func NewMetrics(logger *zap.Logger) *Metrics {
	m := &Metrics{
		meter:  otel.Meter(instrumentationName),
		logger: logger,
	}
	m.init()
	return m
}

func (m *Metrics) init() {
	var err error

	m.refreshes, err = m.meter.Int64Counter(
		"componentd.registry.refreshes_total",
		metric.WithDescription("Total number of registry refresh attempts"),
		metric.WithUnit("{refresh}"),
	)
	if err != nil {
		m.logger.Warn("failed to create refreshes counter", zap.Error(err))
	}

	m.refreshDuration, err = m.meter.Float64Histogram(
		"componentd.registry.refresh_duration_seconds",
		metric.WithDescription("Duration of registry refreshes"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120),
	)
	if err != nil {
		m.logger.Warn("failed to create refresh duration histogram", zap.Error(err))
	}

	m.components, err = m.meter.Int64Gauge(
		"componentd.registry.components",
		metric.WithDescription("Number of components in the current snapshot"),
		metric.WithUnit("{component}"),
	)
	if err != nil {
		m.logger.Warn("failed to create components gauge", zap.Error(err))
	}

	m.searches, err = m.meter.Int64Counter(
		"componentd.registry.searches_total",
		metric.WithDescription("Total number of component searches"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		m.logger.Warn("failed to create searches counter", zap.Error(err))
	}
}

// RecordRefresh records one refresh attempt.
func (m *Metrics) RecordRefresh(ctx context.Context, components int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(attribute.String("status", status))

	if m.refreshes != nil {
		m.refreshes.Add(ctx, 1, attrs)
	}
	if m.refreshDuration != nil {
		m.refreshDuration.Record(ctx, duration.Seconds(), attrs)
	}
	if err == nil && m.components != nil {
		m.components.Record(ctx, int64(components))
	}
}

// RecordSearch records one search and its result count.
func (m *Metrics) RecordSearch(ctx context.Context, results int) {
	if m.searches == nil {
		return
	}
	m.searches.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("matched", results > 0),
	))
}
