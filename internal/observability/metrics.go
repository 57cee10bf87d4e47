// Package observability records metrics and traces for truth table
// generation through OpenTelemetry. Both have no-op variants for callers
// that run without a configured provider.
package observability

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "truth-table"

// MetricsRecorder records generation metrics.
type MetricsRecorder interface {
	// RecordGeneration records one Generate call. rows is zero on failure.
	RecordGeneration(ctx context.Context, variables, rows int, duration time.Duration, err error)
}

type otelMetrics struct {
	runs    metric.Int64Counter
	errors  metric.Int64Counter
	latency metric.Float64Histogram
	rows    metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter(instrumentationName)

	runs, err := meter.Int64Counter("truthtable.generate.runs",
		metric.WithDescription("Number of truth table generations"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("truthtable.generate.errors",
		metric.WithDescription("Number of failed generations by error kind"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("truthtable.generate.latency_ms",
		metric.WithDescription("Generation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	rows, err := meter.Int64Histogram("truthtable.table.rows",
		metric.WithDescription("Rows per generated table"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		runs:    runs,
		errors:  errs,
		latency: latency,
		rows:    rows,
	}, nil
}

// NewMetricsRecorder returns a recorder backed by the global meter provider,
// or a no-op recorder if the instruments cannot be created.
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

func (m *otelMetrics) RecordGeneration(ctx context.Context, variables, rows int, duration time.Duration, err error) {
	runAttrs := metric.WithAttributes(attribute.Bool("success", err == nil))
	m.runs.Add(ctx, 1, runAttrs)
	m.latency.Record(ctx, float64(duration.Microseconds())/1000, runAttrs)

	if err != nil {
		m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", ErrorKind(err))))
		return
	}
	m.rows.Record(ctx, int64(rows), metric.WithAttributes(attribute.Int("variables", variables)))
}

// ErrorKind returns the expression error kind of err, "internal" otherwise.
func ErrorKind(err error) string {
	var exprErr *logic.Error
	if errors.As(err, &exprErr) {
		return exprErr.Kind.String()
	}
	return "internal"
}
