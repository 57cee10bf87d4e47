package server

import (
	"context"
	"log/slog"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthCheckFunc adapts a probe to HealthChecker. A non-nil error marks the
// service unhealthy and is logged.
type HealthCheckFunc func(ctx context.Context) error

func (f HealthCheckFunc) Healthy(ctx context.Context) bool {
	if err := f(ctx); err != nil {
		slog.Warn("Health check failed", "error", err)
		return false
	}
	return true
}
