package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/observability"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-table/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type TruthApiConfig struct {
	Generator truthtable.Config
	Telemetry observability.ProviderConfig
	LogLevel  slog.Level
}

func (as *AppConfig) Load() (*TruthApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/truth_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	maxVars, err := env.Int("MAX_VARIABLES", truthtable.DefaultMaxVariables)
	if err != nil {
		return nil, err
	}
	if maxVars < 1 || maxVars > logic.MaxVariablesLimit {
		return nil, fmt.Errorf("MAX_VARIABLES must be between 1 and %d, got %d", logic.MaxVariablesLimit, maxVars)
	}

	parallelism, err := env.Int("PARALLELISM", 1)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
	}

	intervalSeconds, err := env.Int("OTEL_METRIC_INTERVAL_SECONDS", int(observability.DefaultMetricInterval/time.Second))
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "truth-table-api"
	}

	return &TruthApiConfig{
		Generator: truthtable.Config{
			MaxVariables: maxVars,
			Parallelism:  max(parallelism, 1),
		},
		Telemetry: observability.ProviderConfig{
			Enabled:        os.Getenv("OTEL_ENABLED") == "true",
			ServiceName:    serviceName,
			MetricInterval: time.Duration(intervalSeconds) * time.Second,
			Writer:         os.Stderr,
		},
		LogLevel: level,
	}, nil
}
