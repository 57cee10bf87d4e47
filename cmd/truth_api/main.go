// Package main Truth Table API
// @title Truth Table API
// @version 1.0
// @description Generates truth tables for propositional logic expressions
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/truth-table/docs"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/observability"
	"github.com/DjordjeVuckovic/truth-table/internal/router"
	"github.com/DjordjeVuckovic/truth-table/internal/server"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	pkgserver "github.com/DjordjeVuckovic/truth-table/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	shutdownTelemetry, err := observability.SetupProviders(cfg.Telemetry)
	if err != nil {
		slog.Error("Failed to set up telemetry", "error", err)
		os.Exit(1)
	}
	slog.Info("Telemetry configured", "enabled", cfg.Telemetry.Enabled, "service", cfg.Telemetry.ServiceName)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Tautology with one variable; fails only if the pipeline itself is broken.
	healthChecker := pkgserver.HealthCheckFunc(func(ctx context.Context) error {
		_, err := logic.Generate("A || !A")
		return err
	})

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*").
		OnShutdown(shutdownTelemetry)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Truth Table API is running")
	})

	svc := truthtable.NewService(cfg.Generator,
		truthtable.WithMetrics(observability.NewMetricsRecorder()),
		truthtable.WithSpanManager(observability.NewSpanManager()),
	)

	router.NewTruthTableRouter(s.Echo, svc).Bind()

	slog.Info("Generator configured",
		"max_variables", cfg.Generator.MaxVariables,
		"parallelism", cfg.Generator.Parallelism)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
