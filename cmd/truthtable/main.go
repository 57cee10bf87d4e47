package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/report"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

func main() {
	cfg := parseFlags()

	format, level, err := cfg.validate()
	if err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := truthtable.NewService(truthtable.Config{
		MaxVariables: cfg.MaxVars,
		Parallelism:  cfg.Parallel,
	})

	table, err := svc.Generate(ctx, cfg.Expression)
	if errors.Is(err, logic.ErrEmptyExpression) {
		slog.Debug("Empty expression, nothing to generate")
		return
	}
	if err != nil {
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			slog.Error("Invalid expression", "expression", cfg.Expression, "kind", ve.Kind(), "error", ve.Err)
			os.Exit(1)
		}
		slog.Error("Failed to generate truth table", "error", err)
		os.Exit(1)
	}

	if cfg.Output != "" {
		err = report.WriteFile(format, table, cfg.Output)
	} else {
		err = report.Write(format, table, os.Stdout)
	}
	if err != nil {
		slog.Error("Failed to write truth table", "error", err)
		os.Exit(1)
	}

	if cfg.Output != "" {
		slog.Info("Truth table written", "path", cfg.Output, "rows", len(table.Rows))
	}
}
