package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/report"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

type cliConfig struct {
	Expression string
	Format     string
	Output     string
	Parallel   int
	MaxVars    int
	LogLevel   string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Expression, "expr", "", "Expression to evaluate, e.g. \"(A && B) || !C\" (or pass it as the first argument)")
	flag.StringVar(&cfg.Format, "format", "table", "Output format: table, json or yaml")
	flag.StringVar(&cfg.Output, "output", "", "Write the table to this file instead of stdout")
	flag.IntVar(&cfg.Parallel, "parallel", 1, "Number of rows evaluated concurrently")
	flag.IntVar(&cfg.MaxVars, "max-vars", truthtable.DefaultMaxVariables, "Maximum number of distinct variables")
	flag.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	flag.Parse()

	if cfg.Expression == "" && flag.NArg() > 0 {
		cfg.Expression = strings.Join(flag.Args(), " ")
	}
	return cfg
}

func (c cliConfig) validate() (report.Format, slog.Level, error) {
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return "", 0, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return "", 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	if c.MaxVars < 1 || c.MaxVars > logic.MaxVariablesLimit {
		return "", 0, fmt.Errorf("max-vars must be between 1 and %d, got %d", logic.MaxVariablesLimit, c.MaxVars)
	}
	if c.Parallel < 1 {
		return "", 0, fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	return format, level, nil
}
