package truthtable

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/observability"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultMaxVariables = logic.DefaultMaxVariables

// Generator produces truth tables. ErrEmptyExpression from logic signals a
// blank input with nothing to render.
type Generator interface {
	Generate(ctx context.Context, expression string) (*logic.TruthTable, error)
}

type Config struct {
	MaxVariables int
	Parallelism  int
}

type Service struct {
	generator *logic.Generator
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m observability.MetricsRecorder) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithSpanManager(sm observability.SpanManager) Option {
	return func(s *Service) {
		s.spans = sm
	}
}

func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		generator: logic.NewGenerator(
			logic.WithMaxVariables(cfg.MaxVariables),
			logic.WithParallelism(cfg.Parallelism),
		),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs one generation. Expression errors are returned as
// *apperr.ValidationError wrapping the *logic.Error; a blank expression is
// returned as logic.ErrEmptyExpression unchanged.
func (s *Service) Generate(ctx context.Context, expression string) (table *logic.TruthTable, err error) {
	callID := uuid.NewString()
	ctx, span := s.spans.StartGenerateSpan(ctx, expression, callID)
	defer func() {
		if errors.Is(err, logic.ErrEmptyExpression) {
			s.spans.EndSpanWithError(span, nil)
			return
		}
		s.spans.EndSpanWithError(span, err)
	}()

	start := time.Now()
	table, err = s.generator.Generate(ctx, expression)
	elapsed := time.Since(start)

	if errors.Is(err, logic.ErrEmptyExpression) {
		s.logger.Debug("Empty expression, nothing to generate", "call_id", callID)
		return nil, err
	}

	if err != nil {
		s.metrics.RecordGeneration(ctx, 0, 0, elapsed, err)

		var exprErr *logic.Error
		if errors.As(err, &exprErr) {
			s.logger.Info("Invalid expression",
				"call_id", callID,
				"expression", expression,
				"kind", exprErr.Kind.String(),
				"error", err,
			)
			return nil, apperr.NewValidationWrap("invalid expression", err)
		}

		s.logger.Error("Failed to generate truth table", "call_id", callID, "error", err)
		return nil, err
	}

	s.spans.AddSpanEvent(ctx, "table generated",
		attribute.Int("variables", table.Variables.Len()),
		attribute.Int("rows", len(table.Rows)),
	)
	s.metrics.RecordGeneration(ctx, table.Variables.Len(), len(table.Rows), elapsed, nil)
	s.logger.Debug("Truth table generated",
		"call_id", callID,
		"variables", table.Variables.Names(),
		"rows", len(table.Rows),
		"elapsed", elapsed,
	)

	return table, nil
}
