package logic

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/truth-table/internal/token"
	"golang.org/x/sync/errgroup"
)

// TruthTable is the result of a successful generation. Every row holds one
// value per variable followed by the expression result.
type TruthTable struct {
	Expression string
	Variables  *VariableIndex
	Postfix    []token.Token
	Rows       []Row
}

// Results returns the last column of the table.
func (t *TruthTable) Results() []bool {
	results := make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		results[i] = row[len(row)-1]
	}
	return results
}

const (
	// DefaultMaxVariables is the limit of a Generator built without
	// WithMaxVariables.
	DefaultMaxVariables = 16
	// MaxVariablesLimit caps every Generator. A table of n variables has 2^n
	// rows, so larger limits cannot be held in memory.
	MaxVariablesLimit = 30
)

// Generator runs the full pipeline. The zero value is not usable, use NewGenerator.
type Generator struct {
	tokenizer    token.Tokenizer
	parallelism  int
	maxVariables int
}

type Option func(*Generator)

// WithTokenizer replaces the default expression tokenizer.
func WithTokenizer(t token.Tokenizer) Option {
	return func(g *Generator) {
		g.tokenizer = t
	}
}

// WithParallelism evaluates rows on up to n goroutines. Values below 2 keep
// evaluation sequential.
func WithParallelism(n int) Option {
	return func(g *Generator) {
		g.parallelism = n
	}
}

// WithMaxVariables rejects expressions with more than n distinct variables.
// Zero, negative values and values above MaxVariablesLimit fall back to
// MaxVariablesLimit.
func WithMaxVariables(n int) Option {
	return func(g *Generator) {
		g.maxVariables = n
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		tokenizer:    token.NewExpressionTokenizer(),
		parallelism:  1,
		maxVariables: DefaultMaxVariables,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the truth table of expression with default settings.
func Generate(expression string) (*TruthTable, error) {
	return NewGenerator().Generate(context.Background(), expression)
}

// Generate builds the truth table of expression. A blank expression returns
// ErrEmptyExpression, which callers treat as "nothing to show". Any other
// error is the first one raised by the pipeline, unwrapped.
func (g *Generator) Generate(ctx context.Context, expression string) (*TruthTable, error) {
	if strings.Trim(expression, " ") == "" {
		return nil, newError(KindEmptyExpression, "")
	}

	tokens := token.Classify(token.Normalize(g.tokenizer.Tokenize(expression)))

	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	index := IndexVariables(tokens)
	if limit := g.variableLimit(); index.Len() > limit {
		return nil, &Error{Kind: KindTooManyVariables, Limit: limit}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := Combinations(index.Len())
	if g.parallelism > 1 && len(rows) > 1 {
		err = evaluateParallel(ctx, postfix, rows, index, g.parallelism)
	} else {
		err = evaluateAll(postfix, rows, index)
	}
	if err != nil {
		return nil, err
	}

	return &TruthTable{
		Expression: expression,
		Variables:  index,
		Postfix:    postfix,
		Rows:       rows,
	}, nil
}

func (g *Generator) variableLimit() int {
	if g.maxVariables <= 0 || g.maxVariables > MaxVariablesLimit {
		return MaxVariablesLimit
	}
	return g.maxVariables
}

func evaluateAll(postfix []token.Token, rows []Row, index *VariableIndex) error {
	for i, row := range rows {
		v, err := Evaluate(postfix, row, index)
		if err != nil {
			return err
		}
		rows[i] = append(row, v)
	}
	return nil
}

// evaluateParallel writes each result into its own row. When several rows
// fail, the error of the lowest row is returned so the outcome matches
// evaluateAll.
func evaluateParallel(ctx context.Context, postfix []token.Token, rows []Row, index *VariableIndex, limit int) error {
	errs := make([]error, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := Evaluate(postfix, rows[i], index)
			if err != nil {
				errs[i] = err
				return err
			}
			rows[i] = append(rows[i], v)
			return nil
		})
	}
	waitErr := g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return waitErr
}
