package logic

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/truth-table/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	a, b := token.Variable("A"), token.Variable("B")
	and, or, xor, not := token.Operator(token.And), token.Operator(token.Or), token.Operator(token.Xor), token.Operator(token.Not)
	index := IndexVariables([]token.Token{a, b})

	tests := []struct {
		name    string
		postfix []token.Token
		row     Row
		want    bool
	}{
		{name: "variable", postfix: []token.Token{a}, row: Row{true, false}, want: true},
		{name: "and false", postfix: []token.Token{a, b, and}, row: Row{true, false}, want: false},
		{name: "and true", postfix: []token.Token{a, b, and}, row: Row{true, true}, want: true},
		{name: "or", postfix: []token.Token{a, b, or}, row: Row{false, true}, want: true},
		{name: "xor same", postfix: []token.Token{a, b, xor}, row: Row{true, true}, want: false},
		{name: "xor different", postfix: []token.Token{a, b, xor}, row: Row{false, true}, want: true},
		{name: "not", postfix: []token.Token{a, not}, row: Row{false, false}, want: true},
		{name: "double not", postfix: []token.Token{a, not, not}, row: Row{true, false}, want: true},
		{name: "not of and", postfix: []token.Token{a, b, and, not}, row: Row{true, true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.postfix, tt.row, index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	a, b := token.Variable("A"), token.Variable("B")
	index := IndexVariables([]token.Token{a, b})
	row := Row{true, false}

	tests := []struct {
		name    string
		postfix []token.Token
		want    error
	}{
		{name: "binary on empty stack", postfix: []token.Token{token.Operator(token.And)}, want: ErrMissingOperand},
		{name: "binary with one operand", postfix: []token.Token{a, token.Operator(token.Or)}, want: ErrMissingOperand},
		{name: "unary on empty stack", postfix: []token.Token{token.Operator(token.Not)}, want: ErrMissingOperand},
		{name: "nothing to evaluate", postfix: nil, want: ErrMissingOperand},
		{name: "two values left", postfix: []token.Token{a, b}, want: ErrDanglingOperator},
		{name: "unknown variable", postfix: []token.Token{token.Variable("Z")}, want: ErrInvalidToken},
		{name: "unknown operator", postfix: []token.Token{a, b, token.Operator("->")}, want: ErrInvalidToken},
		{name: "parenthesis", postfix: []token.Token{{Type: token.LPAREN, Value: "("}}, want: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.postfix, row, index)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluate_ShortRow(t *testing.T) {
	a, b := token.Variable("A"), token.Variable("B")
	index := IndexVariables([]token.Token{a, b})

	_, err := Evaluate([]token.Token{a, b, token.Operator(token.And)}, Row{true}, index)
	require.ErrorIs(t, err, ErrInvalidToken)

	var exprErr *Error
	require.True(t, errors.As(err, &exprErr))
	assert.Equal(t, "B", exprErr.Token)
}

func TestEvaluate_OperandOrder(t *testing.T) {
	index := IndexVariables([]token.Token{token.Variable("A"), token.Variable("B")})
	postfix := []token.Token{token.Variable("A"), token.Variable("B"), token.Operator(token.And), token.Variable("A"), token.Operator(token.Or)}

	got, err := Evaluate(postfix, Row{true, false}, index)
	require.NoError(t, err)
	assert.True(t, got)
}
