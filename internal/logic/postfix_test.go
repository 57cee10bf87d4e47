package logic

import (
	"testing"

	"github.com/DjordjeVuckovic/truth-table/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []string
	}{
		{name: "single variable", expr: "A", want: []string{"A"}},
		{name: "and", expr: "A && B", want: []string{"A", "B", "&&"}},
		{name: "or after and pops and", expr: "A && B || C", want: []string{"A", "B", "&&", "C", "||"}},
		{name: "and after or stays", expr: "A || B && C", want: []string{"A", "B", "C", "&&", "||"}},
		{name: "equal precedence is drained right to left", expr: "A && B && C", want: []string{"A", "B", "C", "&&", "&&"}},
		{name: "parentheses", expr: "(A || B) && C", want: []string{"A", "B", "||", "C", "&&"}},
		{name: "nested parentheses", expr: "!(A && (B || C))", want: []string{"A", "B", "C", "||", "&&", "!"}},
		{name: "not before xor", expr: "!A ⊕ B", want: []string{"A", "B", "⊕", "!"}},
		{name: "not after and", expr: "A && !B", want: []string{"A", "B", "!", "&&"}},
		{name: "empty parentheses", expr: "( )", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postfix, err := ToPostfix(token.Lex(tt.expr))
			require.NoError(t, err)
			assert.Equal(t, tt.want, token.Values(postfix))
			for _, tok := range postfix {
				assert.NotEqual(t, token.LPAREN, tok.Type)
				assert.NotEqual(t, token.RPAREN, tok.Type)
			}
		})
	}
}

func TestToPostfix_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want error
	}{
		{name: "trailing not", expr: "A && B !", want: ErrTrailingUnaryOperator},
		{name: "trailing not wins over invalid token", expr: "$ !", want: ErrTrailingUnaryOperator},
		{name: "close without open", expr: ") A", want: ErrUnmatchedParenthesis},
		{name: "close after operators", expr: "A || B)", want: ErrUnmatchedParenthesis},
		{name: "open never closed", expr: "((A) && B", want: ErrInvalidToken},
		{name: "open never closed spaced", expr: "( (A) && B", want: ErrUnmatchedParenthesis},
		{name: "number", expr: "A || 33", want: ErrNumericLiteralNotAllowed},
		{name: "invalid before number", expr: "# 1", want: ErrInvalidToken},
		{name: "number before invalid", expr: "1 #", want: ErrNumericLiteralNotAllowed},
		{name: "unicode letter", expr: "é && A", want: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToPostfix(token.Lex(tt.expr))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestToPostfix_EmptyInput(t *testing.T) {
	postfix, err := ToPostfix(nil)
	require.NoError(t, err)
	assert.Empty(t, postfix)
}
