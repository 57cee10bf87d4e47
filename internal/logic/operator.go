package logic

import "github.com/DjordjeVuckovic/truth-table/internal/token"

// OperatorSpec describes a canonical operator.
type OperatorSpec struct {
	Symbol     string
	Precedence int
	Arity      int
	Apply      func(operands ...bool) bool
}

var operators = map[string]OperatorSpec{
	token.Not: {
		Symbol:     token.Not,
		Precedence: 4,
		Arity:      1,
		Apply:      func(v ...bool) bool { return !v[0] },
	},
	token.Xor: {
		Symbol:     token.Xor,
		Precedence: 4,
		Arity:      2,
		Apply:      func(v ...bool) bool { return v[0] != v[1] },
	},
	token.And: {
		Symbol:     token.And,
		Precedence: 2,
		Arity:      2,
		Apply:      func(v ...bool) bool { return v[0] && v[1] },
	},
	token.Or: {
		Symbol:     token.Or,
		Precedence: 1,
		Arity:      2,
		Apply:      func(v ...bool) bool { return v[0] || v[1] },
	},
}

// LookupOperator returns the spec of a canonical operator symbol.
func LookupOperator(symbol string) (OperatorSpec, bool) {
	op, ok := operators[symbol]
	return op, ok
}
