package logic

import "fmt"

// Kind classifies expression errors.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyExpression
	KindTrailingUnaryOperator
	KindUnmatchedParenthesis
	KindNumericLiteralNotAllowed
	KindInvalidToken
	KindMissingOperand
	KindDanglingOperator
	KindTooManyVariables
)

func (k Kind) String() string {
	switch k {
	case KindEmptyExpression:
		return "empty_expression"
	case KindTrailingUnaryOperator:
		return "trailing_unary_operator"
	case KindUnmatchedParenthesis:
		return "unmatched_parenthesis"
	case KindNumericLiteralNotAllowed:
		return "numeric_literal_not_allowed"
	case KindInvalidToken:
		return "invalid_token"
	case KindMissingOperand:
		return "missing_operand"
	case KindDanglingOperator:
		return "dangling_operator"
	case KindTooManyVariables:
		return "too_many_variables"
	default:
		return "unknown"
	}
}

// Error is returned by every stage of the pipeline. Token holds the offending
// lexeme when there is one.
type Error struct {
	Kind  Kind
	Token string
	Limit int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyExpression:
		return "empty expression"
	case KindTrailingUnaryOperator:
		return fmt.Sprintf("operand needed after unary operator %q", e.Token)
	case KindUnmatchedParenthesis:
		return "unmatched parenthesis"
	case KindNumericLiteralNotAllowed:
		return fmt.Sprintf("numeric literal %q is not allowed, use a variable instead", e.Token)
	case KindInvalidToken:
		return fmt.Sprintf("invalid notation or argument: %q", e.Token)
	case KindMissingOperand:
		if e.Token == "" {
			return "not enough operands"
		}
		return fmt.Sprintf("not enough operands for operator %q", e.Token)
	case KindDanglingOperator:
		return "missing operator between operands"
	case KindTooManyVariables:
		return fmt.Sprintf("expression has more than %d variables", e.Limit)
	default:
		return "invalid expression"
	}
}

// Is reports whether target is an *Error of the same kind, so the sentinels
// below can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrEmptyExpression          = &Error{Kind: KindEmptyExpression}
	ErrTrailingUnaryOperator    = &Error{Kind: KindTrailingUnaryOperator}
	ErrUnmatchedParenthesis     = &Error{Kind: KindUnmatchedParenthesis}
	ErrNumericLiteralNotAllowed = &Error{Kind: KindNumericLiteralNotAllowed}
	ErrInvalidToken             = &Error{Kind: KindInvalidToken}
	ErrMissingOperand           = &Error{Kind: KindMissingOperand}
	ErrDanglingOperator         = &Error{Kind: KindDanglingOperator}
	ErrTooManyVariables         = &Error{Kind: KindTooManyVariables}
)

func newError(kind Kind, tok string) *Error {
	return &Error{Kind: kind, Token: tok}
}
