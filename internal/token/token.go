package token

type Type int

const (
	ILLEGAL Type = iota
	VARIABLE
	OPERATOR
	LPAREN
	RPAREN
	NUMBER
)

func (t Type) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case VARIABLE:
		return "VARIABLE"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case NUMBER:
		return "NUMBER"
	default:
		return "UNKNOWN"
	}
}

// Canonical operator symbols produced by Normalize.
const (
	And = "&&"
	Or  = "||"
	Not = "!"
	Xor = "⊕"
)

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  Type
	Value string
}

func Variable(name string) Token {
	return Token{Type: VARIABLE, Value: name}
}

func Operator(symbol string) Token {
	return Token{Type: OPERATOR, Value: symbol}
}

func (t Token) String() string {
	return t.Value
}

// Values returns the literal values of tokens in order.
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return values
}
