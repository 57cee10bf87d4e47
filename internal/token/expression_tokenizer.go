package token

import (
	"strconv"
	"strings"
)

const separator = ' '

// ExpressionTokenizer breaks an expression into lexemes. Repeated identical
// characters are merged ("&&", "||") and consecutive letters form one word.
type ExpressionTokenizer struct{}

func NewExpressionTokenizer() *ExpressionTokenizer {
	return &ExpressionTokenizer{}
}

// Tokenize converts the input string into a slice of lexemes.
// Example: `A && !(b or C)` -> ["A", "&&", "!", "(", "b", "or", "C", ")"]
func (t *ExpressionTokenizer) Tokenize(input string) []string {
	var lexemes []string
	buffer := ""

	for _, ch := range input {
		if ch == separator {
			buffer = ""
			continue
		}

		s := string(ch)
		if buffer != "" && (buffer == s || (isAlphabetic(buffer) && isLetter(ch))) {
			buffer += s
			lexemes[len(lexemes)-1] = buffer
			continue
		}

		buffer = s
		lexemes = append(lexemes, buffer)
	}

	return lexemes
}

// Normalize rewrites word and alternate-symbol operators into their canonical
// symbols. Word forms match case-insensitively. Other lexemes pass through.
func Normalize(lexemes []string) []string {
	normalized := make([]string, len(lexemes))
	for i, lex := range lexemes {
		switch {
		case strings.EqualFold(lex, "and") || lex == "∧":
			normalized[i] = And
		case strings.EqualFold(lex, "or") || lex == "∨":
			normalized[i] = Or
		case strings.EqualFold(lex, "not") || lex == "¬":
			normalized[i] = Not
		case strings.EqualFold(lex, "xor") || lex == Xor:
			normalized[i] = Xor
		default:
			normalized[i] = lex
		}
	}
	return normalized
}

// Classify assigns a type to every lexeme. NUMBER and ILLEGAL tokens are kept
// so the converter can report them in expression order.
func Classify(lexemes []string) []Token {
	tokens := make([]Token, 0, len(lexemes))
	for _, lex := range lexemes {
		tokens = append(tokens, classify(lex))
	}
	return tokens
}

func classify(lex string) Token {
	switch {
	case lex == "":
		return Token{Type: ILLEGAL, Value: lex}
	case isAlphabetic(lex):
		return Variable(lex)
	case lex == "(":
		return Token{Type: LPAREN, Value: lex}
	case lex == ")":
		return Token{Type: RPAREN, Value: lex}
	case lex == And || lex == Or || lex == Not || lex == Xor:
		return Operator(lex)
	case isNumeric(lex):
		return Token{Type: NUMBER, Value: lex}
	default:
		return Token{Type: ILLEGAL, Value: lex}
	}
}

// Lex runs the whole lexical stage: tokenize, normalize and classify.
func Lex(input string) []Token {
	return Classify(Normalize(NewExpressionTokenizer().Tokenize(input)))
}

func isNumeric(lex string) bool {
	if _, err := strconv.ParseFloat(lex, 64); err == nil {
		return true
	}
	return lex[0] >= '0' && lex[0] <= '9'
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if !isLetter(ch) {
			return false
		}
	}
	return true
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
