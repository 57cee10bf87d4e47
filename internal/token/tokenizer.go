package token

// Tokenizer splits a raw expression into lexemes.
type Tokenizer interface {
	Tokenize(input string) []string
}
