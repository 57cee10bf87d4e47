package logic

import "github.com/DjordjeVuckovic/truth-table/internal/token"

// Evaluate computes the value of a postfix sequence for one combination.
// row holds one value per column of index. A variable missing from index, or
// a row shorter than its column, is reported as KindInvalidToken; Generate
// never produces either.
func Evaluate(postfix []token.Token, row Row, index *VariableIndex) (bool, error) {
	stack := make([]bool, 0, len(postfix))

	pop := func() (bool, bool) {
		if len(stack) == 0 {
			return false, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, tok := range postfix {
		switch tok.Type {
		case token.VARIABLE:
			col, ok := index.Lookup(tok.Value)
			if !ok || col >= len(row) {
				return false, newError(KindInvalidToken, tok.Value)
			}
			stack = append(stack, row[col])

		case token.OPERATOR:
			op, ok := LookupOperator(tok.Value)
			if !ok {
				return false, newError(KindInvalidToken, tok.Value)
			}
			if len(stack) == 0 {
				return false, newError(KindMissingOperand, tok.Value)
			}
			if op.Arity == 1 {
				v, _ := pop()
				stack = append(stack, op.Apply(v))
				continue
			}
			right, okRight := pop()
			left, okLeft := pop()
			if !okRight || !okLeft {
				return false, newError(KindMissingOperand, tok.Value)
			}
			stack = append(stack, op.Apply(left, right))

		default:
			return false, newError(KindInvalidToken, tok.Value)
		}
	}

	switch len(stack) {
	case 0:
		return false, newError(KindMissingOperand, "")
	case 1:
		return stack[0], nil
	default:
		return false, newError(KindDanglingOperator, "")
	}
}
