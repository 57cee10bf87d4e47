package logic

import "github.com/DjordjeVuckovic/truth-table/internal/token"

// ToPostfix converts normalized infix tokens to postfix order using the
// shunting-yard algorithm. An operator only pops operators of strictly greater
// precedence, equal precedence stays on the stack until it is drained.
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	if n := len(tokens); n > 0 && tokens[n-1].Type == token.OPERATOR && tokens[n-1].Value == token.Not {
		return nil, newError(KindTrailingUnaryOperator, token.Not)
	}

	output := make([]token.Token, 0, len(tokens))
	stack := make([]token.Token, 0, len(tokens)/2)

	for _, tok := range tokens {
		switch tok.Type {
		case token.VARIABLE:
			output = append(output, tok)

		case token.LPAREN:
			stack = append(stack, tok)

		case token.RPAREN:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == token.LPAREN {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, newError(KindUnmatchedParenthesis, tok.Value)
			}

		case token.OPERATOR:
			op, ok := LookupOperator(tok.Value)
			if !ok {
				return nil, newError(KindInvalidToken, tok.Value)
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != token.OPERATOR {
					break
				}
				topOp, _ := LookupOperator(top.Value)
				if topOp.Precedence <= op.Precedence {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case token.NUMBER:
			return nil, newError(KindNumericLiteralNotAllowed, tok.Value)

		default:
			return nil, newError(KindInvalidToken, tok.Value)
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Type == token.LPAREN {
			return nil, newError(KindUnmatchedParenthesis, stack[i].Value)
		}
		output = append(output, stack[i])
	}

	return output, nil
}
