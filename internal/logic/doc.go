// Package logic compiles propositional expressions into postfix form and
// evaluates them over every combination of their variables.
//
// Operators, from tightest to loosest binding:
//
//	!   not  ¬     unary negation      precedence 4
//	⊕   xor        exclusive or        precedence 4
//	&&  and  ∧     conjunction         precedence 2
//	||  or   ∨     disjunction         precedence 1
//
// Operators of equal precedence are not popped by each other during
// conversion, so `!A ⊕ B` compiles to `A B ⊕ !`.
//
// Example:
//
//	table, err := logic.Generate("(A && B) || C")
//	if errors.Is(err, logic.ErrEmptyExpression) {
//	    // nothing to render
//	}
//	for _, row := range table.Rows {
//	    fmt.Println(row.Bits())
//	}
package logic
