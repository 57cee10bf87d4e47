package dto

import (
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/token"
)

// TruthTableRequest carries the expression for both query string and JSON body.
type TruthTableRequest struct {
	Expression string `json:"expression" query:"expression" example:"(A && B) || !C"`
}

// TruthTableResponse is the wire form of a generated table. Rows hold 0/1
// values, one per variable, with the expression result last.
type TruthTableResponse struct {
	Expression string   `json:"expression" yaml:"expression" example:"A && B"`
	Variables  []string `json:"variables" yaml:"variables"`
	Postfix    []string `json:"postfix" yaml:"postfix"`
	Rows       [][]int  `json:"rows" yaml:"rows,flow"`
	RowCount   int      `json:"row_count" yaml:"row_count" example:"4"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"unmatched parenthesis"`
	Kind  string `json:"kind,omitempty" example:"unmatched_parenthesis"`
	Title string `json:"title,omitempty" example:"validation error"`
}

func NewTruthTableResponse(t *logic.TruthTable) TruthTableResponse {
	rows := make([][]int, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Bits()
	}

	variables := t.Variables.Names()
	if variables == nil {
		variables = []string{}
	}

	return TruthTableResponse{
		Expression: t.Expression,
		Variables:  variables,
		Postfix:    token.Values(t.Postfix),
		Rows:       rows,
		RowCount:   len(rows),
	}
}
