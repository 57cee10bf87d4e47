package dto

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTruthTableResponse(t *testing.T) {
	table, err := logic.Generate("B ∨ ¬A")
	require.NoError(t, err)

	resp := NewTruthTableResponse(table)

	assert.Equal(t, "B ∨ ¬A", resp.Expression)
	assert.Equal(t, []string{"B", "A"}, resp.Variables)
	assert.Equal(t, []string{"B", "A", "!", "||"}, resp.Postfix)
	assert.Equal(t, [][]int{{0, 0, 1}, {0, 1, 0}, {1, 0, 1}, {1, 1, 1}}, resp.Rows)
	assert.Equal(t, 4, resp.RowCount)
}

func TestTruthTableResponse_JSON(t *testing.T) {
	table, err := logic.Generate("A")
	require.NoError(t, err)

	data, err := json.Marshal(NewTruthTableResponse(table))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"expression": "A",
		"variables": ["A"],
		"postfix": ["A"],
		"rows": [[0, 0], [1, 1]],
		"row_count": 2
	}`, string(data))
}
