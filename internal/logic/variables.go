package logic

import (
	"encoding/json"

	"github.com/DjordjeVuckovic/truth-table/internal/token"
)

// VariableIndex maps variable names to table columns in first-appearance order.
type VariableIndex struct {
	names   []string
	columns map[string]int
}

func newVariableIndex() *VariableIndex {
	return &VariableIndex{columns: make(map[string]int)}
}

// IndexVariables assigns each distinct variable the next column, starting at 0.
func IndexVariables(tokens []token.Token) *VariableIndex {
	idx := newVariableIndex()
	for _, tok := range tokens {
		if tok.Type != token.VARIABLE {
			continue
		}
		if _, seen := idx.columns[tok.Value]; seen {
			continue
		}
		idx.columns[tok.Value] = len(idx.names)
		idx.names = append(idx.names, tok.Value)
	}
	return idx
}

func (v *VariableIndex) Len() int {
	if v == nil {
		return 0
	}
	return len(v.names)
}

// Lookup returns the column of name.
func (v *VariableIndex) Lookup(name string) (int, bool) {
	if v == nil {
		return 0, false
	}
	col, ok := v.columns[name]
	return col, ok
}

// Names returns the variables in column order.
func (v *VariableIndex) Names() []string {
	if v == nil {
		return nil
	}
	names := make([]string, len(v.names))
	copy(names, v.names)
	return names
}

func (v *VariableIndex) MarshalJSON() ([]byte, error) {
	names := v.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

func (v *VariableIndex) MarshalYAML() (interface{}, error) {
	return v.Names(), nil
}
