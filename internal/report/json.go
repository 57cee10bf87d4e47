package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/truth-table/internal/dto"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
)

func WriteJSON(t *logic.TruthTable, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dto.NewTruthTableResponse(t)); err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return nil
}
