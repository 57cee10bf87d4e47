package report

import (
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/truth-table/internal/dto"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"gopkg.in/yaml.v3"
)

func WriteYAML(t *logic.TruthTable, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dto.NewTruthTableResponse(t)); err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return enc.Close()
}
