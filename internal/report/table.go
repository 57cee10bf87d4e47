package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
)

// WriteTable writes an aligned table with one column per variable and the
// expression as the last column.
func WriteTable(t *logic.TruthTable, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := append(t.Variables.Names(), t.Expression)
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, bit := range row.Bits() {
			cells[i] = fmt.Sprintf("%d", bit)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
