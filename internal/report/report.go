package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected one of table, json, yaml", s)
	}
}

// Write renders t to w in the given format.
func Write(format Format, t *logic.TruthTable, w io.Writer) error {
	switch format {
	case FormatTable:
		return WriteTable(t, w)
	case FormatJSON:
		return WriteJSON(t, w)
	case FormatYAML:
		return WriteYAML(t, w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteFile renders t into the file at path, replacing it.
func WriteFile(format Format, t *logic.TruthTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := Write(format, t, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	return nil
}
