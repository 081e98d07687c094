package stations

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ubuntu/decorate"
	"gopkg.in/yaml.v3"
)

// Format selects how rows are written.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned when the requested output format is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render writes the rows to w in the requested format. Every format emits the
// full fixed column set, also for zero rows.
func Render(w io.Writer, rows []Row, format Format) (err error) {
	defer decorate.OnError(&err, "could not render stations as %s", format)

	switch format {
	case FormatTable:
		return renderTable(w, rows)
	case FormatCSV:
		return renderCSV(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if err := writeTabbed(tw, Columns()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writeTabbed(tw, r.Values()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeTabbed(w io.Writer, cells []string) error {
	for i, c := range cells {
		if i > 0 {
			if _, err := io.WriteString(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func renderCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
