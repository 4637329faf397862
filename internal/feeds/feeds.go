// Package feeds loads the tabular input feeds: sportsbook props, projections
// and manual overrides. Column presence is validated before any row parsing,
// so a missing required column is a load-time error, never a per-row one.
package feeds

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yourusername/prop-edge/internal/models"
)

// header maps canonical snake_case column names to their index in the file.
type header map[string]int

// readHeader canonicalizes the first record and verifies required columns.
func readHeader(reader *csv.Reader, source string, required []string) (header, error) {
	record, err := reader.Read()
	if err != nil {
		return nil, &models.LoadError{Source: source, Err: fmt.Errorf("reading header: %w", err)}
	}
	columns := make(header, len(record))
	for i, name := range record {
		columns[snakeCase(name)] = i
	}
	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &models.LoadError{Source: source, Missing: missing}
	}
	return columns, nil
}

func (h header) field(record []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func (h header) float(record []string, name, source string, line int) (float64, error) {
	raw := h.field(record, name)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &models.LoadError{
			Source: source,
			Err:    fmt.Errorf("row %d: column %q: cannot parse %q as number", line, name, raw),
		}
	}
	return value, nil
}

// snakeCase folds a raw header label to lowercase snake_case.
func snakeCase(value string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r + ('a' - 'A'))
		} else if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.Trim(out, "_")
}

func readAll(reader *csv.Reader, source string) ([][]string, error) {
	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, &models.LoadError{Source: source, Err: err}
		}
		records = append(records, record)
	}
}
