package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ============================================================================
// CSV LOADER
// ============================================================================

// ParseCSV parses CSV bytes into a Table. The first row is the header.
// A column is numeric when at least 80% of its non-empty cells parse as
// numbers; other columns are skipped. Unparseable cells in a numeric
// column come through as zero, keeping columns aligned row for row.
func ParseCSV(data []byte) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = toSnakeCase(h)
	}

	raw := make([][]string, len(headers))
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		for i := range headers {
			val := ""
			if i < len(row) {
				val = strings.TrimSpace(row[i])
			}
			raw[i] = append(raw[i], val)
		}
	}

	table := newTable()
	for i, key := range keys {
		if key == "" || !columnIsNumeric(raw[i]) {
			continue
		}
		values := make([]float64, len(raw[i]))
		for j, cell := range raw[i] {
			if f, ok := parseNumber(cell); ok {
				values[j] = f
			}
		}
		table.add(key, values)
	}
	return table, nil
}

// columnIsNumeric applies the 80% threshold over non-empty cells.
func columnIsNumeric(cells []string) bool {
	nonEmpty, numeric := 0, 0
	for _, c := range cells {
		if c == "" {
			continue
		}
		nonEmpty++
		if _, ok := parseNumber(c); ok {
			numeric++
		}
	}
	if nonEmpty == 0 {
		return false
	}
	return numeric >= int(float64(nonEmpty)*0.8)
}

// parseNumber accepts plain floats plus thousands separators and common
// currency prefixes ("1,234.56", "$12").
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimPrefix(s, "£")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}
