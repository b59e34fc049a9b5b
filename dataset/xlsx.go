package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ============================================================================
// XLSX LOADER
// ============================================================================

// ParseXLSX reads the first sheet of an xlsx workbook into a Table,
// using the same header normalization and numeric classification as the
// CSV loader.
func ParseXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	headers := rows[0]
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = toSnakeCase(h)
	}

	raw := make([][]string, len(headers))
	for _, row := range rows[1:] {
		for i := range headers {
			val := ""
			if i < len(row) {
				val = row[i]
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

// Load reads a data file by extension: .csv or .xlsx.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseCSV(data)
	case ".xlsx":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ParseXLSX(f)
	}
	return nil, fmt.Errorf("unsupported data file %q (want .csv or .xlsx)", path)
}
