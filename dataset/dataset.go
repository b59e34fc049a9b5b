// Package dataset loads tabular data files into named numeric columns
// that figure descriptions can reference as trace coordinates.
package dataset

import (
	"fmt"
	"strings"
)

// ============================================================================
// TABLE — ordered numeric columns
// ============================================================================
// Column names are normalized to snake_case so references in figure
// files are stable regardless of header capitalization or spacing.
// Non-numeric columns are skipped at parse time — trace coordinates are
// always plain numbers.
// ============================================================================

// Table holds the numeric columns of one loaded data file.
type Table struct {
	names []string
	cols  map[string][]float64
}

func newTable() *Table {
	return &Table{cols: make(map[string][]float64)}
}

func (t *Table) add(name string, values []float64) {
	if _, exists := t.cols[name]; !exists {
		t.names = append(t.names, name)
	}
	t.cols[name] = values
}

// Names returns the column names in file order.
func (t *Table) Names() []string { return t.names }

// Column returns the values of a named column. The name is normalized
// the same way headers are, so "Story Points" and "story_points" match.
func (t *Table) Column(name string) ([]float64, bool) {
	v, ok := t.cols[toSnakeCase(name)]
	return v, ok
}

// MustColumn is Column returning an error instead of a flag.
func (t *Table) MustColumn(name string) ([]float64, error) {
	v, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("no numeric column %q (have: %s)",
			name, strings.Join(t.names, ", "))
	}
	return v, nil
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
