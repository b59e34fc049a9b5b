// Package figfile loads figure descriptions from JSON or YAML files and
// converts them into renderable figures. A description carries the same
// loosely-structured optional fields a workflow step would emit; the
// conversion into figure types is where the mutually-exclusive
// coordinate forms are checked and turned into tagged unions.
package figfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plotspec-org/plotspec/dataset"
	"github.com/plotspec-org/plotspec/figure"
)

// ============================================================================
// FILE SCHEMA
// ============================================================================

// File is one figure description document.
type File struct {
	Title   string      `json:"title" yaml:"title"`
	Variant string      `json:"variant" yaml:"variant"` // line, surface, scatter
	Traces  []TraceSpec `json:"traces" yaml:"traces"`
	Axes    []AxisSpec  `json:"axes" yaml:"axes"`
}

// TraceSpec mirrors figure.Trace with every optional field nullable, the
// way a loosely-structured producer writes it. Exactly one of each
// coordinate group must be present per axis: x / x0+dx / xcolumn, and
// likewise for y.
type TraceSpec struct {
	Name  string `json:"name" yaml:"name"`
	XAxis string `json:"xaxis,omitempty" yaml:"xaxis,omitempty"`
	YAxis string `json:"yaxis,omitempty" yaml:"yaxis,omitempty"`
	ZAxis string `json:"zaxis,omitempty" yaml:"zaxis,omitempty"`

	X  []float64 `json:"x,omitempty" yaml:"x,omitempty"`
	X0 *float64  `json:"x0,omitempty" yaml:"x0,omitempty"`
	DX *float64  `json:"dx,omitempty" yaml:"dx,omitempty"`

	Y  []float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Y0 *float64  `json:"y0,omitempty" yaml:"y0,omitempty"`
	DY *float64  `json:"dy,omitempty" yaml:"dy,omitempty"`

	Z [][]float64 `json:"z,omitempty" yaml:"z,omitempty"`

	// Column references resolved against a loaded dataset.
	XColumn string `json:"xcolumn,omitempty" yaml:"xcolumn,omitempty"`
	YColumn string `json:"ycolumn,omitempty" yaml:"ycolumn,omitempty"`

	Color     string `json:"color,omitempty" yaml:"color,omitempty"`
	Dash      string `json:"dash,omitempty" yaml:"dash,omitempty"`
	Width     string `json:"width,omitempty" yaml:"width,omitempty"`
	Fill      string `json:"fill,omitempty" yaml:"fill,omitempty"`
	FillColor string `json:"fillcolor,omitempty" yaml:"fillcolor,omitempty"`

	Visible    *bool `json:"visible,omitempty" yaml:"visible,omitempty"`
	ShowLegend *bool `json:"showlegend,omitempty" yaml:"showlegend,omitempty"`

	HoverTemplate string `json:"hovertemplate,omitempty" yaml:"hovertemplate,omitempty"`
	XLabel        string `json:"xlabel,omitempty" yaml:"xlabel,omitempty"`
	YLabel        string `json:"ylabel,omitempty" yaml:"ylabel,omitempty"`
	XUnits        string `json:"xunits,omitempty" yaml:"xunits,omitempty"`
	YUnits        string `json:"yunits,omitempty" yaml:"yunits,omitempty"`
}

// AxisSpec mirrors figure.Axis.
type AxisSpec struct {
	Name       string     `json:"name" yaml:"name"`
	Label      string     `json:"label" yaml:"label"`
	Start      float64    `json:"start" yaml:"start"`
	Stop       float64    `json:"stop" yaml:"stop"`
	Range      *[]float64 `json:"range,omitempty" yaml:"range,omitempty"`
	Anchor     string     `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Overlaying string     `json:"overlaying,omitempty" yaml:"overlaying,omitempty"`
	Position   *float64   `json:"position,omitempty" yaml:"position,omitempty"`
	Side       string     `json:"side,omitempty" yaml:"side,omitempty"`
	TickMode   string     `json:"tickmode,omitempty" yaml:"tickmode,omitempty"`
	SceneRole  string     `json:"scene,omitempty" yaml:"scene,omitempty"`
}

// ============================================================================
// LOADING
// ============================================================================

// Load reads a figure description by extension: .json, .yaml or .yml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return nil, fmt.Errorf("unsupported figure file %q (want .json, .yaml or .yml)", path)
}

// ParseJSON parses a JSON figure description.
func ParseJSON(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing figure JSON: %w", err)
	}
	return &f, nil
}

// ParseYAML parses a YAML figure description.
func ParseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing figure YAML: %w", err)
	}
	return &f, nil
}

// ============================================================================
// CONVERSION
// ============================================================================

// Figure converts the description into a renderable figure. Column
// references are resolved against table, which may be nil when the file
// carries all data inline. The both/neither coordinate states expressible
// in a loose file are rejected here, before rendering.
func (f *File) Figure(table *dataset.Table) (figure.Figure, error) {
	variant, err := parseVariant(f.Variant)
	if err != nil {
		return figure.Figure{}, err
	}

	fig := figure.Figure{
		Title:   f.Title,
		Variant: variant,
	}

	for i, ts := range f.Traces {
		trace, err := ts.trace(table)
		if err != nil {
			return figure.Figure{}, fmt.Errorf("trace %d (%q): %w", i, ts.Name, err)
		}
		fig.Traces = append(fig.Traces, trace)
	}

	for _, as := range f.Axes {
		axis := figure.Axis{
			Name:       as.Name,
			Label:      as.Label,
			Domain:     [2]float64{as.Start, as.Stop},
			Anchor:     as.Anchor,
			Overlaying: as.Overlaying,
			Position:   as.Position,
			Side:       as.Side,
			TickMode:   as.TickMode,
			SceneRole:  as.SceneRole,
		}
		if as.Range != nil {
			if len(*as.Range) != 2 {
				return figure.Figure{}, fmt.Errorf("axis %q: range must have exactly 2 values", as.Name)
			}
			axis.Range = &[2]float64{(*as.Range)[0], (*as.Range)[1]}
		}
		fig.Axes = append(fig.Axes, axis)
	}

	return fig, nil
}

func (ts TraceSpec) trace(table *dataset.Table) (figure.Trace, error) {
	t := figure.Trace{
		Name:          ts.Name,
		XAxis:         ts.XAxis,
		YAxis:         ts.YAxis,
		ZAxis:         ts.ZAxis,
		Color:         ts.Color,
		Dash:          ts.Dash,
		Width:         ts.Width,
		Fill:          ts.Fill,
		FillColor:     ts.FillColor,
		Visible:       ts.Visible,
		ShowLegend:    ts.ShowLegend,
		HoverTemplate: ts.HoverTemplate,
		XLabel:        ts.XLabel,
		YLabel:        ts.YLabel,
		XUnits:        ts.XUnits,
		YUnits:        ts.YUnits,
	}

	x, err := coords("x", ts.X, ts.X0, ts.DX, ts.XColumn, table)
	if err != nil {
		return figure.Trace{}, err
	}
	t.X = x

	y, err := coords("y", ts.Y, ts.Y0, ts.DY, ts.YColumn, table)
	if err != nil {
		return figure.Trace{}, err
	}
	t.Y = y

	if ts.Z != nil {
		t.Z = figure.Grid(ts.Z)
	}
	return t, nil
}

// coords picks exactly one coordinate form from the nullable file fields.
func coords(letter string, explicit []float64, start, step *float64, column string, table *dataset.Table) (figure.Coords, error) {
	forms := 0
	if explicit != nil {
		forms++
	}
	if start != nil || step != nil {
		forms++
	}
	if column != "" {
		forms++
	}
	if forms > 1 {
		return figure.Coords{}, fmt.Errorf("%w: %s supplies more than one of {%s, %s0/d%s, %scolumn}",
			figure.ErrMalformedTrace, letter, letter, letter, letter, letter)
	}

	switch {
	case explicit != nil:
		return figure.Explicit(explicit...), nil
	case start != nil || step != nil:
		if start == nil || step == nil {
			return figure.Coords{}, fmt.Errorf("%w: %s0 and d%s must be supplied together",
				figure.ErrMalformedTrace, letter, letter)
		}
		return figure.StartStep(*start, *step), nil
	case column != "":
		if table == nil {
			return figure.Coords{}, fmt.Errorf("%scolumn %q given but no dataset loaded", letter, column)
		}
		values, err := table.MustColumn(column)
		if err != nil {
			return figure.Coords{}, err
		}
		return figure.Explicit(values...), nil
	}
	// Leave unset; the renderer rejects it where the variant requires it.
	return figure.Coords{}, nil
}

func parseVariant(s string) (figure.Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "line":
		return figure.Line, nil
	case "surface":
		return figure.Surface, nil
	case "scatter":
		return figure.Scatter, nil
	}
	return 0, fmt.Errorf("unknown variant %q (want line, surface or scatter)", s)
}
