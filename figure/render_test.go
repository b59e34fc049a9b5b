package figure

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Helpers
// ============================================================================

func renderJSON(t *testing.T, fig Figure) map[string]any {
	t.Helper()
	spec, err := Render(fig)
	require.NoError(t, err)

	raw, err := spec.JSON(false)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}

func dataOf(t *testing.T, parsed map[string]any) []any {
	t.Helper()
	data, ok := parsed["data"].([]any)
	require.True(t, ok, "spec must carry a data array")
	return data
}

func xyAxes() []Axis {
	return []Axis{
		{Name: "x", Anchor: "y", Domain: [2]float64{0, 1}, Label: "Volume"},
		{Name: "y", Anchor: "x", Domain: [2]float64{0, 1}, Label: "Energy"},
	}
}

// ============================================================================
// COORDINATE PASS-THROUGH AND MUTUAL EXCLUSIVITY
// ============================================================================

func TestExplicitSequencesPassThroughExactly(t *testing.T) {
	x := []float64{0.5, 1.5, 2.25}
	y := []float64{-1, 0, 4.125}

	parsed := renderJSON(t, Figure{
		Title:   "pass-through",
		Variant: Line,
		Traces: []Trace{{
			Name: "t", X: Explicit(x...), Y: Explicit(y...),
		}},
		Axes: xyAxes(),
	})

	trace := dataOf(t, parsed)[0].(map[string]any)
	assert.Equal(t, []any{0.5, 1.5, 2.25}, trace["x"])
	assert.Equal(t, []any{-1.0, 0.0, 4.125}, trace["y"])
	assert.NotContains(t, trace, "x0")
	assert.NotContains(t, trace, "dx")
	assert.NotContains(t, trace, "y0")
	assert.NotContains(t, trace, "dy")
}

func TestStartStepEmitsNoExplicitSequence(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces: []Trace{{
			Name: "t", X: StartStep(0, 0.25), Y: StartStep(10, -1),
		}},
		Axes: xyAxes(),
	})

	trace := dataOf(t, parsed)[0].(map[string]any)
	assert.Equal(t, 0.0, trace["x0"])
	assert.Equal(t, 0.25, trace["dx"])
	assert.Equal(t, 10.0, trace["y0"])
	assert.Equal(t, -1.0, trace["dy"])
	assert.NotContains(t, trace, "x")
	assert.NotContains(t, trace, "y")
}

// ============================================================================
// HOVER TEMPLATE
// ============================================================================

func TestDefaultHoverTemplate(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces: []Trace{{
			Name: "E",
			X:    Explicit(1), Y: Explicit(2),
			XLabel: "Volume", XUnits: "Å^3",
			YLabel: "Energy", YUnits: "kcal/mol",
		}},
		Axes: xyAxes(),
	})

	trace := dataOf(t, parsed)[0].(map[string]any)
	assert.Equal(t, "Volume=%{x} Å^3<br>Energy=%{y} kcal/mol", trace["hovertemplate"])
}

func TestExplicitHoverTemplateIsVerbatim(t *testing.T) {
	custom := "t=%{x} fs<br>T=%{y} K<extra></extra>"
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces: []Trace{{
			Name: "T", X: Explicit(1), Y: Explicit(2),
			HoverTemplate: custom,
			XLabel:        "ignored", YLabel: "ignored",
		}},
		Axes: xyAxes(),
	})

	trace := dataOf(t, parsed)[0].(map[string]any)
	assert.Equal(t, custom, trace["hovertemplate"])
}

// ============================================================================
// CONDITIONAL FIELD EMISSION
// ============================================================================

func TestFillOmittedWhenUnset(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces:  []Trace{{Name: "t", X: Explicit(1), Y: Explicit(2)}},
		Axes:    xyAxes(),
	})

	trace := dataOf(t, parsed)[0].(map[string]any)
	assert.NotContains(t, trace, "fill")
	assert.NotContains(t, trace, "fillcolor")
	assert.NotContains(t, trace, "showlegend")
	assert.NotContains(t, trace, "visible")
}

func TestFillEmittedWithDefaultColor(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces: []Trace{{
			Name: "t", X: Explicit(1), Y: Explicit(2), Fill: "tozeroy",
		}},
		Axes: xyAxes(),
	})

	trace := dataOf(t, parsed)[0].(map[string]any)
	assert.Equal(t, "tozeroy", trace["fill"])
	assert.Equal(t, DefaultFillColor, trace["fillcolor"])
}

func TestStylingDefaults(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces:  []Trace{{Name: "t", X: Explicit(1), Y: Explicit(2)}},
		Axes:    xyAxes(),
	})

	line := dataOf(t, parsed)[0].(map[string]any)["line"].(map[string]any)
	want := map[string]any{"color": "#4dbd74", "dash": "solid", "width": "1"}
	if diff := cmp.Diff(want, line); diff != "" {
		t.Errorf("line block mismatch (-want +got):\n%s", diff)
	}
}

func TestStylingOverrides(t *testing.T) {
	show := false
	visible := true
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces: []Trace{{
			Name: "t", X: Explicit(1), Y: Explicit(2),
			Color: "#112233", Dash: "dot", Width: "3",
			ShowLegend: &show, Visible: &visible,
		}},
		Axes: xyAxes(),
	})

	trace := dataOf(t, parsed)[0].(map[string]any)
	line := trace["line"].(map[string]any)
	assert.Equal(t, "#112233", line["color"])
	assert.Equal(t, "dot", line["dash"])
	assert.Equal(t, "3", line["width"])
	assert.Equal(t, false, trace["showlegend"])
	assert.Equal(t, true, trace["visible"])
}

func TestAxisOptionalAttributesOmitted(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces:  []Trace{{Name: "t", X: Explicit(1), Y: Explicit(2)}},
		Axes: []Axis{
			{Name: "x", Domain: [2]float64{0, 1}, Label: "X"},
			{Name: "y", Domain: [2]float64{0, 1}, Label: "Y"},
		},
	})

	layout := parsed["layout"].(map[string]any)
	xaxis := layout["xaxis"].(map[string]any)
	for _, absent := range []string{"anchor", "range", "side", "position", "overlaying", "tickmode"} {
		assert.NotContains(t, xaxis, absent)
	}
	assert.Equal(t, []any{0.0, 1.0}, xaxis["domain"])
	assert.Equal(t, "X", xaxis["title"].(map[string]any)["text"])
}

func TestAxisOptionalAttributesEmitted(t *testing.T) {
	pos := 0.85
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces: []Trace{
			{Name: "a", X: Explicit(1), Y: Explicit(2)},
			{Name: "b", X: Explicit(1), Y: Explicit(2), YAxis: "y2"},
		},
		Axes: []Axis{
			{Name: "x", Domain: [2]float64{0, 0.9}, Label: "X", Anchor: "y"},
			{Name: "y", Domain: [2]float64{0, 1}, Label: "Y", Anchor: "x"},
			{
				Name: "y2", Domain: [2]float64{0, 1}, Label: "Y2",
				Overlaying: "y", Side: "right", Position: &pos,
				Range:    &[2]float64{-5, 5},
				TickMode: "sync",
			},
		},
	})

	layout := parsed["layout"].(map[string]any)
	y2 := layout["yaxis2"].(map[string]any)
	assert.Equal(t, "y", y2["overlaying"])
	assert.Equal(t, "right", y2["side"])
	assert.Equal(t, 0.85, y2["position"])
	assert.Equal(t, []any{-5.0, 5.0}, y2["range"])
	assert.Equal(t, "sync", y2["tickmode"])
}

// ============================================================================
// ORDERING
// ============================================================================

func TestAxisOrderMirrorsInput(t *testing.T) {
	spec, err := Render(Figure{
		Variant: Line,
		Traces:  []Trace{{Name: "t", X: Explicit(1), Y: Explicit(2)}},
		Axes: []Axis{
			{Name: "y2", Domain: [2]float64{0, 1}, Label: "B", Overlaying: "y"},
			{Name: "x", Domain: [2]float64{0, 1}, Label: "A"},
			{Name: "y", Domain: [2]float64{0, 1}, Label: "C"},
		},
	})
	require.NoError(t, err)

	raw, err := spec.JSON(false)
	require.NoError(t, err)

	// yaxis2 was supplied first, so it must serialize before xaxis even
	// though sorted order would put it last. Scope the search to the
	// layout — trace objects carry their own xaxis/yaxis keys.
	s := string(raw)
	layout := s[strings.Index(s, `"layout"`):]
	i2 := strings.Index(layout, `"yaxis2"`)
	ix := strings.Index(layout, `"xaxis"`)
	iy := strings.LastIndex(layout, `"yaxis"`)
	require.True(t, i2 >= 0 && ix >= 0 && iy >= 0, "all three axes present: %s", layout)
	assert.Less(t, i2, ix)
	assert.Less(t, ix, iy)
}

func TestTraceOrderMirrorsInput(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Variant: Line,
		Traces: []Trace{
			{Name: "third", X: Explicit(1), Y: Explicit(2)},
			{Name: "first", X: Explicit(1), Y: Explicit(2)},
			{Name: "second", X: Explicit(1), Y: Explicit(2)},
		},
		Axes: xyAxes(),
	})

	data := dataOf(t, parsed)
	require.Len(t, data, 3)
	names := []string{}
	for _, d := range data {
		names = append(names, d.(map[string]any)["name"].(string))
	}
	assert.Equal(t, []string{"third", "first", "second"}, names)
}

// ============================================================================
// LAYOUT FIXTURES
// ============================================================================

func TestLayoutTitleLegendHover(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Title:   "Energy vs. Volume",
		Variant: Line,
		Traces:  []Trace{{Name: "t", X: Explicit(1), Y: Explicit(2)}},
		Axes:    xyAxes(),
	})

	layout := parsed["layout"].(map[string]any)

	title := layout["title"].(map[string]any)
	assert.Equal(t, "Energy vs. Volume", title["text"])
	assert.Equal(t, 0.5, title["x"])
	assert.Equal(t, "center", title["xanchor"])

	legend := layout["legend"].(map[string]any)
	assert.Equal(t, "", legend["title"].(map[string]any)["text"])
	assert.Equal(t, 0.0, legend["tracegroupgap"])

	assert.Equal(t, "x", layout["hovermode"])
}

// ============================================================================
// VARIANTS
// ============================================================================

func TestSurfaceVariant(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Title:   "PES",
		Variant: Surface,
		Traces: []Trace{{
			Name: "E",
			X:    Explicit(0, 1), Y: Explicit(0, 1),
			Z: Grid([][]float64{{1, 2}, {3, 4}}),
		}},
		Axes: []Axis{
			{Name: "xaxis1", Domain: [2]float64{0, 1}, Label: "a"},
			{Name: "yaxis1", Domain: [2]float64{0, 1}, Label: "b"},
			{Name: "zaxis1", Domain: [2]float64{0, 1}, Label: "E"},
		},
	})

	trace := dataOf(t, parsed)[0].(map[string]any)
	assert.Equal(t, "surface", trace["type"])
	assert.Equal(t, "lines", trace["mode"], "mode retained for hover styling")
	assert.Equal(t, []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}, trace["z"])

	contours := trace["contours"].(map[string]any)["z"].(map[string]any)
	assert.Equal(t, true, contours["show"])
	assert.Equal(t, true, contours["usecolormap"])
	assert.Equal(t, ContourHighlightColor, contours["highlightcolor"])
	assert.Equal(t, true, contours["project"].(map[string]any)["z"])

	// Axes nest under the scene, keyed by role via the trailing-character
	// convention (xaxis1 -> xaxis).
	layout := parsed["layout"].(map[string]any)
	scene := layout["scene"].(map[string]any)
	for _, key := range []string{"xaxis", "yaxis", "zaxis"} {
		assert.Contains(t, scene, key)
	}
	assert.NotContains(t, layout, "xaxis")

	// Surface traces carry no 2-D axis references.
	assert.NotContains(t, trace, "xaxis")
	assert.NotContains(t, trace, "yaxis")
}

func TestSurfaceExplicitSceneRole(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Variant: Surface,
		Traces: []Trace{{
			Name: "E", X: StartStep(0, 1), Y: StartStep(0, 1),
			Z: Grid([][]float64{{1}}),
		}},
		Axes: []Axis{
			{Name: "q", SceneRole: "x", Domain: [2]float64{0, 1}, Label: "a"},
			{Name: "r", SceneRole: "y", Domain: [2]float64{0, 1}, Label: "b"},
			{Name: "s", SceneRole: "z", Domain: [2]float64{0, 1}, Label: "E"},
		},
	})

	scene := parsed["layout"].(map[string]any)["scene"].(map[string]any)
	assert.Equal(t, "a", scene["xaxis"].(map[string]any)["title"].(map[string]any)["text"])
	assert.Equal(t, "E", scene["zaxis"].(map[string]any)["title"].(map[string]any)["text"])
}

func TestScatterRejectsStartStepY(t *testing.T) {
	_, err := Render(Figure{
		Variant: Scatter,
		Traces:  []Trace{{Name: "t", X: Explicit(1), Y: StartStep(0, 1)}},
		Axes:    xyAxes(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTrace)
}

// ============================================================================
// VALIDATION FAILURES
// ============================================================================

func TestMissingCoordinatesFailFast(t *testing.T) {
	_, err := Render(Figure{
		Variant: Line,
		Traces:  []Trace{{Name: "t", Y: Explicit(1)}},
		Axes:    xyAxes(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTrace)
}

func TestUnknownAxisReference(t *testing.T) {
	_, err := Render(Figure{
		Variant: Line,
		Traces: []Trace{{
			Name: "t", X: Explicit(1), Y: Explicit(2), YAxis: "y7",
		}},
		Axes: xyAxes(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAxis)
}

func TestSurfaceWithoutZGrid(t *testing.T) {
	_, err := Render(Figure{
		Variant: Surface,
		Traces:  []Trace{{Name: "t", X: Explicit(1), Y: Explicit(2)}},
		Axes: []Axis{
			{Name: "x1", Domain: [2]float64{0, 1}},
			{Name: "y1", Domain: [2]float64{0, 1}},
			{Name: "z1", Domain: [2]float64{0, 1}},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTrace)
}

func TestUnnamedTrace(t *testing.T) {
	_, err := Render(Figure{
		Variant: Line,
		Traces:  []Trace{{X: Explicit(1), Y: Explicit(2)}},
		Axes:    xyAxes(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTrace)
}

// ============================================================================
// REFERENCE SCENARIO — Energy vs. Volume
// ============================================================================

func TestEnergyVsVolumeScenario(t *testing.T) {
	parsed := renderJSON(t, Figure{
		Title:   "Energy vs. Volume",
		Variant: Scatter,
		Traces: []Trace{{
			Name:  "E",
			X:     StartStep(0, 1),
			Y:     Explicit(1.0, 2.0, 3.0),
			XAxis: "x",
			YAxis: "y",
		}},
		Axes: xyAxes(),
	})

	data := dataOf(t, parsed)
	require.Len(t, data, 1)
	trace := data[0].(map[string]any)
	assert.Equal(t, "scatter", trace["type"])
	assert.Equal(t, 0.0, trace["x0"])
	assert.Equal(t, 1.0, trace["dx"])
	assert.Equal(t, []any{1.0, 2.0, 3.0}, trace["y"])

	layout := parsed["layout"].(map[string]any)
	assert.Equal(t, "Volume", layout["xaxis"].(map[string]any)["title"].(map[string]any)["text"])
	assert.Equal(t, "Energy", layout["yaxis"].(map[string]any)["title"].(map[string]any)["text"])
}

// ============================================================================
// ROUND TRIP — one of each variant
// ============================================================================

func TestRoundTripAllVariants(t *testing.T) {
	cases := map[string]Figure{
		"line multi-axis": {
			Title:   "T vs t",
			Variant: Line,
			Traces: []Trace{
				{Name: "T", X: Explicit(0, 1, 2), Y: Explicit(300, 310, 305)},
				{Name: "P", X: Explicit(0, 1, 2), Y: StartStep(1, 0.1), YAxis: "y2"},
			},
			Axes: []Axis{
				{Name: "x", Domain: [2]float64{0, 1}, Label: "t"},
				{Name: "y", Domain: [2]float64{0, 1}, Label: "T"},
				{Name: "y2", Domain: [2]float64{0, 1}, Label: "P", Overlaying: "y", Side: "right"},
			},
		},
		"surface grids": {
			Title:   "PES",
			Variant: Surface,
			Traces: []Trace{{
				Name: "E",
				X:    Grid([][]float64{{0, 1}, {0, 1}}),
				Y:    Grid([][]float64{{0, 0}, {1, 1}}),
				Z:    Grid([][]float64{{1, 2}, {3, 4}}),
			}},
			Axes: []Axis{
				{Name: "x1", Domain: [2]float64{0, 1}, Label: "a"},
				{Name: "y1", Domain: [2]float64{0, 1}, Label: "b"},
				{Name: "z1", Domain: [2]float64{0, 1}, Label: "E"},
			},
		},
		"scatter start-step x": {
			Title:   "Energy vs. Volume",
			Variant: Scatter,
			Traces: []Trace{{
				Name: "E", X: StartStep(0, 1), Y: Explicit(1, 2, 3),
			}},
			Axes: xyAxes(),
		},
	}

	for name, fig := range cases {
		t.Run(name, func(t *testing.T) {
			parsed := renderJSON(t, fig)
			data := dataOf(t, parsed)
			assert.Len(t, data, len(fig.Traces), "data length equals trace count")
			require.Contains(t, parsed, "layout")
		})
	}
}
