package figure

// ============================================================================
// FIGURE TYPES — Traces, Axes, Variants
// ============================================================================
// A Figure is the complete input to Render: a title, a chart variant, an
// ordered list of traces and an ordered list of axes. Output ordering
// mirrors input ordering exactly.
//
// Optional attributes are pointers or zero-value-omitted strings. A field
// that is absent on the input is never emitted — no null placeholders.
// ============================================================================

// Variant selects the chart type. All three variants share one renderer;
// the variant only changes the trace type, the allowed coordinate forms
// and the surface-specific contour/scene blocks.
type Variant int

const (
	// Line renders 2-D line series on Cartesian axis pairs. Both x and y
	// accept the explicit-sequence or the start/step coordinate form.
	Line Variant = iota
	// Surface renders 3-D surfaces with contours projected onto the
	// z-plane. Axes are grouped under a scene keyed by axis role.
	Surface
	// Scatter is like Line but y must be an explicit sequence.
	Scatter
)

// String returns the variant name used in figure files and CLI flags.
func (v Variant) String() string {
	switch v {
	case Line:
		return "line"
	case Surface:
		return "surface"
	case Scatter:
		return "scatter"
	}
	return "unknown"
}

// ============================================================================
// TRACE — one renderable data series
// ============================================================================

// Trace is one data series to be drawn.
//
// Name and the coordinate payloads are required; everything else is
// optional styling. XAxis/YAxis reference axes by short identifier
// ("x", "y2"); ZAxis is used by the Surface variant only.
type Trace struct {
	Name string

	XAxis string
	YAxis string
	ZAxis string

	// Coordinate payloads. X and Y carry 1-D sequences or start/step
	// pairs for Line/Scatter; for Surface, X and Y may also be 2-D
	// grids and Z must be an explicit 2-D grid.
	X Coords
	Y Coords
	Z Coords

	// Line styling. Empty values fall back to the renderer defaults.
	Color string
	Dash  string
	Width string

	// Fill is emitted only when set (e.g. "tozeroy"). FillColor falls
	// back to the default fill color when Fill is set without one.
	Fill      string
	FillColor string

	Visible    *bool
	ShowLegend *bool

	// HoverTemplate is emitted verbatim when set. Otherwise a default
	// is synthesized from the label/unit fields below. The %{x}/%{y}
	// placeholders are resolved by Plotly at render time, not here.
	HoverTemplate string

	XLabel string
	YLabel string
	XUnits string
	YUnits string
}

// ============================================================================
// AXIS — one coordinate axis definition
// ============================================================================

// Axis defines one coordinate axis.
//
// Name is a short identifier ("x", "y", "y2") or the long layout form
// ("xaxis", "yaxis2"); both resolve to the same layout key. Domain is
// the [start, stop] fraction of the plotting area. The renderer does
// not check that same-orientation domains avoid overlap — that is the
// caller's responsibility unless Overlaying is set.
type Axis struct {
	Name   string
	Label  string
	Domain [2]float64

	// Optional attributes, emitted only when present.
	Range      *[2]float64
	Anchor     string
	Overlaying string
	Position   *float64
	Side       string
	TickMode   string

	// SceneRole names the axis role ("x", "y", "z") for the Surface
	// variant. When empty the legacy convention applies: the trailing
	// discriminator character of Name is stripped to find the role.
	SceneRole string
}
