package figure

import (
	"encoding/json"
	"fmt"
)

// ============================================================================
// RENDERER — Figure in, chart specification out
// ============================================================================
// Entry point: Render(fig, opts...)
//
// Pipeline:
//   1. Validate every trace and axis (fail fast, no partial output)
//   2. Build trace objects, in input order
//   3. Build the layout (title, legend, hover mode, axes or scene)
//   4. Return the Spec — a pure value, ready for JSON or HTML embedding
//
// Render is a stateless single-pass transform. It performs no I/O, holds
// nothing across invocations and is safe to call concurrently.
// ============================================================================

// Figure is the complete input to Render.
type Figure struct {
	Title   string
	Variant Variant
	Traces  []Trace
	Axes    []Axis
}

// Spec is the rendered chart specification: an ordered data array plus a
// layout object. This is the full contract handed to Plotly.
type Spec struct {
	Data   []*Obj
	Layout *Obj
}

// MarshalJSON emits {"data": [...], "layout": {...}}.
func (s *Spec) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Data   []*Obj `json:"data"`
		Layout *Obj   `json:"layout"`
	}{Data: s.Data, Layout: s.Layout})
}

// JSON serializes the spec, optionally indented.
func (s *Spec) JSON(pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// Render turns a Figure into a chart specification.
//
// All failures are input errors (ErrMalformedTrace, ErrUnknownAxis,
// ErrBadPayload) and are detected before anything is emitted.
func Render(fig Figure, opts ...Option) (*Spec, error) {
	cfg := applyOptions(opts)

	if err := validate(fig); err != nil {
		return nil, err
	}

	data := make([]*Obj, 0, len(fig.Traces))
	for _, t := range fig.Traces {
		data = append(data, buildTrace(t, fig.Variant, cfg))
	}

	layout, err := buildLayout(fig)
	if err != nil {
		return nil, err
	}

	return &Spec{Data: data, Layout: layout}, nil
}

// ============================================================================
// VALIDATION
// ============================================================================

func validate(fig Figure) error {
	// Resolve the axis list once; every trace reference must land here.
	axisKeys := make(map[string]bool, len(fig.Axes))
	for _, a := range fig.Axes {
		var key string
		var err error
		if fig.Variant == Surface {
			key, err = sceneKey(a)
		} else {
			key, err = layoutKey(a.Name)
		}
		if err != nil {
			return err
		}
		axisKeys[key] = true
	}

	for i, t := range fig.Traces {
		if err := validateTrace(t, fig.Variant, axisKeys); err != nil {
			return fmt.Errorf("trace %d (%q): %w", i, t.Name, err)
		}
	}
	return nil
}

func validateTrace(t Trace, variant Variant, axisKeys map[string]bool) error {
	if t.Name == "" {
		return fmt.Errorf("%w: missing name", ErrMalformedTrace)
	}

	if !t.X.IsSet() {
		return fmt.Errorf("%w: x needs an explicit sequence or x0/dx", ErrMalformedTrace)
	}
	if !t.Y.IsSet() {
		return fmt.Errorf("%w: y needs an explicit sequence or y0/dy", ErrMalformedTrace)
	}

	if variant == Surface {
		if !t.Z.IsGrid() {
			return fmt.Errorf("%w: surface traces require an explicit 2-D z grid", ErrMalformedTrace)
		}
	} else {
		if t.X.IsGrid() || t.Y.IsGrid() {
			return fmt.Errorf("%w: %s coordinates must be 1-D", ErrMalformedTrace, variant)
		}
		if t.Z.IsSet() {
			return fmt.Errorf("%w: z is only valid on surface traces", ErrMalformedTrace)
		}
	}
	if variant == Scatter && !t.Y.IsExplicit() {
		return fmt.Errorf("%w: scatter traces require an explicit y sequence", ErrMalformedTrace)
	}

	return checkAxisRefs(t, variant, axisKeys)
}

func checkAxisRefs(t Trace, variant Variant, axisKeys map[string]bool) error {
	if len(axisKeys) == 0 {
		return nil // axis-less figures leave everything to Plotly defaults
	}

	refs := []struct{ name, letter string }{
		{t.XAxis, "x"},
		{t.YAxis, "y"},
	}
	if variant == Surface {
		refs = append(refs, struct{ name, letter string }{t.ZAxis, "z"})
	}

	for _, r := range refs {
		name := r.name
		if name == "" {
			name = r.letter
		}
		key, err := layoutKey(name)
		if err != nil {
			return err
		}
		if variant == Surface {
			// Scene axes are keyed by role; strip any discriminator.
			key = key[:1] + "axis"
		}
		if !axisKeys[key] {
			return fmt.Errorf("%w: trace references %q but no such axis is defined", ErrUnknownAxis, name)
		}
	}
	return nil
}
