package figure

// ============================================================================
// LAYOUT BUILDER — title, legend, hover mode, axes
// ============================================================================
// Axis entries appear in the layout in the exact order the caller
// supplied them. For the Surface variant they are nested under a single
// scene object keyed by axis role instead of sitting at the top level.
// ============================================================================

func buildLayout(fig Figure) (*Obj, error) {
	layout := NewObj()

	layout.Set("title", NewObj().
		Set("text", fig.Title).
		Set("x", 0.5).
		Set("xanchor", "center"))

	layout.Set("legend", NewObj().
		Set("title", NewObj().Set("text", "")).
		Set("tracegroupgap", 0))

	layout.Set("hovermode", "x")

	if fig.Variant == Surface {
		scene := NewObj()
		for _, a := range fig.Axes {
			key, err := sceneKey(a)
			if err != nil {
				return nil, err
			}
			scene.Set(key, buildAxis(a))
		}
		layout.Set("scene", scene)
		return layout, nil
	}

	for _, a := range fig.Axes {
		key, err := layoutKey(a.Name)
		if err != nil {
			return nil, err
		}
		layout.Set(key, buildAxis(a))
	}
	return layout, nil
}

// buildAxis emits one axis entry. Optional attributes appear only when
// present on the input — never as null or empty placeholders.
func buildAxis(a Axis) *Obj {
	o := NewObj()
	if a.Anchor != "" {
		o.Set("anchor", shortRef(a.Anchor))
	}
	o.Set("domain", []float64{a.Domain[0], a.Domain[1]})
	if a.Overlaying != "" {
		o.Set("overlaying", shortRef(a.Overlaying))
	}
	if a.Position != nil {
		o.Set("position", *a.Position)
	}
	if a.Range != nil {
		o.Set("range", []float64{a.Range[0], a.Range[1]})
	}
	if a.Side != "" {
		o.Set("side", a.Side)
	}
	if a.TickMode != "" {
		o.Set("tickmode", a.TickMode)
	}
	o.Set("title", NewObj().Set("text", a.Label))
	return o
}
