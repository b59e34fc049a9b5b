package figure

import "fmt"

// ============================================================================
// TRACE BUILDER — renders one Trace into an ordered spec object
// ============================================================================
// One builder serves all three variants. The variant only decides the
// trace type, the surface contour block and which coordinate payloads
// are emitted — everything else is shared.
// ============================================================================

func buildTrace(t Trace, variant Variant, cfg *config) *Obj {
	o := NewObj()

	if variant == Surface {
		o.Set("contours", contourBlock())
	}

	if t.Fill != "" {
		o.Set("fill", t.Fill)
		fillColor := t.FillColor
		if fillColor == "" {
			fillColor = cfg.fillColor
		}
		o.Set("fillcolor", fillColor)
	}

	o.Set("hovertemplate", hoverTemplate(t))

	if variant != Surface {
		o.Set("line", lineBlock(t, cfg))
	}

	// mode stays "lines" on surfaces too — it drives hover styling.
	o.Set("mode", "lines")
	o.Set("name", t.Name)

	if t.ShowLegend != nil {
		o.Set("showlegend", *t.ShowLegend)
	}

	if variant == Surface {
		o.Set("type", "surface")
	} else {
		o.Set("type", "scatter")
	}

	if t.Visible != nil {
		o.Set("visible", *t.Visible)
	}

	t.X.emit(o, "x")
	if variant != Surface {
		o.Set("xaxis", refOrDefault(t.XAxis, "x"))
	}
	t.Y.emit(o, "y")
	if variant != Surface {
		o.Set("yaxis", refOrDefault(t.YAxis, "y"))
	}
	if variant == Surface {
		t.Z.emit(o, "z")
	}

	return o
}

// hoverTemplate returns the explicit template verbatim, or synthesizes
// the default "<xlabel>=%{x} <xunits><br><ylabel>=%{y} <yunits>" from
// the trace's own label and unit fields.
func hoverTemplate(t Trace) string {
	if t.HoverTemplate != "" {
		return t.HoverTemplate
	}
	return fmt.Sprintf("%s=%%{x} %s<br>%s=%%{y} %s", t.XLabel, t.XUnits, t.YLabel, t.YUnits)
}

func lineBlock(t Trace, cfg *config) *Obj {
	color := t.Color
	if color == "" {
		color = cfg.lineColor
	}
	dash := t.Dash
	if dash == "" {
		dash = cfg.dash
	}
	width := t.Width
	if width == "" {
		width = cfg.width
	}
	return NewObj().
		Set("color", color).
		Set("dash", dash).
		Set("width", width)
}

// contourBlock enables the z-plane contour projection on surfaces.
func contourBlock() *Obj {
	z := NewObj().
		Set("highlightcolor", ContourHighlightColor).
		Set("project", NewObj().Set("z", true)).
		Set("show", true).
		Set("usecolormap", true)
	return NewObj().Set("z", z)
}

// refOrDefault normalizes a trace axis reference, defaulting an empty
// reference to the primary axis of that orientation.
func refOrDefault(name, letter string) string {
	if name == "" {
		return letter
	}
	return shortRef(name)
}
