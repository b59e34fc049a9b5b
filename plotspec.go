// Package plotspec renders Plotly chart specifications.
//
// Usage:
//
//	import "github.com/plotspec-org/plotspec/figure"
//
//	spec, err := figure.Render(figure.Figure{
//	    Title:   "Energy vs. Volume",
//	    Variant: figure.Scatter,
//	    Traces: []figure.Trace{{
//	        Name: "E",
//	        X:    figure.StartStep(0, 1),
//	        Y:    figure.Explicit(1.0, 2.0, 3.0),
//	    }},
//	    Axes: []figure.Axis{
//	        {Name: "x", Domain: [2]float64{0, 1}, Label: "Volume"},
//	        {Name: "y", Domain: [2]float64{0, 1}, Label: "Energy"},
//	    },
//	})
//
// The renderer takes traces and axes (built by whatever computed the
// data) and returns the render-ready data+layout structure Plotly
// consumes, serializable to JSON or embeddable in a standalone HTML page
// via the page package. Rendering is a pure transform — no state across
// invocations, no I/O, safe to call concurrently.
package plotspec
