// Package page wraps a rendered chart specification in a standalone HTML
// document. The page loads a pinned CDN build of Plotly and invokes
// Plotly.newPlot with the spec's data array and layout object, targeting
// a uniquely-identified container element.
package page

import (
	"fmt"
	"html/template"
	"io"

	"github.com/google/uuid"

	"github.com/plotspec-org/plotspec/figure"
)

// PlotlyCDN is the pinned charting library build every page loads.
// Pinning avoids silent behavior changes when the CDN's latest moves.
const PlotlyCDN = "https://cdn.plot.ly/plotly-2.27.0.min.js"

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8"/>
    <title>{{.Title}}</title>
    <script src="{{.CDN}}"></script>
</head>
<body>
    <div id="{{.ContainerID}}"></div>
    <script>
        var figure = {{.Spec}};
        Plotly.newPlot("{{.ContainerID}}", figure.data, figure.layout, {responsive: true});
    </script>
</body>
</html>
`))

// Page is one standalone HTML document for a single chart.
type Page struct {
	Title       string
	ContainerID string
	spec        *figure.Spec
}

// New creates a page for a rendered spec. The container id is unique per
// page so several pages can be embedded side by side.
func New(spec *figure.Spec, title string) *Page {
	return &Page{
		Title:       title,
		ContainerID: "plot-" + uuid.NewString(),
		spec:        spec,
	}
}

// WriteTo renders the HTML document to w.
func (p *Page) WriteTo(w io.Writer) error {
	raw, err := p.spec.JSON(false)
	if err != nil {
		return fmt.Errorf("serializing spec: %w", err)
	}
	return pageTmpl.Execute(w, struct {
		Title       string
		CDN         string
		ContainerID string
		Spec        template.JS
	}{
		Title:       p.Title,
		CDN:         PlotlyCDN,
		ContainerID: p.ContainerID,
		Spec:        template.JS(raw),
	})
}
