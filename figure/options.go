package figure

// ============================================================================
// RENDER OPTIONS — Functional options for Render()
// ============================================================================

// Styling defaults applied when a trace leaves the field empty.
const (
	// DefaultLineColor is the line color for traces with none set.
	DefaultLineColor = "#4dbd74"
	// DefaultFillColor is used when fill is requested without a color.
	DefaultFillColor = "#eeeeee"
	// DefaultDash is the line dash style for traces with none set.
	DefaultDash = "solid"
	// DefaultWidth is the line width for traces with none set.
	DefaultWidth = "1"
	// ContourHighlightColor highlights projected surface contours.
	ContourHighlightColor = "#42f462"
)

// Option configures renderer behavior via the functional options pattern.
type Option func(*config)

type config struct {
	lineColor string
	fillColor string
	dash      string
	width     string
}

// WithDefaultLineColor overrides the default line color for traces that
// do not set one.
func WithDefaultLineColor(hex string) Option {
	return func(c *config) { c.lineColor = hex }
}

// WithDefaultFillColor overrides the fill color used when a trace
// requests fill without naming a color.
func WithDefaultFillColor(hex string) Option {
	return func(c *config) { c.fillColor = hex }
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		lineColor: DefaultLineColor,
		fillColor: DefaultFillColor,
		dash:      DefaultDash,
		width:     DefaultWidth,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
