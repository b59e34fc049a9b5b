package figure

// ============================================================================
// COORDS — Tagged union for coordinate payloads
// ============================================================================
// A trace must supply exactly one of {explicit sequence} or {start, step}
// per axis — never both, never neither. Modeling the pair as a tagged
// union removes the invalid states at the type level: the only reachable
// bad state is the zero value ("unset"), which validation rejects.
// ============================================================================

type coordForm int

const (
	formUnset coordForm = iota
	formExplicit
	formStartStep
)

// Coords is one coordinate payload for a trace: an explicit sequence
// (1-D, or a 2-D grid for surfaces) or a start/step pair. The zero value
// is unset and fails validation wherever a payload is required.
type Coords struct {
	form  coordForm
	seq   []float64
	grid  [][]float64
	start float64
	step  float64
}

// Explicit builds a 1-D explicit coordinate sequence.
func Explicit(values ...float64) Coords {
	return Coords{form: formExplicit, seq: values}
}

// Grid builds a 2-D explicit coordinate grid.
func Grid(values [][]float64) Coords {
	return Coords{form: formExplicit, grid: values}
}

// StartStep builds a start/step coordinate pair (x0/dx, y0/dy).
func StartStep(start, step float64) Coords {
	return Coords{form: formStartStep, start: start, step: step}
}

// Sequence coerces an arbitrary numeric slice (1-D or 2-D, any numeric
// element type) into explicit Coords. Non-numeric payloads return
// ErrBadPayload.
func Sequence(values any) (Coords, error) {
	seq, grid, err := coerce(values)
	if err != nil {
		return Coords{}, err
	}
	if grid != nil {
		return Grid(grid), nil
	}
	return Explicit(seq...), nil
}

// IsSet reports whether the payload carries either coordinate form.
func (c Coords) IsSet() bool { return c.form != formUnset }

// IsExplicit reports whether the payload is an explicit sequence or grid.
func (c Coords) IsExplicit() bool { return c.form == formExplicit }

// IsGrid reports whether the payload is an explicit 2-D grid.
func (c Coords) IsGrid() bool { return c.form == formExplicit && c.grid != nil }

// Values returns the explicit 1-D sequence, or nil for other forms.
func (c Coords) Values() []float64 {
	if c.form != formExplicit {
		return nil
	}
	return c.seq
}

// GridValues returns the explicit 2-D grid, or nil for other forms.
func (c Coords) GridValues() [][]float64 {
	if c.form != formExplicit {
		return nil
	}
	return c.grid
}

// Start returns the start of a start/step payload.
func (c Coords) Start() float64 { return c.start }

// Step returns the step of a start/step payload.
func (c Coords) Step() float64 { return c.step }

// emit writes the payload onto a trace object under the given axis
// letter: "x" for explicit sequences, "x0"+"dx" for start/step. Exactly
// one form is emitted — mutual exclusivity is preserved in the output.
func (c Coords) emit(o *Obj, letter string) {
	switch c.form {
	case formExplicit:
		if c.grid != nil {
			o.Set(letter, c.grid)
		} else {
			o.Set(letter, c.seq)
		}
	case formStartStep:
		o.Set(letter+"0", c.start)
		o.Set("d"+letter, c.step)
	}
}
