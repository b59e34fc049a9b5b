package figure

import (
	"fmt"
	"reflect"
)

// ============================================================================
// NUMERIC COERCION — array-likes → plain nested []float64
// ============================================================================
// The one conversion responsibility of the renderer: whatever numeric
// representation the caller holds (int slices, float32 grids, computed
// results), the emitted spec carries plain nested lists of numbers.
// Handles 1-D and 2-D; anything else is ErrBadPayload.
// ============================================================================

// coerce converts values into either a 1-D sequence or a 2-D grid.
// Exactly one of the two returns is non-nil on success.
func coerce(values any) ([]float64, [][]float64, error) {
	switch v := values.(type) {
	case nil:
		return nil, nil, fmt.Errorf("%w: nil payload", ErrBadPayload)
	case []float64:
		return v, nil, nil
	case [][]float64:
		return nil, v, nil
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, nil, fmt.Errorf("%w: %T is not array-like", ErrBadPayload, values)
	}
	if rv.Len() == 0 {
		return []float64{}, nil, nil
	}

	// 2-D: every element is itself array-like.
	if k := rv.Index(0).Kind(); k == reflect.Slice || k == reflect.Array {
		grid := make([][]float64, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			row, err := coerceRow(rv.Index(i))
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", i, err)
			}
			grid[i] = row
		}
		return nil, grid, nil
	}

	seq, err := coerceRow(rv)
	if err != nil {
		return nil, nil, err
	}
	return seq, nil, nil
}

func coerceRow(rv reflect.Value) ([]float64, error) {
	out := make([]float64, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		e := rv.Index(i)
		for e.Kind() == reflect.Interface {
			e = e.Elem()
		}
		switch e.Kind() {
		case reflect.Float32, reflect.Float64:
			out[i] = e.Float()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out[i] = float64(e.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out[i] = float64(e.Uint())
		default:
			return nil, fmt.Errorf("%w: element %d is %s", ErrBadPayload, i, e.Kind())
		}
	}
	return out, nil
}
