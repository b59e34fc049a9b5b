package figure

import (
	"bytes"
	"encoding/json"
)

// ============================================================================
// ORDERED OBJECT — JSON object preserving insertion order
// ============================================================================
// encoding/json sorts map keys, but the spec contract requires trace and
// axis entries to appear in the exact order the caller supplied them.
// Obj keeps insertion order and marshals itself, so the assembled JSON
// document lists entries in input order with the separator placed between
// entries only (no trailing separator after the last one).
// ============================================================================

// Obj is a JSON object that marshals its keys in insertion order.
type Obj struct {
	keys []string
	vals map[string]any
}

// NewObj creates an empty ordered object.
func NewObj() *Obj {
	return &Obj{vals: make(map[string]any)}
}

// Set assigns a value, appending the key on first assignment. Returns
// the object for chaining.
func (o *Obj) Set(key string, value any) *Obj {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
	return o
}

// Get returns the value for key and whether it is present.
func (o *Obj) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Obj) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Keys returns the keys in insertion order. The slice is shared — do not
// mutate.
func (o *Obj) Keys() []string { return o.keys }

// Len returns the number of keys.
func (o *Obj) Len() int { return len(o.keys) }

// MarshalJSON emits the object with keys in insertion order.
func (o *Obj) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
