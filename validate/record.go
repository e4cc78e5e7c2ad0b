package validate

import (
	"bytes"
	"encoding/json"
)

// Record is a validated, normalized record. It carries the input fields
// with documented coercions applied (integer coercion, date
// canonicalization) and no field dropped or added. JSON encoding emits
// schema-declared fields first, in declaration order, then undeclared
// fields in lexical order.
type Record struct {
	fields map[string]any
	order  []string
}

// Get returns the value of a field.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Len is the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Map returns the fields as a plain map. The map is a copy; mutating it
// does not affect the record.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

func (r Record) MarshalJSON() ([]byte, error) {
	if r.fields == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.fields[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
