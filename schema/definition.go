package schema

// Field is one declared property of a record kind.
type Field struct {
	Name        string
	Type        string // string, integer, number, boolean, array, object; empty means unconstrained
	Format      string // email, date, date-time, identifier; strings only
	Description string
	Required    bool

	// Items describes the element shape of an array field.
	Items *Field
	// Object describes the property set of an object field (or of object
	// array elements, via Items.Object).
	Object *Definition
}

// Definition is one compiled {kind, version} schema. Fields keep the
// declaration order of the source document; validators report defects in
// that order. Definitions are immutable after load and safe for
// unsynchronized concurrent reads.
type Definition struct {
	Kind    Kind
	Version Version
	Fields  []Field

	index map[string]int
}

// Field returns the declared field with the given name.
func (d *Definition) Field(name string) (Field, bool) {
	if d == nil {
		return Field{}, false
	}
	i, ok := d.index[name]
	if !ok {
		return Field{}, false
	}
	return d.Fields[i], true
}

// Declared reports whether name is part of the property set. Undeclared
// fields pass through validation unchanged.
func (d *Definition) Declared(name string) bool {
	_, ok := d.Field(name)
	return ok
}

func (d *Definition) buildIndex() {
	d.index = make(map[string]int, len(d.Fields))
	for i, f := range d.Fields {
		d.index[f.Name] = i
	}
}
