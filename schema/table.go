package schema

import "fmt"

// UnknownSchemaError reports a kind/version pair that is not in the table.
// It is a caller error, distinct from record-validation failures, and is
// surfaced immediately rather than collected.
type UnknownSchemaError struct {
	Kind    Kind
	Version Version
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("unknown schema %s/%s", e.Kind, e.Version)
}

// Table is the process-wide set of compiled schema revisions, keyed by
// kind and version. It is read-only after construction and safe for
// unsynchronized concurrent reads.
type Table struct {
	defs map[Kind]map[Version]*Definition
}

// NewTable builds a table from compiled definitions.
func NewTable(defs ...*Definition) *Table {
	t := &Table{defs: make(map[Kind]map[Version]*Definition)}
	for _, d := range defs {
		if d == nil {
			continue
		}
		byVersion, ok := t.defs[d.Kind]
		if !ok {
			byVersion = make(map[Version]*Definition)
			t.defs[d.Kind] = byVersion
		}
		byVersion[d.Version] = d
	}
	return t
}

// DefaultTable loads both embedded metadata documents.
func DefaultTable() (*Table, error) {
	v1, err := V1Definitions()
	if err != nil {
		return nil, err
	}
	v2, err := V2Definitions()
	if err != nil {
		return nil, err
	}
	all := make([]*Definition, 0, len(v1)+len(v2))
	for _, d := range v1 {
		all = append(all, d)
	}
	for _, d := range v2 {
		all = append(all, d)
	}
	return NewTable(all...), nil
}

// Lookup returns the definition for a kind/version pair.
func (t *Table) Lookup(kind Kind, version Version) (*Definition, error) {
	if byVersion, ok := t.defs[kind]; ok {
		if d, ok := byVersion[version]; ok {
			return d, nil
		}
	}
	return nil, &UnknownSchemaError{Kind: kind, Version: version}
}

// Versions lists the registered revisions for a kind, newest last.
func (t *Table) Versions(kind Kind) []Version {
	byVersion := t.defs[kind]
	out := make([]Version, 0, len(byVersion))
	for _, v := range []Version{V1, V2} {
		if _, ok := byVersion[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
