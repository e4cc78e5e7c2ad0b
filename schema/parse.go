package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata documents are JSON-Schema draft-07 shaped: one top-level key per
// record kind (userSchema, sessionSchema, tagSchema), each an object schema
// with type/properties/required and per-field format/description.
//
// Documents are parsed through the yaml.v3 node API rather than
// encoding/json because validation errors must come out in
// schema-declaration order, and yaml nodes keep mapping order (JSON is a
// YAML subset, so the embedded JSON documents parse unchanged).

var validTypes = map[string]bool{
	"string":  true,
	"integer": true,
	"number":  true,
	"boolean": true,
	"array":   true,
	"object":  true,
}

var validFormats = map[string]bool{
	"email":      true,
	"date":       true,
	"date-time":  true,
	"identifier": true,
}

// ParseDocument compiles one metadata document into per-kind definitions.
// Malformed documents are a load-time failure, not a validation verdict.
func ParseDocument(name string, data []byte, version Version) (map[Kind]*Definition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", name, err)
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: document must be an object", name)
	}
	doc := root.Content[0]

	defs := make(map[Kind]*Definition)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		kind, ok := kindForDocumentKey(key)
		if !ok {
			return nil, fmt.Errorf("%s: unknown document key %q", name, key)
		}
		def, err := compileObject(doc.Content[i+1], name+"."+key)
		if err != nil {
			return nil, err
		}
		def.Kind = kind
		def.Version = version
		defs[kind] = def
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%s: document declares no schemas", name)
	}
	return defs, nil
}

func compileObject(node *yaml.Node, path string) (*Definition, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: schema must be an object", path)
	}
	m := mapEntries(node)

	if t := scalar(m["type"]); t != "" && t != "object" {
		return nil, fmt.Errorf("%s: type must be object (got %q)", path, t)
	}

	propsNode, ok := m["properties"]
	if !ok || propsNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: properties must be an object", path)
	}

	def := &Definition{}
	for i := 0; i+1 < len(propsNode.Content); i += 2 {
		fname := propsNode.Content[i].Value
		f, err := compileField(fname, propsNode.Content[i+1], path+".properties."+fname)
		if err != nil {
			return nil, err
		}
		def.Fields = append(def.Fields, f)
	}
	def.buildIndex()

	if reqNode, ok := m["required"]; ok {
		if reqNode.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%s: required must be an array", path)
		}
		seen := map[string]bool{}
		for _, rn := range reqNode.Content {
			rname := strings.TrimSpace(rn.Value)
			if rname == "" {
				continue
			}
			i, ok := def.index[rname]
			if !ok {
				return nil, fmt.Errorf("%s: required includes unknown key %q", path, rname)
			}
			if seen[rname] {
				return nil, fmt.Errorf("%s: required lists %q twice", path, rname)
			}
			seen[rname] = true
			def.Fields[i].Required = true
		}
	}

	return def, nil
}

func compileField(name string, node *yaml.Node, path string) (Field, error) {
	if node.Kind != yaml.MappingNode {
		return Field{}, fmt.Errorf("%s: field schema must be an object", path)
	}
	m := mapEntries(node)

	f := Field{
		Name:        name,
		Type:        scalar(m["type"]),
		Format:      scalar(m["format"]),
		Description: scalar(m["description"]),
	}

	if f.Type != "" && !validTypes[f.Type] {
		return Field{}, fmt.Errorf("%s: unknown type %q", path, f.Type)
	}
	if f.Format != "" {
		if !validFormats[f.Format] {
			return Field{}, fmt.Errorf("%s: unknown format %q", path, f.Format)
		}
		if f.Type != "string" {
			return Field{}, fmt.Errorf("%s: format %q requires type string", path, f.Format)
		}
	}

	if itemsNode, ok := m["items"]; ok {
		if f.Type != "array" {
			return Field{}, fmt.Errorf("%s: items requires type array", path)
		}
		item, err := compileField(name+"[]", itemsNode, path+".items")
		if err != nil {
			return Field{}, err
		}
		f.Items = &item
	}

	if f.Type == "object" {
		if _, ok := m["properties"]; ok {
			obj, err := compileObject(node, path)
			if err != nil {
				return Field{}, err
			}
			f.Object = obj
		}
	} else if _, ok := m["properties"]; ok {
		return Field{}, fmt.Errorf("%s: properties requires type object", path)
	}

	return f, nil
}

func mapEntries(node *yaml.Node) map[string]*yaml.Node {
	out := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out[node.Content[i].Value] = node.Content[i+1]
	}
	return out
}

func scalar(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}
	return strings.TrimSpace(node.Value)
}
