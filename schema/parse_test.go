package schema

import (
	"strings"
	"testing"
)

func TestParseDocument_RejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown document key",
			doc:  `{"bogusSchema": {"type": "object", "properties": {}}}`,
			want: "unknown document key",
		},
		{
			name: "required lists unknown key",
			doc:  `{"userSchema": {"type": "object", "properties": {"email": {"type": "string"}}, "required": ["role"]}}`,
			want: "required includes unknown key",
		},
		{
			name: "required listed twice",
			doc:  `{"userSchema": {"type": "object", "properties": {"email": {"type": "string"}}, "required": ["email", "email"]}}`,
			want: "twice",
		},
		{
			name: "unknown type",
			doc:  `{"userSchema": {"type": "object", "properties": {"age": {"type": "int"}}}}`,
			want: "unknown type",
		},
		{
			name: "unknown format",
			doc:  `{"userSchema": {"type": "object", "properties": {"email": {"type": "string", "format": "uri"}}}}`,
			want: "unknown format",
		},
		{
			name: "format on non-string",
			doc:  `{"userSchema": {"type": "object", "properties": {"age": {"type": "integer", "format": "date"}}}}`,
			want: "requires type string",
		},
		{
			name: "items on non-array",
			doc:  `{"userSchema": {"type": "object", "properties": {"age": {"type": "integer", "items": {"type": "string"}}}}}`,
			want: "items requires type array",
		},
		{
			name: "missing properties",
			doc:  `{"userSchema": {"type": "object"}}`,
			want: "properties must be an object",
		},
		{
			name: "non-object schema",
			doc:  `{"userSchema": {"type": "string", "properties": {}}}`,
			want: "type must be object",
		},
	}

	for _, tc := range cases {
		_, err := ParseDocument(tc.name, []byte(tc.doc), V1)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected %q in error, got %v", tc.name, tc.want, err)
		}
	}
}

func TestParseDocument_CompilesNestedArrays(t *testing.T) {
	doc := `{"tagSchema": {"type": "object", "properties": {"tags": {"type": "array", "items": {"type": "object", "properties": {"tag": {"type": "string"}, "properties": {"type": "object"}}, "required": ["tag"]}}}, "required": ["tags"]}}`
	defs, err := ParseDocument("nested", []byte(doc), V2)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	tag := defs[KindTaggedInterval]
	tags, ok := tag.Field("tags")
	if !ok || tags.Items == nil {
		t.Fatalf("tags field not compiled: %+v", tags)
	}
	inner := tags.Items.Object
	if inner == nil {
		t.Fatalf("tag entry object not compiled")
	}
	if label, ok := inner.Field("tag"); !ok || !label.Required || label.Type != "string" {
		t.Fatalf("tag label not compiled: %+v", label)
	}
}
