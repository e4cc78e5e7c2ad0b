package validate

import (
	"testing"

	"github.com/habs-ai/brainmeta/schema"
)

func TestNormalize_DateCanonicalization(t *testing.T) {
	v := newValidator(t)
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01"},
		{"2024-05-30T12:00:00Z", "2024-05-30T12:00:00Z"},
		{"2024-05-30T14:00:00+02:00", "2024-05-30T12:00:00Z"},
		{"05/30/2024, 12:00:00", "2024-05-30T12:00:00Z"},
	}
	for _, tc := range cases {
		res := mustValidate(t, v, map[string]any{
			"user_id":      "u1",
			"session_date": tc.in,
		}, schema.KindSessionMetadata, schema.V1)
		if !res.OK {
			t.Fatalf("%q: expected ok, got %v", tc.in, res.Errors)
		}
		if got, _ := res.Normalized.Get("session_date"); got != tc.want {
			t.Fatalf("%q: expected %q, got %v", tc.in, tc.want, got)
		}
	}
}

func TestNormalize_IntegerCoercion(t *testing.T) {
	v := newValidator(t)
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{50, 50, true},
		{int64(50), 50, true},
		{50.0, 50, true},
		{" 50 ", 50, true},
		{"50", 50, true},
		{50.5, 0, false},
		{"fifty", 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		res := mustValidate(t, v, map[string]any{
			"email": "a@b.com",
			"age":   tc.in,
		}, schema.KindUserProfile, schema.V1)
		if tc.ok {
			if !res.OK {
				t.Fatalf("%v: expected ok, got %v", tc.in, res.Errors)
			}
			if got, _ := res.Normalized.Get("age"); got != tc.want {
				t.Fatalf("%v: expected %d, got %v", tc.in, tc.want, got)
			}
			continue
		}
		if res.OK {
			t.Fatalf("%v: expected WrongType", tc.in)
		}
		if e := res.Errors[0]; e.Path != "age" || e.Kind != WrongType {
			t.Fatalf("%v: expected WrongType at age, got %+v", tc.in, e)
		}
	}
}

func TestNormalize_NullOptionalFieldKept(t *testing.T) {
	v := newValidator(t)
	res := mustValidate(t, v, map[string]any{
		"email":      "a@b.com",
		"first_name": nil,
	}, schema.KindUserProfile, schema.V1)
	if !res.OK {
		t.Fatalf("null optional field must not fail, got %v", res.Errors)
	}
	got, ok := res.Normalized.Get("first_name")
	if !ok || got != nil {
		t.Fatalf("null optional field must be kept, got %v (present=%v)", got, ok)
	}
}

func TestRecord_MarshalJSONCanonicalOrder(t *testing.T) {
	v := newValidator(t)
	res := mustValidate(t, v, map[string]any{
		"zz_custom":  "kept",
		"age":        "41",
		"email":      "a@b.com",
		"aa_custom":  1,
		"first_name": "Ada",
	}, schema.KindUserProfile, schema.V1)
	if !res.OK {
		t.Fatalf("expected ok, got %v", res.Errors)
	}
	b, err := res.Normalized.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	// Declared fields in declaration order, then undeclared lexically.
	want := `{"first_name":"Ada","email":"a@b.com","age":41,"aa_custom":1,"zz_custom":"kept"}`
	if string(b) != want {
		t.Fatalf("unexpected encoding:\n got %s\nwant %s", b, want)
	}
}

func TestRecord_ZeroValueMarshalsNull(t *testing.T) {
	var r Record
	b, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("expected null, got %s", b)
	}
}
