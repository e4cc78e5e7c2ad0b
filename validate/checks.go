package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/habs-ai/brainmeta/schema"
)

// checkValue verifies a present, non-null value against its declared
// field and returns the value to carry into the normalized record.
// Defects go to the collector; the returned value is the input when no
// coercion applies.
func (v *Validator) checkValue(c *collector, f schema.Field, path string, val any) any {
	switch f.Type {
	case "":
		return val

	case "string":
		s, ok := val.(string)
		if !ok {
			c.fail(path, WrongType, fmt.Sprintf("%s must be a string (got %T)", path, val))
			return val
		}
		return v.checkFormat(c, f.Format, path, s)

	case "integer":
		n, ok := coerceInt(val)
		if !ok {
			c.fail(path, WrongType, fmt.Sprintf("%s must be an integer (got %T)", path, val))
			return val
		}
		return n

	case "number":
		n, ok := coerceFloat(val)
		if !ok {
			c.fail(path, WrongType, fmt.Sprintf("%s must be a number (got %T)", path, val))
			return val
		}
		return n

	case "boolean":
		if _, ok := val.(bool); !ok {
			c.fail(path, WrongType, fmt.Sprintf("%s must be a boolean (got %T)", path, val))
		}
		return val

	case "array":
		items, ok := anySlice(val)
		if !ok {
			c.fail(path, WrongType, fmt.Sprintf("%s must be an array (got %T)", path, val))
			return val
		}
		if f.Items == nil {
			return items
		}
		out := make([]any, len(items))
		for i, it := range items {
			p := fmt.Sprintf("%s[%d]", path, i)
			if it == nil {
				c.fail(p, WrongType, p+" must not be null")
				continue
			}
			out[i] = v.checkValue(c, *f.Items, p, it)
		}
		return out

	case "object":
		m, ok := val.(map[string]any)
		if !ok {
			c.fail(path, WrongType, fmt.Sprintf("%s must be an object (got %T)", path, val))
			return val
		}
		if f.Object == nil {
			return m
		}
		return v.checkObject(c, f.Object, path, m)

	default:
		return val
	}
}

// checkObject applies a nested definition to an object value, prefixing
// paths with the parent field.
func (v *Validator) checkObject(c *collector, def *schema.Definition, path string, m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for _, f := range def.Fields {
		p := path + "." + f.Name
		val, present := m[f.Name]
		if !present {
			if f.Required {
				c.fail(p, MissingRequired, p+" missing")
			}
			continue
		}
		if val == nil {
			if f.Required {
				c.fail(p, MissingRequired, p+" must not be null")
			} else {
				out[f.Name] = nil
			}
			continue
		}
		out[f.Name] = v.checkValue(c, f, p, val)
	}
	extra := make([]string, 0)
	for k := range m {
		if !def.Declared(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		out[k] = m[k]
	}
	return out
}

func (v *Validator) checkFormat(c *collector, format, path, s string) any {
	switch format {
	case "":
		return s

	case "email":
		if !emailShaped(s) {
			c.fail(path, WrongFormat, fmt.Sprintf("%s must be an email address (got %q)", path, s))
		}
		return s

	case "date":
		t, hasClock, ok := parseDate(s)
		if !ok {
			c.fail(path, WrongFormat, fmt.Sprintf("%s must be a calendar date (got %q)", path, s))
			return s
		}
		return canonicalDate(t, hasClock)

	case "date-time":
		t, ok := parseTimestamp(s)
		if !ok {
			c.fail(path, WrongFormat, fmt.Sprintf("%s must be an RFC 3339 timestamp (got %q)", path, s))
			return s
		}
		return canonicalTimestamp(t)

	case "identifier":
		if !identifierShaped(s) {
			c.fail(path, WrongFormat, fmt.Sprintf("%s must be a non-empty identifier without whitespace (got %q)", path, s))
			return s
		}
		// The backend issues UUIDs and (historically) 24-hex document ids;
		// anything else still validates, but is worth flagging upstream.
		if _, err := uuid.Parse(s); err != nil && !objectIDShaped(s) {
			c.advise(path, Custom, fmt.Sprintf("%s is neither UUID nor ObjectID shaped", path))
		}
		return s

	default:
		return s
	}
}

// email check per the metadata contract: exactly one "@" with non-empty
// local and domain parts.
func emailShaped(s string) bool {
	at := strings.Count(s, "@")
	if at != 1 {
		return false
	}
	i := strings.Index(s, "@")
	return i > 0 && i < len(s)-1
}

func identifierShaped(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func objectIDShaped(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case float64:
		if !math.IsInf(t, 0) && !math.IsNaN(t) && math.Trunc(t) == t {
			return int(t), true
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

// anySlice widens the slice shapes callers plausibly construct by hand.
func anySlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}
