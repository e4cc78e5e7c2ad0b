package validate

// ErrorKind classifies a single validation defect.
type ErrorKind string

const (
	// MissingRequired: a required field is absent or null.
	MissingRequired ErrorKind = "missing_required"
	// WrongType: a present field's runtime shape does not match its
	// declared type.
	WrongType ErrorKind = "wrong_type"
	// WrongFormat: a string field fails its declared format check.
	WrongFormat ErrorKind = "wrong_format"
	// Custom: a business rule independent of the declared shape, e.g.
	// temporal ordering on tagged intervals.
	Custom ErrorKind = "custom"
)

// FieldError is one structured defect tied to a dotted field path.
// Defects are data, not control flow: a record with errors is an
// expected, common outcome.
type FieldError struct {
	Path    string    `json:"path"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	return e.Path + ": " + e.Message
}

// Result is a deterministic validation verdict. OK is true iff Errors is
// empty; Normalized is populated only when OK. Advisories never affect
// OK (best-effort cross-record checks and identifier-shape hints).
type Result struct {
	OK         bool         `json:"ok"`
	Normalized Record       `json:"normalized"`
	Errors     []FieldError `json:"errors,omitempty"`
	Advisories []FieldError `json:"advisories,omitempty"`
}

type collector struct {
	errs []FieldError
	adv  []FieldError
}

func (c *collector) fail(path string, kind ErrorKind, msg string) {
	c.errs = append(c.errs, FieldError{Path: path, Kind: kind, Message: msg})
}

func (c *collector) advise(path string, kind ErrorKind, msg string) {
	c.adv = append(c.adv, FieldError{Path: path, Kind: kind, Message: msg})
}
