package validate

import (
	"sort"

	"github.com/habs-ai/brainmeta/logging"
	"github.com/habs-ai/brainmeta/schema"
)

// ChannelRegistry answers whether a channel identifier belongs to the
// headset a session was recorded with. It is an optional collaborator:
// without one, channel references on tagged intervals are an advisory
// pass.
type ChannelRegistry interface {
	Has(sessionID, channelID string) bool
}

// Validator checks records against a versioned schema table and produces
// deterministic verdicts. It holds no mutable state; concurrent Validate
// calls need no synchronization.
type Validator struct {
	table    *schema.Table
	log      *logging.Logger
	channels ChannelRegistry
}

type Option func(*Validator)

func WithLogger(log *logging.Logger) Option {
	return func(v *Validator) { v.log = log }
}

func WithChannelRegistry(reg ChannelRegistry) Option {
	return func(v *Validator) { v.channels = reg }
}

func New(table *schema.Table, opts ...Option) *Validator {
	v := &Validator{table: table, log: logging.Nop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Default builds a validator over the embedded metadata documents.
func Default(opts ...Option) (*Validator, error) {
	table, err := schema.DefaultTable()
	if err != nil {
		return nil, err
	}
	return New(table, opts...), nil
}

// Validate checks one record against the named schema revision. The
// returned error is non-nil only for schema selection failures
// (*schema.UnknownSchemaError); record defects are reported in
// Result.Errors, exhaustively, in schema-declaration order, with the
// missing-required check preceding type/format checks for the same
// field. The input is never mutated.
func (v *Validator) Validate(record map[string]any, kind schema.Kind, version schema.Version) (Result, error) {
	def, err := v.table.Lookup(kind, version)
	if err != nil {
		v.log.Warn("schema lookup failed", "kind", string(kind), "version", string(version))
		return Result{}, err
	}

	c := &collector{}
	fields := make(map[string]any, len(record))
	order := make([]string, 0, len(record))

	for _, f := range def.Fields {
		val, present := record[f.Name]
		if !present {
			if f.Required {
				c.fail(f.Name, MissingRequired, f.Name+" missing")
			}
			continue
		}
		if val == nil {
			if f.Required {
				c.fail(f.Name, MissingRequired, f.Name+" must not be null")
			} else {
				// The acquisition SDK submits unset optional fields as
				// null; treat them as absent but keep them in the record.
				fields[f.Name] = nil
				order = append(order, f.Name)
			}
			continue
		}
		fields[f.Name] = v.checkValue(c, f, f.Name, val)
		order = append(order, f.Name)
	}

	// Undeclared fields pass through unchanged; the schemas do not declare
	// additionalProperties: false.
	extra := make([]string, 0)
	for k := range record {
		if !def.Declared(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		fields[k] = record[k]
		order = append(order, k)
	}

	if kind == schema.KindTaggedInterval {
		v.applyIntervalRules(c, record)
	}

	res := Result{Errors: c.errs, Advisories: c.adv}
	res.OK = len(c.errs) == 0
	if res.OK {
		res.Normalized = Record{fields: fields, order: order}
	}

	v.log.Debug("record validated",
		"kind", string(kind),
		"version", string(version),
		"ok", res.OK,
		"errors", len(res.Errors),
		"advisories", len(res.Advisories),
	)
	return res, nil
}
