package checkit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/checkit/pkg/fieldfilter"
	"github.com/dmitrymomot/checkit/pkg/fieldtype"
)

// resolved is a field's fully-merged pipeline: spec-level stage overrides
// layered over the declared type's bundle, with every filter looked up once.
// Resolution happens for all fields before any value is processed, so a
// configuration mistake aborts the call with no partial output.
type resolved struct {
	spec    FieldSpec
	pre     func(string) any
	valid   func(v any) string
	post    func(v any) any
	def     any
	filters []resolvedFilter
}

type resolvedFilter struct {
	name string
	fn   fieldfilter.Func
	arg  fieldfilter.Arg
}

// ValidateMany validates every field of the map against its spec and returns
// the coerced outputs keyed by field name. Value-level failures never
// surface as an error return; they accumulate on the context and the field's
// output falls back to its default. A non-nil error is always a
// configuration error and means no output map was produced.
func (c *Context) ValidateMany(fields map[string]any, opts ...Option) (map[string]any, error) {
	c.reset()
	var opt callOptions
	for _, o := range opts {
		o(&opt)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	pipes := make(map[string]resolved, len(fields))
	for _, name := range names {
		fs, err := normalizeSpec(fields[name], opt)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		p, err := resolve(fs)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		pipes[name] = p
	}

	out := make(map[string]any, len(fields))
	for _, name := range names {
		v, err := c.processField(name, pipes[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// ValidateOne is the single-field convenience wrapper over ValidateMany.
func (c *Context) ValidateOne(name string, spec any, opts ...Option) (any, error) {
	out, err := c.ValidateMany(map[string]any{name: spec}, opts...)
	if err != nil {
		return nil, err
	}
	return out[name], nil
}

func resolve(fs FieldSpec) (resolved, error) {
	p := resolved{
		spec:  fs,
		pre:   fs.Pre,
		valid: fs.Valid,
		post:  fs.Post,
		def:   fs.Default,
	}
	if fs.Type != "" {
		t, ok := fieldtype.Get(fs.Type)
		if !ok {
			return resolved{}, fmt.Errorf("%w: %q", ErrUnknownType, fs.Type)
		}
		if p.pre == nil {
			p.pre = t.Pre
		}
		if p.valid == nil {
			p.valid = t.Valid
		}
		if p.post == nil {
			p.post = t.Post
		}
		if p.def == nil {
			p.def = t.Default
		}
	}
	for _, fu := range fs.Filters {
		fn, ok := fieldfilter.Get(fu.Name)
		if !ok {
			return resolved{}, fmt.Errorf("%w: %q", ErrUnknownFilter, fu.Name)
		}
		p.filters = append(p.filters, resolvedFilter{name: fu.Name, fn: fn, arg: fu.Arg})
	}
	return p, nil
}

// processField runs the per-field state machine: fetch, cardinality
// normalization, per-element transform, assembly, required-empty-array
// check.
func (c *Context) processField(name string, p resolved) (any, error) {
	var raws []string
	var err error
	if p.spec.From != nil {
		raws, err = c.extract(p.spec.From)
		if err != nil {
			return nil, err
		}
	} else if c.src != nil {
		raws = c.src.Values(name)
	}

	// More than one raw value makes the field array-shaped even when the
	// spec did not declare it.
	array := p.spec.Array || len(raws) > 1
	optional := p.spec.Optional != nil && *p.spec.Optional
	skipUndef := p.spec.SkipUndef != nil && *p.spec.SkipUndef
	hasDefault := p.def != nil

	if len(raws) == 0 {
		if array {
			if !optional && !hasDefault {
				c.record(name, ErrorRecord{Index: -1, Message: "empty array"}, true)
			}
			return []any{}, nil
		}
		return c.processMissing(name, p, optional, hasDefault), nil
	}

	outs := make([]any, len(raws))
	for i, raw := range raws {
		idx := i
		if !array {
			idx = -1
		}
		outs[i] = c.processElement(name, raw, idx, p, array, optional, hasDefault)
	}
	if !array {
		return outs[0], nil
	}
	if skipUndef {
		kept := make([]any, 0, len(outs))
		for _, o := range outs {
			if o != nil {
				kept = append(kept, o)
			}
		}
		return kept, nil
	}
	return outs, nil
}

// processMissing handles the synthesized undefined raw value of a scalar
// field that received no input: validation is skipped, the output is the
// default (post-transformed when a post stage exists), and a "required"
// error is recorded unless the default or the optional flag suppresses it.
func (c *Context) processMissing(name string, p resolved, optional, hasDefault bool) any {
	if !optional && !hasDefault {
		c.record(name, ErrorRecord{Index: -1, Message: "is required"}, false)
	}
	out := p.def
	if p.post != nil && out != nil {
		out = p.post(out)
	}
	return out
}

// processElement runs stages (a)-(d) of the per-element transform for one
// defined raw value. A failing stage substitutes the default and records an
// error unless the default is defined or the field is optional and the raw
// value is blank after trimming.
func (c *Context) processElement(name, raw string, idx int, p resolved, array, optional, hasDefault bool) any {
	suppressed := hasDefault || (optional && strings.TrimSpace(raw) == "")

	intermediate := any(raw)
	if p.pre != nil {
		intermediate = p.pre(raw)
	}

	if p.valid != nil {
		if msg := p.valid(intermediate); msg != "" {
			if !suppressed {
				c.record(name, ErrorRecord{
					Index:        idx,
					Original:     raw,
					Intermediate: intermediate,
					Message:      msg,
				}, array)
			}
			out := p.def
			if p.post != nil && out != nil {
				out = p.post(out)
			}
			return out
		}
	}

	out := intermediate
	if p.post != nil {
		out = p.post(out)
	}

	for _, f := range p.filters {
		if msg := f.fn(out, f.arg); msg != "" {
			if !suppressed {
				c.record(name, ErrorRecord{
					Index:        idx,
					Original:     raw,
					Intermediate: intermediate,
					Message:      msg,
				}, array)
			}
			// Filter failures fall back to the default exactly, with no
			// further filters and no re-run of the post stage.
			return p.def
		}
	}
	return out
}
