package checkit

import (
	"fmt"
)

// Context is the per-request validation context: it owns the raw-value
// source, the registered structured-source extractors, the per-call extractor
// cache and the error accumulator. A Context must not be shared between
// independent requests; create one per logical request and discard it.
type Context struct {
	src        Source
	extractors map[string]Extractor
	sortCfg    SortConfig

	// per-call state, reset by every top-level validate call
	cache map[string][]string
	errs  map[string][]ErrorRecord
}

// New creates a validation context reading flat parameters from src. A nil
// source is allowed; every field then behaves as if no raw value was
// supplied.
func New(src Source) *Context {
	return &Context{
		src:        src,
		extractors: make(map[string]Extractor),
		sortCfg:    DefaultSortConfig(),
		cache:      make(map[string][]string),
		errs:       make(map[string][]ErrorRecord),
	}
}

// RegisterExtractor installs the extractor consulted for selectors of the
// given kind. Registration is expected to happen before validation starts.
func (c *Context) RegisterExtractor(kind string, ex Extractor) {
	c.extractors[kind] = ex
}

// reset clears the per-call state at the start of each top-level validate
// call so repeated calls against the same logical request start clean.
func (c *Context) reset() {
	c.cache = make(map[string][]string)
	c.errs = make(map[string][]ErrorRecord)
}

// extract resolves a structured selector, querying the underlying extractor
// at most once per (kind, path) per validate call.
func (c *Context) extract(sel *Selector) ([]string, error) {
	key := sel.Kind + ":" + sel.Path
	if vals, ok := c.cache[key]; ok {
		return vals, nil
	}
	ex, ok := c.extractors[sel.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtractor, sel.Kind)
	}
	vals, err := ex.Extract(sel.Path)
	if err != nil {
		return nil, fmt.Errorf("extractor %q: %w", sel.Kind, err)
	}
	c.cache[key] = vals
	return vals, nil
}

// record appends an error for an array-shaped field, or sets the single
// record for a scalar one.
func (c *Context) record(field string, rec ErrorRecord, array bool) {
	if array {
		c.errs[field] = append(c.errs[field], rec)
		return
	}
	c.errs[field] = []ErrorRecord{rec}
}

// ErrorCount reports the total number of recorded error records.
func (c *Context) ErrorCount() int {
	n := 0
	for _, recs := range c.errs {
		n += len(recs)
	}
	return n
}

// Errors returns the accumulated records per field. The returned map is the
// live accumulator; treat it as read-only.
func (c *Context) Errors() map[string][]ErrorRecord {
	return c.errs
}

// ErrorFor returns the message of the first record for the field, or an
// empty string when the field validated cleanly.
func (c *Context) ErrorFor(field string) string {
	recs := c.errs[field]
	if len(recs) == 0 {
		return ""
	}
	return recs[0].Message
}

// ErrorAt returns the message recorded for one array element, scanning the
// field's records by index. Empty string when that element is clean.
func (c *Context) ErrorAt(field string, index int) string {
	for _, rec := range c.errs[field] {
		if rec.Index == index {
			return rec.Message
		}
	}
	return ""
}

// Option adjusts one validate call.
type Option func(*callOptions)

type callOptions struct {
	defaultOptional  bool
	defaultSkipUndef bool
	sortCfg          *SortConfig
}

// WithDefaultOptional makes every field of the call optional unless its spec
// states otherwise.
func WithDefaultOptional() Option {
	return func(o *callOptions) { o.defaultOptional = true }
}

// WithDefaultSkipUndef makes every array field of the call drop undefined
// entries unless its spec states otherwise.
func WithDefaultSkipUndef() Option {
	return func(o *callOptions) { o.defaultSkipUndef = true }
}

// WithSortConfig overrides the sort-field configuration for one
// ValidateSorted call.
func WithSortConfig(cfg SortConfig) Option {
	return func(o *callOptions) { o.sortCfg = &cfg }
}
