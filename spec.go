package checkit

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrymomot/checkit/pkg/fieldfilter"
)

// FieldSpec is the full declarative description of one input field. Specs are
// constructed fresh for every validate call and never persisted.
//
// Pre, Valid and Post override the corresponding stages of the declared type;
// Default (nil = undefined) substitutes the output whenever validation fails
// or no raw value was supplied. Optional and SkipUndef are pointers so that
// per-call global defaults can fill fields that did not state a preference.
type FieldSpec struct {
	Type      string
	Pre       func(raw string) any
	Valid     func(v any) string
	Post      func(v any) any
	Default   any
	Optional  *bool
	Array     bool
	SkipUndef *bool

	// Filters is the ordered list of extra constraints applied after Post.
	Filters []FilterUse

	// From switches the field from the flat parameter source to a registered
	// structured-source extractor.
	From *Selector
}

// FilterUse names a registered filter and its argument.
type FilterUse struct {
	Name string
	Arg  fieldfilter.Arg
}

// Selector addresses a structured raw-value source: Kind picks the
// registered extractor, Path is handed to it verbatim.
type Selector struct {
	Kind string
	Path string
}

// normalizeSpec expands every accepted shorthand into a full FieldSpec:
//
//   - string               -> shortcut type expression
//   - *regexp.Regexp       -> text with a regexp filter
//   - func(any) any        -> text with a post override
//   - []any                -> text with an in filter
//   - FieldSpec/*FieldSpec -> used as-is
//   - map[string]any       -> full attribute map
//
// Global per-call defaults for optional/skipundef fill any flag the spec left
// unset.
func normalizeSpec(spec any, opt callOptions) (FieldSpec, error) {
	var (
		fs  FieldSpec
		err error
	)
	switch s := spec.(type) {
	case string:
		fs, err = parseShortcut(s)
		if err != nil {
			return FieldSpec{}, err
		}
	case *regexp.Regexp:
		fs = FieldSpec{
			Type:    "text",
			Filters: []FilterUse{{Name: "regexp", Arg: fieldfilter.ScalarArg(s)}},
		}
	case func(any) any:
		fs = FieldSpec{Type: "text", Post: s}
	case []any:
		fs = FieldSpec{
			Type:    "text",
			Filters: []FilterUse{{Name: "in", Arg: fieldfilter.ListArg(s...)}},
		}
	case []string:
		fs = FieldSpec{
			Type:    "text",
			Filters: []FilterUse{{Name: "in", Arg: argFromAny(s)}},
		}
	case FieldSpec:
		fs = s
	case *FieldSpec:
		if s == nil {
			return FieldSpec{}, fmt.Errorf("%w: nil spec", ErrBadSpec)
		}
		fs = *s
	case map[string]any:
		fs, err = specFromMap(s)
		if err != nil {
			return FieldSpec{}, err
		}
	default:
		return FieldSpec{}, fmt.Errorf("%w: unsupported spec %T", ErrBadSpec, spec)
	}

	if fs.Optional == nil && opt.defaultOptional {
		fs.Optional = boolPtr(true)
	}
	if fs.SkipUndef == nil && opt.defaultSkipUndef {
		fs.SkipUndef = boolPtr(true)
	}
	return fs, nil
}

// specFromMap decodes the attribute-map form. The fixed keys are consumed
// first; every remaining key must name a registered filter and is appended to
// the filter list in sorted key order so iteration stays deterministic.
func specFromMap(m map[string]any) (FieldSpec, error) {
	var fs FieldSpec

	if raw, ok := m["type"]; ok {
		token, isStr := raw.(string)
		if !isStr {
			return FieldSpec{}, fmt.Errorf("%w: type must be a string, got %T", ErrBadSpec, raw)
		}
		parsed, err := parseShortcut(token)
		if err != nil {
			return FieldSpec{}, err
		}
		fs = parsed
	} else {
		fs.Type = "text"
	}

	var filterKeys []string
	for key, raw := range m {
		switch key {
		case "type":
			// handled above
		case "pre":
			fn, ok := raw.(func(string) any)
			if !ok {
				return FieldSpec{}, fmt.Errorf("%w: pre must be func(string) any", ErrBadSpec)
			}
			fs.Pre = fn
		case "valid":
			fn, ok := raw.(func(any) string)
			if !ok {
				return FieldSpec{}, fmt.Errorf("%w: valid must be func(any) string", ErrBadSpec)
			}
			fs.Valid = fn
		case "post":
			fn, ok := raw.(func(any) any)
			if !ok {
				return FieldSpec{}, fmt.Errorf("%w: post must be func(any) any", ErrBadSpec)
			}
			fs.Post = fn
		case "default":
			fs.Default = raw
		case "optional":
			b, ok := raw.(bool)
			if !ok {
				return FieldSpec{}, fmt.Errorf("%w: optional must be a bool", ErrBadSpec)
			}
			fs.Optional = boolPtr(b)
		case "array":
			b, ok := raw.(bool)
			if !ok {
				return FieldSpec{}, fmt.Errorf("%w: array must be a bool", ErrBadSpec)
			}
			fs.Array = b
		case "skipundef":
			b, ok := raw.(bool)
			if !ok {
				return FieldSpec{}, fmt.Errorf("%w: skipundef must be a bool", ErrBadSpec)
			}
			fs.SkipUndef = boolPtr(b)
		case "from":
			sel, err := selectorFromAny(raw)
			if err != nil {
				return FieldSpec{}, err
			}
			fs.From = sel
		default:
			if _, ok := fieldfilter.Get(key); !ok {
				return FieldSpec{}, fmt.Errorf("%w: unrecognized attribute %q", ErrBadSpec, key)
			}
			filterKeys = append(filterKeys, key)
		}
	}

	sort.Strings(filterKeys)
	for _, key := range filterKeys {
		fs.Filters = append(fs.Filters, FilterUse{Name: key, Arg: argFromAny(m[key])})
	}
	return fs, nil
}

func selectorFromAny(raw any) (*Selector, error) {
	switch s := raw.(type) {
	case Selector:
		return &s, nil
	case *Selector:
		return s, nil
	case string:
		kind, path, ok := strings.Cut(s, ":")
		if !ok || kind == "" {
			return nil, fmt.Errorf("%w: selector must be \"kind:path\", got %q", ErrBadSpec, s)
		}
		return &Selector{Kind: kind, Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported selector %T", ErrBadSpec, raw)
	}
}

func argFromAny(raw any) fieldfilter.Arg {
	switch v := raw.(type) {
	case fieldfilter.Arg:
		return v
	case []any:
		return fieldfilter.ListArg(v...)
	case []string:
		vs := make([]any, len(v))
		for i, s := range v {
			vs[i] = s
		}
		return fieldfilter.ListArg(vs...)
	case []int:
		vs := make([]any, len(v))
		for i, n := range v {
			vs[i] = n
		}
		return fieldfilter.ListArg(vs...)
	default:
		return fieldfilter.ScalarArg(v)
	}
}
