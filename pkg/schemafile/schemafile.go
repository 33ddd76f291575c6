// Package schemafile loads checkit field-spec maps from YAML documents, so
// that validation rule sets can live in configuration instead of code.
//
// A document is a mapping from field name to either a compact type
// expression or an attribute mapping:
//
//	email: str
//	age:
//	  type: "?int"
//	  min: 18
//	tags: "~str"
//	status:
//	  type: str
//	  in: [new, active, blocked]
//
// The loaded map feeds Context.ValidateMany directly.
package schemafile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML rule set from r.
func Load(r io.Reader) (map[string]any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	out := make(map[string]any, len(doc))
	for name, spec := range doc {
		out[name] = normalize(spec)
	}
	return out, nil
}

// LoadFile reads a YAML rule set from the file at path.
func LoadFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// normalize rewrites yaml.v3's container types into the shapes the spec
// normalizer accepts: map keys become strings, nested sequences stay []any.
func normalize(v any) any {
	switch n := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, val := range n {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(n))
		for k, val := range n {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, val := range n {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
