package fieldtype

import (
	"strings"

	json "github.com/goccy/go-json"
)

func registerJSON(m map[string]Type) {
	// json treats the value as an opaque blob: validation only checks
	// well-formedness, post unmarshals into a generic document.
	m["json"] = Type{
		Pre: func(raw string) any {
			return strings.TrimSpace(raw)
		},
		Valid: func(v any) string {
			s, ok := v.(string)
			if !ok || s == "" || !json.Valid([]byte(s)) {
				return "must be a valid JSON document"
			}
			return ""
		},
		Post: func(v any) any {
			s, ok := v.(string)
			if !ok {
				return v
			}
			var doc any
			if err := json.Unmarshal([]byte(s), &doc); err != nil {
				return v
			}
			return doc
		},
	}
}
