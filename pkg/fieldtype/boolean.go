package fieldtype

import "strings"

var truthy = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"y":    true,
	"on":   true,
}

var falsy = map[string]bool{
	"0":     true,
	"false": true,
	"no":    true,
	"n":     true,
	"off":   true,
}

func registerBoolean(m map[string]Type) {
	m["bool"] = Type{
		Pre: func(raw string) any {
			token := strings.ToLower(strings.TrimSpace(raw))
			switch {
			case truthy[token]:
				return true
			case falsy[token]:
				return false
			default:
				return raw
			}
		},
		Valid: func(v any) string {
			if _, ok := v.(bool); !ok {
				return "must be a boolean value"
			}
			return ""
		},
	}
}
