package fieldtype

import (
	"strings"

	"github.com/google/uuid"
)

func registerIdentifier(m map[string]Type) {
	m["uuid"] = Type{
		Pre: func(raw string) any {
			return strings.TrimSpace(raw)
		},
		Valid: validUUID,
		Post: func(v any) any {
			s, ok := v.(string)
			if !ok {
				return v
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return v
			}
			return id.String()
		},
	}
}

func validUUID(v any) string {
	s, ok := v.(string)
	if !ok {
		return "must be a valid UUID"
	}
	// Fast rejection before handing off to the parser.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return "must be a valid UUID"
	}
	if _, err := uuid.Parse(s); err != nil {
		return "must be a valid UUID"
	}
	return ""
}
