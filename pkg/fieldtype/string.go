package fieldtype

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var idRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

func registerString(m map[string]Type) {
	// str is the workhorse trimmed-string type: surrounding whitespace is
	// stripped and the text is normalized to NFC so that visually identical
	// inputs compare equal.
	m["str"] = Type{
		Pre: func(raw string) any {
			return norm.NFC.String(strings.TrimSpace(raw))
		},
		Valid: validNonEmptyString,
	}
	// text keeps the raw value untouched, whitespace included.
	m["text"] = Type{
		Pre: func(raw string) any { return raw },
	}
	m["password"] = Type{
		Pre:   func(raw string) any { return raw },
		Valid: validPassword,
	}
	m["id"] = Type{
		Pre: func(raw string) any {
			return strings.TrimSpace(raw)
		},
		Valid: func(v any) string {
			s, ok := v.(string)
			if !ok || !idRe.MatchString(s) {
				return "must be a valid identifier"
			}
			return ""
		},
	}
}

func validNonEmptyString(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return "must be a non-empty string"
	}
	return ""
}

func validPassword(v any) string {
	s, ok := v.(string)
	if !ok {
		return "must be a string"
	}
	if len(s) < 8 {
		return "must be at least 8 characters long"
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "must contain uppercase, lowercase and digit characters"
	}
	return ""
}
