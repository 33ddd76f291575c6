package fieldtype

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

func registerNetwork(m map[string]Type) {
	m["email"] = Type{
		Pre: func(raw string) any {
			return strings.TrimSpace(raw)
		},
		Valid: validEmail,
		Post: func(v any) any {
			if s, ok := v.(string); ok {
				return strings.ToLower(s)
			}
			return v
		},
	}
	m["url"] = Type{
		Pre: func(raw string) any {
			return strings.TrimSpace(raw)
		},
		Valid: validURL,
	}
	m["phone"] = Type{
		Pre:   prePhone,
		Valid: validPhone,
	}
}

func validEmail(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return "must be a valid email address"
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "must be a valid email address"
	}

	// Pragmatic web rules on top of RFC 5322: a single @, a dotted domain
	// with no empty labels.
	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return "must be a valid email address"
	}
	domain := parts[1]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "must be a valid email address"
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return "must be a valid email address"
		}
	}
	return ""
}

func validURL(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return "must be a valid URL"
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "must be a valid URL"
	}
	return ""
}

// prePhone strips the separators people habitually type into phone numbers,
// keeping digits and a single leading plus.
func prePhone(raw string) any {
	s := strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// separator, drop
		default:
			return raw
		}
	}
	return b.String()
}

func validPhone(v any) string {
	s, ok := v.(string)
	if !ok || !phoneRe.MatchString(s) {
		return "must be a valid phone number"
	}
	return ""
}
