package fieldtype

import (
	"strings"
	"time"
)

// Accepted textual layouts per temporal type, tried in order. The first
// layout that parses wins.
var (
	dateLayouts = []string{
		"2006-01-02",
		"2006/01/02",
		"02.01.2006",
		"Jan 2, 2006",
		time.RFC3339,
	}
	timeLayouts = []string{
		"15:04:05",
		"15:04",
		"3:04 PM",
		"3:04PM",
	}
	datetimeLayouts = []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"02.01.2006 15:04",
	}
)

func registerDateTime(m map[string]Type) {
	m["date"] = Type{
		Pre:   preLayouts(dateLayouts),
		Valid: validTime,
		Post: func(v any) any {
			if t, ok := v.(time.Time); ok {
				return t.Truncate(24 * time.Hour)
			}
			return v
		},
	}
	m["time"] = Type{
		Pre:   preLayouts(timeLayouts),
		Valid: validTime,
		Post: func(v any) any {
			if t, ok := v.(time.Time); ok {
				return t.Format("15:04:05")
			}
			return v
		},
	}
	m["datetime"] = Type{
		Pre:   preLayouts(datetimeLayouts),
		Valid: validTime,
	}
}

func preLayouts(layouts []string) func(string) any {
	return func(raw string) any {
		s := strings.TrimSpace(raw)
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return raw
	}
}

func validTime(v any) string {
	if _, ok := v.(time.Time); !ok {
		return "must be a valid date/time"
	}
	return ""
}
