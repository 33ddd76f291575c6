package fieldtype

import (
	"math"
	"strconv"
	"strings"
)

func registerNumeric(m map[string]Type) {
	m["int"] = Type{
		Pre:   preInt,
		Valid: validInt64,
	}
	m["uint"] = Type{
		Pre:   preUint,
		Valid: validUint64,
	}
	m["decimal"] = Type{
		Pre:   preFloat,
		Valid: validFloat64,
	}
	m["money"] = Type{
		Pre:   preFloat,
		Valid: validFloat64,
		Post: func(v any) any {
			if f, ok := v.(float64); ok {
				return math.Round(f*100) / 100
			}
			return v
		},
	}
	m["percent"] = Type{
		Pre: preFloat,
		Valid: func(v any) string {
			f, ok := v.(float64)
			if !ok {
				return "must be a number"
			}
			if f < 0 || f > 100 {
				return "must be between 0 and 100"
			}
			return ""
		},
	}
}

func preInt(raw string) any {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return raw
	}
	return n
}

func preUint(raw string) any {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return raw
	}
	return n
}

func preFloat(raw string) any {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return f
}

func validInt64(v any) string {
	if _, ok := v.(int64); !ok {
		return "must be an integer"
	}
	return ""
}

func validUint64(v any) string {
	if _, ok := v.(uint64); !ok {
		return "must be a non-negative integer"
	}
	return ""
}

func validFloat64(v any) string {
	if _, ok := v.(float64); !ok {
		return "must be a number"
	}
	return ""
}
