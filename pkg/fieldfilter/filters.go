package fieldfilter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Min passes when the value is greater than or equal to the scalar argument.
// Numbers compare numerically, strings lexicographically.
func Min(v any, arg Arg) string {
	cmp, ok := compare(v, arg.Value)
	if !ok {
		return fmt.Sprintf("cannot compare with %v", arg.Value)
	}
	if cmp < 0 {
		return fmt.Sprintf("must be at least %v", arg.Value)
	}
	return ""
}

// Max passes when the value is less than or equal to the scalar argument.
func Max(v any, arg Arg) string {
	cmp, ok := compare(v, arg.Value)
	if !ok {
		return fmt.Sprintf("cannot compare with %v", arg.Value)
	}
	if cmp > 0 {
		return fmt.Sprintf("must be at most %v", arg.Value)
	}
	return ""
}

// Range passes when lo <= value <= hi for a [lo, hi] pair argument. It
// delegates to Min then Max, so the min failure wins when both bounds are
// violated.
func Range(v any, arg Arg) string {
	if !arg.IsPair() {
		return "range requires a [min, max] pair"
	}
	if msg := Min(v, ScalarArg(arg.Values[0])); msg != "" {
		return msg
	}
	return Max(v, ScalarArg(arg.Values[1]))
}

// Regexp passes when the value's textual form matches the pattern argument.
// The argument may be a *regexp.Regexp or a pattern string.
func Regexp(v any, arg Arg) string {
	var re *regexp.Regexp
	switch p := arg.Value.(type) {
	case *regexp.Regexp:
		re = p
	case string:
		compiled, err := regexp.Compile(p)
		if err != nil {
			return fmt.Sprintf("invalid pattern %q", p)
		}
		re = compiled
	default:
		return "regexp requires a pattern argument"
	}
	if !re.MatchString(stringify(v)) {
		return "has invalid format"
	}
	return ""
}

// In passes when the value is a member of the list argument. Membership is
// exact for directly comparable values, with a textual fallback so that a
// coerced int64(5) still matches a literal 5.
func In(v any, arg Arg) string {
	for _, candidate := range arg.Values {
		if equal(v, candidate) {
			return ""
		}
	}
	return fmt.Sprintf("must be one of: %s", joinAny(arg.Values))
}

// Size passes when lo <= length(value) <= hi for a [lo, hi] pair argument.
// Length is the rune count for strings and the element count for slices;
// any other value is measured by the rune count of its textual form.
func Size(v any, arg Arg) string {
	if !arg.IsPair() {
		return "size requires a [min, max] pair"
	}
	lo, okLo := toInt(arg.Values[0])
	hi, okHi := toInt(arg.Values[1])
	if !okLo || !okHi {
		return "size requires numeric bounds"
	}
	n := int64(length(v))
	if n < lo || n > hi {
		return fmt.Sprintf("length must be between %d and %d", lo, hi)
	}
	return ""
}

func length(v any) int {
	switch s := v.(type) {
	case string:
		return utf8.RuneCountInString(s)
	case []any:
		return len(s)
	case []string:
		return len(s)
	default:
		return utf8.RuneCountInString(stringify(v))
	}
}

// compare orders two values: numerically when both sides have a numeric
// reading, lexicographically when both are strings. The bool result is false
// when the values are not comparable at all.
func compare(a, b any) (int, bool) {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		default:
			return 0, true
		}
	}
	sa, aStr := a.(string)
	sb, bStr := b.(string)
	if aStr && bStr {
		return strings.Compare(sa, sb), true
	}
	return 0, false
}

func equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok2 := toFloat(b); ok2 {
			return fa == fb
		}
	}
	return stringify(a) == stringify(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toInt(v any) (int64, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func joinAny(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = stringify(v)
	}
	return strings.Join(parts, ", ")
}
