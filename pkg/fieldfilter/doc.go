// Package fieldfilter provides the process-wide registry of value filters
// used by the checkit validation pipeline, together with the built-in filter
// set (min, max, range, regexp, in, size).
//
// A filter is a pure function receiving an already-coerced value and a typed
// argument, returning an empty string when the value passes or a
// human-readable message when it does not. Filters never panic and never
// mutate their input.
//
// # Architecture
//
// The registry maps a filter attribute name to a Func. It is guarded by an
// RWMutex but is expected to be populated during application startup and
// treated as read-only afterwards; concurrent Set calls racing with in-flight
// validations must be serialized by the host.
//
// Filter arguments come in exactly three shapes — a scalar, a [lo, hi] pair,
// or a membership list — captured by the Arg type and its ScalarArg, PairArg
// and ListArg constructors.
//
// # Usage
//
//	fieldfilter.Set("even", func(v any, _ fieldfilter.Arg) string {
//		if n, ok := v.(int64); ok && n%2 == 0 {
//			return ""
//		}
//		return "must be an even number"
//	})
package fieldfilter
