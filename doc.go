// Package checkit is a declarative input-coercion and validation engine:
// callers describe, per named field, an expected type or an ad-hoc
// regexp/function/enumeration plus modifiers (default, optional, array,
// skipundef, numeric and length constraints), and the engine fetches raw
// values from a source, converts and validates them, and returns typed
// values together with a structured error report.
//
// # Architecture
//
// A Context is created per logical request around a Source of raw parameter
// values. ValidateMany drives one field at a time through a fixed pipeline:
// fetch, cardinality normalization, pre, valid, default substitution, post,
// extra filters, assembly. Type behavior comes from the process-wide registry
// in pkg/fieldtype, extra constraints from pkg/fieldfilter; both are
// extension points the host may populate during startup.
//
// Two error classes exist and never mix: configuration errors (unknown type
// or filter name, malformed spec) abort the whole call and are returned as
// wrapped sentinel errors; value errors never abort anything — they
// accumulate on the Context as ErrorRecords while the failing field's output
// falls back to its default.
//
// # Usage
//
//	c := checkit.New(checkit.RequestSource(r))
//	out, err := c.ValidateMany(map[string]any{
//		"email": "str",
//		"age":   map[string]any{"type": "?int", "min": 18},
//		"tags":  "~str",
//	})
//	if err != nil {
//		// broken field spec, programming error
//	}
//	if c.ErrorCount() > 0 {
//		// bad user input, inspect c.Errors()
//	}
//
// Field specs accept compact type expressions ("@int", "?str",
// "array[int]"), bare regular expressions, callables, enumeration lists, or
// full attribute maps; see FieldSpec and the shortcut grammar in
// shortcut.go.
package checkit
