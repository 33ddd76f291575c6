// Package fieldtype provides the process-wide registry of field types used by
// the checkit validation pipeline, together with the built-in catalogue:
// numeric, string, temporal, boolean, network/contact, JSON, composite
// address and checksum-validated national-identifier types.
//
// # Architecture
//
// A Type bundles three optional stages over a raw textual value:
//
//   - Pre:   raw string -> intermediate (parsing/normalization)
//   - Valid: intermediate -> "" or a failure message
//   - Post:  intermediate -> final output value
//
// plus an optional Default override substituted by the pipeline when a field
// spec carries no default of its own. Each stage may be nil; a nil Pre leaves
// the raw string untouched, a nil Valid accepts everything, a nil Post
// returns the intermediate value as-is.
//
// Built-ins are grouped by family (numeric.go, string.go, datetime.go,
// network.go, identifier.go, national.go, json.go, address.go) and registered
// when the package initializes. The registry is guarded by an RWMutex but is
// expected to be effectively append-only after application startup;
// overwriting a name changes behavior for every subsequent validation that
// references it, which is the intended process-wide extension point.
//
// # Usage
//
//	fieldtype.Set("slug", fieldtype.Type{
//		Pre: func(raw string) any { return strings.TrimSpace(raw) },
//		Valid: func(v any) string {
//			if s, ok := v.(string); ok && slugRe.MatchString(s) {
//				return ""
//			}
//			return "must be a valid slug"
//		},
//	})
package fieldtype
