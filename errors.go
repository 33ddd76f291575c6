package checkit

import "errors"

// Configuration errors indicate a programming mistake in a field
// specification. They abort the whole validate call: no output map is
// produced and nothing is recorded against individual fields.
var (
	// ErrUnknownType is returned when a spec references a type name that is
	// not present in the type registry.
	ErrUnknownType = errors.New("unknown field type")

	// ErrUnknownFilter is returned when a spec references a filter name that
	// is not present in the filter registry.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrUnknownExtractor is returned when a structured selector names an
	// extractor kind that has not been registered on the context.
	ErrUnknownExtractor = errors.New("unknown extractor")

	// ErrBadSpec is returned when a field spec has an unsupported shape or an
	// unrecognized attribute key.
	ErrBadSpec = errors.New("invalid field spec")

	// ErrShortcutSyntax is returned when a shortcut type expression cannot be
	// reduced to a type name within the iteration bound.
	ErrShortcutSyntax = errors.New("malformed type expression")
)

// ErrorRecord describes one recoverable validation failure. Value failures
// carry the raw input and the intermediate value as it stood after the pre
// stage; whole-field failures (a required array receiving no values) carry
// neither.
type ErrorRecord struct {
	// Index is the position of the failing element for array fields, or -1
	// for scalar fields and whole-field errors.
	Index int

	// Original is the raw input exactly as received, nil when no raw value
	// was supplied.
	Original any

	// Intermediate is the value after the pre stage, before default
	// substitution.
	Intermediate any

	// Message describes the failure.
	Message string
}
