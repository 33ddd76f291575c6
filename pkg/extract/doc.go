// Package extract provides structured-source extractors for checkit field
// specs: given a path expression, an extractor returns the raw textual
// values found at that path in a parsed document.
//
// The JSON extractor resolves dot-separated paths with numeric segments for
// array indices and "*" for fan-out:
//
//	user.email        -> one value
//	items.0.id        -> one value
//	items.*.id        -> one value per element
//
// Scalars are rendered to their textual form; composite leaves are rendered
// as compact JSON so they can round-trip through the json field type.
package extract
