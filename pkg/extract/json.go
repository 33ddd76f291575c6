package extract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrInvalidDocument is returned when the document cannot be parsed.
var ErrInvalidDocument = errors.New("invalid document")

// JSONExtractor resolves path expressions over a JSON document parsed once
// at construction time.
type JSONExtractor struct {
	doc any
}

// JSON parses the document and returns an extractor over it.
func JSON(doc []byte) (*JSONExtractor, error) {
	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &JSONExtractor{doc: parsed}, nil
}

// Extract returns the textual values at the dot-separated path. A path that
// resolves to nothing yields an empty slice and no error; only a malformed
// path is an error.
func (e *JSONExtractor) Extract(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("empty path")
	}
	nodes := []any{e.doc}
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return nil, fmt.Errorf("empty segment in path %q", path)
		}
		var next []any
		for _, node := range nodes {
			next = append(next, step(node, seg)...)
		}
		nodes = next
	}

	vals := make([]string, 0, len(nodes))
	for _, node := range nodes {
		s, ok := render(node)
		if ok {
			vals = append(vals, s)
		}
	}
	return vals, nil
}

func step(node any, seg string) []any {
	switch n := node.(type) {
	case map[string]any:
		if v, ok := n[seg]; ok {
			return []any{v}
		}
	case []any:
		if seg == "*" {
			return n
		}
		if i, err := strconv.Atoi(seg); err == nil && i >= 0 && i < len(n) {
			return []any{n[i]}
		}
	}
	return nil
}

// render turns a leaf node into its raw textual form. Null leaves are
// dropped: the pipeline treats a missing value and an explicit null the same
// way.
func render(node any) (string, bool) {
	switch v := node.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}
