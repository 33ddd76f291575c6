package checkit

import (
	"fmt"
	"regexp"
	"strings"
)

// Shortcut grammar: a type expression is a type name decorated with sigils
// and wrapper forms, stripped left-to-right until only the name remains.
//
//	!   required[...]  require[...]   -> optional = false
//	?   optional[...]  maybe[...]     -> optional = true
//	@   array[...]                    -> array = true
//	    skipundef[...]                -> skipundef = true
//	~                                 -> optional = true, skipundef = true
var wrapperRe = regexp.MustCompile(`^(required|require|optional|maybe|array|skipundef)\[(.*)\]$`)

// parseShortcut expands a compact type expression into a FieldSpec carrying
// the type name and the decoded flags. The rescan loop is capped at the token
// length so malformed input surfaces as ErrShortcutSyntax instead of looping.
func parseShortcut(token string) (FieldSpec, error) {
	var fs FieldSpec
	tok := strings.TrimSpace(token)

	for i := 0; i <= len(token); i++ {
		rest, matched := stripMarker(&fs, tok)
		if !matched {
			break
		}
		tok = rest
	}
	if _, matched := stripMarker(&FieldSpec{}, tok); matched {
		return FieldSpec{}, fmt.Errorf("%w: %q", ErrShortcutSyntax, token)
	}
	if tok == "" {
		return FieldSpec{}, fmt.Errorf("%w: %q has no type name", ErrShortcutSyntax, token)
	}
	fs.Type = tok
	return fs, nil
}

func stripMarker(fs *FieldSpec, tok string) (string, bool) {
	switch {
	case strings.HasPrefix(tok, "!"):
		fs.Optional = boolPtr(false)
		return tok[1:], true
	case strings.HasPrefix(tok, "?"):
		fs.Optional = boolPtr(true)
		return tok[1:], true
	case strings.HasPrefix(tok, "@"):
		fs.Array = true
		return tok[1:], true
	case strings.HasPrefix(tok, "~"):
		fs.Optional = boolPtr(true)
		fs.SkipUndef = boolPtr(true)
		return tok[1:], true
	}
	m := wrapperRe.FindStringSubmatch(tok)
	if m == nil {
		return tok, false
	}
	switch m[1] {
	case "required", "require":
		fs.Optional = boolPtr(false)
	case "optional", "maybe":
		fs.Optional = boolPtr(true)
	case "array":
		fs.Array = true
	case "skipundef":
		fs.SkipUndef = boolPtr(true)
	}
	return m[2], true
}

func boolPtr(b bool) *bool {
	return &b
}
