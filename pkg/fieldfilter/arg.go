package fieldfilter

// Arg carries a filter argument in one of the three recognized shapes: a
// scalar (Value), or a pair/list (Values). Pair-shaped filters such as range
// and size read the first two elements of Values; list-shaped filters such as
// in read all of them.
type Arg struct {
	Value  any
	Values []any
}

// ScalarArg wraps a single-valued filter argument.
func ScalarArg(v any) Arg {
	return Arg{Value: v}
}

// PairArg wraps a [lo, hi] filter argument.
func PairArg(lo, hi any) Arg {
	return Arg{Values: []any{lo, hi}}
}

// ListArg wraps a membership-list filter argument.
func ListArg(vs ...any) Arg {
	return Arg{Values: vs}
}

// IsPair reports whether the argument carries at least a [lo, hi] pair.
func (a Arg) IsPair() bool {
	return len(a.Values) >= 2
}
