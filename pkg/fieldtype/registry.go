package fieldtype

import "sync"

// Type bundles the pre/valid/post stages of one named field type. Any stage
// may be nil. Default, when non-nil, is substituted by the pipeline for
// fields that declare this type without a default of their own.
type Type struct {
	Pre     func(raw string) any
	Valid   func(v any) string
	Post    func(v any) any
	Default any
}

var (
	mu       sync.RWMutex
	registry = builtins()
)

func builtins() map[string]Type {
	m := make(map[string]Type)
	registerNumeric(m)
	registerString(m)
	registerDateTime(m)
	registerBoolean(m)
	registerNetwork(m)
	registerIdentifier(m)
	registerNational(m)
	registerJSON(m)
	registerAddress(m)
	return m
}

// Get looks up a type by name.
func Get(name string) (Type, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[name]
	return t, ok
}

// Set registers or overwrites a type under the given name. Last write wins.
func Set(name string, t Type) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = t
}
