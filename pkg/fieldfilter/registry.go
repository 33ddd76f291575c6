package fieldfilter

import "sync"

// Func checks an already-coerced value against a filter argument. It returns
// an empty string when the value passes, or a message describing the failure.
type Func func(value any, arg Arg) string

var (
	mu       sync.RWMutex
	registry = map[string]Func{
		"min":    Min,
		"max":    Max,
		"range":  Range,
		"regexp": Regexp,
		"in":     In,
		"size":   Size,
	}
)

// Get looks up a filter by its attribute name.
func Get(name string) (Func, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Set registers or overwrites a filter under the given attribute name.
// Last write wins. Overwriting a built-in changes behavior for every
// subsequent validation referencing that name.
func Set(name string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = fn
}
