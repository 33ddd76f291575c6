package checkit

import (
	"net/http"
	"net/url"
	"sync"
)

// Source supplies the raw textual values for a flat parameter name. A nil
// slice means the parameter was not supplied at all.
type Source interface {
	Values(name string) []string
}

// Extractor supplies raw values for a structured-source selector path, e.g. a
// pointer into a parsed JSON document. Extractors are registered per kind on
// a Context and queried at most once per (kind, path) per validate call.
type Extractor interface {
	Extract(path string) ([]string, error)
}

// MapSource adapts a plain map to the Source interface. url.Values converts
// directly: MapSource(req.URL.Query()).
type MapSource map[string][]string

func (m MapSource) Values(name string) []string {
	return m[name]
}

// FormSource wraps already-parsed url.Values.
func FormSource(v url.Values) Source {
	return MapSource(v)
}

// RequestSource reads parameters from an HTTP request, merging query string
// and form body the way http.Request.Form does. The form is parsed lazily on
// first use and only once.
func RequestSource(r *http.Request) Source {
	return &requestSource{r: r}
}

type requestSource struct {
	r    *http.Request
	once sync.Once
}

func (s *requestSource) Values(name string) []string {
	s.once.Do(func() {
		_ = s.r.ParseForm()
	})
	return s.r.Form[name]
}
