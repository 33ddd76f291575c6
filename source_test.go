package checkit_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
)

func TestFormSource(t *testing.T) {
	t.Parallel()

	v := url.Values{}
	v.Set("name", "alice")
	v.Add("tags", "a")
	v.Add("tags", "b")

	src := checkit.FormSource(v)
	assert.Equal(t, []string{"alice"}, src.Values("name"))
	assert.Equal(t, []string{"a", "b"}, src.Values("tags"))
	assert.Nil(t, src.Values("missing"))
}

func TestRequestSource(t *testing.T) {
	t.Parallel()

	t.Run("query parameters", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/search?q=go&tags=x&tags=y", nil)
		src := checkit.RequestSource(r)
		assert.Equal(t, []string{"go"}, src.Values("q"))
		assert.Equal(t, []string{"x", "y"}, src.Values("tags"))
	})

	t.Run("form body merged with query", func(t *testing.T) {
		body := strings.NewReader("name=alice")
		r := httptest.NewRequest("POST", "/submit?ref=top", body)
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		src := checkit.RequestSource(r)
		assert.Equal(t, []string{"alice"}, src.Values("name"))
		assert.Equal(t, []string{"top"}, src.Values("ref"))
	})
}

type countingExtractor struct {
	calls  int
	values map[string][]string
}

func (e *countingExtractor) Extract(path string) ([]string, error) {
	e.calls++
	return e.values[path], nil
}

func TestStructuredSelector(t *testing.T) {
	t.Parallel()

	t.Run("values come from the extractor", func(t *testing.T) {
		ex := &countingExtractor{values: map[string][]string{
			"user.age": {"33"},
		}}
		c := checkit.New(checkit.MapSource{})
		c.RegisterExtractor("json", ex)

		out, err := c.ValidateOne("age", map[string]any{
			"type": "int",
			"from": "json:user.age",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(33), out)
	})

	t.Run("extractor is queried once per path per call", func(t *testing.T) {
		ex := &countingExtractor{values: map[string][]string{
			"user.age": {"33"},
		}}
		c := checkit.New(checkit.MapSource{})
		c.RegisterExtractor("json", ex)

		_, err := c.ValidateMany(map[string]any{
			"age":       map[string]any{"type": "int", "from": "json:user.age"},
			"age_again": map[string]any{"type": "int", "from": "json:user.age"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, ex.calls)
	})

	t.Run("unknown extractor kind is fatal", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{})
		_, err := c.ValidateOne("age", map[string]any{
			"type": "int",
			"from": "xml:user/age",
		})
		require.ErrorIs(t, err, checkit.ErrUnknownExtractor)
	})

	t.Run("selector struct form", func(t *testing.T) {
		ex := &countingExtractor{values: map[string][]string{
			"items.*.id": {"1", "2"},
		}}
		c := checkit.New(checkit.MapSource{})
		c.RegisterExtractor("json", ex)

		out, err := c.ValidateOne("ids", checkit.FieldSpec{
			Type: "int",
			From: &checkit.Selector{Kind: "json", Path: "items.*.id"},
		})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2)}, out)
	})
}
