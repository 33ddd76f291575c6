package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit/pkg/extract"
)

const doc = `{
	"user": {"name": "alice", "age": 33, "vip": true},
	"items": [
		{"id": 1, "tag": "a"},
		{"id": 2, "tag": "b"},
		{"id": 3}
	],
	"empty": null
}`

func newExtractor(t *testing.T) *extract.JSONExtractor {
	t.Helper()
	ex, err := extract.JSON([]byte(doc))
	require.NoError(t, err)
	return ex
}

func TestJSONExtract(t *testing.T) {
	t.Parallel()

	ex := newExtractor(t)

	t.Run("scalar leaf", func(t *testing.T) {
		vals, err := ex.Extract("user.name")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, vals)
	})

	t.Run("numbers and booleans render textually", func(t *testing.T) {
		vals, err := ex.Extract("user.age")
		require.NoError(t, err)
		assert.Equal(t, []string{"33"}, vals)

		vals, err = ex.Extract("user.vip")
		require.NoError(t, err)
		assert.Equal(t, []string{"true"}, vals)
	})

	t.Run("array index", func(t *testing.T) {
		vals, err := ex.Extract("items.1.tag")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, vals)
	})

	t.Run("wildcard fan-out", func(t *testing.T) {
		vals, err := ex.Extract("items.*.id")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, vals)
	})

	t.Run("wildcard with missing key skips elements", func(t *testing.T) {
		vals, err := ex.Extract("items.*.tag")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, vals)
	})

	t.Run("missing path yields no values", func(t *testing.T) {
		vals, err := ex.Extract("user.missing.deep")
		require.NoError(t, err)
		assert.Empty(t, vals)
	})

	t.Run("null leaf is dropped", func(t *testing.T) {
		vals, err := ex.Extract("empty")
		require.NoError(t, err)
		assert.Empty(t, vals)
	})

	t.Run("composite leaf renders as json", func(t *testing.T) {
		vals, err := ex.Extract("items.2")
		require.NoError(t, err)
		require.Len(t, vals, 1)
		assert.JSONEq(t, `{"id": 3}`, vals[0])
	})

	t.Run("malformed path", func(t *testing.T) {
		_, err := ex.Extract("")
		assert.Error(t, err)

		_, err = ex.Extract("user..name")
		assert.Error(t, err)
	})
}

func TestJSON_InvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := extract.JSON([]byte(`{"broken":`))
	assert.ErrorIs(t, err, extract.ErrInvalidDocument)
}
