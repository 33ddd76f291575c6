package checkit_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
)

func TestSpecShorthand_Regexp(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^[a-z]+$`)

	t.Run("match passes", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"word": {"hello"}})
		out, err := c.ValidateOne("word", re)
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("mismatch reports", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"word": {"Hello1"}})
		out, err := c.ValidateOne("word", re)
		require.NoError(t, err)
		assert.Nil(t, out)
		assert.NotEmpty(t, c.ErrorFor("word"))
	})
}

func TestSpecShorthand_Callable(t *testing.T) {
	t.Parallel()

	c := checkit.New(checkit.MapSource{"word": {"hello"}})
	out, err := c.ValidateOne("word", func(v any) any {
		return strings.ToUpper(v.(string))
	})
	require.NoError(t, err)
	assert.Equal(t, "HELLO", out)
}

func TestSpecShorthand_Enumeration(t *testing.T) {
	t.Parallel()

	t.Run("member passes", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"status": {"active"}})
		out, err := c.ValidateOne("status", []any{"new", "active", "blocked"})
		require.NoError(t, err)
		assert.Equal(t, "active", out)
	})

	t.Run("non-member reports", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"status": {"gone"}})
		out, err := c.ValidateOne("status", []string{"new", "active", "blocked"})
		require.NoError(t, err)
		assert.Nil(t, out)
		assert.NotEmpty(t, c.ErrorFor("status"))
	})
}

func TestSpecMapForm(t *testing.T) {
	t.Parallel()

	t.Run("type token goes through the shortcut grammar", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"nums": {"1", "2"}})
		out, err := c.ValidateOne("nums", map[string]any{"type": "@int"})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2)}, out)
	})

	t.Run("explicit flags win over shortcut flags", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{})
		_, err := c.ValidateOne("name", map[string]any{
			"type":     "?str",
			"optional": false,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, c.ErrorFor("name"))
	})

	t.Run("bad attribute type is a configuration error", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{})
		_, err := c.ValidateOne("name", map[string]any{
			"type":     "str",
			"optional": "yes",
		})
		require.ErrorIs(t, err, checkit.ErrBadSpec)
	})

	t.Run("unsupported spec shape is a configuration error", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{})
		_, err := c.ValidateOne("name", 42)
		require.ErrorIs(t, err, checkit.ErrBadSpec)
	})
}
