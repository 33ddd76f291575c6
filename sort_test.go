package checkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
)

func TestValidateSorted_Defaults(t *testing.T) {
	t.Parallel()

	c := checkit.New(checkit.MapSource{})
	out, err := c.ValidateSorted([]string{"name", "date"}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out["page"])
	assert.Equal(t, int64(20), out["per_page"])
	// The default order-by index 0 resolves to the first column.
	assert.Equal(t, "name", out["order_by"])
	assert.Equal(t, "ASC", out["order_dir"])
	assert.Zero(t, c.ErrorCount())
}

func TestValidateSorted_OrderByFallbackChain(t *testing.T) {
	t.Parallel()

	columns := []string{"name", "date"}

	t.Run("list hit", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"order_by": {"1"}})
		out, err := c.ValidateSorted(columns, nil)
		require.NoError(t, err)
		assert.Equal(t, "date", out["order_by"])
	})

	t.Run("list miss falls back to shifted index", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"order_by": {"5"}})
		out, err := c.ValidateSorted(columns, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(6), out["order_by"])
	})

	t.Run("shifted index of zero falls back to one", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"order_by": {"-1"}})
		out, err := c.ValidateSorted(columns, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), out["order_by"])
	})

	t.Run("no columns shifts the index", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"order_by": {"0"}})
		out, err := c.ValidateSorted(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), out["order_by"])
	})
}

func TestValidateSorted_OrderDirection(t *testing.T) {
	t.Parallel()

	t.Run("lowercase input is upper-cased", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"order_dir": {"desc"}})
		out, err := c.ValidateSorted(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "DESC", out["order_dir"])
	})

	t.Run("invalid direction falls back to default", func(t *testing.T) {
		c := checkit.New(checkit.MapSource{"order_dir": {"sideways"}})
		out, err := c.ValidateSorted(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "ASC", out["order_dir"])
		assert.Zero(t, c.ErrorCount())
	})
}

func TestValidateSorted_CallerFields(t *testing.T) {
	t.Parallel()

	c := checkit.New(checkit.MapSource{
		"page": {"3"},
		"q":    {"  hello  "},
	})
	out, err := c.ValidateSorted(nil, map[string]any{"q": "?str"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out["page"])
	assert.Equal(t, "hello", out["q"])
}

func TestValidateSorted_SuppressedFields(t *testing.T) {
	t.Parallel()

	cfg := checkit.DefaultSortConfig()
	cfg.OrderByField = checkit.OmitField
	cfg.OrderDirField = checkit.OmitField

	c := checkit.New(checkit.MapSource{})
	out, err := c.ValidateSorted(nil, nil, checkit.WithSortConfig(cfg))
	require.NoError(t, err)
	assert.Contains(t, out, "page")
	assert.Contains(t, out, "per_page")
	assert.NotContains(t, out, "order_by")
	assert.NotContains(t, out, "order_dir")
}

func TestValidateSorted_ConfiguredPerPage(t *testing.T) {
	t.Parallel()

	cfg := checkit.DefaultSortConfig()
	cfg.PerPage = 50

	c := checkit.New(checkit.MapSource{})
	out, err := c.ValidateSorted(nil, nil, checkit.WithSortConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, int64(50), out["per_page"])
}

func TestLoadSortConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CHECKIT_SORT_PER_PAGE", "35")
	t.Setenv("CHECKIT_SORT_PAGE_FIELD", "p")

	cfg, err := checkit.LoadSortConfig()
	require.NoError(t, err)
	assert.Equal(t, 35, cfg.PerPage)
	assert.Equal(t, "p", cfg.PageField)
	assert.Equal(t, "per_page", cfg.PerPageField)
}
