package checkit

import (
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/checkit/pkg/fieldfilter"
)

// OmitField is the sentinel field name that suppresses injection of one of
// the sort helper's synthetic fields.
const OmitField = "-"

// SortConfig names the four fields the sort helper injects and carries the
// default page size. Any name set to OmitField is not injected.
type SortConfig struct {
	PageField     string `env:"CHECKIT_SORT_PAGE_FIELD" envDefault:"page"`
	PerPageField  string `env:"CHECKIT_SORT_PER_PAGE_FIELD" envDefault:"per_page"`
	OrderByField  string `env:"CHECKIT_SORT_ORDER_BY_FIELD" envDefault:"order_by"`
	OrderDirField string `env:"CHECKIT_SORT_ORDER_DIR_FIELD" envDefault:"order_dir"`
	PerPage       int    `env:"CHECKIT_SORT_PER_PAGE" envDefault:"20"`
}

// DefaultSortConfig returns the built-in field names and page size.
func DefaultSortConfig() SortConfig {
	return SortConfig{
		PageField:     "page",
		PerPageField:  "per_page",
		OrderByField:  "order_by",
		OrderDirField: "order_dir",
		PerPage:       20,
	}
}

var sortEnvOnce sync.Once

// LoadSortConfig reads the sort configuration from environment variables,
// loading a .env file first if one exists.
func LoadSortConfig() (SortConfig, error) {
	sortEnvOnce.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})
	var cfg SortConfig
	if err := env.Parse(&cfg); err != nil {
		return SortConfig{}, fmt.Errorf("load sort config: %w", err)
	}
	return cfg, nil
}

// SetSortConfig replaces the context's sort configuration.
func (c *Context) SetSortConfig(cfg SortConfig) {
	c.sortCfg = cfg
}

// ValidateSorted behaves like ValidateMany after injecting the four
// pagination/ordering fields ahead of the caller's own:
//
//   - page:      int, default 1
//   - per-page:  int, default SortConfig.PerPage
//   - order-by:  int, default 0; post maps the index into columns with a
//     shifted-index fallback
//   - order-dir: str, default "ASC", upper-cased, constrained to asc|desc
//
// A caller field with the same name as an injected one wins.
func (c *Context) ValidateSorted(columns []string, fields map[string]any, opts ...Option) (map[string]any, error) {
	var opt callOptions
	for _, o := range opts {
		o(&opt)
	}
	cfg := c.sortCfg
	if opt.sortCfg != nil {
		cfg = *opt.sortCfg
	}

	merged := make(map[string]any, len(fields)+4)
	if cfg.PageField != OmitField {
		merged[cfg.PageField] = FieldSpec{Type: "int", Default: int64(1)}
	}
	if cfg.PerPageField != OmitField {
		merged[cfg.PerPageField] = FieldSpec{Type: "int", Default: int64(cfg.PerPage)}
	}
	if cfg.OrderByField != OmitField {
		merged[cfg.OrderByField] = FieldSpec{
			Type:    "int",
			Default: int64(0),
			Post:    orderByColumn(columns),
		}
	}
	if cfg.OrderDirField != OmitField {
		merged[cfg.OrderDirField] = FieldSpec{
			Type:    "str",
			Default: "ASC",
			Post: func(v any) any {
				if s, ok := v.(string); ok {
					return strings.ToUpper(s)
				}
				return v
			},
			Filters: []FilterUse{
				{Name: "regexp", Arg: fieldfilter.ScalarArg(`^(?i)(asc|desc)$`)},
			},
		}
	}
	for name, spec := range fields {
		merged[name] = spec
	}
	return c.ValidateMany(merged, opts...)
}

// orderByColumn maps a validated column index to its column name. The
// fallback chain is deliberate and three-tiered: list lookup, then the
// shifted 1-based index when non-zero, then the constant 1.
func orderByColumn(columns []string) func(any) any {
	return func(v any) any {
		i, ok := v.(int64)
		if !ok {
			return v
		}
		if i >= 0 && i < int64(len(columns)) {
			return columns[i]
		}
		if i+1 != 0 {
			return i + 1
		}
		return int64(1)
	}
}
