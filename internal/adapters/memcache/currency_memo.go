package memcache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

const memoKey = "available_currencies"

// CurrencyMemo keeps the available-currencies mapping in process memory so the
// shared cache is not consulted on every validity check. Writes are
// last-writer-wins; a miss simply falls through to the next tier.
type CurrencyMemo struct {
	cache *ristretto.Cache
}

func NewCurrencyMemo() (*CurrencyMemo, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 64,
		MaxCost:     8,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create currency memo failed: %w", err)
	}
	return &CurrencyMemo{cache: c}, nil
}

func (c *CurrencyMemo) Get() (map[string]string, bool) {
	v, ok := c.cache.Get(memoKey)
	if !ok {
		return nil, false
	}
	currencies, ok := v.(map[string]string)
	if !ok || len(currencies) == 0 {
		return nil, false
	}
	return currencies, true
}

func (c *CurrencyMemo) Set(currencies map[string]string) {
	if len(currencies) == 0 {
		return
	}
	c.cache.Set(memoKey, currencies, 1)
}

func (c *CurrencyMemo) Close() { c.cache.Close() }
