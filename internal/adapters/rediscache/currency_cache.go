package rediscache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// currenciesKey is the well-known hash holding code -> display name entries.
const currenciesKey = "available_currencies"

// CurrencyCache stores the available-currencies set in a shared redis hash.
// Entries never expire; the hash is only replaced by a full overwrite or an
// external flush.
type CurrencyCache struct {
	client *redis.Client
}

func NewCurrencyCache(client *redis.Client) *CurrencyCache {
	return &CurrencyCache{client: client}
}

func (c *CurrencyCache) GetAvailableCurrencies(ctx context.Context) (map[string]string, error) {
	currencies, err := c.client.HGetAll(ctx, currenciesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q hash: %w", currenciesKey, err)
	}
	return currencies, nil
}

func (c *CurrencyCache) SetAvailableCurrencies(ctx context.Context, currencies map[string]string) error {
	if len(currencies) == 0 {
		return nil
	}
	if err := c.client.HSet(ctx, currenciesKey, currencies).Err(); err != nil {
		return fmt.Errorf("failed to write %q hash: %w", currenciesKey, err)
	}
	return nil
}
