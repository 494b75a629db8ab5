package currency

import (
	"context"

	"github.com/igdimer/currency-converter/internal/adapters"
	"github.com/igdimer/currency-converter/internal/domain"
)

// Registry owns the available-currencies set behind three tiers: an in-process
// memo, the shared cache and the remote provider as source of truth. Tiers are
// consulted in that order; a provider fetch back-fills both caches.
//
// No locking: two concurrent cold-cache checks may both hit the provider and
// both overwrite the shared hash. The fetched set is deterministic, so
// last-writer-wins is acceptable.
type Registry struct {
	client adapters.ExchangeClient
	cache  adapters.CurrencyCache
	memo   adapters.CurrencyMemo
}

func NewRegistry(client adapters.ExchangeClient, cache adapters.CurrencyCache, memo adapters.CurrencyMemo) *Registry {
	return &Registry{client: client, cache: cache, memo: memo}
}

// EnsureAvailable reports whether the code is a known currency. The code must
// already be uppercase; the registry performs no normalization. Provider and
// cache failures propagate untranslated.
func (r *Registry) EnsureAvailable(ctx context.Context, code string) error {
	currencies, err := r.availableCurrencies(ctx)
	if err != nil {
		return err
	}
	if _, ok := currencies[code]; !ok {
		return domain.ErrCurrencyNotAvailable
	}
	return nil
}

func (r *Registry) availableCurrencies(ctx context.Context) (map[string]string, error) {
	if currencies, ok := r.memo.Get(); ok {
		return currencies, nil
	}

	currencies, err := r.cache.GetAvailableCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	if len(currencies) > 0 {
		r.memo.Set(currencies)
		return currencies, nil
	}

	return r.Refresh(ctx)
}

// Refresh fetches the currency list from the provider and overwrites the
// shared cache and the memo. Also used by the scheduled refresh job.
func (r *Registry) Refresh(ctx context.Context) (map[string]string, error) {
	currencies, err := r.client.GetAvailableCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	if err = r.cache.SetAvailableCurrencies(ctx, currencies); err != nil {
		return nil, err
	}
	r.memo.Set(currencies)

	return currencies, nil
}
