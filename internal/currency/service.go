package currency

import (
	"context"
	"errors"
	"sync"

	"github.com/igdimer/currency-converter/internal/adapters"
	"github.com/igdimer/currency-converter/internal/adapters/httpclient"
	"github.com/igdimer/currency-converter/internal/domain"
)

const (
	msgPairsDeleted  = "Pairs were deleted."
	msgPairsNotFound = "Provided pairs were not found."

	unknownErrorMessage = "Unknown error from third party service."
)

// ExchangeError wraps any provider-client failure surfaced by the service,
// carrying the upstream reason for structured failures.
type ExchangeError struct {
	Message string
}

func (e *ExchangeError) Error() string { return e.Message }

// Service is the caller-facing contract for rate lookups and favorites.
// It owns no persistent state; caches and stores are injected.
type Service struct {
	registry  adapters.CurrencyRegistry
	client    adapters.ExchangeClient
	favorites adapters.FavoriteRepository
}

func NewService(registry adapters.CurrencyRegistry, client adapters.ExchangeClient, favorites adapters.FavoriteRepository) *Service {
	return &Service{registry: registry, client: client, favorites: favorites}
}

// GetRate returns the live rate for one pair. Both codes must already be
// 3-letter uppercase; format validation belongs to the request layer.
func (s *Service) GetRate(ctx context.Context, base string, target string) (RateView, error) {
	for _, code := range []string{base, target} {
		if err := s.registry.EnsureAvailable(ctx, code); err != nil {
			return RateView{}, translateClientError(err)
		}
	}

	rate, err := s.client.GetRate(ctx, base, target)
	if err != nil {
		return RateView{}, translateClientError(err)
	}

	return newRateView(base, target, rate), nil
}

// AddFavoriteList validates and persists the pairs for a user. Duplicate pairs
// in the submitted list collapse to the first occurrence, each distinct code is
// validated exactly once, and pairs the user already owns are skipped silently.
func (s *Service) AddFavoriteList(ctx context.Context, userID int64, pairs []domain.CurrencyPair) error {
	seenPairs := make(map[string]struct{}, len(pairs))
	checkedCodes := make(map[string]struct{}, len(pairs))
	deduped := make([]domain.CurrencyPair, 0, len(pairs))

	for _, pair := range pairs {
		if _, ok := seenPairs[pair.Key()]; ok {
			continue
		}
		seenPairs[pair.Key()] = struct{}{}

		for _, code := range []string{pair.Base, pair.Target} {
			if _, ok := checkedCodes[code]; ok {
				continue
			}
			checkedCodes[code] = struct{}{}
			if err := s.registry.EnsureAvailable(ctx, code); err != nil {
				return translateClientError(err)
			}
		}
		deduped = append(deduped, pair)
	}

	return s.favorites.InsertPairs(ctx, userID, deduped)
}

// GetFavoriteRates fetches live rates for all of the user's favorite pairs,
// one concurrent lookup per pair over the shared provider client. The call is
// all-or-nothing: every lookup is awaited and a single failure fails the whole
// batch with no partial results. result[i] corresponds to favorite[i].
func (s *Service) GetFavoriteRates(ctx context.Context, userID int64) ([]FavoriteRateView, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return []FavoriteRateView{}, nil
	}

	views := make([]FavoriteRateView, len(favorites))
	errs := make([]error, len(favorites))

	// No fan-out cap: one in-flight request per favorite pair. Callers needing
	// backpressure must add it outside this service.
	var wg sync.WaitGroup
	for i, fav := range favorites {
		wg.Add(1)
		go func(i int, fav domain.FavoritePair) {
			defer wg.Done()
			rate, rateErr := s.client.GetRate(ctx, fav.Base, fav.Target)
			if rateErr != nil {
				errs[i] = rateErr
				return
			}
			views[i] = FavoriteRateView{RateView: newRateView(fav.Base, fav.Target, rate), ID: fav.ID}
		}(i, fav)
	}
	wg.Wait()

	for _, rateErr := range errs {
		if rateErr != nil {
			return nil, translateClientError(rateErr)
		}
	}
	return views, nil
}

// DeleteFavoritePairs removes the user's favorite pairs with the given ids.
// Ids belonging to other users are ignored.
func (s *Service) DeleteFavoritePairs(ctx context.Context, userID int64, ids []int64) (string, error) {
	affected, err := s.favorites.DeleteByIDs(ctx, userID, ids)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return msgPairsNotFound, nil
	}
	return msgPairsDeleted, nil
}

// translateClientError maps provider-client failures into the service
// taxonomy. Validation and infrastructure errors pass through unchanged.
func translateClientError(err error) error {
	var clientErr *httpclient.ClientError
	if errors.As(err, &clientErr) {
		return &ExchangeError{Message: clientErr.Message}
	}
	if errors.Is(err, httpclient.ErrUnknownResponse) {
		return &ExchangeError{Message: unknownErrorMessage}
	}
	return err
}
