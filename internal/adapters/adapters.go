package adapters

import (
	"context"

	"github.com/igdimer/currency-converter/internal/domain"
)

// ExchangeClient talks to the remote exchange-rate provider.
type ExchangeClient interface {
	GetAvailableCurrencies(ctx context.Context) (map[string]string, error)
	GetRate(ctx context.Context, base string, target string) (float64, error)
}

// CurrencyCache is the shared cache of available currencies (code -> display name).
type CurrencyCache interface {
	GetAvailableCurrencies(ctx context.Context) (map[string]string, error)
	SetAvailableCurrencies(ctx context.Context, currencies map[string]string) error
}

// CurrencyMemo is the in-process memo tier in front of CurrencyCache.
type CurrencyMemo interface {
	Get() (map[string]string, bool)
	Set(currencies map[string]string)
}

// CurrencyRegistry answers whether an uppercase currency code is available.
type CurrencyRegistry interface {
	EnsureAvailable(ctx context.Context, code string) error
}

type FavoriteRepository interface {
	InsertPairs(ctx context.Context, userID int64, pairs []domain.CurrencyPair) error
	ListByUser(ctx context.Context, userID int64) ([]domain.FavoritePair, error)
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, username string, passwordHash string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}
