package domain

// CurrencyPair is an ordered base/target combination of 3-letter uppercase codes.
type CurrencyPair struct {
	Base   string
	Target string
}

// Key returns the canonical 6-letter identifier of the pair ("USDAMD").
func (p CurrencyPair) Key() string {
	return p.Base + p.Target
}

// FavoritePair is a currency pair persisted for a user.
type FavoritePair struct {
	ID     int64
	UserID int64
	Base   string
	Target string
}

func (p FavoritePair) Pair() CurrencyPair {
	return CurrencyPair{Base: p.Base, Target: p.Target}
}
