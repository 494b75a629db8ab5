package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// RateView is the canonical output shape for rate queries.
type RateView struct {
	Base        string
	Target      string
	Pair        string
	Rate        float64
	Description string
}

// FavoriteRateView is a RateView augmented with the favorite record id.
type FavoriteRateView struct {
	RateView
	ID int64
}

func newRateView(base string, target string, rate float64) RateView {
	return RateView{
		Base:        base,
		Target:      target,
		Pair:        base + target,
		Rate:        rate,
		Description: fmt.Sprintf("1 %s = %s %s", base, formatRate(rate), target),
	}
}

// formatRate renders the shortest decimal form, keeping a trailing ".0" for
// integral rates ("400.0", not "400").
func formatRate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
