package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/igdimer/currency-converter/internal/currency"
	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/sirupsen/logrus"
)

type GetRateResponse struct {
	Base        string  `json:"base" example:"GEL"`
	Target      string  `json:"target" example:"USD"`
	Pair        string  `json:"pair" example:"GELUSD"`
	Rate        float64 `json:"rate" example:"0.38"`
	Description string  `json:"description" example:"1 GEL = 0.38 USD"`
}

// GetRate godoc
// @Summary Get exchange rate
// @Description Retrieve the live exchange rate for a currency pair
// @Tags Rates
// @Produce json
// @Param base query string true "Base currency code" example(GEL)
// @Param target query string true "Target currency code" example(USD)
// @Success 200 {object} GetRateResponse
// @Failure 400 {object} errorResponse
// @Router /rate [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	base := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("base")))
	target := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("target")))

	if !isCurrencyCode(base) {
		writeError(w, http.StatusBadRequest, "Query parameter 'base' must be a three-letter currency code.")
		return
	}
	if !isCurrencyCode(target) {
		writeError(w, http.StatusBadRequest, "Query parameter 'target' must be a three-letter currency code.")
		return
	}

	view, err := h.service.GetRate(r.Context(), base, target)
	if err != nil {
		var exchangeErr *currency.ExchangeError
		switch {
		case errors.Is(err, domain.ErrCurrencyNotAvailable):
			writeError(w, http.StatusBadRequest, "Provided currency is not available")
		case errors.As(err, &exchangeErr):
			writeError(w, http.StatusBadRequest, exchangeErr.Message)
		default:
			msg := "ups, couldn't get rate this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRate", "base": base, "target": target}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, GetRateResponse{
		Base:        view.Base,
		Target:      view.Target,
		Pair:        view.Pair,
		Rate:        view.Rate,
		Description: view.Description,
	})
}
