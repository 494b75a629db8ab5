package handler

import (
	"errors"
	"net/http"

	"github.com/igdimer/currency-converter/internal/auth"
	"github.com/igdimer/currency-converter/internal/currency"

	"github.com/sirupsen/logrus"
)

type FavoriteRateResponse struct {
	ID          int64   `json:"id" example:"1"`
	Base        string  `json:"base" example:"GEL"`
	Target      string  `json:"target" example:"USD"`
	Pair        string  `json:"pair" example:"GELUSD"`
	Rate        float64 `json:"rate" example:"0.38"`
	Description string  `json:"description" example:"1 GEL = 0.38 USD"`
}

// GetFavorites godoc
// @Summary Get rates for favorite pairs
// @Description Retrieve live rates for all favorite pairs of the authenticated user
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FavoriteRateResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /favorite_rates [get]
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication failed.")
		return
	}

	views, err := h.service.GetFavoriteRates(r.Context(), user.ID)
	if err != nil {
		var exchangeErr *currency.ExchangeError
		if errors.As(err, &exchangeErr) {
			writeError(w, http.StatusBadRequest, exchangeErr.Message)
			return
		}
		msg := "ups, couldn't get favorite rates this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetFavorites", "user_id": user.ID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]FavoriteRateResponse, 0, len(views))
	for _, v := range views {
		res = append(res, FavoriteRateResponse{
			ID:          v.ID,
			Base:        v.Base,
			Target:      v.Target,
			Pair:        v.Pair,
			Rate:        v.Rate,
			Description: v.Description,
		})
	}

	writeJSON(w, http.StatusOK, res)
}
