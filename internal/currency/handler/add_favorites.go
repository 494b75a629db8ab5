package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/igdimer/currency-converter/internal/auth"
	"github.com/igdimer/currency-converter/internal/currency"
	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/sirupsen/logrus"
)

type FavoritePairRequest struct {
	Base   string `json:"base" validate:"required,len=3,alpha" example:"GEL"`
	Target string `json:"target" validate:"required,len=3,alpha" example:"USD"`
}

type AddFavoritesRequest struct {
	Pairs []FavoritePairRequest `json:"pairs" validate:"required,min=1,dive"`
}

// AddFavorites godoc
// @Summary Save favorite currency pairs
// @Description Validate and persist favorite pairs for the authenticated user
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoritesRequest true "Pairs to save"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /favorite_rates [post]
func (h *Handler) AddFavorites(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication failed.")
		return
	}

	var req AddFavoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pairs := make([]domain.CurrencyPair, 0, len(req.Pairs))
	for _, p := range req.Pairs {
		pairs = append(pairs, domain.CurrencyPair{
			Base:   strings.ToUpper(p.Base),
			Target: strings.ToUpper(p.Target),
		})
	}

	if err := h.service.AddFavoriteList(r.Context(), user.ID, pairs); err != nil {
		var exchangeErr *currency.ExchangeError
		switch {
		case errors.Is(err, domain.ErrCurrencyNotAvailable):
			writeError(w, http.StatusBadRequest, "Provided currency is not available")
		case errors.As(err, &exchangeErr):
			writeError(w, http.StatusBadRequest, exchangeErr.Message)
		default:
			msg := "ups, couldn't save favorite pairs this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "AddFavorites", "user_id": user.ID}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "Favorite currencies were saved."})
}
