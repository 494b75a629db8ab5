package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/igdimer/currency-converter/internal/auth"

	"github.com/sirupsen/logrus"
)

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshToken godoc
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a new token pair
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} TokensResponse
// @Failure 401 {object} errorResponse
// @Router /users/refresh_token [post]
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			writeError(w, http.StatusUnauthorized, "Invalid token was provided.")
			return
		}
		msg := "ups, couldn't refresh tokens this time"
		logrus.WithError(err).WithField("handler", "RefreshToken").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeTokens(w, http.StatusOK, tokens)
}
