package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/igdimer/currency-converter/internal/auth"
	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for a token pair
// @Tags Users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokensResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /users/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "No user with provided username.")
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Authentication failed.")
		default:
			msg := "ups, couldn't log you in this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Login", "username": req.Username}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeTokens(w, http.StatusOK, tokens)
}
