package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/sirupsen/logrus"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user account and return a token pair
// @Tags Users
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Credentials"
// @Success 201 {object} TokensResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /users/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.service.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			writeError(w, http.StatusConflict, "The username is already in use.")
			return
		}
		msg := "ups, couldn't sign you up this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Signup", "username": req.Username}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeTokens(w, http.StatusCreated, tokens)
}
