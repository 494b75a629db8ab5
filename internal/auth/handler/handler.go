package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/igdimer/currency-converter/internal/auth"

	"github.com/go-playground/validator/v10"
)

// AuthService is implemented by auth.Service.
type AuthService interface {
	Signup(ctx context.Context, username string, password string) (auth.TokenPair, error)
	Login(ctx context.Context, username string, password string) (auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
}

type Handler struct {
	service  AuthService
	validate *validator.Validate
}

func NewAuthHandler(service AuthService) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeTokens(w http.ResponseWriter, statusCode int, tokens auth.TokenPair) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(TokensResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}
