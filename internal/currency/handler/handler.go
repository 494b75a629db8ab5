package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/igdimer/currency-converter/internal/currency"
	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/go-playground/validator/v10"
)

// CurrencyService is implemented by currency.Service.
type CurrencyService interface {
	GetRate(ctx context.Context, base string, target string) (currency.RateView, error)
	AddFavoriteList(ctx context.Context, userID int64, pairs []domain.CurrencyPair) error
	GetFavoriteRates(ctx context.Context, userID int64) ([]currency.FavoriteRateView, error)
	DeleteFavoritePairs(ctx context.Context, userID int64, ids []int64) (string, error)
}

type Handler struct {
	service  CurrencyService
	validate *validator.Validate
}

func NewCurrencyHandler(service CurrencyService) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// isCurrencyCode reports whether s is exactly three latin letters.
func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
