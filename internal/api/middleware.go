package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/igdimer/currency-converter/internal/auth"
	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/sirupsen/logrus"
)

// Authenticator is implemented by auth.Service.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (domain.User, error)
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

// AuthMiddleware resolves the bearer token and puts the user into the request
// context. Requests without a valid access token get 401.
func AuthMiddleware(authService Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "Authorization header is required.")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "Authorization header format must be Bearer {token}.")
				return
			}

			user, err := authService.Authenticate(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					writeError(w, http.StatusUnauthorized, "Invalid token was provided.")
					return
				}
				msg := "ups, couldn't authenticate you this time"
				logrus.WithError(err).WithField("middleware", "AuthMiddleware").Error(msg)
				writeError(w, http.StatusInternalServerError, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), user)))
		})
	}
}
