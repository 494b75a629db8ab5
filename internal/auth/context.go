package auth

import (
	"context"

	"github.com/igdimer/currency-converter/internal/domain"
)

type userCtxKey struct{}

// NewContext returns ctx with the authenticated user attached.
func NewContext(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext extracts the user put there by the auth middleware.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(domain.User)
	return user, ok
}
