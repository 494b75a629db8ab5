package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/igdimer/currency-converter/internal/adapters"
	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// TokenPair is what every successful signup/login/refresh returns.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type tokenClaims struct {
	Username  string `json:"username"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Service issues and validates HS256 token pairs and owns the user lifecycle.
type Service struct {
	users      adapters.UserRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(users adapters.UserRepository, secret string, accessTTL time.Duration, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Signup creates the user and logs them in. Returns domain.ErrUserAlreadyExists
// when the username is taken.
func (s *Service) Signup(ctx context.Context, username string, password string) (TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return TokenPair{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return TokenPair{}, err
	}

	return s.issueTokens(user.Username)
}

// Login verifies the password against the stored bcrypt hash. Returns
// domain.ErrUserNotFound for unknown usernames and ErrInvalidCredentials for
// a wrong password.
func (s *Service) Login(ctx context.Context, username string, password string) (TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	return s.issueTokens(user.Username)
}

// Refresh exchanges a valid refresh token for a fresh pair. The token must
// carry type "refresh" and reference a user that still exists.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	user, err := s.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return TokenPair{}, ErrInvalidToken
		}
		return TokenPair{}, err
	}

	return s.issueTokens(user.Username)
}

// Authenticate resolves an access token to its user. Returns ErrInvalidToken
// for expired, malformed, wrong-type or orphaned tokens.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (domain.User, error) {
	claims, err := s.parseToken(accessToken, tokenTypeAccess)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}

	return user, nil
}

func (s *Service) issueTokens(username string) (TokenPair, error) {
	access, err := s.signToken(username, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.signToken(username, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) signToken(username string, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *Service) parseToken(tokenString string, wantType string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
