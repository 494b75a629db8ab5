package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, username string, passwordHash string) (domain.User, error) {
	const q = `
		insert into users (username, password_hash)
		values ($1, $2)
		returning id, username, password_hash, created_at;
	`

	var user domain.User
	err := r.pool.QueryRow(ctx, q, username, passwordHash).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.User{}, domain.ErrUserAlreadyExists
		}
		return domain.User{}, fmt.Errorf("failed to insert user %q: %w", username, err)
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `
		select id, username, password_hash, created_at
		from users
		where username = $1;
	`

	var user domain.User
	err := r.pool.QueryRow(ctx, q, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to select user %q: %w", username, err)
	}
	return user, nil
}
