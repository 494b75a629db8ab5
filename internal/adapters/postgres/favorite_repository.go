package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

type pairRow struct {
	Base   string `json:"base"`
	Target string `json:"target"`
}

// InsertPairs saves the pairs for a user in one statement. Pairs the user
// already owns are skipped by the unique constraint, not treated as errors.
func (r *FavoriteRepository) InsertPairs(ctx context.Context, userID int64, pairs []domain.CurrencyPair) error {
	if len(pairs) == 0 {
		return nil
	}

	rows := make([]pairRow, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, pairRow{Base: p.Base, Target: p.Target})
	}
	payloadJSON, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite pairs: %w", err)
	}

	const q = `
		insert into favorite_pairs (user_id, base, target)
		select $1, r.base, r.target
		from json_to_recordset($2::json) as r(base text, target text)
		on conflict (user_id, base, target) do nothing;
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, q, userID, json.RawMessage(payloadJSON)); err != nil {
		return fmt.Errorf("failed to insert favorite pairs: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListByUser returns the user's favorite pairs ordered by insertion (id).
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FavoritePair, error) {
	const q = `
		select id, user_id, base, target
		from favorite_pairs
		where user_id = $1
		order by id;
	`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite pairs: %w", err)
	}
	defer rows.Close()

	pairs := make([]domain.FavoritePair, 0, 16)
	for rows.Next() {
		var fp domain.FavoritePair
		if err = rows.Scan(&fp.ID, &fp.UserID, &fp.Base, &fp.Target); err != nil {
			return nil, fmt.Errorf("failed to scan favorite pair: %w", err)
		}
		pairs = append(pairs, fp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite pairs: %w", err)
	}
	return pairs, nil
}

// DeleteByIDs removes the rows with the given ids that belong to the user and
// reports how many were removed. Rows owned by other users are left alone.
func (r *FavoriteRepository) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	const q = `delete from favorite_pairs where user_id = $1 and id = any($2);`

	tag, err := r.pool.Exec(ctx, q, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete favorite pairs: %w", err)
	}
	return tag.RowsAffected(), nil
}
