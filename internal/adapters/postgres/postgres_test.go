package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/igdimer/currency-converter/internal/adapters/postgres"
	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `truncate table favorite_pairs, users restart identity cascade`); err != nil {
		return err
	}
	return nil
}

func createUser(t *testing.T, pool *pgxpool.Pool, username string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(),
		`insert into users (username, password_hash) values ($1, 'hash') returning id`, username,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// ---------- FavoriteRepository tests ----------

func TestFavoriteRepository_InsertPairs_SkipsDuplicates(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewFavoriteRepository(pool)
	ctx := context.Background()

	userID := createUser(t, pool, "user0")
	require.NoError(t, repo.InsertPairs(ctx, userID, []domain.CurrencyPair{
		{Base: "USD", Target: "AMD"},
	}))

	// Re-inserting USD/AMD alongside a new pair must not fail or duplicate.
	require.NoError(t, repo.InsertPairs(ctx, userID, []domain.CurrencyPair{
		{Base: "USD", Target: "AMD"},
		{Base: "GEL", Target: "USD"},
	}))

	pairs, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.Equal(t, "USD", pairs[0].Base)
	require.Equal(t, "AMD", pairs[0].Target)
	require.Equal(t, "GEL", pairs[1].Base)
	require.Equal(t, "USD", pairs[1].Target)
}

func TestFavoriteRepository_ListByUser_OnlyOwnRowsInOrder(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewFavoriteRepository(pool)
	ctx := context.Background()

	userID := createUser(t, pool, "user0")
	otherID := createUser(t, pool, "user1")

	require.NoError(t, repo.InsertPairs(ctx, otherID, []domain.CurrencyPair{{Base: "BTC", Target: "USD"}}))
	require.NoError(t, repo.InsertPairs(ctx, userID, []domain.CurrencyPair{{Base: "USD", Target: "AMD"}}))
	require.NoError(t, repo.InsertPairs(ctx, userID, []domain.CurrencyPair{{Base: "GEL", Target: "USD"}}))

	pairs, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.Equal(t, "USDAMD", pairs[0].Pair().Key())
	require.Equal(t, "GELUSD", pairs[1].Pair().Key())
	require.Less(t, pairs[0].ID, pairs[1].ID)
}

func TestFavoriteRepository_DeleteByIDs(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewFavoriteRepository(pool)
	ctx := context.Background()

	userID := createUser(t, pool, "user0")
	otherID := createUser(t, pool, "user1")

	require.NoError(t, repo.InsertPairs(ctx, userID, []domain.CurrencyPair{
		{Base: "USD", Target: "AMD"},
		{Base: "GEL", Target: "USD"},
	}))
	require.NoError(t, repo.InsertPairs(ctx, otherID, []domain.CurrencyPair{{Base: "BTC", Target: "USD"}}))

	pairs, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	otherPairs, err := repo.ListByUser(ctx, otherID)
	require.NoError(t, err)

	ids := []int64{pairs[0].ID, pairs[1].ID, otherPairs[0].ID}
	affected, err := repo.DeleteByIDs(ctx, userID, ids)
	require.NoError(t, err)
	// Another user's row must survive even when its id is in the set.
	require.EqualValues(t, 2, affected)

	affected, err = repo.DeleteByIDs(ctx, userID, ids)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)

	otherPairs, err = repo.ListByUser(ctx, otherID)
	require.NoError(t, err)
	require.Len(t, otherPairs, 1)
}

// ---------- UserRepository tests ----------

func TestUserRepository_CreateAndGet(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewUserRepository(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, "user0", "bcrypt-hash")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "user0", created.Username)

	got, err := repo.GetByUsername(ctx, "user0")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "bcrypt-hash", got.PasswordHash)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewUserRepository(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, "user0", "hash")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "user0", "other-hash")
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewUserRepository(pool)

	_, err := repo.GetByUsername(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
