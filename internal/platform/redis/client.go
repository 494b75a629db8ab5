package redis

import (
	"context"

	"github.com/igdimer/currency-converter/internal/config"

	"github.com/redis/go-redis/v9"
)

func CreateClientAndPing(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
