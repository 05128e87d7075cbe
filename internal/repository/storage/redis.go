package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/config"
)

type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage - connects to the configured Redis and pings it once.
func NewRedisStorage(ctx context.Context, conf *config.Redis) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: conf.GetRedisAddr(),
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", conf.GetRedisAddr(), err)
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	return nil
}
