package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/class-sync/internal/config"
	"github.com/MKhiriev/class-sync/internal/logger"
)

// RedisStorage keeps values in Redis under a configurable key prefix.
// Values never expire; the session has no notion of token lifetime.
type RedisStorage struct {
	rdb    *redis.Client
	prefix string
	logger *logger.Logger
}

var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage connects to the configured Redis instance and verifies the
// connection with PING.
func NewRedisStorage(ctx context.Context, cfg config.Redis, log *logger.Logger) (*RedisStorage, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		log.Err(err).Str("func", "NewRedisStorage").Str("addr", cfg.Address).Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("%w: redis ping: %v", ErrStorageUnavailable, err)
	}
	log.Debug().Str("func", "NewRedisStorage").Msg("connected to redis successfully")

	return newRedisStorage(rdb, cfg.KeyPrefix, log), nil
}

func newRedisStorage(rdb *redis.Client, prefix string, log *logger.Logger) *RedisStorage {
	return &RedisStorage{rdb: rdb, prefix: prefix, logger: log}
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		r.logger.Err(err).Str("func", "RedisStorage.Get").Msg("redis get failed")
		return "", fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		r.logger.Err(err).Str("func", "RedisStorage.Set").Msg("redis set failed")
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		r.logger.Err(err).Str("func", "RedisStorage.Delete").Msg("redis del failed")
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	return r.rdb.Close()
}
