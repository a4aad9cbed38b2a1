package localstorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "localstorage:"

// RedisRepository хранит значения в Redis без TTL
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository создает репозиторий поверх клиента Redis.
// namespace отделяет разные экземпляры портала в одной базе.
func NewRedisRepository(client *redis.Client, namespace string) *RedisRepository {
	prefix := redisKeyPrefix
	if namespace != "" {
		prefix += namespace + ":"
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: redis get %s: %v", ErrRead, key, err)
	}
	return value, nil
}

func (r *RedisRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", ErrWrite, key, err)
	}
	return nil
}

func (r *RedisRepository) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: redis del %s: %v", ErrWrite, key, err)
	}
	return nil
}
