package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

var (
	_ domain.KeyValueStore = (*RedisStore)(nil)
	_ domain.AtomicUpdater = (*RedisStore)(nil)
)

const maxUpdateRetries = 64

var ErrUpdateConflict = errors.New("concurrent update, retries exhausted")

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisStore) key(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("repository: redis get %s failed: %w", key, err)
	}
	return val, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("repository: redis set %s failed: %w", key, err)
	}
	return nil
}

// Update uses optimistic locking: the key is watched and the write is retried
// when another client changed it in between.
func (r *RedisStore) Update(ctx context.Context, key string, fn domain.UpdateFunc) error {
	k := r.key(key)

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, k).Result()
		found := err == nil
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrUpdateConflict
}
