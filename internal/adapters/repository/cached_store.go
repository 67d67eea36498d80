package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

var (
	_ domain.KeyValueStore = (*CachedStore)(nil)
	_ domain.AtomicUpdater = (*CachedStore)(nil)
)

const DefaultCacheTTL = 30 * time.Minute

// CachedStore puts a redis read-through cache in front of a slower store.
type CachedStore struct {
	next  domain.KeyValueStore
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedStore(next domain.KeyValueStore, cache *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedStore) cacheKey(key string) string {
	return fmt.Sprintf("kv:%s", key)
}

func (r *CachedStore) invalidate(ctx context.Context, key string) {
	if err := r.cache.Del(ctx, r.cacheKey(key)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate %s: %v", key, err)
	}
}

// Get fills the cache only when nothing is cached yet, so a read that raced
// with a write cannot put the older value back over the newer one.
func (r *CachedStore) Get(ctx context.Context, key string) (string, error) {
	ck := r.cacheKey(key)

	val, err := r.cache.Get(ctx, ck).Result()
	if err == nil {
		return val, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	val, err = r.next.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if setErr := r.cache.SetNX(ctx, ck, val, r.ttl).Err(); setErr != nil {
		log.Printf("[CACHE] Redis set error: %v", setErr)
	}

	return val, nil
}

func (r *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := r.next.Set(ctx, key, value); err != nil {
		r.invalidate(ctx, key)
		return err
	}
	r.store(ctx, key, value)
	return nil
}

// Update is only atomic if the wrapped store is; otherwise it falls back to
// a plain read and write.
func (r *CachedStore) Update(ctx context.Context, key string, fn domain.UpdateFunc) error {
	if u, ok := r.next.(domain.AtomicUpdater); ok {
		var written string
		err := u.Update(ctx, key, func(current string, found bool) (string, error) {
			next, err := fn(current, found)
			written = next
			return next, err
		})
		if err != nil {
			r.invalidate(ctx, key)
			return err
		}
		r.store(ctx, key, written)
		return nil
	}

	current, err := r.next.Get(ctx, key)
	found := err == nil
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, next)
}

// store writes a freshly persisted value through, dropping the entry when
// redis refuses it.
func (r *CachedStore) store(ctx context.Context, key, value string) {
	if err := r.cache.Set(ctx, r.cacheKey(key), value, r.ttl).Err(); err != nil {
		log.Printf("[CACHE] Redis set error: %v", err)
		r.invalidate(ctx, key)
	}
}
