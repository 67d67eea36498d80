package config

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

// Store is the opened persistence layer. KV is passed to the services as is
// so that optional capabilities such as atomic updates stay visible.
type Store struct {
	KV    domain.KeyValueStore
	Redis *redis.Client

	closers []func() error
}

// Check reports whether the store answers reads.
func (s *Store) Check(ctx context.Context) error {
	_, err := s.KV.Get(ctx, domain.KeyGoal)
	if err == nil || errors.Is(err, domain.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (s *Store) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func OpenStore(ctx context.Context, cfg *Config) (*Store, error) {
	s := &Store{}

	if cfg.RedisConfigured() {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			URL:      cfg.RedisURL,
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		s.Redis = rdb
		s.closers = append(s.closers, rdb.Close)
	}

	kv, err := openKV(ctx, cfg, s)
	if err != nil {
		s.Close()
		return nil, err
	}

	if cfg.CacheEnabled && s.Redis != nil && cfg.StoreDriver != DriverRedis && cfg.StoreDriver != DriverMemory {
		log.Printf("[STORE] Redis cache enabled (ttl %s)", cfg.CacheTTL)
		kv = repository.NewCachedStore(kv, s.Redis, cfg.CacheTTL)
	}

	s.KV = kv
	log.Printf("[STORE] Using %s store", cfg.StoreDriver)
	return s, nil
}

func openKV(ctx context.Context, cfg *Config, s *Store) (domain.KeyValueStore, error) {
	switch cfg.StoreDriver {
	case DriverMemory:
		return repository.NewInMemoryStore(), nil

	case DriverSQLite:
		db, err := repository.OpenSQLStore(ctx, "sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)
		return db, nil

	case DriverPostgres, DriverPgx:
		db, err := repository.OpenSQLStore(ctx, cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)
		return db, nil

	case DriverRedis:
		if s.Redis == nil {
			return nil, errors.New("store: redis driver selected but redis is not configured")
		}
		return repository.NewRedisStore(s.Redis, cfg.RedisPrefix), nil

	case DriverS3:
		client, err := repository.NewS3Client(ctx, cfg.S3Region)
		if err != nil {
			return nil, err
		}
		return repository.NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix), nil
	}

	return nil, fmt.Errorf("store: unknown driver %q", cfg.StoreDriver)
}
