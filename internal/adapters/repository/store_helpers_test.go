package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../../.env")

	rdb, err := cache.NewRedisClient(context.Background(), cache.Options{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       1,
	})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	require.NoError(t, rdb.FlushDB(context.Background()).Err(), "Failed to flush test DB")
	return rdb
}

func setupTestPostgres(t *testing.T) *SQLStore {
	_ = godotenv.Load("../../../.env")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "hydrate_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "hydrate_db"),
	)

	store, err := OpenSQLStore(context.Background(), "pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}

	_, err = store.db.Exec("TRUNCATE TABLE kv_store")
	require.NoError(t, err, "Failed to clean up kv_store")
	return store
}

// runStoreContract checks the behaviour every KeyValueStore shares.
func runStoreContract(t *testing.T, store domain.KeyValueStore) {
	ctx := context.Background()

	t.Run("Fail: Missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Success: Set then Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.KeyGoal, "2500"))

		val, err := store.Get(ctx, domain.KeyGoal)
		require.NoError(t, err)
		assert.Equal(t, "2500", val)
	})

	t.Run("Success: Set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.KeyDarkMode, "false"))
		require.NoError(t, store.Set(ctx, domain.KeyDarkMode, "true"))

		val, err := store.Get(ctx, domain.KeyDarkMode)
		require.NoError(t, err)
		assert.Equal(t, "true", val)
	})

	u, ok := store.(domain.AtomicUpdater)
	if !ok {
		return
	}

	t.Run("Success: Update creates and modifies", func(t *testing.T) {
		err := u.Update(ctx, "counter", func(current string, found bool) (string, error) {
			assert.False(t, found)
			return "1", nil
		})
		require.NoError(t, err)

		err = u.Update(ctx, "counter", func(current string, found bool) (string, error) {
			assert.True(t, found)
			assert.Equal(t, "1", current)
			return "2", nil
		})
		require.NoError(t, err)

		val, err := store.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, "2", val)
	})

	t.Run("Fail: Update aborted by fn leaves the value", func(t *testing.T) {
		errAbort := fmt.Errorf("abort")
		err := u.Update(ctx, "counter", func(string, bool) (string, error) {
			return "", errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		val, err := store.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, "2", val)
	})

	t.Run("Success: Concurrent updates are not lost", func(t *testing.T) {
		const n = 20
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := u.Update(ctx, "appends", func(current string, _ bool) (string, error) {
					return current + "x", nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		val, err := store.Get(ctx, "appends")
		require.NoError(t, err)
		assert.Len(t, val, n)
	})
}
