package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var (
	_ domain.KeyValueStore = (*SQLStore)(nil)
	_ domain.AtomicUpdater = (*SQLStore)(nil)
)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

// SQLStore keeps every key in a single kv_store table. It works with the
// pgx and postgres drivers as well as the embedded sqlite driver.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// OpenSQLStore connects with the given driver ("pgx", "postgres" or "sqlite")
// and creates the table when it is missing.
func OpenSQLStore(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("repository: connect %s failed: %w", driver, err)
	}
	if driver == "sqlite" {
		// one writer at a time
		db.SetMaxOpenConns(1)
	}

	s := NewSQLStore(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (r *SQLStore) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, kvSchema); err != nil {
		return fmt.Errorf("repository: migrate kv_store failed: %w", err)
	}
	return nil
}

func (r *SQLStore) Close() error {
	return r.db.Close()
}

func (r *SQLStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.get(ctx, r.db, key)
}

func (r *SQLStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.set(ctx, r.db, key, value)
}

// Update runs fn inside a transaction. On postgres the key is guarded by a
// transaction scoped advisory lock so that missing rows are covered too;
// sqlite serializes writers on its own.
func (r *SQLStore) Update(ctx context.Context, key string, fn domain.UpdateFunc) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: begin tx failed: %w", err)
	}
	defer tx.Rollback()

	if r.db.DriverName() != "sqlite" {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			return fmt.Errorf("repository: lock %s failed: %w", key, err)
		}
	}

	current, err := r.get(ctx, tx, key)
	found := err == nil
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if err := r.set(ctx, tx, key, next); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: commit failed: %w", err)
	}
	return nil
}

func (r *SQLStore) get(ctx context.Context, q sqlx.QueryerContext, key string) (string, error) {
	var value string
	err := sqlx.GetContext(ctx, q, &value, r.db.Rebind(`SELECT value FROM kv_store WHERE key = ?`), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("repository: get %s failed: %w", key, err)
	}
	return value, nil
}

func (r *SQLStore) set(ctx context.Context, e sqlx.ExecerContext, key, value string) error {
	query := r.db.Rebind(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)

	if _, err := e.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Class() == "53" {
			return fmt.Errorf("repository: database out of resources: %w", err)
		}
		return fmt.Errorf("repository: set %s failed: %w", key, err)
	}
	return nil
}
