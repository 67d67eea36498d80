package repository

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

var (
	_ domain.KeyValueStore = (*InMemoryStore)(nil)
	_ domain.AtomicUpdater = (*InMemoryStore)(nil)
)

type InMemoryStore struct {
	store map[string]string

	mu sync.RWMutex
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		store: make(map[string]string),
	}
}

func (r *InMemoryStore) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.store[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return value, nil
}

func (r *InMemoryStore) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[key] = value
	return nil
}

func (r *InMemoryStore) Update(ctx context.Context, key string, fn domain.UpdateFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, found := r.store[key]
	next, err := fn(current, found)
	if err != nil {
		return err
	}

	r.store[key] = next
	return nil
}
