package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

var _ domain.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository stores the single profile as JSON under KeyProfile.
type ProfileRepository struct {
	store domain.KeyValueStore

	mu sync.Mutex
}

func NewProfileRepository(store domain.KeyValueStore) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	raw, err := r.store.Get(ctx, domain.KeyProfile)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("repository: get profile failed: %w", err)
	}

	p, err := domain.DecodeProfile(raw)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository: decode profile failed: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	raw, err := p.Encode()
	if err != nil {
		return fmt.Errorf("repository: encode profile failed: %w", err)
	}

	create := func(current string, found bool) (string, error) {
		if found && current != "" {
			return "", domain.ErrProfileExists
		}
		return raw, nil
	}

	if u, ok := r.store.(domain.AtomicUpdater); ok {
		return u.Update(ctx, domain.KeyProfile, create)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.store.Get(ctx, domain.KeyProfile)
	found := err == nil
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return fmt.Errorf("repository: get profile failed: %w", err)
	}

	next, err := create(current, found)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, domain.KeyProfile, next)
}
