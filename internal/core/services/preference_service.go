package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

type PreferenceService struct {
	store     domain.KeyValueStore
	publisher EventPublisher

	mu    sync.RWMutex
	prefs domain.Preferences
}

func NewPreferenceService(store domain.KeyValueStore, publisher EventPublisher) *PreferenceService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &PreferenceService{
		store:     store,
		publisher: publisher,
		prefs:     domain.DefaultPreferences(),
	}
}

// Load reads every flag independently; a missing or malformed flag keeps its
// default. The first store failure is returned after all keys were tried.
func (s *PreferenceService) Load(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()
	var firstErr error

	for _, key := range domain.PreferenceKeys {
		raw, err := s.store.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, domain.ErrKeyNotFound) {
				log.Printf("[PREFS] Failed to load %s: %v", key, err)
				if firstErr == nil {
					firstErr = fmt.Errorf("preference service: load %s: %w", key, err)
				}
			}
			continue
		}

		if v, ok := domain.DecodeFlag(raw); ok {
			_ = prefs.Set(key, v)
		}
	}

	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()

	return prefs, firstErr
}

func (s *PreferenceService) Current() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Set applies the flag in memory before persisting it. A failed write is
// reported but the in-memory value is kept.
func (s *PreferenceService) Set(ctx context.Context, key string, value bool) (domain.Preferences, error) {
	s.mu.Lock()
	prefs := s.prefs
	if err := prefs.Set(key, value); err != nil {
		s.mu.Unlock()
		return prefs, err
	}
	s.prefs = prefs
	s.mu.Unlock()

	if err := s.store.Set(ctx, key, domain.EncodeFlag(value)); err != nil {
		log.Printf("[PREFS] Failed to save %s: %v", key, err)
		return prefs, fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}

	s.publisher.Publish(domain.ChangeEvent{
		Type:        domain.EventPreferenceChanged,
		Preferences: &prefs,
		At:          time.Now().UTC(),
	})
	return prefs, nil
}
