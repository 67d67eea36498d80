package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

// GoalService owns the daily goal. It is the only writer; everything else
// reads through Current or subscribes to changes.
type GoalService struct {
	store domain.KeyValueStore

	// held from the store write until listeners are notified
	saveMu sync.Mutex

	mu        sync.RWMutex
	current   int
	listeners []func(goal int)
}

func NewGoalService(store domain.KeyValueStore) *GoalService {
	return &GoalService{
		store:   store,
		current: domain.DefaultGoal,
	}
}

// Load reads the persisted goal. A missing or unreadable value leaves the
// default in place; store failures are returned after falling back.
func (s *GoalService) Load(ctx context.Context) (int, error) {
	raw, err := s.store.Get(ctx, domain.KeyGoal)
	if err != nil {
		s.set(domain.DefaultGoal)
		if errors.Is(err, domain.ErrKeyNotFound) {
			return domain.DefaultGoal, nil
		}
		log.Printf("[GOAL] Failed to load goal, using default: %v", err)
		return domain.DefaultGoal, fmt.Errorf("goal service: load: %w", err)
	}

	goal := domain.DecodeGoal(raw)
	s.set(goal)
	return goal, nil
}

func (s *GoalService) Current() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *GoalService) Save(ctx context.Context, goal int) error {
	if err := domain.ValidateGoal(goal); err != nil {
		return err
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.store.Set(ctx, domain.KeyGoal, domain.EncodeGoal(goal)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}

	s.set(goal)
	s.notify(goal)
	return nil
}

// SaveInput parses user input the way the settings form does and saves it.
func (s *GoalService) SaveInput(ctx context.Context, raw string) (int, error) {
	goal, err := domain.ParseGoal(raw)
	if err != nil {
		return 0, err
	}
	if err := s.Save(ctx, goal); err != nil {
		return 0, err
	}
	return goal, nil
}

func (s *GoalService) Subscribe(fn func(goal int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *GoalService) set(goal int) {
	s.mu.Lock()
	s.current = goal
	s.mu.Unlock()
}

func (s *GoalService) notify(goal int) {
	s.mu.RLock()
	listeners := make([]func(int), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(goal)
	}
}
