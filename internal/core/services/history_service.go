package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/workers"
)

type HistoryService struct {
	store     domain.KeyValueStore
	goals     GoalReader
	queue     *workers.WriteQueue
	loc       *time.Location
	now       func() time.Time
	publisher EventPublisher

	// used only when no queue is configured
	mu sync.Mutex
}

func NewHistoryService(store domain.KeyValueStore, goals GoalReader, queue *workers.WriteQueue, loc *time.Location) *HistoryService {
	if loc == nil {
		loc = time.Local
	}
	return &HistoryService{
		store:     store,
		goals:     goals,
		queue:     queue,
		loc:       loc,
		now:       time.Now,
		publisher: nopPublisher{},
	}
}

func (s *HistoryService) WithClock(now func() time.Time) *HistoryService {
	s.now = now
	return s
}

func (s *HistoryService) WithPublisher(p EventPublisher) *HistoryService {
	if p != nil {
		s.publisher = p
	}
	return s
}

func (s *HistoryService) TodayDate() string {
	return domain.DateKey(s.now().In(s.loc))
}

// LoadHistory returns every stored day. Absent or unparsable data is an empty
// history; only store failures are reported.
func (s *HistoryService) LoadHistory(ctx context.Context) (domain.History, error) {
	raw, err := s.store.Get(ctx, domain.KeyHistory)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return domain.History{}, nil
		}
		return nil, fmt.Errorf("history service: load: %w", err)
	}
	return decodeHistory(raw), nil
}

func (s *HistoryService) ListHistory(ctx context.Context) ([]*domain.DayRecord, error) {
	h, err := s.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	return h.Sorted(), nil
}

func (s *HistoryService) GetDay(ctx context.Context, date string) (*domain.DayRecord, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}

	h, err := s.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}

	day, ok := h.Day(date)
	if !ok {
		return nil, domain.ErrDayNotFound
	}
	return day, nil
}

// Today never fails for a missing day: it returns an empty record carrying
// the current goal.
func (s *HistoryService) Today(ctx context.Context) (*domain.DayRecord, error) {
	date := s.TodayDate()

	day, err := s.GetDay(ctx, date)
	if errors.Is(err, domain.ErrDayNotFound) {
		return domain.NewDayRecord(date, s.goals.Current()), nil
	}
	return day, err
}

func (s *HistoryService) RecordDrinkNow(ctx context.Context, amount int) (*domain.DayRecord, error) {
	return s.RecordDrink(ctx, s.TodayDate(), amount)
}

func (s *HistoryService) RecordDrink(ctx context.Context, date string, amount int) (*domain.DayRecord, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}

	event, err := domain.NewDrinkEvent(s.now().In(s.loc), amount)
	if err != nil {
		return nil, err
	}

	var (
		result *domain.DayRecord
		stored domain.DrinkEvent
	)
	err = s.mutate(ctx, func(h domain.History) error {
		goal := s.goals.Current()

		day, ok := h.Day(date)
		if !ok {
			day = domain.NewDayRecord(date, goal)
		}

		e, err := day.Append(event, goal)
		if err != nil {
			return err
		}

		h[date] = day
		stored = e
		result = cloneDay(day)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(domain.ChangeEvent{
		Type:  domain.EventDrinkRecorded,
		Date:  date,
		Day:   result,
		Drink: &stored,
		At:    s.now().UTC(),
	})
	return result, nil
}

// ResetDay discards every event of date; the day keeps existing with a zero
// total and the current goal.
func (s *HistoryService) ResetDay(ctx context.Context, date string) (*domain.DayRecord, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}

	var result *domain.DayRecord
	err := s.mutate(ctx, func(h domain.History) error {
		day := domain.NewDayRecord(date, s.goals.Current())
		h[date] = day
		result = cloneDay(day)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(domain.ChangeEvent{
		Type: domain.EventDayReset,
		Date: date,
		Day:  result,
		At:   s.now().UTC(),
	})
	return result, nil
}

func (s *HistoryService) ResetToday(ctx context.Context) (*domain.DayRecord, error) {
	return s.ResetDay(ctx, s.TodayDate())
}

// mutate serializes a read-modify-write of the history blob. Stores that can
// update a key atomically are used that way so other processes cannot
// interleave either.
func (s *HistoryService) mutate(ctx context.Context, fn func(h domain.History) error) error {
	run := func(ctx context.Context) error {
		if u, ok := s.store.(domain.AtomicUpdater); ok {
			return s.mutateAtomic(ctx, u, fn)
		}

		h, err := s.LoadHistory(ctx)
		if err != nil {
			return err
		}
		if err := fn(h); err != nil {
			return err
		}

		raw, err := h.Encode()
		if err != nil {
			return err
		}
		if err := s.store.Set(ctx, domain.KeyHistory, raw); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
		}
		return nil
	}

	if s.queue == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return run(ctx)
	}
	return s.queue.Do(ctx, run)
}

func (s *HistoryService) mutateAtomic(ctx context.Context, u domain.AtomicUpdater, fn func(h domain.History) error) error {
	var fnErr error
	err := u.Update(ctx, domain.KeyHistory, func(current string, found bool) (string, error) {
		h := domain.History{}
		if found {
			h = decodeHistory(current)
		}
		if fnErr = fn(h); fnErr != nil {
			return "", fnErr
		}
		return h.Encode()
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
}

func decodeHistory(raw string) domain.History {
	h, err := domain.DecodeHistory(raw)
	if err != nil {
		log.Printf("[HISTORY] Stored history is unreadable, treating it as empty: %v", err)
	}
	return h
}

func cloneDay(d *domain.DayRecord) *domain.DayRecord {
	c := *d
	c.Logs = make([]domain.DrinkEvent, len(d.Logs))
	copy(c.Logs, d.Logs)
	return &c
}
