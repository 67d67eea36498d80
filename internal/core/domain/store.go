package domain

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrStoreWrite  = errors.New("failed to save data")
)

const (
	KeyGoal       = "dailyGoal"
	KeyHistory    = "history"
	KeyReminder   = "reminder"
	KeyDarkMode   = "darkMode"
	KeyShowQuotes = "showQuotes"
	KeyProfile    = "profile"
)

type KeyValueStore interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// UpdateFunc receives the current value (found=false when the key is absent)
// and returns the value to store.
type UpdateFunc func(current string, found bool) (string, error)

// AtomicUpdater is implemented by stores able to run a read-modify-write on a
// single key without lost updates from other writers.
type AtomicUpdater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
