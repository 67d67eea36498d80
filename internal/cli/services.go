package cli

import (
	"context"
	"log"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/config"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/services"
)

// Services is what the commands operate on.
type Services struct {
	History *services.HistoryService
	Goals   *services.GoalService
	Prefs   *services.PreferenceService
	Quotes  *services.QuoteService
	Stats   *services.StatsService

	close func() error
}

func (s *Services) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Opener builds the services for a single command run.
type Opener func(ctx context.Context) (*Services, error)

// NewServices loads goal and preferences from store and wires the rest.
// Load failures are logged and the defaults are used.
func NewServices(ctx context.Context, store domain.KeyValueStore, loc *time.Location) *Services {
	goals := services.NewGoalService(store)
	if _, err := goals.Load(ctx); err != nil {
		log.Printf("[GOAL] %v", err)
	}

	prefs := services.NewPreferenceService(store, nil)
	if _, err := prefs.Load(ctx); err != nil {
		log.Printf("[PREFS] %v", err)
	}

	history := services.NewHistoryService(store, goals, nil, loc)

	return &Services{
		History: history,
		Goals:   goals,
		Prefs:   prefs,
		Quotes:  services.NewQuoteService(prefs, nil),
		Stats:   services.NewStatsService(history, goals),
	}
}

// OpenFromConfig reads the environment the same way the API server does.
func OpenFromConfig(ctx context.Context) (*Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := NewServices(ctx, store.KV, cfg.Location)
	svc.close = store.Close
	return svc, nil
}
