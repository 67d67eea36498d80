package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	adapterHTTP "github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/realtime"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/config"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/services"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/workers"
)

type app struct {
	router   *gin.Engine
	hub      *realtime.Hub
	history  *services.HistoryService
	goals    *services.GoalService
	prefs    *services.PreferenceService
	reminder *workers.ReminderWorker
}

// newApp wires services and handlers on top of an opened store and starts
// the background workers; they stop when ctx is cancelled.
func newApp(ctx context.Context, cfg *config.Config, store *config.Store) *app {
	startTime := time.Now()

	queue := workers.NewWriteQueue(cfg.WriteQueueSize)
	queue.Start(ctx)

	hub := realtime.NewHub()

	goals := services.NewGoalService(store.KV)
	if _, err := goals.Load(ctx); err != nil {
		log.Printf("[GOAL] %v", err)
	}
	goals.Subscribe(hub.PublishGoal)

	prefs := services.NewPreferenceService(store.KV, hub)
	if _, err := prefs.Load(ctx); err != nil {
		log.Printf("[PREFS] %v", err)
	}

	history := services.NewHistoryService(store.KV, goals, queue, cfg.Location).WithPublisher(hub)
	quotes := services.NewQuoteService(prefs, nil)
	stats := services.NewStatsService(history, goals)

	deps := adapterHTTP.RouterDependencies{
		HistoryHandler:    adapterHTTP.NewHistoryHandler(history),
		GoalHandler:       adapterHTTP.NewGoalHandler(goals),
		PreferenceHandler: adapterHTTP.NewPreferenceHandler(prefs),
		QuoteHandler:      adapterHTTP.NewQuoteHandler(quotes),
		StatsHandler:      adapterHTTP.NewStatsHandler(stats, cfg.Location),
		RealtimeHandler:   adapterHTTP.NewRealtimeHandler(hub),
		StoreCheck:        store.Check,
		Redis:             store.Redis,
		RateLimit:         cfg.RateLimit,
		RateWindow:        cfg.RateWindow,
		StartTime:         startTime,
	}

	if cfg.AuthEnabled {
		profiles := repository.NewProfileRepository(store.KV)
		tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL, profiles)
		deps.AuthHandler = adapterHTTP.NewAuthHandler(services.NewAuthService(profiles, tokens))
		deps.TokenValidator = tokens
	}

	a := &app{
		router:  adapterHTTP.NewRouter(deps),
		hub:     hub,
		history: history,
		goals:   goals,
		prefs:   prefs,
	}

	if cfg.ReminderEnabled {
		a.reminder = workers.NewReminderWorker(prefs, history,
			workers.MultiNotifier{workers.LogNotifier{}, hub},
			workers.ReminderConfig{
				Interval:  cfg.ReminderInterval,
				StartHour: cfg.ReminderStartHour,
				EndHour:   cfg.ReminderEndHour,
				Location:  cfg.Location,
			})
		a.reminder.Start(ctx)
	}

	return a
}
