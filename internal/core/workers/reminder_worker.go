package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

type PreferenceReader interface {
	Current() domain.Preferences
}

type DayReader interface {
	Today(ctx context.Context) (*domain.DayRecord, error)
}

type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

type Reminder struct {
	Date      string    `json:"date"`
	Total     int       `json:"total"`
	Goal      int       `json:"goal"`
	Remaining int       `json:"remaining"`
	Message   string    `json:"message"`
	At        time.Time `json:"at"`
}

type ReminderConfig struct {
	Interval  time.Duration
	StartHour int
	EndHour   int
	Location  *time.Location
}

type ReminderWorker struct {
	prefs    PreferenceReader
	days     DayReader
	notifier Notifier
	cfg      ReminderConfig
	now      func() time.Time
}

func NewReminderWorker(prefs PreferenceReader, days DayReader, notifier Notifier, cfg ReminderConfig) *ReminderWorker {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.EndHour <= cfg.StartHour {
		cfg.StartHour, cfg.EndHour = 8, 22
	}

	return &ReminderWorker{
		prefs:    prefs,
		days:     days,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	go func() {
		log.Printf("[WORKER] Reminder worker started (every %s)", w.cfg.Interval)
		ticker := time.NewTicker(w.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := w.Check(ctx); err != nil {
					log.Printf("[WORKER] Reminder check failed: %v", err)
				}
			case <-ctx.Done():
				log.Println("[WORKER] Reminder worker shutting down...")
				return
			}
		}
	}()
}

// Check sends a reminder when one is due and reports whether it did.
func (w *ReminderWorker) Check(ctx context.Context) (bool, error) {
	if !w.prefs.Current().Reminder {
		return false, nil
	}

	now := w.now().In(w.cfg.Location)
	if now.Hour() < w.cfg.StartHour || now.Hour() >= w.cfg.EndHour {
		return false, nil
	}

	day, err := w.days.Today(ctx)
	if err != nil {
		return false, err
	}
	if day.Achieved() {
		return false, nil
	}
	if w.drankRecently(day, now) {
		return false, nil
	}

	r := Reminder{
		Date:      day.Date,
		Total:     day.Total,
		Goal:      day.Goal,
		Remaining: day.Remaining(),
		Message:   fmt.Sprintf("Time for some water! %d ml to go today.", day.Remaining()),
		At:        now,
	}
	if err := w.notifier.Notify(ctx, r); err != nil {
		return false, err
	}
	return true, nil
}

func (w *ReminderWorker) drankRecently(day *domain.DayRecord, now time.Time) bool {
	if len(day.Logs) == 0 {
		return false
	}

	last := day.Logs[len(day.Logs)-1]
	at, err := time.ParseInLocation(domain.DateLayout+" "+domain.TimeLayout, day.Date+" "+last.Time, w.cfg.Location)
	if err != nil {
		return false
	}
	return now.Sub(at) < w.cfg.Interval
}

type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, r Reminder) error {
	log.Printf("[REMINDER] %s (%d/%d ml)", r.Message, r.Total, r.Goal)
	return nil
}

// MultiNotifier fans a reminder out to every notifier, returning the first error.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, r Reminder) error {
	var firstErr error
	for _, n := range m {
		if err := n.Notify(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
