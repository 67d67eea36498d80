package services

import (
	"context"
	"testing"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHistory struct {
	h   domain.History
	err error
}

func (s staticHistory) LoadHistory(context.Context) (domain.History, error) {
	return s.h, s.err
}

func day(date string, total, goal int) *domain.DayRecord {
	return &domain.DayRecord{Date: date, Total: total, Goal: goal, Logs: []domain.DrinkEvent{{Time: "10:00", Amount: total}}}
}

func TestStatsService_GetStats(t *testing.T) {
	ctx := context.Background()
	date := func(s string) time.Time {
		d, _ := time.Parse(domain.DateLayout, s)
		return d
	}

	history := domain.History{
		"2026-10-10": day("2026-10-10", 2000, 2000),
		"2026-10-11": day("2026-10-11", 2100, 2000),
		"2026-10-13": day("2026-10-13", 1500, 1500),
		"2026-10-14": day("2026-10-14", 2000, 2000),
		"2026-10-15": day("2026-10-15", 500, 2000),
	}

	t.Run("Success: Should aggregate the range", func(t *testing.T) {
		service := NewStatsService(staticHistory{h: history}, fixedGoal(2000))

		stats, err := service.GetStats(ctx, domain.StatsInput{
			StartDate: date("2026-10-10"),
			EndDate:   date("2026-10-16"),
		})
		require.NoError(t, err)

		assert.Len(t, stats.Days, 7)
		assert.Equal(t, 8100, stats.TotalIntake)
		assert.InDelta(t, 8100.0/7, stats.AverageIntake, 0.001)
		assert.Equal(t, 5, stats.DaysLogged)
		assert.Equal(t, 4, stats.DaysAchieved)
		assert.Equal(t, 2, stats.LongestStreak)
		assert.Equal(t, 0, stats.CurrentStreak)

		assert.Equal(t, "2026-10-12", stats.Days[2].Date)
		assert.Equal(t, 0, stats.Days[2].Total)
		assert.Equal(t, 2000, stats.Days[2].Goal)
		assert.Equal(t, 25, stats.Days[5].Progress)
	})

	t.Run("Success: Open last day does not break the current streak", func(t *testing.T) {
		service := NewStatsService(staticHistory{h: history}, fixedGoal(2000))

		stats, err := service.GetStats(ctx, domain.StatsInput{
			StartDate: date("2026-10-12"),
			EndDate:   date("2026-10-15"),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, stats.CurrentStreak)
		assert.InDelta(t, 50.0, stats.CompletionRate, 0.001)
	})

	t.Run("Fail: Should reject inverted ranges", func(t *testing.T) {
		service := NewStatsService(staticHistory{h: history}, fixedGoal(2000))

		_, err := service.GetStats(ctx, domain.StatsInput{
			StartDate: date("2026-10-15"),
			EndDate:   date("2026-10-10"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})

	t.Run("Fail: Should reject ranges longer than a year", func(t *testing.T) {
		service := NewStatsService(staticHistory{h: history}, fixedGoal(2000))

		_, err := service.GetStats(ctx, domain.StatsInput{
			StartDate: date("2024-01-01"),
			EndDate:   date("2026-01-01"),
		})
		assert.ErrorIs(t, err, domain.ErrRangeTooLarge)
	})

	t.Run("Fail: Should propagate history errors", func(t *testing.T) {
		service := NewStatsService(staticHistory{err: errStoreDown}, fixedGoal(2000))

		_, err := service.GetStats(ctx, domain.StatsInput{
			StartDate: date("2026-10-10"),
			EndDate:   date("2026-10-11"),
		})
		assert.ErrorIs(t, err, errStoreDown)
	})
}

func TestCalculateStreaks(t *testing.T) {
	mk := func(achieved ...bool) []domain.DayStat {
		out := make([]domain.DayStat, len(achieved))
		for i, a := range achieved {
			out[i] = domain.DayStat{Achieved: a}
		}
		return out
	}

	tests := []struct {
		name             string
		days             []domain.DayStat
		current, longest int
	}{
		{"empty", nil, 0, 0},
		{"all achieved", mk(true, true, true), 3, 3},
		{"open last day", mk(true, true, false), 2, 2},
		{"broken", mk(true, true, true, false, true, false, false), 0, 3},
		{"recent run", mk(true, false, true, true), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := calculateStreaks(tt.days)
			assert.Equal(t, tt.current, current)
			assert.Equal(t, tt.longest, longest)
		})
	}
}
