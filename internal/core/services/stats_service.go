package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

type HistoryReader interface {
	LoadHistory(ctx context.Context) (domain.History, error)
}

type StatsService struct {
	history HistoryReader
	goals   GoalReader
}

func NewStatsService(history HistoryReader, goals GoalReader) *StatsService {
	return &StatsService{
		history: history,
		goals:   goals,
	}
}

func (s *StatsService) GetStats(ctx context.Context, input domain.StatsInput) (*domain.HydrationStats, error) {
	startDate := dayStart(input.StartDate)
	endDate := dayStart(input.EndDate)

	if err := (domain.StatsInput{StartDate: startDate, EndDate: endDate}).Validate(); err != nil {
		return nil, err
	}

	h, err := s.history.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}

	currentGoal := s.goals.Current()
	stats := &domain.HydrationStats{
		StartDate: startDate.Format(domain.DateLayout),
		EndDate:   endDate.Format(domain.DateLayout),
		Goal:      currentGoal,
		Days:      make([]domain.DayStat, 0),
	}

	daysInPeriod := 0
	for current := startDate; !current.After(endDate); current = current.AddDate(0, 0, 1) {
		dateKey := current.Format(domain.DateLayout)

		day, ok := h.Day(dateKey)
		if !ok {
			day = domain.NewDayRecord(dateKey, currentGoal)
		} else if day.Goal <= 0 {
			day = &domain.DayRecord{Date: dateKey, Total: day.Total, Goal: currentGoal}
		}

		stat := domain.DayStat{
			Date:     dateKey,
			Total:    day.Total,
			Goal:     day.Goal,
			Progress: day.Progress(),
			Achieved: day.Achieved(),
		}
		stats.Days = append(stats.Days, stat)

		stats.TotalIntake += stat.Total
		if stat.Total > 0 {
			stats.DaysLogged++
		}
		if stat.Achieved {
			stats.DaysAchieved++
		}
		daysInPeriod++
	}

	if daysInPeriod > 0 {
		stats.AverageIntake = float64(stats.TotalIntake) / float64(daysInPeriod)
		stats.CompletionRate = float64(stats.DaysAchieved) / float64(daysInPeriod) * 100
	}

	stats.CurrentStreak, stats.LongestStreak = calculateStreaks(stats.Days)
	return stats, nil
}

// calculateStreaks counts runs of achieved days. The current streak ends on
// the last day, or on the day before it while the last day is still open.
func calculateStreaks(days []domain.DayStat) (int, int) {
	if len(days) == 0 {
		return 0, 0
	}

	longest, run := 0, 0
	for _, d := range days {
		if d.Achieved {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	i := len(days) - 1
	if !days[i].Achieved {
		i--
	}
	current := 0
	for ; i >= 0 && days[i].Achieved; i-- {
		current++
	}

	return current, longest
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
