package domain

import (
	"errors"
	"time"
)

const MaxStatsRangeDays = 366

var (
	ErrInvalidRange  = errors.New("start_date cannot be after end_date")
	ErrRangeTooLarge = errors.New("date range too large, max 1 year allowed")
)

type HydrationStats struct {
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Goal           int       `json:"goal"`
	TotalIntake    int       `json:"total_intake"`
	AverageIntake  float64   `json:"average_intake"`
	DaysLogged     int       `json:"days_logged"`
	DaysAchieved   int       `json:"days_achieved"`
	CompletionRate float64   `json:"completion_rate"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	Days           []DayStat `json:"days"`
}

type DayStat struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Goal     int    `json:"goal"`
	Progress int    `json:"progress"`
	Achieved bool   `json:"achieved"`
}

type StatsInput struct {
	StartDate time.Time
	EndDate   time.Time
}

func (in StatsInput) Validate() error {
	if in.StartDate.After(in.EndDate) {
		return ErrInvalidRange
	}
	if in.EndDate.Sub(in.StartDate).Hours()/24 > MaxStatsRangeDays {
		return ErrRangeTooLarge
	}
	return nil
}
