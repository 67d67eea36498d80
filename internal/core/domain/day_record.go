package domain

import (
	"errors"
	"math"
)

var (
	ErrDayNotFound = errors.New("no record for this day")
	ErrGoalReached = errors.New("daily goal already reached")
)

// DayRecord summarizes one calendar day. Goal is a snapshot of the daily goal
// taken when the record was created or reset.
type DayRecord struct {
	Date  string       `json:"date"`
	Total int          `json:"total"`
	Goal  int          `json:"goal"`
	Logs  []DrinkEvent `json:"logs"`
}

func NewDayRecord(date string, goal int) *DayRecord {
	return &DayRecord{
		Date: date,
		Goal: goal,
		Logs: []DrinkEvent{},
	}
}

// Append adds the event and keeps Total equal to the sum of Logs. The amount
// is clamped so that Total never exceeds limit; the stored event is returned.
func (d *DayRecord) Append(e DrinkEvent, limit int) (DrinkEvent, error) {
	if e.Amount <= 0 {
		return DrinkEvent{}, ErrInvalidAmount
	}

	headroom := limit - d.Total
	if headroom <= 0 {
		return DrinkEvent{}, ErrGoalReached
	}
	if e.Amount > headroom {
		e.Amount = headroom
	}

	d.Logs = append(d.Logs, e)
	d.Total += e.Amount
	return e, nil
}

func (d *DayRecord) Reset(goal int) {
	d.Total = 0
	d.Goal = goal
	d.Logs = []DrinkEvent{}
}

// Progress is the rounded completion percentage of the goal snapshot.
func (d *DayRecord) Progress() int {
	if d.Goal <= 0 {
		return 0
	}
	return int(math.Round(float64(d.Total) / float64(d.Goal) * 100))
}

func (d *DayRecord) Achieved() bool {
	return d.Goal > 0 && d.Total >= d.Goal
}

func (d *DayRecord) Remaining() int {
	if d.Total >= d.Goal {
		return 0
	}
	return d.Goal - d.Total
}

func (d *DayRecord) Consistent() bool {
	sum := 0
	for _, l := range d.Logs {
		sum += l.Amount
	}
	return sum == d.Total
}
