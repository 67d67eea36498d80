package domain

import (
	"errors"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive number of ml")
	ErrInvalidDate   = errors.New("invalid date format (use YYYY-MM-DD)")
)

// DrinkEvent is a single logging action. Events are never edited or removed
// one by one; a day reset drops all of them.
type DrinkEvent struct {
	Time   string `json:"time"`
	Amount int    `json:"amount"`
}

func NewDrinkEvent(at time.Time, amount int) (DrinkEvent, error) {
	if amount <= 0 {
		return DrinkEvent{}, ErrInvalidAmount
	}
	return DrinkEvent{
		Time:   at.Format(TimeLayout),
		Amount: amount,
	}, nil
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
