package domain

import "time"

const (
	EventDrinkRecorded     = "drink_recorded"
	EventDayReset          = "day_reset"
	EventGoalChanged       = "goal_changed"
	EventPreferenceChanged = "preference_changed"
	EventReminder          = "reminder"
)

// ChangeEvent is pushed to live clients after every successful mutation.
type ChangeEvent struct {
	Type        string       `json:"type"`
	Date        string       `json:"date,omitempty"`
	Day         *DayRecord   `json:"day,omitempty"`
	Drink       *DrinkEvent  `json:"drink,omitempty"`
	Goal        int          `json:"goal,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
	Message     string       `json:"message,omitempty"`
	At          time.Time    `json:"at"`
}
