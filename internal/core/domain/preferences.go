package domain

import (
	"encoding/json"
	"errors"
)

var ErrUnknownPreference = errors.New("unknown preference")

type Preferences struct {
	Reminder   bool `json:"reminder"`
	DarkMode   bool `json:"dark_mode"`
	ShowQuotes bool `json:"show_quotes"`
}

// PreferenceKeys lists the store keys in display order.
var PreferenceKeys = []string{KeyReminder, KeyDarkMode, KeyShowQuotes}

func DefaultPreferences() Preferences {
	return Preferences{
		Reminder:   true,
		DarkMode:   false,
		ShowQuotes: true,
	}
}

func (p *Preferences) Get(key string) (bool, error) {
	switch key {
	case KeyReminder:
		return p.Reminder, nil
	case KeyDarkMode:
		return p.DarkMode, nil
	case KeyShowQuotes:
		return p.ShowQuotes, nil
	default:
		return false, ErrUnknownPreference
	}
}

func (p *Preferences) Set(key string, value bool) error {
	switch key {
	case KeyReminder:
		p.Reminder = value
	case KeyDarkMode:
		p.DarkMode = value
	case KeyShowQuotes:
		p.ShowQuotes = value
	default:
		return ErrUnknownPreference
	}
	return nil
}

// DecodeFlag parses a stored JSON boolean.
func DecodeFlag(raw string) (bool, bool) {
	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return false, false
	}
	return v, true
}

func EncodeFlag(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
