package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrCorruptHistory = errors.New("stored history is not valid json")

// History maps an ISO date to its DayRecord.
type History map[string]*DayRecord

type storedDay struct {
	Total int          `json:"total"`
	Goal  int          `json:"goal"`
	Logs  []DrinkEvent `json:"logs"`
}

// DecodeHistory parses the serialized history. Empty input yields an empty
// History; malformed input yields an empty History and ErrCorruptHistory.
func DecodeHistory(raw string) (History, error) {
	h := History{}
	if strings.TrimSpace(raw) == "" {
		return h, nil
	}

	var stored map[string]*storedDay
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return History{}, fmt.Errorf("%w: %v", ErrCorruptHistory, err)
	}

	for date, day := range stored {
		if day == nil {
			continue
		}
		logs := day.Logs
		if logs == nil {
			logs = []DrinkEvent{}
		}
		h[date] = &DayRecord{
			Date:  date,
			Total: day.Total,
			Goal:  day.Goal,
			Logs:  logs,
		}
	}
	return h, nil
}

func (h History) Encode() (string, error) {
	stored := make(map[string]storedDay, len(h))
	for date, day := range h {
		logs := day.Logs
		if logs == nil {
			logs = []DrinkEvent{}
		}
		stored[date] = storedDay{Total: day.Total, Goal: day.Goal, Logs: logs}
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("encoding history: %w", err)
	}
	return string(data), nil
}

func (h History) Day(date string) (*DayRecord, bool) {
	d, ok := h[date]
	return d, ok
}

// Sorted returns the records newest first.
func (h History) Sorted() []*DayRecord {
	list := make([]*DayRecord, 0, len(h))
	for _, d := range h {
		list = append(list, d)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})
	return list
}
