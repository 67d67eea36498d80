package domain

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

const (
	DefaultGoal = 2000
	MinGoal     = 500
)

var ErrInvalidGoal = errors.New("invalid goal: enter a number of at least 500 ml")

func ValidateGoal(goal int) error {
	if goal < MinGoal {
		return ErrInvalidGoal
	}
	return nil
}

// ParseGoal reads the leading integer of raw, so "3000 ml" is 3000.
func ParseGoal(raw string) (int, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, ErrInvalidGoal
	}

	goal, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, ErrInvalidGoal
	}
	if err := ValidateGoal(goal); err != nil {
		return 0, err
	}
	return goal, nil
}

// DecodeGoal turns a stored goal into its value, falling back to DefaultGoal
// for anything that is not a usable goal.
func DecodeGoal(raw string) int {
	goal, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || goal <= 0 {
		return DefaultGoal
	}
	return goal
}

func EncodeGoal(goal int) string {
	return strconv.Itoa(goal)
}
