package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

func TestDecodeHistory(t *testing.T) {
	t.Run("Empty input yields empty history", func(t *testing.T) {
		h, err := domain.DecodeHistory("")
		require.NoError(t, err)
		assert.Empty(t, h)
	})

	t.Run("Malformed input yields empty history and ErrCorruptHistory", func(t *testing.T) {
		h, err := domain.DecodeHistory("{not json")
		assert.ErrorIs(t, err, domain.ErrCorruptHistory)
		assert.NotNil(t, h)
		assert.Empty(t, h)
	})

	t.Run("Parses the stored layout and fills dates from keys", func(t *testing.T) {
		raw := `{
			"2026-03-14": {"total": 750, "goal": 2000, "logs": [{"time": "08:00", "amount": 250}, {"time": "09:30", "amount": 500}]},
			"2026-03-13": {"total": 0, "goal": 2000}
		}`

		h, err := domain.DecodeHistory(raw)
		require.NoError(t, err)
		require.Len(t, h, 2)

		day, ok := h.Day("2026-03-14")
		require.True(t, ok)
		assert.Equal(t, "2026-03-14", day.Date)
		assert.Equal(t, 750, day.Total)
		assert.Equal(t, []domain.DrinkEvent{{Time: "08:00", Amount: 250}, {Time: "09:30", Amount: 500}}, day.Logs)

		empty, ok := h.Day("2026-03-13")
		require.True(t, ok)
		assert.NotNil(t, empty.Logs)
		assert.Empty(t, empty.Logs)
	})
}

func TestHistory_Encode(t *testing.T) {
	h := domain.History{
		"2026-03-14": {Date: "2026-03-14", Total: 250, Goal: 2000, Logs: []domain.DrinkEvent{{Time: "08:00", Amount: 250}}},
		"2026-03-15": {Date: "2026-03-15", Goal: 2000},
	}

	raw, err := h.Encode()
	require.NoError(t, err)

	var generic map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &generic))

	day := generic["2026-03-14"]
	assert.Equal(t, float64(250), day["total"])
	assert.Equal(t, float64(2000), day["goal"])
	assert.NotContains(t, day, "date", "the date lives in the key only")

	logs, ok := generic["2026-03-15"]["logs"].([]any)
	require.True(t, ok, "nil logs must be written as an empty list")
	assert.Empty(t, logs)
}

func TestHistory_Sorted(t *testing.T) {
	h := domain.History{
		"2026-01-02": {Date: "2026-01-02"},
		"2025-12-31": {Date: "2025-12-31"},
		"2026-01-10": {Date: "2026-01-10"},
	}

	sorted := h.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "2026-01-10", sorted[0].Date)
	assert.Equal(t, "2026-01-02", sorted[1].Date)
	assert.Equal(t, "2025-12-31", sorted[2].Date)
}
