package services

import (
	"math/rand/v2"
	"testing"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticPrefs domain.Preferences

func (p staticPrefs) Current() domain.Preferences { return domain.Preferences(p) }

func TestQuoteService_Next(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("Success: Should never repeat the current quote", func(t *testing.T) {
		service := NewQuoteService(staticPrefs(domain.DefaultPreferences()), rng)

		all, err := service.All()
		require.NoError(t, err)

		current := ""
		for i := 0; i < 50; i++ {
			q, err := service.Next(current)
			require.NoError(t, err)
			assert.NotEqual(t, current, q.Text)
			assert.Contains(t, all, q)
			current = q.Text
		}
	})

	t.Run("Fail: Should refuse when quotes are hidden", func(t *testing.T) {
		prefs := domain.DefaultPreferences()
		prefs.ShowQuotes = false
		service := NewQuoteService(staticPrefs(prefs), rng)

		_, err := service.Next("")
		assert.ErrorIs(t, err, domain.ErrQuotesHidden)

		_, err = service.All()
		assert.ErrorIs(t, err, domain.ErrQuotesHidden)
	})

	t.Run("Success: Should work without a seeded generator", func(t *testing.T) {
		service := NewQuoteService(nil, nil)

		q, err := service.Next("")
		require.NoError(t, err)
		assert.NotEmpty(t, q.Text)
		all, err := service.All()
		require.NoError(t, err)
		assert.Len(t, all, 10)
	})
}
