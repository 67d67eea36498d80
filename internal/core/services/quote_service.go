package services

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

type PreferenceReader interface {
	Current() domain.Preferences
}

type QuoteService struct {
	quotes []domain.Quote
	prefs  PreferenceReader

	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuoteService(prefs PreferenceReader, rng *rand.Rand) *QuoteService {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &QuoteService{
		quotes: domain.DefaultQuotes,
		prefs:  prefs,
		rng:    rng,
	}
}

func (s *QuoteService) hidden() bool {
	return s.prefs != nil && !s.prefs.Current().ShowQuotes
}

func (s *QuoteService) All() ([]domain.Quote, error) {
	if s.hidden() {
		return nil, domain.ErrQuotesHidden
	}
	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out, nil
}

// Next returns a random quote other than current.
func (s *QuoteService) Next(current string) (domain.Quote, error) {
	if s.hidden() {
		return domain.Quote{}, domain.ErrQuotesHidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.PickQuote(s.quotes, current, s.rng.IntN)
}
