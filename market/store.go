package market

import (
	"context"
	"fmt"
	"sync"
)

// QuoteStore holds the last known quote per symbol. It is safe for
// concurrent use and doubles as an offline PriceSource: a symbol that was
// never Set reports ErrQuoteUnavailable.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{quotes: make(map[string]Quote)}
}

func (s *QuoteStore) Set(q Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.Symbol] = q
}

func (s *QuoteStore) Get(symbol string) (Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[symbol]
	if !ok {
		return Quote{}, fmt.Errorf("%w: no stored quote for %q", ErrQuoteUnavailable, symbol)
	}
	return q, nil
}

// GetQuote implements PriceSource.
func (s *QuoteStore) GetQuote(_ context.Context, symbol string) (Quote, error) {
	return s.Get(symbol)
}
