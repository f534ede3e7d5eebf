package market

import (
	"context"
	"errors"
	"time"
)

// ErrQuoteUnavailable is returned when a source cannot produce a usable price
// for a symbol (network failure, parse failure, unknown symbol). A trade
// attempt that hits this error must abort with no ledger mutation.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// Quote is a single observed market price for a symbol.
type Quote struct {
	Symbol string
	Price  float64
	Time   time.Time
}

// PriceSource produces current market prices. Implementations may block on
// the network and may fail; callers must treat every call as fallible and
// must not assume latency bounds.
type PriceSource interface {
	GetQuote(ctx context.Context, symbol string) (Quote, error)
}

// Quotes fetches a price for every symbol from src. It fails on the first
// unavailable symbol so a partially priced view is never returned.
func Quotes(ctx context.Context, src PriceSource, symbols []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(symbols))
	for _, sym := range symbols {
		q, err := src.GetQuote(ctx, sym)
		if err != nil {
			return nil, err
		}
		prices[sym] = q.Price
	}
	return prices, nil
}
