// Package journal records executed fills to durable storage. The journal is
// a write-only audit trail: the ledger never reads it back, so a fresh
// session always starts from configured cash regardless of what the journal
// holds.
package journal

import (
	"time"

	"github.com/rustyeddy/paperdesk/market"
)

type Fill struct {
	ID        string
	Symbol    string
	Side      market.Side
	Units     float64
	Price     float64
	Time      time.Time
	CashAfter float64
}

type Journal interface {
	RecordFill(Fill) error
	Close() error
}

// Nop discards everything. Used when journaling is disabled and in tests.
type Nop struct{}

func (Nop) RecordFill(Fill) error { return nil }
func (Nop) Close() error          { return nil }
