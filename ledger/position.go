package ledger

import (
	"time"

	"github.com/rustyeddy/paperdesk/market"
)

// Position is the holding in a single symbol. Units never goes negative in
// this no-shorting model. WAP is the cost basis per unit of the currently
// held lot; it is meaningful only while Units > 0, and the next buy into a
// flat position takes the new trade price (the weighted formula with zero
// held units reduces to exactly that).
type Position struct {
	Symbol     string
	Units      float64
	WAP        float64
	RealizedPL float64
}

// TradeRecord is one executed trade. Records are immutable once appended to
// the ledger history; CashAfter snapshots the cash balance at execution.
type TradeRecord struct {
	ID        string
	Symbol    string
	Side      market.Side
	Units     float64
	Price     float64
	Time      time.Time
	CashAfter float64
}
