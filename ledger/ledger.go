// Package ledger owns the session's cash balance, per-symbol positions and
// the append-only trade history, and computes the realized/unrealized P/L
// split. All mutation goes through ExecuteTrade.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/paperdesk/journal"
	"github.com/rustyeddy/paperdesk/market"
	"github.com/rustyeddy/paperdesk/pkg/id"
	"github.com/rustyeddy/paperdesk/risk"
)

type Ledger struct {
	mu        sync.Mutex
	cash      float64
	positions map[string]*Position
	order     []string // symbols in first-traded order
	history   []TradeRecord

	journal journal.Journal
	log     zerolog.Logger
	now     func() time.Time
}

// New creates a ledger with the full starting cash, no positions and an
// empty history. Pass journal.Nop{} to disable the audit trail.
func New(startingCash float64, j journal.Journal, log zerolog.Logger) *Ledger {
	if j == nil {
		j = journal.Nop{}
	}
	return &Ledger{
		cash:      startingCash,
		positions: make(map[string]*Position),
		journal:   j,
		log:       log.With().Str("component", "ledger").Logger(),
		now:       time.Now,
	}
}

// ExecuteTrade admits and applies a single trade. Validation runs under the
// same lock as the mutation, so state quoted to the user before a
// confirmation prompt can never leak into admission: the checks always see
// the ledger as it is at execution time. A rejected trade leaves the ledger
// untouched and returns the rejection unwrapped from the risk package.
//
// Buys fold the trade into the weighted-average cost basis and debit cash.
// Sells realize units*(price-WAP), credit cash and leave the WAP of the
// remaining lot alone. No rounding happens here; display rounding is the
// report layer's job.
func (l *Ledger) ExecuteTrade(symbol string, side market.Side, units, price float64) (TradeRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var held float64
	if pos, ok := l.positions[symbol]; ok {
		held = pos.Units
	}

	if side != market.Buy && side != market.Sell {
		return TradeRecord{}, fmt.Errorf("execute trade: unknown side %v", side)
	}

	order := risk.Order{Symbol: symbol, Side: side, Units: units, Price: price}
	if err := risk.Check(order, risk.AccountSnapshot{Cash: l.cash, UnitsHeld: held}); err != nil {
		return TradeRecord{}, err
	}

	pos, ok := l.positions[symbol]
	if !ok {
		// First touch: register the symbol with the trade price as basis.
		pos = &Position{Symbol: symbol, WAP: price}
		l.positions[symbol] = pos
		l.order = append(l.order, symbol)
	}

	if side == market.Buy {
		pos.WAP = (pos.Units*pos.WAP + units*price) / (pos.Units + units)
		pos.Units += units
		l.cash -= units * price
	} else {
		pos.RealizedPL += units * (price - pos.WAP)
		pos.Units -= units
		l.cash += units * price
	}

	rec := TradeRecord{
		ID:        id.New(),
		Symbol:    symbol,
		Side:      side,
		Units:     units,
		Price:     price,
		Time:      l.now(),
		CashAfter: l.cash,
	}
	l.history = append(l.history, rec)

	// The in-memory ledger is the source of truth; a journal write failure
	// does not unwind a committed trade.
	if err := l.journal.RecordFill(journal.Fill{
		ID:        rec.ID,
		Symbol:    rec.Symbol,
		Side:      rec.Side,
		Units:     rec.Units,
		Price:     rec.Price,
		Time:      rec.Time,
		CashAfter: rec.CashAfter,
	}); err != nil {
		l.log.Warn().Err(err).Str("fill_id", rec.ID).Msg("journal write failed")
	}

	l.log.Info().
		Str("fill_id", rec.ID).
		Str("symbol", symbol).
		Stringer("side", side).
		Float64("units", units).
		Float64("price", price).
		Float64("cash_after", l.cash).
		Msg("trade executed")

	return rec, nil
}

// MarkToMarket returns (price - WAP) * units for every position that has a
// supplied price. It mutates nothing, so calling it repeatedly with the
// same prices yields the same result.
func (l *Ledger) MarkToMarket(prices map[string]float64) map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]float64, len(l.positions))
	for sym, pos := range l.positions {
		price, ok := prices[sym]
		if !ok {
			continue
		}
		out[sym] = (price - pos.WAP) * pos.Units
	}
	return out
}

// Cash returns the current cash balance.
func (l *Ledger) Cash() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cash
}

// Position returns a copy of the position in symbol, or false if the symbol
// was never traded.
func (l *Ledger) Position(symbol string) (Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pos, ok := l.positions[symbol]
	if !ok {
		return Position{}, false
	}
	return *pos, true
}

// Positions returns copies of every position in first-traded order.
func (l *Ledger) Positions() []Position {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Position, 0, len(l.order))
	for _, sym := range l.order {
		out = append(out, *l.positions[sym])
	}
	return out
}

// History returns a copy of the trade history in append order.
func (l *Ledger) History() []TradeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]TradeRecord, len(l.history))
	copy(out, l.history)
	return out
}
