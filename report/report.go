// Package report projects ledger state into display rows: the blotter
// (trade history, most recent first) and the P/L table (one row per symbol,
// sorted ascending). It reads the ledger and never writes it; all rounding
// to cents happens here and nowhere upstream.
package report

import (
	"sort"
	"time"

	"github.com/rustyeddy/paperdesk/ledger"
	"github.com/rustyeddy/paperdesk/market"
)

type BlotterRow struct {
	Symbol string
	Side   market.Side
	Units  float64
	Price  float64
	Time   time.Time
}

type PLRow struct {
	Symbol       string
	Units        float64
	Price        float64
	WAP          float64
	UnrealizedPL float64
	RealizedPL   float64
	TotalPL      float64
}

// Blotter returns the history as display rows, most recent trade first.
func Blotter(history []ledger.TradeRecord) []BlotterRow {
	rows := make([]BlotterRow, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		rec := history[i]
		rows = append(rows, BlotterRow{
			Symbol: rec.Symbol,
			Side:   rec.Side,
			Units:  rec.Units,
			Price:  rec.Price,
			Time:   rec.Time,
		})
	}
	return rows
}

// Marker is the slice of the ledger API the P/L view needs.
type Marker interface {
	Positions() []ledger.Position
	MarkToMarket(prices map[string]float64) map[string]float64
}

// PL marks the ledger to market with the supplied prices and returns one
// row per traded symbol, sorted by symbol ascending. Symbols without a
// supplied price are skipped, mirroring MarkToMarket.
func PL(l Marker, prices map[string]float64) []PLRow {
	upl := l.MarkToMarket(prices)

	rows := make([]PLRow, 0, len(upl))
	for _, pos := range l.Positions() {
		u, ok := upl[pos.Symbol]
		if !ok {
			continue
		}
		rows = append(rows, PLRow{
			Symbol:       pos.Symbol,
			Units:        pos.Units,
			Price:        prices[pos.Symbol],
			WAP:          pos.WAP,
			UnrealizedPL: u,
			RealizedPL:   pos.RealizedPL,
			TotalPL:      u + pos.RealizedPL,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Symbol < rows[j].Symbol })
	return rows
}
