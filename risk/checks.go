// Package risk holds the stateless admission checks a proposed trade must
// pass before the ledger will execute it. The checks are pure predicates
// over a snapshot of account state; they never mutate anything.
package risk

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/paperdesk/market"
)

var (
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInsufficientCash   = errors.New("insufficient cash")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// Order is a proposed trade, priced and ready for admission.
type Order struct {
	Symbol string
	Side   market.Side
	Units  float64
	Price  float64
}

// AccountSnapshot is the slice of ledger state the checks need: free cash
// and the units currently held of the order's symbol (zero if the symbol
// was never traded).
type AccountSnapshot struct {
	Cash      float64
	UnitsHeld float64
}

// Check admits or rejects an order against the snapshot. Price sanity comes
// first; after that the checks run cash, quantity sign, share sufficiency.
// Callers that surface the first failure to a user depend on this order.
func Check(o Order, acct AccountSnapshot) error {
	if o.Price <= 0 {
		return fmt.Errorf("%w: %s quoted at %v", ErrInvalidPrice, o.Symbol, o.Price)
	}
	if o.Side == market.Buy && acct.Cash < o.Units*o.Price {
		return fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientCash, o.Units*o.Price, acct.Cash)
	}
	if o.Units <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, o.Units)
	}
	if o.Side == market.Sell && o.Units > acct.UnitsHeld {
		return fmt.Errorf("%w: selling %v, holding %v %s", ErrInsufficientShares, o.Units, acct.UnitsHeld, o.Symbol)
	}
	return nil
}
