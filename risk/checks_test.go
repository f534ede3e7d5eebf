package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/paperdesk/market"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		order   Order
		acct    AccountSnapshot
		wantErr error
	}{
		{
			name:  "buy_admitted",
			order: Order{Symbol: "AAPL", Side: market.Buy, Units: 100, Price: 10},
			acct:  AccountSnapshot{Cash: 1000},
		},
		{
			name:  "buy_exact_cash_admitted",
			order: Order{Symbol: "AAPL", Side: market.Buy, Units: 100, Price: 10},
			acct:  AccountSnapshot{Cash: 1000.0},
		},
		{
			name:    "buy_insufficient_cash",
			order:   Order{Symbol: "AAPL", Side: market.Buy, Units: 101, Price: 10},
			acct:    AccountSnapshot{Cash: 1000},
			wantErr: ErrInsufficientCash,
		},
		{
			name:  "sell_admitted",
			order: Order{Symbol: "AAPL", Side: market.Sell, Units: 50, Price: 10},
			acct:  AccountSnapshot{Cash: 0, UnitsHeld: 50},
		},
		{
			name:    "sell_more_than_held",
			order:   Order{Symbol: "AAPL", Side: market.Sell, Units: 51, Price: 10},
			acct:    AccountSnapshot{UnitsHeld: 50},
			wantErr: ErrInsufficientShares,
		},
		{
			name:    "sell_never_bought",
			order:   Order{Symbol: "SNAP", Side: market.Sell, Units: 10, Price: 9},
			acct:    AccountSnapshot{Cash: 1000000},
			wantErr: ErrInsufficientShares,
		},
		{
			name:    "zero_quantity",
			order:   Order{Symbol: "AAPL", Side: market.Buy, Units: 0, Price: 10},
			acct:    AccountSnapshot{Cash: 1000},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative_quantity",
			order:   Order{Symbol: "AAPL", Side: market.Sell, Units: -5, Price: 10},
			acct:    AccountSnapshot{UnitsHeld: 100},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "zero_price",
			order:   Order{Symbol: "AAPL", Side: market.Buy, Units: 10, Price: 0},
			acct:    AccountSnapshot{Cash: 1000},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative_price",
			order:   Order{Symbol: "AAPL", Side: market.Sell, Units: 10, Price: -1},
			acct:    AccountSnapshot{UnitsHeld: 100},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Check(tt.order, tt.acct)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// The reference admission policy runs price sanity, then cash, then
// quantity sign, then share sufficiency, and reports the first failure.
func TestCheckOrder(t *testing.T) {
	t.Parallel()

	// Bad price trumps everything, including a hopeless quantity.
	err := Check(Order{Symbol: "AAPL", Side: market.Buy, Units: -100, Price: -10}, AccountSnapshot{})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	// Sell with a negative quantity against an empty position reports the
	// quantity, not the (vacuously satisfied) share check.
	err = Check(Order{Symbol: "AAPL", Side: market.Sell, Units: -100, Price: 10}, AccountSnapshot{})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// An oversized buy is a cash rejection even when the account is flat.
	err = Check(Order{Symbol: "AAPL", Side: market.Buy, Units: 1e9, Price: 10}, AccountSnapshot{Cash: 100})
	assert.ErrorIs(t, err, ErrInsufficientCash)
}
