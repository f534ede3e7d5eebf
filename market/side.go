package market

import "fmt"

// Side is the direction of an order.
type Side int

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide maps user input to a Side. Matching is case-insensitive on the
// full word plus the single-letter shorthand used by the session menu.
func ParseSide(s string) (Side, error) {
	switch s {
	case "Buy", "buy", "BUY", "b", "B":
		return Buy, nil
	case "Sell", "sell", "SELL", "s", "S":
		return Sell, nil
	}
	return 0, fmt.Errorf("unknown side %q (want buy or sell)", s)
}
