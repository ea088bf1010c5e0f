package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Price is a monetary amount that keeps the scale it was read with, so a
// NUMERIC(12,2) value of 19.90 is rendered as "19.90" rather than "19.9".
type Price struct {
	decimal.Decimal
}

// NewPrice wraps d without changing its scale.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// String formats the price with as many fractional digits as its scale.
func (p Price) String() string {
	if exp := p.Exponent(); exp < 0 {
		return p.StringFixed(-exp)
	}
	return p.Decimal.String()
}

// MarshalJSON encodes the price as a quoted decimal string.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}
