// Package money holds the decimal conventions shared by the decoder and the
// ledger core. Amounts are exact decimals; binary floating point never
// touches a balance.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parse converts an input amount field to a decimal. An empty field decodes
// to zero: dispute-lifecycle records legitimately omit the amount, and a
// deposit or withdrawal with a missing amount should fail the processor's
// positive-amount check rather than fail decoding.
func Parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
