// Package quant holds decimal helpers for the exchange boundary.
// All quantities and prices cross the wire as strings; parsing and
// formatting never touch float64.
package quant

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a numeric string into a decimal.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a valid number: %q", s)
	}
	return d, nil
}

// ParsePositive parses a numeric string and requires a value greater than zero.
func ParsePositive(s string) (decimal.Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("must be greater than zero, got %s", d.String())
	}
	return d, nil
}

// Trim renders an exchange-reported decimal string without trailing zeros.
// Binance pads fills like "0.01000000"; users read "0.01".
// Non-numeric input is returned unchanged.
func Trim(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.String()
}

// Notional returns price * quantity, exact in decimal.
func Notional(price, qty decimal.Decimal) decimal.Decimal {
	return price.Mul(qty)
}

// IsZeroStr reports whether an exchange-reported decimal string is zero.
// Unparseable input counts as zero (the field is unusable either way).
func IsZeroStr(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return true
	}
	return d.IsZero()
}
