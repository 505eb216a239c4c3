package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is the number of decimal places every balance is kept at.
const Cents = 2

// maxExponent bounds the scale of parsed amounts. Rescaling a decimal to cents
// costs time and memory proportional to its exponent.
const maxExponent = 12

// ErrAmountOutOfRange is returned for amounts whose magnitude or precision is
// beyond what an account can hold.
var ErrAmountOutOfRange = errors.New("amount out of range")

// ParseAmount parses a decimal money token such as "12.50" or "1e3".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrAmountOutOfRange, s)
	}
	return d, nil
}

// RoundCents rounds d to two decimal places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(Cents)
}

// FormatMoney renders d as "$1234.50". Negative balances render as "$-235.00".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(Cents)
}
