// Package money implements exact fixed-point currency arithmetic. Amounts are
// stored as an integer count of minor units (cents); anything that can produce
// a fractional cent goes through shopspring/decimal and is rounded
// half-away-from-zero before it lands back in a Money.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a decimal amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid money amount")

// ErrDivisionByZero is returned when dividing a Money by a zero scalar.
var ErrDivisionByZero = errors.New("money division by zero")

// Money is an immutable currency amount in minor units.
type Money struct {
	cents int64
}

// New returns a Money holding the given number of minor units.
func New(cents int64) Money {
	return Money{cents: cents}
}

// Zero is the additive identity.
func Zero() Money {
	return Money{}
}

// FromDecimal parses a decimal string such as "32.95" and rounds it to the
// nearest minor unit.
func FromDecimal(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse %q: %w", amount, ErrInvalidAmount)
	}
	return fromDecimalValue(d), nil
}

// FromFloat converts a numeric literal through the same exact-decimal path as
// FromDecimal. decimal.NewFromFloat takes the shortest exact representation,
// so 32.95 becomes 3295 cents rather than 3294.
func FromFloat(amount float64) Money {
	return fromDecimalValue(decimal.NewFromFloat(amount))
}

// MustFromDecimal is FromDecimal for amounts known valid at compile time,
// such as catalogue literals in tests and entrypoints.
func MustFromDecimal(amount string) Money {
	m, err := FromDecimal(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func fromDecimalValue(d decimal.Decimal) Money {
	return Money{cents: d.Shift(2).Round(0).IntPart()}
}

// Cents returns the minor-unit amount.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns m + other. Integer arithmetic; never rounds.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m - other. Integer arithmetic; never rounds.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// Mul multiplies by a decimal scalar and rounds to the nearest minor unit,
// half away from zero. 3295 * 0.5 rounds to 1648.
func (m Money) Mul(scalar decimal.Decimal) Money {
	return Money{cents: decimal.NewFromInt(m.cents).Mul(scalar).Round(0).IntPart()}
}

// MulInt multiplies by an integer count. Exact, never rounds.
func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// Div divides by a decimal scalar with the same rounding rule as Mul.
func (m Money) Div(scalar decimal.Decimal) (Money, error) {
	if scalar.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return Money{cents: decimal.NewFromInt(m.cents).Div(scalar).Round(0).IntPart()}, nil
}

// Cmp returns -1, 0 or 1 by minor-unit amount.
func (m Money) Cmp(other Money) int {
	switch {
	case m.cents < other.cents:
		return -1
	case m.cents > other.cents:
		return 1
	default:
		return 0
	}
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// Equal reports whether both amounts hold the same number of minor units.
func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Negative reports whether the amount is below zero.
func (m Money) Negative() bool {
	return m.cents < 0
}

// String renders the amount as $D.CC, or -$D.CC for negative amounts, always
// with exactly two fraction digits and no thousands separator.
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
