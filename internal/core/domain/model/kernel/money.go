package kernel

import (
	"fmt"
	"math"

	"tableside/internal/pkg/errs"
)

// Money is a fixed-point currency amount stored as integer cents.
// Amounts are never negative; arithmetic stays in integer space so menu
// prices and order totals compare exactly. The zero value is a valid 0.00.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates an amount from integer cents.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", cents, 0, int64(math.MaxInt64))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyQuantity returns the amount for quantity units at this price.
func (m Money) MultiplyQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String renders the amount with two decimal places, e.g. "12.34".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
