package kernel

import (
	"github.com/shopspring/decimal"
)

// Money is a value object that represents a monetary amount using exact
// decimal arithmetic. It wraps github.com/shopspring/decimal to avoid the
// precision loss of binary floating point when summing charges and rounding
// tips.
//
// The zero value of Money is a valid zero amount. Money is immutable and
// thread-safe; all operations return a new Money.
//
// Example usage:
//
//	tip := kernel.NewMoneyFromFloat(1.005)
//	rounded := tip.RoundToMultiple(100) // 1.01 for a two-decimal currency
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money representing a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Used at the transport boundary where request payloads carry JSON numbers.
func NewMoneyFromFloat(value float64) Money {
	return Money{amount: decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a Money from an exact decimal amount.
// Used when reconstructing amounts from persistence.
func NewMoneyFromDecimal(value decimal.Decimal) Money {
	return Money{amount: value}
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// RoundToMultiple rounds the amount to the currency's minor-unit granularity,
// computing round(amount * multiple) / multiple with ties rounded away from
// zero. A multiple of 100 keeps two decimals, a multiple of 1 keeps none.
//
// Example:
//
//	kernel.NewMoneyFromFloat(1.005).RoundToMultiple(100) // 1.01
//	kernel.NewMoneyFromFloat(1.5).RoundToMultiple(1)     // 2
func (m Money) RoundToMultiple(multiple int) Money {
	factor := decimal.NewFromInt(int64(multiple))
	return Money{amount: m.amount.Mul(factor).Round(0).Div(factor)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
// Amounts with different scales but the same value are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the decimal text representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
