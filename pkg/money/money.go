package money

import (
	"github.com/shopspring/decimal"
)

// Money represents custom type for processing money.
type Money struct {
	decimal decimal.Decimal
}

// Zero represents zero (0) amount.
// Zero always equals to 0 and to 0.0...N.
var Zero = NewFromInt(0)

// NewFromString parses string and returns decimal amount.
// If s is empty, will be returned Zero decimal without throwing an error.
func NewFromString(s string) (Money, error) {
	if len(s) == 0 {
		return Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// NewFromInt returns decimal from integer number.
func NewFromInt(i int64) Money {
	return Money{decimal.NewFromInt(i)}
}

// NewFromFloat returns decimal from float number.
// NaN and infinite values are not representable and panic, callers must check them first.
func NewFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// GreaterThan reports whether m > right.
func (m Money) GreaterThan(right Money) bool {
	return m.decimal.GreaterThan(right.decimal)
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.decimal.IsNegative()
}

// Float64 returns the nearest float representation of the amount.
func (m Money) Float64() float64 {
	return m.decimal.InexactFloat64()
}

// String returns string representation of the amount without any rounding.
func (m Money) String() string {
	return m.decimal.String()
}

// StringFixed returns string representation of float with 2 places after digit.
// Resulting string will be rounded to nearest.
func (m Money) StringFixed() string {
	return m.decimal.StringFixed(2)
}
