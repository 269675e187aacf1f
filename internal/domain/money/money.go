package money

import (
	"fmt"
	"math"
)

// Money is an amount in the smallest currency unit (cents).
type Money int64

func FromCents(cents int64) Money {
	return Money(cents)
}

// FromMajor converts a decimal amount (e.g. 89.90 euros) to cents, rounding half away from zero.
func FromMajor(amount float64) Money {
	return Money(math.Round(amount * 100))
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Major() float64 {
	return float64(m) / 100
}

func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
