package domain

import (
	"strconv"
	"strings"
)

// Money is a fixed-point currency amount in poysha (hundredths of a
// taka). Arithmetic on Money stays exact; floats never enter pricing.
type Money int64

// TaxRatePercent is the flat sales tax applied to order subtotals.
const TaxRatePercent = 8

// FromTaka converts a whole-taka amount to Money.
func FromTaka(units int64) Money {
	return Money(units * 100)
}

// Mul scales the amount by an item quantity.
func (m Money) Mul(qty int64) Money {
	return m * Money(qty)
}

// Tax returns the flat sales tax on m, rounded half up to the poysha.
func (m Money) Tax() Money {
	return Money((int64(m)*TaxRatePercent + 50) / 100)
}

// String renders the amount with the ৳ glyph, comma-separated
// thousands and poysha only when non-zero, e.g. ৳1,250 or ৳9.50.
func (m Money) String() string {
	v := int64(m)
	neg := v < 0
	if neg {
		v = -v
	}

	taka := strconv.FormatInt(v/100, 10)
	poysha := v % 100

	var b strings.Builder
	b.Grow(len(taka) + len(taka)/3 + 8)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("৳")

	rem := len(taka) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(taka[:rem])
	for i := rem; i < len(taka); i += 3 {
		b.WriteByte(',')
		b.WriteString(taka[i : i+3])
	}

	if poysha != 0 {
		b.WriteByte('.')
		if poysha < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatInt(poysha, 10))
	}
	return b.String()
}
