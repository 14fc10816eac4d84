package rebalance

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Percent is an exact percentage value (50 means 50%).
//
// Unlike display-only percentages, these feed chained multiply/divide
// operations (ratio normalization, tax rates), so they are decimal-backed.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }
func (p Percent) IsPositive() bool     { return p.value.IsPositive() }
func (p Percent) IsNegative() bool     { return p.value.IsNegative() }
func (p Percent) Add(q Percent) Percent { return Percent{value: p.value.Add(q.value)} }
func (p Percent) Sub(q Percent) Percent { return Percent{value: p.value.Sub(q.value)} }

// Mul scales the percentage by a dimensionless factor.
func (p Percent) Mul(f Quantity) Percent { return Percent{value: p.value.Mul(f.value)} }

// Div returns the dimensionless ratio p/q, or zero when q is zero.
func (p Percent) Div(q Percent) Quantity {
	if q.value.IsZero() {
		return Quantity{}
	}
	return Quantity{value: p.value.Div(q.value)}
}

// Ratio returns the percentage as a fraction (50% -> 0.5).
func (p Percent) Ratio() Quantity { return Quantity{value: p.value.Div(oneHundred)} }

// Of applies the percentage to an amount (15% of ¤200 is ¤30).
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Div(oneHundred), cur: m.cur}
}

// PercentOf returns part/whole as a percentage, or zero when whole is zero.
func PercentOf(part, whole Money) Percent {
	if whole.value.IsZero() {
		return Percent{}
	}
	return Percent{value: part.value.Mul(oneHundred).Div(whole.value)}
}

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

// SignedString returns the percentage with an explicit sign, or "-" for zero.
func (p Percent) SignedString() string {
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
func (p *Percent) UnmarshalJSON(b []byte) error {
	return p.value.UnmarshalJSON(b)
}

var _ json.Marshaler = (*Percent)(nil)
var _ json.Unmarshaler = (*Percent)(nil)
