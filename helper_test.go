package rebalance

import (
	"testing"

	"github.com/hyeon/rebalance/date"
)

// USD is a helper for tests to create dollar money from a const.
func USD(v float64) Money { return M(v, "USD") }

// holding is a helper building a CalculatedStock directly from a target ratio
// and a current amount, bypassing transaction history.
func holding(ticker string, ratio float64, amount float64) CalculatedStock {
	return CalculatedStock{
		Stock:         Stock{Ticker: ticker, TargetRatio: P(ratio)},
		CurrentAmount: USD(amount),
	}
}

// calculate builds the strategy for mode and runs it.
func calculate(t *testing.T, mode Mode, stocks []CalculatedStock, additional Money) []RebalanceResult {
	t.Helper()
	s, err := NewStrategy(mode, stocks, additional, NewDecimals())
	if err != nil {
		t.Fatalf("NewStrategy(%s) error = %v", mode, err)
	}
	return s.Calculate()
}

// approx reports whether two amounts differ by less than 1e-9.
func approx(a, b Money) bool {
	d := a.Sub(b)
	if d.IsNegative() {
		d = d.Neg()
	}
	return d.LessThan(M(1e-9, a.Currency()))
}

// approxPercent reports whether two percentages differ by less than 1e-9.
func approxPercent(a, b Percent) bool {
	d := a.Sub(b)
	if d.IsNegative() {
		d = Percent{}.Sub(d)
	}
	return d.Sub(P(1e-9)).IsNegative()
}

// tx is a helper building a transaction from literals.
func tx(id string, typ TxType, day string, qty, price float64) Transaction {
	return Transaction{
		ID:       id,
		Type:     typ,
		Date:     date.MustParse(day),
		Quantity: Q(qty),
		Price:    USD(price),
	}
}

// taxEngine builds a TaxEngine over a fresh decimal service.
func taxEngine(t *testing.T) *TaxEngine {
	t.Helper()
	e, err := NewTaxEngine(NewDecimals())
	if err != nil {
		t.Fatalf("NewTaxEngine() error = %v", err)
	}
	return e
}
