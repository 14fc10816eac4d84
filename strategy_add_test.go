package rebalance

import "testing"

func TestAddStrategy_AllocatesDeficitOnly(t *testing.T) {
	stocks := []CalculatedStock{
		holding("A", 50, 1_000_000),
		holding("B", 50, 3_000_000),
	}
	results := calculate(t, ModeAdd, stocks, USD(2_000_000))

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// total investment 6,000,000, target 3,000,000 each: only A is in deficit.
	if !approx(results[0].FinalBuyAmount, USD(2_000_000)) {
		t.Errorf("A buy = %s, want $2,000,000.00", results[0].FinalBuyAmount)
	}
	if !approx(results[1].FinalBuyAmount, USD(0)) {
		t.Errorf("B buy = %s, want 0", results[1].FinalBuyAmount)
	}
	if !approxPercent(results[0].BuyRatio, P(100)) {
		t.Errorf("A buy ratio = %s, want 100%%", results[0].BuyRatio)
	}
	if !approxPercent(results[1].BuyRatio, P(0)) {
		t.Errorf("B buy ratio = %s, want 0%%", results[1].BuyRatio)
	}
	if !approxPercent(results[0].CurrentRatio, P(25)) {
		t.Errorf("A current ratio = %s, want 25%%", results[0].CurrentRatio)
	}
}

// With no fixed buys and a positive total deficit, the buys consume the cash
// inflow exactly.
func TestAddStrategy_BuysSumToInflow(t *testing.T) {
	stocks := []CalculatedStock{
		holding("A", 40, 100_000),
		holding("B", 35, 250_000),
		holding("C", 25, 50_000),
	}
	additional := USD(300_000)
	results := calculate(t, ModeAdd, stocks, additional)

	var sum Money
	for _, r := range results {
		sum = sum.Add(r.FinalBuyAmount)
	}
	if !approx(sum, additional) {
		t.Errorf("buys sum to %s, want %s", sum, additional)
	}
}

func TestAddStrategy_FixedBuyFirstComePriority(t *testing.T) {
	first := holding("A", 50, 0)
	first.FixedBuy = true
	first.FixedBuyAmount = USD(80)
	second := holding("B", 50, 0)
	second.FixedBuy = true
	second.FixedBuyAmount = USD(80)

	// The pool covers only one and a quarter of the fixed amounts: the stock
	// earlier in the input gets its full amount, the later one the remainder.
	results := calculate(t, ModeAdd, []CalculatedStock{first, second}, USD(100))

	if !approx(results[0].FinalBuyAmount, USD(80)) {
		t.Errorf("A buy = %s, want $80.00", results[0].FinalBuyAmount)
	}
	if !approx(results[1].FinalBuyAmount, USD(20)) {
		t.Errorf("B buy = %s, want $20.00", results[1].FinalBuyAmount)
	}

	// Reordering the input flips the priority.
	results = calculate(t, ModeAdd, []CalculatedStock{second, first}, USD(100))
	if !approx(results[0].FinalBuyAmount, USD(80)) {
		t.Errorf("B buy = %s, want $80.00", results[0].FinalBuyAmount)
	}
	if !approx(results[1].FinalBuyAmount, USD(20)) {
		t.Errorf("A buy = %s, want $20.00", results[1].FinalBuyAmount)
	}
}

func TestAddStrategy_FixedBuyKeepsRemainingPoolForDeficits(t *testing.T) {
	fixed := holding("A", 0, 0)
	fixed.FixedBuy = true
	fixed.FixedBuyAmount = USD(100)
	needy := holding("B", 100, 0)

	results := calculate(t, ModeAdd, []CalculatedStock{fixed, needy}, USD(1_000))

	if !approx(results[0].FinalBuyAmount, USD(100)) {
		t.Errorf("A buy = %s, want $100.00", results[0].FinalBuyAmount)
	}
	if !approx(results[1].FinalBuyAmount, USD(900)) {
		t.Errorf("B buy = %s, want $900.00", results[1].FinalBuyAmount)
	}
}

func TestAddStrategy_Degenerate(t *testing.T) {
	if results := calculate(t, ModeAdd, nil, USD(1_000)); len(results) != 0 {
		t.Errorf("empty portfolio: got %d results, want 0", len(results))
	}
	stocks := []CalculatedStock{holding("A", 50, 0)}
	if results := calculate(t, ModeAdd, stocks, USD(0)); len(results) != 0 {
		t.Errorf("zero totals: got %d results, want 0", len(results))
	}
}

// A zero ratio total gives zero targets: nothing is in deficit, so the pool
// beyond fixed buys stays unallocated.
func TestAddStrategy_ZeroRatioTotal(t *testing.T) {
	stocks := []CalculatedStock{
		holding("A", 0, 1_000),
		holding("B", 0, 1_000),
	}
	results := calculate(t, ModeAdd, stocks, USD(500))
	for _, r := range results {
		if !r.FinalBuyAmount.IsZero() {
			t.Errorf("%s buy = %s, want 0", r.Ticker, r.FinalBuyAmount)
		}
	}
}
