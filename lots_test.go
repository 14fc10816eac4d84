package rebalance

import "testing"

func TestBuildLots_RoundTrip(t *testing.T) {
	stock := Stock{
		Ticker: "A",
		Price:  USD(120),
		Transactions: []Transaction{
			tx("t1", Buy, "2025-01-01", 10, 100),
			tx("t2", Sell, "2025-01-02", 4, 110),
		},
	}
	a := taxEngine(t).AnalyzeLots(stock, FIFO)

	if len(a.Lots) != 1 {
		t.Fatalf("got %d lots, want 1", len(a.Lots))
	}
	if !a.Lots[0].RemainingQuantity.Equal(Q(6)) {
		t.Errorf("remaining quantity = %s, want 6", a.Lots[0].RemainingQuantity)
	}
	if !a.AverageCostBasis.Equal(USD(100)) {
		t.Errorf("average cost basis = %s, want $100.00", a.AverageCostBasis)
	}
	if !a.TotalQuantity.Equal(Q(6)) {
		t.Errorf("total quantity = %s, want 6", a.TotalQuantity)
	}
}

// Historic sells always deplete oldest-first, whatever method a later
// hypothetical sale will use.
func TestBuildLots_DepletesChronologically(t *testing.T) {
	transactions := []Transaction{
		tx("cheap", Buy, "2025-01-01", 10, 50),
		tx("dear", Buy, "2025-02-01", 10, 90),
		tx("s", Sell, "2025-03-01", 10, 100),
	}
	for _, method := range Methods() {
		a := taxEngine(t).AnalyzeLots(Stock{Ticker: "A", Price: USD(100), Transactions: transactions}, method)
		if len(a.Lots) != 1 {
			t.Fatalf("%s: got %d lots, want 1", method, len(a.Lots))
		}
		if a.Lots[0].TransactionID != "dear" {
			t.Errorf("%s: surviving lot is %q, want the newer buy", method, a.Lots[0].TransactionID)
		}
	}
}

func TestBuildLots_PartialDepletionSpansLots(t *testing.T) {
	stock := Stock{
		Ticker: "A",
		Price:  USD(100),
		Transactions: []Transaction{
			tx("t1", Buy, "2025-01-01", 5, 50),
			tx("t2", Buy, "2025-01-10", 5, 80),
			tx("t3", Sell, "2025-01-20", 7, 90),
		},
	}
	a := taxEngine(t).AnalyzeLots(stock, FIFO)

	if len(a.Lots) != 1 {
		t.Fatalf("got %d lots, want 1", len(a.Lots))
	}
	if a.Lots[0].TransactionID != "t2" || !a.Lots[0].RemainingQuantity.Equal(Q(3)) {
		t.Errorf("surviving lot = %s x %s, want t2 x 3",
			a.Lots[0].TransactionID, a.Lots[0].RemainingQuantity)
	}
}

// A sell beyond the held quantity depletes what exists; the excess is
// tolerated, not an error.
func TestBuildLots_Oversell(t *testing.T) {
	stock := Stock{
		Ticker: "A",
		Price:  USD(100),
		Transactions: []Transaction{
			tx("t1", Buy, "2025-01-01", 10, 50),
			tx("t2", Sell, "2025-02-01", 25, 60),
		},
	}
	a := taxEngine(t).AnalyzeLots(stock, FIFO)

	if len(a.Lots) != 0 {
		t.Fatalf("got %d lots, want 0", len(a.Lots))
	}
	if !a.AverageCostBasis.IsZero() {
		t.Errorf("average cost basis = %s, want 0 for an empty holding", a.AverageCostBasis)
	}
	if !a.UnrealizedGainPercent.IsZero() {
		t.Errorf("unrealized gain percent = %s, want 0 for an empty holding", a.UnrealizedGainPercent)
	}
}

// Transactions are sorted by date ascending, stable on ties: two buys on the
// same day keep their recorded order.
func TestBuildLots_StableOnSameDay(t *testing.T) {
	stock := Stock{
		Ticker: "A",
		Price:  USD(100),
		Transactions: []Transaction{
			tx("first", Buy, "2025-01-01", 5, 50),
			tx("second", Buy, "2025-01-01", 5, 80),
			tx("s", Sell, "2025-01-02", 5, 90),
		},
	}
	a := taxEngine(t).AnalyzeLots(stock, FIFO)

	if len(a.Lots) != 1 {
		t.Fatalf("got %d lots, want 1", len(a.Lots))
	}
	if a.Lots[0].TransactionID != "second" {
		t.Errorf("surviving lot is %q, want %q", a.Lots[0].TransactionID, "second")
	}
}

func TestAnalyzeLots_UnrealizedGain(t *testing.T) {
	stock := Stock{
		Ticker: "A",
		Price:  USD(120),
		Transactions: []Transaction{
			tx("t1", Buy, "2025-01-01", 10, 100),
		},
	}
	a := taxEngine(t).AnalyzeLots(stock, FIFO)

	if !a.MarketValue.Equal(USD(1_200)) {
		t.Errorf("market value = %s, want $1,200.00", a.MarketValue)
	}
	if !a.UnrealizedGain.Equal(USD(200)) {
		t.Errorf("unrealized gain = %s, want $200.00", a.UnrealizedGain)
	}
	if !approxPercent(a.UnrealizedGainPercent, P(20)) {
		t.Errorf("unrealized gain percent = %s, want 20%%", a.UnrealizedGainPercent)
	}
}

func TestAnalyzeLots_MethodOrdersLots(t *testing.T) {
	transactions := []Transaction{
		tx("old-cheap", Buy, "2025-01-01", 1, 50),
		tx("new-dear", Buy, "2025-02-01", 1, 90),
	}
	stock := Stock{Ticker: "A", Price: USD(100), Transactions: transactions}
	e := taxEngine(t)

	tests := []struct {
		method LotMethod
		first  string
	}{
		{FIFO, "old-cheap"},
		{LIFO, "new-dear"},
		{HIFO, "new-dear"},
	}
	for _, tt := range tests {
		a := e.AnalyzeLots(stock, tt.method)
		if a.Lots[0].TransactionID != tt.first {
			t.Errorf("%s: first lot is %q, want %q", tt.method, a.Lots[0].TransactionID, tt.first)
		}
	}
}
