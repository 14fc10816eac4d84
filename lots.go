package rebalance

import (
	"slices"

	"github.com/hyeon/rebalance/date"
)

// TaxLot is a discrete purchase batch of a holding, tracked with its own cost
// basis and purchase date. RemainingQuantity only decreases, consumed by the
// sells that follow the purchase in the history; it never exceeds
// OriginalQuantity and never goes negative.
type TaxLot struct {
	TransactionID     string    `json:"transactionId,omitempty"`
	Date              date.Date `json:"date"`
	OriginalQuantity  Quantity  `json:"originalQuantity"`
	RemainingQuantity Quantity  `json:"remainingQuantity"`
	Price             Money     `json:"price"` // unit purchase price
}

// Cost returns the cost basis of the remaining shares of the lot.
func (l TaxLot) Cost() Money { return l.Price.Mul(l.RemainingQuantity) }

// buildLots replays a transaction history into the open tax lots.
//
// Transactions are ordered by date ascending (stable on ties). Buys open a
// new lot; sells deplete lots oldest-first. This chronological depletion
// models the sales that already happened, so it is independent of whichever
// selection method a later hypothetical sale uses. A sell larger than the
// held quantity depletes what exists and ignores the excess.
//
// Lots are ephemeral: every analysis call rebuilds them from the history.
func buildLots(transactions []Transaction) []TaxLot {
	txs := slices.Clone(transactions)
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})

	var lots []TaxLot
	for _, tx := range txs {
		switch tx.Type {
		case Buy:
			lots = append(lots, TaxLot{
				TransactionID:     tx.ID,
				Date:              tx.Date,
				OriginalQuantity:  tx.Quantity,
				RemainingQuantity: tx.Quantity,
				Price:             tx.Price,
			})
		case Sell:
			toSell := tx.Quantity
			for i := range lots {
				if !toSell.IsPositive() {
					break
				}
				consumed := lots[i].RemainingQuantity
				if consumed.GreaterThan(toSell) {
					consumed = toSell
				}
				lots[i].RemainingQuantity = lots[i].RemainingQuantity.Sub(consumed)
				toSell = toSell.Sub(consumed)
			}
		}
	}

	var open []TaxLot
	for _, l := range lots {
		if l.RemainingQuantity.IsPositive() {
			open = append(open, l)
		}
	}
	return open
}

// orderLots returns a copy of the lots ordered for a hypothetical sale:
// FIFO by date ascending, LIFO by date descending, HIFO by unit price
// descending. Sorts are stable over the chronological construction order.
func orderLots(lots []TaxLot, method LotMethod) []TaxLot {
	ordered := slices.Clone(lots)
	switch method {
	case FIFO:
		// construction order is already date ascending
	case LIFO:
		slices.SortStableFunc(ordered, func(a, b TaxLot) int {
			switch {
			case a.Date.After(b.Date):
				return -1
			case a.Date.Before(b.Date):
				return 1
			default:
				return 0
			}
		})
	case HIFO:
		slices.SortStableFunc(ordered, func(a, b TaxLot) int {
			switch {
			case a.Price.GreaterThan(b.Price):
				return -1
			case a.Price.LessThan(b.Price):
				return 1
			default:
				return 0
			}
		})
	}
	return ordered
}

// TaxEngine performs tax-lot analysis and sale simulation over a stock's
// transaction history. Construct it with NewTaxEngine; all methods are pure
// and safe for concurrent use.
type TaxEngine struct {
	f *Factory
}

// NewTaxEngine returns a tax engine using the given decimal service.
// The only possible error wraps ErrLibraryUnavailable.
func NewTaxEngine(dec *Decimals) (*TaxEngine, error) {
	f, err := dec.Get()
	if err != nil {
		return nil, err
	}
	return &TaxEngine{f: f}, nil
}

// TaxLotAnalysis is the open-lot view of a holding.
type TaxLotAnalysis struct {
	Ticker                string    `json:"ticker"`
	Method                LotMethod `json:"-"`
	Lots                  []TaxLot  `json:"lots"`
	TotalQuantity         Quantity  `json:"totalQuantity"`
	TotalCostBasis        Money     `json:"totalCostBasis"`
	AverageCostBasis      Money     `json:"averageCostBasis"`
	MarketValue           Money     `json:"marketValue"`
	UnrealizedGain        Money     `json:"unrealizedGain"`
	UnrealizedGainPercent Percent   `json:"unrealizedGainPercent"`
}

// AnalyzeLots rebuilds the stock's open lots and summarizes them. The lots
// are ordered by the requested method; the depletion that produced them is
// always chronological.
func (e *TaxEngine) AnalyzeLots(stock Stock, method LotMethod) TaxLotAnalysis {
	lots := orderLots(buildLots(stock.Transactions), method)

	var totalQty Quantity
	var totalCost Money
	for _, l := range lots {
		totalQty = totalQty.Add(l.RemainingQuantity)
		totalCost = totalCost.Add(l.Cost())
	}
	marketValue := stock.Price.Mul(totalQty)
	unrealized := marketValue.Sub(totalCost)

	return TaxLotAnalysis{
		Ticker:                stock.Ticker,
		Method:                method,
		Lots:                  lots,
		TotalQuantity:         totalQty,
		TotalCostBasis:        totalCost,
		AverageCostBasis:      totalCost.Div(totalQty),
		MarketValue:           marketValue,
		UnrealizedGain:        unrealized,
		UnrealizedGainPercent: PercentOf(unrealized, totalCost),
	}
}
