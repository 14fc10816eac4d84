package rebalance

import (
	"github.com/hyeon/rebalance/date"
)

// TaxSettings are the rates and holding-period threshold applied to a
// simulated sale. Rates are percentages of the capital gain.
type TaxSettings struct {
	ShortTermRate            Percent `json:"shortTermTaxRate"`
	LongTermRate             Percent `json:"longTermTaxRate"`
	HoldingPeriodForLongTerm int     `json:"holdingPeriodForLongTerm"` // days, inclusive
}

// DefaultTaxSettings returns the documented defaults: 22% short-term, 15%
// long-term, 365-day threshold.
func DefaultTaxSettings() TaxSettings {
	return TaxSettings{
		ShortTermRate:            P(22),
		LongTermRate:             P(15),
		HoldingPeriodForLongTerm: 365,
	}
}

// TaxLotSale is a simulated disposal of part of one lot.
type TaxLotSale struct {
	TransactionID string    `json:"transactionId,omitempty"`
	Quantity      Quantity  `json:"quantity"`
	PurchasePrice Money     `json:"purchasePrice"`
	PurchaseDate  date.Date `json:"purchaseDate"`
	SalePrice     Money     `json:"salePrice"`
	SaleDate      date.Date `json:"saleDate"`
	CapitalGain   Money     `json:"capitalGain"`
	LongTerm      bool      `json:"longTerm"`
	HoldingDays   int       `json:"holdingDays"`
}

// TaxSale aggregates the simulated lot disposals for one selection method.
//
// TotalTax is not clamped at zero: a net loss produces a negative tax, a
// credit, and callers decide how to present it. EffectiveTaxRate is the tax
// over the requested sale proceeds.
type TaxSale struct {
	Ticker           string       `json:"ticker"`
	Method           LotMethod    `json:"method"`
	Sales            []TaxLotSale `json:"sales"`
	TotalCapitalGain Money        `json:"totalCapitalGain"`
	ShortTermGain    Money        `json:"shortTermGain"`
	LongTermGain     Money        `json:"longTermGain"`
	TotalTax         Money        `json:"totalTax"`
	EffectiveTaxRate Percent      `json:"effectiveTaxRate"`
}

// SaleByMethod simulates selling quantityToSell shares at salePrice on the
// given date, choosing lots by the given method.
//
// Each consumed slice realizes (salePrice - lot price) x quantity, classified
// long-term when the holding period reaches the settings threshold
// (inclusive). Selling more than the open lots hold consumes them all; the
// excess is ignored.
func (e *TaxEngine) SaleByMethod(stock Stock, quantityToSell Quantity, salePrice Money, on date.Date, method LotMethod, settings TaxSettings) TaxSale {
	lots := orderLots(buildLots(stock.Transactions), method)

	sale := TaxSale{Ticker: stock.Ticker, Method: method}
	left := quantityToSell
	for _, l := range lots {
		if !left.IsPositive() {
			break
		}
		qty := e.f.MinQuantity(l.RemainingQuantity, left)
		left = left.Sub(qty)

		gain := salePrice.Sub(l.Price).Mul(qty)
		days := l.Date.DaysUntil(on)
		long := days >= settings.HoldingPeriodForLongTerm

		sale.Sales = append(sale.Sales, TaxLotSale{
			TransactionID: l.TransactionID,
			Quantity:      qty,
			PurchasePrice: l.Price,
			PurchaseDate:  l.Date,
			SalePrice:     salePrice,
			SaleDate:      on,
			CapitalGain:   gain,
			LongTerm:      long,
			HoldingDays:   days,
		})
		sale.TotalCapitalGain = sale.TotalCapitalGain.Add(gain)
		if long {
			sale.LongTermGain = sale.LongTermGain.Add(gain)
		} else {
			sale.ShortTermGain = sale.ShortTermGain.Add(gain)
		}
	}

	sale.TotalTax = settings.ShortTermRate.Of(sale.ShortTermGain).
		Add(settings.LongTermRate.Of(sale.LongTermGain))
	sale.EffectiveTaxRate = PercentOf(sale.TotalTax, salePrice.Mul(quantityToSell))
	return sale
}

// OptimizedSale simulates the sale under FIFO, LIFO and HIFO and returns the
// one with the strictly lowest total tax; ties resolve to the evaluation
// order FIFO, LIFO, HIFO.
func (e *TaxEngine) OptimizedSale(stock Stock, quantityToSell Quantity, salePrice Money, on date.Date, settings TaxSettings) TaxSale {
	var best TaxSale
	for i, m := range Methods() {
		s := e.SaleByMethod(stock, quantityToSell, salePrice, on, m, settings)
		if i == 0 || s.TotalTax.LessThan(best.TotalTax) {
			best = s
		}
	}
	return best
}
