package renderer

import (
	"fmt"
	"strings"

	"github.com/hyeon/rebalance"
)

// SaleMarkdown renders a simulated sale to a markdown string.
func SaleMarkdown(s rebalance.TaxSale) string {
	var b strings.Builder
	section(&b, "Sale Simulation: %s (%s)", s.Ticker, s.Method)

	if len(s.Sales) == 0 {
		fmt.Fprintln(&b, "No open lots to sell.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Purchased | Quantity | Unit Cost | Sale Price | Gain | Term |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---|")
	for _, l := range s.Sales {
		term := "short"
		if l.LongTerm {
			term = "long"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s (%dd) |\n",
			l.PurchaseDate,
			l.Quantity,
			l.PurchasePrice.String(),
			l.SalePrice.String(),
			l.CapitalGain.SignedString(),
			term,
			l.HoldingDays,
		)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Capital gain: %s (short %s, long %s)\n",
		s.TotalCapitalGain.SignedString(), s.ShortTermGain.SignedString(), s.LongTermGain.SignedString())
	fmt.Fprintf(&b, "- Tax: %s\n", s.TotalTax.SignedString())
	fmt.Fprintf(&b, "- Effective tax rate: %s\n", s.EffectiveTaxRate.String())

	return b.String()
}
