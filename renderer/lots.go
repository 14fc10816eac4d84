package renderer

import (
	"fmt"
	"strings"

	"github.com/hyeon/rebalance"
)

// LotsMarkdown renders an open-lot analysis to a markdown string.
func LotsMarkdown(a rebalance.TaxLotAnalysis) string {
	var b strings.Builder
	section(&b, "Tax Lots: %s", a.Ticker)
	fmt.Fprintf(&b, "Ordered by: %s\n\n", a.Method)

	if len(a.Lots) == 0 {
		fmt.Fprintln(&b, "No open lots.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Purchased | Quantity | Remaining | Unit Price | Cost |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, l := range a.Lots {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			l.Date,
			l.OriginalQuantity,
			l.RemainingQuantity,
			l.Price.String(),
			l.Cost().String(),
		)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Total quantity: %s\n", a.TotalQuantity)
	fmt.Fprintf(&b, "- Average cost basis: %s\n", a.AverageCostBasis.String())
	fmt.Fprintf(&b, "- Market value: %s\n", a.MarketValue.String())
	fmt.Fprintf(&b, "- Unrealized gain: %s (%s)\n", a.UnrealizedGain.SignedString(), a.UnrealizedGainPercent.SignedString())

	return b.String()
}
