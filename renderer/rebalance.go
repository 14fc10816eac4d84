package renderer

import (
	"fmt"
	"strings"

	"github.com/hyeon/rebalance"
)

// RebalanceMarkdown renders a strategy run to a markdown string.
func RebalanceMarkdown(results []rebalance.RebalanceResult, mode rebalance.Mode, additional rebalance.Money) string {
	var b strings.Builder
	section(&b, "Rebalance Plan (%s)", mode)

	if len(results) == 0 {
		fmt.Fprintln(&b, "Nothing to allocate: the portfolio is empty or has no value.")
		return b.String()
	}

	if mode == rebalance.ModeSell {
		return sellMarkdown(&b, results)
	}

	fmt.Fprintf(&b, "Additional investment: %s\n\n", additional.String())
	fmt.Fprintln(&b, "| Ticker | Current | Current % | Target % | Buy | Buy % |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")

	var total rebalance.Money
	for _, r := range results {
		total = total.Add(r.FinalBuyAmount)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			r.Ticker,
			r.CurrentAmount.String(),
			r.CurrentRatio.String(),
			r.TargetRatio.String(),
			r.FinalBuyAmount.String(),
			r.BuyRatio.String(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** | |\n", total.String())

	return b.String()
}

func sellMarkdown(b *strings.Builder, results []rebalance.RebalanceResult) string {
	fmt.Fprintln(b, "| Ticker | Current | Current % | Target % | Adjustment |")
	fmt.Fprintln(b, "|:---|---:|---:|---:|---:|")

	for _, r := range results {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
			r.Ticker,
			r.CurrentAmount.String(),
			r.CurrentRatio.String(),
			r.TargetRatio.String(),
			r.Adjustment.SignedString(),
		)
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b, "Positive adjustments reduce the holding, negative ones increase it.")

	return b.String()
}
