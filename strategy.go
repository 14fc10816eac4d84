package rebalance

import "fmt"

// Strategy computes per-holding allocation results for one rebalancing mode.
//
// Calculate is synchronous, pure and total: it never fails, never mutates the
// stocks it was built with, and returns an empty result list for degenerate
// inputs (no holdings, zero totals).
type Strategy interface {
	Mode() Mode
	Calculate() []RebalanceResult
}

// NewStrategy builds the strategy for the given mode over a portfolio
// snapshot. The additional investment is ignored by ModeSell.
//
// The decimal service is loaded here, so the only possible error is one
// wrapping ErrLibraryUnavailable; Calculate itself cannot fail.
func NewStrategy(mode Mode, stocks []CalculatedStock, additional Money, dec *Decimals) (Strategy, error) {
	f, err := dec.Get()
	if err != nil {
		return nil, err
	}
	switch mode {
	case ModeAdd:
		return &AddStrategy{stocks: stocks, additional: additional, f: f}, nil
	case ModeSimple:
		return &SimpleRatioStrategy{stocks: stocks, additional: additional, f: f}, nil
	case ModeSell:
		return &SellStrategy{stocks: stocks, f: f}, nil
	default:
		return nil, fmt.Errorf("unknown rebalance mode: %d", mode)
	}
}

// ratioMultiplier returns 100/totalRatio, the factor normalizing target
// ratios so they behave as if they summed to 100. Zero when totalRatio is
// zero; the engine never enforces that ratios sum to 100, callers warn.
func ratioMultiplier(totalRatio Percent) Quantity {
	return P(100).Div(totalRatio)
}
