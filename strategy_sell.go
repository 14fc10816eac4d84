package rebalance

// SellStrategy redistributes the existing portfolio value with no new cash.
//
// Each holding gets a signed adjustment: positive means the holding is above
// its normalized target and should be reduced, negative means it should be
// increased. Adjustments conserve value, so they sum to zero.
type SellStrategy struct {
	stocks []CalculatedStock
	f      *Factory
}

func (s *SellStrategy) Mode() Mode { return ModeSell }

func (s *SellStrategy) Calculate() []RebalanceResult {
	if len(s.stocks) == 0 {
		return nil
	}

	var currentTotal Money
	var totalRatio Percent
	for _, st := range s.stocks {
		currentTotal = currentTotal.Add(st.CurrentAmount)
		totalRatio = totalRatio.Add(st.TargetRatio)
	}
	if currentTotal.IsZero() || totalRatio.IsZero() {
		return nil
	}

	multiplier := ratioMultiplier(totalRatio)
	results := make([]RebalanceResult, 0, len(s.stocks))
	for _, st := range s.stocks {
		targetAmount := currentTotal.Mul(st.TargetRatio.Mul(multiplier).Ratio())
		results = append(results, RebalanceResult{
			CalculatedStock: st,
			CurrentRatio:    PercentOf(st.CurrentAmount, currentTotal),
			Adjustment:      st.CurrentAmount.Sub(targetAmount),
		})
	}
	return results
}
