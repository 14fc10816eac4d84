package rebalance

// SimpleRatioStrategy computes each holding's independent shortfall to its
// normalized target amount, for portfolios entered by value rather than by
// transaction history: a manual amount, when supplied, overrides the derived
// current amount.
//
// Unlike AddStrategy there is no redistribution: each buy amount is
// max(0, target-current) on its own, so the buy total is not constrained to
// equal the cash inflow. The answer is "what each holding is missing", not
// "how to split this cash".
type SimpleRatioStrategy struct {
	stocks     []CalculatedStock
	additional Money
	f          *Factory
}

func (s *SimpleRatioStrategy) Mode() Mode { return ModeSimple }

func (s *SimpleRatioStrategy) Calculate() []RebalanceResult {
	if len(s.stocks) == 0 {
		return nil
	}

	var currentTotal Money
	var totalRatio Percent
	current := make([]Money, len(s.stocks))
	for i, st := range s.stocks {
		current[i] = st.effectiveAmount()
		currentTotal = currentTotal.Add(current[i])
		totalRatio = totalRatio.Add(st.TargetRatio)
	}
	totalInvestment := currentTotal.Add(s.additional)
	if totalInvestment.IsZero() {
		return nil
	}

	var zero Money
	multiplier := ratioMultiplier(totalRatio)
	results := make([]RebalanceResult, 0, len(s.stocks))
	for i, st := range s.stocks {
		targetAmount := totalInvestment.Mul(st.TargetRatio.Mul(multiplier).Ratio())
		buy := s.f.MaxMoney(targetAmount.Sub(current[i]), zero)
		results = append(results, RebalanceResult{
			CalculatedStock: st,
			CurrentRatio:    PercentOf(current[i], currentTotal),
			FinalBuyAmount:  buy,
			BuyRatio:        PercentOf(buy, s.additional),
		})
	}
	return results
}
