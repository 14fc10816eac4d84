package rebalance

// AddStrategy rebalances existing holdings and a cash inflow together.
//
// Fixed-buy holdings are served first, in input order: when the cash pool
// cannot cover every fixed amount, earlier holdings win. This first-come
// policy is deliberate and order-dependent; reorder the input to change the
// priority. The remaining pool is then spread proportionally over the
// holdings' target-amount deficits, so with any positive total deficit the
// buys sum exactly to the cash inflow.
type AddStrategy struct {
	stocks     []CalculatedStock
	additional Money
	f          *Factory
}

func (s *AddStrategy) Mode() Mode { return ModeAdd }

func (s *AddStrategy) Calculate() []RebalanceResult {
	if len(s.stocks) == 0 {
		return nil
	}

	var currentTotal Money
	var totalRatio Percent
	for _, st := range s.stocks {
		currentTotal = currentTotal.Add(st.CurrentAmount)
		totalRatio = totalRatio.Add(st.TargetRatio)
	}
	totalInvestment := currentTotal.Add(s.additional)
	if totalInvestment.IsZero() {
		return nil
	}

	// Fixed-buy pre-allocation from the shared cash pool, input order first.
	var zero Money
	remaining := s.additional
	fixed := make([]Money, len(s.stocks))
	for i, st := range s.stocks {
		if !st.FixedBuy {
			continue
		}
		a := s.f.MinMoney(st.FixedBuyAmount, remaining)
		a = s.f.MaxMoney(a, zero)
		fixed[i] = a
		remaining = remaining.Sub(a)
	}

	// Deficit to the normalized target amount, after fixed buys.
	multiplier := ratioMultiplier(totalRatio)
	deficits := make([]Money, len(s.stocks))
	var totalDeficit Money
	for i, st := range s.stocks {
		targetAmount := totalInvestment.Mul(st.TargetRatio.Mul(multiplier).Ratio())
		deficit := targetAmount.Sub(st.CurrentAmount.Add(fixed[i]))
		deficits[i] = s.f.MaxMoney(deficit, zero)
		totalDeficit = totalDeficit.Add(deficits[i])
	}

	// Spread the remaining pool proportionally over positive deficits.
	// A zero total deficit leaves the pool unallocated.
	buys := make([]Money, len(s.stocks))
	var buyTotal Money
	for i := range s.stocks {
		buy := fixed[i]
		if totalDeficit.IsPositive() {
			buy = buy.Add(remaining.Mul(deficits[i].DivMoney(totalDeficit)))
		}
		buys[i] = buy
		buyTotal = buyTotal.Add(buy)
	}

	results := make([]RebalanceResult, 0, len(s.stocks))
	for i, st := range s.stocks {
		results = append(results, RebalanceResult{
			CalculatedStock: st,
			CurrentRatio:    PercentOf(st.CurrentAmount, currentTotal),
			FinalBuyAmount:  buys[i],
			BuyRatio:        PercentOf(buys[i], buyTotal),
		})
	}
	return results
}
