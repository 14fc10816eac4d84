package rebalance

import (
	"fmt"

	"github.com/hyeon/rebalance/date"
)

// TxType is the type of a recorded transaction.
type TxType int

const (
	// Buy adds shares to the holding, opening a new tax lot.
	Buy TxType = iota
	// Sell removes shares from the holding, depleting existing lots.
	Sell
)

func (t TxType) String() string {
	switch t {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

// MarshalJSON encodes the type as its string name.
func (t TxType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TxType) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := ParseTxType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Transaction is a single recorded trade. Transactions are immutable once
// recorded; lot construction orders them by date ascending, stable on ties.
type Transaction struct {
	ID       string    `json:"id,omitempty"`
	Type     TxType    `json:"type"`
	Date     date.Date `json:"date"`
	Quantity Quantity  `json:"quantity"`
	Price    Money     `json:"price"`
}

// Stock is one holding of the portfolio as supplied by the caller.
//
// TargetRatio, FixedBuyAmount and ManualAmount are optional in snapshots and
// default to zero (or absent for ManualAmount); the engines tolerate partially
// configured holdings rather than erroring.
type Stock struct {
	ID             string        `json:"id,omitempty"`
	Name           string        `json:"name,omitempty"`
	Ticker         string        `json:"ticker"`
	TargetRatio    Percent       `json:"targetRatio"`
	Price          Money         `json:"price"`
	Transactions   []Transaction `json:"transactions,omitempty"`
	FixedBuy       bool          `json:"fixedBuy,omitempty"`
	FixedBuyAmount Money         `json:"fixedBuyAmount"`
	ManualAmount   *Money        `json:"manualAmount,omitempty"`
}

// NetQuantity returns the held share count: total bought minus total sold.
func (s Stock) NetQuantity() Quantity {
	var q Quantity
	for _, tx := range s.Transactions {
		switch tx.Type {
		case Buy:
			q = q.Add(tx.Quantity)
		case Sell:
			q = q.Sub(tx.Quantity)
		}
	}
	return q
}

// CalculatedStock is a Stock with its derived current market value, the
// uniform input to the rebalance strategies.
type CalculatedStock struct {
	Stock
	CurrentAmount Money `json:"currentAmount"`
}

// Calculated derives the current amount (price times held quantity) of a stock.
func Calculated(s Stock) CalculatedStock {
	return CalculatedStock{Stock: s, CurrentAmount: s.Price.Mul(s.NetQuantity())}
}

// CalculatedStocks derives the current amount of every stock, in order.
func CalculatedStocks(stocks []Stock) []CalculatedStock {
	cs := make([]CalculatedStock, 0, len(stocks))
	for _, s := range stocks {
		cs = append(cs, Calculated(s))
	}
	return cs
}

// effectiveAmount is the manual override when present, else the derived
// current amount.
func (c CalculatedStock) effectiveAmount() Money {
	if c.ManualAmount != nil {
		return *c.ManualAmount
	}
	return c.CurrentAmount
}

// RebalanceResult decorates a CalculatedStock with the outcome of a strategy.
//
// FinalBuyAmount and BuyRatio are produced by the add and simple strategies;
// Adjustment is produced by the sell strategy (positive means reduce the
// holding). The inputs are never mutated: results are fresh values.
type RebalanceResult struct {
	CalculatedStock
	CurrentRatio   Percent `json:"currentRatio"`
	FinalBuyAmount Money   `json:"finalBuyAmount"`
	Adjustment     Money   `json:"adjustment"`
	BuyRatio       Percent `json:"buyRatio"`
}
