package rebalance

import (
	"encoding/json"
	"fmt"
	"io"
)

// Snapshot is the in-memory portfolio state supplied by the caller: the
// holdings, the snapshot currency, and optional tax settings. It is the only
// external data format of this package; everything else is in-process calls.
type Snapshot struct {
	Currency string       `json:"currency,omitempty"`
	Stocks   []Stock      `json:"stocks"`
	Tax      *TaxSettings `json:"tax,omitempty"`
}

// DecodeSnapshot reads a snapshot from its JSON form.
// Money amounts written as bare numbers adopt the snapshot currency.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	s.normalize()
	return &s, nil
}

// DecodeSnapshotValue builds a snapshot from an already unmarshalled JSON
// value (as produced by encoding/json into any). Callers that extract the
// snapshot object from a larger document use this entry point.
func DecodeSnapshotValue(v any) (*Snapshot, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cannot re-encode snapshot value: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	s.normalize()
	return &s, nil
}

// EncodeSnapshot writes the snapshot in its canonical indented JSON form.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// normalize stamps the snapshot currency on every amount decoded without one.
func (s *Snapshot) normalize() {
	for i := range s.Stocks {
		st := &s.Stocks[i]
		st.Price = st.Price.withCurrency(s.Currency)
		st.FixedBuyAmount = st.FixedBuyAmount.withCurrency(s.Currency)
		if st.ManualAmount != nil {
			m := st.ManualAmount.withCurrency(s.Currency)
			st.ManualAmount = &m
		}
		for j := range st.Transactions {
			st.Transactions[j].Price = st.Transactions[j].Price.withCurrency(s.Currency)
		}
	}
}

// TaxSettings returns the snapshot's tax settings, or the documented defaults
// when the snapshot carries none.
func (s *Snapshot) TaxSettings() TaxSettings {
	if s.Tax == nil {
		return DefaultTaxSettings()
	}
	return *s.Tax
}

// Find returns the stock with the given ticker.
func (s *Snapshot) Find(ticker string) (*Stock, error) {
	for i := range s.Stocks {
		if s.Stocks[i].Ticker == ticker {
			return &s.Stocks[i], nil
		}
	}
	return nil, fmt.Errorf("ticker %q not found in snapshot", ticker)
}
