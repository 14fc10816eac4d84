package rebalance

import "fmt"

// Mode selects a rebalancing strategy.
type Mode int

const (
	// ModeAdd rebalances existing holdings and new cash together, spreading
	// the cash over target-amount deficits.
	ModeAdd Mode = iota
	// ModeSimple computes each holding's independent shortfall to target,
	// using manual amounts where supplied; buys are not constrained to the
	// cash inflow.
	ModeSimple
	// ModeSell redistributes existing value with no new cash, producing
	// signed adjustments that sum to zero.
	ModeSell
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeSimple:
		return "simple"
	case ModeSell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "add":
		return ModeAdd, nil
	case "simple":
		return ModeSimple, nil
	case "sell":
		return ModeSell, nil
	default:
		return 0, fmt.Errorf("unknown rebalance mode: %q", s)
	}
}
