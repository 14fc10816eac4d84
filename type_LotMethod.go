package rebalance

import "fmt"

// LotMethod defines which lots are considered sold in a hypothetical disposal.
type LotMethod int

const (
	// FIFO (First-In, First-Out) sells the oldest lots first.
	FIFO LotMethod = iota
	// LIFO (Last-In, First-Out) sells the newest lots first.
	LIFO
	// HIFO (Highest-In, First-Out) sells the most expensive lots first,
	// minimizing the realized gain.
	HIFO
)

// Methods lists every lot selection method, in optimization evaluation order.
func Methods() []LotMethod { return []LotMethod{FIFO, LIFO, HIFO} }

func (m LotMethod) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case HIFO:
		return "hifo"
	default:
		return "unknown"
	}
}

// ParseLotMethod parses a string into a LotMethod.
func ParseLotMethod(s string) (LotMethod, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "hifo":
		return HIFO, nil
	default:
		return 0, fmt.Errorf("unknown lot method: %q", s)
	}
}
