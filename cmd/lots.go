package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyeon/rebalance"
	"github.com/hyeon/rebalance/renderer"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	ticker string
	method string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list the open tax lots of a holding" }
func (*lotsCmd) Usage() string {
	return `rbc lots -ticker <ticker> [-method <method>]

  Reconstructs the open tax lots of a holding from its transaction history and
  reports cost basis and unrealized gain at the current price.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the holding to analyze")
	f.StringVar(&c.method, "method", rebalance.FIFO.String(), "Lot ordering method (fifo, lifo, hifo)")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := rebalance.ParseLotMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing method: %v\n", err)
		return subcommands.ExitUsageError
	}

	snapshot, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	stock, err := snapshot.Find(c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	engine, err := rebalance.NewTaxEngine(rebalance.NewDecimals())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building tax engine: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LotsMarkdown(engine.AnalyzeLots(*stock, method)))
	return subcommands.ExitSuccess
}
