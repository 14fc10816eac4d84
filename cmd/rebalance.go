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

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	mode   string
	amount float64
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "compute per-holding buy/sell amounts" }
func (*rebalanceCmd) Usage() string {
	return `rbc rebalance [-mode <mode>] [-amount <amount>]

  Computes the rebalancing plan for the snapshot. Mode "add" spreads new cash
  over target deficits, "simple" reports each holding's independent shortfall,
  "sell" redistributes existing value with no new cash.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", rebalance.ModeAdd.String(), "Rebalance mode (add, simple, sell)")
	f.Float64Var(&c.amount, "amount", 0, "Additional investment amount, in the snapshot currency")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := rebalance.ParseMode(c.mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mode: %v\n", err)
		return subcommands.ExitUsageError
	}

	snapshot, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	stocks := rebalance.CalculatedStocks(snapshot.Stocks)
	warnRatioTotal(stocks)

	additional := rebalance.M(c.amount, snapshot.Currency)
	strategy, err := rebalance.NewStrategy(mode, stocks, additional, rebalance.NewDecimals())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building strategy: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RebalanceMarkdown(strategy.Calculate(), mode, additional))
	return subcommands.ExitSuccess
}
