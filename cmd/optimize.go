package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyeon/rebalance"
	"github.com/hyeon/rebalance/date"
	"github.com/hyeon/rebalance/renderer"
)

// optimizeCmd holds the flags for the 'optimize' subcommand.
type optimizeCmd struct {
	ticker string
	qty    float64
	price  float64
	on     string
}

func (*optimizeCmd) Name() string     { return "optimize" }
func (*optimizeCmd) Synopsis() string { return "simulate a sale under the lowest-tax lot method" }
func (*optimizeCmd) Usage() string {
	return `rbc optimize -ticker <ticker> -qty <quantity> [-price <price>] [-on <date>]

  Simulates the sale under every lot method and keeps the one with the lowest
  total tax.
`
}

func (c *optimizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the holding to sell")
	f.Float64Var(&c.qty, "qty", 0, "Quantity to sell")
	f.Float64Var(&c.price, "price", 0, "Sale price per share (default the snapshot's current price)")
	f.StringVar(&c.on, "on", date.Today().String(), "Sale date in YYYY-MM-DD format")
}

func (c *optimizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
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

	price := stock.Price
	if c.price != 0 {
		price = rebalance.M(c.price, snapshot.Currency)
	}

	engine, err := rebalance.NewTaxEngine(rebalance.NewDecimals())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building tax engine: %v\n", err)
		return subcommands.ExitFailure
	}

	sale := engine.OptimizedSale(*stock, rebalance.Q(c.qty), price, on, snapshot.TaxSettings())
	printMarkdown(renderer.SaleMarkdown(sale))
	return subcommands.ExitSuccess
}
