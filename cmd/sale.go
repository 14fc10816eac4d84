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

// saleCmd holds the flags for the 'sale' subcommand.
type saleCmd struct {
	ticker string
	qty    float64
	price  float64
	method string
	on     string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "simulate a sale under a given lot method" }
func (*saleCmd) Usage() string {
	return `rbc sale -ticker <ticker> -qty <quantity> [-price <price>] [-method <method>] [-on <date>]

  Simulates selling a quantity of a holding, consuming lots in the order the
  method dictates, and reports the realized gain and tax.
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the holding to sell")
	f.Float64Var(&c.qty, "qty", 0, "Quantity to sell")
	f.Float64Var(&c.price, "price", 0, "Sale price per share (default the snapshot's current price)")
	f.StringVar(&c.method, "method", rebalance.FIFO.String(), "Lot selection method (fifo, lifo, hifo)")
	f.StringVar(&c.on, "on", date.Today().String(), "Sale date in YYYY-MM-DD format")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := rebalance.ParseLotMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing method: %v\n", err)
		return subcommands.ExitUsageError
	}
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

	sale := engine.SaleByMethod(*stock, rebalance.Q(c.qty), price, on, method, snapshot.TaxSettings())
	printMarkdown(renderer.SaleMarkdown(sale))
	return subcommands.ExitSuccess
}
