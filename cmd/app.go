// Package cmd implements the CLI application to compute rebalancing plans
// and tax-lot analyses over a portfolio snapshot.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hyeon/rebalance"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&rebalanceCmd{}, "rebalancing")

	c.Register(&lotsCmd{}, "tax lots")
	c.Register(&saleCmd{}, "tax lots")
	c.Register(&optimizeCmd{}, "tax lots")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", "portfolio.json", "Path to the portfolio snapshot file (JSON)")
var snapshotPath = flag.String("path", "", "JSONPath of the snapshot object inside the file (e.g. $.data.portfolio)")

// DecodeSnapshot loads the snapshot every command operates on, extracting it
// from a wrapper document when -path is given.
func DecodeSnapshot() (*rebalance.Snapshot, error) {
	f, err := os.Open(*snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q: %w", *snapshotFile, err)
	}
	defer f.Close()

	if *snapshotPath == "" {
		return rebalance.DecodeSnapshot(f)
	}

	var jobj any
	if err := json.NewDecoder(f).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode %q: %w", *snapshotFile, err)
	}
	jval, err := jsonpath.Get(*snapshotPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot extract %q from %q: %w", *snapshotPath, *snapshotFile, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return rebalance.DecodeSnapshotValue(jval)
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// warnRatioTotal warns when target ratios do not sum to 100. The engine
// normalizes ratios rather than enforcing the total; warning is the
// caller's job.
func warnRatioTotal(stocks []rebalance.CalculatedStock) {
	var total rebalance.Percent
	for _, st := range stocks {
		total = total.Add(st.TargetRatio)
	}
	if !total.Equal(rebalance.P(100)) {
		log.Printf("warning: target ratios sum to %s, not 100%%; they will be normalized", total)
	}
}
