package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hyeon/rebalance/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"snapshot-file": predict.Files("*.json"),
		"path":          predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"rebalance": {Flags: map[string]complete.Predictor{
			"mode":   predict.Set{"add", "simple", "sell"},
			"amount": predict.Something,
		}},
		"lots": {Flags: map[string]complete.Predictor{
			"ticker": predict.Something,
			"method": predict.Set{"fifo", "lifo", "hifo"},
		}},
		"sale": {Flags: map[string]complete.Predictor{
			"ticker": predict.Something,
			"qty":    predict.Something,
			"price":  predict.Something,
			"method": predict.Set{"fifo", "lifo", "hifo"},
			"on":     predict.Something,
		}},
		"optimize": {Flags: map[string]complete.Predictor{
			"ticker": predict.Something,
			"qty":    predict.Something,
			"price":  predict.Something,
			"on":     predict.Something,
		}},
		"topic": {Args: predict.Set{"readme", "rebalancing", "taxlots", "snapshot"}},
	},
}

func main() {
	// Complete exits early when the shell is asking for completions.
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
