package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sonaworks/bullion/cmd"
)

func main() {
	// Shell completion; returns immediately outside a completion context.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":       {},
			"sell":      {},
			"fmt":       {},
			"holding":   {Flags: map[string]complete.Predictor{"spot": predict.Nothing}},
			"history":   {},
			"aging":     {},
			"suppliers": {},
			"turnover":  {},
			"audit":     {},
			"spot":      {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
	}
	completion.Complete("gold")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
