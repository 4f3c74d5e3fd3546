package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/prisca/nutrition"
	"github.com/prisca/nutrition/renderer"
)

// costsCmd holds the flags for the 'costs' subcommand.
type costsCmd struct {
	r rangeFlags
}

func (*costsCmd) Name() string     { return "costs" }
func (*costsCmd) Synopsis() string { return "display per-day, per-slot spending over a range" }
func (*costsCmd) Usage() string {
	return `nut costs [-from <date>] [-to <date>] [-n <days>] [-all]

  Displays spending per day and per meal slot, with a grand total.
`
}

func (c *costsCmd) SetFlags(f *flag.FlagSet) { c.r.set(f) }

func (c *costsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	r, _, err := c.r.resolve(store)
	if err != nil {
		return fail(err)
	}
	report, err := nutrition.NewCostsReport(store, r)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CostsMarkdown(report))
	return subcommands.ExitSuccess
}
