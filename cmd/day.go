package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/prisca/nutrition"
	"github.com/prisca/nutrition/renderer"
)

// dayCmd holds the flags for the 'day' subcommand.
type dayCmd struct {
	date string
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "display one day's journal with totals and goals" }
func (*dayCmd) Usage() string {
	return `nut day [-d <date>]

  Displays every logged item of the day, resolved, with per-slot subtotals
  and the day totals against goals.
`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to display (defaults to today)")
}

func (c *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	report, err := nutrition.NewDayReport(store, date)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DayMarkdown(report))
	return subcommands.ExitSuccess
}
