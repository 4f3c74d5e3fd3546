package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/prisca/nutrition"
	"github.com/prisca/nutrition/renderer"
)

// rangeFlags is the shared flag set of every range-based report.
type rangeFlags struct {
	from string
	to   string
	n    int
	all  bool
}

func (r *rangeFlags) set(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "", "Start date of the range")
	f.StringVar(&r.to, "to", "", "End date of the range (defaults to today)")
	f.IntVar(&r.n, "n", 7, "Number of days ending at -to, when -from is not given")
	f.BoolVar(&r.all, "all", false, "Cover the whole journal, from the first recorded day")
}

// resolve computes the report range and whether it covers the whole journal.
func (r *rangeFlags) resolve(store *nutrition.Store) (nutrition.Range, bool, error) {
	to, err := parseDate(r.to)
	if err != nil {
		return nutrition.Range{}, false, err
	}
	if r.all {
		days, err := store.Days()
		if err != nil {
			return nutrition.Range{}, false, err
		}
		from := to
		for date := range days {
			if date.Before(from) {
				from = date
			}
		}
		return nutrition.NewRange(from, to), true, nil
	}
	if r.from != "" {
		from, err := nutrition.ParseDate(r.from)
		if err != nil {
			return nutrition.Range{}, false, err
		}
		return nutrition.NewRange(from, to), false, nil
	}
	if r.n <= 0 {
		return nutrition.Range{}, false, fmt.Errorf("-n must be positive")
	}
	return nutrition.LastNDays(to, r.n), false, nil
}

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	r rangeFlags
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display day-by-day totals over a range" }
func (*historyCmd) Usage() string {
	return `nut history [-from <date>] [-to <date>] [-n <days>] [-all]

  Displays one row per calendar day of the range, unrecorded days as zeros.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) { c.r.set(f) }

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	r, _, err := c.r.resolve(store)
	if err != nil {
		return fail(err)
	}
	report, err := nutrition.NewHistoryReport(store, r)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
