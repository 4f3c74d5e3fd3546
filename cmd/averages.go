package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/prisca/nutrition"
	"github.com/prisca/nutrition/renderer"
)

// averagesCmd picks the bucket period from the span of the range: daily up
// to a month, weekly up to about six months, monthly beyond.
type averagesCmd struct {
	r      rangeFlags
	period string
}

func (*averagesCmd) Name() string     { return "averages" }
func (*averagesCmd) Synopsis() string { return "display per-day averages bucketed by period" }
func (*averagesCmd) Usage() string {
	return `nut averages [-from <date>] [-to <date>] [-n <days>] [-all] [-period <p>]

  Groups the range into daily, weekly or monthly buckets depending on its
  span, and displays per-day means for each bucket. -period forces the
  bucketing granularity.
`
}

func (c *averagesCmd) SetFlags(f *flag.FlagSet) {
	c.r.set(f)
	f.StringVar(&c.period, "period", "", "Bucketing period (daily, weekly, monthly), overriding the span-based choice")
}

func (c *averagesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	r, allTime, err := c.r.resolve(store)
	if err != nil {
		return fail(err)
	}
	period := nutrition.PeriodFor(r.Len(), allTime)
	if c.period != "" {
		period, err = nutrition.ParsePeriod(c.period)
		if err != nil {
			return fail(err)
		}
	}
	report, err := nutrition.NewAveragesReport(store, r, period)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AveragesMarkdown(report))
	return subcommands.ExitSuccess
}

// weeklyCmd forces weekly buckets over the last weeks.
type weeklyCmd struct {
	r rangeFlags
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display weekly averages" }
func (*weeklyCmd) Usage() string {
	return `nut weekly [-from <date>] [-to <date>] [-n <days>] [-all]

  Displays per-day means for each ISO week of the range.
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	c.r.set(f)
	c.r.n = 28
}

func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAverages(&c.r, nutrition.Weekly)
}

// monthlyCmd forces monthly buckets over the last months.
type monthlyCmd struct {
	r rangeFlags
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display monthly averages" }
func (*monthlyCmd) Usage() string {
	return `nut monthly [-from <date>] [-to <date>] [-n <days>] [-all]

  Displays per-day means for each calendar month of the range.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	c.r.set(f)
	c.r.n = 180
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAverages(&c.r, nutrition.Monthly)
}

func runAverages(rf *rangeFlags, period nutrition.Period) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	r, _, err := rf.resolve(store)
	if err != nil {
		return fail(err)
	}
	report, err := nutrition.NewAveragesReport(store, r, period)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AveragesMarkdown(report))
	return subcommands.ExitSuccess
}
