package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
)

// waterCmd records hydration.
type waterCmd struct {
	date string
	set  bool
}

func (*waterCmd) Name() string     { return "water" }
func (*waterCmd) Synopsis() string { return "record drinking water" }
func (*waterCmd) Usage() string {
	return `nut water [-d <date>] [-set] <ml>

  Adds the amount to the day's hydration total, or replaces it with -set.
`
}

func (c *waterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
	f.BoolVar(&c.set, "set", false, "Replace the day's total instead of adding")
}

func (c *waterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected an amount in ml"))
	}
	ml, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil || ml < 0 {
		return fail(fmt.Errorf("invalid amount %q", f.Arg(0)))
	}
	date, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	day, err := store.Day(date)
	if err != nil {
		return fail(err)
	}
	if c.set {
		day.WaterMl = ml
	} else {
		day.WaterMl += ml
	}
	if err := store.SaveDay(day); err != nil {
		return fail(err)
	}
	fmt.Printf("Water on %s: %.0f ml\n", date, day.WaterMl)
	return subcommands.ExitSuccess
}

// stepsCmd records the day's step count.
type stepsCmd struct {
	date string
}

func (*stepsCmd) Name() string     { return "steps" }
func (*stepsCmd) Synopsis() string { return "record the day's step count" }
func (*stepsCmd) Usage() string {
	return `nut steps [-d <date>] <count>

  Replaces the day's step count.
`
}

func (c *stepsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
}

func (c *stepsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected a step count"))
	}
	steps, err := strconv.Atoi(f.Arg(0))
	if err != nil || steps < 0 {
		return fail(fmt.Errorf("invalid step count %q", f.Arg(0)))
	}
	date, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	day, err := store.Day(date)
	if err != nil {
		return fail(err)
	}
	day.Steps = steps
	if err := store.SaveDay(day); err != nil {
		return fail(err)
	}
	fmt.Printf("Steps on %s: %d\n", date, day.Steps)
	return subcommands.ExitSuccess
}

// weightCmd records the morning weigh-in.
type weightCmd struct {
	date string
}

func (*weightCmd) Name() string     { return "weight" }
func (*weightCmd) Synopsis() string { return "record the morning weigh-in" }
func (*weightCmd) Usage() string {
	return `nut weight [-d <date>] <kg>

  Replaces the day's body weight. Days without a weigh-in stay out of the
  weight averages.
`
}

func (c *weightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
}

func (c *weightCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected a weight in kg"))
	}
	kg, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil || kg <= 0 {
		return fail(fmt.Errorf("invalid weight %q", f.Arg(0)))
	}
	date, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	day, err := store.Day(date)
	if err != nil {
		return fail(err)
	}
	day.BodyWeight = &kg
	if err := store.SaveDay(day); err != nil {
		return fail(err)
	}
	fmt.Printf("Body weight on %s: %.1f kg\n", date, kg)
	return subcommands.ExitSuccess
}
