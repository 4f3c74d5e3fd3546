package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/prisca/nutrition"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	date     string
	slot     string
	meal     bool
	weight   float64
	price    float64
	portions string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "log a food or a composed meal into a day's slot" }
func (*logCmd) Usage() string {
	return `nut log [-d <date>] [-s <slot>] [-meal] [-w <grams>] [-price <amount>] [-portions f1=g1,f2=g2] <id>

  Appends one consumption entry to the given meal slot.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
	f.StringVar(&c.slot, "s", "lunch", "Meal slot (breakfast, lunch, dinner, snack)")
	f.BoolVar(&c.meal, "meal", false, "The id refers to a composed meal, not a food")
	f.Float64Var(&c.weight, "w", 100, "Weight consumed in grams")
	f.Float64Var(&c.price, "price", 0, "Custom price for this entry, overriding any computed cost")
	f.StringVar(&c.portions, "portions", "", "Per-ingredient weights for an adjustable meal, as foodid=grams pairs")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one food or meal id"))
	}
	id := f.Arg(0)

	date, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	slot, err := nutrition.ParseSlot(c.slot)
	if err != nil {
		return fail(err)
	}
	overrides, err := parseOverrides(c.portions)
	if err != nil {
		return fail(err)
	}
	if overrides != nil && !c.meal {
		return fail(fmt.Errorf("-portions only applies to a composed meal"))
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	var item nutrition.MealItem
	if c.meal {
		item = nutrition.NewMealItem(id, c.weight)
		item.CustomPortions = overrides
	} else {
		item = nutrition.NewFoodItem(id, c.weight)
	}
	if c.price > 0 {
		p := nutrition.M(c.price, nutrition.DefaultCurrency)
		item.CustomPrice = &p
	}

	day, err := store.Day(date)
	if err != nil {
		return fail(err)
	}
	day.Add(slot, item)
	if err := store.SaveDay(day); err != nil {
		return fail(err)
	}
	fmt.Printf("Logged %q (%s) on %s %s\n", id, item.UniqueID, date, slot)
	return subcommands.ExitSuccess
}

// unlogCmd removes one entry by its unique id.
type unlogCmd struct {
	date string
}

func (*unlogCmd) Name() string     { return "unlog" }
func (*unlogCmd) Synopsis() string { return "remove one logged entry from a day" }
func (*unlogCmd) Usage() string {
	return `nut unlog [-d <date>] <unique-id>

  Removes the entry with the given unique id from the day.
`
}

func (c *unlogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
}

func (c *unlogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one entry unique id"))
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
	if !day.Remove(f.Arg(0)) {
		return fail(fmt.Errorf("no entry %q on %s", f.Arg(0), date))
	}
	if err := store.SaveDay(day); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed entry %q from %s\n", f.Arg(0), date)
	return subcommands.ExitSuccess
}
