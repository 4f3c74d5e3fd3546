package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// goalsCmd displays or updates the daily targets.
type goalsCmd struct {
	calories float64
	proteins float64
	carbs    float64
	fats     float64
	water    float64
	steps    int
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "display or update the daily targets" }
func (*goalsCmd) Usage() string {
	return `nut goals [-cal n] [-prot n] [-carb n] [-fat n] [-water ml] [-steps n]

  Without flags, displays the current targets. Each flag updates one target,
  the others are kept.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.calories, "cal", 0, "Daily calories target")
	f.Float64Var(&c.proteins, "prot", 0, "Daily proteins target in grams")
	f.Float64Var(&c.carbs, "carb", 0, "Daily carbohydrates target in grams")
	f.Float64Var(&c.fats, "fat", 0, "Daily fats target in grams")
	f.Float64Var(&c.water, "water", 0, "Daily hydration target in ml")
	f.IntVar(&c.steps, "steps", 0, "Daily steps target")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	goals, err := store.Goals()
	if err != nil {
		return fail(err)
	}

	changed := false
	if c.calories > 0 {
		goals.Calories, changed = c.calories, true
	}
	if c.proteins > 0 {
		goals.Proteins, changed = c.proteins, true
	}
	if c.carbs > 0 {
		goals.Carbs, changed = c.carbs, true
	}
	if c.fats > 0 {
		goals.Fats, changed = c.fats, true
	}
	if c.water > 0 {
		goals.WaterMl, changed = c.water, true
	}
	if c.steps > 0 {
		goals.Steps, changed = c.steps, true
	}
	if changed {
		if err := store.SaveGoals(goals); err != nil {
			return fail(err)
		}
	}

	fmt.Printf("Calories: %.0f kcal\nProteins: %.0f g\nCarbs:    %.0f g\nFats:     %.0f g\nWater:    %.0f ml\nSteps:    %d\n",
		goals.Calories, goals.Proteins, goals.Carbs, goals.Fats, goals.WaterMl, goals.Steps)
	return subcommands.ExitSuccess
}
