package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/prisca/nutrition"
	"github.com/prisca/nutrition/renderer"
)

// mealCreateCmd holds the flags for the 'meal-create' subcommand.
type mealCreateCmd struct {
	id         string
	name       string
	total      float64
	adjustable bool
}

func (*mealCreateCmd) Name() string     { return "meal-create" }
func (*mealCreateCmd) Synopsis() string { return "create or update a composed meal" }
func (*mealCreateCmd) Usage() string {
	return `nut meal-create -name <name> [-id <id>] [-total <grams>] [-adjustable] <foodid=grams>...

  Creates a recipe from the given ingredients. The per-100g profile and the
  price are computed from the current food catalog and cached on the record.
  -total overrides the cooked yield when it differs from the ingredient sum.
`
}

func (c *mealCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Meal id (defaults to a slug of the name)")
	f.StringVar(&c.name, "name", "", "Display name")
	f.Float64Var(&c.total, "total", 0, "Cooked yield in grams, when it differs from the ingredient sum")
	f.BoolVar(&c.adjustable, "adjustable", false, "Log this meal per instance with adjustable portions")
}

func (c *mealCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("-name is required"))
	}
	if f.NArg() == 0 {
		return fail(fmt.Errorf("expected at least one foodid=grams ingredient"))
	}
	id := c.id
	if id == "" {
		id = nutrition.GenerateFoodID(c.name)
	}

	meal := &nutrition.ComposedMeal{
		ID:                id,
		Name:              c.name,
		TotalWeight:       c.total,
		PortionAdjustable: c.adjustable,
	}
	for _, arg := range f.Args() {
		parsed, err := parseOverrides(arg)
		if err != nil {
			return fail(err)
		}
		for foodID, w := range parsed {
			meal.Ingredients = append(meal.Ingredients, nutrition.Ingredient{FoodID: foodID, Weight: w})
		}
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.SaveMeal(meal); err != nil {
		return fail(err)
	}
	fmt.Printf("Saved meal %q (%s), yield %.0f g\n", meal.Name, meal.ID, meal.Yield())
	return subcommands.ExitSuccess
}

// mealDupCmd copies a composed meal under a new id, as a starting point for
// a recipe variant.
type mealDupCmd struct {
	name string
}

func (*mealDupCmd) Name() string     { return "meal-dup" }
func (*mealDupCmd) Synopsis() string { return "duplicate a composed meal" }
func (*mealDupCmd) Usage() string {
	return `nut meal-dup [-name <display name>] <id> <new-id>

  Copies a recipe under a new id, ingredients included.
`
}

func (c *mealDupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the copy (defaults to the original's)")
}

func (c *mealDupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail(fmt.Errorf("expected <id> <new-id>"))
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	meals, err := store.Meals()
	if err != nil {
		return fail(err)
	}
	meal, ok := meals[f.Arg(0)]
	if !ok {
		return fail(fmt.Errorf("unknown meal %q", f.Arg(0)))
	}
	if _, taken := meals[f.Arg(1)]; taken {
		return fail(fmt.Errorf("meal %q already exists", f.Arg(1)))
	}
	name := c.name
	if name == "" {
		name = meal.Name
	}
	if err := store.SaveMeal(meal.Duplicate(f.Arg(1), name)); err != nil {
		return fail(err)
	}
	fmt.Printf("Duplicated meal %q as %q\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}

// mealListCmd displays the composed-meal catalog.
type mealListCmd struct{}

func (*mealListCmd) Name() string     { return "meal-list" }
func (*mealListCmd) Synopsis() string { return "display the composed-meal catalog" }
func (*mealListCmd) Usage() string {
	return `nut meal-list

  Displays every composed meal with its cached per-100g profile.
`
}

func (c *mealListCmd) SetFlags(f *flag.FlagSet) {}

func (c *mealListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	meals, err := store.Meals()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.MealsMarkdown(meals))
	return subcommands.ExitSuccess
}

// mealRmCmd deletes a composed meal.
type mealRmCmd struct{}

func (*mealRmCmd) Name() string     { return "meal-rm" }
func (*mealRmCmd) Synopsis() string { return "remove a composed meal" }
func (*mealRmCmd) Usage() string {
	return `nut meal-rm <id>

  Removes a composed meal. Past journal entries referencing it are kept and
  resolve to a zero contribution.
`
}

func (c *mealRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *mealRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one meal id"))
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.DeleteMeal(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed meal %q\n", f.Arg(0))
	return subcommands.ExitSuccess
}
