package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/prisca/nutrition"
	"github.com/prisca/nutrition/renderer"
)

// foodAddCmd holds the flags for the 'food-add' subcommand.
type foodAddCmd struct {
	id       string
	name     string
	category string
	portion  float64

	calories float64
	proteins float64
	carbs    float64
	sugars   float64
	fibers   float64
	fats     float64

	price    float64
	quantity float64
	unit     string
}

func (*foodAddCmd) Name() string     { return "food-add" }
func (*foodAddCmd) Synopsis() string { return "add or update a food record" }
func (*foodAddCmd) Usage() string {
	return `nut food-add -name <name> [-id <id>] [-cat <category>] [-portion <grams>]
             [-cal n] [-prot n] [-carb n] [-sugars n] [-fibers n] [-fat n]
             [-price <amount> -qty <n> [-unit grams|portions]]

  Adds a food. Nutrient values are per 100g, or per portion when -portion
  gives the portion weight. Without -id, the id is derived from the name.
  Without -cat, the category is guessed from the name.
`
}

func (c *foodAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Food id (defaults to a slug of the name)")
	f.StringVar(&c.name, "name", "", "Display name")
	f.StringVar(&c.category, "cat", "", "Category (proteins, starches, vegetables, fruits, dairy, fats, beverages, snacks, other)")
	f.Float64Var(&c.portion, "portion", 0, "Portion weight in grams; nutrient values are then per portion")
	f.Float64Var(&c.calories, "cal", 0, "Calories")
	f.Float64Var(&c.proteins, "prot", 0, "Proteins in grams")
	f.Float64Var(&c.carbs, "carb", 0, "Carbohydrates in grams")
	f.Float64Var(&c.sugars, "sugars", 0, "Sugars in grams")
	f.Float64Var(&c.fibers, "fibers", 0, "Fibers in grams")
	f.Float64Var(&c.fats, "fat", 0, "Fats in grams")
	f.Float64Var(&c.price, "price", 0, "Amount paid")
	f.Float64Var(&c.quantity, "qty", 0, "How many units the amount bought")
	f.StringVar(&c.unit, "unit", "grams", "What the quantity counts (grams, portions)")
}

func (c *foodAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("-name is required"))
	}
	id := c.id
	if id == "" {
		id = nutrition.GenerateFoodID(c.name)
	}
	if id == "" {
		return fail(fmt.Errorf("could not derive an id from %q, use -id", c.name))
	}

	food := &nutrition.Food{
		ID:   id,
		Name: c.name,
		Nutrients: nutrition.Nutrients{
			Calories: c.calories,
			Proteins: c.proteins,
			Carbs:    c.carbs,
			Sugars:   c.sugars,
			Fibers:   c.fibers,
			Fats:     c.fats,
		},
	}
	if c.category != "" {
		food.Category = nutrition.ParseCategory(c.category)
	} else {
		food.Category = nutrition.CategorizeByName(c.name)
	}
	if c.portion > 0 {
		// per-portion input, normalized to the per-100g basis
		food.PortionBased = true
		food.PortionWeight = c.portion
		food.Nutrients = food.Nutrients.Scale(100 / c.portion)
	}
	if c.price > 0 {
		unit, err := nutrition.ParsePriceUnit(c.unit)
		if err != nil {
			return fail(err)
		}
		if c.quantity <= 0 {
			return fail(fmt.Errorf("-price needs a positive -qty"))
		}
		food.Price = &nutrition.Price{
			Amount:   nutrition.M(c.price, nutrition.DefaultCurrency),
			Quantity: c.quantity,
			Unit:     unit,
		}
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.SaveFood(food); err != nil {
		return fail(err)
	}
	fmt.Printf("Saved food %q (%s)\n", food.Name, food.ID)
	return subcommands.ExitSuccess
}

// foodPriceCmd sets or clears the price of an existing food.
type foodPriceCmd struct {
	price    float64
	quantity float64
	unit     string
	clear    bool
}

func (*foodPriceCmd) Name() string     { return "food-price" }
func (*foodPriceCmd) Synopsis() string { return "set or clear the price of a food" }
func (*foodPriceCmd) Usage() string {
	return `nut food-price -price <amount> -qty <n> [-unit grams|portions] <id>
nut food-price -clear <id>

  Updates the price metadata of an existing food.
`
}

func (c *foodPriceCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.price, "price", 0, "Amount paid")
	f.Float64Var(&c.quantity, "qty", 0, "How many units the amount bought")
	f.StringVar(&c.unit, "unit", "grams", "What the quantity counts (grams, portions)")
	f.BoolVar(&c.clear, "clear", false, "Remove the price instead of setting one")
}

func (c *foodPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one food id"))
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	foods, err := store.Foods()
	if err != nil {
		return fail(err)
	}
	food, ok := foods[f.Arg(0)]
	if !ok {
		return fail(fmt.Errorf("unknown food %q", f.Arg(0)))
	}
	if c.clear {
		food.Price = nil
	} else {
		unit, err := nutrition.ParsePriceUnit(c.unit)
		if err != nil {
			return fail(err)
		}
		if c.price <= 0 || c.quantity <= 0 {
			return fail(fmt.Errorf("need positive -price and -qty"))
		}
		food.Price = &nutrition.Price{
			Amount:   nutrition.M(c.price, nutrition.DefaultCurrency),
			Quantity: c.quantity,
			Unit:     unit,
		}
	}
	if err := store.SaveFood(food); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated price of %q\n", food.ID)
	return subcommands.ExitSuccess
}

// foodListCmd displays the food catalog.
type foodListCmd struct{}

func (*foodListCmd) Name() string     { return "food-list" }
func (*foodListCmd) Synopsis() string { return "display the food catalog" }
func (*foodListCmd) Usage() string {
	return `nut food-list

  Displays every food with its per-100g profile and price.
`
}

func (c *foodListCmd) SetFlags(f *flag.FlagSet) {}

func (c *foodListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	foods, err := store.Foods()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FoodsMarkdown(foods))
	return subcommands.ExitSuccess
}

// foodRmCmd deletes a food record.
type foodRmCmd struct{}

func (*foodRmCmd) Name() string     { return "food-rm" }
func (*foodRmCmd) Synopsis() string { return "remove a food from the catalog" }
func (*foodRmCmd) Usage() string {
	return `nut food-rm <id>

  Removes a food. Past journal entries referencing it are kept and resolve
  to a zero contribution.
`
}

func (c *foodRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *foodRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one food id"))
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.DeleteFood(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed food %q\n", f.Arg(0))
	return subcommands.ExitSuccess
}
