package nutrition

import (
	"testing"
)

func testMeals(foods map[string]*Food) map[string]*ComposedMeal {
	bowl := &ComposedMeal{
		ID: "bowl", Name: "Bowl",
		Ingredients: []Ingredient{
			{FoodID: "rice", Weight: 300},
			{FoodID: "chicken", Weight: 200},
		},
	}
	bowl.Recompute(foods)

	fixed := &ComposedMeal{
		ID: "fixed", Name: "Fixed plate",
		PortionAdjustable: true,
		Ingredients: []Ingredient{
			{FoodID: "rice", Weight: 150},
			{FoodID: "chicken", Weight: 120},
		},
	}
	fixed.Recompute(foods)

	return map[string]*ComposedMeal{"bowl": bowl, "fixed": fixed}
}

func TestResolveFood(t *testing.T) {
	foods := testFoods()
	meals := testMeals(foods)

	r := ResolveItem(NewFoodItem("chicken", 200), foods, meals)
	if !almost(r.Calories, 330) || !almost(r.Proteins, 62) {
		t.Errorf("200g chicken = %+v", r.Nutrients)
	}
	if !r.Priced || !r.Cost.Equal(EUR(1.4)) {
		t.Errorf("200g chicken cost = %s (priced %v), want 1.40 EUR", r.Cost, r.Priced)
	}

	// Linearity: 500g must be 2.5 times 200g.
	r2 := ResolveItem(NewFoodItem("chicken", 500), foods, meals)
	if !almost(r2.Calories, 2.5*r.Calories) {
		t.Errorf("scaling is not linear: %g vs %g", r2.Calories, r.Calories)
	}
}

func TestResolveUnpricedFood(t *testing.T) {
	foods := testFoods()
	r := ResolveItem(NewFoodItem("butter", 50), foods, nil)
	if r.Priced {
		t.Error("butter has no price, item should not be priced")
	}
	if !almost(r.Calories, 358.5) {
		t.Errorf("50g butter = %g kcal, want 358.5", r.Calories)
	}
}

func TestResolveCustomPrice(t *testing.T) {
	foods := testFoods()
	item := NewFoodItem("chicken", 200)
	price := EUR(12.90)
	item.CustomPrice = &price

	r := ResolveItem(item, foods, nil)
	if !r.Priced || !r.Cost.Equal(price) {
		t.Errorf("custom price not honored: %s (priced %v)", r.Cost, r.Priced)
	}
	// Nutrients still scale from the catalog.
	if !almost(r.Calories, 330) {
		t.Errorf("calories = %g, want 330", r.Calories)
	}
}

func TestResolveMealScaled(t *testing.T) {
	foods := testFoods()
	meals := testMeals(foods)

	// 250g of bowl (144 kcal per 100g) = 360 kcal, cost 0.4/100g = 1 EUR.
	r := ResolveItem(NewMealItem("bowl", 250), foods, meals)
	if !almost(r.Calories, 360) {
		t.Errorf("250g bowl = %g kcal, want 360", r.Calories)
	}
	if !r.Priced || !r.Cost.Equal(EUR(1)) {
		t.Errorf("250g bowl cost = %s, want 1.00 EUR", r.Cost)
	}
}

func TestResolveAdjustableVerbatim(t *testing.T) {
	foods := testFoods()
	meals := testMeals(foods)

	// An adjustable meal without overrides resolves to its cached values,
	// whatever weight the item carries.
	r1 := ResolveItem(NewMealItem("fixed", 100), foods, meals)
	r2 := ResolveItem(NewMealItem("fixed", 999), foods, meals)
	if r1.Nutrients != r2.Nutrients {
		t.Errorf("adjustable meal scaled by weight: %+v vs %+v", r1.Nutrients, r2.Nutrients)
	}
	if !r1.Cost.Equal(r2.Cost) {
		t.Errorf("adjustable meal cost scaled by weight: %s vs %s", r1.Cost, r2.Cost)
	}
}

func TestResolveOverride(t *testing.T) {
	foods := testFoods()
	meals := testMeals(foods)

	item := NewMealItem("fixed", 0)
	item.CustomPortions = map[string]float64{"rice": 200}

	r := ResolveItem(item, foods, meals)
	// Only 200g of rice: chicken is absent from the override map, so omitted.
	if !almost(r.Calories, 260) || !almost(r.Fats, 0) {
		t.Errorf("override = %+v, want 200g of rice only", r.Nutrients)
	}
	if !r.Cost.Equal(EUR(0.4)) {
		t.Errorf("override cost = %s, want 0.40 EUR", r.Cost)
	}
}

func TestResolveOverridePrecedence(t *testing.T) {
	foods := testFoods()
	meals := testMeals(foods)

	// An override wins over the adjustable-verbatim case, and a custom price
	// wins over the override's computed cost.
	item := NewMealItem("fixed", 0)
	item.CustomPortions = map[string]float64{"rice": 100, "chicken": 100}
	price := EUR(9.99)
	item.CustomPrice = &price

	r := ResolveItem(item, foods, meals)
	if !almost(r.Calories, 295) {
		t.Errorf("calories = %g, want 295", r.Calories)
	}
	if !r.Cost.Equal(price) {
		t.Errorf("cost = %s, want the custom price", r.Cost)
	}
}

func TestResolveDangling(t *testing.T) {
	foods := testFoods()
	meals := testMeals(foods)

	for _, item := range []MealItem{
		NewFoodItem("gone", 100),
		NewMealItem("gone", 100),
	} {
		r := ResolveItem(item, foods, meals)
		if !r.Nutrients.IsZero() || r.Priced {
			t.Errorf("dangling %v should contribute nothing, got %+v", item.RefID, r)
		}
	}
}
