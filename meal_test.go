package nutrition

import "testing"

// testFoods is a small catalog shared by the meal and resolution tests.
func testFoods() map[string]*Food {
	return map[string]*Food{
		"rice": {
			ID: "rice", Name: "Riz",
			Nutrients: Nutrients{Calories: 130, Proteins: 2.7, Carbs: 28},
			Price:     &Price{Amount: EUR(2), Quantity: 1000, Unit: PerMass},
		},
		"chicken": {
			ID: "chicken", Name: "Poulet",
			Nutrients: Nutrients{Calories: 165, Proteins: 31, Fats: 3.6},
			Price:     &Price{Amount: EUR(7), Quantity: 1000, Unit: PerMass},
		},
		"butter": {
			ID: "butter", Name: "Beurre",
			Nutrients: Nutrients{Calories: 717, Fats: 81},
			// no price
		},
	}
}

func TestRecompute(t *testing.T) {
	foods := testFoods()
	meal := &ComposedMeal{
		ID: "bowl", Name: "Bowl",
		Ingredients: []Ingredient{
			{FoodID: "rice", Weight: 300},
			{FoodID: "chicken", Weight: 200},
		},
	}
	meal.Recompute(foods)

	// 300g rice + 200g chicken = 500g yield.
	// Calories: 3*130 + 2*165 = 720 total, 144 per 100g.
	if !almost(meal.Calories, 144) {
		t.Errorf("Calories per 100g = %g, want 144", meal.Calories)
	}
	// Price: 0.6 + 1.4 = 2 EUR total, 0.40 per 100g.
	price, ok := meal.Price()
	if !ok {
		t.Fatal("meal should be priced")
	}
	if !price.Equal(EUR(0.4)) {
		t.Errorf("price per 100g = %s, want 0.40 EUR", price)
	}
}

func TestRecomputeWithYield(t *testing.T) {
	foods := testFoods()
	meal := &ComposedMeal{
		ID: "risotto", Name: "Risotto",
		Ingredients: []Ingredient{{FoodID: "rice", Weight: 200}},
		TotalWeight: 400, // water absorbed while cooking
	}
	meal.Recompute(foods)

	// 200g rice = 260 kcal total, spread over 400g of finished recipe.
	if !almost(meal.Calories, 65) {
		t.Errorf("Calories per 100g = %g, want 65", meal.Calories)
	}
}

func TestRecomputeUnpriced(t *testing.T) {
	foods := testFoods()
	meal := &ComposedMeal{
		ID: "ghee", Name: "Ghee",
		Ingredients: []Ingredient{{FoodID: "butter", Weight: 250}},
	}
	meal.Recompute(foods)
	if _, ok := meal.Price(); ok {
		t.Error("meal with no priced ingredient should not be priced")
	}
	if !almost(meal.Calories, 717) {
		t.Errorf("Calories per 100g = %g, want 717", meal.Calories)
	}
}

func TestRecomputeDanglingIngredient(t *testing.T) {
	foods := testFoods()
	meal := &ComposedMeal{
		ID: "mixed", Name: "Mixed",
		Ingredients: []Ingredient{
			{FoodID: "rice", Weight: 100},
			{FoodID: "gone", Weight: 100},
		},
	}
	meal.Recompute(foods)
	// The dangling ingredient still counts in the yield but brings nothing.
	if !almost(meal.Calories, 65) {
		t.Errorf("Calories per 100g = %g, want 65", meal.Calories)
	}
}

func TestValidateMeal(t *testing.T) {
	foods := testFoods()
	other := &ComposedMeal{ID: "other", Name: "Other",
		Ingredients: []Ingredient{{FoodID: "rice", Weight: 100}}}
	meals := map[string]*ComposedMeal{"other": other}

	tests := []struct {
		name string
		meal *ComposedMeal
		err  bool
	}{
		{"valid", &ComposedMeal{ID: "ok", Name: "Ok",
			Ingredients: []Ingredient{{FoodID: "rice", Weight: 100}}}, false},
		{"no id", &ComposedMeal{Name: "Anonymous",
			Ingredients: []Ingredient{{FoodID: "rice", Weight: 100}}}, true},
		{"no ingredients", &ComposedMeal{ID: "empty", Name: "Empty"}, true},
		{"meal in meal", &ComposedMeal{ID: "nested", Name: "Nested",
			Ingredients: []Ingredient{{FoodID: "other", Weight: 100}}}, true},
		{"negative weight", &ComposedMeal{ID: "neg", Name: "Neg",
			Ingredients: []Ingredient{{FoodID: "rice", Weight: -1}}}, true},
		{"unknown food allowed", &ComposedMeal{ID: "dang", Name: "Dang",
			Ingredients: []Ingredient{{FoodID: "gone", Weight: 100}}}, false},
	}
	for _, tt := range tests {
		err := ValidateMeal(tt.meal, foods, meals)
		if (err != nil) != tt.err {
			t.Errorf("%s: err = %v, want error: %v", tt.name, err, tt.err)
		}
	}
}
