package nutrition

import (
	"fmt"
)

// Ingredient is one line of a composed meal recipe: a food and its weight in
// grams in the finished recipe.
type Ingredient struct {
	FoodID string  `json:"foodId"`
	Weight float64 `json:"weight"`
}

// ComposedMeal is a named, reusable bundle of foods. Its nutrient and price
// fields are a cache over the ingredient list, always normalized to 100g of
// the finished recipe, and must be recomputed on every structural change.
//
// Ingredients are always plain foods: a meal can not contain another meal.
type ComposedMeal struct {
	ID          string
	Name        string
	Ingredients []Ingredient

	// TotalWeight is the recipe's yield in grams. Zero means "sum of
	// ingredient weights".
	TotalWeight float64

	// PortionAdjustable marks a recipe whose per-instance ingredient weights
	// may be overridden on a daily entry.
	PortionAdjustable bool

	// Cached per-100g values, derived from the ingredients.
	Nutrients
	CachedPrice  Money
	cachedPriced bool
}

// Yield returns the recipe's total weight, defaulting to the sum of
// ingredient weights when none was declared.
func (m *ComposedMeal) Yield() float64 {
	if m.TotalWeight > 0 {
		return m.TotalWeight
	}
	var sum float64
	for _, ing := range m.Ingredients {
		sum += ing.Weight
	}
	return sum
}

// Price returns the cached per-100g price of the recipe, when at least one
// ingredient had a price at the last recompute.
func (m *ComposedMeal) Price() (Money, bool) { return m.CachedPrice, m.cachedPriced }

// Recompute rebuilds the cached nutrient and price fields from the
// ingredient list, normalized to 100g of the finished recipe. Ingredients
// referencing unknown foods contribute nothing. It must be called on every
// mutation of the ingredients or the total weight; the store does so before
// persisting.
func (m *ComposedMeal) Recompute(foods map[string]*Food) {
	var total Nutrients
	var price Money
	priced := false
	for _, ing := range m.Ingredients {
		food, ok := foods[ing.FoodID]
		if !ok {
			continue
		}
		total = total.Add(food.Nutrients.Scale(ing.Weight / 100))
		if per100, ok := food.PricePer100(); ok {
			priced = true
			price = price.Add(per100.Div(100).Mul(ing.Weight))
		}
	}

	yield := m.Yield()
	if yield > 0 {
		factor := 100 / yield
		total = total.Scale(factor)
		price = price.Mul(factor)
	}
	m.Nutrients = total
	m.CachedPrice = price
	m.cachedPriced = priced
}

// ValidateMeal checks a composed meal before it enters the store: a recipe
// must have a name, at least one ingredient, and every ingredient must
// reference a plain food. Referencing another composed meal is rejected
// rather than resolved, to keep recipes one level deep.
func ValidateMeal(m *ComposedMeal, foods map[string]*Food, meals map[string]*ComposedMeal) error {
	if m.ID == "" {
		return fmt.Errorf("meal has no id")
	}
	if m.Name == "" {
		return fmt.Errorf("meal %q has no name", m.ID)
	}
	if len(m.Ingredients) == 0 {
		return fmt.Errorf("meal %q has no ingredients", m.ID)
	}
	for _, ing := range m.Ingredients {
		if _, isMeal := meals[ing.FoodID]; isMeal {
			return fmt.Errorf("meal %q: ingredient %q is a composed meal, recipes can only contain foods", m.ID, ing.FoodID)
		}
		if ing.Weight < 0 {
			return fmt.Errorf("meal %q: ingredient %q has a negative weight", m.ID, ing.FoodID)
		}
		// An unknown food id is allowed: the food may have been deleted, the
		// resolver treats it as zero-contribution.
		_ = foods
	}
	return nil
}

// Duplicate returns a copy of the meal under a new id and name, cached
// fields included.
func (m *ComposedMeal) Duplicate(id, name string) *ComposedMeal {
	dup := *m
	dup.ID = id
	dup.Name = name
	dup.Ingredients = make([]Ingredient, len(m.Ingredients))
	copy(dup.Ingredients, m.Ingredients)
	return &dup
}
