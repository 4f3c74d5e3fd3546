package nutrition

// Resolved is the contribution of a single meal item: an absolute nutrient
// vector and, when the item could be priced at all, its cost. Priced is
// false only when no price source exists for the item; a day with no priced
// item still sums to a zero cost, absence is meaningful at item granularity
// only.
type Resolved struct {
	Nutrients
	Cost   Money
	Priced bool
}

// ResolveItem computes the nutrient vector and cost of one meal item against
// the given food and composed-meal catalogs.
//
// Resolution cases, mutually exclusive and in precedence order:
//
//  1. Ingredient-level override: an adjustable meal instance with custom
//     portions is priced and summed ingredient by ingredient, using the
//     override weight (zero when an ingredient is absent from the override
//     map: it was omitted this time).
//  2. Adjustable meal without override: the cached recipe values are the
//     instance values, used verbatim, never scaled by the item weight.
//  3. Everything else scales the referenced per-100g vector by weight/100.
//
// A custom price always replaces the computed cost. An unresolvable
// reference (the food or meal was deleted) contributes a zero vector and no
// cost, so that historical days keep aggregating.
func ResolveItem(item MealItem, foods map[string]*Food, meals map[string]*ComposedMeal) Resolved {
	if item.Kind == MealRef {
		meal, ok := meals[item.RefID]
		if !ok {
			return Resolved{}
		}
		if item.CustomPortions != nil && len(meal.Ingredients) > 0 {
			return resolveOverride(item, meal, foods)
		}
		if meal.PortionAdjustable {
			// The cached vector already represents the full instance.
			r := Resolved{Nutrients: meal.Nutrients}
			if item.CustomPrice != nil {
				r.Cost, r.Priced = *item.CustomPrice, true
			} else if price, ok := meal.Price(); ok {
				r.Cost, r.Priced = price, true
			}
			return r
		}
		r := Resolved{Nutrients: meal.Nutrients.Scale(item.Weight / 100)}
		if item.CustomPrice != nil {
			r.Cost, r.Priced = *item.CustomPrice, true
		} else if per100, ok := meal.Price(); ok {
			r.Cost, r.Priced = per100.Div(100).Mul(item.Weight), true
		}
		return r
	}

	food, ok := foods[item.RefID]
	if !ok {
		return Resolved{}
	}
	r := Resolved{Nutrients: food.Nutrients.Scale(item.Weight / 100)}
	if item.CustomPrice != nil {
		r.Cost, r.Priced = *item.CustomPrice, true
	} else if per100, ok := food.PricePer100(); ok {
		r.Cost, r.Priced = per100.Div(100).Mul(item.Weight), true
	}
	return r
}

// resolveOverride sums an adjustable meal instance ingredient by ingredient
// using the per-instance weights.
func resolveOverride(item MealItem, meal *ComposedMeal, foods map[string]*Food) Resolved {
	var r Resolved
	for _, ing := range meal.Ingredients {
		food, ok := foods[ing.FoodID]
		if !ok {
			continue
		}
		weight := item.CustomPortions[ing.FoodID] // zero when omitted this time
		r.Nutrients = r.Nutrients.Add(food.Nutrients.Scale(weight / 100))
		if per100, ok := food.PricePer100(); ok {
			r.Cost = r.Cost.Add(per100.Div(100).Mul(weight))
			r.Priced = true
		}
	}
	if item.CustomPrice != nil {
		r.Cost, r.Priced = *item.CustomPrice, true
	}
	return r
}
