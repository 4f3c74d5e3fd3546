package nutrition

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
)

// Slot is one of the four meal slots of a day.
type Slot int

const (
	Breakfast Slot = iota
	Lunch
	Dinner
	Snack
)

// slots lists all slots in day order.
var slots = [...]Slot{Breakfast, Lunch, Dinner, Snack}

// Slots returns every meal slot in day order.
func Slots() []Slot { return slots[:] }

func (s Slot) String() string {
	switch s {
	case Breakfast:
		return "breakfast"
	case Lunch:
		return "lunch"
	case Dinner:
		return "dinner"
	case Snack:
		return "snack"
	default:
		return "unknown"
	}
}

// ParseSlot parses a slot name. The French names used by historical backups
// are accepted as aliases.
func ParseSlot(s string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "breakfast", "petit-dej":
		return Breakfast, nil
	case "lunch", "dejeuner":
		return Lunch, nil
	case "dinner", "diner":
		return Dinner, nil
	case "snack":
		return Snack, nil
	default:
		return Breakfast, fmt.Errorf("unknown meal slot %q", s)
	}
}

// RefKind tags what a MealItem references. It is decided when the item is
// constructed, never re-detected from field shapes.
type RefKind int

const (
	FoodRef RefKind = iota
	MealRef
)

// MealItem is one line of consumption within a meal slot.
type MealItem struct {
	// UniqueID identifies this instance for reordering and removal. It is
	// irrelevant to aggregation but must survive a food rename unchanged.
	UniqueID string

	Kind  RefKind
	RefID string // a Food id for FoodRef, a ComposedMeal id for MealRef

	// Weight is the grams consumed for a food, or the total grams of a
	// composed-meal instance when no portion override is present.
	Weight float64

	// CustomPortions overrides per-ingredient weights for an adjustable
	// composed meal, keyed by food id. nil means "not overridden"; an entry
	// of zero means the ingredient was omitted this time.
	CustomPortions map[string]float64

	// CustomPrice, when set, replaces any computed cost for this instance.
	CustomPrice *Money
}

// NewFoodItem creates an item consuming weight grams of a food.
func NewFoodItem(foodID string, weight float64) MealItem {
	return MealItem{UniqueID: uuid.NewString(), Kind: FoodRef, RefID: foodID, Weight: weight}
}

// NewMealItem creates an item consuming weight grams of a composed meal.
func NewMealItem(mealID string, weight float64) MealItem {
	return MealItem{UniqueID: uuid.NewString(), Kind: MealRef, RefID: mealID, Weight: weight}
}

// Day is the record of one calendar date: four ordered meal slots plus the
// day's wellness entries.
type Day struct {
	Date  Date
	Meals [len(slots)][]MealItem

	// BodyWeight is the morning weigh-in in kg; nil when none was recorded
	// that day (distinct from zero).
	BodyWeight *float64

	WaterMl float64 // hydration total for the day
	Steps   int     // step count for the day
}

// NewDay returns an empty record for the given date.
func NewDay(date Date) *Day { return &Day{Date: date} }

// Slot returns the ordered items of one meal slot.
func (d *Day) Slot(s Slot) []MealItem { return d.Meals[s] }

// Add appends an item at the end of a meal slot.
func (d *Day) Add(s Slot, item MealItem) { d.Meals[s] = append(d.Meals[s], item) }

// Remove deletes the item with the given unique id from whatever slot holds
// it, and reports whether one was found.
func (d *Day) Remove(uniqueID string) bool {
	for s := range d.Meals {
		for i, item := range d.Meals[s] {
			if item.UniqueID == uniqueID {
				d.Meals[s] = append(d.Meals[s][:i], d.Meals[s][i+1:]...)
				return true
			}
		}
	}
	return false
}

// Items yields every item of the day with its slot, in slot then insertion order.
func (d *Day) Items() iter.Seq2[Slot, MealItem] {
	return func(yield func(Slot, MealItem) bool) {
		for _, s := range slots {
			for _, item := range d.Meals[s] {
				if !yield(s, item) {
					return
				}
			}
		}
	}
}

// IsEmpty returns true when the day holds no items and no wellness entries.
func (d *Day) IsEmpty() bool {
	for _, s := range slots {
		if len(d.Meals[s]) > 0 {
			return false
		}
	}
	return d.BodyWeight == nil && d.WaterMl == 0 && d.Steps == 0
}

// Goals is the singleton record of daily targets, compared against day
// totals by the reports. It is consumed, never produced, by the engine.
type Goals struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	WaterMl  float64 `json:"waterGoal"`
	Steps    int     `json:"stepsGoal"`
}

// DefaultGoals are the targets assumed before the user sets their own.
func DefaultGoals() Goals {
	return Goals{Calories: 2000, Proteins: 100, Carbs: 250, Fats: 70, WaterMl: 2000, Steps: 10000}
}
