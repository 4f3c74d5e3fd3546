package nutrition

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestStoreEmpty(t *testing.T) {
	s := testStore(t)
	foods, err := s.Foods()
	if err != nil {
		t.Fatalf("Foods: %v", err)
	}
	if len(foods) != 0 {
		t.Errorf("fresh store should have no foods, got %d", len(foods))
	}
	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if goals != DefaultGoals() {
		t.Errorf("fresh store goals = %+v, want defaults", goals)
	}
}

func TestStoreSaveLoadFood(t *testing.T) {
	s := testStore(t)
	for _, f := range testFoods() {
		if err := s.SaveFood(f); err != nil {
			t.Fatalf("SaveFood(%s): %v", f.ID, err)
		}
	}
	foods, err := s.Foods()
	if err != nil {
		t.Fatalf("Foods: %v", err)
	}
	if len(foods) != 3 {
		t.Fatalf("got %d foods, want 3", len(foods))
	}
	per100, ok := foods["chicken"].PricePer100()
	if !ok || !per100.Equal(EUR(0.7)) {
		t.Errorf("chicken per100 = %s, want 0.70 EUR", per100)
	}

	if err := s.DeleteFood("butter"); err != nil {
		t.Fatalf("DeleteFood: %v", err)
	}
	if err := s.DeleteFood("butter"); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("deleting twice = %v, want ErrFoodNotFound", err)
	}
}

func TestStoreSaveMealRecomputes(t *testing.T) {
	s := testStore(t)
	for _, f := range testFoods() {
		if err := s.SaveFood(f); err != nil {
			t.Fatalf("SaveFood: %v", err)
		}
	}
	meal := &ComposedMeal{
		ID: "bowl", Name: "Bowl",
		Ingredients: []Ingredient{
			{FoodID: "rice", Weight: 300},
			{FoodID: "chicken", Weight: 200},
		},
		// A stale cache: the store must not trust it.
		Nutrients: Nutrients{Calories: 9999},
	}
	if err := s.SaveMeal(meal); err != nil {
		t.Fatalf("SaveMeal: %v", err)
	}
	meals, err := s.Meals()
	if err != nil {
		t.Fatalf("Meals: %v", err)
	}
	if !almost(meals["bowl"].Calories, 144) {
		t.Errorf("cached calories = %g, want 144 (recomputed)", meals["bowl"].Calories)
	}
}

func TestStoreLazyDay(t *testing.T) {
	s := testStore(t)
	date := MustParse("2025-01-15")
	day, err := s.Day(date)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if !day.IsEmpty() {
		t.Error("unrecorded day should be empty")
	}
	day.Add(Lunch, NewFoodItem("rice", 100))
	if err := s.SaveDay(day); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}
	back, err := s.Day(date)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if len(back.Slot(Lunch)) != 1 {
		t.Errorf("saved day lost its item")
	}
}

func TestRenameFood(t *testing.T) {
	s := testStore(t)
	for _, f := range testFoods() {
		if err := s.SaveFood(f); err != nil {
			t.Fatalf("SaveFood: %v", err)
		}
	}
	meal := &ComposedMeal{
		ID: "bowl", Name: "Bowl",
		Ingredients: []Ingredient{
			{FoodID: "rice", Weight: 300},
			{FoodID: "chicken", Weight: 200},
		},
	}
	if err := s.SaveMeal(meal); err != nil {
		t.Fatalf("SaveMeal: %v", err)
	}
	day := NewDay(MustParse("2025-01-15"))
	item := NewFoodItem("rice", 180)
	day.Add(Lunch, item)
	adj := NewMealItem("bowl", 0)
	adj.CustomPortions = map[string]float64{"rice": 200}
	day.Add(Dinner, adj)
	if err := s.SaveDay(day); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	foods, _ := s.Foods()
	rec := *foods["rice"]
	rec.ID = "rice-basmati"
	rec.Name = "Riz basmati"
	if err := s.RenameFood("rice", &rec); err != nil {
		t.Fatalf("RenameFood: %v", err)
	}

	foods, _ = s.Foods()
	if _, old := foods["rice"]; old {
		t.Error("old id still present")
	}
	if foods["rice-basmati"] == nil {
		t.Fatal("new id missing")
	}
	meals, _ := s.Meals()
	if meals["bowl"].Ingredients[0].FoodID != "rice-basmati" {
		t.Errorf("recipe ingredient not rewritten: %+v", meals["bowl"].Ingredients)
	}
	back, _ := s.Day(day.Date)
	lunch := back.Slot(Lunch)[0]
	if lunch.RefID != "rice-basmati" {
		t.Errorf("journal reference not rewritten: %+v", lunch)
	}
	if lunch.UniqueID != item.UniqueID || lunch.Weight != 180 {
		t.Errorf("rename touched unrelated fields: %+v", lunch)
	}
	dinner := back.Slot(Dinner)[0]
	if dinner.CustomPortions["rice-basmati"] != 200 {
		t.Errorf("portion override key not rewritten: %+v", dinner.CustomPortions)
	}
}

func TestRenameFoodRejections(t *testing.T) {
	s := testStore(t)
	for _, f := range testFoods() {
		if err := s.SaveFood(f); err != nil {
			t.Fatalf("SaveFood: %v", err)
		}
	}
	before, err := os.ReadFile(filepath.Join(s.Dir(), "foods.jsonl"))
	if err != nil {
		t.Fatalf("read foods file: %v", err)
	}

	rec := Food{ID: "chicken", Name: "Poulet bis"}
	if err := s.RenameFood("rice", &rec); !errors.Is(err, ErrFoodExists) {
		t.Errorf("rename onto a taken id = %v, want ErrFoodExists", err)
	}
	missing := Food{ID: "whatever", Name: "Whatever"}
	if err := s.RenameFood("gone", &missing); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("rename of unknown id = %v, want ErrFoodNotFound", err)
	}

	// Nothing may have been written by the failed attempts.
	after, err := os.ReadFile(filepath.Join(s.Dir(), "foods.jsonl"))
	if err != nil {
		t.Fatalf("read foods file: %v", err)
	}
	if string(before) != string(after) {
		t.Error("a rejected rename modified the foods file")
	}
}
