package renderer

import (
	"strings"
	"testing"

	"github.com/prisca/nutrition"
)

func testCatalog() (map[string]*nutrition.Food, map[string]*nutrition.ComposedMeal) {
	foods := map[string]*nutrition.Food{
		"rice": {
			ID: "rice", Name: "Riz", Category: nutrition.Starches,
			Nutrients: nutrition.Nutrients{Calories: 130, Proteins: 2.7, Carbs: 28},
			Price:     &nutrition.Price{Amount: nutrition.M(2, "EUR"), Quantity: 1000, Unit: nutrition.PerMass},
		},
	}
	bowl := &nutrition.ComposedMeal{
		ID: "bowl", Name: "Bowl",
		Ingredients: []nutrition.Ingredient{{FoodID: "rice", Weight: 300}},
	}
	bowl.Recompute(foods)
	return foods, map[string]*nutrition.ComposedMeal{"bowl": bowl}
}

func TestDayMarkdown(t *testing.T) {
	foods, meals := testCatalog()
	day := nutrition.NewDay(nutrition.MustParse("2025-01-15"))
	day.Add(nutrition.Lunch, nutrition.NewFoodItem("rice", 200))
	day.Add(nutrition.Snack, nutrition.NewFoodItem("gone", 50))
	day.WaterMl = 1200

	report := &nutrition.DayReport{Date: day.Date, Goals: nutrition.DefaultGoals()}
	for slot, item := range day.Items() {
		res := nutrition.ResolveItem(item, foods, meals)
		label := "Riz"
		dangling := false
		if item.RefID == "gone" {
			label, dangling = "? gone", true
		}
		report.Slots[slot] = append(report.Slots[slot], nutrition.ItemLine{
			Label: label, Weight: item.Weight, Dangling: dangling, Resolved: res,
		})
		report.SlotTotals[slot].Nutrients = report.SlotTotals[slot].Nutrients.Add(res.Nutrients)
	}
	report.Totals = nutrition.AggregateDay(day, foods, meals)

	md := DayMarkdown(report)
	for _, want := range []string{
		"# Day 2025-01-15",
		"## Lunch",
		"## Snack",
		"Riz",
		"? gone (missing)",
		"260 kcal",
		"## Totals",
		"1200 / 2000 ml",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("day markdown misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "## Breakfast") {
		t.Error("empty slots should not be rendered")
	}
}

func TestHistoryMarkdown(t *testing.T) {
	report := &nutrition.HistoryReport{
		Range: nutrition.NewRange(nutrition.MustParse("2025-01-13"), nutrition.MustParse("2025-01-19")),
		Totals: []nutrition.DayTotals{
			{Date: nutrition.MustParse("2025-01-13"), Nutrients: nutrition.Nutrients{Calories: 1800}},
			{Date: nutrition.MustParse("2025-01-14")},
		},
	}
	md := HistoryMarkdown(report)
	for _, want := range []string{"# History 2025-W03", "2025-01-13", "1800 kcal", "0 kcal"} {
		if !strings.Contains(md, want) {
			t.Errorf("history markdown misses %q:\n%s", want, md)
		}
	}
}

func TestAveragesMarkdown(t *testing.T) {
	w := 71.0
	report := &nutrition.AveragesReport{
		Range:  nutrition.NewRange(nutrition.MustParse("2025-01-13"), nutrition.MustParse("2025-01-19")),
		Period: nutrition.Weekly,
		Buckets: []nutrition.Bucket{{
			Range:      nutrition.Weekly.Range(nutrition.MustParse("2025-01-13")),
			Days:       7,
			Nutrients:  nutrition.Nutrients{Calories: 1850},
			BodyWeight: &w,
		}},
	}
	md := AveragesMarkdown(report)
	for _, want := range []string{"Week averages", "2025-W03", "1850 kcal", "71.0 kg"} {
		if !strings.Contains(md, want) {
			t.Errorf("averages markdown misses %q:\n%s", want, md)
		}
	}
}

func TestCostsMarkdown(t *testing.T) {
	report := &nutrition.CostsReport{
		Range: nutrition.NewRange(nutrition.MustParse("2025-01-15"), nutrition.MustParse("2025-01-16")),
		Days: []nutrition.CostLine{
			{
				Date:  nutrition.MustParse("2025-01-15"),
				Slots: map[nutrition.Slot]nutrition.Money{nutrition.Lunch: nutrition.M(1.2, "EUR")},
				Total: nutrition.M(1.2, "EUR"),
			},
			{Date: nutrition.MustParse("2025-01-16"), Slots: map[nutrition.Slot]nutrition.Money{}},
		},
		Total: nutrition.M(1.2, "EUR"),
	}
	md := CostsMarkdown(report)
	for _, want := range []string{"# Costs", "2025-01-15", "Total", "Mean/day"} {
		if !strings.Contains(md, want) {
			t.Errorf("costs markdown misses %q:\n%s", want, md)
		}
	}
	if !strings.Contains(md, "-") {
		t.Error("unpriced slots should render as a dash")
	}
}

func TestFoodsMarkdown(t *testing.T) {
	foods, meals := testCatalog()
	md := FoodsMarkdown(foods)
	for _, want := range []string{"# Foods", "rice", "Riz", "starches", "130 kcal"} {
		if !strings.Contains(md, want) {
			t.Errorf("foods markdown misses %q:\n%s", want, md)
		}
	}
	md = MealsMarkdown(meals)
	for _, want := range []string{"# Meals", "bowl", "300 g"} {
		if !strings.Contains(md, want) {
			t.Errorf("meals markdown misses %q:\n%s", want, md)
		}
	}
}
