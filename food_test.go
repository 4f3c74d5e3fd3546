package nutrition

import (
	"testing"
)

func TestPricePer100(t *testing.T) {
	tests := []struct {
		name     string
		food     Food
		expected float64
		priced   bool
	}{
		{
			name:     "no price",
			food:     Food{ID: "rice"},
			expected: 0, priced: false,
		},
		{
			name: "mass based",
			food: Food{ID: "chicken", Price: &Price{
				Amount: EUR(3.50), Quantity: 500, Unit: PerMass,
			}},
			expected: 0.70, priced: true,
		},
		{
			name: "portion based with portion weight",
			food: Food{ID: "pizza", PortionWeight: 250, Price: &Price{
				Amount: EUR(5), Quantity: 2, Unit: PerPortion,
			}},
			// 5 EUR for 2 portions of 250g = 500g, so 1 EUR per 100g
			expected: 1.00, priced: true,
		},
		{
			name: "portion based without portion weight",
			food: Food{ID: "eggs", Price: &Price{
				Amount: EUR(2.40), Quantity: 6, Unit: PerPortion,
			}},
			// 100g assumed per portion: 2.40 / 600g
			expected: 0.40, priced: true,
		},
		{
			name: "zero quantity is priceless",
			food: Food{ID: "broken", Price: &Price{
				Amount: EUR(3), Quantity: 0, Unit: PerMass,
			}},
			expected: 0, priced: false,
		},
		{
			name: "negative quantity is priceless",
			food: Food{ID: "worse", Price: &Price{
				Amount: EUR(3), Quantity: -2, Unit: PerMass,
			}},
			expected: 0, priced: false,
		},
	}

	for _, tt := range tests {
		got, ok := tt.food.PricePer100()
		if ok != tt.priced {
			t.Errorf("%s: priced = %v, want %v", tt.name, ok, tt.priced)
			continue
		}
		if ok && !got.Equal(EUR(tt.expected)) {
			t.Errorf("%s: PricePer100 = %s, want %.2f EUR", tt.name, got, tt.expected)
		}
	}
}

func TestGenerateFoodID(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Poulet rôti", "poulet-roti"},
		{"  Crème fraîche 30% ", "creme-fraiche-30"},
		{"Œuf", "uf"}, // ligatures are not folded, only plain accents
		{"Riz", "riz"},
		{"Pâtes complètes", "pates-completes"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := GenerateFoodID(tt.name); got != tt.expected {
			t.Errorf("GenerateFoodID(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestCategorizeByName(t *testing.T) {
	tests := []struct {
		name     string
		expected Category
	}{
		{"Poulet rôti", Proteins},
		{"Riz basmati", Starches},
		{"Haricot vert", Vegetables},
		{"Yaourt nature", Dairy},
		{"Huile d'olive", Fats},
		{"Chocolat noir", Snacks},
		{"Mystère", Other},
	}
	for _, tt := range tests {
		if got := CategorizeByName(tt.name); got != tt.expected {
			t.Errorf("CategorizeByName(%q) = %s, want %s", tt.name, got, tt.expected)
		}
	}
}

func TestNutrientsScaleAdd(t *testing.T) {
	n := Nutrients{Calories: 100, Proteins: 10, Carbs: 20, Fats: 5}
	doubled := n.Scale(2)
	if doubled.Calories != 200 || doubled.Proteins != 20 {
		t.Errorf("Scale(2) = %+v", doubled)
	}
	sum := n.Add(doubled)
	if sum.Calories != 300 || sum.Fats != 15 {
		t.Errorf("Add = %+v", sum)
	}
	if !(Nutrients{}).IsZero() || n.IsZero() {
		t.Error("IsZero misbehaves")
	}
}
